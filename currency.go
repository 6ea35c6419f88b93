package tracker

import (
	"context"
	"strings"
)

type (
	Fetcher interface {
		Fetch(ctx context.Context, currenciesToFetch []string) (*Result, error)
	}
)

// NormalizeCurrency uppercases a currency code as typed by the user.
// Surrounding whitespace is kept, so " eur" never matches a rate.
func NormalizeCurrency(code string) string {
	return strings.ToUpper(code)
}
