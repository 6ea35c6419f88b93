package tracker

import "context"

type (
	Service interface {
		Fetch(ctx context.Context, currencies []string) (*Result, error)
		Log(result *Result) error
		Close() error
	}
)
