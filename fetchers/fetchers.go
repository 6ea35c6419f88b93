package fetchers

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"syscall"

	"github.com/shopspring/decimal"
)

const (
	ExchangeRateAPIURL = "https://api.exchangerate-api.com/v4/latest/USD"

	maxBodyBytes = 1 << 20
)

type (
	exchangeRateAPIResponse struct {
		Base  string                     `json:"base,omitempty"`
		Rates map[string]decimal.Decimal `json:"rates,omitempty"`
		Date  string                     `json:"date,omitempty"`
	}
)

var (
	ErrNoCurrencies      = errors.New("please provide at least one currency code to track")
	ErrTimeout           = errors.New("request timed out")
	ErrConnection        = errors.New("network connection failed")
	ErrClient            = errors.New("client error")
	ErrServer            = errors.New("server error")
	ErrUnknown           = errors.New("unknown error")
	ErrMalformedResponse = errors.New("malformed response")
)

func getData(ctx context.Context, url string) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)

	if err != nil {
		return nil, err
	}

	req.Header.Add("Accept", "application/json")

	return req, nil
}

func handleHTTPStatusCodeError(res *http.Response) error {
	if res.StatusCode >= http.StatusOK && res.StatusCode < http.StatusMultipleChoices {
		return nil
	}

	switch {
	case res.StatusCode >= http.StatusBadRequest && res.StatusCode < http.StatusInternalServerError:
		return fmt.Errorf("%w: http %d", ErrClient, res.StatusCode)
	case res.StatusCode >= http.StatusInternalServerError:
		return fmt.Errorf("%w: http %d", ErrServer, res.StatusCode)
	default:
		return fmt.Errorf("%w: http %d", ErrUnknown, res.StatusCode)
	}
}

// classifyTransportError maps errors returned by http.Client.Do onto
// ErrTimeout and ErrConnection. Anything else is returned untouched.
func classifyTransportError(err error) error {
	var netErr net.Error

	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return fmt.Errorf("%w: %v", ErrTimeout, err)
	}

	var (
		opErr  *net.OpError
		dnsErr *net.DNSError
	)

	if errors.As(err, &dnsErr) || errors.As(err, &opErr) || errors.Is(err, syscall.ECONNREFUSED) {
		return fmt.Errorf("%w: %v", ErrConnection, err)
	}

	return err
}
