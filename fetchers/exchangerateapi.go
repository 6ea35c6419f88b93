package fetchers

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	tracker "github.com/malusev998/rate-tracker"
)

const DefaultTimeout = 10 * time.Second

type (
	ExchangeRateAPIFetcher struct {
		URL     string
		Timeout time.Duration
		Client  *http.Client
	}
)

func NewExchangeRateAPIFetcher(url string, timeout time.Duration) ExchangeRateAPIFetcher {
	if url == "" {
		url = ExchangeRateAPIURL
	}

	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return ExchangeRateAPIFetcher{
		URL:     url,
		Timeout: timeout,
		Client:  &http.Client{Timeout: timeout},
	}
}

// PartitionCurrencies splits the requested codes into those present in rates
// and those missing from it. Codes are uppercased first; each code shows up
// at most once in either result.
func (e ExchangeRateAPIFetcher) PartitionCurrencies(
	currencies []string,
	rates map[string]decimal.Decimal,
) ([]tracker.Rate, []string) {
	valid := make([]tracker.Rate, 0, len(currencies))
	invalid := make([]string, 0)
	seen := make(map[string]struct{}, len(currencies))

	for _, c := range currencies {
		code := tracker.NormalizeCurrency(c)

		if _, ok := seen[code]; ok {
			continue
		}

		seen[code] = struct{}{}

		if rate, ok := rates[code]; ok {
			valid = append(valid, tracker.Rate{Code: code, Rate: rate})
		} else {
			invalid = append(invalid, code)
		}
	}

	return valid, invalid
}

func (e ExchangeRateAPIFetcher) decode(body []byte) (exchangeRateAPIResponse, error) {
	var data exchangeRateAPIResponse

	if err := json.Unmarshal(body, &data); err != nil {
		return data, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}

	switch {
	case data.Date == "":
		return data, fmt.Errorf("%w: missing date", ErrMalformedResponse)
	case data.Base == "":
		return data, fmt.Errorf("%w: missing base", ErrMalformedResponse)
	case data.Rates == nil:
		return data, fmt.Errorf("%w: missing rates", ErrMalformedResponse)
	}

	return data, nil
}

func (e ExchangeRateAPIFetcher) Fetch(ctx context.Context, currenciesToFetch []string) (*tracker.Result, error) {
	if len(currenciesToFetch) == 0 {
		return nil, ErrNoCurrencies
	}

	url := e.URL

	if url == "" {
		url = ExchangeRateAPIURL
	}

	timeout := e.Timeout

	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	client := e.Client

	if client == nil {
		client = &http.Client{Timeout: timeout}
	}

	if ctx == nil {
		ctx = context.Background()
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := getData(ctx, url)

	if err != nil {
		return nil, err
	}

	res, err := client.Do(req)

	if err != nil {
		return nil, classifyTransportError(err)
	}

	defer res.Body.Close()

	body, err := io.ReadAll(io.LimitReader(res.Body, maxBodyBytes))

	if err != nil {
		return nil, classifyTransportError(err)
	}

	if err := handleHTTPStatusCodeError(res); err != nil {
		return nil, err
	}

	data, err := e.decode(body)

	if err != nil {
		return nil, err
	}

	valid, invalid := e.PartitionCurrencies(currenciesToFetch, data.Rates)

	return &tracker.Result{
		Rates:             valid,
		InvalidCurrencies: invalid,
		APITimestamp:      data.Date,
		BaseCurrency:      data.Base,
	}, nil
}
