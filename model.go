package tracker

import (
	"time"

	"github.com/shopspring/decimal"
)

type (
	Rate struct {
		Code string
		Rate decimal.Decimal
	}

	// Result is the outcome of a single rate query. Rates keeps the order in
	// which requested codes were found, InvalidCurrencies the order they were
	// given in.
	Result struct {
		Rates             []Rate
		InvalidCurrencies []string
		APITimestamp      string
		BaseCurrency      string
	}

	HistoryRecord struct {
		CapturedAt     time.Time
		BaseCurrency   string
		TargetCurrency string
		Rate           decimal.Decimal
		APITimestamp   string
	}
)

func (r *Result) HasRates() bool {
	return r != nil && len(r.Rates) > 0
}

// Records turns every valid rate into a history row stamped with capturedAt.
func (r *Result) Records(capturedAt time.Time) []HistoryRecord {
	if r == nil {
		return nil
	}

	records := make([]HistoryRecord, 0, len(r.Rates))

	for _, rate := range r.Rates {
		records = append(records, HistoryRecord{
			CapturedAt:     capturedAt,
			BaseCurrency:   r.BaseCurrency,
			TargetCurrency: rate.Code,
			Rate:           rate.Rate,
			APITimestamp:   r.APITimestamp,
		})
	}

	return records
}
