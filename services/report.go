package services

import (
	"fmt"
	"io"
	"strings"
	"time"

	tracker "github.com/malusev998/rate-tracker"
)

const (
	ReportTimeFormat = "2006-01-02 15:04:05"

	ratePrecision = 4
	bannerWidth   = 50
)

// Display writes the human readable report for result to w.
func Display(w io.Writer, result *tracker.Result, now time.Time) {
	if !result.HasRates() {
		fmt.Fprintln(w, "No valid rates to display")
		return
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "RATE TRACKER RESULTS")
	fmt.Fprintln(w, strings.Repeat("=", bannerWidth))
	fmt.Fprintf(w, "Base Currency: %s\n", result.BaseCurrency)
	fmt.Fprintf(w, "API Data Date: %s\n", result.APITimestamp)
	fmt.Fprintf(w, "Fetched at: %s\n", now.Format(ReportTimeFormat))
	fmt.Fprintln(w, strings.Repeat("-", bannerWidth))

	fmt.Fprintln(w, "VALID CURRENCIES:")
	for _, rate := range result.Rates {
		fmt.Fprintf(w, "   %s: %s\n", rate.Code, rate.Rate.StringFixed(ratePrecision))
	}

	if len(result.InvalidCurrencies) == 0 {
		return
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "INVALID CURRENCY CODES (ignored):")
	for _, code := range result.InvalidCurrencies {
		fmt.Fprintf(w, "   %s\n", code)
	}
}
