// Package wire translates the columnar batch-scoring format into named
// customer records and back. Each inbound row is an ordered JSON array whose
// first element is an opaque row identity; the remaining elements map
// positionally onto the customer field order. Identities are never
// interpreted and round-trip byte-for-byte.
package wire

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/stratus-telco/retain/internal/churn"
	"github.com/stratus-telco/retain/internal/predict"
)

var (
	// ErrBadPayload marks a payload that is not a recognized columnar shape.
	ErrBadPayload = errors.New("unrecognized columnar payload")
	// ErrShortRow marks a row without an identity plus at least one field value.
	ErrShortRow = errors.New("row must carry an identity and at least one field value")
)

// Row is one decoded inbound row.
type Row struct {
	Identity json.RawMessage
	Features churn.Features
}

// Scored pairs a row identity with its prediction for the outbound direction.
type Scored struct {
	Identity json.RawMessage
	Result   predict.Prediction
}

type fieldSetter struct {
	name string
	set  func(*churn.Features, json.RawMessage) error
}

// fieldSetters maps positional wire values onto named fields, in the fixed
// 16-field order shared with upstream SQL service-function definitions.
// Fields beyond the supplied value count keep their defaults.
var fieldSetters = []fieldSetter{
	{"customer_id", func(f *churn.Features, raw json.RawMessage) error {
		return json.Unmarshal(raw, &f.CustomerID)
	}},
	{"avg_data_usage_pct", setFloat(func(f *churn.Features) **float64 { return &f.AvgDataUsagePct })},
	{"data_usage_trend", setFloat(func(f *churn.Features) **float64 { return &f.DataUsageTrend })},
	{"avg_voice_usage_pct", setFloat(func(f *churn.Features) **float64 { return &f.AvgVoiceUsagePct })},
	{"avg_days_inactive", setInt(func(f *churn.Features) **int { return &f.AvgDaysInactive })},
	{"avg_signal_strength", setInt(func(f *churn.Features) **int { return &f.AvgSignalStrength })},
	{"total_dropped_calls", setInt(func(f *churn.Features) **int { return &f.TotalDroppedCalls })},
	{"coverage_issues_count", setInt(func(f *churn.Features) **int { return &f.CoverageIssuesCount })},
	{"complaint_count", setInt(func(f *churn.Features) **int { return &f.ComplaintCount })},
	{"negative_sentiment_count", setInt(func(f *churn.Features) **int { return &f.NegativeSentimentCount })},
	{"avg_nps_score", setFloat(func(f *churn.Features) **float64 { return &f.AvgNPSScore })},
	{"tenure_months", setInt(func(f *churn.Features) **int { return &f.TenureMonths })},
	{"monthly_fee", setFloat(func(f *churn.Features) **float64 { return &f.MonthlyFee })},
	{"payment_issues_count", setInt(func(f *churn.Features) **int { return &f.PaymentIssuesCount })},
	{"customer_segment", func(f *churn.Features, raw json.RawMessage) error {
		var v string
		if err := json.Unmarshal(raw, &v); err != nil {
			return err
		}
		f.CustomerSegment = &v
		return nil
	}},
	{"contract_months_remaining", setInt(func(f *churn.Features) **int { return &f.ContractMonthsRemaining })},
}

func setFloat(field func(*churn.Features) **float64) func(*churn.Features, json.RawMessage) error {
	return func(f *churn.Features, raw json.RawMessage) error {
		var v float64
		if err := json.Unmarshal(raw, &v); err != nil {
			return err
		}
		*field(f) = &v
		return nil
	}
}

// setInt accepts any JSON number; columnar sources emit integer columns with
// a decimal point more often than not.
func setInt(field func(*churn.Features) **int) func(*churn.Features, json.RawMessage) error {
	return func(f *churn.Features, raw json.RawMessage) error {
		var v float64
		if err := json.Unmarshal(raw, &v); err != nil {
			return err
		}
		n := int(v)
		*field(f) = &n
		return nil
	}
}

// AdaptIn decodes columnar rows into ordered (identity, features) pairs.
// Row order is preserved; any malformed row fails the whole request.
func AdaptIn(rows []json.RawMessage) ([]Row, error) {
	out := make([]Row, 0, len(rows))
	for i, rawRow := range rows {
		var cells []json.RawMessage
		if err := json.Unmarshal(rawRow, &cells); err != nil {
			return nil, fmt.Errorf("row %d: %w: %v", i, ErrBadPayload, err)
		}
		if len(cells) < 2 {
			return nil, fmt.Errorf("row %d: %w", i, ErrShortRow)
		}

		row := Row{Identity: append(json.RawMessage(nil), cells[0]...)}
		for j, cell := range cells[1:] {
			if j >= len(fieldSetters) {
				break // trailing values beyond the known field order are ignored
			}
			if err := fieldSetters[j].set(&row.Features, cell); err != nil {
				return nil, fmt.Errorf("row %d, field %s: %w", i, fieldSetters[j].name, err)
			}
		}
		out = append(out, row)
	}
	return out, nil
}

// AdaptOut re-attaches row identities to predictions, in order. The identity
// bytes are emitted exactly as they arrived.
func AdaptOut(scored []Scored) [][]any {
	rows := make([][]any, len(scored))
	for i, s := range scored {
		rows[i] = []any{s.Identity, s.Result}
	}
	return rows
}
