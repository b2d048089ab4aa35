package store

import (
	"context"
	"fmt"

	"github.com/stratus-telco/retain/internal/churn"
)

// ListCustomerFeatures reads up to limit customer feature rows in stable
// customer_id order. NULL columns come back as nil pointers, which the
// defaulting pass fills downstream; the query never substitutes values
// itself.
func (s *Store) ListCustomerFeatures(ctx context.Context, limit int) ([]churn.Features, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT customer_id,
		       avg_data_usage_pct,
		       data_usage_trend,
		       avg_voice_usage_pct,
		       avg_days_inactive,
		       avg_signal_strength,
		       total_dropped_calls,
		       coverage_issues_count,
		       complaint_count,
		       negative_sentiment_count,
		       avg_nps_score,
		       tenure_months,
		       monthly_fee,
		       payment_issues_count,
		       customer_segment,
		       contract_months_remaining
		FROM customers
		ORDER BY customer_id
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("query customers: %w", err)
	}
	defer rows.Close()

	var customers []churn.Features
	for rows.Next() {
		var f churn.Features
		if err := rows.Scan(
			&f.CustomerID,
			&f.AvgDataUsagePct,
			&f.DataUsageTrend,
			&f.AvgVoiceUsagePct,
			&f.AvgDaysInactive,
			&f.AvgSignalStrength,
			&f.TotalDroppedCalls,
			&f.CoverageIssuesCount,
			&f.ComplaintCount,
			&f.NegativeSentimentCount,
			&f.AvgNPSScore,
			&f.TenureMonths,
			&f.MonthlyFee,
			&f.PaymentIssuesCount,
			&f.CustomerSegment,
			&f.ContractMonthsRemaining,
		); err != nil {
			return nil, fmt.Errorf("scan customer row: %w", err)
		}
		customers = append(customers, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate customers: %w", err)
	}
	return customers, nil
}
