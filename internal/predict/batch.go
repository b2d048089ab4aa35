package predict

import (
	"runtime"
	"sync"

	"github.com/stratus-telco/retain/internal/churn"
)

// BatchResult holds per-customer predictions in input order plus tier counts.
// The three counts always sum to len(Predictions).
type BatchResult struct {
	Predictions     []Prediction `json:"predictions"`
	TotalProcessed  int          `json:"total_processed"`
	HighRiskCount   int          `json:"high_risk_count"`
	MediumRiskCount int          `json:"medium_risk_count"`
	LowRiskCount    int          `json:"low_risk_count"`
}

// PredictBatch scores every customer independently. Records are scored
// concurrently but results land by input index, so output order always
// equals input order. Any single classifier failure fails the whole batch;
// there is no partial success.
func (p *Predictor) PredictBatch(customers []churn.Features) (BatchResult, error) {
	predictions := make([]Prediction, len(customers))

	workers := runtime.GOMAXPROCS(0)
	if workers > len(customers) {
		workers = len(customers)
	}

	if workers > 1 {
		var (
			wg       sync.WaitGroup
			mu       sync.Mutex
			firstErr error
		)
		indexes := make(chan int)

		for w := 0; w < workers; w++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for i := range indexes {
					pred, err := p.Predict(customers[i])
					if err != nil {
						mu.Lock()
						if firstErr == nil {
							firstErr = err
						}
						mu.Unlock()
						continue
					}
					predictions[i] = pred
				}
			}()
		}
		for i := range customers {
			indexes <- i
		}
		close(indexes)
		wg.Wait()

		if firstErr != nil {
			return BatchResult{}, firstErr
		}
	} else {
		for i, customer := range customers {
			pred, err := p.Predict(customer)
			if err != nil {
				return BatchResult{}, err
			}
			predictions[i] = pred
		}
	}

	result := BatchResult{
		Predictions:    predictions,
		TotalProcessed: len(predictions),
	}
	for _, pred := range predictions {
		switch pred.ChurnRiskCategory {
		case churn.TierHigh:
			result.HighRiskCount++
		case churn.TierMedium:
			result.MediumRiskCount++
		default:
			result.LowRiskCount++
		}
	}
	return result, nil
}
