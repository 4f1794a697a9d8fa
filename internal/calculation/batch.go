package calculation

import (
	"context"
	"fmt"
	"time"

	"github.com/Maximilian-Winter/taiyi-qi-men-dunjia/internal/domain"
	"golang.org/x/sync/errgroup"
)

// MaxRangeInstants caps how many instants a single range may expand to.
const MaxRangeInstants = 10000

// ComputeReports computes one report per instant with at most limit charts
// in flight. Results keep the order of instants. The first error cancels the
// remaining work and no partial slice is returned.
func (e *Engine) ComputeReports(ctx context.Context, instants []time.Time, limit int) ([]*domain.Report, error) {
	if limit < 1 {
		limit = 1
	}
	reports := make([]*domain.Report, len(instants))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	for i, t := range instants {
		i, t := i, t
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			r, err := e.ComputeReport(t)
			if err != nil {
				return err
			}
			reports[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	e.Logger.Infof("computed %d reports", len(reports))
	return reports, nil
}

// Instants expands [from, to] in steps of step.
func Instants(from, to time.Time, step time.Duration) ([]time.Time, error) {
	if step <= 0 {
		return nil, fmt.Errorf("step must be positive, got %s", step)
	}
	if to.Before(from) {
		return nil, fmt.Errorf("range end %s before start %s", to.Format(time.RFC3339), from.Format(time.RFC3339))
	}
	n := int(to.Sub(from)/step) + 1
	if n > MaxRangeInstants {
		return nil, fmt.Errorf("range expands to %d instants, limit is %d", n, MaxRangeInstants)
	}
	out := make([]time.Time, 0, n)
	for t := from; !t.After(to); t = t.Add(step) {
		out = append(out, t)
	}
	return out, nil
}
