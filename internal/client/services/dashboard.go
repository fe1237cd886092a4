package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/recipeadmin/internal/client/models"
	"github.com/dmitrijs2005/recipeadmin/internal/client/view"
	"golang.org/x/sync/errgroup"
)

// Dashboard shows the four site totals and their bar chart.
type Dashboard struct {
	page
}

func NewDashboard(deps Deps) *Dashboard {
	return &Dashboard{page{deps: deps, path: DashboardPagePath}}
}

// Load fetches all counters concurrently. The display changes only when
// every counter arrived.
func (d *Dashboard) Load(ctx context.Context) error {
	values := make([]int64, len(models.Counters))

	g, gctx := errgroup.WithContext(ctx)
	for i, c := range models.Counters {
		i, c := i, c
		g.Go(func() error {
			v, err := d.deps.Client.Total(gctx, c)
			if err != nil {
				return fmt.Errorf("total %s: %w", c, err)
			}
			values[i] = v
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		d.deps.logger().Error(d.scope(ctx), "error fetching statistics", "error", err)
		return fmt.Errorf("load statistics: %w", err)
	}

	var stats models.Stats
	for i, c := range models.Counters {
		stats.Set(c, values[i])
	}
	d.show(view.Dashboard(stats))
	return nil
}
