package app

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/bobmcallan/greenvest/internal/common"
	"github.com/bobmcallan/greenvest/internal/interfaces"
)

// refreshTimeout bounds one scheduled refresh
const refreshTimeout = 5 * time.Minute

// startRefreshScheduler runs refreshSnapshots on a cron spec ("@daily", "0 6 * * 1-5").
func startRefreshScheduler(spec string, funds interfaces.FundService, logger *common.Logger) (*cron.Cron, error) {
	c := cron.New()
	if _, err := c.AddFunc(spec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), refreshTimeout)
		defer cancel()
		refreshSnapshots(ctx, funds, logger)
	}); err != nil {
		return nil, fmt.Errorf("invalid refresh schedule %q: %w", spec, err)
	}
	c.Start()
	logger.Info().Str("schedule", spec).Msg("Refresh scheduler: started")
	return c, nil
}

func refreshSnapshots(ctx context.Context, funds interfaces.FundService, logger *common.Logger) {
	start := time.Now()

	warmed, err := funds.Refresh(ctx)
	if err != nil {
		logger.Warn().Err(err).Int("funds", warmed).Msg("Refresh: completed with errors")
		return
	}

	logger.Info().
		Int("funds", warmed).
		Dur("elapsed", time.Since(start)).
		Msg("Refresh: complete")
}
