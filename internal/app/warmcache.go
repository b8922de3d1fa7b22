package app

import (
	"context"
	"os"
	"time"

	"github.com/bobmcallan/greenvest/internal/common"
	"github.com/bobmcallan/greenvest/internal/interfaces"
)

// warmCache synthesizes metrics for every catalogue fund on startup so the first query is fast.
func warmCache(ctx context.Context, funds interfaces.FundService, logger *common.Logger) int {
	if os.Getenv("GREENVEST_WARM_CACHE") == "off" {
		logger.Info().Msg("Warm cache: disabled via GREENVEST_WARM_CACHE=off")
		return 0
	}

	start := time.Now()

	list, err := funds.ListFunds(ctx)
	if err != nil {
		logger.Warn().Err(err).Msg("Warm cache: failed to list funds")
		return 0
	}

	warmed := 0
	for _, f := range list {
		if ctx.Err() != nil {
			break
		}
		if _, err := funds.GetMetrics(ctx, f.ID); err != nil {
			logger.Warn().Err(err).Str("fund", f.ID).Msg("Warm cache: metrics failed")
			continue
		}
		warmed++
	}

	logger.Info().
		Int("funds", warmed).
		Dur("elapsed", time.Since(start)).
		Msg("Warm cache: complete")
	return warmed
}
