// Package cli implements the greenvest command line
package cli

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/bobmcallan/greenvest/internal/app"
	"github.com/bobmcallan/greenvest/internal/common"
	"github.com/bobmcallan/greenvest/internal/models"
)

// options are the persistent flags shared by every command
type options struct {
	configPath string
	format     string
	debug      bool
}

// newApp builds an App from the resolved config. Logging stays at warn
// unless --debug is set so table output is not interleaved with logs.
func (o *options) newApp() (*app.App, error) {
	switch o.format {
	case formatTable, formatJSON:
	default:
		return nil, fmt.Errorf("unknown format %q (want table or json)", o.format)
	}

	cfg, err := common.LoadConfig(app.ResolveConfigPath(o.configPath))
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	cfg.Logging.Outputs = []string{"console"}
	cfg.Logging.Level = "warn"
	if o.debug {
		cfg.Logging.Level = "debug"
	}
	return app.NewAppWithConfig(cfg, common.NewLoggerFromConfig(cfg.Logging))
}

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "greenvest",
		Short: "GreenVest - Green Fund Analytics",
		Long: `GreenVest scores green investment funds: risk and ESG metrics, price predictions,
environmental impact and inverse-risk portfolio allocations.`,
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newFundsCmd(opts))
	rootCmd.AddCommand(newInsightsCmd(opts))
	rootCmd.AddCommand(newPredictCmd(opts))
	rootCmd.AddCommand(newImpactCmd(opts))
	rootCmd.AddCommand(newRecommendCmd(opts))
	rootCmd.AddCommand(newVersionCmd(opts))

	// Global flags
	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "Configuration file path")
	rootCmd.PersistentFlags().StringVar(&opts.format, "format", formatTable, "Output format: table or json")
	rootCmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "Enable debug logging")

	return rootCmd
}

// withApp runs fn against a freshly built App and closes it afterwards
func withApp(cmd *cobra.Command, opts *options, fn func(ctx context.Context, a *app.App) error) error {
	a, err := opts.newApp()
	if err != nil {
		return err
	}
	defer a.Close()
	return fn(cmd.Context(), a)
}

// newFundsCmd creates the funds command
func newFundsCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "funds",
		Short: "List the fund catalogue",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, opts, func(ctx context.Context, a *app.App) error {
				funds, err := a.FundService.ListFunds(ctx)
				if err != nil {
					return err
				}
				return render(cmd.OutOrStdout(), opts.format, funds, func() string { return fundsTable(funds) })
			})
		},
	}
}

// newInsightsCmd creates the insights command
func newInsightsCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "insights FUND_ID",
		Short: "Show technical, risk, ESG and market insights for a fund",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, opts, func(ctx context.Context, a *app.App) error {
				in, err := a.FundService.GetInsights(ctx, args[0])
				if err != nil {
					return err
				}
				return render(cmd.OutOrStdout(), opts.format, in, func() string { return insightsView(in) })
			})
		},
	}
}

// newPredictCmd creates the predict command
func newPredictCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "predict FUND_ID",
		Short: "Forecast a fund's next price and recommend an action",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, opts, func(ctx context.Context, a *app.App) error {
				p, err := a.FundService.PredictFund(ctx, args[0])
				if err != nil {
					return err
				}
				return render(cmd.OutOrStdout(), opts.format, p, func() string { return predictionView(p) })
			})
		},
	}
}

// newImpactCmd creates the impact command
func newImpactCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "impact FUND_ID",
		Short: "Score a fund's environmental impact",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, opts, func(ctx context.Context, a *app.App) error {
				i, err := a.FundService.AnalyzeImpact(ctx, args[0])
				if err != nil {
					return err
				}
				return render(cmd.OutOrStdout(), opts.format, i, func() string { return impactView(i) })
			})
		},
	}
}

// newRecommendCmd creates the recommend command
func newRecommendCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "recommend FUND_ID...",
		Short: "Recommend an inverse-risk allocation across funds",
		Long: `Recommend an allocation across the given funds weighted by inverse daily VaR.
Example: greenvest recommend wind-energy solar-power --amount=10000`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := models.RecommendRequest{FundIDs: args}
			if raw, _ := cmd.Flags().GetString("amount"); raw != "" {
				amount, err := decimal.NewFromString(raw)
				if err != nil {
					return fmt.Errorf("invalid amount %q: %w", raw, err)
				}
				req.Amount = &amount
			}
			return withApp(cmd, opts, func(ctx context.Context, a *app.App) error {
				rec, err := a.PortfolioService.Recommend(ctx, req)
				if err != nil {
					return err
				}
				return render(cmd.OutOrStdout(), opts.format, rec, func() string { return recommendationView(rec) })
			})
		},
	}

	cmd.Flags().String("amount", "", "Amount to invest, split across the allocation in cents")

	return cmd
}

// newVersionCmd creates the version command
func newVersionCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			info := common.VersionInfo()
			return render(cmd.OutOrStdout(), opts.format, info, func() string {
				return titleStyle.Render("GreenVest") + " " + common.GetFullVersion()
			})
		},
	}
}
