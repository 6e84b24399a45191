package main

import (
	"context"
	"os"

	"alphadash/api"
	"alphadash/internal/config"
	"alphadash/internal/domain"
	"alphadash/internal/logger"
	"alphadash/internal/preparer"
	"alphadash/internal/service"
	"alphadash/internal/util"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func main() {
	// fine if absent; env vars may come from the shell or the deploy env
	_ = godotenv.Load()

	root := &cobra.Command{
		Use:          "dashboard",
		Short:        "serves precomputed portfolio analytics to the dashboard frontend",
		SilenceUsage: true,
	}
	root.AddCommand(serveCmd(), validateCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func loadDataset(ctx context.Context) (*service.Dataset, *config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	ds, err := service.NewDatasetLoader(cfg.DataDir).Load(ctx)
	if err != nil {
		return nil, nil, err
	}
	return ds, cfg, nil
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "load the input files and start the display data API",
		RunE: func(cmd *cobra.Command, args []string) error {
			log := logger.New()
			ctx := logger.AddToContext(cmd.Context(), log)

			ds, cfg, err := loadDataset(ctx)
			if err != nil {
				log.Errorw("startup failed", "error", err)
				return err
			}

			handler := api.ApiHandler{
				Dataset:   ds,
				LambdaMax: cfg.LambdaMax,
			}
			return handler.StartApi(cfg.Port)
		},
	}
}

// validateCmd loads everything and runs each derived view once, so a bad
// upstream export fails loudly before a deploy rather than on first render.
func validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "load the input files, derive every view, and report",
		RunE: func(cmd *cobra.Command, args []string) error {
			log := logger.New()
			ctx := logger.AddToContext(cmd.Context(), log)

			ds, cfg, err := loadDataset(ctx)
			if err != nil {
				log.Errorw("load failed", "error", err)
				return err
			}

			if _, err := preparer.PrepareWeightHierarchy(ds.Signals, ds.HoldingWeights); err != nil {
				log.Errorw("weight hierarchy failed", "error", err)
				return err
			}
			ic, err := preparer.InformationCoefficient(ds.Signals, ds.StockDetails)
			if err != nil {
				log.Errorw("information coefficient failed", "error", err)
				return err
			}
			if _, err := preparer.PivotParameterGrid(
				ds.ParameterSearch, cfg.LambdaMax,
				domain.AxisGamma, domain.AxisLimit, domain.ValueSharpe,
			); err != nil {
				log.Errorw("parameter grid failed", "error", err)
				return err
			}

			util.Pprint(map[string]interface{}{
				"sessionID":              ds.SessionID,
				"holdings":               len(ds.Signals),
				"sectors":                len(ds.Attribution),
				"navDays":                len(ds.Performance.Dates),
				"parameterRuns":          len(ds.ParameterSearch),
				"informationCoefficient": ic,
			})
			return nil
		},
	}
}
