package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-priceform/internal/config"
	"github.com/goliatone/go-priceform/internal/logger"
	"github.com/goliatone/go-priceform/pkg/model"
	"github.com/goliatone/go-priceform/pkg/predict"
	"github.com/goliatone/go-priceform/pkg/schema"
)

var cfgPath string

var rootCmd = &cobra.Command{
	Use:          "predictform",
	Short:        "House price prediction form",
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "configuration file (yaml or json)")
}

// Execute runs the CLI.
func Execute() error { return rootCmd.Execute() }

// loadConfig reads the configuration and applies the log level.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	logger.SetLevel(cfg.Log.Level)
	return cfg, nil
}

// loadSchema resolves the field schema selected by cfg.
func loadSchema(ctx context.Context, cfg *config.Config) (model.FormModel, error) {
	form, err := schema.Resolve(ctx, cfg.SchemaSource())
	if err != nil {
		return model.FormModel{}, fmt.Errorf("resolve schema: %w", err)
	}
	return form, nil
}

// newPredictor builds the HTTP prediction client from cfg.
func newPredictor(cfg *config.Config, form model.FormModel) *predict.Client {
	return predict.NewClient(
		predict.WithTimeout(cfg.Client.Timeout()),
		predict.WithMethod(form.Method),
		predict.WithLogger(logger.New("predict")),
	)
}
