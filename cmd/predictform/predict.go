package main

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-priceform/internal/logger"
	"github.com/goliatone/go-priceform/pkg/form"
	"github.com/goliatone/go-priceform/pkg/render"
	"github.com/goliatone/go-priceform/pkg/renderers/tui"
)

var predictSets []string

var predictCmd = &cobra.Command{
	Use:   "predict",
	Short: "Enter house features in the terminal and request a prediction",
	Long: "Prompts for every field and prints the predicted price. " +
		"With --set the values are taken from flags and a single prediction is made without prompting.",
	RunE: runPredict,
}

func init() {
	predictCmd.Flags().StringArrayVar(&predictSets, "set", nil, "field value as name=value (repeatable)")
	rootCmd.AddCommand(predictCmd)
}

func runPredict(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	schema, err := loadSchema(ctx, cfg)
	if err != nil {
		return err
	}
	values, err := parseAssignments(predictSets)
	if err != nil {
		return err
	}

	f, err := form.New(schema,
		form.WithPredictor(newPredictor(cfg, schema)),
		form.WithLogger(logger.New("form")),
	)
	if err != nil {
		return err
	}
	renderer, err := tui.New(
		tui.WithOutput(cmd.OutOrStdout()),
		tui.WithLocale(cfg.Render.Locale),
	)
	if err != nil {
		return err
	}

	if len(values) == 0 {
		err := renderer.Run(ctx, f)
		if errors.Is(err, tui.ErrAborted) {
			return nil
		}
		return err
	}

	for name, value := range values {
		if err := f.OnFieldChange(name, value); err != nil {
			return err
		}
	}
	out := f.Submit(ctx)
	page, err := renderer.Render(ctx, schema, f.View(), render.RenderOptions{
		Locale:       cfg.Render.Locale,
		SubmissionID: out.SubmissionID,
	})
	if err != nil {
		return err
	}
	if _, err := cmd.OutOrStdout().Write(page); err != nil {
		return err
	}
	if !out.OK() {
		return fmt.Errorf("prediction failed: %s", out.Message)
	}
	return nil
}

// parseAssignments turns repeated name=value flags into a value map. The last
// assignment of a name wins.
func parseAssignments(pairs []string) (map[string]string, error) {
	values := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		name, value, ok := strings.Cut(pair, "=")
		name = strings.TrimSpace(name)
		if !ok || name == "" {
			return nil, fmt.Errorf("invalid --set %q: expected name=value", pair)
		}
		values[name] = strings.TrimSpace(value)
	}
	return values, nil
}
