package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-priceform/pkg/form"
	"github.com/goliatone/go-priceform/pkg/render"
	"github.com/goliatone/go-priceform/pkg/renderers/tui"
	"github.com/goliatone/go-priceform/pkg/renderers/vanilla"
)

var (
	renderOutput   string
	renderPretty   bool
	renderRenderer string
	renderAction   string
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render the empty prediction form",
	RunE:  runRender,
}

func init() {
	renderCmd.Flags().StringVarP(&renderOutput, "output", "o", "", "write to file instead of stdout")
	renderCmd.Flags().BoolVar(&renderPretty, "pretty", false, "format the HTML output")
	renderCmd.Flags().StringVar(&renderRenderer, "renderer", "vanilla", "renderer to use (vanilla or tui)")
	renderCmd.Flags().StringVar(&renderAction, "action", "", "form action URL")
	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	schema, err := loadSchema(ctx, cfg)
	if err != nil {
		return err
	}

	registry, err := newRendererRegistry(cfg.Render.Locale, renderPretty || cfg.Render.Pretty)
	if err != nil {
		return err
	}
	renderer, err := registry.Get(renderRenderer)
	if err != nil {
		return err
	}

	f, err := form.New(schema)
	if err != nil {
		return err
	}
	out, err := renderer.Render(ctx, schema, f.View(), render.RenderOptions{
		Action: renderAction,
		Locale: cfg.Render.Locale,
	})
	if err != nil {
		return fmt.Errorf("render %s: %w", renderer.Name(), err)
	}

	if renderOutput == "" {
		_, err = cmd.OutOrStdout().Write(out)
		return err
	}
	if err := os.WriteFile(renderOutput, out, 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

func newRendererRegistry(locale string, pretty bool) (*render.Registry, error) {
	html, err := vanilla.New(
		vanilla.WithLocale(locale),
		vanilla.WithPrettyOutput(pretty),
	)
	if err != nil {
		return nil, err
	}
	text, err := tui.New(tui.WithLocale(locale))
	if err != nil {
		return nil, err
	}
	return render.NewRegistry(html, text)
}
