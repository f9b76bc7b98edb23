package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-priceform/pkg/schema"
)

var schemaFormat string

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the resolved field schema",
	RunE:  runSchema,
}

func init() {
	schemaCmd.Flags().StringVarP(&schemaFormat, "format", "f", string(schema.FormatJSON), "output format (json or yaml)")
	rootCmd.AddCommand(schemaCmd)
}

func runSchema(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	form, err := loadSchema(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	data, err := schema.Encode(form, schema.Format(schemaFormat))
	if err != nil {
		return fmt.Errorf("encode schema: %w", err)
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}
