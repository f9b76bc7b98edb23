package tui

import (
	"context"
	"errors"
	"strings"

	"github.com/goliatone/go-priceform/pkg/form"
)

// Run prompts for every field, submits, and prints the price or error. It
// repeats while the user confirms another round, keeping the previous answers
// as defaults.
func (r *Renderer) Run(ctx context.Context, f *form.PredictionForm) error {
	if ctx == nil {
		return errors.New("tui: context is required")
	}
	if f == nil {
		return errors.New("tui: form is required")
	}
	schema := f.Schema()

	for {
		values := f.Values()
		for _, field := range schema.Fields {
			raw, err := r.driver.Input(ctx, InputConfig{
				Message:     fieldLabel(field) + ":",
				Default:     values[field.Name],
				Help:        field.Description,
				Placeholder: field.Placeholder,
			})
			if err != nil {
				return err
			}
			if err := f.OnFieldChange(field.Name, strings.TrimSpace(raw)); err != nil {
				return err
			}
		}

		f.Submit(ctx)
		if err := r.driver.Info(ctx, r.resultLine(f.View(), r.locale)); err != nil {
			return err
		}

		again, err := r.driver.Confirm(ctx, ConfirmConfig{Message: "Predict another?", Default: true})
		if err != nil {
			return err
		}
		if !again {
			return nil
		}
	}
}
