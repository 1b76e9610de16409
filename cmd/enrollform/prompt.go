package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-enrollform/pkg/form"
	"github.com/goliatone/go-enrollform/pkg/model"
	"github.com/goliatone/go-enrollform/pkg/navigation"
	"github.com/goliatone/go-enrollform/pkg/render"
	"github.com/goliatone/go-enrollform/pkg/renderers/tui"
)

func (a *app) promptCmd() *cobra.Command {
	var (
		format      string
		maxAttempts int
	)

	cmd := &cobra.Command{
		Use:   "prompt",
		Short: "Fill in the enrollment form in the terminal",
		Long: `Prompts for each field in order. A field is asked again while its
value is invalid. On submit the confirmation URL is printed, followed by the
submitted values in the chosen format.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			decorators, err := a.formDecorators()
			if err != nil {
				return err
			}
			formModel, err := model.NewBuilder(
				model.WithCountries(a.cfg.Form.Countries),
				model.WithDecorators(decorators...),
			).Build()
			if err != nil {
				return err
			}

			initial := model.DefaultValues()
			initial.Country = a.cfg.Form.DefaultCountry

			renderer, err := tui.New(
				tui.WithPromptDriver(tui.NewSurveyDriver(cmd.ErrOrStderr())),
				tui.WithOutputFormat(tui.OutputFormat(format)),
				tui.WithMaxAttempts(maxAttempts),
				tui.WithControllerOptions(
					form.WithLogger(a.logger),
					form.WithTargetRoute(a.cfg.Form.TargetRoute),
					form.WithNavigator(navigation.Printer{
						Writer:  cmd.OutOrStdout(),
						BaseURL: a.cfg.Server.BaseURL,
					}),
				),
			)
			if err != nil {
				return err
			}

			out, err := renderer.Render(cmd.Context(), formModel, render.RenderOptions{
				State: form.New(form.WithInitialValues(initial)).State(),
			})
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return err
		},
	}

	cmd.Flags().StringVarP(&format, "output", "o", string(tui.OutputFormatJSON), "output format: json, form or pretty")
	cmd.Flags().IntVar(&maxAttempts, "max-attempts", tui.DefaultMaxAttempts, "prompts per field before giving up")
	return cmd
}

// formDecorators turns form config into model decorators.
func (a *app) formDecorators() ([]model.Decorator, error) {
	labels, err := a.cfg.Form.FieldLabels()
	if err != nil {
		return nil, err
	}
	if len(labels) == 0 {
		return nil, nil
	}
	return []model.Decorator{model.RelabelFields(labels)}, nil
}
