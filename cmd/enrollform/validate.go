package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/goliatone/go-enrollform/pkg/model"
	"github.com/goliatone/go-enrollform/pkg/navigation"
	"github.com/goliatone/go-enrollform/pkg/validation"
)

func (a *app) validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <file>",
		Short: "Validate a JSON or YAML values file",
		Long: `Reads field values from a file ("-" for stdin) and reports every
failing field. Prints the confirmation URL when the values are valid. Exits
with status 1 when any field is invalid.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(cmd.InOrStdin(), args[0])
			if err != nil {
				return err
			}
			values, err := model.ParseValues(data)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			errs := validation.Validate(values)
			if !errs.Empty() {
				for _, verr := range errs.List() {
					fmt.Fprintf(out, "%s: %s\n", verr.Field, verr.Message)
				}
				a.logger.Debug("values rejected", zap.Any("errors", errs.Strings()))
				return errInvalid
			}

			target := navigation.NewTarget(a.cfg.Form.TargetRoute, values)
			_, err = fmt.Fprintln(out, target.URL())
			return err
		},
	}
}

func readInput(stdin io.Reader, path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(stdin)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return data, nil
}
