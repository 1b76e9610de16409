package main

import (
	"github.com/spf13/cobra"

	"github.com/goliatone/go-enrollform/pkg/openapi"
)

func (a *app) openapiCmd() *cobra.Command {
	var asYAML bool

	cmd := &cobra.Command{
		Use:   "openapi",
		Short: "Print the HTTP contract of the form",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if asYAML {
				_, err := out.Write(openapi.YAML())
				return err
			}
			contract, err := openapi.Load(cmd.Context())
			if err != nil {
				return err
			}
			payload, err := contract.JSON()
			if err != nil {
				return err
			}
			_, err = out.Write(append(payload, '\n'))
			return err
		},
	}
	cmd.Flags().BoolVar(&asYAML, "yaml", false, "print the YAML source instead of JSON")
	return cmd
}
