// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvcat/internal/scenario"
)

func newShapesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "shapes",
		Short: "Print the objects and morphisms of the standard shapes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cats, err := scenario.StandardShapes()
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			for i, c := range cats {
				if i > 0 {
					fmt.Fprintln(w)
				}
				a.logger.Debug("shape", "name", c.Name(), "homs", len(c.Homs()))
				fmt.Fprint(w, c.Describe())
			}

			return nil
		},
	}
}
