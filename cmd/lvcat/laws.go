// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvcat/category"
	"github.com/katalvlaran/lvcat/internal/scenario"
)

var errLawsViolated = errors.New("category laws violated")

func newLawsCmd(a *app) *cobra.Command {
	var (
		names []string
		jobs  int
	)
	cmd := &cobra.Command{
		Use:   "laws",
		Short: "Verify identity and associativity over the built-in scenarios",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !cmd.Flags().Changed("scenario") {
				names = a.cfg.Laws.Scenarios
			}
			if !cmd.Flags().Changed("jobs") {
				jobs = a.cfg.Laws.Jobs
			}
			if jobs < 1 {
				return fmt.Errorf("--jobs must be positive, got %d", jobs)
			}

			selected, err := scenario.Select(names...)
			if err != nil {
				return err
			}

			p := printer{w: cmd.OutOrStdout(), color: a.color}
			failed := 0
			for _, s := range selected {
				start := time.Now()
				out, err := s.Run(cmd.Context(), category.WithJobs(jobs))
				if err != nil {
					a.logger.Error("scenario aborted", "scenario", s.Name, "err", err)
					return err
				}
				a.logger.Debug("scenario done", "scenario", s.Name, "jobs", jobs, "elapsed", time.Since(start))
				p.outcome(s, out)
				if !out.OK() {
					failed++
				}
			}
			if failed > 0 {
				a.logger.Warn("law violations found", "scenarios", failed)
				return fmt.Errorf("%d scenario(s): %w", failed, errLawsViolated)
			}

			return nil
		},
	}
	cmd.Flags().StringSliceVar(&names, "scenario", nil, "scenario to run (repeatable); one of: "+fmt.Sprint(scenario.Names()))
	cmd.Flags().IntVar(&jobs, "jobs", 0, "parallel law checks (default from config, else GOMAXPROCS)")

	return cmd
}
