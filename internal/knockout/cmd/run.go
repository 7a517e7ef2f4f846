// Copyright © 2024 Rak Laptudirm <rak@laptudirm.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cmd

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/briandowns/spinner"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"laptudirm.com/x/knockout/pkg/tournament"
)

const SPIN = 31

func Run() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run a knockout tournament",
		Args:  cobra.NoArgs,
		Long: heredoc.Doc(`run plays a single-elimination rock-paper-scissors tournament
			among the configured number of players, each of which runs
			concurrently and throws a random move whenever the arbiter
			asks it to.

			Players are paired in order every round. If a round has an
			odd number of players the last one advances with a bye. Tied
			matches are replayed until one of the players wins.

			The tournament can be interrupted at any time with Ctrl-C,
			after which every player is stopped before knockout exits.`),

		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := resolveConfig(cmd)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			log := logrus.NewEntry(logrus.StandardLogger())
			var reporters []tournament.Reporter

			quiet, _ := cmd.Flags().GetBool("quiet")
			var s *spinner.Spinner
			if quiet {
				s = spinner.New(spinner.CharSets[SPIN], 100*time.Millisecond, spinner.WithWriter(cmd.ErrOrStderr()))
				reporters = append(reporters, &spinnerReporter{spinner: s})
			} else {
				reporters = append(reporters, tournament.NewLogReporter(log, cmd.OutOrStdout()))
			}

			if addr, _ := cmd.Flags().GetString("metrics-addr"); addr != "" {
				metrics := tournament.NewMetrics()
				reporters = append(reporters, metrics)

				server := &http.Server{
					Addr:              addr,
					Handler:           promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{}),
					ReadHeaderTimeout: 5 * time.Second,
				}

				go func() {
					if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
						logrus.WithError(err).Error("metrics server failed")
					}
				}()
				defer server.Close()

				logrus.Infof("Serving metrics on http://%s/metrics", addr)
			}

			tour, err := tournament.NewTournament(
				config,
				tournament.WithLogger(log),
				tournament.WithReporter(reporters...),
			)
			if err != nil {
				return err
			}

			log.WithField("tournament", tour.ID.String()).Infof(
				"\x1b[32mStarting\x1b[0m %s with %d players", config.Name, config.Players,
			)

			if s != nil {
				s.Start() // Start the ~working~ spinner.
			}

			result, err := tour.Start(ctx)

			if s != nil {
				s.Stop() // Stop the ~working~ spinner.
				fmt.Fprintln(cmd.OutOrStdout(), result)
			}

			return err
		},
	}

	configFlags(cmd)
	cmd.Flags().BoolP("quiet", "q", false, "Show a spinner instead of every match")
	cmd.Flags().String("metrics-addr", "", "Serve prometheus metrics on this address while running")

	return cmd
}

// spinnerReporter shows the round being played as the spinner's suffix.
type spinnerReporter struct {
	spinner *spinner.Spinner
}

func (reporter *spinnerReporter) RoundStarted(round int, pairs []tournament.Pair, bye int) {
	reporter.spinner.Lock()
	reporter.spinner.Suffix = fmt.Sprintf(" Round #%d: %d matches", round, len(pairs))
	reporter.spinner.Unlock()
}

func (reporter *spinnerReporter) MatchPlayed(round int, attempt tournament.Attempt) {}

func (reporter *spinnerReporter) Finished(result tournament.Result) {}
