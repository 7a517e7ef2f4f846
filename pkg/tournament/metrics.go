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

package tournament

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics is a Reporter exporting tournament progress as prometheus
// metrics on its own registry.
type Metrics struct {
	Registry *prometheus.Registry

	rounds   prometheus.Counter
	byes     prometheus.Counter
	attempts *prometheus.CounterVec
	moves    *prometheus.CounterVec
	matches  prometheus.Counter
	winner   prometheus.Gauge
}

// NewMetrics creates the tournament metrics and registers them on a new
// registry.
func NewMetrics() *Metrics {
	metrics := Metrics{
		Registry: prometheus.NewRegistry(),

		rounds: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "knockout",
			Name:      "rounds_total",
			Help:      "Rounds started.",
		}),
		byes: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "knockout",
			Name:      "byes_total",
			Help:      "Players advanced without a match.",
		}),
		attempts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "knockout",
			Subsystem: "match",
			Name:      "attempts_total",
			Help:      "Match attempts by referee decision.",
		}, []string{"score"}),
		moves: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "knockout",
			Name:      "moves_total",
			Help:      "Moves thrown by players.",
		}, []string{"move"}),
		matches: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "knockout",
			Subsystem: "match",
			Name:      "decided_total",
			Help:      "Matches decided.",
		}),
		winner: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "knockout",
			Name:      "winner",
			Help:      "1-indexed winner of the tournament, 0 while undecided, -1 if cancelled.",
		}),
	}

	metrics.Registry.MustRegister(
		metrics.rounds,
		metrics.byes,
		metrics.attempts,
		metrics.moves,
		metrics.matches,
		metrics.winner,
	)

	return &metrics
}

func (metrics *Metrics) RoundStarted(round int, pairs []Pair, bye int) {
	metrics.rounds.Inc()
	if bye != None {
		metrics.byes.Inc()
	}
}

func (metrics *Metrics) MatchPlayed(round int, attempt Attempt) {
	metrics.attempts.WithLabelValues(attempt.Score.String()).Inc()
	for _, move := range attempt.Moves {
		metrics.moves.WithLabelValues(move.String()).Inc()
	}

	if attempt.Score.Decisive() {
		metrics.matches.Inc()
	}
}

func (metrics *Metrics) Finished(result Result) {
	if result.Cancelled {
		metrics.winner.Set(-1)
		return
	}

	metrics.winner.Set(float64(result.Winner + 1))
}
