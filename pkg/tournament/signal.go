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
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/semaphore"
)

var ErrProvision = errors.New("provision: could not create primitives")

// Signals holds the handshake primitives between the arbiter and the
// players, apart from the state lock which lives inside State.
//
// A player's move is visible to the arbiter once the arbiter has acquired
// the submitted semaphore, since the player publishes its move under the
// state lock strictly before releasing it.
type Signals struct {
	// activate[p] is player p's binary activation signal.
	activate []chan struct{}

	// submitted counts moves that have been published but not yet seen by
	// the arbiter. It is created fully acquired so the count starts at 0.
	submitted *semaphore.Weighted
	capacity  int64

	closeOnce sync.Once
	closed    atomic.Bool
}

func newSignals(players int) (*Signals, error) {
	signals := Signals{
		activate: make([]chan struct{}, players),

		// At most one unconsumed move exists per player at any time.
		capacity:  int64(players),
		submitted: semaphore.NewWeighted(int64(players)),
	}

	if !signals.submitted.TryAcquire(signals.capacity) {
		return nil, fmt.Errorf("%w: move-submitted semaphore", ErrProvision)
	}

	for i := range signals.activate {
		signals.activate[i] = make(chan struct{}, 1)
	}

	return &signals, nil
}

// Activate asks player to make one move. Activating a player which has a
// pending activation is a no-op.
func (signals *Signals) Activate(player int) {
	select {
	case signals.activate[player] <- struct{}{}:
	default:
	}
}

// Broadcast activates every player once.
func (signals *Signals) Broadcast() {
	for player := range signals.activate {
		signals.Activate(player)
	}
}

// Await blocks player until it is activated. It returns false if the
// signals have been released.
func (signals *Signals) Await(player int) bool {
	_, ok := <-signals.activate[player]
	return ok
}

// Submit notifies the arbiter that a move has been published.
func (signals *Signals) Submit() {
	signals.submitted.Release(1)
}

// WaitSubmitted blocks until n moves have been submitted or ctx is done,
// in which case the wait is abandoned and ctx's error returned.
func (signals *Signals) WaitSubmitted(ctx context.Context, n int) error {
	for i := 0; i < n; i++ {
		// Acquire may succeed on a done context if a move is available.
		if err := ctx.Err(); err != nil {
			return err
		}

		if err := signals.submitted.Acquire(ctx, 1); err != nil {
			return err
		}
	}

	return nil
}

// Close releases the activation signals. It must only be called once no
// player is running anymore; later calls are no-ops.
func (signals *Signals) Close() {
	signals.closeOnce.Do(func() {
		for _, activate := range signals.activate {
			close(activate)
		}
		signals.closed.Store(true)
	})
}

// Closed reports whether the signals have been released.
func (signals *Signals) Closed() bool {
	return signals.closed.Load()
}
