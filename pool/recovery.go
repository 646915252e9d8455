// Copyright (c) 2025, Vizcore Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pool

import (
	"errors"
	"fmt"

	baseerrors "github.com/vizcore/vizcore/base/errors"
	"github.com/vizcore/vizcore/base/logx"
	"golang.org/x/sync/errgroup"
)

// MaxRestoreAttempts is the bounded retry budget per restore event:
// an instance's restore hook is invoked at most this many times within
// one restore signal, and never a 4th time. A future restore signal
// re-attempts still-pending instances under the same bound, so
// recovery is at-least-once-attempted but never infinitely retried.
const MaxRestoreAttempts = 3

// ErrRecoveryExhausted tags instances that exhausted the retry budget
// within one restore event. It is logged, never returned: partial
// recovery is an expected terminal state, not an error.
var ErrRecoveryExhausted = errors.New("pool: context recovery attempts exhausted")

// pendingRecovery tracks one instance awaiting context restoration.
type pendingRecovery struct {
	inst     *Instance
	attempts int
}

// ContextLost marks every currently active instance pending-recovery
// with a zero retry counter. It is invoked on the host's drawable
// context lost signal.
func (pl *Pool) ContextLost() {
	pl.Lock()
	defer pl.Unlock()
	for id, inst := range pl.instances {
		pl.pending[id] = &pendingRecovery{inst: inst}
	}
	logx.PrintWarn("pool: drawable context lost, %d instances pending recovery", len(pl.pending))
}

// ContextRestored attempts to restore every pending instance, invoked
// on the host's restored signal. Restore attempts run as independent
// concurrent operations so they never block a render-clock tick; each
// instance gets at most [MaxRestoreAttempts] attempts this event.
// Instances that succeed leave the pending set; instances that exhaust
// the budget remain pending until a future restore signal. The number
// of instances recovered is returned; partial recovery is normal.
func (pl *Pool) ContextRestored() int {
	pl.Lock()
	attempts := make([]*pendingRecovery, 0, len(pl.pending))
	for _, pr := range pl.pending {
		pr.attempts = 0
		attempts = append(attempts, pr)
	}
	pl.Unlock()

	var g errgroup.Group
	recovered := make(chan int, len(attempts))
	for _, pr := range attempts {
		pr := pr
		g.Go(func() error {
			for pr.attempts < MaxRestoreAttempts {
				pr.attempts++
				if err := pr.inst.Renderer.RestoreContext(); err == nil {
					recovered <- pr.inst.ID
					return nil
				}
			}
			baseerrors.Log(fmt.Errorf("%w: instance %d after %d attempts",
				ErrRecoveryExhausted, pr.inst.ID, pr.attempts))
			return nil
		})
	}
	g.Wait()
	close(recovered)

	pl.Lock()
	defer pl.Unlock()
	n := 0
	for id := range recovered {
		delete(pl.pending, id)
		n++
	}
	return n
}

// NumPending returns the number of instances still pending recovery.
func (pl *Pool) NumPending() int {
	pl.Lock()
	defer pl.Unlock()
	return len(pl.pending)
}
