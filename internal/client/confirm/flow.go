// Package confirm implements the two-step delete confirmation: a delete is
// requested, shown to the user, and only dispatched once confirmed.
package confirm

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/gophdrop/internal/client/models"
)

var ErrNothingPending = errors.New("no delete pending confirmation")

type Phase string

const (
	Hidden  Phase = "hidden"
	Pending Phase = "pending"
)

// Remover performs the delete once confirmed. *session.Session satisfies it.
type Remover interface {
	Remove(ctx context.Context, id string) error
}

// Flow holds at most one pending target. It does not track the outcome of a
// dispatched delete.
type Flow struct {
	remover Remover

	mu      sync.Mutex
	target  models.FileRecord
	pending bool
}

func NewFlow(r Remover) *Flow {
	return &Flow{remover: r}
}

// Request queues target for confirmation, replacing any earlier request.
func (f *Flow) Request(target models.FileRecord) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.target = target
	f.pending = true
}

func (f *Flow) Cancel() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.target = models.FileRecord{}
	f.pending = false
}

// Confirm hides the flow and dispatches exactly one Remove for the pending
// target. The delete runs to completion even if ctx is cancelled later; its
// result is delivered on the returned channel.
func (f *Flow) Confirm(ctx context.Context) (<-chan error, error) {
	f.mu.Lock()
	if !f.pending {
		f.mu.Unlock()
		return nil, ErrNothingPending
	}
	target := f.target
	f.target = models.FileRecord{}
	f.pending = false
	f.mu.Unlock()

	done := make(chan error, 1)
	go func() {
		done <- f.remover.Remove(context.WithoutCancel(ctx), target.ID)
	}()
	return done, nil
}

func (f *Flow) Pending() (models.FileRecord, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.target, f.pending
}

func (f *Flow) Phase() Phase {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.pending {
		return Pending
	}
	return Hidden
}

// Message is the confirmation prompt for the pending target, or "" when
// nothing is pending.
func (f *Flow) Message() string {
	target, ok := f.Pending()
	if !ok {
		return ""
	}
	return fmt.Sprintf("Are you sure you want to delete \"%s\"? This action cannot be undone.", target.OriginalName)
}
