package lib

import (
	"context"
	"errors"
	"sync/atomic"

	"github.com/solace-fi/solace-client-sub001/internal/interfaces"
)

var ErrTaskRunning = errors.New("task is already running")

// Task runs a Runnable in a separate goroutine and allows to stop it and wait for its exit
type Task struct {
	name    string
	runFunc func(ctx context.Context) error

	isRunning atomic.Bool
	cancel    atomic.Pointer[context.CancelFunc]
	doneCh    atomic.Pointer[chan struct{}]
	err       atomic.Pointer[error]
}

func NewTask(name string, runnable interfaces.Runnable) *Task {
	return NewTaskFunc(name, runnable.Run)
}

func NewTaskFunc(name string, f func(ctx context.Context) error) *Task {
	t := &Task{name: name, runFunc: f}
	done := make(chan struct{})
	t.doneCh.Store(&done)
	return t
}

func (t *Task) Name() string {
	return t.name
}

// Start launches the task, it returns ErrTaskRunning if the task was started and not stopped yet
func (t *Task) Start(ctx context.Context) error {
	if !t.isRunning.CompareAndSwap(false, true) {
		return ErrTaskRunning
	}

	subCtx, cancel := context.WithCancel(ctx)
	t.cancel.Store(&cancel)

	done := make(chan struct{})
	t.doneCh.Store(&done)
	t.err.Store(nil)

	go func() {
		defer close(done)
		defer t.isRunning.Store(false)

		err := t.runFunc(subCtx)
		cancel()
		if err != nil {
			t.err.Store(&err)
		}
	}()

	return nil
}

// Stop cancels the task context and returns a channel closed on task exit
func (t *Task) Stop() <-chan struct{} {
	if c := t.cancel.Load(); c != nil {
		(*c)()
	}
	return t.Done()
}

// Done returns a channel closed when the task exits
func (t *Task) Done() <-chan struct{} {
	return *t.doneCh.Load()
}

// Err returns the error the task exited with, nil if it is still running or exited cleanly
func (t *Task) Err() error {
	e := t.err.Load()
	if e == nil {
		return nil
	}
	return *e
}
