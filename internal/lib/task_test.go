package lib

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestTaskStop(t *testing.T) {
	task := NewTaskFunc("test", func(ctx context.Context) error {
		<-ctx.Done()
		return ctx.Err()
	})

	require.NoError(t, task.Start(context.Background()))
	require.ErrorIs(t, task.Start(context.Background()), ErrTaskRunning)

	select {
	case <-task.Stop():
	case <-time.After(time.Second):
		t.Fatal("task should exit after stop")
	}
	require.ErrorIs(t, task.Err(), context.Canceled)
}

func TestTaskInternalError(t *testing.T) {
	errKiki := errors.New("kiki")
	task := NewTaskFunc("test", func(ctx context.Context) error {
		return errKiki
	})

	require.NoError(t, task.Start(context.Background()))

	select {
	case <-task.Done():
	case <-time.After(time.Second):
		t.Fatal("task should exit on its own")
	}
	require.ErrorIs(t, task.Err(), errKiki)
}

func TestTaskRestart(t *testing.T) {
	runs := 0
	task := NewTaskFunc("test", func(ctx context.Context) error {
		runs++
		return nil
	})

	require.NoError(t, task.Start(context.Background()))
	<-task.Done()
	// isRunning is reset after done is closed
	require.Eventually(t, func() bool {
		return task.Start(context.Background()) == nil
	}, time.Second, 5*time.Millisecond)
	<-task.Done()
	require.Equal(t, 2, runs)
}

func TestWrapError(t *testing.T) {
	parent := errors.New("parent")
	child := errors.New("child")
	err := WrapError(parent, child)
	require.ErrorIs(t, err, parent)
	require.ErrorIs(t, err, child)
	require.Equal(t, "parent: child", err.Error())
}
