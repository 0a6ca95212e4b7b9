package reload

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fulmenhq/spellguard/correction"
)

func writeDict(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "dict.tsv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// reloadOnce is exercised directly rather than via a real delivered
// SIGHUP: driving an actual OS signal in a unit test risks killing the
// test process if it arrives before signal.Notify registers, and tells
// us nothing that testing the handler logic directly doesn't already.
func TestReloadOnceAppliesFreshConfig(t *testing.T) {
	dictPath := writeDict(t, "hello\t100\n")
	engine := correction.New()
	require.NoError(t, engine.Load(correction.LoadConfig{DictionaryPath: dictPath}))

	dictPath2 := writeDict(t, "hello\t100\nworld\t200\n")
	w := New(engine, func() (correction.LoadConfig, error) {
		return correction.LoadConfig{DictionaryPath: dictPath2}, nil
	}, nil)

	w.reloadOnce()
	assert.Equal(t, 2, engine.Stats().DictionarySize)
}

func TestReloadOnceKeepsCurrentSnapshotOnConfigError(t *testing.T) {
	dictPath := writeDict(t, "hello\t100\n")
	engine := correction.New()
	require.NoError(t, engine.Load(correction.LoadConfig{DictionaryPath: dictPath}))

	w := New(engine, func() (correction.LoadConfig, error) {
		return correction.LoadConfig{}, fmt.Errorf("boom")
	}, nil)

	w.reloadOnce()
	assert.Equal(t, 1, engine.Stats().DictionarySize)
}

func TestReloadOnceKeepsCurrentSnapshotOnLoadError(t *testing.T) {
	dictPath := writeDict(t, "hello\t100\n")
	engine := correction.New()
	require.NoError(t, engine.Load(correction.LoadConfig{DictionaryPath: dictPath}))

	w := New(engine, func() (correction.LoadConfig, error) {
		return correction.LoadConfig{DictionaryPath: filepath.Join(t.TempDir(), "missing.tsv")}, nil
	}, nil)

	w.reloadOnce()
	assert.Equal(t, 1, engine.Stats().DictionarySize)
}

func TestListenStopsOnContextCancel(t *testing.T) {
	engine := correction.New()
	w := New(engine, func() (correction.LoadConfig, error) { return correction.LoadConfig{}, nil }, nil)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Listen(ctx) }()

	time.Sleep(10 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("Listen did not return after context cancellation")
	}
}

func TestListenStopsOnStop(t *testing.T) {
	engine := correction.New()
	w := New(engine, func() (correction.LoadConfig, error) { return correction.LoadConfig{}, nil }, nil)

	done := make(chan error, 1)
	go func() { done <- w.Listen(context.Background()) }()

	time.Sleep(10 * time.Millisecond)
	w.Stop()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("Listen did not return after Stop")
	}
}

func TestListenReusableAfterContextCancel(t *testing.T) {
	engine := correction.New()
	w := New(engine, func() (correction.LoadConfig, error) { return correction.LoadConfig{}, nil }, nil)

	ctx1, cancel1 := context.WithCancel(context.Background())
	done1 := make(chan error, 1)
	go func() { done1 <- w.Listen(ctx1) }()
	time.Sleep(10 * time.Millisecond)
	cancel1()
	select {
	case <-done1:
	case <-time.After(time.Second):
		t.Fatal("first Listen did not return after context cancellation")
	}

	ctx2, cancel2 := context.WithCancel(context.Background())
	defer cancel2()
	done2 := make(chan error, 1)
	go func() { done2 <- w.Listen(ctx2) }()
	time.Sleep(10 * time.Millisecond)
	cancel2()
	select {
	case err := <-done2:
		assert.ErrorIs(t, err, context.Canceled, "watcher must be Listen()-able again after a prior Listen exited via context cancellation")
	case <-time.After(time.Second):
		t.Fatal("second Listen did not return after context cancellation")
	}
}

func TestSecondListenFailsWhileRunning(t *testing.T) {
	engine := correction.New()
	w := New(engine, func() (correction.LoadConfig, error) { return correction.LoadConfig{}, nil }, nil)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = w.Listen(ctx) }()
	time.Sleep(10 * time.Millisecond)

	err := w.Listen(context.Background())
	require.Error(t, err)
	w.Stop()
}
