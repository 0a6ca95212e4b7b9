// Package reload triggers a correction.Engine reload on SIGHUP,
// grounded on the teacher's pkg/signals Manager/OnReload/Listen shape
// but trimmed to the one behavior spec §5 asks for: "an external
// trigger atomically swaps in a freshly built Snapshot." The
// shutdown/double-tap/cleanup-chain machinery of the teacher's signals
// package belongs to a long-running service harness, not a library, so
// it is dropped; what is kept is the registration/listen pattern.
package reload

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/fulmenhq/spellguard/correction"
	"github.com/fulmenhq/spellguard/logging"
)

// ReloadFunc builds a fresh correction.LoadConfig for the next reload.
// Returning an error aborts that reload attempt; the engine keeps
// serving its current Snapshot (spec §5: a failed reload must never
// disturb readers of the live snapshot).
type ReloadFunc func() (correction.LoadConfig, error)

// Watcher listens for SIGHUP and reloads engine using cfgFunc each
// time, logging success or failure if a logger is attached.
type Watcher struct {
	engine  *correction.Engine
	cfgFunc ReloadFunc
	log     *logging.Logger

	mu       sync.Mutex
	sigChan  chan os.Signal
	stopChan chan struct{}
	running  bool
}

// New constructs a Watcher. log may be nil.
func New(engine *correction.Engine, cfgFunc ReloadFunc, log *logging.Logger) *Watcher {
	return &Watcher{
		engine:  engine,
		cfgFunc: cfgFunc,
		log:     log,
		sigChan: make(chan os.Signal, 1),
	}
}

// Listen blocks, reloading on every SIGHUP, until ctx is cancelled or
// Stop is called. Safe to run in its own goroutine. A Watcher is
// reusable: once Listen returns (by any of the three exit paths) it
// may be Listen()'d again.
func (w *Watcher) Listen(ctx context.Context) error {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return fmt.Errorf("reload: watcher already listening")
	}
	w.running = true
	stopChan := make(chan struct{})
	w.stopChan = stopChan
	w.mu.Unlock()

	defer func() {
		w.mu.Lock()
		w.running = false
		w.mu.Unlock()
	}()

	signal.Notify(w.sigChan, syscall.SIGHUP)
	defer signal.Stop(w.sigChan)

	for {
		select {
		case <-w.sigChan:
			w.reloadOnce()
		case <-ctx.Done():
			return ctx.Err()
		case <-stopChan:
			return nil
		}
	}
}

// Stop ends a running Listen call. A no-op if Listen is not running.
func (w *Watcher) Stop() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.running {
		close(w.stopChan)
	}
}

func (w *Watcher) reloadOnce() {
	cfg, err := w.cfgFunc()
	if err != nil {
		if w.log != nil {
			w.log.Error("reload config build failed; keeping current snapshot")
		}
		return
	}
	if err := w.engine.Reload(cfg); err != nil {
		if w.log != nil {
			w.log.Error("reload failed; keeping current snapshot")
		}
		return
	}
	if w.log != nil {
		w.log.Info("reload succeeded")
	}
}
