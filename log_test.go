// SPDX-License-Identifier: Unlicense OR MIT

package eguid3d11

import (
	"context"
	"log/slog"
	"sync"
	"testing"
)

// countHandler counts warnings so tests can assert that contract
// violations are reported without inspecting message text.
type countHandler struct {
	mu    sync.Mutex
	warns int
}

func (h *countHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= slog.LevelWarn
}

func (h *countHandler) Handle(_ context.Context, r slog.Record) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if r.Level >= slog.LevelWarn {
		h.warns++
	}
	return nil
}

func (h *countHandler) WithAttrs([]slog.Attr) slog.Handler { return h }
func (h *countHandler) WithGroup(string) slog.Handler      { return h }

func (h *countHandler) count() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.warns
}

// captureWarnings routes this package's log output to a counter for
// the duration of the test.
func captureWarnings(t *testing.T) *countHandler {
	t.Helper()
	h := new(countHandler)
	SetLogger(slog.New(h))
	t.Cleanup(func() {
		SetLogger(nil)
	})
	return h
}
