package observability

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
)

// LogHooks returns hooks that log every event at debug level.
func LogHooks(logger *log.Logger) *Hooks {
	l := logHooks{logger}
	return &Hooks{Pipeline: l, Cache: l, HTTP: l}
}

type logHooks struct{ l *log.Logger }

func (h logHooks) OnCompileStart(_ context.Context, panes int) {
	h.l.Debug("compile started", "panes", panes)
}

func (h logHooks) OnCompileComplete(_ context.Context, splits int, d time.Duration, err error) {
	if err != nil {
		h.l.Debug("compile failed", "err", err, "duration", d)
		return
	}
	h.l.Debug("compile finished", "splits", splits, "duration", d)
}

func (h logHooks) OnClassify(_ context.Context, layoutType string, d time.Duration) {
	h.l.Debug("classified", "type", layoutType, "duration", d)
}

func (h logHooks) OnCacheHit(_ context.Context, keyType string) {
	h.l.Debug("cache hit", "kind", keyType)
}

func (h logHooks) OnCacheMiss(_ context.Context, keyType string) {
	h.l.Debug("cache miss", "kind", keyType)
}

func (h logHooks) OnCacheSet(_ context.Context, keyType string, size int) {
	h.l.Debug("cache set", "kind", keyType, "bytes", size)
}

func (h logHooks) OnRequest(_ context.Context, method, path string) {
	h.l.Debug("request", "method", method, "path", path)
}

func (h logHooks) OnResponse(_ context.Context, method, path string, status int, d time.Duration) {
	h.l.Info("response", "method", method, "path", path, "status", status, "duration", d)
}
