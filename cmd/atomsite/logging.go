package main

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"
	"github.com/zoobzio/capitan"

	"github.com/zoobzio/loadz"
	"github.com/zoobzio/loadz/content"
)

var (
	hookOnce sync.Once
	hookMu   sync.RWMutex
	hookLog  *logrus.Logger
)

func signalLogger() *logrus.Logger {
	hookMu.RLock()
	defer hookMu.RUnlock()
	return hookLog
}

// hookSignals routes loadz and content events to logger. Hooks are
// registered once per process; later calls only swap the logger.
func hookSignals(logger *logrus.Logger) {
	hookMu.Lock()
	hookLog = logger
	hookMu.Unlock()

	hookOnce.Do(func() {
		capitan.Hook(loadz.RunStarted, func(_ context.Context, e *capitan.Event) {
			name, _ := loadz.KeyName.From(e)
			signalLogger().WithField("fetcher", name).Debug("fetch started")
		})
		capitan.Hook(loadz.RunSucceeded, func(_ context.Context, e *capitan.Event) {
			name, _ := loadz.KeyName.From(e)
			d, _ := loadz.KeyDuration.From(e)
			signalLogger().WithFields(logrus.Fields{"fetcher": name, "duration": d}).Debug("fetch succeeded")
		})
		capitan.Hook(loadz.RunFailed, func(_ context.Context, e *capitan.Event) {
			name, _ := loadz.KeyName.From(e)
			msg, _ := loadz.KeyError.From(e)
			d, _ := loadz.KeyDuration.From(e)
			signalLogger().WithFields(logrus.Fields{"fetcher": name, "duration": d}).Warnf("fetch failed: %s", msg)
		})
		capitan.Hook(loadz.FetcherRefreshStarted, func(_ context.Context, e *capitan.Event) {
			name, _ := loadz.KeyName.From(e)
			watcher, _ := loadz.KeyWatcherType.From(e)
			signalLogger().WithFields(logrus.Fields{"fetcher": name, "watcher": watcher}).Info("refresh started")
		})
		capitan.Hook(loadz.FetcherRefreshStopped, func(_ context.Context, e *capitan.Event) {
			name, _ := loadz.KeyName.From(e)
			signalLogger().WithField("fetcher", name).Info("refresh stopped")
		})
		capitan.Hook(content.FallbackUsed, func(_ context.Context, e *capitan.Event) {
			op, _ := content.KeyOperation.From(e)
			reason, _ := content.KeyReason.From(e)
			signalLogger().WithFields(logrus.Fields{"operation": op, "reason": reason}).Debug("serving fallback data")
		})
		capitan.Hook(content.CatalogReplaced, func(_ context.Context, e *capitan.Event) {
			ct, _ := content.KeyContentType.From(e)
			n, _ := content.KeyClasses.From(e)
			signalLogger().WithFields(logrus.Fields{"content_type": ct, "classes": n}).Info("catalog replaced")
		})
		capitan.Hook(content.CatalogRejected, func(_ context.Context, e *capitan.Event) {
			reason, _ := content.KeyReason.From(e)
			signalLogger().WithField("reason", reason).Warn("catalog update rejected")
		})
	})
}
