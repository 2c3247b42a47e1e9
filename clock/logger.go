package clock

import (
	"log/slog"
	"sync/atomic"
)

//nolint:gochecknoglobals
var pkgLogger atomic.Pointer[slog.Logger]

// SetLogger routes the package's warning diagnostics to l. When no
// logger has been set, diagnostics go to [slog.Default].
func SetLogger(l *slog.Logger) {
	pkgLogger.Store(l)
}

func logger() *slog.Logger {
	if l := pkgLogger.Load(); l != nil {
		return l
	}
	return slog.Default()
}
