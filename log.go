package validatorjs

import (
	"log/slog"
	"sync/atomic"

	"github.com/go-softwarelab/common/pkg/slogx"
)

var pkgLogger atomic.Pointer[slog.Logger]

func init() {
	pkgLogger.Store(silentLogger())
}

func silentLogger() *slog.Logger {
	return slogx.NewBuilder().Silent().Logger()
}

// SetLogger installs the logger used for diagnostics.  Logging is silent
// until a logger is installed; nil restores the silent logger.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = silentLogger()
	}
	pkgLogger.Store(l.With(slog.String("service", "validatorjs")))
}

func logger() *slog.Logger {
	return pkgLogger.Load()
}
