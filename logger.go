package hexmap

import (
	"log/slog"
	"sync/atomic"
)

// discard is the logger in effect until SetLogger is called.
var discard = slog.New(slog.DiscardHandler)

var current atomic.Pointer[slog.Logger]

// SetLogger routes hexmap's log output to l. Pass nil to silence it again,
// which is also the state a program starts in. SetLogger is safe for
// concurrent use.
//
// hexmap logs at [slog.LevelDebug] only: the binding axis and tile size
// each time NewLayout fits a grid.
//
// Example:
//
//	hexmap.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	current.Store(l)
}

// Logger returns the logger hexmap writes to. It never returns nil.
func Logger() *slog.Logger {
	if l := current.Load(); l != nil {
		return l
	}
	return discard
}
