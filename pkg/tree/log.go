package tree

import (
	stdlog "log"
	"os"

	"github.com/go-logr/logr"
	"github.com/go-logr/stdr"
)

// defaultLogger returns the logr.Logger a Tree uses when its caller
// doesn't supply one: stdr over the standard library logger, writing to
// stderr. The tree logs grow, shrink and face-transfer events at V(1),
// which stdr suppresses at its default verbosity of 0.
func defaultLogger() logr.Logger {
	return stdr.New(stdlog.New(os.Stderr, "", stdlog.LstdFlags))
}
