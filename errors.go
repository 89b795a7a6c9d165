package secstruct

import (
	"fmt"
	"log"
)

// Logger receives the engine's non-fatal warnings (spec.md §7:
// MissingAlpha substitutions, OctreeExcessiveDivision). It defaults to the
// standard logger, matching the ambient logging style used throughout this
// corpus (log.Printf calls straight to the standard library, no structured
// or leveled logger).
var Logger = log.Default()

// Error is the interface errors in this module implement: a message plus a
// Decorate method that lets a caller add call-stack context without
// changing the error's type or wrapping it in something else.
type Error interface {
	error
	Decorate(string) []string
}

// opError is the concrete Error implementation.
type opError struct {
	msg   string
	trail []string
}

func newError(format string, args ...interface{}) *opError {
	return &opError{msg: fmt.Sprintf(format, args...)}
}

func (e *opError) Error() string {
	return e.msg
}

// Decorate appends ctx to the error's call-stack trail and returns the
// trail so far. An empty ctx just returns the current trail.
func (e *opError) Decorate(ctx string) []string {
	if ctx != "" {
		e.trail = append(e.trail, ctx)
	}
	return e.trail
}
