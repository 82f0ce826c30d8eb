// Package log defines the logging interface for go-winunc.
//
// Given that there're many go logging frameworks out there,
// we can't make the choice. So we require user to adapt
// the logger they choose into our logging interface.
//
// The interface is deliberately narrow: the library reports
// noteworthy actions (connecting, retrying with different
// credentials, disconnecting) as single human-readable lines,
// delivered synchronously from the calling goroutine.
package log

// Log is the logger interface.
type Log interface {
	// Line reports one noteworthy action.
	Line(msg string)
}

// Func adapts a plain function to the Log interface.
type Func func(msg string)

func (f Func) Line(msg string) { f(msg) }

// NoLog is the null implementation of the Log.
type NoLog struct{}

func (NoLog) Line(string) {}

var _ Log = (*NoLog)(nil)
var _ Log = Func(nil)
