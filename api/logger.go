package api

import "go.vocdoni.io/dvote/log"

// Logger is the logger used by the clients. Remote API errors are reported
// with Warnw before being returned to the caller.
type Logger interface {
	Debugw(msg string, keyvalues ...any)
	Warnw(msg string, keyvalues ...any)
}

type vocdoniLogger struct{}

func (vocdoniLogger) Debugw(msg string, keyvalues ...any) { log.Debugw(msg, keyvalues...) }
func (vocdoniLogger) Warnw(msg string, keyvalues ...any)  { log.Warnw(msg, keyvalues...) }

type silentLogger struct{}

func (silentLogger) Debugw(string, ...any) {}
func (silentLogger) Warnw(string, ...any)  {}

var (
	// DefaultLogger writes through the global dvote logger, its level is set
	// with log.Init.
	DefaultLogger Logger = vocdoniLogger{}
	// SilentLogger drops every message.
	SilentLogger Logger = silentLogger{}
)
