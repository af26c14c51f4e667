package main

import (
	"io"
	"sync"

	"github.com/jcgregorio/logger"
)

const (
	levelDebug = iota
	levelInfo
	levelWarning
	levelError
)

var levels = map[string]int{
	"debug":   levelDebug,
	"info":    levelInfo,
	"warning": levelWarning,
	"error":   levelError,
}

// levelLogger drops messages below the configured level before handing them
// to logger.Logger, which only knows whether to include debug output.
type levelLogger struct {
	l     *logger.Logger
	level int
}

// syncWriter adapts a plain io.Writer to logger.SyncWriter. Writes are
// serialized since check workers log concurrently.
type syncWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (s *syncWriter) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.w.Write(p)
}

func (*syncWriter) Sync() error { return nil }

func newLevelLogger(w io.Writer, level string) *levelLogger {
	lvl := levels[level]
	return &levelLogger{
		l: logger.NewFromOptions(&logger.Options{
			SyncWriter:   &syncWriter{w: w},
			DepthDelta:   2,
			IncludeDebug: lvl == levelDebug,
		}),
		level: lvl,
	}
}

func (ll *levelLogger) Debugf(format string, args ...interface{}) {
	if ll.level <= levelDebug {
		ll.l.Debugf(format, args...)
	}
}

func (ll *levelLogger) Infof(format string, args ...interface{}) {
	if ll.level <= levelInfo {
		ll.l.Infof(format, args...)
	}
}

func (ll *levelLogger) Warningf(format string, args ...interface{}) {
	if ll.level <= levelWarning {
		ll.l.Warningf(format, args...)
	}
}
