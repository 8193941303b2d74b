package renderer

import (
	"github.com/golang/glog"

	"github.com/df07/go-nextweek-raytracer/pkg/core"
)

// DefaultLogger implements core.Logger on top of glog
type DefaultLogger struct{}

func (dl *DefaultLogger) Printf(format string, args ...interface{}) {
	glog.Infof(format, args...)
}

// NewDefaultLogger creates a new default logger
func NewDefaultLogger() core.Logger {
	return &DefaultLogger{}
}

// discardLogger drops every message
type discardLogger struct{}

func (discardLogger) Printf(format string, args ...interface{}) {}

// NewDiscardLogger creates a logger that drops every message
func NewDiscardLogger() core.Logger {
	return discardLogger{}
}
