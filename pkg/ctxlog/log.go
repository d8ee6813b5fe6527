// Copyright The Shipwright Contributors
//
// SPDX-License-Identifier: Apache-2.0

package ctxlog

import (
	"context"
	"flag"
	"io"
	"os"

	"github.com/go-logr/logr"
	"go.uber.org/zap/zapcore"

	logf "sigs.k8s.io/controller-runtime/pkg/log"
	"sigs.k8s.io/controller-runtime/pkg/log/zap"
)

var zapOptions = zap.Options{
	StacktraceLevel: zapcore.PanicLevel,
}

// CustomZapFlagSet returns the flag set with the zap logging
// options (--zap-log-level, --zap-encoder, ...)
func CustomZapFlagSet() *flag.FlagSet {
	fs := flag.NewFlagSet("zap", flag.ExitOnError)
	zapOptions.BindFlags(fs)
	return fs
}

// NewLogger returns a new Logger instance writing to stderr,
// configured from the zap flags
func NewLogger(name string) logr.Logger {
	return NewLoggerTo(os.Stderr, name)
}

// NewLoggerTo returns a new Logger instance writing to the
// provided writer
func NewLoggerTo(w io.Writer, name string) logr.Logger {
	l := zap.New(zap.UseFlagOptions(&zapOptions), zap.WriteTo(w))

	logf.SetLogger(l)

	return l.WithName(name)
}

// Error returns an ERROR level log from an specified context
func Error(ctx context.Context, err error, msg string, v ...interface{}) {
	l := ExtractLogger(ctx)
	l.Error(err, msg, v...)
}

// Debug returns an DEBUG level log from an specified context
func Debug(ctx context.Context, msg string, v ...interface{}) {
	l := ExtractLogger(ctx)
	l.V(1).Info(msg, v...)
}

// Info returns an INFO level log from an specified context
func Info(ctx context.Context, msg string, v ...interface{}) {
	l := ExtractLogger(ctx)
	l.Info(msg, v...)
}
