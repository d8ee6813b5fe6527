// Copyright The Shipwright Contributors
//
// SPDX-License-Identifier: Apache-2.0

package ctxlog

import (
	"context"

	"github.com/go-logr/logr"

	logf "sigs.k8s.io/controller-runtime/pkg/log"
)

type contextLogger struct{}

var (
	loggerKey = &contextLogger{}
)

// NewParentContext returns a new context from the
// parent context.Background one. This new context
// stores our logger implementation
func NewParentContext(log logr.Logger) context.Context {
	return IntoContext(context.Background(), log)
}

// IntoContext returns a child context of the given one
// that stores the logger
func IntoContext(ctx context.Context, log logr.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, log)
}

// NewContext returns a new child context whose logger carries
// the given name, for example the name of the enricher that
// is currently running
func NewContext(ctx context.Context, name string) context.Context {
	return context.WithValue(ctx, loggerKey, ExtractLogger(ctx).WithName(name))
}

// WithValues returns a child context whose logger attaches the
// given key/value pairs to every log line
func WithValues(ctx context.Context, keysAndValues ...interface{}) context.Context {
	return context.WithValue(ctx, loggerKey, ExtractLogger(ctx).WithValues(keysAndValues...))
}

// ExtractLogger returns the logger stored in the context. Contexts
// without a logger yield a logger that discards everything.
func ExtractLogger(ctx context.Context) logr.Logger {
	log, ok := ctx.Value(loggerKey).(logr.Logger)
	if !ok || log.GetSink() == nil {
		if logger, err := logr.FromContext(ctx); err == nil {
			log = logger
		}
		if log.GetSink() == nil {
			log = log.WithSink(logf.NullLogSink{})
		}
	}
	return log
}
