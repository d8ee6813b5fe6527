// Copyright The Shipwright Contributors
//
// SPDX-License-Identifier: Apache-2.0

package ctxlog_test

import (
	"bytes"
	"context"
	"errors"
	"flag"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/go-logr/logr"

	"github.com/workspace7/pipeline-enricher/pkg/ctxlog"
)

var _ = Describe("Logging with a context", func() {
	var (
		buf *bytes.Buffer
		ctx context.Context
	)

	BeforeEach(func() {
		buf = &bytes.Buffer{}
		ctx = ctxlog.NewParentContext(ctxlog.NewLoggerTo(buf, "test"))
	})

	It("writes info messages with their values", func() {
		ctxlog.Info(ctx, "Adding OpenShift Build Config with Jenkins Pipeline Strategy", "name", "demo-pipelines")

		Expect(buf.String()).To(ContainSubstring("Adding OpenShift Build Config with Jenkins Pipeline Strategy"))
		Expect(buf.String()).To(ContainSubstring("demo-pipelines"))
		Expect(buf.String()).To(ContainSubstring(`"logger":"test"`))
	})

	It("writes errors", func() {
		ctxlog.Error(ctx, errors.New("boom"), "enricher failed")

		Expect(buf.String()).To(ContainSubstring("enricher failed"))
		Expect(buf.String()).To(ContainSubstring("boom"))
	})

	It("does not write debug messages by default", func() {
		ctxlog.Debug(ctx, "hidden")
		Expect(buf.String()).ToNot(ContainSubstring("hidden"))
	})

	It("names the logger of a child context", func() {
		ctxlog.Info(ctxlog.NewContext(ctx, "fmp-openshift-bc-enricher"), "running")
		Expect(buf.String()).To(ContainSubstring(`"logger":"test.fmp-openshift-bc-enricher"`))
	})

	It("attaches values to the logger of a child context", func() {
		ctxlog.Info(ctxlog.WithValues(ctx, "project", "demo"), "running")
		Expect(buf.String()).To(ContainSubstring(`"project":"demo"`))
	})

	It("stores a logger in an existing context", func() {
		other := &bytes.Buffer{}
		child := ctxlog.IntoContext(context.Background(), ctxlog.NewLoggerTo(other, "other"))

		ctxlog.Info(child, "message")
		Expect(other.String()).To(ContainSubstring("message"))
	})

	It("discards messages without a logger", func() {
		Expect(func() { ctxlog.Info(context.Background(), "nowhere") }).ToNot(Panic())
	})

	It("uses a logr logger of the context", func() {
		other := &bytes.Buffer{}
		child := logr.NewContext(context.Background(), ctxlog.NewLoggerTo(other, "logr"))

		ctxlog.Info(child, "from logr")
		Expect(other.String()).To(ContainSubstring("from logr"))
	})

	It("provides the zap flags", func() {
		fs := ctxlog.CustomZapFlagSet()
		Expect(fs.Lookup("zap-log-level")).ToNot(BeNil())
		Expect(fs.Lookup("zap-devel")).ToNot(BeNil())

		var names []string
		fs.VisitAll(func(f *flag.Flag) { names = append(names, f.Name) })
		Expect(names).To(ContainElement("zap-encoder"))
	})
})
