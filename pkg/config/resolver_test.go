// Copyright The Shipwright Contributors
//
// SPDX-License-Identifier: Apache-2.0

package config_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"k8s.io/utils/ptr"

	. "github.com/workspace7/pipeline-enricher/pkg/config"
)

var _ = Describe("Resolver", func() {
	const enricher = "test-enricher"

	var keys = Keys{
		"enabled":       ptr.To("yes"),
		"genericSecret": nil,
	}

	It("should return the declared default when nothing is supplied", func() {
		r := NewDefaultConfig().Resolver(enricher, keys)

		value, ok := r.Lookup("enabled")
		Expect(ok).To(BeTrue())
		Expect(value).To(Equal("yes"))
		Expect(r.IsYes("enabled")).To(BeTrue())
	})

	It("should report options without default and value as absent", func() {
		r := NewDefaultConfig().Resolver(enricher, keys)

		value, ok := r.Lookup("genericSecret")
		Expect(ok).To(BeFalse())
		Expect(value).To(BeEmpty())
		Expect(r.GetOptional("genericSecret")).To(BeNil())
	})

	It("should not resolve undeclared options", func() {
		config := NewDefaultConfig()
		Expect(config.SetOverride(enricher + ".unknown=value")).To(Succeed())

		_, ok := config.Resolver(enricher, keys).Lookup("unknown")
		Expect(ok).To(BeFalse())
	})

	It("should prefer the configuration file over the default", func() {
		config := NewDefaultConfig()
		config.Values[enricher] = map[string]string{"enabled": "no"}

		Expect(config.Resolver(enricher, keys).IsYes("enabled")).To(BeFalse())
	})

	It("should keep a supplied empty value", func() {
		config := NewDefaultConfig()
		config.Values[enricher] = map[string]string{"genericSecret": ""}

		Expect(config.Resolver(enricher, keys).GetOptional("genericSecret")).To(Equal(ptr.To("")))
	})

	It("should prefer the environment over the configuration file", func() {
		var overrides = map[string]string{"ENRICHER_TEST_ENRICHER_GENERICSECRET": "from-env"}
		configWithEnvVariableOverrides(overrides, func(config *Config) {
			config.Values[enricher] = map[string]string{"genericSecret": "from-file"}
			Expect(config.Resolver(enricher, keys).Get("genericSecret")).To(Equal("from-env"))
		})
	})

	It("should prefer command-line overrides over the environment", func() {
		var overrides = map[string]string{"ENRICHER_TEST_ENRICHER_GENERICSECRET": "from-env"}
		configWithEnvVariableOverrides(overrides, func(config *Config) {
			Expect(config.SetOverride(enricher + ".genericSecret=from-flag")).To(Succeed())
			Expect(config.Resolver(enricher, keys).Get("genericSecret")).To(Equal("from-flag"))
		})
	})

	It("should not leak options of other enrichers", func() {
		config := NewDefaultConfig()
		config.Values["other-enricher"] = map[string]string{"genericSecret": "other"}

		Expect(config.Resolver(enricher, keys).GetOptional("genericSecret")).To(BeNil())
	})

	DescribeTable("the enabled flag",
		func(value string, expected bool) {
			config := NewDefaultConfig()
			config.Values[enricher] = map[string]string{"enabled": value}
			Expect(config.Resolver(enricher, keys).IsYes("enabled")).To(Equal(expected))
		},
		Entry("yes", "yes", true),
		Entry("upper case YES", "YES", true),
		Entry("mixed case Yes", "Yes", true),
		Entry("no", "no", false),
		Entry("true is not yes", "true", false),
		Entry("empty", "", false),
	)
})
