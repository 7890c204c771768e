package utils_test

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/harshitMehrag/snowflake-langgraph-agent/pkg/utils"
)

func TestUtils(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Utils Suite")
}

var _ = Describe("Truncate", func() {
	It("returns short strings unchanged", func() {
		Expect(utils.Truncate("hello", 10)).To(Equal("hello"))
	})

	It("truncates long strings with an ellipsis", func() {
		Expect(utils.Truncate("hello world", 5)).To(Equal("hello..."))
	})
})

var _ = Describe("StripCodeFences", func() {
	It("leaves bare SQL untouched", func() {
		Expect(utils.StripCodeFences("SELECT 1")).To(Equal("SELECT 1"))
	})

	It("strips sql-tagged fences", func() {
		in := "```sql\nSELECT REGION FROM T\n```"
		Expect(utils.StripCodeFences(in)).To(Equal("SELECT REGION FROM T"))
	})

	It("strips untagged fences", func() {
		in := "```\nSELECT 1\n```"
		Expect(utils.StripCodeFences(in)).To(Equal("SELECT 1"))
	})

	It("trims surrounding whitespace", func() {
		Expect(utils.StripCodeFences("  SELECT 1  \n")).To(Equal("SELECT 1"))
	})
})
