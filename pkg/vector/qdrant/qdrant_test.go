package qdrant_test

import (
	"context"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/harshitMehrag/snowflake-langgraph-agent/pkg/logger"
	"github.com/harshitMehrag/snowflake-langgraph-agent/pkg/vector/qdrant"
)

func TestQdrant(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Qdrant Driver Suite")
}

var _ = Describe("NewDriver", func() {
	It("requires a target", func() {
		_, err := qdrant.NewDriver(context.Background(), qdrant.Config{}, logger.Nop())
		Expect(err).To(HaveOccurred())
		Expect(err.Error()).To(ContainSubstring("target"))
	})

	It("rejects a malformed port", func() {
		_, err := qdrant.NewDriver(context.Background(), qdrant.Config{
			Target: "localhost:notaport",
		}, logger.Nop())
		Expect(err).To(HaveOccurred())
		Expect(err.Error()).To(ContainSubstring("port"))
	})
})
