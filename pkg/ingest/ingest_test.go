package ingest_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/harshitMehrag/snowflake-langgraph-agent/pkg/ingest"
	"github.com/harshitMehrag/snowflake-langgraph-agent/pkg/logger"
	testutils "github.com/harshitMehrag/snowflake-langgraph-agent/pkg/utils/test"
)

func TestIngest(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Ingest Suite")
}

var _ = Describe("SplitDocument", func() {
	It("keeps a short document as a single chunk", func() {
		chunks := ingest.SplitDocument("First paragraph.\n\nSecond paragraph.", 1200)
		Expect(chunks).To(HaveLen(1))
		Expect(chunks[0].Text).To(Equal("First paragraph.\n\nSecond paragraph."))
	})

	It("splits on paragraph boundaries at the size limit", func() {
		a := strings.Repeat("a", 50)
		b := strings.Repeat("b", 50)
		c := strings.Repeat("c", 50)

		chunks := ingest.SplitDocument(a+"\n\n"+b+"\n\n"+c, 110)
		Expect(chunks).To(HaveLen(2))
		Expect(chunks[0].Text).To(Equal(a + "\n\n" + b))
		Expect(chunks[1].Text).To(Equal(c))
	})

	It("keeps an oversized paragraph whole", func() {
		long := strings.Repeat("x", 300)
		chunks := ingest.SplitDocument(long, 100)
		Expect(chunks).To(HaveLen(1))
		Expect(chunks[0].Text).To(Equal(long))
	})

	It("drops empty paragraphs", func() {
		chunks := ingest.SplitDocument("one\n\n\n\n\n\ntwo", 1200)
		Expect(chunks).To(HaveLen(1))
		Expect(chunks[0].Text).To(Equal("one\n\ntwo"))
	})

	It("returns no chunks for blank input", func() {
		Expect(ingest.SplitDocument("   \n\n  ", 1200)).To(BeEmpty())
	})

	It("numbers chunks by position", func() {
		a := strings.Repeat("a", 80)
		b := strings.Repeat("b", 80)

		chunks := ingest.SplitDocument(a+"\n\n"+b, 100)
		Expect(chunks).To(HaveLen(2))
		Expect(chunks[0].Index).To(Equal(0))
		Expect(chunks[1].Index).To(Equal(1))
	})
})

var _ = Describe("Ingester", func() {
	var (
		dir      string
		embedder *testutils.MockEmbedder
		driver   *testutils.MockVectorDriver
	)

	BeforeEach(func() {
		dir = GinkgoT().TempDir()
		embedder = testutils.NewMockEmbedder()
		driver = testutils.NewMockVectorDriver()
	})

	writeFile := func(name, content string) {
		Expect(os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644)).To(Succeed())
	}

	It("indexes markdown and text files", func() {
		writeFile("handbook.md", "Refunds are accepted within 30 days.")
		writeFile("policies.txt", "Severance is two weeks per year served.")
		writeFile("ignored.pdf", "binary")

		ingester := ingest.NewIngester(embedder, driver, ingest.Options{}, logger.Nop())
		result, err := ingester.Run(context.Background(), dir)
		Expect(err).NotTo(HaveOccurred())

		Expect(result.Files).To(Equal(2))
		Expect(result.Chunks).To(Equal(2))
		Expect(driver.Documents).To(HaveLen(2))
		Expect(driver.Documents[0].ID).To(HaveSuffix("#0"))
		Expect(driver.Documents[0].Embedding).NotTo(BeEmpty())
	})

	It("skips unembeddable files without failing the run", func() {
		writeFile("good.md", "Refunds are accepted within 30 days.")
		writeFile("bad.md", "poison pill")
		embedder.FailOn = "poison pill"

		ingester := ingest.NewIngester(embedder, driver, ingest.Options{}, logger.Nop())
		result, err := ingester.Run(context.Background(), dir)
		Expect(err).NotTo(HaveOccurred())

		Expect(result.Files).To(Equal(1))
		Expect(result.Skipped).To(HaveLen(1))
		Expect(result.Skipped[0]).To(HaveSuffix("bad.md"))
	})

	It("writes nothing in dry-run mode", func() {
		writeFile("handbook.md", "Refunds are accepted within 30 days.")

		ingester := ingest.NewIngester(embedder, driver, ingest.Options{DryRun: true}, logger.Nop())
		result, err := ingester.Run(context.Background(), dir)
		Expect(err).NotTo(HaveOccurred())

		Expect(result.Chunks).To(Equal(1))
		Expect(driver.Documents).To(BeEmpty())
	})
})
