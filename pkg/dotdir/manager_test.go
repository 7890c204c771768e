package dotdir_test

import (
	"os"
	"path/filepath"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/harshitMehrag/snowflake-langgraph-agent/pkg/dotdir"
)

func TestDotdir(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Dotdir Suite")
}

var _ = Describe("Manager", func() {
	var manager *dotdir.Manager

	BeforeEach(func() {
		manager = dotdir.NewManager()
	})

	Describe("Target", func() {
		It("uses the override directory when provided", func() {
			tmpDir := GinkgoT().TempDir()
			override := filepath.Join(tmpDir, "custom")

			target, err := manager.Target(override)
			Expect(err).NotTo(HaveOccurred())
			Expect(target).To(Equal(override))

			info, err := os.Stat(target)
			Expect(err).NotTo(HaveOccurred())
			Expect(info.IsDir()).To(BeTrue())
		})

		It("creates the override directory if it does not exist", func() {
			tmpDir := GinkgoT().TempDir()
			override := filepath.Join(tmpDir, "a", "b", "nested")

			target, err := manager.Target(override)
			Expect(err).NotTo(HaveOccurred())

			info, err := os.Stat(target)
			Expect(err).NotTo(HaveOccurred())
			Expect(info.IsDir()).To(BeTrue())
		})

		It("prefers a local .dataagent over the home directory", func() {
			tmpDir := GinkgoT().TempDir()
			local := filepath.Join(tmpDir, ".dataagent")
			Expect(os.MkdirAll(local, 0o755)).To(Succeed())

			cwd, err := os.Getwd()
			Expect(err).NotTo(HaveOccurred())
			Expect(os.Chdir(tmpDir)).To(Succeed())
			DeferCleanup(func() {
				Expect(os.Chdir(cwd)).To(Succeed())
			})

			target, err := manager.Target("")
			Expect(err).NotTo(HaveOccurred())
			// Resolve symlinks so macOS /private/var temp paths compare equal.
			resolvedTarget, err := filepath.EvalSymlinks(target)
			Expect(err).NotTo(HaveOccurred())
			resolvedLocal, err := filepath.EvalSymlinks(local)
			Expect(err).NotTo(HaveOccurred())
			Expect(resolvedTarget).To(Equal(resolvedLocal))
		})
	})
})
