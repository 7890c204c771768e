package warehouse_test

import (
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/harshitMehrag/snowflake-langgraph-agent/pkg/warehouse"
)

func TestWarehouse(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Warehouse Suite")
}

var _ = Describe("Render", func() {
	var db *sql.DB

	BeforeEach(func() {
		var err error
		db, err = sql.Open("sqlite3", ":memory:")
		Expect(err).NotTo(HaveOccurred())

		_, err = db.Exec(`CREATE TABLE daily_revenue (
			date TEXT,
			region TEXT,
			total_revenue REAL,
			transaction_count INTEGER
		)`)
		Expect(err).NotTo(HaveOccurred())
	})

	AfterEach(func() {
		Expect(db.Close()).To(Succeed())
	})

	It("renders rows as a markdown table", func() {
		_, err := db.Exec(`INSERT INTO daily_revenue VALUES
			('2024-01-01', 'EMEA', 1200.5, 14),
			('2024-01-01', 'AMER', 900, 9)`)
		Expect(err).NotTo(HaveOccurred())

		rows, err := db.Query(`SELECT region, total_revenue FROM daily_revenue ORDER BY region`)
		Expect(err).NotTo(HaveOccurred())
		defer rows.Close()

		out, err := warehouse.Render(rows)
		Expect(err).NotTo(HaveOccurred())
		Expect(out).To(ContainSubstring("| region | total_revenue |"))
		Expect(out).To(ContainSubstring("| --- | --- |"))
		Expect(out).To(ContainSubstring("| AMER | 900 |"))
		Expect(out).To(ContainSubstring("| EMEA | 1200.5 |"))
	})

	It("reports an empty result set", func() {
		rows, err := db.Query(`SELECT * FROM daily_revenue`)
		Expect(err).NotTo(HaveOccurred())
		defer rows.Close()

		out, err := warehouse.Render(rows)
		Expect(err).NotTo(HaveOccurred())
		Expect(out).To(Equal("(no rows)"))
	})

	It("renders NULLs as empty cells", func() {
		_, err := db.Exec(`INSERT INTO daily_revenue (date, region) VALUES ('2024-01-02', NULL)`)
		Expect(err).NotTo(HaveOccurred())

		rows, err := db.Query(`SELECT date, region FROM daily_revenue`)
		Expect(err).NotTo(HaveOccurred())
		defer rows.Close()

		out, err := warehouse.Render(rows)
		Expect(err).NotTo(HaveOccurred())
		Expect(out).To(ContainSubstring("| 2024-01-02 |  |"))
	})
})
