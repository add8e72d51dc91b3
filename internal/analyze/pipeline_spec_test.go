package analyze

import (
	"context"
	"encoding/csv"
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

const specReport = `{
	"id": "run-seed-7-repetition-1",
	"settings": {
		"number_of_nodes": 3,
		"duration": 60000,
		"gossip_delta": 500,
		"failure_delta": 2000,
		"push_pull": true,
		"pick_strategy": 0,
		"enable_multicast": false,
		"simulate_catastrophe": false
	},
	"result": {
		"expected_crashes": [{"node": 1, "delta": 10000}],
		"reported_crashes": [
			{"node": 1, "reporter": 2, "delta": 11000},
			{"node": 1, "reporter": 3, "delta": 12000}
		]
	}
}`

var _ = Describe("batch analysis", func() {
	var root string

	BeforeEach(func() {
		root = GinkgoT().TempDir()
		dir := filepath.Join(root, "2407_n3")
		Expect(os.MkdirAll(dir, 0o755)).To(Succeed())
		Expect(os.WriteFile(filepath.Join(dir, "run.json"), []byte(specReport), 0o644)).To(Succeed())
	})

	It("walks, classifies, aggregates, and exports one run end to end", func() {
		rs, err := Run(context.Background(), Options{ReportsDir: root, Workers: 2})
		Expect(err).NotTo(HaveOccurred())
		Expect(rs.Failures).To(BeEmpty())
		Expect(rs.Summaries).To(HaveLen(1))

		sum := rs.Summaries[0]
		Expect(sum.Identity.Group).To(Equal("2407_n3"))
		Expect(sum.Identity.Seed).To(Equal("7"))
		Expect(sum.Statistics.Correct).To(BeTrue())
		Expect(sum.Statistics.RateDetected).To(BeNumerically("==", 1))
		Expect(sum.Statistics.DetectTimeMean).To(BeNumerically("==", 1500))

		aggs := AggregateByGroup(rs.Summaries)
		Expect(aggs).To(HaveLen(1))
		Expect(aggs[0].AllCorrect).To(BeTrue())

		csvPath := filepath.Join(root, "out", "results.csv")
		Expect(WriteCSVFile(csvPath, rs.Summaries)).To(Succeed())

		f, err := os.Open(csvPath)
		Expect(err).NotTo(HaveOccurred())
		defer f.Close()
		rows, err := csv.NewReader(f).ReadAll()
		Expect(err).NotTo(HaveOccurred())
		Expect(rows).To(HaveLen(2))
		Expect(rows[1][0]).To(Equal("2407_n3"))
	})
})
