package dataset_test

import (
	"bytes"
	"errors"
	"os"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/spf13/afero"

	"github.com/angeloszaimis/locust-compare/internal/dataset"
)

const distributionCSV = `"Name","# requests","50%","95%"
"GET /","120","40","95"
"GET /login","80","55","130"
"Total","200","45","110"
`

var _ = Describe("Read", func() {
	It("should parse header and records", func() {
		t, err := dataset.Read(strings.NewReader(distributionCSV), dataset.KeyColumn)
		Expect(err).NotTo(HaveOccurred())
		Expect(t.Columns).To(Equal([]string{"Name", "# requests", "50%", "95%"}))
		Expect(t.Len()).To(Equal(3))
		Expect(t.Records[1].Name).To(Equal("GET /login"))

		f, ok := t.Records[1].Get("95%").Float()
		Expect(ok).To(BeTrue())
		Expect(f).To(Equal(130.0))
	})

	It("should move the key column to the front", func() {
		t, err := dataset.Read(strings.NewReader("Method,Name,95%\nGET,/,10\n"), dataset.KeyColumn)
		Expect(err).NotTo(HaveOccurred())
		Expect(t.Columns).To(Equal([]string{"Name", "Method", "95%"}))
		Expect(t.MetricColumns()).To(Equal([]string{"Method", "95%"}))
		Expect(t.Records[0].Get("Method").String()).To(Equal("GET"))
	})

	It("should treat empty cells as missing", func() {
		t, err := dataset.Read(strings.NewReader("Name,95%\n/,\n"), dataset.KeyColumn)
		Expect(err).NotTo(HaveOccurred())
		Expect(t.Records[0].Get("95%").IsMissing()).To(BeTrue())
	})

	DescribeTable("should treat missing-value markers as missing",
		func(marker string) {
			t, err := dataset.Read(strings.NewReader("Name,95%\n/,"+marker+"\n"), dataset.KeyColumn)
			Expect(err).NotTo(HaveOccurred())
			Expect(t.Records[0].Get("95%").IsMissing()).To(BeTrue())
		},
		Entry("N/A", "N/A"),
		Entry("NA", "NA"),
		Entry("NaN", "NaN"),
		Entry("nan", "nan"),
		Entry("null", "null"),
	)

	It("should keep other text as a present value", func() {
		t, err := dataset.Read(strings.NewReader("Name,95%\n/,fast\n"), dataset.KeyColumn)
		Expect(err).NotTo(HaveOccurred())
		Expect(t.Records[0].Get("95%").IsMissing()).To(BeFalse())
		_, ok := t.Records[0].Get("95%").Float()
		Expect(ok).To(BeFalse())
	})

	It("should strip a leading byte order mark", func() {
		t, err := dataset.Read(strings.NewReader("\ufeffName,95%\n/,1\n"), dataset.KeyColumn)
		Expect(err).NotTo(HaveOccurred())
		Expect(t.HasColumn("Name")).To(BeTrue())
	})

	It("should fail without the key column", func() {
		_, err := dataset.Read(strings.NewReader("Endpoint,95%\n/,1\n"), dataset.KeyColumn)
		Expect(err).To(MatchError(dataset.ErrMissingKey))
	})

	It("should fail on empty input", func() {
		_, err := dataset.Read(strings.NewReader(""), dataset.KeyColumn)
		Expect(err).To(MatchError(dataset.ErrEmptyTable))
	})

	It("should fail on duplicate header columns", func() {
		_, err := dataset.Read(strings.NewReader("Name,95%,95%\n/,1,2\n"), dataset.KeyColumn)
		Expect(err).To(MatchError(dataset.ErrDuplicateColumn))
	})

	It("should fail on rows with the wrong field count", func() {
		_, err := dataset.Read(strings.NewReader("Name,95%\n/,1,2\n"), dataset.KeyColumn)
		Expect(err).To(HaveOccurred())
	})
})

var _ = Describe("Load", func() {
	var fs afero.Fs

	BeforeEach(func() {
		fs = afero.NewMemMapFs()
	})

	It("should load a table from the filesystem", func() {
		Expect(afero.WriteFile(fs, "example_distribution.csv", []byte(distributionCSV), 0644)).To(Succeed())

		t, err := dataset.Load(fs, "example_distribution.csv", dataset.KeyColumn)
		Expect(err).NotTo(HaveOccurred())
		Expect(t.Len()).To(Equal(3))
	})

	It("should return a DataLoadError naming a missing file", func() {
		_, err := dataset.Load(fs, "missing.csv", dataset.KeyColumn)

		var loadErr *dataset.DataLoadError
		Expect(errors.As(err, &loadErr)).To(BeTrue())
		Expect(loadErr.Path).To(Equal("missing.csv"))
		Expect(errors.Is(err, os.ErrNotExist)).To(BeTrue())
		Expect(err.Error()).To(ContainSubstring("missing.csv"))
	})

	It("should return a DataLoadError for malformed content", func() {
		Expect(afero.WriteFile(fs, "bad.csv", []byte("Endpoint\nx\n"), 0644)).To(Succeed())

		_, err := dataset.Load(fs, "bad.csv", dataset.KeyColumn)

		var loadErr *dataset.DataLoadError
		Expect(errors.As(err, &loadErr)).To(BeTrue())
		Expect(err).To(MatchError(dataset.ErrMissingKey))
	})
})

var _ = Describe("Write", func() {
	It("should write missing cells as empty fields", func() {
		t := &dataset.Table{
			Key:     dataset.KeyColumn,
			Columns: []string{"Name", "95%_new", "95%_old"},
			Records: []dataset.Record{{
				Name: "/",
				Values: map[string]dataset.Value{
					"95%_new": dataset.NewValue("12"),
					"95%_old": dataset.Missing(),
				},
			}},
		}

		var buf bytes.Buffer
		Expect(dataset.Write(&buf, t)).To(Succeed())
		Expect(buf.String()).To(Equal("Name,95%_new,95%_old\n/,12,\n"))
	})

	It("should save a table that loads back with the same shape", func() {
		fs := afero.NewMemMapFs()
		src, err := dataset.Read(strings.NewReader(distributionCSV), dataset.KeyColumn)
		Expect(err).NotTo(HaveOccurred())

		Expect(dataset.Save(fs, "out.csv", src)).To(Succeed())

		back, err := dataset.Load(fs, "out.csv", dataset.KeyColumn)
		Expect(err).NotTo(HaveOccurred())
		Expect(back.Columns).To(Equal(src.Columns))
		Expect(back.Len()).To(Equal(src.Len()))
	})
})
