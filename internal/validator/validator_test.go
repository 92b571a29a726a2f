package validator_test

import (
	"errors"
	"math"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/angeloszaimis/locust-compare/internal/dataset"
	"github.com/angeloszaimis/locust-compare/internal/validator"
)

func merged(current, previous string) *dataset.MergedTable {
	cur, err := dataset.Read(strings.NewReader(current), dataset.KeyColumn)
	Expect(err).NotTo(HaveOccurred())
	prev, err := dataset.Read(strings.NewReader(previous), dataset.KeyColumn)
	Expect(err).NotTo(HaveOccurred())
	return dataset.Merge(cur, prev, dataset.KeyColumn)
}

var _ = Describe("Validate", func() {
	DescribeTable("three-way policy",
		func(current, previous string, factor float64, want validator.Outcome) {
			v, err := validator.Validate(merged(current, previous), "X", factor)
			Expect(err).NotTo(HaveOccurred())
			Expect(v.Outcome).To(Equal(want))
		},
		Entry("one row above factor fails",
			"Name,X\nA,100\nB,90\n", "Name,X\nA,80\nB,100\n", 1.2, validator.Fail),
		Entry("all rows below factor pass",
			"Name,X\nA,90\nB,95\n", "Name,X\nA,100\nB,100\n", 1.2, validator.Pass),
		Entry("ratio equal to factor is inconclusive",
			"Name,X\nA,120\n", "Name,X\nA,100\n", 1.2, validator.Error),
		Entry("fail takes precedence over an equal ratio",
			"Name,X\nA,120\nB,200\n", "Name,X\nA,100\nB,100\n", 1.2, validator.Fail),
		Entry("zero baseline fails",
			"Name,X\nA,5\n", "Name,X\nA,0\n", 1.2, validator.Fail),
		Entry("zero over zero fails",
			"Name,X\nA,0\n", "Name,X\nA,0\n", 1.2, validator.Fail),
		Entry("request missing from baseline fails",
			"Name,X\nA,10\nB,10\n", "Name,X\nA,10\n", 1.2, validator.Fail),
		Entry("request missing from current run is inconclusive",
			"Name,X\nA,10\n", "Name,X\nA,10\nB,10\n", 1.2, validator.Error),
		Entry("N/A baseline fails",
			"Name,X\nGET /a,10\nGET /b,50\n", "Name,X\nGET /a,10\nGET /b,N/A\n", 1.2, validator.Fail),
		Entry("N/A current value is inconclusive",
			"Name,X\nGET /a,10\nGET /b,N/A\n", "Name,X\nGET /a,10\nGET /b,50\n", 1.2, validator.Error),
		Entry("NaN baseline fails",
			"Name,X\nGET /a,10\n", "Name,X\nGET /a,NaN\n", 1.2, validator.Fail),
		Entry("empty runs are inconclusive",
			"Name,X\n", "Name,X\n", 1.2, validator.Error),
	)

	It("should compute the ratio series in row order", func() {
		v, err := validator.Validate(merged("Name,X\nA,100\nB,90\n", "Name,X\nA,80\nB,100\n"), "X", 1.2)
		Expect(err).NotTo(HaveOccurred())
		Expect(v.Ratios()).To(Equal([]float64{1.25, 0.9}))
		Expect(v.Column).To(Equal("X"))
		Expect(v.Factor).To(Equal(1.2))
	})

	It("should report only the rows not below the factor as offending", func() {
		v, _ := validator.Validate(merged("Name,X\nA,100\nB,90\n", "Name,X\nA,80\nB,100\n"), "X", 1.2)
		Expect(v.Offending()).To(HaveLen(1))
		Expect(v.Offending()[0].Name).To(Equal("A"))
	})

	It("should return ColumnNotFoundError for an unknown column", func() {
		_, err := validator.Validate(merged("Name,X\nA,1\n", "Name,X\nA,1\n"), "95%", 1.2)

		var notFound *validator.ColumnNotFoundError
		Expect(errors.As(err, &notFound)).To(BeTrue())
		Expect(notFound.Column).To(Equal("95%"))
		Expect(notFound.Available).To(Equal([]string{"X"}))
	})

	It("should return ColumnNotFoundError when only one run has the column", func() {
		_, err := validator.Validate(merged("Name,X,Y\nA,1,1\n", "Name,X\nA,1\n"), "Y", 1.2)

		var notFound *validator.ColumnNotFoundError
		Expect(errors.As(err, &notFound)).To(BeTrue())
	})

	It("should reject non-numeric values", func() {
		_, err := validator.Validate(merged("Name,X\nA,fast\n", "Name,X\nA,1\n"), "X", 1.2)

		var nonNumeric *validator.NonNumericError
		Expect(errors.As(err, &nonNumeric)).To(BeTrue())
		Expect(nonNumeric.Column).To(Equal("X_new"))
		Expect(nonNumeric.Raw).To(Equal("fast"))
	})

	DescribeTable("rejects unusable factors",
		func(factor float64) {
			_, err := validator.Validate(merged("Name,X\nA,1\n", "Name,X\nA,1\n"), "X", factor)
			Expect(err).To(MatchError(validator.ErrInvalidFactor))
		},
		Entry("zero", 0.0),
		Entry("negative", -1.0),
		Entry("infinite", math.Inf(1)),
		Entry("NaN", math.NaN()),
	)
})

var _ = Describe("Ratio", func() {
	It("should divide new by old", func() {
		r, ok := validator.Ratio(dataset.Number(100), dataset.Number(80))
		Expect(ok).To(BeTrue())
		Expect(r).To(Equal(1.25))
	})

	It("should grow when new grows or old shrinks", func() {
		base, _ := validator.Ratio(dataset.Number(100), dataset.Number(80))
		higherNew, _ := validator.Ratio(dataset.Number(101), dataset.Number(80))
		lowerOld, _ := validator.Ratio(dataset.Number(100), dataset.Number(79))
		Expect(higherNew).To(BeNumerically(">", base))
		Expect(lowerOld).To(BeNumerically(">", base))
	})

	It("should return +Inf for a missing or zero baseline", func() {
		r, ok := validator.Ratio(dataset.Number(1), dataset.Missing())
		Expect(ok).To(BeTrue())
		Expect(math.IsInf(r, 1)).To(BeTrue())

		r, ok = validator.Ratio(dataset.Number(1), dataset.Number(0))
		Expect(ok).To(BeTrue())
		Expect(math.IsInf(r, 1)).To(BeTrue())
	})

	It("should return NaN for a missing current value", func() {
		r, ok := validator.Ratio(dataset.Missing(), dataset.Number(1))
		Expect(ok).To(BeTrue())
		Expect(math.IsNaN(r)).To(BeTrue())
	})
})

var _ = Describe("Verdict.Err", func() {
	It("should be nil on pass", func() {
		Expect(validator.Verdict{Outcome: validator.Pass}.Err()).To(Succeed())
	})

	It("should distinguish fail from inconclusive", func() {
		failErr := validator.Verdict{Outcome: validator.Fail, Column: "X", Factor: 1.2}.Err()
		Expect(errors.Is(failErr, validator.ErrThresholdFail)).To(BeTrue())
		Expect(errors.Is(failErr, validator.ErrThresholdIndeterminate)).To(BeFalse())

		indErr := validator.Verdict{Outcome: validator.Error, Column: "X", Factor: 1.2}.Err()
		Expect(errors.Is(indErr, validator.ErrThresholdIndeterminate)).To(BeTrue())
		Expect(indErr.Error()).To(ContainSubstring("inconclusive"))
	})
})
