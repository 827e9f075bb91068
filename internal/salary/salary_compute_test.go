package salary

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeAmounts(t *testing.T) {
	t.Run("full month", func(t *testing.T) {
		amounts := computeAmounts(Structure{
			Basic:            30000,
			HRA:              12000,
			MedicalAllowance: 2000,
			ProvidentFund:    3600,
			ProfessionalTax:  200,
		}, false, 30, 30)

		assert.Equal(t, 44000.0, amounts.Gross)
		assert.Equal(t, 3800.0, amounts.TotalDeductions)
		assert.Equal(t, 40200.0, amounts.Net)
	})

	t.Run("prorated half month", func(t *testing.T) {
		amounts := computeAmounts(Structure{
			Basic:            30000,
			HRA:              12000,
			MedicalAllowance: 2000,
			ProvidentFund:    3600,
			ProfessionalTax:  200,
		}, true, 15, 30)

		assert.Equal(t, 22000.0, amounts.Gross)
		assert.Equal(t, 1900.0, amounts.TotalDeductions)
		assert.Equal(t, 20100.0, amounts.Net)
	})

	t.Run("prorated repeating fraction rounds to 2 places", func(t *testing.T) {
		amounts := computeAmounts(Structure{Basic: 1000}, true, 1, 3)

		assert.Equal(t, 333.33, amounts.Gross)
		assert.Equal(t, 0.0, amounts.TotalDeductions)
		assert.Equal(t, 333.33, amounts.Net)
	})

	t.Run("half cent rounds up", func(t *testing.T) {
		amounts := computeAmounts(Structure{Basic: 10.01}, true, 1, 2)

		assert.Equal(t, 5.01, amounts.Net)
	})

	t.Run("prorate flag without working days leaves amounts unscaled", func(t *testing.T) {
		amounts := computeAmounts(Structure{Basic: 1000}, true, 0, 0)

		assert.Equal(t, 1000.0, amounts.Gross)
		assert.Equal(t, 1000.0, amounts.Net)
	})

	t.Run("all components", func(t *testing.T) {
		amounts := computeAmounts(Structure{
			Basic:              20000,
			HRA:                8000,
			MedicalAllowance:   1500,
			TransportAllowance: 1200,
			SpecialAllowance:   800,
			Bonus:              5000,
			ProvidentFund:      2400,
			ProfessionalTax:    200,
			IncomeTax:          1800,
			OtherDeductions:    350,
		}, false, 30, 30)

		assert.Equal(t, 36500.0, amounts.Gross)
		assert.Equal(t, 4750.0, amounts.TotalDeductions)
		assert.Equal(t, 31750.0, amounts.Net)
	})
}
