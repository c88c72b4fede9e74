package payroll

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func d(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func TestCompute(t *testing.T) {
	in := ComputationInput{
		BasicSalary: d(50000),
		Allowances:  d(2000),
		Deductions:  d(1000),
		Overtime:    d(500),
		Bonus:       d(1000),
	}

	tax, net := Compute(in, DefaultTaxPolicy())

	assert.True(t, tax.Equal(d(5000)), "tax = %s", tax)
	// 50000 + 2000 + 500 + 1000 - 1000 - 5000
	assert.True(t, net.Equal(d(47500)), "net = %s", net)
}

func TestCompute_ZeroSalary(t *testing.T) {
	tax, net := Compute(ComputationInput{}, DefaultTaxPolicy())
	assert.True(t, tax.IsZero())
	assert.True(t, net.IsZero())
}

func TestCompute_DeductionsCanExceedNet(t *testing.T) {
	in := ComputationInput{
		BasicSalary: d(1000),
		Deductions:  d(2000),
	}
	tax, net := Compute(in, DefaultTaxPolicy())
	assert.True(t, tax.Equal(d(100)))
	assert.True(t, net.Equal(d(-1100)), "net = %s", net)
}

func TestFlatRate_CustomRate(t *testing.T) {
	policy := FlatRate{Rate: decimal.NewFromFloat(0.25)}
	tax := policy.Tax(d(40000))
	assert.True(t, tax.Equal(d(10000)), "tax = %s", tax)
}

func TestCompute_FractionalAmounts(t *testing.T) {
	in := ComputationInput{
		BasicSalary: decimal.RequireFromString("1234.56"),
		Allowances:  decimal.RequireFromString("0.44"),
	}
	tax, net := Compute(in, DefaultTaxPolicy())
	assert.True(t, tax.Equal(decimal.RequireFromString("123.456")), "tax = %s", tax)
	assert.True(t, net.Equal(decimal.RequireFromString("1111.544")), "net = %s", net)
}
