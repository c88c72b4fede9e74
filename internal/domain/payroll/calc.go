package payroll

import (
	"github.com/shopspring/decimal"
)

// TaxPolicy computes the tax owed on a basic salary. The flat rate below is
// the current company policy; bracketed policies plug in behind the same
// interface.
type TaxPolicy interface {
	Tax(basicSalary decimal.Decimal) decimal.Decimal
}

// FlatRate taxes the basic salary at a fixed fraction.
type FlatRate struct {
	Rate decimal.Decimal
}

// DefaultTaxPolicy is the flat 10% rate.
func DefaultTaxPolicy() TaxPolicy {
	return FlatRate{Rate: decimal.NewFromFloat(0.10)}
}

func (p FlatRate) Tax(basicSalary decimal.Decimal) decimal.Decimal {
	return basicSalary.Mul(p.Rate)
}

// ComputationInput carries the per-employee figures of one batch entry.
type ComputationInput struct {
	BasicSalary decimal.Decimal
	Allowances  decimal.Decimal
	Deductions  decimal.Decimal
	Overtime    decimal.Decimal
	Bonus       decimal.Decimal
}

// Compute derives tax and net salary:
//
//	net = basic + allowances + overtime + bonus - deductions - tax(basic)
func Compute(in ComputationInput, policy TaxPolicy) (tax, net decimal.Decimal) {
	tax = policy.Tax(in.BasicSalary)
	net = in.BasicSalary.
		Add(in.Allowances).
		Add(in.Overtime).
		Add(in.Bonus).
		Sub(in.Deductions).
		Sub(tax)
	return tax, net
}
