package payslip

import "github.com/shopspring/decimal"

// SalaryPolicy holds the coefficients used to split a monthly salary
// into payslip components. Amounts are rounded to 2 decimal places,
// half away from zero.
type SalaryPolicy struct {
	BasicRate       decimal.Decimal
	HraRate         decimal.Decimal
	FlexiRate       decimal.Decimal
	PfRate          decimal.Decimal
	ProfessionalTax decimal.Decimal
	TaxCreditRate   decimal.Decimal
}

func DefaultSalaryPolicy() SalaryPolicy {
	return SalaryPolicy{
		BasicRate:       decimal.NewFromFloat(0.53),
		HraRate:         decimal.NewFromFloat(0.20),
		FlexiRate:       decimal.NewFromFloat(0.27),
		PfRate:          decimal.NewFromFloat(0.12),
		ProfessionalTax: decimal.NewFromInt(200),
		TaxCreditRate:   decimal.NewFromFloat(0.05),
	}
}

// SalaryBreakdown is the computed component set for one pay period.
type SalaryBreakdown struct {
	Basic           decimal.Decimal
	Hra             decimal.Decimal
	Flexi           decimal.Decimal
	Gross           decimal.Decimal
	PfDeduction     decimal.Decimal
	ProfessionalTax decimal.Decimal
	TotalDeductions decimal.Decimal
	NetPay          decimal.Decimal
	Balance         decimal.Decimal
	AggDeduction    decimal.Decimal
	IncomeUnderHead decimal.Decimal
	TaxCredit       decimal.Decimal
}

// Compute maps a monthly salary to its breakdown. It is a pure
// function of the salary and the policy coefficients.
func (p SalaryPolicy) Compute(salary decimal.Decimal) SalaryBreakdown {
	basic := salary.Mul(p.BasicRate).Round(2)
	hra := salary.Mul(p.HraRate).Round(2)
	flexi := salary.Mul(p.FlexiRate).Round(2)
	gross := basic.Add(hra).Add(flexi)

	pf := basic.Mul(p.PfRate).Round(2)
	profTax := p.ProfessionalTax.Round(2)
	totalDeductions := pf.Add(profTax)
	net := gross.Sub(totalDeductions)

	return SalaryBreakdown{
		Basic:           basic,
		Hra:             hra,
		Flexi:           flexi,
		Gross:           gross,
		PfDeduction:     pf,
		ProfessionalTax: profTax,
		TotalDeductions: totalDeductions,
		NetPay:          net,
		Balance:         gross,
		AggDeduction:    totalDeductions,
		IncomeUnderHead: net,
		TaxCredit:       net.Mul(p.TaxCreditRate).Round(2),
	}
}
