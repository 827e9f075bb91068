package salary

import "github.com/shopspring/decimal"

// Structure is the monthly pay breakdown a salary record is derived
// from. Earnings and deductions only; never the derived totals.
type Structure struct {
	Basic              float64
	HRA                float64
	MedicalAllowance   float64
	TransportAllowance float64
	SpecialAllowance   float64
	Bonus              float64
	ProvidentFund      float64
	ProfessionalTax    float64
	IncomeTax          float64
	OtherDeductions    float64
}

// Amounts are the derived totals persisted on a record.
type Amounts struct {
	Gross           float64
	TotalDeductions float64
	Net             float64
}

// computeAmounts derives gross, total deductions and net from a pay
// structure. When prorated, every total is scaled by
// presentDays/workingDays; net is always derived from the unscaled
// difference so that net == round2((gross - deductions) * ratio)
// holds exactly regardless of per-total rounding.
//
// All arithmetic runs through decimal and rounds half-up to 2 places
// on the way out. Callers must never persist totals from any other
// source.
func computeAmounts(s Structure, prorated bool, presentDays, workingDays int) Amounts {
	gross := dec(s.Basic).
		Add(dec(s.HRA)).
		Add(dec(s.MedicalAllowance)).
		Add(dec(s.TransportAllowance)).
		Add(dec(s.SpecialAllowance)).
		Add(dec(s.Bonus))

	deductions := dec(s.ProvidentFund).
		Add(dec(s.ProfessionalTax)).
		Add(dec(s.IncomeTax)).
		Add(dec(s.OtherDeductions))

	net := gross.Sub(deductions)

	if prorated && workingDays > 0 {
		ratio := decimal.NewFromInt(int64(presentDays)).
			Div(decimal.NewFromInt(int64(workingDays)))
		gross = gross.Mul(ratio)
		deductions = deductions.Mul(ratio)
		net = net.Mul(ratio)
	}

	return Amounts{
		Gross:           round2(gross),
		TotalDeductions: round2(deductions),
		Net:             round2(net),
	}
}

func dec(v float64) decimal.Decimal {
	return decimal.NewFromFloat(v)
}

func round2(d decimal.Decimal) float64 {
	f, _ := d.Round(2).Float64()
	return f
}
