package entities

import "time"

// QuoteKind identifies which pricer produced a quote.

type QuoteKind string

const (
	QuoteKindProduct  QuoteKind = "produto"
	QuoteKindService  QuoteKind = "servico"
	QuoteKindContract QuoteKind = "contrato"
)

// TaxBreakdown holds the tax amounts, in BRL, computed for one base price.
//
// It is built once per calculation and never mutated afterwards.
type TaxBreakdown struct {
	PISCOFINS float64
	IPI       float64
	ICMSOwn   float64
	DIFAL     float64
	ICMSST    float64
}

// AsMap returns the breakdown keyed by tax name.
func (b TaxBreakdown) AsMap() map[string]float64 {
	return map[string]float64{
		"pis_cofins": b.PISCOFINS,
		"ipi":        b.IPI,
		"icms_own":   b.ICMSOwn,
		"difal":      b.DIFAL,
		"icms_st":    b.ICMSST,
	}
}

// ProductFinancials is the commercial result of a product sale.
type ProductFinancials struct {
	Commission    float64
	AdminExpenses float64
	NetProfit     float64
	NetMarginPct  float64
}

// ProductQuote is the result of pricing a product sale.
//
// Monetary values are rounded to cents. The applied rates are kept unrounded
// so the inverse markup can be audited: SellingPrice*(1-TotalDeductionRate) == CostPrice.
type ProductQuote struct {
	ID      string
	TaxYear string

	SellingPriceSuggested float64
	CostPrice             float64
	Taxes                 TaxBreakdown
	Financials            ProductFinancials

	ICMSRate           float64
	DIFALRate          float64
	TotalDeductionRate float64

	CreatedAt time.Time
}

// ContractInputsEcho repeats the inputs that drove a contract quote.
type ContractInputsEcho struct {
	ServiceType ServiceType
	UPSQuantity int
	VisitsYear  int
	TaxRateUsed float64
}

// ContractBreakdown itemizes the monthly price of a service or contract.
type ContractBreakdown struct {
	Labor             float64
	Logistics         float64
	PartsRisk         float64
	AssetAmortization float64
	Taxes             float64
	Commission        float64
	NetProfit         float64
}

// ContractQuote is the result of pricing a service or contract.
//
// DeductionClamped is set when the requested rates summed to 95% or more and
// the pricer replaced them with the 90% ceiling.
type ContractQuote struct {
	ID   string
	Kind QuoteKind

	MonthlyPrice       float64
	UnitMonthlyPrice   float64
	TotalContractValue float64
	Inputs             ContractInputsEcho
	Breakdown          ContractBreakdown

	TotalDeductionRate float64
	DeductionClamped   bool

	CreatedAt time.Time
}
