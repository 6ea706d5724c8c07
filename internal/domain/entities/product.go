package entities

// CustomerType is the ICMS classification of the buyer.

type CustomerType string

const (
	// CustomerContribuinte is a registered ICMS taxpayer (reseller or industry).
	CustomerContribuinte CustomerType = "Contribuinte"
	// CustomerNaoContribuinte is an end consumer without ICMS registration.
	CustomerNaoContribuinte CustomerType = "Nao_Contribuinte"
)

func (t CustomerType) IsValid() bool {
	return t == CustomerContribuinte || t == CustomerNaoContribuinte
}

// ProductInput describes a product being resold.
//
// Rates are fractions (0.0975 means 9.75%). MVAST equal to zero means the
// product is not subject to ICMS substitution.
type ProductInput struct {
	Name      string
	NCM       string
	CostPrice float64
	IPIRate   float64
	MVAST     float64
	OriginUF  UF
}

// CustomerContext describes the destination of a sale.
//
// InternalICMSDest is the destination internal ICMS rate used as the base for
// DIFAL and ICMS-ST. The operator may override the table value.
type CustomerContext struct {
	UF               UF
	Type             CustomerType
	InternalICMSDest float64
}

// PricingScenario holds the commercial rates applied over gross revenue.
type PricingScenario struct {
	CommissionRate float64
	AdminCostRate  float64
	TargetMargin   float64
}

const (
	DefaultCommissionRate = 0.03
	DefaultAdminCostRate  = 0.1165
	DefaultTargetMargin   = 0.25
)

// DefaultPricingScenario returns the commercial defaults used by the sales team.
func DefaultPricingScenario() PricingScenario {
	return PricingScenario{
		CommissionRate: DefaultCommissionRate,
		AdminCostRate:  DefaultAdminCostRate,
		TargetMargin:   DefaultTargetMargin,
	}
}
