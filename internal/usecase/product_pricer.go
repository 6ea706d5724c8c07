package usecase

import (
	"errors"
	"fmt"

	"nbtech_pricing/internal/domain/entities"
	"nbtech_pricing/internal/domain/taxtable"
)

// MaxProductDeductionRate is the ceiling for the sum of taxes and margins
// over the selling price. At or above it the product cannot be priced.
const MaxProductDeductionRate = 0.95

var (
	ErrUnpriceableScenario = errors.New("unpriceable scenario")
	ErrInvalidCostPrice    = errors.New("invalid cost price")
)

// ProductPricer computes a suggested selling price for product resale.
//
// Policy: when deductions reach MaxProductDeductionRate the pricer fails with
// ErrUnpriceableScenario instead of producing a price.
type ProductPricer struct {
	table taxtable.Table
	taxes *TaxCalculator
}

func NewProductPricer(table taxtable.Table) *ProductPricer {
	return &ProductPricer{table: table, taxes: NewTaxCalculator(table)}
}

// CalculateSellingPrice solves price = cost / (1 - deductions) and reports
// the resulting taxes and net profit.
func (p *ProductPricer) CalculateSellingPrice(product entities.ProductInput, customer entities.CustomerContext, scenario entities.PricingScenario) (entities.ProductQuote, error) {
	if product.CostPrice <= 0 {
		return entities.ProductQuote{}, ErrInvalidCostPrice
	}

	rates := taxtable.SelectRates(p.table, product.OriginUF, customer.UF, customer.Type, customer.InternalICMSDest)

	totalDeductions := rates.OwnRate +
		rates.DifferentialRate +
		p.table.PISCOFINSRate() +
		scenario.CommissionRate +
		scenario.AdminCostRate +
		scenario.TargetMargin

	if totalDeductions >= MaxProductDeductionRate {
		return entities.ProductQuote{}, fmt.Errorf("%w: taxes and margins add up to %.1f%%", ErrUnpriceableScenario, totalDeductions*100)
	}

	price := product.CostPrice / (1.0 - totalDeductions)

	taxes := p.taxes.CalculateTaxes(product, customer, price)

	commission := price * scenario.CommissionRate
	admin := price * scenario.AdminCostRate
	netProfit := price -
		taxes.ICMSOwn -
		taxes.PISCOFINS -
		taxes.DIFAL -
		taxes.ICMSST -
		commission -
		admin -
		product.CostPrice

	return entities.ProductQuote{
		TaxYear:               p.table.Year(),
		SellingPriceSuggested: roundCents(price),
		CostPrice:             roundCents(product.CostPrice),
		Taxes: entities.TaxBreakdown{
			PISCOFINS: roundCents(taxes.PISCOFINS),
			IPI:       roundCents(taxes.IPI),
			ICMSOwn:   roundCents(taxes.ICMSOwn),
			DIFAL:     roundCents(taxes.DIFAL),
			ICMSST:    roundCents(taxes.ICMSST),
		},
		Financials: entities.ProductFinancials{
			Commission:    roundCents(commission),
			AdminExpenses: roundCents(admin),
			NetProfit:     roundCents(netProfit),
			NetMarginPct:  roundCents(netProfit / price * 100),
		},
		ICMSRate:           rates.OwnRate,
		DIFALRate:          rates.DifferentialRate,
		TotalDeductionRate: totalDeductions,
	}, nil
}
