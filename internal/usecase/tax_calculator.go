package usecase

import (
	"nbtech_pricing/internal/domain/entities"
	"nbtech_pricing/internal/domain/taxtable"
)

// TaxCalculator derives the tax amounts of a sale at a given base price.
//
// It holds no state besides the injected table and is safe for concurrent use.
type TaxCalculator struct {
	table taxtable.Table
}

func NewTaxCalculator(table taxtable.Table) *TaxCalculator {
	return &TaxCalculator{table: table}
}

// CalculateTaxes returns every tax that applies to product sold to customer at basePrice.
//
// Amounts are not rounded; rounding happens when a quote is assembled.
func (c *TaxCalculator) CalculateTaxes(product entities.ProductInput, customer entities.CustomerContext, basePrice float64) entities.TaxBreakdown {
	var taxes entities.TaxBreakdown

	taxes.PISCOFINS = basePrice * c.table.PISCOFINSRate()

	taxes.IPI = basePrice * product.IPIRate
	priceWithIPI := basePrice + taxes.IPI

	rates := taxtable.SelectRates(c.table, product.OriginUF, customer.UF, customer.Type, customer.InternalICMSDest)
	taxes.ICMSOwn = basePrice * rates.OwnRate
	taxes.DIFAL = basePrice * rates.DifferentialRate

	// ICMS-ST is collected upfront only when selling to a registered reseller.
	if product.MVAST > 0 && customer.Type == entities.CustomerContribuinte {
		baseST := priceWithIPI * (1 + product.MVAST)
		totalST := baseST * customer.InternalICMSDest
		taxes.ICMSST = max(0, totalST-taxes.ICMSOwn)
	}

	return taxes
}
