package usecase

import (
	"testing"

	"nbtech_pricing/internal/domain/entities"
	"nbtech_pricing/internal/domain/taxtable"

	"github.com/stretchr/testify/assert"
)

func TestTaxCalculator_InternalSaleToRegisteredCustomerWithST(t *testing.T) {
	calc := NewTaxCalculator(taxtable.Default())

	product := entities.ProductInput{CostPrice: 1000, IPIRate: 0.10, MVAST: 0.40, OriginUF: entities.UFSP}
	customer := entities.CustomerContext{UF: entities.UFSP, Type: entities.CustomerContribuinte, InternalICMSDest: 0.18}

	taxes := calc.CalculateTaxes(product, customer, 1000)

	assert.InDelta(t, 36.5, taxes.PISCOFINS, 1e-9, "1000 * (0.0065 + 0.03)")
	assert.InDelta(t, 100, taxes.IPI, 1e-9, "1000 * 0.10")
	assert.InDelta(t, 180, taxes.ICMSOwn, 1e-9, "1000 * 0.18 internal SP")
	assert.InDelta(t, 0, taxes.DIFAL, 1e-9, "no difal on internal sale")
	// base ST = 1100 * 1.40 = 1540; total = 1540 * 0.18 = 277.2; payable = 277.2 - 180
	assert.InDelta(t, 97.2, taxes.ICMSST, 1e-9)
}

func TestTaxCalculator_InternalSaleUsesTableRateOfTheState(t *testing.T) {
	calc := NewTaxCalculator(taxtable.Default())

	product := entities.ProductInput{CostPrice: 1, OriginUF: entities.UFRJ}
	customer := entities.CustomerContext{UF: entities.UFRJ, Type: entities.CustomerNaoContribuinte, InternalICMSDest: 0.22}

	taxes := calc.CalculateTaxes(product, customer, 100)

	assert.InDelta(t, 22, taxes.ICMSOwn, 1e-9)
	assert.InDelta(t, 0, taxes.DIFAL, 1e-9)
}

func TestTaxCalculator_InterstateToEndConsumerChargesDifal(t *testing.T) {
	calc := NewTaxCalculator(taxtable.Default())

	product := entities.ProductInput{CostPrice: 1, IPIRate: 0.0975, MVAST: 0.46, OriginUF: entities.UFSP}
	customer := entities.CustomerContext{UF: entities.UFBA, Type: entities.CustomerNaoContribuinte, InternalICMSDest: 0.205}

	taxes := calc.CalculateTaxes(product, customer, 1000)

	assert.InDelta(t, 70, taxes.ICMSOwn, 1e-9, "interstate 7% from SP to BA")
	assert.InDelta(t, 135, taxes.DIFAL, 1e-9, "(0.205 - 0.07) * 1000")
	assert.InDelta(t, 0, taxes.ICMSST, 1e-9, "no ST for end consumers")
	assert.InDelta(t, 97.5, taxes.IPI, 1e-9)
}

func TestTaxCalculator_DifalNeverNegative(t *testing.T) {
	calc := NewTaxCalculator(taxtable.Default())

	product := entities.ProductInput{CostPrice: 1, OriginUF: entities.UFBA}
	customer := entities.CustomerContext{UF: entities.UFSP, Type: entities.CustomerNaoContribuinte, InternalICMSDest: 0.10}

	taxes := calc.CalculateTaxes(product, customer, 1000)

	assert.InDelta(t, 120, taxes.ICMSOwn, 1e-9)
	assert.Equal(t, 0.0, taxes.DIFAL)
}

func TestTaxCalculator_STNeverNegative(t *testing.T) {
	calc := NewTaxCalculator(taxtable.Default())

	// Own ICMS at 12% exceeds the ST total when the destination rate is tiny.
	product := entities.ProductInput{CostPrice: 1, MVAST: 0.01, OriginUF: entities.UFBA}
	customer := entities.CustomerContext{UF: entities.UFSP, Type: entities.CustomerContribuinte, InternalICMSDest: 0.05}

	taxes := calc.CalculateTaxes(product, customer, 1000)

	assert.Equal(t, 0.0, taxes.ICMSST)
}

func TestTaxCalculator_DifalZeroForRegisteredCustomers(t *testing.T) {
	calc := NewTaxCalculator(taxtable.Default())

	for _, origin := range entities.AllUFs {
		for _, dest := range []entities.UF{entities.UFSP, entities.UFBA, entities.UFAM, entities.UFRS} {
			product := entities.ProductInput{CostPrice: 1, OriginUF: origin}
			customer := entities.CustomerContext{UF: dest, Type: entities.CustomerContribuinte, InternalICMSDest: 0.25}

			taxes := calc.CalculateTaxes(product, customer, 500)
			assert.Equal(t, 0.0, taxes.DIFAL, "%s -> %s", origin, dest)
		}
	}
}

func TestTaxCalculator_STZeroWithoutMVAOrForEndConsumers(t *testing.T) {
	calc := NewTaxCalculator(taxtable.Default())

	tests := []struct {
		name     string
		mva      float64
		customer entities.CustomerType
	}{
		{"registered customer without mva", 0, entities.CustomerContribuinte},
		{"end consumer with mva", 0.46, entities.CustomerNaoContribuinte},
		{"end consumer without mva", 0, entities.CustomerNaoContribuinte},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			product := entities.ProductInput{CostPrice: 1, IPIRate: 0.15, MVAST: tt.mva, OriginUF: entities.UFSP}
			customer := entities.CustomerContext{UF: entities.UFPE, Type: tt.customer, InternalICMSDest: 0.205}

			taxes := calc.CalculateTaxes(product, customer, 2000)
			assert.Equal(t, 0.0, taxes.ICMSST)
		})
	}
}

func TestTaxBreakdown_AsMap(t *testing.T) {
	b := entities.TaxBreakdown{PISCOFINS: 1, IPI: 2, ICMSOwn: 3, DIFAL: 4, ICMSST: 5}

	assert.Equal(t, map[string]float64{
		"pis_cofins": 1,
		"ipi":        2,
		"icms_own":   3,
		"difal":      4,
		"icms_st":    5,
	}, b.AsMap())
}
