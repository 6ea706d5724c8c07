package usecase

import (
	"testing"

	"nbtech_pricing/internal/domain/entities"

	"github.com/stretchr/testify/assert"
)

func scenarioWithMargin(margin float64) entities.PricingScenario {
	s := entities.DefaultPricingScenario()
	s.TargetMargin = margin
	return s
}

func TestServicePricer_OneOffVisit(t *testing.T) {
	pricer := NewServicePricer(DefaultServiceCostTable())

	svc := entities.NewOneOffService("Nobreak 10kVA", 2, 50)
	quote := pricer.CalculateContractPrice(svc, scenarioWithMargin(0.35))

	assert.Equal(t, entities.QuoteKindService, quote.Kind)
	assert.InDelta(t, 283.00, quote.Breakdown.Labor, 0.001)
	assert.InDelta(t, 75.00, quote.Breakdown.Logistics, 0.001)
	assert.InDelta(t, 0, quote.Breakdown.AssetAmortization, 0.001)
	// 358.00 / (1 - 0.1718 - 0.03 - 0.35)
	assert.InDelta(t, 798.75, quote.MonthlyPrice, 0.001)
	assert.InDelta(t, 798.75, quote.UnitMonthlyPrice, 0.001)
	assert.InDelta(t, 798.75, quote.TotalContractValue, 0.001)
	assert.InDelta(t, 137.23, quote.Breakdown.Taxes, 0.001)
	assert.InDelta(t, 23.96, quote.Breakdown.Commission, 0.001)
	assert.InDelta(t, 279.56, quote.Breakdown.NetProfit, 0.001)
	assert.InDelta(t, 0.1718, quote.Inputs.TaxRateUsed, 1e-12)
	assert.False(t, quote.DeductionClamped)
}

func TestServicePricer_OneOffIgnoresVisitsPerYear(t *testing.T) {
	pricer := NewServicePricer(DefaultServiceCostTable())

	svc := entities.NewOneOffService("UPS", 2, 50)
	base := pricer.CalculateContractPrice(svc, scenarioWithMargin(0.35))

	svc.VisitsPerYear = 24
	again := pricer.CalculateContractPrice(svc, scenarioWithMargin(0.35))

	assert.Equal(t, base.MonthlyPrice, again.MonthlyPrice)
}

func TestServicePricer_MaintenanceContract(t *testing.T) {
	pricer := NewServicePricer(DefaultServiceCostTable())

	svc := entities.ServiceInput{
		ServiceType:            entities.ServiceTypeMaintenance,
		UPSPower:               "20kVA",
		UPSType:                "Online",
		UPSQuantity:            2,
		TechnicalHoursPerVisit: 1.5,
		DistanceKmRoundTrip:    60,
		NumLocations:           2,
		VisitsPerYear:          12,
		EquipmentCapexUnit:     9999,
		ContractDurationMonths: 24,
	}
	quote := pricer.CalculateContractPrice(svc, scenarioWithMargin(0.30))

	assert.Equal(t, entities.QuoteKindContract, quote.Kind)
	assert.InDelta(t, 424.50, quote.Breakdown.Labor, 0.001)
	assert.InDelta(t, 180.00, quote.Breakdown.Logistics, 0.001)
	assert.InDelta(t, 0, quote.Breakdown.AssetAmortization, 0.001, "capex is ignored for maintenance")
	assert.InDelta(t, 1213.37, quote.MonthlyPrice, 0.001)
	assert.InDelta(t, 606.68, quote.UnitMonthlyPrice, 0.001)
	assert.InDelta(t, 29120.84, quote.TotalContractValue, 0.001)
	assert.Equal(t, 2, quote.Inputs.UPSQuantity)
	assert.Equal(t, 12, quote.Inputs.VisitsYear)
}

func TestServicePricer_RentalWithNewEquipment(t *testing.T) {
	pricer := NewServicePricer(DefaultServiceCostTable())

	svc := entities.ServiceInput{
		ServiceType:            entities.ServiceTypeRentalNew,
		UPSQuantity:            1,
		TechnicalHoursPerVisit: 1,
		DistanceKmRoundTrip:    40,
		NumLocations:           1,
		VisitsPerYear:          12,
		EquipmentCapexUnit:     5000,
		ContractDurationMonths: 24,
	}
	quote := pricer.CalculateContractPrice(svc, scenarioWithMargin(0.30))

	assert.InDelta(t, 208.33, quote.Breakdown.AssetAmortization, 0.001, "5000 / 24")
	assert.InDelta(t, 141.50, quote.Breakdown.Labor, 0.001)
	assert.InDelta(t, 60.00, quote.Breakdown.Logistics, 0.001)
	assert.InDelta(t, 739.37, quote.MonthlyPrice, 0.001)
	assert.InDelta(t, 17744.90, quote.TotalContractValue, 0.001)
	assert.InDelta(t, 85.55, quote.Breakdown.Taxes, 0.001)
	assert.InDelta(t, 22.18, quote.Breakdown.Commission, 0.001)
	assert.InDelta(t, 221.81, quote.Breakdown.NetProfit, 0.001)
	assert.InDelta(t, 0.1157, quote.Inputs.TaxRateUsed, 1e-12)
}

func TestServicePricer_RentalFromStock(t *testing.T) {
	pricer := NewServicePricer(DefaultServiceCostTable())

	svc := entities.ServiceInput{
		ServiceType:                entities.ServiceTypeRentalStock,
		UPSQuantity:                2,
		TechnicalHoursPerVisit:     1,
		DistanceKmRoundTrip:        40,
		NumLocations:               1,
		VisitsPerYear:              4,
		EquipmentCapexUnit:         5000,
		ContractDurationMonths:     12,
		PartsCostEstimationMonthly: 20,
	}
	quote := pricer.CalculateContractPrice(svc, scenarioWithMargin(0.30))

	assert.InDelta(t, 94.33, quote.Breakdown.Labor, 0.001)
	assert.InDelta(t, 20.00, quote.Breakdown.Logistics, 0.001)
	assert.InDelta(t, 40.00, quote.Breakdown.PartsRisk, 0.001)
	assert.InDelta(t, 250.00, quote.Breakdown.AssetAmortization, 0.001, "10000 * 2.5%")
	assert.InDelta(t, 729.45, quote.MonthlyPrice, 0.001)
	assert.InDelta(t, 364.72, quote.UnitMonthlyPrice, 0.001)
	assert.InDelta(t, 8753.38, quote.TotalContractValue, 0.001)
}

func TestServicePricer_RentalNewWithZeroDurationHasNoAmortization(t *testing.T) {
	pricer := NewServicePricer(DefaultServiceCostTable())

	svc := entities.ServiceInput{
		ServiceType:        entities.ServiceTypeRentalNew,
		UPSQuantity:        1,
		NumLocations:       1,
		VisitsPerYear:      12,
		EquipmentCapexUnit: 5000,
	}
	quote := pricer.CalculateContractPrice(svc, scenarioWithMargin(0.30))

	assert.Equal(t, 0.0, quote.Breakdown.AssetAmortization)
	assert.Equal(t, 0.0, quote.TotalContractValue)
}

func TestServicePricer_ClampsExcessiveDeductions(t *testing.T) {
	pricer := NewServicePricer(DefaultServiceCostTable())

	svc := entities.ServiceInput{
		ServiceType:            entities.ServiceTypeMaintenance,
		UPSQuantity:            2,
		TechnicalHoursPerVisit: 1.5,
		DistanceKmRoundTrip:    60,
		NumLocations:           2,
		VisitsPerYear:          12,
		ContractDurationMonths: 24,
	}
	quote := pricer.CalculateContractPrice(svc, scenarioWithMargin(0.80))

	assert.True(t, quote.DeductionClamped)
	assert.InDelta(t, ClampedServiceDeductionRate, quote.TotalDeductionRate, 1e-12)
	assert.InDelta(t, 6045.00, quote.MonthlyPrice, 0.001, "604.50 / 0.10")
}

func TestServicePricer_TaxRateByModality(t *testing.T) {
	pricer := NewServicePricer(DefaultServiceCostTable())

	tests := []struct {
		serviceType entities.ServiceType
		want        float64
	}{
		{entities.ServiceTypeOneOff, 0.1718},
		{entities.ServiceTypeMaintenance, 0.1718},
		{entities.ServiceTypeRentalStock, 0.1157},
		{entities.ServiceTypeRentalNew, 0.1157},
	}
	for _, tt := range tests {
		t.Run(string(tt.serviceType), func(t *testing.T) {
			assert.Equal(t, tt.want, pricer.TaxRate(tt.serviceType))
		})
	}
}

func TestServicePricer_ZeroQuantityLeavesUnitPriceAtZero(t *testing.T) {
	pricer := NewServicePricer(DefaultServiceCostTable())

	svc := entities.ServiceInput{
		ServiceType:            entities.ServiceTypeMaintenance,
		DistanceKmRoundTrip:    100,
		NumLocations:           1,
		VisitsPerYear:          12,
		ContractDurationMonths: 12,
	}
	quote := pricer.CalculateContractPrice(svc, scenarioWithMargin(0.30))

	assert.Greater(t, quote.MonthlyPrice, 0.0)
	assert.Equal(t, 0.0, quote.UnitMonthlyPrice)
}

func TestServicePricer_ContractTotalMatchesMonthlyPrice(t *testing.T) {
	pricer := NewServicePricer(DefaultServiceCostTable())

	base := entities.ServiceInput{
		UPSQuantity:                3,
		TechnicalHoursPerVisit:     1.75,
		DistanceKmRoundTrip:        73,
		NumLocations:               2,
		VisitsPerYear:              7,
		EquipmentCapexUnit:         4321.99,
		PartsCostEstimationMonthly: 12.34,
	}

	for _, st := range entities.AllServiceTypes {
		for _, months := range []int{1, 7, 12, 24, 36, 60} {
			svc := base
			svc.ServiceType = st
			svc.ContractDurationMonths = months

			for _, margin := range []float64{0.05, 0.25, 0.35, 0.80} {
				quote := pricer.CalculateContractPrice(svc, scenarioWithMargin(margin))

				// The total is rounded once from the unrounded monthly price.
				tolerance := 0.005*float64(months+1) + 1e-9
				assert.InDelta(t, quote.MonthlyPrice*float64(months), quote.TotalContractValue, tolerance,
					"%s months=%d margin=%v", st, months, margin)
				assert.Equal(t, quote.TotalContractValue, roundCents(quote.TotalContractValue),
					"%s months=%d margin=%v total must be in cents", st, months, margin)
			}
		}
	}
}
