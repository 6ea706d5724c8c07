package usecase

import (
	"nbtech_pricing/internal/domain/entities"
)

const (
	// MaxServiceDeductionRate triggers the clamp below.
	MaxServiceDeductionRate = 0.95
	// ClampedServiceDeductionRate replaces deductions at or above MaxServiceDeductionRate.
	ClampedServiceDeductionRate = 0.90
)

// ServiceCostTable holds the operational cost constants of field services.
//
// Tax rates follow the presumed profit regime (Lucro Presumido).
type ServiceCostTable struct {
	HourlyLaborRate       float64
	CostPerKm             float64
	MaintenanceTaxRate    float64
	RentalTaxRate         float64
	StockAmortizationRate float64
}

func DefaultServiceCostTable() ServiceCostTable {
	return ServiceCostTable{
		HourlyLaborRate:       141.50,
		CostPerKm:             1.50,
		MaintenanceTaxRate:    0.1718,
		RentalTaxRate:         0.1157,
		StockAmortizationRate: 0.025,
	}
}

// ServicePricer computes the monthly price of services and contracts.
//
// Policy: unlike ProductPricer, deductions at or above MaxServiceDeductionRate
// are clamped to ClampedServiceDeductionRate and the calculation proceeds.
// The quote reports DeductionClamped so callers can surface it.
type ServicePricer struct {
	costs ServiceCostTable
}

func NewServicePricer(costs ServiceCostTable) *ServicePricer {
	return &ServicePricer{costs: costs}
}

// TaxRate returns the tax load of a modality.
func (p *ServicePricer) TaxRate(t entities.ServiceType) float64 {
	if t.IsRental() {
		return p.costs.RentalTaxRate
	}
	return p.costs.MaintenanceTaxRate
}

// CalculateContractPrice returns the monthly price of a service or contract.
func (p *ServicePricer) CalculateContractPrice(service entities.ServiceInput, scenario entities.PricingScenario) entities.ContractQuote {
	taxRate := p.TaxRate(service.ServiceType)

	// Annual visits are spread over twelve monthly installments; a one-off
	// service is a single visit billed once.
	monthlyVisits := 1.0
	if service.ServiceType != entities.ServiceTypeOneOff {
		monthlyVisits = float64(service.VisitsPerYear) / 12.0
	}

	qty := float64(service.UPSQuantity)

	techHoursMonth := service.TechnicalHoursPerVisit * qty * monthlyVisits
	labor := techHoursMonth * p.costs.HourlyLaborRate

	kmMonth := service.DistanceKmRoundTrip * float64(service.NumLocations) * monthlyVisits
	logistics := kmMonth * p.costs.CostPerKm

	partsRisk := service.PartsCostEstimationMonthly * qty

	opex := labor + logistics + partsRisk

	amortization := p.amortization(service)

	costBase := opex + amortization

	deductions := taxRate + scenario.CommissionRate + scenario.TargetMargin
	clamped := false
	if deductions >= MaxServiceDeductionRate {
		deductions = ClampedServiceDeductionRate
		clamped = true
	}

	monthly := costBase / (1 - deductions)

	unit := 0.0
	if service.UPSQuantity > 0 {
		unit = monthly / qty
	}

	kind := entities.QuoteKindContract
	if service.ServiceType == entities.ServiceTypeOneOff {
		kind = entities.QuoteKindService
	}

	return entities.ContractQuote{
		Kind:               kind,
		MonthlyPrice:       roundCents(monthly),
		UnitMonthlyPrice:   roundCents(unit),
		TotalContractValue: roundCents(monthly * float64(service.ContractDurationMonths)),
		Inputs: entities.ContractInputsEcho{
			ServiceType: service.ServiceType,
			UPSQuantity: service.UPSQuantity,
			VisitsYear:  service.VisitsPerYear,
			TaxRateUsed: taxRate,
		},
		Breakdown: entities.ContractBreakdown{
			Labor:             roundCents(labor),
			Logistics:         roundCents(logistics),
			PartsRisk:         roundCents(partsRisk),
			AssetAmortization: roundCents(amortization),
			Taxes:             roundCents(monthly * taxRate),
			Commission:        roundCents(monthly * scenario.CommissionRate),
			NetProfit:         roundCents(monthly * scenario.TargetMargin),
		},
		TotalDeductionRate: deductions,
		DeductionClamped:   clamped,
	}
}

func (p *ServicePricer) amortization(service entities.ServiceInput) float64 {
	totalCapex := service.EquipmentCapexUnit * float64(service.UPSQuantity)

	switch service.ServiceType {
	case entities.ServiceTypeRentalNew:
		// Straight line over the contract life.
		if service.ContractDurationMonths > 0 {
			return totalCapex / float64(service.ContractDurationMonths)
		}
		return 0
	case entities.ServiceTypeRentalStock:
		return totalCapex * p.costs.StockAmortizationRate
	case entities.ServiceTypeOneOff, entities.ServiceTypeMaintenance:
		return 0
	}
	return 0
}
