package request

import (
	"strings"

	"nbtech_pricing/internal/domain/entities"
)

// ServiceQuoteRequest is the payload of POST /v1/quotes/services: a single
// field visit billed once.
type ServiceQuoteRequest struct {
	Equipment           string           `json:"equipment" binding:"required" example:"Nobreak 10kVA"`
	TechnicalHours      float64          `json:"technical_hours" binding:"gte=0" example:"2"`
	DistanceKmRoundTrip float64          `json:"distance_km_round_trip" binding:"gte=0" example:"50"`
	Scenario            *ScenarioRequest `json:"scenario"`
}

func (r ServiceQuoteRequest) ToDomain() (entities.ServiceInput, entities.PricingScenario) {
	svc := entities.NewOneOffService(strings.TrimSpace(r.Equipment), r.TechnicalHours, r.DistanceKmRoundTrip)
	return svc, r.Scenario.ToDomain()
}

// ContractQuoteRequest is the payload of POST /v1/quotes/contracts.
type ContractQuoteRequest struct {
	ServiceType string `json:"service_type" binding:"required,service_type" example:"Contrato Manutenção (Preventiva + Corretiva)"`

	UPSPower    string `json:"ups_power" example:"20kVA"`
	UPSType     string `json:"ups_type" example:"Online"`
	UPSQuantity int    `json:"ups_quantity" binding:"required,gte=1" example:"2"`

	TechnicalHoursPerVisit float64 `json:"technical_hours_per_visit" binding:"gte=0" example:"1.5"`
	DistanceKmRoundTrip    float64 `json:"distance_km_round_trip" binding:"gte=0" example:"60"`
	NumLocations           int     `json:"num_locations" binding:"required,gte=1" example:"2"`
	VisitsPerYear          int     `json:"visits_per_year" binding:"required,gte=1" example:"12"`

	EquipmentCapexUnit         float64 `json:"equipment_capex_unit" binding:"gte=0" example:"0"`
	ContractDurationMonths     int     `json:"contract_duration_months" binding:"required,gte=1" example:"24"`
	PartsCostEstimationMonthly float64 `json:"parts_cost_estimation_monthly" binding:"gte=0" example:"0"`

	Scenario *ScenarioRequest `json:"scenario"`
}

func (r ContractQuoteRequest) ToDomain() (entities.ServiceInput, entities.PricingScenario) {
	return entities.ServiceInput{
		ServiceType:                entities.ServiceType(r.ServiceType),
		UPSPower:                   r.UPSPower,
		UPSType:                    r.UPSType,
		UPSQuantity:                r.UPSQuantity,
		TechnicalHoursPerVisit:     r.TechnicalHoursPerVisit,
		DistanceKmRoundTrip:        r.DistanceKmRoundTrip,
		NumLocations:               r.NumLocations,
		VisitsPerYear:              r.VisitsPerYear,
		EquipmentCapexUnit:         r.EquipmentCapexUnit,
		ContractDurationMonths:     r.ContractDurationMonths,
		PartsCostEstimationMonthly: r.PartsCostEstimationMonthly,
	}, r.Scenario.ToDomain()
}
