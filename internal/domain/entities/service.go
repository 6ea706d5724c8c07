package entities

import "slices"

// ServiceType is the commercial modality of a field-service quote.
//
// The string values are the labels shown to operators and accepted by the API.
type ServiceType string

const (
	ServiceTypeOneOff      ServiceType = "Serviço Pontual (Avulso)"
	ServiceTypeMaintenance ServiceType = "Contrato Manutenção (Preventiva + Corretiva)"
	ServiceTypeRentalStock ServiceType = "Locação (UPS Estoque)"
	ServiceTypeRentalNew   ServiceType = "Locação (Compra UPS Nova)"
)

// AllServiceTypes lists the modalities in the order they are offered.
var AllServiceTypes = []ServiceType{
	ServiceTypeOneOff,
	ServiceTypeMaintenance,
	ServiceTypeRentalStock,
	ServiceTypeRentalNew,
}

func (t ServiceType) IsValid() bool {
	return slices.Contains(AllServiceTypes, t)
}

// IsRental reports whether the modality is taxed as equipment rental.
func (t ServiceType) IsRental() bool {
	switch t {
	case ServiceTypeRentalStock, ServiceTypeRentalNew:
		return true
	}
	return false
}

// ServiceInput describes a one-off service or a recurring contract.
//
// UPSPower and UPSType are descriptive only and never enter the calculation.
type ServiceInput struct {
	ServiceType ServiceType

	UPSPower    string
	UPSType     string
	UPSQuantity int

	TechnicalHoursPerVisit float64
	DistanceKmRoundTrip    float64
	NumLocations           int
	VisitsPerYear          int

	EquipmentCapexUnit         float64
	ContractDurationMonths     int
	PartsCostEstimationMonthly float64
}

// NewOneOffService builds the input used for a single field visit: one month,
// one visit, one location.
func NewOneOffService(equipment string, hours, distanceKm float64) ServiceInput {
	return ServiceInput{
		ServiceType:            ServiceTypeOneOff,
		UPSPower:               equipment,
		UPSType:                equipment,
		UPSQuantity:            1,
		TechnicalHoursPerVisit: hours,
		DistanceKmRoundTrip:    distanceKm,
		NumLocations:           1,
		VisitsPerYear:          1,
		ContractDurationMonths: 1,
	}
}
