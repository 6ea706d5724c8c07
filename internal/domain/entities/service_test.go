package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestServiceType_IsValid(t *testing.T) {
	for _, st := range AllServiceTypes {
		assert.True(t, st.IsValid(), "%q", st)
	}
	for _, st := range []ServiceType{"", "Leasing", "locação (ups estoque)", "Serviço Pontual"} {
		assert.False(t, st.IsValid(), "%q", st)
	}
}

func TestServiceType_IsRental(t *testing.T) {
	rentals := 0
	for _, st := range AllServiceTypes {
		if st.IsRental() {
			rentals++
		}
	}
	assert.Equal(t, 2, rentals)
	assert.True(t, ServiceTypeRentalStock.IsRental())
	assert.True(t, ServiceTypeRentalNew.IsRental())
	assert.False(t, ServiceTypeMaintenance.IsRental())
}

func TestNewOneOffService(t *testing.T) {
	svc := NewOneOffService("Nobreak 10kVA", 2, 50)
	assert.Equal(t, ServiceTypeOneOff, svc.ServiceType)
	assert.Equal(t, 1, svc.UPSQuantity)
	assert.Equal(t, 1, svc.NumLocations)
	assert.Equal(t, 1, svc.VisitsPerYear)
	assert.Equal(t, 1, svc.ContractDurationMonths)
}
