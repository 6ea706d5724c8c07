package request

import "nbtech_pricing/internal/domain/entities"

// ScenarioRequest overrides the commercial defaults. Omitted fields keep
// the default (3% commission, 11.65% admin, 25% margin).
type ScenarioRequest struct {
	CommissionRate *float64 `json:"commission_rate" binding:"omitempty,gte=0,lt=1" example:"0.03"`
	AdminCostRate  *float64 `json:"admin_cost_rate" binding:"omitempty,gte=0,lt=1" example:"0.1165"`
	TargetMargin   *float64 `json:"target_margin" binding:"omitempty,gte=0,lt=1" example:"0.25"`
}

func (r *ScenarioRequest) ToDomain() entities.PricingScenario {
	s := entities.DefaultPricingScenario()
	if r == nil {
		return s
	}
	if r.CommissionRate != nil {
		s.CommissionRate = *r.CommissionRate
	}
	if r.AdminCostRate != nil {
		s.AdminCostRate = *r.AdminCostRate
	}
	if r.TargetMargin != nil {
		s.TargetMargin = *r.TargetMargin
	}
	return s
}
