package request

import (
	"nbtech_pricing/internal/domain/entities"
)

type ProductRequest struct {
	Name      string  `json:"name" example:"Nobreak 3kVA Online"`
	NCM       string  `json:"ncm" example:"8504.40.40"`
	CostPrice float64 `json:"cost_price" binding:"required,gt=0" example:"1000"`
	IPIRate   float64 `json:"ipi_rate" binding:"gte=0,lt=1" example:"0.0975"`
	MVAST     float64 `json:"mva_st" binding:"gte=0" example:"0.46"`
	OriginUF  string  `json:"origin_uf" binding:"required,uf" example:"SP"`
}

type CustomerRequest struct {
	UF   string `json:"uf" binding:"required,uf" example:"BA"`
	Type string `json:"type" binding:"required,oneof=Contribuinte Nao_Contribuinte" example:"Nao_Contribuinte"`
	// InternalICMSDest defaults to the table rate of UF when omitted.
	InternalICMSDest *float64 `json:"internal_icms_dest" binding:"omitempty,gte=0,lt=1" example:"0.205"`
}

// ProductQuoteRequest is the payload of POST /v1/quotes/products.
type ProductQuoteRequest struct {
	TaxYear  string           `json:"tax_year" example:"2026"`
	Product  ProductRequest   `json:"product"`
	Customer CustomerRequest  `json:"customer"`
	Scenario *ScenarioRequest `json:"scenario"`
}

func (r ProductQuoteRequest) ToDomain() (entities.ProductInput, entities.CustomerContext, entities.PricingScenario) {
	origin, _ := entities.ParseUF(r.Product.OriginUF)
	dest, _ := entities.ParseUF(r.Customer.UF)

	product := entities.ProductInput{
		Name:      r.Product.Name,
		NCM:       r.Product.NCM,
		CostPrice: r.Product.CostPrice,
		IPIRate:   r.Product.IPIRate,
		MVAST:     r.Product.MVAST,
		OriginUF:  origin,
	}

	customer := entities.CustomerContext{
		UF:   dest,
		Type: entities.CustomerType(r.Customer.Type),
	}
	if r.Customer.InternalICMSDest != nil {
		customer.InternalICMSDest = *r.Customer.InternalICMSDest
	}

	return product, customer, r.Scenario.ToDomain()
}
