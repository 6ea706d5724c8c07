package response

import (
	"time"

	"nbtech_pricing/internal/domain/entities"
)

type TaxesResponse struct {
	PISCOFINS float64 `json:"pis_cofins" example:"100.83"`
	IPI       float64 `json:"ipi" example:"269.34"`
	ICMSOwn   float64 `json:"icms_own" example:"193.37"`
	DIFAL     float64 `json:"difal" example:"372.93"`
	ICMSST    float64 `json:"icms_st" example:"0"`
}

type FinancialsResponse struct {
	Commission    float64 `json:"commission" example:"82.87"`
	AdminExpenses float64 `json:"admin_expenses" example:"321.82"`
	NetProfit     float64 `json:"net_profit" example:"690.61"`
	NetMarginPct  float64 `json:"net_margin_pct" example:"25"`
}

type ProductQuoteResponse struct {
	QuoteID               string             `json:"quote_id"`
	TaxYear               string             `json:"tax_year" example:"2026"`
	SellingPriceSuggested float64            `json:"selling_price_suggested" example:"2762.43"`
	CostPrice             float64            `json:"cost_price" example:"1000"`
	Taxes                 TaxesResponse      `json:"taxes"`
	Financials            FinancialsResponse `json:"financials"`
	ICMSRate              float64            `json:"icms_rate" example:"0.07"`
	DIFALRate             float64            `json:"difal_rate" example:"0.135"`
	TotalDeductionRate    float64            `json:"total_deduction_rate" example:"0.638"`
	CreatedAt             time.Time          `json:"created_at"`
}

func FromProductQuote(q entities.ProductQuote) ProductQuoteResponse {
	return ProductQuoteResponse{
		QuoteID:               q.ID,
		TaxYear:               q.TaxYear,
		SellingPriceSuggested: q.SellingPriceSuggested,
		CostPrice:             q.CostPrice,
		Taxes: TaxesResponse{
			PISCOFINS: q.Taxes.PISCOFINS,
			IPI:       q.Taxes.IPI,
			ICMSOwn:   q.Taxes.ICMSOwn,
			DIFAL:     q.Taxes.DIFAL,
			ICMSST:    q.Taxes.ICMSST,
		},
		Financials: FinancialsResponse{
			Commission:    q.Financials.Commission,
			AdminExpenses: q.Financials.AdminExpenses,
			NetProfit:     q.Financials.NetProfit,
			NetMarginPct:  q.Financials.NetMarginPct,
		},
		ICMSRate:           q.ICMSRate,
		DIFALRate:          q.DIFALRate,
		TotalDeductionRate: q.TotalDeductionRate,
		CreatedAt:          q.CreatedAt,
	}
}

type ContractInputsResponse struct {
	ServiceType string  `json:"service_type"`
	UPSQuantity int     `json:"ups_qty" example:"2"`
	VisitsYear  int     `json:"visits_year" example:"12"`
	TaxRateUsed float64 `json:"tax_rate_used" example:"0.1718"`
}

type ContractBreakdownResponse struct {
	Labor             float64 `json:"labor" example:"424.5"`
	Logistics         float64 `json:"logistics" example:"180"`
	PartsRisk         float64 `json:"parts_risk" example:"0"`
	AssetAmortization float64 `json:"asset_amortization" example:"0"`
	Taxes             float64 `json:"taxes" example:"208.46"`
	Commission        float64 `json:"commission" example:"36.4"`
	NetProfit         float64 `json:"net_profit" example:"364.01"`
}

type ContractQuoteResponse struct {
	QuoteID            string                    `json:"quote_id"`
	Kind               string                    `json:"kind" example:"contrato"`
	MonthlyPrice       float64                   `json:"monthly_price" example:"1213.37"`
	UnitMonthlyPrice   float64                   `json:"unit_monthly_price" example:"606.68"`
	TotalContractValue float64                   `json:"total_contract_value" example:"29120.84"`
	Inputs             ContractInputsResponse    `json:"inputs"`
	Breakdown          ContractBreakdownResponse `json:"breakdown"`
	TotalDeductionRate float64                   `json:"total_deduction_rate" example:"0.5018"`
	DeductionClamped   bool                      `json:"deduction_clamped"`
	CreatedAt          time.Time                 `json:"created_at"`
}

func FromContractQuote(q entities.ContractQuote) ContractQuoteResponse {
	return ContractQuoteResponse{
		QuoteID:            q.ID,
		Kind:               string(q.Kind),
		MonthlyPrice:       q.MonthlyPrice,
		UnitMonthlyPrice:   q.UnitMonthlyPrice,
		TotalContractValue: q.TotalContractValue,
		Inputs: ContractInputsResponse{
			ServiceType: string(q.Inputs.ServiceType),
			UPSQuantity: q.Inputs.UPSQuantity,
			VisitsYear:  q.Inputs.VisitsYear,
			TaxRateUsed: q.Inputs.TaxRateUsed,
		},
		Breakdown: ContractBreakdownResponse{
			Labor:             q.Breakdown.Labor,
			Logistics:         q.Breakdown.Logistics,
			PartsRisk:         q.Breakdown.PartsRisk,
			AssetAmortization: q.Breakdown.AssetAmortization,
			Taxes:             q.Breakdown.Taxes,
			Commission:        q.Breakdown.Commission,
			NetProfit:         q.Breakdown.NetProfit,
		},
		TotalDeductionRate: q.TotalDeductionRate,
		DeductionClamped:   q.DeductionClamped,
		CreatedAt:          q.CreatedAt,
	}
}
