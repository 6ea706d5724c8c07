package response

import (
	"encoding/json"
	"testing"
	"time"

	"nbtech_pricing/internal/domain/entities"
)

func TestFromProductQuote(t *testing.T) {
	now := time.Now().UTC()
	q := entities.ProductQuote{
		ID:                    "q-1",
		TaxYear:               "2026",
		SellingPriceSuggested: 2762.43,
		CostPrice:             1000,
		Taxes:                 entities.TaxBreakdown{PISCOFINS: 100.83, IPI: 269.34, ICMSOwn: 193.37, DIFAL: 372.93},
		Financials:            entities.ProductFinancials{Commission: 82.87, AdminExpenses: 321.82, NetProfit: 690.61, NetMarginPct: 25},
		ICMSRate:              0.07,
		DIFALRate:             0.135,
		CreatedAt:             now,
	}

	res := FromProductQuote(q)
	if res.QuoteID != "q-1" || res.TaxYear != "2026" || res.SellingPriceSuggested != 2762.43 {
		t.Fatalf("unexpected mapped fields: %+v", res)
	}
	if res.Taxes.DIFAL != 372.93 || res.Financials.NetMarginPct != 25 {
		t.Fatalf("unexpected nested fields: %+v", res)
	}
	if !res.CreatedAt.Equal(now) {
		t.Fatalf("unexpected date: %v", res.CreatedAt)
	}

	raw, err := json.Marshal(res)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var keys map[string]json.RawMessage
	if err := json.Unmarshal(raw, &keys); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	for _, k := range []string{"selling_price_suggested", "cost_price", "taxes", "financials"} {
		if _, ok := keys[k]; !ok {
			t.Fatalf("missing key %q in %s", k, raw)
		}
	}
	var taxes map[string]float64
	if err := json.Unmarshal(keys["taxes"], &taxes); err != nil {
		t.Fatalf("unmarshal taxes: %v", err)
	}
	if len(taxes) != 5 || taxes["icms_own"] != 193.37 {
		t.Fatalf("unexpected taxes object: %v", taxes)
	}
}

func TestFromContractQuote(t *testing.T) {
	q := entities.ContractQuote{
		ID:                 "q-2",
		Kind:               entities.QuoteKindContract,
		MonthlyPrice:       1213.37,
		UnitMonthlyPrice:   606.68,
		TotalContractValue: 29120.84,
		Inputs:             entities.ContractInputsEcho{ServiceType: entities.ServiceTypeMaintenance, UPSQuantity: 2, VisitsYear: 12, TaxRateUsed: 0.1718},
		Breakdown:          entities.ContractBreakdown{Labor: 424.5, Logistics: 180},
		DeductionClamped:   true,
	}

	res := FromContractQuote(q)
	if res.Kind != "contrato" || res.UnitMonthlyPrice != 606.68 || !res.DeductionClamped {
		t.Fatalf("unexpected mapped fields: %+v", res)
	}
	if res.Inputs.ServiceType != string(entities.ServiceTypeMaintenance) || res.Inputs.UPSQuantity != 2 {
		t.Fatalf("unexpected inputs: %+v", res.Inputs)
	}
	if res.Breakdown.Labor != 424.5 || res.Breakdown.Logistics != 180 {
		t.Fatalf("unexpected breakdown: %+v", res.Breakdown)
	}

	raw, err := json.Marshal(res)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var body struct {
		Inputs    map[string]any     `json:"inputs"`
		Breakdown map[string]float64 `json:"breakdown"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if body.Inputs["tax_rate_used"] != 0.1718 {
		t.Fatalf("expected tax_rate_used 0.1718, got %v", body.Inputs["tax_rate_used"])
	}
	for _, k := range []string{"labor", "logistics", "parts_risk", "asset_amortization", "taxes", "commission", "net_profit"} {
		if _, ok := body.Breakdown[k]; !ok {
			t.Fatalf("missing breakdown key %q in %s", k, raw)
		}
	}
	if len(body.Breakdown) != 7 {
		t.Fatalf("unexpected breakdown keys: %v", body.Breakdown)
	}
}

func TestFromReferenceData(t *testing.T) {
	j := FromJurisdictionTable(entities.JurisdictionTable{
		TaxYear:       "2026",
		Jurisdictions: []entities.JurisdictionRate{{UF: entities.UFSP, InternalRate: 0.18, HighRateOrigin: true}},
	})
	if len(j.Jurisdictions) != 1 || j.Jurisdictions[0].UF != "SP" || !j.Jurisdictions[0].HighRateOrigin {
		t.Fatalf("unexpected jurisdictions: %+v", j)
	}

	lists := FromPriceLists(entities.OfficialPriceListsVersion, entities.OfficialPriceLists())
	if lists.Version != "Jan/2026" || len(lists.Lists) != 2 || len(lists.Lists[0].Rows) != 8 {
		t.Fatalf("unexpected price lists: %+v", lists)
	}

	presets := FromTaxPresets(entities.TaxPresets{IPI: entities.IPIPresets, MVA: entities.MVAPresets})
	if presets.IPI[1].Label != "Bateria" || presets.IPI[1].Rate != 0.15 || len(presets.MVA) != 3 {
		t.Fatalf("unexpected presets: %+v", presets)
	}
}
