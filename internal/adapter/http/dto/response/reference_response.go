package response

import "nbtech_pricing/internal/domain/entities"

type JurisdictionResponse struct {
	UF             string  `json:"uf" example:"BA"`
	InternalRate   float64 `json:"internal_rate" example:"0.205"`
	HighRateOrigin bool    `json:"high_rate_origin"`
}

type JurisdictionsResponse struct {
	TaxYear       string                 `json:"tax_year" example:"2026"`
	DefaultRate   float64                `json:"default_rate" example:"0.18"`
	PISCOFINSRate float64                `json:"pis_cofins_rate" example:"0.0365"`
	Jurisdictions []JurisdictionResponse `json:"jurisdictions"`
}

func FromJurisdictionTable(t entities.JurisdictionTable) JurisdictionsResponse {
	out := JurisdictionsResponse{
		TaxYear:       t.TaxYear,
		DefaultRate:   t.DefaultRate,
		PISCOFINSRate: t.PISCOFINSRate,
		Jurisdictions: make([]JurisdictionResponse, 0, len(t.Jurisdictions)),
	}
	for _, j := range t.Jurisdictions {
		out.Jurisdictions = append(out.Jurisdictions, JurisdictionResponse{
			UF:             string(j.UF),
			InternalRate:   j.InternalRate,
			HighRateOrigin: j.HighRateOrigin,
		})
	}
	return out
}

type PriceListRowResponse struct {
	Item    string            `json:"item"`
	Columns map[string]string `json:"columns"`
}

type PriceListResponse struct {
	Key     string                 `json:"key" example:"laboratorio"`
	Title   string                 `json:"title"`
	Headers []string               `json:"headers"`
	Rows    []PriceListRowResponse `json:"rows"`
}

type PriceListsResponse struct {
	Version string              `json:"version" example:"Jan/2026"`
	Lists   []PriceListResponse `json:"lists"`
}

func FromPriceLists(version string, lists []entities.PriceList) PriceListsResponse {
	out := PriceListsResponse{Version: version, Lists: make([]PriceListResponse, 0, len(lists))}
	for _, l := range lists {
		rows := make([]PriceListRowResponse, 0, len(l.Rows))
		for _, r := range l.Rows {
			rows = append(rows, PriceListRowResponse{Item: r.Item, Columns: r.Columns})
		}
		out.Lists = append(out.Lists, PriceListResponse{
			Key:     l.Key,
			Title:   l.Title,
			Headers: l.Headers,
			Rows:    rows,
		})
	}
	return out
}

type RatePresetResponse struct {
	Label string  `json:"label" example:"Nobreak"`
	Rate  float64 `json:"rate" example:"0.0975"`
}

type TaxPresetsResponse struct {
	IPI []RatePresetResponse `json:"ipi"`
	MVA []RatePresetResponse `json:"mva"`
}

func FromTaxPresets(p entities.TaxPresets) TaxPresetsResponse {
	return TaxPresetsResponse{IPI: fromPresets(p.IPI), MVA: fromPresets(p.MVA)}
}

func fromPresets(in []entities.RatePreset) []RatePresetResponse {
	out := make([]RatePresetResponse, 0, len(in))
	for _, p := range in {
		out = append(out, RatePresetResponse{Label: p.Label, Rate: p.Rate})
	}
	return out
}
