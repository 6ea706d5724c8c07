package usecase

import (
	"context"

	"nbtech_pricing/internal/domain/entities"
	"nbtech_pricing/internal/usecase/interfaces"
)

// IReferenceUseCase serves the read-only data behind the quoting forms.
type IReferenceUseCase interface {
	ListJurisdictions(ctx context.Context, taxYear string) (entities.JurisdictionTable, error)
	PriceLists(ctx context.Context) []entities.PriceList
	TaxPresets(ctx context.Context) entities.TaxPresets
}

type ReferenceUseCase struct {
	tables      interfaces.ITaxTableRepository
	defaultYear string
}

var _ IReferenceUseCase = (*ReferenceUseCase)(nil)

// NewReferenceUseCase resolves a blank tax year to defaultYear, like quotes do.
func NewReferenceUseCase(tables interfaces.ITaxTableRepository, defaultYear string) *ReferenceUseCase {
	return &ReferenceUseCase{tables: tables, defaultYear: normalizeDefaultYear(defaultYear)}
}

func (u *ReferenceUseCase) ListJurisdictions(ctx context.Context, taxYear string) (entities.JurisdictionTable, error) {
	table, err := loadTaxTable(ctx, u.tables, taxYear, u.defaultYear)
	if err != nil {
		return entities.JurisdictionTable{}, err
	}

	def := table.Definition()
	out := entities.JurisdictionTable{
		TaxYear:       table.Year(),
		DefaultRate:   def.DefaultRate,
		PISCOFINSRate: table.PISCOFINSRate(),
		Jurisdictions: make([]entities.JurisdictionRate, 0, len(entities.AllUFs)),
	}
	for _, uf := range entities.AllUFs {
		out.Jurisdictions = append(out.Jurisdictions, entities.JurisdictionRate{
			UF:             uf,
			InternalRate:   table.InternalRate(uf),
			HighRateOrigin: table.IsHighRateOrigin(uf),
		})
	}
	return out, nil
}

func (u *ReferenceUseCase) PriceLists(_ context.Context) []entities.PriceList {
	return entities.OfficialPriceLists()
}

func (u *ReferenceUseCase) TaxPresets(_ context.Context) entities.TaxPresets {
	return entities.TaxPresets{
		IPI: append([]entities.RatePreset(nil), entities.IPIPresets...),
		MVA: append([]entities.RatePreset(nil), entities.MVAPresets...),
	}
}
