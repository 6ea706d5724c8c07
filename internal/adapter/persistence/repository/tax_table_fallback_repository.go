package repository

import (
	"context"

	"nbtech_pricing/internal/domain/taxtable"
	"nbtech_pricing/internal/usecase/interfaces"
	"nbtech_pricing/pkg/logger"

	"go.uber.org/zap"
)

// TaxTableFallbackRepository asks primary first and falls back to the
// secondary source when the year is missing or primary is unavailable.
type TaxTableFallbackRepository struct {
	primary  interfaces.ITaxTableRepository
	fallback interfaces.ITaxTableRepository
}

var _ interfaces.ITaxTableRepository = (*TaxTableFallbackRepository)(nil)

func NewTaxTableFallbackRepository(primary, fallback interfaces.ITaxTableRepository) *TaxTableFallbackRepository {
	return &TaxTableFallbackRepository{primary: primary, fallback: fallback}
}

func (r *TaxTableFallbackRepository) GetByYear(ctx context.Context, year string) (taxtable.Table, error) {
	t, err := r.primary.GetByYear(ctx, year)
	if err != nil {
		logger.Warn("primary tax table source failed, using fallback",
			zap.String("tax_year", year),
			zap.Error(err),
		)
		return r.fallback.GetByYear(ctx, year)
	}
	if t.IsZero() {
		return r.fallback.GetByYear(ctx, year)
	}
	return t, nil
}
