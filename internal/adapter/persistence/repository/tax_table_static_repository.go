package repository

import (
	"context"

	"nbtech_pricing/internal/domain/taxtable"
	"nbtech_pricing/internal/usecase/interfaces"
)

// TaxTableStaticRepository serves tax tables compiled into the binary.
type TaxTableStaticRepository struct {
	tables map[string]taxtable.Table
}

var _ interfaces.ITaxTableRepository = (*TaxTableStaticRepository)(nil)

// NewTaxTableStaticRepository indexes tables by year. With no tables it
// serves taxtable.Default().
func NewTaxTableStaticRepository(tables ...taxtable.Table) *TaxTableStaticRepository {
	if len(tables) == 0 {
		tables = []taxtable.Table{taxtable.Default()}
	}
	idx := make(map[string]taxtable.Table, len(tables))
	for _, t := range tables {
		idx[t.Year()] = t
	}
	return &TaxTableStaticRepository{tables: idx}
}

func (r *TaxTableStaticRepository) GetByYear(_ context.Context, year string) (taxtable.Table, error) {
	return r.tables[year], nil
}
