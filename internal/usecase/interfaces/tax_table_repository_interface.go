package interfaces

import (
	"context"

	"nbtech_pricing/internal/domain/taxtable"
)

// ITaxTableRepository abstracts where regional tax tables are stored.
//
// GetByYear returns the zero Table (IsZero) and a nil error when the year is
// not stored, so callers can tell "missing" apart from a storage failure.
type ITaxTableRepository interface {
	GetByYear(ctx context.Context, year string) (taxtable.Table, error)
}
