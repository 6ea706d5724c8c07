package interfaces

import "nbtech_pricing/internal/domain/entities"

// Quote outcomes reported to IQuoteMetrics.
const (
	QuoteOutcomeOK          = "ok"
	QuoteOutcomeClamped     = "clamped"
	QuoteOutcomeUnpriceable = "unpriceable"
	QuoteOutcomeInvalid     = "invalid"
	QuoteOutcomeError       = "error"
)

// IQuoteMetrics records business metrics about issued quotes.
type IQuoteMetrics interface {
	ObserveQuote(kind entities.QuoteKind, outcome string, price float64)
}
