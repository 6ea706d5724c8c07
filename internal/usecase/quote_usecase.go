package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"nbtech_pricing/internal/domain/entities"
	"nbtech_pricing/internal/domain/taxtable"
	"nbtech_pricing/internal/usecase/interfaces"
	"nbtech_pricing/pkg/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrTaxTableNotFound  = errors.New("tax table not found")
	ErrInvalidQuoteInput = errors.New("invalid quote input")
)

// IQuoteUseCase issues price quotes.
//
//   - QuoteProduct prices a product resale under the tax table of taxYear
//     (the configured default year when empty).
//   - QuoteService prices a single field visit.
//   - QuoteContract prices maintenance and rental contracts.
//
// Quotes are computed on demand and never stored; the ID only correlates logs.
type IQuoteUseCase interface {
	QuoteProduct(ctx context.Context, taxYear string, product entities.ProductInput, customer entities.CustomerContext, scenario entities.PricingScenario) (entities.ProductQuote, error)
	QuoteService(ctx context.Context, service entities.ServiceInput, scenario entities.PricingScenario) (entities.ContractQuote, error)
	QuoteContract(ctx context.Context, service entities.ServiceInput, scenario entities.PricingScenario) (entities.ContractQuote, error)
}

type QuoteUseCase struct {
	tables      interfaces.ITaxTableRepository
	metrics     interfaces.IQuoteMetrics
	services    *ServicePricer
	defaultYear string
}

var _ IQuoteUseCase = (*QuoteUseCase)(nil)

// NewQuoteUseCase wires the use case. metrics may be nil.
func NewQuoteUseCase(tables interfaces.ITaxTableRepository, metrics interfaces.IQuoteMetrics, costs ServiceCostTable, defaultYear string) *QuoteUseCase {
	return &QuoteUseCase{
		tables:      tables,
		metrics:     metrics,
		services:    NewServicePricer(costs),
		defaultYear: normalizeDefaultYear(defaultYear),
	}
}

func (u *QuoteUseCase) QuoteProduct(ctx context.Context, taxYear string, product entities.ProductInput, customer entities.CustomerContext, scenario entities.PricingScenario) (entities.ProductQuote, error) {
	if err := validateProduct(product, customer, scenario); err != nil {
		u.observe(entities.QuoteKindProduct, interfaces.QuoteOutcomeInvalid, 0)
		return entities.ProductQuote{}, err
	}

	table, err := u.resolveTable(ctx, taxYear)
	if err != nil {
		outcome := interfaces.QuoteOutcomeError
		if errors.Is(err, ErrTaxTableNotFound) {
			outcome = interfaces.QuoteOutcomeInvalid
		}
		u.observe(entities.QuoteKindProduct, outcome, 0)
		return entities.ProductQuote{}, err
	}

	// The operator may leave the destination rate blank; the table fills it in.
	if customer.InternalICMSDest == 0 {
		customer.InternalICMSDest = table.InternalRate(customer.UF)
	}

	quote, err := NewProductPricer(table).CalculateSellingPrice(product, customer, scenario)
	if err != nil {
		switch {
		case errors.Is(err, ErrUnpriceableScenario):
			logger.Warn("product quote rejected",
				zap.String("tax_year", table.Year()),
				zap.String("origin_uf", string(product.OriginUF)),
				zap.String("dest_uf", string(customer.UF)),
				zap.Error(err),
			)
			u.observe(entities.QuoteKindProduct, interfaces.QuoteOutcomeUnpriceable, 0)
		default:
			u.observe(entities.QuoteKindProduct, interfaces.QuoteOutcomeError, 0)
		}
		return entities.ProductQuote{}, err
	}

	quote.ID = uuid.NewString()
	quote.CreatedAt = time.Now().UTC()

	logger.Debug("product quote issued",
		zap.String("quote_id", quote.ID),
		zap.String("tax_year", quote.TaxYear),
		zap.String("origin_uf", string(product.OriginUF)),
		zap.String("dest_uf", string(customer.UF)),
		zap.String("customer_type", string(customer.Type)),
		zap.Float64("cost_price", quote.CostPrice),
		zap.Float64("selling_price", quote.SellingPriceSuggested),
		zap.Float64("net_margin_pct", quote.Financials.NetMarginPct),
	)
	if quote.Financials.NetProfit < 0 {
		logger.Warn("product quote below cost after ICMS-ST",
			zap.String("quote_id", quote.ID),
			zap.Float64("net_profit", quote.Financials.NetProfit),
		)
	}
	u.observe(entities.QuoteKindProduct, interfaces.QuoteOutcomeOK, quote.SellingPriceSuggested)

	return quote, nil
}

func (u *QuoteUseCase) QuoteService(ctx context.Context, service entities.ServiceInput, scenario entities.PricingScenario) (entities.ContractQuote, error) {
	if service.ServiceType != entities.ServiceTypeOneOff {
		u.observe(entities.QuoteKindService, interfaces.QuoteOutcomeInvalid, 0)
		return entities.ContractQuote{}, fmt.Errorf("%w: service_type must be %q", ErrInvalidQuoteInput, entities.ServiceTypeOneOff)
	}
	return u.quoteService(ctx, entities.QuoteKindService, service, scenario)
}

func (u *QuoteUseCase) QuoteContract(ctx context.Context, service entities.ServiceInput, scenario entities.PricingScenario) (entities.ContractQuote, error) {
	if !service.ServiceType.IsValid() || service.ServiceType == entities.ServiceTypeOneOff {
		u.observe(entities.QuoteKindContract, interfaces.QuoteOutcomeInvalid, 0)
		return entities.ContractQuote{}, fmt.Errorf("%w: unsupported contract type %q", ErrInvalidQuoteInput, service.ServiceType)
	}
	return u.quoteService(ctx, entities.QuoteKindContract, service, scenario)
}

func (u *QuoteUseCase) quoteService(_ context.Context, kind entities.QuoteKind, service entities.ServiceInput, scenario entities.PricingScenario) (entities.ContractQuote, error) {
	if err := validateService(service, scenario); err != nil {
		u.observe(kind, interfaces.QuoteOutcomeInvalid, 0)
		return entities.ContractQuote{}, err
	}

	quote := u.services.CalculateContractPrice(service, scenario)
	quote.ID = uuid.NewString()
	quote.CreatedAt = time.Now().UTC()

	outcome := interfaces.QuoteOutcomeOK
	if quote.DeductionClamped {
		outcome = interfaces.QuoteOutcomeClamped
		logger.Warn("service deductions clamped",
			zap.String("quote_id", quote.ID),
			zap.String("service_type", string(service.ServiceType)),
			zap.Float64("requested_margin", scenario.TargetMargin),
			zap.Float64("applied_deductions", quote.TotalDeductionRate),
		)
	}

	logger.Debug("service quote issued",
		zap.String("quote_id", quote.ID),
		zap.String("kind", string(quote.Kind)),
		zap.String("service_type", string(service.ServiceType)),
		zap.Int("ups_quantity", service.UPSQuantity),
		zap.Float64("monthly_price", quote.MonthlyPrice),
		zap.Float64("total_contract_value", quote.TotalContractValue),
	)
	u.observe(kind, outcome, quote.MonthlyPrice)

	return quote, nil
}

func (u *QuoteUseCase) resolveTable(ctx context.Context, taxYear string) (taxtable.Table, error) {
	return loadTaxTable(ctx, u.tables, taxYear, u.defaultYear)
}

func normalizeDefaultYear(year string) string {
	if year = strings.TrimSpace(year); year == "" {
		return taxtable.DefaultYear
	}
	return year
}

// loadTaxTable fetches taxYear, or defaultYear when taxYear is blank.
// A missing year is ErrTaxTableNotFound.
func loadTaxTable(ctx context.Context, tables interfaces.ITaxTableRepository, taxYear, defaultYear string) (taxtable.Table, error) {
	year := strings.TrimSpace(taxYear)
	if year == "" {
		year = defaultYear
	}

	table, err := tables.GetByYear(ctx, year)
	if err != nil {
		logger.Error("failed to load tax table", zap.String("tax_year", year), zap.Error(err))
		return taxtable.Table{}, err
	}
	if table.IsZero() {
		return taxtable.Table{}, fmt.Errorf("%w: %s", ErrTaxTableNotFound, year)
	}
	return table, nil
}

func (u *QuoteUseCase) observe(kind entities.QuoteKind, outcome string, price float64) {
	if u.metrics == nil {
		return
	}
	u.metrics.ObserveQuote(kind, outcome, price)
}

func validateProduct(product entities.ProductInput, customer entities.CustomerContext, scenario entities.PricingScenario) error {
	switch {
	case !product.OriginUF.IsValid():
		return fmt.Errorf("%w: unknown origin uf %q", ErrInvalidQuoteInput, product.OriginUF)
	case !customer.UF.IsValid():
		return fmt.Errorf("%w: unknown destination uf %q", ErrInvalidQuoteInput, customer.UF)
	case !customer.Type.IsValid():
		return fmt.Errorf("%w: unknown customer type %q", ErrInvalidQuoteInput, customer.Type)
	case product.CostPrice <= 0:
		return fmt.Errorf("%w: %w", ErrInvalidQuoteInput, ErrInvalidCostPrice)
	case product.IPIRate < 0 || product.MVAST < 0:
		return fmt.Errorf("%w: ipi and mva must not be negative", ErrInvalidQuoteInput)
	case customer.InternalICMSDest < 0 || customer.InternalICMSDest >= 1:
		return fmt.Errorf("%w: destination internal rate out of range", ErrInvalidQuoteInput)
	}
	return validateScenario(scenario)
}

func validateService(service entities.ServiceInput, scenario entities.PricingScenario) error {
	switch {
	case service.UPSQuantity < 1:
		return fmt.Errorf("%w: ups_quantity must be at least 1", ErrInvalidQuoteInput)
	case service.NumLocations < 1:
		return fmt.Errorf("%w: num_locations must be at least 1", ErrInvalidQuoteInput)
	case service.VisitsPerYear < 1:
		return fmt.Errorf("%w: visits_per_year must be at least 1", ErrInvalidQuoteInput)
	case service.ContractDurationMonths < 1:
		return fmt.Errorf("%w: contract_duration_months must be at least 1", ErrInvalidQuoteInput)
	case service.TechnicalHoursPerVisit < 0,
		service.DistanceKmRoundTrip < 0,
		service.EquipmentCapexUnit < 0,
		service.PartsCostEstimationMonthly < 0:
		return fmt.Errorf("%w: costs must not be negative", ErrInvalidQuoteInput)
	}
	return validateScenario(scenario)
}

func validateScenario(scenario entities.PricingScenario) error {
	for _, r := range []float64{scenario.CommissionRate, scenario.AdminCostRate, scenario.TargetMargin} {
		if r < 0 || r >= 1 {
			return fmt.Errorf("%w: scenario rates must be within [0, 1)", ErrInvalidQuoteInput)
		}
	}
	return nil
}
