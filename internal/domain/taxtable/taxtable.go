package taxtable

import (
	"errors"
	"fmt"

	"nbtech_pricing/internal/domain/entities"
)

const (
	// DefaultYear labels the table returned by Default.
	DefaultYear = "2026"

	DefaultRate = 0.18
	PISRate     = 0.0065
	COFINSRate  = 0.0300

	InterstateRateReduced = 0.07
	InterstateRateGeneral = 0.12
)

var ErrInvalidTable = errors.New("invalid tax table")

// Table is the regional ICMS table for one tax year.
//
// A Table is immutable once built: maps are copied on construction and only
// exposed through accessors, so a single value can be shared by every request.
type Table struct {
	year            string
	defaultRate     float64
	pisRate         float64
	cofinsRate      float64
	internalRates   map[entities.UF]float64
	highRateOrigins map[entities.UF]struct{}
}

// Definition is the raw material of a Table, as stored in configuration.
type Definition struct {
	Year            string
	DefaultRate     float64
	PISRate         float64
	COFINSRate      float64
	InternalRates   map[entities.UF]float64
	HighRateOrigins []entities.UF
}

// New validates a definition and freezes it into a Table.
func New(def Definition) (Table, error) {
	if def.Year == "" {
		return Table{}, fmt.Errorf("%w: missing year", ErrInvalidTable)
	}
	if !isRate(def.DefaultRate) || !isRate(def.PISRate) || !isRate(def.COFINSRate) {
		return Table{}, fmt.Errorf("%w: year %s has a rate outside [0,1)", ErrInvalidTable, def.Year)
	}

	rates := make(map[entities.UF]float64, len(def.InternalRates))
	for uf, rate := range def.InternalRates {
		if !uf.IsValid() {
			return Table{}, fmt.Errorf("%w: year %s has unknown uf %q", ErrInvalidTable, def.Year, uf)
		}
		if !isRate(rate) {
			return Table{}, fmt.Errorf("%w: year %s uf %s rate %v outside [0,1)", ErrInvalidTable, def.Year, uf, rate)
		}
		rates[uf] = rate
	}

	origins := make(map[entities.UF]struct{}, len(def.HighRateOrigins))
	for _, uf := range def.HighRateOrigins {
		if !uf.IsValid() {
			return Table{}, fmt.Errorf("%w: year %s has unknown origin %q", ErrInvalidTable, def.Year, uf)
		}
		origins[uf] = struct{}{}
	}

	return Table{
		year:            def.Year,
		defaultRate:     def.DefaultRate,
		pisRate:         def.PISRate,
		cofinsRate:      def.COFINSRate,
		internalRates:   rates,
		highRateOrigins: origins,
	}, nil
}

// Default returns the 2025/2026 table. Internal rates include the state
// poverty fund surcharge (FECP/FECOEP) where it applies by default.
func Default() Table {
	t, err := New(DefaultDefinition())
	if err != nil {
		panic(err)
	}
	return t
}

// DefaultDefinition returns the raw 2025/2026 data, used to seed storage.
func DefaultDefinition() Definition {
	return Definition{
		Year:        DefaultYear,
		DefaultRate: DefaultRate,
		PISRate:     PISRate,
		COFINSRate:  COFINSRate,
		InternalRates: map[entities.UF]float64{
			entities.UFAC: 0.19, entities.UFAL: 0.19, entities.UFAP: 0.18, entities.UFAM: 0.20,
			entities.UFBA: 0.205, entities.UFCE: 0.20, entities.UFDF: 0.20, entities.UFES: 0.17,
			entities.UFGO: 0.19, entities.UFMA: 0.23, entities.UFMT: 0.17, entities.UFMS: 0.17,
			entities.UFMG: 0.18, entities.UFPA: 0.19, entities.UFPB: 0.20, entities.UFPR: 0.195,
			entities.UFPE: 0.205, entities.UFPI: 0.225, entities.UFRJ: 0.22, entities.UFRN: 0.20,
			entities.UFRS: 0.17, entities.UFRO: 0.195, entities.UFRR: 0.20, entities.UFSC: 0.17,
			entities.UFSP: 0.18, entities.UFSE: 0.19, entities.UFTO: 0.20,
		},
		// South and Southeast, except Espírito Santo.
		HighRateOrigins: []entities.UF{
			entities.UFMG, entities.UFPR, entities.UFRJ, entities.UFRS, entities.UFSC, entities.UFSP,
		},
	}
}

// Year is the version label of the table.
func (t Table) Year() string {
	return t.year
}

func (t Table) PISRate() float64 {
	return t.pisRate
}

func (t Table) COFINSRate() float64 {
	return t.cofinsRate
}

// PISCOFINSRate is the combined federal turnover tax rate.
func (t Table) PISCOFINSRate() float64 {
	return t.pisRate + t.cofinsRate
}

// InternalRate returns the internal ICMS rate of a UF, or the default rate
// when the UF is not in the table.
func (t Table) InternalRate(uf entities.UF) float64 {
	if rate, ok := t.internalRates[uf]; ok {
		return rate
	}
	return t.defaultRate
}

// InterstateRate returns the ICMS rate for goods moving from origin to dest.
//
// Same UF is not an interstate operation and yields 0. South/Southeast
// origins (except ES) selling outside that region pay 7%; everything else 12%.
func (t Table) InterstateRate(origin, dest entities.UF) float64 {
	if origin == dest {
		return 0.0
	}
	if t.isHighRateOrigin(origin) && !t.isHighRateOrigin(dest) {
		return InterstateRateReduced
	}
	return InterstateRateGeneral
}

// Definition returns a copy of the data the table was built from.
func (t Table) Definition() Definition {
	rates := make(map[entities.UF]float64, len(t.internalRates))
	for uf, rate := range t.internalRates {
		rates[uf] = rate
	}
	origins := make([]entities.UF, 0, len(t.highRateOrigins))
	for _, uf := range entities.AllUFs {
		if t.isHighRateOrigin(uf) {
			origins = append(origins, uf)
		}
	}
	return Definition{
		Year:            t.year,
		DefaultRate:     t.defaultRate,
		PISRate:         t.pisRate,
		COFINSRate:      t.cofinsRate,
		InternalRates:   rates,
		HighRateOrigins: origins,
	}
}

// IsZero reports whether t is the zero Table, i.e. no table was found.
func (t Table) IsZero() bool {
	return t.year == ""
}

// IsHighRateOrigin reports whether sales leaving uf use the reduced interstate rate.
func (t Table) IsHighRateOrigin(uf entities.UF) bool {
	return t.isHighRateOrigin(uf)
}

func (t Table) isHighRateOrigin(uf entities.UF) bool {
	_, ok := t.highRateOrigins[uf]
	return ok
}

func isRate(v float64) bool {
	return v >= 0 && v < 1
}
