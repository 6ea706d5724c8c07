package entities

import "strings"

// UF is a Brazilian federative unit (state or federal district) code.
//
// The set is closed: 26 states plus the Distrito Federal.

type UF string

const (
	UFAC UF = "AC"
	UFAL UF = "AL"
	UFAP UF = "AP"
	UFAM UF = "AM"
	UFBA UF = "BA"
	UFCE UF = "CE"
	UFDF UF = "DF"
	UFES UF = "ES"
	UFGO UF = "GO"
	UFMA UF = "MA"
	UFMT UF = "MT"
	UFMS UF = "MS"
	UFMG UF = "MG"
	UFPA UF = "PA"
	UFPB UF = "PB"
	UFPR UF = "PR"
	UFPE UF = "PE"
	UFPI UF = "PI"
	UFRJ UF = "RJ"
	UFRN UF = "RN"
	UFRS UF = "RS"
	UFRO UF = "RO"
	UFRR UF = "RR"
	UFSC UF = "SC"
	UFSP UF = "SP"
	UFSE UF = "SE"
	UFTO UF = "TO"
)

// AllUFs lists every federative unit in alphabetical order.
var AllUFs = []UF{
	UFAC, UFAL, UFAM, UFAP, UFBA, UFCE, UFDF, UFES, UFGO,
	UFMA, UFMG, UFMS, UFMT, UFPA, UFPB, UFPE, UFPI, UFPR,
	UFRJ, UFRN, UFRO, UFRR, UFRS, UFSC, UFSE, UFSP, UFTO,
}

var validUFs = func() map[UF]struct{} {
	m := make(map[UF]struct{}, len(AllUFs))
	for _, uf := range AllUFs {
		m[uf] = struct{}{}
	}
	return m
}()

func (u UF) IsValid() bool {
	_, ok := validUFs[u]
	return ok
}

// ParseUF normalizes a user supplied code ("sp", " SP ") and reports whether it is known.
func ParseUF(s string) (UF, bool) {
	uf := UF(strings.ToUpper(strings.TrimSpace(s)))
	return uf, uf.IsValid()
}

// JurisdictionRate is the published ICMS position of one state in a tax year.
type JurisdictionRate struct {
	UF             UF
	InternalRate   float64
	HighRateOrigin bool
}

// JurisdictionTable lists every state for one tax year.
type JurisdictionTable struct {
	TaxYear       string
	DefaultRate   float64
	PISCOFINSRate float64
	Jurisdictions []JurisdictionRate
}
