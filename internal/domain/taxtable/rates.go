package taxtable

import "nbtech_pricing/internal/domain/entities"

// RateSelection is the ICMS load of one origin/destination/customer triple.
type RateSelection struct {
	// OwnRate is the ICMS charged by the seller: the destination internal
	// rate for an internal sale, the interstate rate otherwise.
	OwnRate float64
	// DifferentialRate is the DIFAL owed to the destination. Only interstate
	// sales to non-registered customers carry it.
	DifferentialRate float64
	Interstate       bool
}

// SelectRates decides which ICMS rates apply to a sale.
//
// destInternal is the destination internal rate used for DIFAL; callers pass
// the operator's value, which defaults to t.InternalRate(dest).
func SelectRates(t Table, origin, dest entities.UF, customer entities.CustomerType, destInternal float64) RateSelection {
	if origin == dest {
		return RateSelection{OwnRate: t.InternalRate(dest)}
	}

	sel := RateSelection{
		OwnRate:    t.InterstateRate(origin, dest),
		Interstate: true,
	}
	if customer == entities.CustomerNaoContribuinte {
		sel.DifferentialRate = max(0, destInternal-sel.OwnRate)
	}
	return sel
}
