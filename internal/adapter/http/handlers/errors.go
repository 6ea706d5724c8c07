package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"nbtech_pricing/internal/usecase"
	"nbtech_pricing/pkg"

	"github.com/go-playground/validator/v10"
)

var (
	errInvalidRequest = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
)

// bindError turns a gin binding failure into the INVALID_REQUEST envelope,
// listing the failing fields when the validator reports them.
func bindError(err error) *pkg.AppError {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return errInvalidRequest
	}
	details := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		details = append(details, fmt.Sprintf("%s failed on '%s'", fe.Namespace(), fe.Tag()))
	}
	return errInvalidRequest.WithDetails(details...)
}

func mapQuoteError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidQuoteInput):
		return errInvalidRequest.WithDetails(err.Error())
	case errors.Is(err, usecase.ErrUnpriceableScenario):
		return pkg.NewDomainError("UNPRICEABLE_SCENARIO", "Taxes and margins leave no room for a price", err, http.StatusUnprocessableEntity).WithDetails(err.Error())
	case errors.Is(err, usecase.ErrTaxTableNotFound):
		return pkg.NewDomainError("TAX_TABLE_NOT_FOUND", "Tax table not found for the requested year", err, http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
