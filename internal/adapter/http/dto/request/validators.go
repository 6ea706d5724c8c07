package request

import (
	"fmt"
	"sync"

	"nbtech_pricing/internal/domain/entities"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var registerOnce sync.Once

// RegisterValidators adds the domain tags ("uf", "service_type") to gin's
// validator engine. Safe to call more than once.
func RegisterValidators() error {
	var err error
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			err = fmt.Errorf("unexpected validator engine %T", binding.Validator.Engine())
			return
		}
		if err = v.RegisterValidation("uf", validateUF); err != nil {
			return
		}
		err = v.RegisterValidation("service_type", validateServiceType)
	})
	return err
}

func validateUF(fl validator.FieldLevel) bool {
	_, ok := entities.ParseUF(fl.Field().String())
	return ok
}

func validateServiceType(fl validator.FieldLevel) bool {
	return entities.ServiceType(fl.Field().String()).IsValid()
}
