package validator

import (
	"fmt"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/clinicore/clinic-api/internal/model"
)

// RegisterCustom installs clinic-specific binding rules on gin's
// validator engine. Must be called before the router handles requests.
func RegisterCustom() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("unexpected binding validator engine %T", binding.Validator.Engine())
	}

	if err := v.RegisterValidation("clinicphone", func(fl validator.FieldLevel) bool {
		return model.ValidPhone(fl.Field().String())
	}); err != nil {
		return fmt.Errorf("failed to register phone rule: %w", err)
	}

	if err := v.RegisterValidation("slottime", func(fl validator.FieldLevel) bool {
		return model.ValidSlotTime(fl.Field().String())
	}); err != nil {
		return fmt.Errorf("failed to register slot time rule: %w", err)
	}

	return nil
}
