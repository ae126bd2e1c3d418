package service

import (
	"errors"
	"fmt"

	apperrors "shoot-planner-backend/internal/errors"

	"github.com/go-playground/validator/v10"
)

// translateValidationError converts validator.Struct failures into
// ValidationErrors so handlers map them to 400 through IsValidation.
func translateValidationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return apperrors.NewValidationError("", err.Error())
	}

	first := verrs[0]
	return apperrors.NewValidationError(first.Field(), fmt.Sprintf("failed on the '%s' rule", first.Tag()))
}
