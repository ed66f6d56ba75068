package validate

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	commonerrors "github.com/versionverse/backend/internal/common/errors"
)

var v = validator.New(validator.WithRequiredStructEnabled())

// Struct validates a request payload against its struct tags and folds the
// field-level failures into a single VALIDATION domain error.
func Struct(s any) error {
	err := v.Struct(s)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return commonerrors.ErrValidation.WithCause(err)
	}

	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fmt.Sprintf("%s is %s", jsonName(fe.Field()), reason(fe.Tag())))
	}

	return commonerrors.NewDomainError(
		commonerrors.ErrValidation.Code(),
		commonerrors.CategoryValidation,
		commonerrors.ErrValidation.HTTPStatus(),
		strings.Join(fields, "; "),
	)
}

func jsonName(field string) string {
	if field == "" {
		return field
	}
	return strings.ToLower(field[:1]) + field[1:]
}

func reason(tag string) string {
	switch tag {
	case "required":
		return "required"
	case "oneof":
		return "not an allowed value"
	default:
		return "invalid"
	}
}
