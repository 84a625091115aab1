package validation

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"

	"pet-adoption/internal/platform/apperr"
)

var validate = validator.New()

// Struct valida tags `validate:"..."` y devuelve un *apperr.ValidationError con los campos que fallaron.
func Struct(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return apperr.Invalid(err.Error())
	}

	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, toSnake(fe.Field()))
	}
	return apperr.Invalid("missing or invalid fields", fields...)
}

// CoverImageIndex -> cover_image_index
func toSnake(s string) string {
	var b strings.Builder
	for i, r := range s {
		if r >= 'A' && r <= 'Z' {
			if i > 0 {
				b.WriteByte('_')
			}
			b.WriteRune(r + ('a' - 'A'))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
