package item

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/osse101/GildedRose_Go/internal/domain"
)

// checkedInput carries construction values through struct validation
type checkedInput struct {
	Name          string         `validate:"required,max=128"`
	Variant       domain.Variant `validate:"required,variant"`
	Quality       int            `validate:"gte=0"`
	DaysRemaining int
}

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func getValidator() *validator.Validate {
	validateOnce.Do(func() {
		v := validator.New()
		_ = v.RegisterValidation("variant", validateVariant)
		v.RegisterStructValidation(validateQualityCeiling, checkedInput{})
		validate = v
	})
	return validate
}

func validateVariant(fl validator.FieldLevel) bool {
	return domain.Variant(fl.Field().String()).Valid()
}

func validateQualityCeiling(sl validator.StructLevel) {
	in := sl.Current().Interface().(checkedInput)
	ceiling := in.Variant.QualityCeiling()
	if in.Quality > ceiling {
		sl.ReportError(in.Quality, "Quality", "Quality", "ceiling", strconv.Itoa(ceiling))
	}
}

// NewChecked builds an item like For but rejects empty names, negative
// quality and quality above the variant's ceiling.
func (c *Catalog) NewChecked(name string, quality, daysRemaining int) (*Item, error) {
	in := checkedInput{
		Name:          name,
		Variant:       c.Variant(name),
		Quality:       quality,
		DaysRemaining: daysRemaining,
	}
	if err := getValidator().Struct(in); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidItem, formatValidationError(err))
	}
	return New(in.Variant, name, quality, daysRemaining), nil
}

// formatValidationError turns validator errors into a short readable message
func formatValidationError(err error) string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err.Error()
	}

	msgs := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		field := strings.ToLower(e.Field())
		switch e.Tag() {
		case "required":
			msgs = append(msgs, fmt.Sprintf(ErrFmtFieldRequired, field))
		case "max":
			msgs = append(msgs, fmt.Sprintf(ErrFmtFieldTooLong, field, e.Param()))
		case "gte":
			msgs = append(msgs, fmt.Sprintf(ErrFmtFieldBelowMin, field, e.Param()))
		case "ceiling":
			msgs = append(msgs, fmt.Sprintf(ErrFmtFieldAboveMax, field, e.Param()))
		case "variant":
			msgs = append(msgs, domain.ErrMsgUnknownVariant)
		default:
			msgs = append(msgs, fmt.Sprintf(ErrFmtFieldInvalid, field))
		}
	}
	return strings.Join(msgs, "; ")
}
