package validators

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"

	"booking-backend/config"
)

type RoomValidator struct {
	validate *validator.Validate
	policy   config.ValidationPolicy
}

func NewRoomValidator(policy config.ValidationPolicy) *RoomValidator {
	return &RoomValidator{
		validate: validator.New(),
		policy:   policy,
	}
}

type roomInput struct {
	Description string `validate:"required"`
	Price       int    `validate:"min=0"`
}

// Validate checks the field constraints for a new room and returns every
// violation. The minimum description length and the forbidden-word list come
// from the configured policy.
func (v *RoomValidator) Validate(description string, price int) error {
	var errs ValidationErrors

	in := roomInput{Description: description, Price: price}
	if err := v.validate.Struct(in); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			return err
		}
		for _, fe := range fieldErrs {
			switch fe.StructField() {
			case "Description":
				errs = append(errs, ValidationError{Field: "description", Message: "description is required"})
			case "Price":
				errs = append(errs, ValidationError{Field: "price", Message: "price must not be negative"})
			}
		}
	}

	if n := utf8.RuneCountInString(description); n > 0 && n < v.policy.MinDescriptionLength {
		errs = append(errs, ValidationError{
			Field:   "description",
			Message: fmt.Sprintf("description must be at least %d characters", v.policy.MinDescriptionLength),
		})
	}

	lower := strings.ToLower(description)
	for _, word := range v.policy.ForbiddenWords {
		if word != "" && strings.Contains(lower, word) {
			errs = append(errs, ValidationError{Field: "description", Message: "description contains forbidden words"})
			break
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
