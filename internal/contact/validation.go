package contact

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"

	"github.com/joshu-sajeev/contactrelay/internal/dto"
)

const minPhoneDigits = 10

// nonSpace matches anything but '@' and the whitespace ECMAScript's \s covers,
// which includes NBSP, vertical tab and the Unicode space separators.
const nonSpace = `[^\s\v\x{00A0}\x{1680}\x{2000}-\x{200A}\x{2028}\x{2029}\x{202F}\x{205F}\x{3000}\x{FEFF}@]`

var (
	emailPattern = regexp.MustCompile(`^` + nonSpace + `+@` + nonSpace + `+\.` + nonSpace + `+$`)
	nonDigit     = regexp.MustCompile(`\D`)

	validate = newValidator()
)

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})

	must(v.RegisterValidation("notblank", validators.NotBlank))
	must(v.RegisterValidation("contactemail", func(fl validator.FieldLevel) bool {
		return IsEmail(fl.Field().String())
	}))
	must(v.RegisterValidation("phonedigits", func(fl validator.FieldLevel) bool {
		return IsPhone(fl.Field().String())
	}))
	return v
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}

// IsEmail is a pattern-only check; no DNS lookup is made.
func IsEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// IsPhone reports whether s holds at least ten digits once every
// non-digit character is stripped.
func IsPhone(s string) bool {
	return len(nonDigit.ReplaceAllString(s, "")) >= minPhoneDigits
}

// Validate checks a submission and returns an error describing the first
// failing field. The description is meant for server logs only.
func Validate(sub *dto.ContactSubmission) error {
	if sub == nil {
		return errors.New("submission is empty")
	}

	err := validate.Struct(sub)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		return describe(fieldErrs[0])
	}
	return err
}

func IsValid(sub *dto.ContactSubmission) bool {
	return Validate(sub) == nil
}

func describe(fe validator.FieldError) error {
	switch fe.Tag() {
	case "required", "notblank":
		return fmt.Errorf("missing or empty required field: %s", fe.Field())
	case "contactemail":
		return errors.New("invalid email format")
	case "phonedigits":
		return errors.New("invalid phone format")
	default:
		return fmt.Errorf("field %s failed %s", fe.Field(), fe.Tag())
	}
}
