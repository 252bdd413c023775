package validate

import (
	"regexp"
	"unicode"

	"github.com/go-playground/validator/v10"
)

var (
	usernameRe = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)
	markupRe   = regexp.MustCompile(`<[^>]*>`)
)

// New builds the validator with the custom rules used across DTOs:
// "username" (letters, digits, underscore, hyphen), "strongpwd"
// (>=8 chars with upper, lower, digit and special) and "taskinfo"
// (no markup tags).
func New() *validator.Validate {
	v := validator.New()

	_ = v.RegisterValidation("username", func(fl validator.FieldLevel) bool {
		return usernameRe.MatchString(fl.Field().String())
	})

	_ = v.RegisterValidation("strongpwd", func(fl validator.FieldLevel) bool {
		pwd := fl.Field().String()
		if len(pwd) < 8 {
			return false
		}
		var hasUpper, hasLower, hasDigit, hasSpecial bool
		for _, r := range pwd {
			switch {
			case unicode.IsUpper(r):
				hasUpper = true
			case unicode.IsLower(r):
				hasLower = true
			case unicode.IsDigit(r):
				hasDigit = true
			case unicode.IsPunct(r) || unicode.IsSymbol(r):
				hasSpecial = true
			}
		}
		return hasUpper && hasLower && hasDigit && hasSpecial
	})

	_ = v.RegisterValidation("taskinfo", func(fl validator.FieldLevel) bool {
		return !markupRe.MatchString(fl.Field().String())
	})

	return v
}
