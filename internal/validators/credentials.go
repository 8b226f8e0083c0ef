package validators

import (
	"context"
	"regexp"
	"strings"

	"github.com/MKhiriev/go-fin-simulator/internal/app"
	"github.com/MKhiriev/go-fin-simulator/models"
)

const (
	FieldEmail    = "email"
	FieldPassword = "password"
	// FieldPasswordPresent only requires a non-empty password. Used by login,
	// where the length rule would leak nothing useful.
	FieldPasswordPresent = "password_present"

	MinPasswordLength = 6
)

var emailPattern = regexp.MustCompile(`(?i)^[A-Z0-9._%+-]+@[A-Z0-9.-]+\.[A-Z]{2,}$`)

// IsValidEmail reports whether s has the local@domain.tld shape.
func IsValidEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// CredentialsValidator validates register and login bodies. Login passes
// [FieldEmail] and [FieldPasswordPresent].
type CredentialsValidator struct{}

func NewCredentialsValidator() Validator {
	return &CredentialsValidator{}
}

func (v *CredentialsValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Credentials:
		return v.validateCredentials(value, fields...)
	case *models.Credentials:
		return v.validateCredentials(*value, fields...)
	case models.User:
		return v.validateCredentials(models.Credentials{Email: value.Email, Password: value.Password}, fields...)
	case *models.User:
		return v.validateCredentials(models.Credentials{Email: value.Email, Password: value.Password}, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *CredentialsValidator) validateCredentials(c models.Credentials, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword}
	}

	var errs ValidationErrors
	for _, f := range fields {
		switch f {
		case FieldEmail:
			email := strings.TrimSpace(c.Email)
			switch {
			case email == "":
				errs = append(errs, FieldError{Field: FieldEmail, Msg: app.MsgEmailRequired, Type: TypeMissing, Err: ErrEmailRequired})
			case !IsValidEmail(email):
				errs = append(errs, FieldError{Field: FieldEmail, Msg: app.MsgEmailInvalid, Type: TypeValueError, Err: ErrEmailInvalid})
			}
		case FieldPassword:
			switch {
			case c.Password == "":
				errs = append(errs, FieldError{Field: FieldPassword, Msg: app.MsgPasswordRequired, Type: TypeMissing, Err: ErrPasswordRequired})
			case len([]rune(c.Password)) < MinPasswordLength:
				errs = append(errs, FieldError{Field: FieldPassword, Msg: app.MsgPasswordTooShort, Type: TypeValueError, Err: ErrPasswordTooShort})
			}
		case FieldPasswordPresent:
			if c.Password == "" {
				errs = append(errs, FieldError{Field: FieldPassword, Msg: app.MsgPasswordRequired, Type: TypeMissing, Err: ErrPasswordRequired})
			}
		default:
			return ErrUnknownField
		}
	}

	return errs.orNil()
}
