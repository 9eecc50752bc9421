package v1handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"matchup/pkg/serrors"
	"net/http"
	"reflect"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

// passwordSpecials are the characters that satisfy the special character rule.
const passwordSpecials = "!@#$%^&*"

type RegisterRequest struct {
	Login                string `json:"login" validate:"required,min=3,max=50"`
	Email                string `json:"email" validate:"required,email,max=100"`
	Password             string `json:"password" validate:"required,password"`
	PasswordConfirmation string `json:"password_confirmation" validate:"required,eqfield=Password"`
	PhoneNumber          string `json:"phone_number" validate:"omitempty,max=20"`
	FirstName            string `json:"first_name" validate:"required,max=50"`
	LastName             string `json:"last_name" validate:"required,max=50"`
}

type RegisterResponse struct {
	UserID int64  `json:"user_id"`
	Email  string `json:"email"`
}

type LoginRequest struct {
	Login    string `json:"login" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	// ExpiresIn is the token lifetime in seconds.
	ExpiresIn int64 `json:"expires_in"`
}

type ChangePasswordRequest struct {
	CurrentPassword      string `json:"current_password" validate:"required"`
	Password             string `json:"password" validate:"required,password"`
	PasswordConfirmation string `json:"password_confirmation" validate:"required,eqfield=Password"`
}

type EditUserRequest struct {
	Login       *string `json:"login" validate:"omitempty,min=3,max=50"`
	Email       *string `json:"email" validate:"omitempty,email,max=100"`
	PhoneNumber *string `json:"phone_number" validate:"omitempty,max=20"`
	FirstName   *string `json:"first_name" validate:"omitempty,min=1,max=50"`
	LastName    *string `json:"last_name" validate:"omitempty,min=1,max=50"`
}

type HobbyRequest struct {
	Name       string `json:"name" validate:"required,max=100"`
	CategoryID int64  `json:"category_id" validate:"required,gt=0"`
}

type CategoryRequest struct {
	Name string `json:"name" validate:"required,max=100"`
}

type SendMessageRequest struct {
	ReceiverID int64  `json:"receiver_id" validate:"required,gt=0"`
	Text       string `json:"text" validate:"required,max=4000"`
	PhotoURL   string `json:"photo_url" validate:"omitempty,url,max=2048"`
}

type UpdateMessageRequest struct {
	Text *string `json:"text" validate:"omitempty,max=4000"`
}

type DetailResponse struct {
	Detail string `json:"detail"`
}

type AcceptResponse struct {
	Detail  string `json:"detail"`
	Matched bool   `json:"matched"`
}

// passwordProblem describes the first password rule p breaks, or returns an
// empty string when p is acceptable.
func passwordProblem(p string) string {
	var digit, upper, lower, special bool
	for _, r := range p {
		switch {
		case unicode.IsDigit(r):
			digit = true
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case strings.ContainsRune(passwordSpecials, r):
			special = true
		}
	}

	switch {
	case len([]rune(p)) < 8:
		return "Password must be at least 8 characters long"
	case !digit:
		return "Password must contain at least one digit"
	case !upper:
		return "Password must contain at least one uppercase letter"
	case !lower:
		return "Password must contain at least one lowercase letter"
	case !special:
		return "Password must contain at least one special character"
	default:
		return ""
	}
}

// NewValidator returns a validator reporting JSON field names and knowing
// the "password" rule.
func NewValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}

		return name
	})

	if err := v.RegisterValidation("password", func(fl validator.FieldLevel) bool {
		return passwordProblem(fl.Field().String()) == ""
	}); err != nil {
		panic(err)
	}

	return v
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "email":
		return fe.Field() + " must be a valid email address"
	case "url":
		return fe.Field() + " must be a valid URL"
	case "password":
		s, _ := fe.Value().(string)

		return passwordProblem(s)
	case "eqfield":
		return "Password confirmation must match password"
	case "min":
		return fmt.Sprintf("%s must be at least %s characters long", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters long", fe.Field(), fe.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", fe.Field(), fe.Param())
	default:
		return fe.Field() + " is invalid"
	}
}

// decode reads a JSON body into dst and validates it when dst is a struct.
func (h Handler) decode(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return serrors.Wrap(serrors.ErrBadRequest, err, "Invalid request body")
	}

	if reflect.Indirect(reflect.ValueOf(dst)).Kind() != reflect.Struct {
		return nil
	}

	if err := h.validate.Struct(dst); err != nil {
		var vErrs validator.ValidationErrors
		if errors.As(err, &vErrs) && len(vErrs) > 0 {
			return serrors.Wrap(serrors.ErrBadRequest, err, "%s", describe(vErrs[0]))
		}

		return serrors.Wrap(serrors.ErrBadRequest, err, "Invalid request body")
	}

	return nil
}
