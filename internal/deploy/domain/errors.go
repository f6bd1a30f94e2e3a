package domain

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"fleetworks/fleetenv/internal/envgen"

	"github.com/go-playground/validator/v10"
)

// ErrInvalidOptions is returned by Validate when any field fails validation.
var ErrInvalidOptions = errors.New("invalid deployment options")

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterValidation("singleline", func(fl validator.FieldLevel) bool {
		return !hasControl(fl.Field().String())
	})
	v.RegisterValidation("origins", func(fl validator.FieldLevel) bool {
		return ValidateOrigins(fl.Field().String()) == nil
	})
	return v
}

// hasControl reports whether s contains an ASCII control character.
func hasControl(s string) bool {
	return strings.ContainsFunc(s, func(r rune) bool {
		return r < 0x20 || r == 0x7f
	})
}

// ValidateOrigins checks one CORS origin entry, which may itself be a
// comma-separated list. Each part must be "*" or an http(s) URL.
func ValidateOrigins(entry string) error {
	if hasControl(entry) {
		return errors.New("must not contain control characters")
	}
	for _, part := range strings.Split(entry, ",") {
		part = envgen.NormalizeURL(part)
		if part == "" || part == envgen.AnyOrigin {
			continue
		}
		u, err := url.Parse(part)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return fmt.Errorf("%q is not * or an http or https URL", part)
		}
	}
	return nil
}

// fieldNames maps struct fields to the flag a user would fix them with.
var fieldNames = map[string]string{
	"BackendURL":      "backend-url",
	"SimulatorURL":    "simulator-url",
	"FrontendURL":     "frontend-url",
	"AppID":           "app-id",
	"AppCode":         "app-code",
	"TokenTTLSeconds": "token-ttl",
	"KeyLength":       "key-length",
	"OutputDir":       "out",
	"ExtraOrigins":    "cors-origin",
	"AppSecret":       "app-secret",
}

// Validate checks o against its struct tags. Call Normalize first.
func (o Options) Validate() error {
	err := validate.Struct(o)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", ErrInvalidOptions, err)
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, describe(fe))
	}
	return fmt.Errorf("%w: %s", ErrInvalidOptions, strings.Join(msgs, "; "))
}

func describe(fe validator.FieldError) string {
	field, _, _ := strings.Cut(fe.Field(), "[")
	name := fieldNames[field]
	if name == "" {
		name = field
	}
	switch fe.Tag() {
	case "required":
		return name + " is required"
	case "http_url":
		return fmt.Sprintf("%s must be an http or https URL, got %q", name, fe.Value())
	case "url":
		return fmt.Sprintf("%s must be a URL, got %q", name, fe.Value())
	case "singleline":
		return name + " must not contain control characters or line breaks"
	case "origins":
		return fmt.Sprintf("%s must be * or an http or https URL, got %q", name, fe.Value())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", name, fe.Param())
	case "gte", "lte":
		return fmt.Sprintf("%s must be between 16 and 256, got %v", name, fe.Value())
	default:
		return fmt.Sprintf("%s failed %s validation", name, fe.Tag())
	}
}
