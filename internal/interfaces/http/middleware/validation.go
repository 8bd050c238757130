package middleware

import (
	"errors"
	"net/http"
	"net/url"
	"reflect"
	"regexp"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/propertyhub/backend/internal/interfaces/http/dto"
	"github.com/shopspring/decimal"
)

var phonePattern = regexp.MustCompile(`^[\d\s\+\-\(\)]+$`)

// SetupValidator registers the custom tags used by request DTOs with gin's validator:
//   - phone: digits, spaces, "+", "-" and parentheses
//   - httpurl: absolute http or https URL
//   - email_or_empty: an email address or ""
//   - notfuture: a time that is not after now
//
// phone, httpurl and email_or_empty accept "" so merge-patch requests can
// send an empty string for an ignored or cleared field. Use required to
// reject empty values.
//
// decimal.Decimal fields are validated by their float value, so gt=0 works on them.
func SetupValidator() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errors.New("gin validator engine is not go-playground/validator")
	}

	// Use JSON tag names for field names in errors
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			name = strings.SplitN(fld.Tag.Get("uri"), ",", 2)[0]
		}
		return name
	})

	v.RegisterCustomTypeFunc(func(field reflect.Value) any {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := d.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})

	emailOrEmpty := func(fl validator.FieldLevel) bool {
		email := fl.Field().String()
		return email == "" || v.Var(email, "email") == nil
	}

	for tag, fn := range map[string]validator.Func{
		"phone":          validatePhone,
		"httpurl":        validateHTTPURL,
		"email_or_empty": emailOrEmpty,
		"notfuture":      validateNotFuture,
	} {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return err
		}
	}
	return nil
}

func validatePhone(fl validator.FieldLevel) bool {
	phone := fl.Field().String()
	return phone == "" || phonePattern.MatchString(phone)
}

func validateHTTPURL(fl validator.FieldLevel) bool {
	raw := fl.Field().String()
	if raw == "" {
		return true
	}
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return false
	}
	return u.Scheme == "http" || u.Scheme == "https"
}

func validateNotFuture(fl validator.FieldLevel) bool {
	t, ok := fl.Field().Interface().(time.Time)
	if !ok {
		return false
	}
	return !t.After(time.Now())
}

// FormatValidationErrors formats validation errors into a standard response
func FormatValidationErrors(err error, requestID string) dto.Response {
	var details []dto.ValidationDetail

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		for _, e := range validationErrors {
			details = append(details, dto.ValidationDetail{
				Field:   e.Field(),
				Message: getValidationMessage(e),
				Tag:     e.Tag(),
			})
		}
		return dto.NewValidationErrorResponse("Request validation failed", requestID, details)
	}

	// Malformed JSON or a value of the wrong type
	return dto.NewErrorResponseWithRequestID(dto.ErrCodeInvalidJSON, "Request body could not be parsed", requestID)
}

// HandleValidationError returns a validation error response
func HandleValidationError(c *gin.Context, err error) {
	var maxBytesErr *http.MaxBytesError
	if errors.As(err, &maxBytesErr) {
		c.JSON(http.StatusRequestEntityTooLarge, dto.NewErrorResponseWithRequestID(
			dto.ErrCodeRequestTooLarge, "Request body exceeds maximum allowed size", GetRequestID(c)))
		return
	}
	c.JSON(http.StatusBadRequest, FormatValidationErrors(err, GetRequestID(c)))
}

// getValidationMessage returns a human-readable validation message
func getValidationMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "This field is required"
	case "email", "email_or_empty":
		return "Invalid email format"
	case "phone":
		return "Phone may only contain digits, spaces, +, -, ( and )"
	case "httpurl":
		return "Must be an http or https URL"
	case "notfuture":
		return "Date cannot be in the future"
	case "min":
		if e.Kind() == reflect.String {
			return "Must be at least " + e.Param() + " characters"
		}
		return "Must be at least " + e.Param()
	case "max":
		if e.Kind() == reflect.String {
			return "Must be at most " + e.Param() + " characters"
		}
		return "Must be at most " + e.Param()
	case "gt":
		return "Must be greater than " + e.Param()
	case "gte":
		return "Must be greater than or equal to " + e.Param()
	default:
		return "Invalid value"
	}
}
