package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/phrazzld/seimei-api/internal/api/shared"
	"github.com/phrazzld/seimei-api/internal/domain"
	"github.com/phrazzld/seimei-api/internal/domain/kantei"
	"github.com/phrazzld/seimei-api/internal/service"
	"github.com/phrazzld/seimei-api/internal/store"
)

// Machine-readable error codes carried in the "error" field of error bodies.
const (
	CodeValidation         = "validation_error"
	CodeInvalidRequest     = "invalid_request"
	CodeUnknownCharacter   = "unknown_character"
	CodeInvalidStrokeCount = "invalid_stroke_count"
	CodeInvalidOptions     = "invalid_options"
	CodeInternal           = "internal_error"
)

// ErrInvalidRequest marks a request body that could not be decoded.
var ErrInvalidRequest = errors.New("invalid request body")

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	switch ErrorCode(err) {
	case CodeValidation, CodeInvalidRequest, CodeInvalidStrokeCount, CodeInvalidOptions:
		return http.StatusBadRequest
	case CodeUnknownCharacter:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// ErrorCode returns the public error code for err.
func ErrorCode(err error) string {
	var validationErrs validator.ValidationErrors
	switch {
	case err == nil:
		return CodeInternal
	case errors.Is(err, ErrInvalidRequest):
		return CodeInvalidRequest
	case errors.Is(err, domain.ErrInvalidStrokeCount):
		return CodeInvalidStrokeCount
	case errors.Is(err, service.ErrInvalidOptions),
		errors.Is(err, kantei.ErrInvalidWeights),
		errors.Is(err, kantei.ErrInvalidNormalization):
		return CodeInvalidOptions
	case errors.Is(err, service.ErrUnknownCharacter),
		errors.Is(err, store.ErrCharacterNotFound):
		return CodeUnknownCharacter
	case errors.As(err, &validationErrs),
		errors.Is(err, domain.ErrValidation):
		return CodeValidation
	default:
		return CodeInternal
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking sensitive internal details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	var (
		unknown        *service.UnknownCharacterError
		strokeErr      *domain.InvalidStrokeCountError
		validationErr  *domain.ValidationError
		validationErrs validator.ValidationErrors
	)

	switch {
	case errors.Is(err, ErrInvalidRequest):
		return "Invalid request format"

	case errors.As(err, &strokeErr):
		if strokeErr.Glyph != "" {
			return fmt.Sprintf("Stroke count for %s must be zero or positive", strokeErr.Glyph)
		}
		return "Stroke counts must be zero or positive"

	case errors.Is(err, kantei.ErrInvalidWeights):
		return "Invalid options: weights must be non-negative with a positive sum"

	case errors.Is(err, kantei.ErrInvalidNormalization):
		return "Invalid options: minScore and maxScore must satisfy 0 <= minScore <= maxScore <= 100"

	case errors.Is(err, service.ErrInvalidOptions):
		return "Invalid options"

	case errors.As(err, &unknown):
		return fmt.Sprintf("No stroke count known for: %s", strings.Join(unknown.Glyphs, ", "))

	case errors.Is(err, service.ErrUnknownCharacter),
		errors.Is(err, store.ErrCharacterNotFound):
		return "Name contains an unknown character"

	case errors.As(err, &validationErrs):
		return SanitizeValidationError(validationErrs)

	case errors.As(err, &validationErr):
		if validationErr.Field == "" {
			return "Invalid input: " + validationErr.Message
		}
		return fmt.Sprintf("Invalid %s: %s", validationErr.Field, validationErr.Message)

	case errors.Is(err, domain.ErrValidation):
		return "Validation error"

	default:
		return "An unexpected error occurred"
	}
}

// SanitizeValidationError turns validator output into a user-friendly
// message naming the first failing field by its JSON name.
func SanitizeValidationError(err error) string {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) || len(validationErrs) == 0 {
		return "Validation error"
	}

	fe := validationErrs[0]
	return fmt.Sprintf("Invalid %s: %s", jsonFieldName(fe), getValidationTagMessage(fe.Tag(), fe.Param()))
}

// jsonFieldName lowercases the struct field the way the JSON tags do.
func jsonFieldName(fe validator.FieldError) string {
	name := fe.Field()
	if name == "" {
		return "field"
	}
	return strings.ToLower(name[:1]) + name[1:]
}

// getValidationTagMessage maps validation tags to user-friendly error messages
func getValidationTagMessage(tag, param string) string {
	switch tag {
	case "required":
		return "required field"
	case "max":
		return fmt.Sprintf("must be at most %s characters", param)
	case "min":
		return fmt.Sprintf("must be at least %s characters", param)
	default:
		return "validation failed"
	}
}

// HandleAPIError writes the error response for err. The status code and
// public code come from the error type; defaultMsg replaces the generic
// message for internal errors.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error, defaultMsg string) {
	status := MapErrorToStatusCode(err)
	message := GetSafeErrorMessage(err)
	if status == http.StatusInternalServerError && defaultMsg != "" {
		message = defaultMsg
	}

	shared.RespondWithErrorAndLog(w, r, status, ErrorCode(err), message, err)
}
