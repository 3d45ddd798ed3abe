package handler

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/mymindapp/user-service/internal/api/response"
	"github.com/mymindapp/user-service/internal/domain"
	"github.com/rs/zerolog/log"
)

var validate = validator.New()

// validateStruct runs validator tags and writes a 400 with a per-field error
// map on failure. Returns true when the input is valid.
func validateStruct(w http.ResponseWriter, input any) bool {
	err := validate.Struct(input)
	if err == nil {
		return true
	}

	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		fields := make(map[string]string)
		for _, e := range validationErrors {
			field := e.Field()
			switch e.Tag() {
			case "required":
				fields[field] = "field is required"
			case "email":
				fields[field] = "invalid email format"
			case "min":
				fields[field] = "must be at least " + e.Param() + " characters"
			case "max":
				fields[field] = "must be at most " + e.Param() + " characters"
			default:
				fields[field] = "validation failed on " + e.Tag()
			}
		}
		response.BadRequest(w, fields)
		return false
	}

	response.BadRequest(w, err.Error())
	return false
}

// serviceError maps domain errors onto the response envelope. Unknown
// failures become an opaque 500; the detail goes to the log only.
func serviceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		response.NotFound(w, "not found")
	case errors.Is(err, domain.ErrEmailTaken):
		response.Conflict(w, domain.ErrEmailTaken.Error())
	case errors.Is(err, domain.ErrValidation):
		response.BadRequest(w, err.Error())
	case errors.Is(err, domain.ErrInvalidCredentials), errors.Is(err, domain.ErrInvalidToken):
		response.Unauthorized(w, err.Error())
	default:
		log.Error().Err(err).Msg("request failed")
		response.InternalError(w, "internal server error")
	}
}
