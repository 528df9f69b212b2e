package util

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/account-service/internal/api/dto"
)

// ToEnvelope converts an error that escaped a handler into the common
// response envelope. Services shape their own outcomes; this catches body
// parse failures, bad path params (fiber.Error) and anything unexpected.
// Unexpected errors keep their text in the Error field for diagnostics only.
func ToEnvelope(err error) dto.BaseResponse {
	if err == nil {
		return dto.OK(http.StatusOK, "")
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return dto.Fail(fiberErr.Code, fiberErr.Message)
	}

	return dto.Internal(err)
}
