package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/326-T/nft-service/internal/logger"
	"github.com/326-T/nft-service/internal/model"
)

// ErrorResponse is the uniform error envelope returned by every route.
type ErrorResponse struct {
	Status  int    `json:"status"`
	Summary string `json:"summary"`
	Detail  string `json:"detail"`
	Message string `json:"message"`
}

// NewErrorHandler builds the fiber error handler mapping domain errors
// to the envelope. Unknown errors are logged server-side and rendered
// as an opaque 500.
func NewErrorHandler(logger *logger.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		resp := classify(err)
		if resp.Status == fiber.StatusInternalServerError {
			logger.Error("Handler: unexpected error",
				"method", c.Method(),
				"path", c.Path(),
				"error", err.Error())
		}
		return c.Status(resp.Status).JSON(resp)
	}
}

// StatusOf reports the HTTP status an error will be rendered with.
func StatusOf(err error) int {
	return classify(err).Status
}

func classify(err error) ErrorResponse {
	switch {
	case errors.Is(err, model.ErrNotFound):
		return ErrorResponse{
			Status:  fiber.StatusNotFound,
			Summary: "not found",
			Detail:  err.Error(),
			Message: "The requested resource does not exist.",
		}
	case errors.Is(err, model.ErrOfferNotPending):
		return ErrorResponse{
			Status:  fiber.StatusConflict,
			Summary: "offer settled",
			Detail:  err.Error(),
			Message: "The offer has already been accepted or rejected.",
		}
	case errors.Is(err, model.ErrEmailTaken):
		return ErrorResponse{
			Status:  fiber.StatusConflict,
			Summary: "email taken",
			Detail:  err.Error(),
			Message: "An account with this email already exists.",
		}
	case errors.Is(err, model.ErrVersionConflict):
		return ErrorResponse{
			Status:  fiber.StatusConflict,
			Summary: "version conflict",
			Detail:  err.Error(),
			Message: "The resource was modified concurrently. Reload and retry.",
		}
	case errors.Is(err, model.ErrInvalidCredentials):
		return ErrorResponse{
			Status:  fiber.StatusUnauthorized,
			Summary: "invalid credentials",
			Detail:  err.Error(),
			Message: "Email or password is incorrect.",
		}
	case errors.Is(err, model.ErrUnauthenticated):
		return ErrorResponse{
			Status:  fiber.StatusUnauthorized,
			Summary: "unauthenticated",
			Detail:  err.Error(),
			Message: "Sign in to continue.",
		}
	case errors.Is(err, model.ErrForbidden):
		return ErrorResponse{
			Status:  fiber.StatusForbidden,
			Summary: "forbidden",
			Detail:  err.Error(),
			Message: "You are not allowed to perform this operation.",
		}
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return ErrorResponse{
			Status:  fiberErr.Code,
			Summary: "request failed",
			Detail:  fiberErr.Message,
			Message: fiberErr.Message,
		}
	}

	return ErrorResponse{
		Status:  fiber.StatusInternalServerError,
		Summary: "internal error",
		Detail:  "internal server error",
		Message: "Something went wrong. Try again later.",
	}
}
