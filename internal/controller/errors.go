package controller

import (
	"errors"

	"nextel-storefront-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

// asHTTPError maps service errors onto HTTP statuses. Anything unmapped falls
// through to the global error handler as a 500.
func asHTTPError(err error) error {
	switch {
	case errors.Is(err, service.ErrConversationNotFound),
		errors.Is(err, service.ErrProductNotFound):
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrInvalidSelection),
		errors.Is(err, service.ErrEmptyCart),
		errors.Is(err, service.ErrInvalidProduct):
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrReplyPending),
		errors.Is(err, service.ErrInvalidStep),
		errors.Is(err, service.ErrEmailTaken):
		return fiber.NewError(fiber.StatusConflict, err.Error())
	case errors.Is(err, service.ErrInvalidCredentials):
		return fiber.NewError(fiber.StatusUnauthorized, err.Error())
	case errors.Is(err, service.ErrRemoteUnavailable):
		return fiber.NewError(fiber.StatusBadGateway, err.Error())
	default:
		return err
	}
}
