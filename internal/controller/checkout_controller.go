package controller

import (
	"nextel-storefront-be/internal/dto"
	"nextel-storefront-be/internal/pkg/serverutils"
	"nextel-storefront-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ICheckoutController interface {
	RegisterRoutes(r fiber.Router)
	Begin(ctx *fiber.Ctx) error
	SetShipping(ctx *fiber.Ctx) error
	SetPayment(ctx *fiber.Ctx) error
	Back(ctx *fiber.Ctx) error
	Review(ctx *fiber.Ctx) error
	Submit(ctx *fiber.Ctx) error
}

type checkoutController struct {
	checkoutService service.ICheckoutService
}

func NewCheckoutController(checkoutService service.ICheckoutService) ICheckoutController {
	return &checkoutController{
		checkoutService: checkoutService,
	}
}

func (c *checkoutController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/checkout/v1")
	h.Use(serverutils.SessionMiddleware)
	h.Post("begin", c.Begin)
	h.Post("shipping", c.SetShipping)
	h.Post("payment", c.SetPayment)
	h.Post("back", c.Back)
	h.Get("review", c.Review)
	h.Post("submit", c.Submit)
}

func (c *checkoutController) Begin(ctx *fiber.Ctx) error {
	res, err := c.checkoutService.Begin(ctx.Context(), serverutils.ShopperId(ctx))
	if err != nil {
		return asHTTPError(err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Success begin checkout", res))
}

func (c *checkoutController) SetShipping(ctx *fiber.Ctx) error {
	var req dto.ShippingRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.checkoutService.SetShipping(ctx.Context(), serverutils.ShopperId(ctx), &req)
	if err != nil {
		return asHTTPError(err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Success save shipping details", res))
}

func (c *checkoutController) SetPayment(ctx *fiber.Ctx) error {
	var req dto.PaymentRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.checkoutService.SetPayment(ctx.Context(), serverutils.ShopperId(ctx), &req)
	if err != nil {
		return asHTTPError(err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Success save payment details", res))
}

func (c *checkoutController) Back(ctx *fiber.Ctx) error {
	res, err := c.checkoutService.Back(ctx.Context(), serverutils.ShopperId(ctx))
	if err != nil {
		return asHTTPError(err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Success move back a step", res))
}

func (c *checkoutController) Review(ctx *fiber.Ctx) error {
	res, err := c.checkoutService.Review(ctx.Context(), serverutils.ShopperId(ctx))
	if err != nil {
		return asHTTPError(err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Success show order review", res))
}

func (c *checkoutController) Submit(ctx *fiber.Ctx) error {
	res, err := c.checkoutService.Submit(ctx.Context(), serverutils.ShopperId(ctx))
	if err != nil {
		return asHTTPError(err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Success place order", res))
}
