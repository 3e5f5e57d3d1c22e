package controller

import (
	"nextel-storefront-be/internal/dto"
	"nextel-storefront-be/internal/pkg/serverutils"
	"nextel-storefront-be/internal/service"
	"nextel-storefront-be/pkg/remote"

	"github.com/gofiber/fiber/v2"
)

type ICartController interface {
	RegisterRoutes(r fiber.Router)
	Show(ctx *fiber.Ctx) error
	AddItem(ctx *fiber.Ctx) error
	UpdateQuantity(ctx *fiber.Ctx) error
	RemoveItem(ctx *fiber.Ctx) error
	Clear(ctx *fiber.Ctx) error
}

type cartController struct {
	cartService service.ICartService
}

func NewCartController(cartService service.ICartService) ICartController {
	return &cartController{
		cartService: cartService,
	}
}

func (c *cartController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/cart/v1")
	h.Use(serverutils.SessionMiddleware)
	h.Get("", c.Show)
	h.Post("items", c.AddItem)
	h.Put("items/:productId", c.UpdateQuantity)
	h.Delete("items/:productId", c.RemoveItem)
	h.Delete("", c.Clear)
}

func (c *cartController) Show(ctx *fiber.Ctx) error {
	snapshot, err := c.cartService.Snapshot(ctx.Context(), serverutils.ShopperId(ctx))
	if err != nil {
		return asHTTPError(err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Success show cart", dto.NewCartResponse(snapshot)))
}

func (c *cartController) AddItem(ctx *fiber.Ctx) error {
	var req dto.AddItemRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	// Clients send the product however they got it from the catalog; the
	// normalizer absorbs the field-name variants.
	product := remote.NormalizeProduct(req.Product)

	snapshot, err := c.cartService.AddItem(ctx.Context(), serverutils.ShopperId(ctx), product, req.Quantity)
	if err != nil {
		return asHTTPError(err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Success add item", dto.NewCartResponse(snapshot)))
}

func (c *cartController) UpdateQuantity(ctx *fiber.Ctx) error {
	var req dto.UpdateQuantityRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.ProductId = ctx.Params("productId")
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	snapshot, err := c.cartService.UpdateQuantity(ctx.Context(), serverutils.ShopperId(ctx), req.ProductId, req.Quantity)
	if err != nil {
		return asHTTPError(err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Success update quantity", dto.NewCartResponse(snapshot)))
}

func (c *cartController) RemoveItem(ctx *fiber.Ctx) error {
	snapshot, err := c.cartService.RemoveItem(ctx.Context(), serverutils.ShopperId(ctx), ctx.Params("productId"))
	if err != nil {
		return asHTTPError(err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Success remove item", dto.NewCartResponse(snapshot)))
}

func (c *cartController) Clear(ctx *fiber.Ctx) error {
	if err := c.cartService.Clear(ctx.Context(), serverutils.ShopperId(ctx)); err != nil {
		return asHTTPError(err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Success clear cart", nil))
}
