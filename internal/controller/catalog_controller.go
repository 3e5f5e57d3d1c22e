package controller

import (
	"nextel-storefront-be/internal/pkg/serverutils"
	"nextel-storefront-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ICatalogController interface {
	RegisterRoutes(r fiber.Router)
	AppData(ctx *fiber.Ctx) error
	Products(ctx *fiber.Ctx) error
	Product(ctx *fiber.Ctx) error
	Categories(ctx *fiber.Ctx) error
	Search(ctx *fiber.Ctx) error
	Offers(ctx *fiber.Ctx) error
	Orders(ctx *fiber.Ctx) error
}

type catalogController struct {
	catalogService service.ICatalogService
}

func NewCatalogController(catalogService service.ICatalogService) ICatalogController {
	return &catalogController{
		catalogService: catalogService,
	}
}

func (c *catalogController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/catalog/v1")
	h.Get("app-data", c.AppData)
	h.Get("products", c.Products)
	h.Get("products/:id", c.Product)
	h.Get("categories", c.Categories)
	h.Get("search", c.Search)

	// Order history and offers belong to a signed-in user.
	me := r.Group("/me/v1")
	me.Use(serverutils.JwtMiddleware)
	me.Get("offers", c.Offers)
	me.Get("orders", c.Orders)
}

func (c *catalogController) AppData(ctx *fiber.Ctx) error {
	res, err := c.catalogService.AppData(ctx.Context())
	if err != nil {
		return asHTTPError(err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Success fetch app data", res))
}

func (c *catalogController) Products(ctx *fiber.Ctx) error {
	res, err := c.catalogService.Products(ctx.Context())
	if err != nil {
		return asHTTPError(err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Success fetch products", res))
}

func (c *catalogController) Product(ctx *fiber.Ctx) error {
	res, err := c.catalogService.Product(ctx.Context(), ctx.Params("id"))
	if err != nil {
		return asHTTPError(err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Success fetch product", res))
}

func (c *catalogController) Categories(ctx *fiber.Ctx) error {
	res, err := c.catalogService.Categories(ctx.Context())
	if err != nil {
		return asHTTPError(err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Success fetch categories", res))
}

func (c *catalogController) Search(ctx *fiber.Ctx) error {
	res, err := c.catalogService.Search(ctx.Context(), ctx.Query("term"))
	if err != nil {
		return asHTTPError(err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Success search products", res))
}

func (c *catalogController) Offers(ctx *fiber.Ctx) error {
	userId, _ := ctx.Locals("user_id").(string)
	res, err := c.catalogService.Offers(ctx.Context(), userId)
	if err != nil {
		return asHTTPError(err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Success fetch offers", res))
}

func (c *catalogController) Orders(ctx *fiber.Ctx) error {
	userId, _ := ctx.Locals("user_id").(string)
	res, err := c.catalogService.Orders(ctx.Context(), userId)
	if err != nil {
		return asHTTPError(err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Success fetch orders", res))
}
