package controller

import (
	"nextel-storefront-be/internal/dto"
	"nextel-storefront-be/internal/pkg/serverutils"
	"nextel-storefront-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ISupportController interface {
	RegisterRoutes(r fiber.Router)
	SubmitTicket(ctx *fiber.Ctx) error
	Tickets(ctx *fiber.Ctx) error
}

type supportController struct {
	supportService service.ISupportService
}

func NewSupportController(supportService service.ISupportService) ISupportController {
	return &supportController{
		supportService: supportService,
	}
}

func (c *supportController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/support/v1")
	h.Post("tickets", c.SubmitTicket)
	h.Get("tickets", c.Tickets)
}

func (c *supportController) SubmitTicket(ctx *fiber.Ctx) error {
	var req dto.SubmitTicketRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.supportService.SubmitTicket(ctx.Context(), &req)
	if err != nil {
		return asHTTPError(err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Success submit ticket", res))
}

func (c *supportController) Tickets(ctx *fiber.Ctx) error {
	email := ctx.Query("email")
	if email == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Missing email")
	}

	res, err := c.supportService.TicketsByEmail(ctx.Context(), email)
	if err != nil {
		return asHTTPError(err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Success fetch tickets", res))
}
