package controller

import (
	"nextel-storefront-be/internal/dto"
	"nextel-storefront-be/internal/pkg/serverutils"
	"nextel-storefront-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IChatController interface {
	RegisterRoutes(r fiber.Router)
	Open(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	SelectOption(ctx *fiber.Ctx) error
	Restart(ctx *fiber.Ctx) error
}

type chatController struct {
	conversationService service.IConversationService
}

func NewChatController(conversationService service.IConversationService) IChatController {
	return &chatController{
		conversationService: conversationService,
	}
}

func (c *chatController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/chat/v1")
	h.Post("conversations", c.Open)
	h.Get("conversations/:id", c.Show)
	h.Post("conversations/:id/select", c.SelectOption)
	h.Post("conversations/:id/restart", c.Restart)
}

func (c *chatController) Open(ctx *fiber.Ctx) error {
	res, err := c.conversationService.Open(ctx.Context())
	if err != nil {
		return asHTTPError(err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Success open conversation", res))
}

func (c *chatController) Show(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid conversation id")
	}

	res, err := c.conversationService.Get(ctx.Context(), id)
	if err != nil {
		return asHTTPError(err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Success show conversation", res))
}

func (c *chatController) SelectOption(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid conversation id")
	}

	var req dto.SelectOptionRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.conversationService.SelectOption(ctx.Context(), id, req.OptionId)
	if err != nil {
		return asHTTPError(err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Success select option", res))
}

func (c *chatController) Restart(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid conversation id")
	}

	res, err := c.conversationService.Restart(ctx.Context(), id)
	if err != nil {
		return asHTTPError(err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Success restart conversation", res))
}
