package controller

import (
	"errors"

	"degrondvraag-be/internal/dto"
	"degrondvraag-be/internal/pkg/serverutils"
	"degrondvraag-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IChatController interface {
	RegisterRoutes(r fiber.Router)
	Relay(ctx *fiber.Ctx) error
	Transcript(ctx *fiber.Ctx) error
	Send(ctx *fiber.Ctx) error
	Reset(ctx *fiber.Ctx) error
}

type chatController struct {
	service service.IChatService
}

func NewChatController(service service.IChatService) IChatController {
	return &chatController{service: service}
}

func (c *chatController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/chat/v1")
	// The relay predates identities: clients may post without any
	// Authorization header, so a token enriches the log but is never required.
	h.Post("relay", serverutils.OptionalJwtMiddleware, c.Relay)
	h.Use(serverutils.JwtMiddleware)
	h.Get(":slug/transcript", c.Transcript)
	h.Post(":slug/send", c.Send)
	h.Delete(":slug/transcript", c.Reset)
}

// Relay is the stateless endpoint: {vraag, essay, history} in, {antwoord}
// out. Provider failures still answer 200 with the fallback text.
func (c *chatController) Relay(ctx *fiber.Ctx) error {
	var req dto.RelayChatRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Relay(ctx.Context(), localUserId(ctx), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}

func (c *chatController) Transcript(ctx *fiber.Ctx) error {
	res, err := c.service.Transcript(ctx.Context(), localUserId(ctx), ctx.Params("slug"))
	if err != nil {
		return chatError(err)
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get transcript", res))
}

func (c *chatController) Send(ctx *fiber.Ctx) error {
	var req dto.SendChatRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Send(ctx.Context(), localUserId(ctx), ctx.Params("slug"), &req)
	if err != nil {
		return chatError(err)
	}

	return ctx.JSON(serverutils.SuccessResponse("Success send message", res))
}

func (c *chatController) Reset(ctx *fiber.Ctx) error {
	res, err := c.service.Reset(ctx.Context(), localUserId(ctx), ctx.Params("slug"))
	if err != nil {
		return chatError(err)
	}

	return ctx.JSON(serverutils.SuccessResponse("Success reset transcript", res))
}

func chatError(err error) error {
	switch {
	case errors.Is(err, service.ErrNotAvailable):
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrChatBusy):
		return fiber.NewError(fiber.StatusConflict, err.Error())
	}
	return err
}
