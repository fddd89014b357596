package controller

import (
	"degrondvraag-be/internal/dto"
	"degrondvraag-be/internal/pkg/serverutils"
	"degrondvraag-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

// IAdminController covers the hidden console: essay CRUD over every status
// and reading stored chat conversations.
type IAdminController interface {
	RegisterRoutes(r fiber.Router)
	GetAllEssays(ctx *fiber.Ctx) error
	UpsertEssay(ctx *fiber.Ctx) error
	DeleteEssay(ctx *fiber.Ctx) error
	GetChatLogs(ctx *fiber.Ctx) error
}

type adminController struct {
	essayService service.IEssayService
	chatService  service.IChatService
}

func NewAdminController(essayService service.IEssayService, chatService service.IChatService) IAdminController {
	return &adminController{
		essayService: essayService,
		chatService:  chatService,
	}
}

func (c *adminController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/admin/v1")
	h.Use(serverutils.AdminMiddleware)
	h.Get("essays", c.GetAllEssays)
	h.Put("essays", c.UpsertEssay)
	h.Delete("essays/:slug", c.DeleteEssay)
	h.Get("chatlogs", c.GetChatLogs)
}

func (c *adminController) GetAllEssays(ctx *fiber.Ctx) error {
	res, err := c.essayService.ListAdmin(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get essays", res))
}

func (c *adminController) UpsertEssay(ctx *fiber.Ctx) error {
	var req dto.UpsertEssayRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.essayService.Upsert(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success save essay", res))
}

func (c *adminController) DeleteEssay(ctx *fiber.Ctx) error {
	if err := c.essayService.Delete(ctx.Context(), ctx.Params("slug")); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete essay", nil))
}

func (c *adminController) GetChatLogs(ctx *fiber.Ctx) error {
	limit := ctx.QueryInt("limit", 50)
	offset := ctx.QueryInt("offset", 0)

	res, err := c.chatService.ListLogs(ctx.Context(), limit, offset)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get chat logs", res))
}
