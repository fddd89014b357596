package controller

import (
	"degrondvraag-be/internal/dto"
	"degrondvraag-be/internal/pkg/serverutils"
	"degrondvraag-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ICommentController interface {
	RegisterRoutes(r fiber.Router)
	GetAll(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
}

type commentController struct {
	service service.ICommentService
}

func NewCommentController(service service.ICommentService) ICommentController {
	return &commentController{service: service}
}

func (c *commentController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/comment/v1/:articleId")
	h.Get("", c.GetAll)
	h.Post("", serverutils.JwtMiddleware, c.Create)
}

func (c *commentController) GetAll(ctx *fiber.Ctx) error {
	res, err := c.service.List(ctx.Context(), ctx.Params("articleId"))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get comments", res))
}

func (c *commentController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateCommentRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Create(ctx.Context(), ctx.Params("articleId"), &req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success create comment", res))
}
