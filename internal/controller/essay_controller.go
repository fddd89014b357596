package controller

import (
	"errors"

	"degrondvraag-be/internal/pkg/serverutils"
	"degrondvraag-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IEssayController interface {
	RegisterRoutes(r fiber.Router)
	GetAll(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
}

type essayController struct {
	service service.IEssayService
}

func NewEssayController(service service.IEssayService) IEssayController {
	return &essayController{service: service}
}

func (c *essayController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/essay/v1")
	h.Get("", c.GetAll)
	h.Get(":slug", c.Show)
}

func (c *essayController) GetAll(ctx *fiber.Ctx) error {
	res, err := c.service.ListPublic(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get essays", res))
}

func (c *essayController) Show(ctx *fiber.Ctx) error {
	res, err := c.service.Show(ctx.Context(), ctx.Params("slug"))
	if err != nil {
		if errors.Is(err, service.ErrNotAvailable) {
			return fiber.NewError(fiber.StatusNotFound, err.Error())
		}
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get essay", res))
}
