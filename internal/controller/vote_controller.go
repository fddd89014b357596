package controller

import (
	"degrondvraag-be/internal/dto"
	"degrondvraag-be/internal/pkg/serverutils"
	"degrondvraag-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IVoteController interface {
	RegisterRoutes(r fiber.Router)
	Tally(ctx *fiber.Ctx) error
	Cast(ctx *fiber.Ctx) error
}

type voteController struct {
	service service.IVoteService
}

func NewVoteController(service service.IVoteService) IVoteController {
	return &voteController{service: service}
}

func (c *voteController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/vote/v1/:slug")
	h.Get("", serverutils.OptionalJwtMiddleware, c.Tally)
	h.Post("", serverutils.JwtMiddleware, c.Cast)
}

// localUserId reads the identity the middleware stored, if any.
func localUserId(ctx *fiber.Ctx) uuid.UUID {
	userIdStr, _ := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)
	return userId
}

func (c *voteController) Tally(ctx *fiber.Ctx) error {
	res, err := c.service.Tally(ctx.Context(), ctx.Params("slug"), localUserId(ctx))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get votes", res))
}

func (c *voteController) Cast(ctx *fiber.Ctx) error {
	var req dto.CastVoteRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.CastVote(ctx.Context(), ctx.Params("slug"), localUserId(ctx), req.Type)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success cast vote", res))
}
