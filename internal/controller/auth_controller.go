package controller

import (
	"errors"

	"degrondvraag-be/internal/dto"
	"degrondvraag-be/internal/pkg/serverutils"
	"degrondvraag-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IAuthController interface {
	RegisterRoutes(r fiber.Router)
	Anonymous(ctx *fiber.Ctx) error
	Login(ctx *fiber.Ctx) error
	Logout(ctx *fiber.Ctx) error
}

type authController struct {
	service service.IAuthService
}

func NewAuthController(service service.IAuthService) IAuthController {
	return &authController{service: service}
}

func (c *authController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/auth/v1")
	h.Post("anonymous", c.Anonymous)
	h.Post("login", c.Login)
	h.Post("logout", c.Logout)
}

// Anonymous mints a visitor identity. The site signs everyone in silently on
// first load so votes and chat transcripts have something to hang on.
func (c *authController) Anonymous(ctx *fiber.Ctx) error {
	res, err := c.service.AnonymousSignIn(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success sign in", res))
}

func (c *authController) Login(ctx *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.AdminLogin(ctx.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			return fiber.NewError(fiber.StatusUnauthorized, err.Error())
		}
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success login", res))
}

// Logout acknowledges a sign-out. Tokens are stateless, so there is nothing
// to revoke server-side; the client discards its token.
func (c *authController) Logout(ctx *fiber.Ctx) error {
	return ctx.JSON(serverutils.SuccessResponse[any]("Success sign out", nil))
}
