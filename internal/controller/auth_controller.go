package controller

import (
	"github.com/tagnote-app/tagnote-be/internal/dto"
	"github.com/tagnote-app/tagnote-be/internal/pkg/serverutils"
	"github.com/tagnote-app/tagnote-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IAuthController interface {
	RegisterRoutes(r fiber.Router)
	SignInWithLink(ctx *fiber.Ctx) error
	ExchangeCode(ctx *fiber.Ctx) error
	SetSession(ctx *fiber.Ctx) error
	GetUser(ctx *fiber.Ctx) error
	Logout(ctx *fiber.Ctx) error
}

type authController struct {
	service service.IAuthService
}

func NewAuthController(service service.IAuthService) IAuthController {
	return &authController{service: service}
}

func (c *authController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/auth")
	h.Post("/link", c.SignInWithLink)
	h.Post("/exchange", c.ExchangeCode)
	h.Post("/session", c.SetSession)
	h.Post("/logout", c.Logout)
	h.Get("/user", serverutils.JwtMiddleware, c.GetUser)
}

func (c *authController) SignInWithLink(ctx *fiber.Ctx) error {
	var req dto.SignInWithLinkRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	if err := c.service.SignInWithLink(ctx.Context(), &req); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Sign-in link sent", nil))
}

func (c *authController) ExchangeCode(ctx *fiber.Ctx) error {
	var req dto.ExchangeCodeRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.ExchangeCode(ctx.Context(), req.Code)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Session created", res))
}

func (c *authController) SetSession(ctx *fiber.Ctx) error {
	var req dto.SetSessionRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.SetSession(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Session restored", res))
}

func (c *authController) GetUser(ctx *fiber.Ctx) error {
	userId := currentUserId(ctx)

	res, err := c.service.GetUser(ctx.Context(), userId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get user", res))
}

func (c *authController) Logout(ctx *fiber.Ctx) error {
	var req dto.LogoutRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := c.service.SignOut(ctx.Context(), req.RefreshToken); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Signed out", nil))
}
