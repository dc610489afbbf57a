package controller

import (
	"github.com/tagnote-app/tagnote-be/internal/dto"
	"github.com/tagnote-app/tagnote-be/internal/pkg/serverutils"
	"github.com/tagnote-app/tagnote-be/internal/service"
	"github.com/tagnote-app/tagnote-be/pkg/tags"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IMemoController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	List(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type memoController struct {
	memoService service.IMemoService
}

func NewMemoController(memoService service.IMemoService) IMemoController {
	return &memoController{
		memoService: memoService,
	}
}

func (c *memoController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/memos")
	h.Use(serverutils.JwtMiddleware)
	h.Post("", c.Create)
	h.Get("", c.List)
	h.Get(":id", c.Show)
	h.Put(":id", c.Update)
	h.Delete(":id", c.Delete)
}

// currentUserId reads the identity the JWT middleware derived from the bearer
// token. Client-asserted user ids are never accepted.
func currentUserId(ctx *fiber.Ctx) uuid.UUID {
	userIdStr, _ := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)
	return userId
}

func (c *memoController) Create(ctx *fiber.Ctx) error {
	userId := currentUserId(ctx)

	var req dto.CreateMemoRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.memoService.Create(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success create memo", res))
}

func (c *memoController) List(ctx *fiber.Ctx) error {
	userId := currentUserId(ctx)

	filter := dto.MemoFilter{
		Search:   ctx.Query("search", ""),
		Category: ctx.Query("category", ""),
	}
	// Tags arrive comma separated; normalizing here lets "ui" match "#ui".
	if raw := ctx.Query("tags", ""); raw != "" {
		filter.Tags = tags.Normalize(raw)
	}

	res, err := c.memoService.List(ctx.Context(), userId, filter)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list memos", res))
}

func (c *memoController) Show(ctx *fiber.Ctx) error {
	userId := currentUserId(ctx)

	id, _ := uuid.Parse(ctx.Params("id"))

	res, err := c.memoService.Show(ctx.Context(), userId, id)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show memo", res))
}

func (c *memoController) Update(ctx *fiber.Ctx) error {
	userId := currentUserId(ctx)

	id, _ := uuid.Parse(ctx.Params("id"))

	var req dto.UpdateMemoRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.Id = id

	res, err := c.memoService.Update(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success update memo", res))
}

// Delete is the privileged proxy path: the identity comes from the bearer
// token alone, and the delete stays scoped to that identity's own row.
func (c *memoController) Delete(ctx *fiber.Ctx) error {
	userId := currentUserId(ctx)

	id, _ := uuid.Parse(ctx.Params("id"))

	if err := c.memoService.Delete(ctx.Context(), userId, id); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success delete memo", dto.DeleteMemoResponse{Success: true}))
}
