package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"forum-api/internal/domain"
	"forum-api/internal/middleware"
	"forum-api/internal/pkg/validation"
	"forum-api/internal/service"
)

type ThreadHandler struct {
	threadService  service.ThreadService
	commentService service.CommentService
	replyService   service.ReplyService
}

func NewThreadHandler(threadService service.ThreadService, commentService service.CommentService, replyService service.ReplyService) *ThreadHandler {
	return &ThreadHandler{
		threadService:  threadService,
		commentService: commentService,
		replyService:   replyService,
	}
}

func (h *ThreadHandler) Create(c *fiber.Ctx) error {
	userID := middleware.GetCurrentUserID(c)

	var input domain.CreateThreadInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}
	if err := validation.Struct(input); err != nil {
		return middleware.BadRequest(err.Error())
	}

	added, err := h.threadService.Create(c.Context(), userID, input)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"status": "success",
		"data":   fiber.Map{"addedThread": added},
	})
}

func (h *ThreadHandler) GetDetail(c *fiber.Ctx) error {
	detail, err := h.threadService.GetDetail(c.Context(), c.Params("threadId"))
	if err != nil {
		return mapDomainError(err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status": "success",
		"data":   fiber.Map{"thread": detail},
	})
}

func (h *ThreadHandler) CreateComment(c *fiber.Ctx) error {
	userID := middleware.GetCurrentUserID(c)

	var input domain.CreateCommentInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}
	if err := validation.Struct(input); err != nil {
		return middleware.BadRequest(err.Error())
	}

	added, err := h.commentService.Create(c.Context(), userID, c.Params("threadId"), input)
	if err != nil {
		return mapDomainError(err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"status": "success",
		"data":   fiber.Map{"addedComment": added},
	})
}

func (h *ThreadHandler) DeleteComment(c *fiber.Ctx) error {
	userID := middleware.GetCurrentUserID(c)

	if err := h.commentService.Delete(c.Context(), c.Params("commentId"), userID); err != nil {
		return mapDomainError(err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "success"})
}

func (h *ThreadHandler) CreateReply(c *fiber.Ctx) error {
	userID := middleware.GetCurrentUserID(c)

	var input domain.CreateCommentInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}
	if err := validation.Struct(input); err != nil {
		return middleware.BadRequest(err.Error())
	}

	added, err := h.replyService.Create(c.Context(), userID, c.Params("threadId"), c.Params("commentId"), input)
	if err != nil {
		return mapDomainError(err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"status": "success",
		"data":   fiber.Map{"addedReply": added},
	})
}

func (h *ThreadHandler) DeleteReply(c *fiber.Ctx) error {
	userID := middleware.GetCurrentUserID(c)

	if err := h.replyService.Delete(c.Context(), c.Params("replyId"), userID); err != nil {
		return mapDomainError(err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "success"})
}

func (h *ThreadHandler) LikeComment(c *fiber.Ctx) error {
	userID := middleware.GetCurrentUserID(c)

	err := h.commentService.ToggleLike(c.Context(), c.Params("threadId"), c.Params("commentId"), userID)
	if err != nil {
		return mapDomainError(err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "success"})
}

func mapDomainError(err error) error {
	switch {
	case errors.Is(err, domain.ErrThreadNotFound),
		errors.Is(err, domain.ErrCommentNotFound),
		errors.Is(err, domain.ErrReplyNotFound):
		return middleware.NotFound(err.Error())
	case errors.Is(err, domain.ErrNotCommentOwner):
		return middleware.Forbidden(err.Error())
	}
	return err
}
