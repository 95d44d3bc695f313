package handler

import (
	"github.com/gofiber/fiber/v2"

	"forum-api/internal/middleware"
	"forum-api/internal/service"
)

type UserHandler struct {
	userService service.UserService
}

func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

func (h *UserHandler) GetProfile(c *fiber.Ctx) error {
	user, err := h.userService.GetProfile(c.Context(), middleware.GetCurrentUserID(c))
	if err != nil {
		if err == service.ErrUserNotFound {
			return middleware.NotFound(err.Error())
		}
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status": "success",
		"data":   fiber.Map{"user": user},
	})
}

func (h *UserHandler) UpdateAvatar(c *fiber.Ctx) error {
	userID := middleware.GetCurrentUserID(c)

	fileHeader, err := c.FormFile("avatar")
	if err != nil {
		return middleware.BadRequest("Avatar file is required")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return middleware.BadRequest("Failed to read avatar file")
	}
	defer file.Close()

	mimeType := fileHeader.Header.Get("Content-Type")
	if mimeType == "" {
		mimeType = "application/octet-stream"
	}

	user, err := h.userService.UpdateAvatar(c.Context(), userID, fileHeader.Filename, fileHeader.Size, mimeType, file)
	if err != nil {
		if err == service.ErrUserNotFound {
			return middleware.NotFound(err.Error())
		}
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status": "success",
		"data":   fiber.Map{"user": user},
	})
}
