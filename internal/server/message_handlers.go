package server

import (
	"warbler/internal/models"
	"warbler/internal/observability"

	"github.com/gofiber/fiber/v2"
)

// CreateMessage handles POST /api/messages
func (s *Server) CreateMessage(c *fiber.Ctx) error {
	var req struct {
		Text string `json:"text"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	msg, err := s.engagement.PostMessage(c.Context(), currentUserID(c), req.Text)
	if err != nil {
		return respondServiceError(c, err)
	}
	observability.MessagesCreated.Inc()

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": msg,
	})
}

// GetMessage handles GET /api/messages/:id. Logged-in viewers see whether
// they have liked it.
func (s *Server) GetMessage(c *fiber.Ctx) error {
	messageID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	viewerID, _ := s.optionalUserID(c)
	msg, err := s.engagement.GetMessage(c.Context(), messageID, viewerID)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": msg,
	})
}

// DeleteMessage handles DELETE /api/messages/:id
func (s *Server) DeleteMessage(c *fiber.Ctx) error {
	messageID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.engagement.DeleteMessage(c.Context(), currentUserID(c), messageID); err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Message deleted",
	})
}

// ToggleLike handles POST /api/messages/:id/like. The same endpoint likes
// and unlikes; the response carries the resulting state.
func (s *Server) ToggleLike(c *fiber.Ctx) error {
	messageID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	state, err := s.engagement.ToggleLike(c.Context(), currentUserID(c), messageID)
	if err != nil {
		return respondServiceError(c, err)
	}
	observability.LikesToggled.WithLabelValues(string(state)).Inc()

	return c.JSON(fiber.Map{
		"state": state,
	})
}

// HomeFeed handles GET /api/home
func (s *Server) HomeFeed(c *fiber.Ctx) error {
	viewerID, loggedIn := s.optionalUserID(c)
	if !loggedIn {
		// Anonymous landing: no feed to compose.
		return c.JSON(fiber.Map{
			"authenticated": false,
			"messages":      []models.Message{},
		})
	}

	messages, err := s.feedService.HomeFeed(c.Context(), viewerID)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"messages": messages,
	})
}
