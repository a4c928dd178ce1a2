package server

import (
	"warbler/internal/models"
	"warbler/internal/observability"
	"warbler/internal/service"

	"github.com/gofiber/fiber/v2"
)

// SearchUsers handles GET /api/users. The q parameter filters by username
// substring; without it the listing is unfiltered.
func (s *Server) SearchUsers(c *fiber.Ctx) error {
	page := parsePagination(c, 50)
	users, err := s.userService.Search(c.Context(), c.Query("q"), page.Limit, page.Offset)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"users": users,
	})
}

// GetUserProfile handles GET /api/users/:id
func (s *Server) GetUserProfile(c *fiber.Ctx) error {
	userID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	profile, err := s.userService.GetProfile(c.Context(), userID)
	if err != nil {
		return respondServiceError(c, err)
	}

	if viewerID, ok := s.optionalUserID(c); ok && viewerID != userID {
		following, err := s.socialService.IsFollowing(c.Context(), viewerID, userID)
		if err != nil {
			return respondServiceError(c, err)
		}
		followedBy, err := s.socialService.IsFollowedBy(c.Context(), viewerID, userID)
		if err != nil {
			return respondServiceError(c, err)
		}
		return c.JSON(fiber.Map{
			"profile":     profile,
			"following":   following,
			"followed_by": followedBy,
		})
	}

	return c.JSON(fiber.Map{
		"profile": profile,
	})
}

// GetMyProfile handles GET /api/users/me
func (s *Server) GetMyProfile(c *fiber.Ctx) error {
	profile, err := s.userService.GetProfile(c.Context(), currentUserID(c))
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{
		"profile": profile,
	})
}

// UpdateMyProfile handles PUT /api/users/me. The current password must be
// supplied to confirm the edit.
func (s *Server) UpdateMyProfile(c *fiber.Ctx) error {
	var req struct {
		Username       string `json:"username"`
		Email          string `json:"email"`
		ImageURL       string `json:"image_url"`
		HeaderImageURL string `json:"header_image_url"`
		Bio            string `json:"bio"`
		Location       string `json:"location"`
		Password       string `json:"password"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	if req.Password == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Current password is required"))
	}

	user, err := s.userService.UpdateProfile(c.Context(), currentUserID(c), service.UpdateProfileInput{
		Username:       req.Username,
		Email:          req.Email,
		ImageURL:       req.ImageURL,
		HeaderImageURL: req.HeaderImageURL,
		Bio:            req.Bio,
		Location:       req.Location,
		Password:       req.Password,
	})
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"user": user,
	})
}

// DeleteMyAccount handles DELETE /api/users/me. The account's messages,
// likes and follow edges go with it, and every session is revoked.
func (s *Server) DeleteMyAccount(c *fiber.Ctx) error {
	userID := currentUserID(c)

	if err := s.userService.DeleteAccount(c.Context(), userID); err != nil {
		return respondServiceError(c, err)
	}
	if err := s.sessions.DestroyAllForUser(c.Context(), userID); err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError,
			models.NewInternalError(err))
	}
	s.clearSessionCookie(c)

	return c.JSON(fiber.Map{
		"message": "Account deleted",
	})
}

// GetUserLikes handles GET /api/users/:id/likes
func (s *Server) GetUserLikes(c *fiber.Ctx) error {
	userID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	messages, err := s.engagement.LikedMessages(c.Context(), userID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{
		"messages": messages,
	})
}

// GetFollowing handles GET /api/users/:id/following
func (s *Server) GetFollowing(c *fiber.Ctx) error {
	userID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	users, err := s.socialService.Following(c.Context(), userID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{
		"users": users,
	})
}

// GetFollowers handles GET /api/users/:id/followers
func (s *Server) GetFollowers(c *fiber.Ctx) error {
	userID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	users, err := s.socialService.Followers(c.Context(), userID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{
		"users": users,
	})
}

// FollowUser handles POST /api/users/:id/follow
func (s *Server) FollowUser(c *fiber.Ctx) error {
	followeeID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.socialService.Follow(c.Context(), currentUserID(c), followeeID); err != nil {
		return respondServiceError(c, err)
	}
	observability.FollowsToggled.WithLabelValues("follow").Inc()

	return c.JSON(fiber.Map{
		"message": "Following",
	})
}

// UnfollowUser handles DELETE /api/users/:id/follow
func (s *Server) UnfollowUser(c *fiber.Ctx) error {
	followeeID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.socialService.Unfollow(c.Context(), currentUserID(c), followeeID); err != nil {
		return respondServiceError(c, err)
	}
	observability.FollowsToggled.WithLabelValues("unfollow").Inc()

	return c.JSON(fiber.Map{
		"message": "Unfollowed",
	})
}
