package server

import (
	"warbler/internal/models"
	"warbler/internal/observability"
	"warbler/internal/service"
	"warbler/internal/session"

	"github.com/gofiber/fiber/v2"
)

// Signup handles POST /api/auth/signup. A successful signup logs the new
// account in immediately.
func (s *Server) Signup(c *fiber.Ctx) error {
	var req struct {
		Username string `json:"username"`
		Email    string `json:"email"`
		Password string `json:"password"`
		ImageURL string `json:"image_url"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	if req.Username == "" || req.Email == "" || req.Password == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Username, email, and password are required"))
	}

	user, err := s.authService.Signup(c.Context(), service.SignupInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
		ImageURL: req.ImageURL,
	})
	if err != nil {
		return respondServiceError(c, err)
	}

	token, err := s.sessions.Create(c.Context(), user.ID)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError,
			models.NewInternalError(err))
	}
	s.setSessionCookie(c, token)
	observability.SignupsTotal.Inc()

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"user": user,
	})
}

// Login handles POST /api/auth/login
func (s *Server) Login(c *fiber.Ctx) error {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	user, err := s.authService.Authenticate(c.Context(), req.Username, req.Password)
	if err != nil {
		return respondServiceError(c, err)
	}
	if user == nil {
		return models.RespondWithError(c, fiber.StatusUnauthorized,
			models.NewUnauthorizedError("Invalid credentials"))
	}

	token, err := s.sessions.Create(c.Context(), user.ID)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError,
			models.NewInternalError(err))
	}
	s.setSessionCookie(c, token)

	return c.JSON(fiber.Map{
		"user": user,
	})
}

// Logout handles POST /api/auth/logout. Logging out without a session is
// still a success; the cookie is cleared either way.
func (s *Server) Logout(c *fiber.Ctx) error {
	token := c.Cookies(session.CookieName)
	if token != "" {
		if err := s.sessions.Destroy(c.Context(), token); err != nil {
			return models.RespondWithError(c, fiber.StatusInternalServerError,
				models.NewInternalError(err))
		}
	}
	s.clearSessionCookie(c)

	return c.JSON(fiber.Map{
		"message": "Logged out",
	})
}
