package server

import (
	"time"

	"kehilla/internal/models"
	"kehilla/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetSessions handles GET /api/study-sessions
// @Summary List study sessions
// @Description Sessions ordered by scheduled time, soonest first
// @Tags sessions
// @Produce json
// @Success 200 {array} models.StudySession
// @Router /study-sessions [get]
func (s *Server) GetSessions(c *fiber.Ctx) error {
	p := parsePagination(c, 100)

	sessions, err := s.sessionService.ListSessions(c.Context(), p.Limit, p.Offset)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(sessions)
}

// CreateSession handles POST /api/study-sessions
// @Summary Schedule a study session
// @Tags sessions
// @Accept json
// @Produce json
// @Param request body object{title=string,description=string,date_time=string,duration=int,max_participants=int,category=string} true "Session payload"
// @Success 201 {object} models.StudySession
// @Failure 400 {object} models.ErrorResponse
// @Security BearerAuth
// @Router /study-sessions [post]
func (s *Server) CreateSession(c *fiber.Ctx) error {
	var req struct {
		Title           string    `json:"title"`
		Description     string    `json:"description"`
		DateTime        time.Time `json:"date_time"`
		Duration        int       `json:"duration"`
		MaxParticipants int       `json:"max_participants"`
		Category        string    `json:"category"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	session, err := s.sessionService.CreateSession(c.Context(), service.CreateSessionInput{
		SpeakerID:       currentUserID(c),
		Title:           req.Title,
		Description:     req.Description,
		DateTime:        req.DateTime,
		DurationMinutes: req.Duration,
		MaxParticipants: req.MaxParticipants,
		Category:        req.Category,
	})
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(session)
}

// ToggleRegistration handles POST /api/study-sessions/:id/register
// @Summary Toggle registration for a study session
// @Description Registers if not yet registered, unregisters otherwise. Full sessions reject new registrations.
// @Tags sessions
// @Produce json
// @Param id path int true "Session ID"
// @Success 200 {object} object{registered=bool,participants=int}
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Security BearerAuth
// @Router /study-sessions/{id}/register [post]
func (s *Server) ToggleRegistration(c *fiber.Ctx) error {
	sessionID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	registered, participants, err := s.sessionService.ToggleRegistration(c.Context(), sessionID, currentUserID(c))
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{
		"registered":   registered,
		"participants": participants,
	})
}

// GetRegistrationStatus handles GET /api/study-sessions/:id/registration-status
// @Summary Check whether the caller is registered for a session
// @Tags sessions
// @Produce json
// @Param id path int true "Session ID"
// @Success 200 {object} object{registered=bool}
// @Failure 404 {object} models.ErrorResponse
// @Security BearerAuth
// @Router /study-sessions/{id}/registration-status [get]
func (s *Server) GetRegistrationStatus(c *fiber.Ctx) error {
	sessionID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	registered, err := s.sessionService.RegistrationStatus(c.Context(), sessionID, currentUserID(c))
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"registered": registered})
}

// GetRegisteredSessions handles GET /api/users/:id/registered-sessions
// @Summary List the sessions a member is registered for
// @Tags sessions
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {array} models.StudySession
// @Security BearerAuth
// @Router /users/{id}/registered-sessions [get]
func (s *Server) GetRegisteredSessions(c *fiber.Ctx) error {
	userID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	sessions, err := s.sessionService.RegisteredSessions(c.Context(), userID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(sessions)
}
