package api

import (
	"github.com/gofiber/fiber/v2"

	"github.com/harshitMehrag/snowflake-langgraph-agent/pkg/agent"
)

// ErrorResponse is the JSON error payload for API failures.
type ErrorResponse struct {
	Error string `json:"error"`
}

// InvokeRequest is the request body for POST /v1/invoke.
type InvokeRequest struct {
	History []agent.Message `json:"history"`
}

// InvokeResponse contains the updated history plus the routing decision
// for the answered turn.
type InvokeResponse struct {
	History  []agent.Message `json:"history"`
	Decision string          `json:"decision"`
	Answer   string          `json:"answer"`
}

// handlePing returns a simple health check response.
func (s *Server) handlePing(c *fiber.Ctx) error {
	return c.JSON("pong")
}

// handleInvoke handles POST /v1/invoke requests. The request carries the
// full conversation history ending with the newest user message; the
// response carries the history with one assistant message appended.
func (s *Server) handleInvoke(c *fiber.Ctx) error {
	var req InvokeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error: "invalid request body",
		})
	}

	if len(req.History) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error: "history is required",
		})
	}

	last := req.History[len(req.History)-1]
	if last.Role != agent.RoleUser {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error: "history must end with a user message",
		})
	}

	state, err := s.pipeline.Ask(c.Context(), last.Content)
	if err != nil {
		// Oracle faults surface as a generic failure, not the raw error.
		s.logger.Error("invoke failed", "error", err)
		return c.Status(fiber.StatusBadGateway).JSON(ErrorResponse{
			Error: "the agent could not answer, please try again",
		})
	}

	history := append(req.History, agent.Message{
		Role:    agent.RoleAssistant,
		Content: state.Answer,
	})

	return c.JSON(InvokeResponse{
		History:  history,
		Decision: string(state.Decision),
		Answer:   state.Answer,
	})
}
