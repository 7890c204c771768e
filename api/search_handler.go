package api

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
)

// SearchResult is a single handbook chunk match.
type SearchResult struct {
	ID     string  `json:"id"`
	Source string  `json:"source,omitempty"`
	Text   string  `json:"text"`
	Score  float32 `json:"score"`
}

// SearchResponse is the response for GET /v1/search.
type SearchResponse struct {
	Query   string         `json:"query"`
	Results []SearchResult `json:"results"`
	Count   int            `json:"count"`
}

// handleSearchEndpoint handles GET /v1/search requests.
// Query parameters:
//   - query (required): the search query text
//   - top_k (optional, default 3): number of results to return
func (s *Server) handleSearchEndpoint(c *fiber.Ctx) error {
	if s.vectorDriver == nil || s.embedder == nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(ErrorResponse{
			Error: "search is not configured: vector driver and embedder are required",
		})
	}

	query := c.Query("query")
	if query == "" {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error: "query parameter is required",
		})
	}

	topK := 3
	if topKStr := c.Query("top_k"); topKStr != "" {
		parsed, err := strconv.Atoi(topKStr)
		if err != nil || parsed <= 0 {
			return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
				Error: "top_k must be a positive integer",
			})
		}
		topK = parsed
	}

	embedding, err := s.embedder.Embed(c.Context(), query)
	if err != nil {
		s.logger.Error("failed to embed query", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Error: "failed to embed query",
		})
	}

	results, err := s.vectorDriver.Query(c.Context(), embedding, topK)
	if err != nil {
		s.logger.Error("failed to query vector store", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Error: "failed to query vector store",
		})
	}

	out := SearchResponse{
		Query:   query,
		Results: make([]SearchResult, 0, len(results)),
	}
	for _, result := range results {
		out.Results = append(out.Results, SearchResult{
			ID:     result.Document.ID,
			Source: result.Document.Source,
			Text:   result.Document.Text,
			Score:  result.Score,
		})
	}
	out.Count = len(out.Results)

	return c.JSON(out)
}
