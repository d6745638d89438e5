package main

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
)

func errorJSON(c echo.Context, status int, message string) error {
	return c.JSON(status, ErrorResponse{
		Status:    "error",
		Message:   message,
		Timestamp: time.Now(),
	})
}

// handleError renders every error that reaches echo in the ErrorResponse shape
func (s *Server) handleError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	message := "Internal Server Error"

	var he *echo.HTTPError
	if errors.As(err, &he) {
		code = he.Code
		if m, ok := he.Message.(string); ok {
			message = m
		} else {
			message = http.StatusText(code)
		}
	}
	if errors.Is(err, echo.ErrNotFound) {
		message = "Endpoint not found"
	}
	if code >= http.StatusInternalServerError {
		log.Printf("Request %s %s failed: %v", c.Request().Method, c.Path(), err)
	}

	switch {
	case c.Request().Method == http.MethodHead:
		err = c.NoContent(code)
	case code >= http.StatusInternalServerError && c.Path() == queryRoute:
		err = c.JSON(code, QueryErrorResponse{
			Error:           "Failed to process query",
			CustomerService: s.answers.ErrorContact(),
		})
	default:
		err = errorJSON(c, code, message)
	}
	if err != nil {
		log.Printf("Failed to write error response: %v", err)
	}
}

func (s *Server) handleIndex(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"service": "HealthGuard AI RAG Server",
		"version": s.cfg.Version,
		"status":  "operational",
		"endpoints": map[string]string{
			"health":        "/health",
			"query":         "/api/v1/rag/query",
			"topics":        "/api/v1/rag/topics",
			"patients":      "/api/v1/patients",
			"policies":      "/api/v1/policies",
			"assess_claim":  "/api/v1/claims/assess",
			"coverage":      "/api/v1/coverage",
			"metrics":       "/metrics",
			"reload_topics": "/admin/reload",
		},
		"deployment": map[string]interface{}{
			"ready": true,
			"port":  s.cfg.Port,
			"cors":  "enabled",
		},
	})
}

func (s *Server) handleHealth(c echo.Context) error {
	ctx := c.Request().Context()

	if err := s.store.Ping(ctx); err != nil {
		log.Printf("Health check: record store ping failed: %v", err)
		return c.JSON(http.StatusServiceUnavailable, map[string]interface{}{
			"status":    "unhealthy",
			"error":     "record store unavailable",
			"timestamp": time.Now(),
		})
	}

	counts := make(map[string]int)
	for _, kind := range []RecordKind{KindPatient, KindMedicalRecord, KindClaim, KindPolicy, KindAssessment} {
		n, err := s.store.Count(ctx, kind)
		if err != nil {
			log.Printf("Health check: counting %s failed: %v", kind, err)
			return c.JSON(http.StatusServiceUnavailable, map[string]interface{}{
				"status":    "unhealthy",
				"error":     "record store unavailable",
				"timestamp": time.Now(),
			})
		}
		counts[string(kind)+"_count"] = n
	}

	snap := s.kb.Snapshot()

	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":           "healthy",
		"service":          "enhanced_rag_server",
		"version":          s.cfg.Version,
		"port":             s.cfg.Port,
		"knowledge_topics": snap.Matcher.KnowledgeBase().Len(),
		"topics_source":    s.kb.Source(),
		"topics_loaded_at": snap.LoadedAt,
		"records":          counts,
		"uptime_seconds":   int(time.Since(s.startedAt).Seconds()),
		"timestamp":        time.Now(),
		"deployment_ready": true,
	})
}

func (s *Server) handleQuery(c echo.Context) error {
	var req QueryRequest

	if err := c.Bind(&req); err != nil {
		queriesTotal.WithLabelValues(OutcomeRejected).Inc()
		return c.JSON(http.StatusBadRequest, QueryErrorResponse{
			Error:           "Invalid request",
			CustomerService: s.answers.MissingQueryContact(),
		})
	}

	// Validate required fields
	query := strings.TrimSpace(req.Query)
	if query == "" {
		queriesTotal.WithLabelValues(OutcomeRejected).Inc()
		return c.JSON(http.StatusBadRequest, QueryErrorResponse{
			Error:           "No query provided",
			CustomerService: s.answers.MissingQueryContact(),
		})
	}

	log.Printf("Query received: %s", query)

	result := s.kb.Matcher().Match(query)
	recordMatch(result)
	answer := s.answers.Compose(result)

	if answer.CustomerService != nil {
		log.Printf("Low confidence (%.0f%%) - Customer service recommended", answer.Confidence*100)
	} else {
		log.Printf("High confidence (%.0f%%) - topic %s, score %d", answer.Confidence*100, result.Topic.Key, result.Score)
	}

	return c.JSON(http.StatusOK, QueryResponse{
		Query:           query,
		Response:        answer.Response,
		Confidence:      answer.Confidence,
		Sources:         answer.Sources,
		Timestamp:       time.Now(),
		CustomerService: answer.CustomerService,
	})
}

func (s *Server) handleTopics(c echo.Context) error {
	topics := s.kb.Matcher().KnowledgeBase().All()

	summaries := make([]TopicSummary, 0, len(topics))
	for _, t := range topics {
		summaries = append(summaries, TopicSummary{
			Key:        t.Key,
			Keywords:   t.Keywords,
			Confidence: t.Confidence,
			Category:   t.Category,
		})
	}

	return c.JSON(http.StatusOK, TopicsResponse{
		Count:  len(summaries),
		Topics: summaries,
	})
}

func (s *Server) handleReloadTopics(c echo.Context) error {
	kb, err := s.kb.Reload()
	if errors.Is(err, ErrNoTopicsFile) {
		return errorJSON(c, http.StatusConflict, "No topic file configured; the stock knowledge base cannot be reloaded")
	}
	if err != nil {
		log.Printf("Topic reload failed: %v", err)
		return errorJSON(c, http.StatusUnprocessableEntity, fmt.Sprintf("Topic reload failed: %v", err))
	}

	return c.JSON(http.StatusOK, ReloadResponse{
		Message:    fmt.Sprintf("Knowledge base reloaded with %d topics", kb.Len()),
		Topics:     kb.Len(),
		Source:     s.kb.Source(),
		ReloadedAt: time.Now(),
	})
}
