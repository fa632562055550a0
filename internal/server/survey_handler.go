package server

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/ai4life/career-advisor-go/internal/domain"
	"github.com/ai4life/career-advisor-go/internal/service"
)

type SurveyHandler struct {
	surveys *service.SurveyService
}

func NewSurveyHandler(surveys *service.SurveyService) *SurveyHandler {
	return &SurveyHandler{surveys: surveys}
}

// POST /api/survey
func (h *SurveyHandler) Submit(c *gin.Context) {
	var survey domain.Survey
	if err := c.ShouldBindJSON(&survey); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}

	result, err := h.surveys.Analyze(c.Request.Context(), &survey)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"surveyId": survey.ID, "result": result})
}

// GET /api/survey/:id
func (h *SurveyHandler) GetSurvey(c *gin.Context) {
	survey, err := h.surveys.GetSurvey(c.Request.Context(), c.Param("id"))
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	if survey == nil {
		RespondError(c, http.StatusNotFound, "survey_not_found", nil)
		return
	}
	RespondOK(c, survey)
}

// GET /api/survey/:id/result
func (h *SurveyHandler) GetSurveyResult(c *gin.Context) {
	result, err := h.surveys.GetResultBySurvey(c.Request.Context(), c.Param("id"))
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	if result == nil {
		RespondError(c, http.StatusNotFound, "result_not_found", nil)
		return
	}
	RespondOK(c, result)
}

// GET /api/results/:id
func (h *SurveyHandler) GetResult(c *gin.Context) {
	result, err := h.surveys.GetResult(c.Request.Context(), c.Param("id"))
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	if result == nil {
		RespondError(c, http.StatusNotFound, "result_not_found", nil)
		return
	}
	RespondOK(c, result)
}

// GET /api/results?limit=20
func (h *SurveyHandler) ListResults(c *gin.Context) {
	limit := 0
	if v := strings.TrimSpace(c.Query("limit")); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			limit = n
		}
	}

	results, err := h.surveys.ListResults(c.Request.Context(), limit)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"results": results})
}
