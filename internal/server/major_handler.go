package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ai4life/career-advisor-go/internal/service"
	"github.com/ai4life/career-advisor-go/internal/service/database"
)

type MajorHandler struct {
	majors  *database.MajorRepository
	scraper *service.ScraperService
}

func NewMajorHandler(majors *database.MajorRepository, scraper *service.ScraperService) *MajorHandler {
	return &MajorHandler{majors: majors, scraper: scraper}
}

// GET /api/majors
func (h *MajorHandler) List(c *gin.Context) {
	majors, err := h.majors.List(c.Request.Context())
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"majors": majors})
}

// GET /api/majors/:code
func (h *MajorHandler) GetByCode(c *gin.Context) {
	major, err := h.majors.FindByCode(c.Request.Context(), c.Param("code"))
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	if major == nil {
		RespondError(c, http.StatusNotFound, "major_not_found", nil)
		return
	}
	RespondOK(c, major)
}

// GET /api/programs
func (h *MajorHandler) ListScrapedPrograms(c *gin.Context) {
	if h.scraper == nil {
		RespondError(c, http.StatusServiceUnavailable, "scraper_disabled", nil)
		return
	}

	programs, err := h.scraper.FetchPrograms(c.Request.Context())
	if err != nil {
		if service.IsStructureError(err) {
			RespondError(c, http.StatusBadGateway, "scrape_failed", err)
			return
		}
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"programs": programs})
}
