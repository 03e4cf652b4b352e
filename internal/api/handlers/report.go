package handlers

import (
	"errors"
	"log"
	"net/http"

	"loan-summary/internal/api/models"
	"loan-summary/internal/cache"
	"loan-summary/internal/data"
	"loan-summary/internal/report"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ReportHandler handles summary report requests
type ReportHandler struct {
	cache cache.Cache
}

// NewReportHandler creates a new report handler backed by the given cache.
func NewReportHandler(c cache.Cache) *ReportHandler {
	return &ReportHandler{cache: c}
}

// CreateReport handles POST /api/v1/report. The request is a multipart
// upload with the loan export CSV in the "file" field.
func (h *ReportHandler) CreateReport(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_REQUEST",
				Message: `multipart field "file" is required`,
			},
		})
		return
	}
	defer file.Close()

	records, err := data.ReadLoanCSV(file)
	if err != nil {
		status, code := classifyError(err)
		c.JSON(status, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    code,
				Message: err.Error(),
			},
		})
		return
	}

	rows, err := report.Aggregate(records)
	if err != nil {
		status, code := classifyError(err)
		c.JSON(status, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    code,
				Message: err.Error(),
			},
		})
		return
	}

	display := report.Format(rows)
	resp := models.ReportResponse{
		ID:       uuid.NewString(),
		Source:   header.Filename,
		Rows:     rows,
		Display:  display,
		Markdown: report.RenderMarkdown(display),
	}

	if h.cache != nil {
		if err := h.cache.Set(resp.ID, resp.Markdown); err != nil {
			// Cache failures degrade GET /report/:id but not the upload.
			log.Printf("report cache: %v", err)
		}
	}
	c.JSON(http.StatusOK, resp)
}

// GetReport handles GET /api/v1/report/:id and serves the rendered
// markdown of a previously computed report.
func (h *ReportHandler) GetReport(c *gin.Context) {
	id := c.Param("id")
	markdown, ok := "", false
	if h.cache != nil {
		markdown, ok = h.cache.Get(id)
	}
	if !ok {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "NOT_FOUND",
				Message: "no report with that id; reports expire from the cache",
			},
		})
		return
	}
	c.Data(http.StatusOK, "text/markdown; charset=utf-8", []byte(markdown))
}

func classifyError(err error) (int, string) {
	var parseErr *report.ParseError
	var missingErr *report.MissingColumnError
	switch {
	case errors.As(err, &parseErr):
		return http.StatusUnprocessableEntity, "PARSE_ERROR"
	case errors.As(err, &missingErr):
		return http.StatusUnprocessableEntity, "MISSING_COLUMN"
	default:
		return http.StatusBadRequest, "AGGREGATION_ERROR"
	}
}
