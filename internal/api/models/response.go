package models

import "loan-summary/internal/report"

// ReportResponse is returned by POST /api/v1/report.
type ReportResponse struct {
	ID       string              `json:"id"`
	Source   string              `json:"source,omitempty"`
	Rows     []report.SummaryRow `json:"rows"`
	Display  []report.DisplayRow `json:"display"`
	Markdown string              `json:"markdown"`
}

// GradeInfo describes one grade bucket of the report.
type GradeInfo struct {
	Bucket string   `json:"bucket"`
	Grades []string `json:"grades"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information
type ErrorDetail struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}
