package handlers

import (
	"net/http"

	"loan-summary/internal/api/models"
	"loan-summary/internal/model"

	"github.com/gin-gonic/gin"
)

// ListGrades handles GET /api/v1/grades
func ListGrades(c *gin.Context) {
	buckets := []models.GradeInfo{
		{Bucket: "A", Grades: []string{"A"}},
		{Bucket: "B", Grades: []string{"B"}},
		{Bucket: "C", Grades: []string{"C"}},
		{Bucket: "D", Grades: []string{"D"}},
		{Bucket: "E", Grades: []string{"E"}},
		{Bucket: model.BucketFG, Grades: []string{"F", "G"}},
	}

	c.JSON(http.StatusOK, gin.H{
		"buckets": buckets,
		"all_row": model.BucketAll,
	})
}
