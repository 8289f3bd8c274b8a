package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/ignatzorin/job-qualifier/internal/dto"
	"github.com/ignatzorin/job-qualifier/internal/http/response"
	"github.com/ignatzorin/job-qualifier/internal/usecase/qualification"
)

// QualificationHandler отдаёт JSON API поверх той же проверки, что и HTML форма.
type QualificationHandler struct {
	checker *qualification.CheckApplicationUseCase
}

func NewQualificationHandler(checker *qualification.CheckApplicationUseCase) *QualificationHandler {
	return &QualificationHandler{checker: checker}
}

// ListPositions обрабатывает GET /api/positions.
func (h *QualificationHandler) ListPositions(c *gin.Context) {
	response.Success(c, dto.NewPositionResponses(h.checker.Positions()))
}

// Check обрабатывает POST /api/qualifications.
func (h *QualificationHandler) Check(c *gin.Context) {
	var req dto.QualificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid JSON body")
		return
	}

	eval, err := h.checker.Execute(c.Request.Context(), req.ToInput())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, eval)
}
