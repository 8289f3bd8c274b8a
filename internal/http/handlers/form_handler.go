package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ignatzorin/job-qualifier/internal/pkg/apperror"
	"github.com/ignatzorin/job-qualifier/internal/usecase/qualification"
	"github.com/ignatzorin/job-qualifier/internal/validation"
	"github.com/ignatzorin/job-qualifier/internal/web"
)

// FormHandler отдаёт HTML форму и результат проверки.
type FormHandler struct {
	checker *qualification.CheckApplicationUseCase
}

func NewFormHandler(checker *qualification.CheckApplicationUseCase) *FormHandler {
	return &FormHandler{checker: checker}
}

// Show обрабатывает GET / и отдаёт пустую форму.
func (h *FormHandler) Show(c *gin.Context) {
	c.HTML(http.StatusOK, web.IndexTemplate, newFormPage(validation.ApplicantInput{}))
}

// Submit обрабатывает POST /: показывает ошибки валидации или списки позиций.
func (h *FormHandler) Submit(c *gin.Context) {
	input := readApplicantForm(c)
	page := newFormPage(input)

	eval, err := h.checker.Execute(c.Request.Context(), input)
	if err != nil {
		if !apperror.IsValidation(err) {
			_ = c.Error(err)
			return
		}
		page.Errors = apperror.Details(err)
		c.HTML(http.StatusOK, web.IndexTemplate, page)
		return
	}

	page.Evaluation = eval
	c.HTML(http.StatusOK, web.IndexTemplate, page)
}
