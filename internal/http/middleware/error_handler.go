package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/ignatzorin/job-qualifier/internal/http/response"
	"github.com/ignatzorin/job-qualifier/internal/logger"
)

// ErrorHandler обрабатывает ошибки централизованно.
// AppError отдаётся клиенту как есть, всё остальное маскируется под 500.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		// Проверяем, не был ли уже отправлен ответ
		if c.Writer.Written() {
			return
		}

		if len(c.Errors) > 0 {
			err := c.Errors.Last()

			logger.Log.WithFields(logrus.Fields{
				"error":      err.Error(),
				"path":       c.Request.URL.Path,
				"method":     c.Request.Method,
				"request_id": c.GetString(ContextRequestIDKey),
			}).Error("Request error")

			response.Error(c, err.Err)
		}
	}
}
