package qualification

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/ignatzorin/job-qualifier/internal/domain/entity"
	"github.com/ignatzorin/job-qualifier/internal/logger"
	"github.com/ignatzorin/job-qualifier/internal/metrics"
	"github.com/ignatzorin/job-qualifier/internal/pkg/apperror"
	"github.com/ignatzorin/job-qualifier/internal/validation"
)

type CheckApplicationUseCase struct {
	positions []entity.Position
}

func NewCheckApplicationUseCase(positions []entity.Position) *CheckApplicationUseCase {
	return &CheckApplicationUseCase{positions: positions}
}

// Positions возвращает каталог, по которому идёт проверка.
func (uc *CheckApplicationUseCase) Positions() []entity.Position {
	return uc.positions
}

// Execute проверяет ввод и, если ошибок нет, оценивает соискателя.
// При ошибках валидации оценка не выполняется.
func (uc *CheckApplicationUseCase) Execute(ctx context.Context, input validation.ApplicantInput) (*entity.Evaluation, error) {
	log := logger.Log.WithContext(ctx)

	applicant, err := validation.ParseApplicant(input)
	if err != nil {
		details := apperror.Details(err)
		metrics.ApplicationsChecked.WithLabelValues(metrics.OutcomeInvalid).Inc()
		metrics.ValidationErrors.Add(float64(len(details)))
		log.WithField("errors", len(details)).Debug("qualification: заявка не прошла валидацию")
		return nil, err
	}
	metrics.ApplicationsChecked.WithLabelValues(metrics.OutcomeValid).Inc()

	eval := Evaluate(uc.positions, applicant)

	for _, r := range eval.Qualified {
		metrics.PositionResults.WithLabelValues(r.Title, metrics.ResultQualified).Inc()
	}
	for _, r := range eval.NotQualified {
		metrics.PositionResults.WithLabelValues(r.Title, metrics.ResultNotQualified).Inc()
	}

	log.WithFields(logrus.Fields{
		"qualified":     len(eval.Qualified),
		"not_qualified": len(eval.NotQualified),
	}).Info("qualification: заявка оценена")

	return eval, nil
}
