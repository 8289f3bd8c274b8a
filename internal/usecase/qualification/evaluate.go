package qualification

import "github.com/ignatzorin/job-qualifier/internal/domain/entity"

// Evaluate проверяет соискателя по каждой позиции и делит позиции на подходящие и нет.
// Порядок в обоих списках совпадает с порядком positions.
func Evaluate(positions []entity.Position, applicant *entity.Applicant) *entity.Evaluation {
	eval := &entity.Evaluation{
		Qualified:    make([]entity.PositionResult, 0, len(positions)),
		NotQualified: make([]entity.PositionResult, 0, len(positions)),
	}

	for _, p := range positions {
		res := p.Evaluate(applicant)
		if res.Qualified() {
			eval.Qualified = append(eval.Qualified, res)
		} else {
			eval.NotQualified = append(eval.NotQualified, res)
		}
	}

	return eval
}
