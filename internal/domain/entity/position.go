package entity

// Predicate проверяет одно условие для соискателя.
type Predicate func(a *Applicant) bool

// Requirement описывает обязательное условие позиции. Failure показывается, если условие не выполнено.
type Requirement struct {
	Check   Predicate
	Failure string
}

// Preference описывает желательное условие, на допуск не влияет.
type Preference struct {
	Description string
	Check       Predicate
}

type Position struct {
	Title    string
	Required []Requirement
	Desired  []Preference
}

// PositionResult хранит итог проверки одной позиции.
type PositionResult struct {
	Title        string   `json:"title"`
	Unmet        []string `json:"unmet"`
	MetDesired   []string `json:"met_desired"`
	UnmetDesired []string `json:"unmet_desired"`
}

func (r PositionResult) Qualified() bool {
	return len(r.Unmet) == 0
}

// Evaluate проверяет все условия позиции в порядке объявления.
func (p Position) Evaluate(a *Applicant) PositionResult {
	result := PositionResult{
		Title:        p.Title,
		Unmet:        make([]string, 0),
		MetDesired:   make([]string, 0),
		UnmetDesired: make([]string, 0),
	}

	for _, req := range p.Required {
		if !req.Check(a) {
			result.Unmet = append(result.Unmet, req.Failure)
		}
	}

	for _, pref := range p.Desired {
		if pref.Check(a) {
			result.MetDesired = append(result.MetDesired, pref.Description)
		} else {
			result.UnmetDesired = append(result.UnmetDesired, pref.Description)
		}
	}

	return result
}

// Evaluation разбивает позиции на подходящие и неподходящие, сохраняя порядок каталога.
type Evaluation struct {
	Qualified    []PositionResult `json:"qualified"`
	NotQualified []PositionResult `json:"not_qualified"`
}
