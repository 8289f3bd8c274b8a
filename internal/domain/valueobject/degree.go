package valueobject

import (
	"fmt"
	"strings"

	"github.com/ignatzorin/job-qualifier/internal/pkg/apperror"
)

type Degree string

const (
	DegreeBachelor           Degree = "Bachelor in CS"
	DegreeMasters            Degree = "Masters in CS"
	DegreeBachelorAndMasters Degree = "Bachelor and Masters in CS"
	DegreeNone               Degree = "None"
)

// DegreeLevel задаёт уровень образования, который может требовать позиция.
type DegreeLevel string

const (
	DegreeLevelBachelor DegreeLevel = "bachelor"
	DegreeLevelMasters  DegreeLevel = "masters"
)

// AllowedDegrees возвращает допустимые значения в порядке отображения в форме.
func AllowedDegrees() []Degree {
	return []Degree{DegreeBachelor, DegreeMasters, DegreeBachelorAndMasters, DegreeNone}
}

func (d Degree) IsValid() bool {
	switch d {
	case DegreeBachelor, DegreeMasters, DegreeBachelorAndMasters, DegreeNone:
		return true
	}
	return false
}

// Satisfies сообщает, закрывает ли диплом требование указанного уровня.
func (d Degree) Satisfies(level DegreeLevel) bool {
	switch level {
	case DegreeLevelBachelor:
		return d == DegreeBachelor || d == DegreeBachelorAndMasters
	case DegreeLevelMasters:
		return d == DegreeMasters || d == DegreeBachelorAndMasters
	}
	return false
}

func NewDegree(value string) (Degree, error) {
	d := Degree(value)
	if !d.IsValid() {
		return "", apperror.New(apperror.ErrCodeValidation, invalidChoiceMessage("degree", value, AllowedDegrees()))
	}
	return d, nil
}

// invalidChoiceMessage формирует сообщение о значении вне перечисления.
func invalidChoiceMessage[T ~string](field, value string, allowed []T) string {
	if value == "" {
		value = "(empty)"
	}
	names := make([]string, 0, len(allowed))
	for _, a := range allowed {
		names = append(names, string(a))
	}
	return fmt.Sprintf("Invalid %s value: %q. Use exactly one of: %s.", field, value, strings.Join(names, ", "))
}
