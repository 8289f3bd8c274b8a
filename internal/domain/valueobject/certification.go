package valueobject

import "github.com/ignatzorin/job-qualifier/internal/pkg/apperror"

type Certification string

const (
	CertificationPMILean Certification = "PMI Lean Project Management Certification"
	CertificationNone    Certification = "None"
)

func AllowedCertifications() []Certification {
	return []Certification{CertificationPMILean, CertificationNone}
}

func (c Certification) IsValid() bool {
	switch c {
	case CertificationPMILean, CertificationNone:
		return true
	}
	return false
}

func NewCertification(value string) (Certification, error) {
	c := Certification(value)
	if !c.IsValid() {
		return "", apperror.New(apperror.ErrCodeValidation, invalidChoiceMessage("certification", value, AllowedCertifications()))
	}
	return c, nil
}
