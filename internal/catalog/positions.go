package catalog

import (
	"github.com/ignatzorin/job-qualifier/internal/domain/entity"
	"github.com/ignatzorin/job-qualifier/internal/domain/valueobject"
)

const (
	TitleEntryLevelPythonEngineer = "Entry-Level Python Engineer"
	TitlePythonEngineer           = "Python Engineer"
	TitleProjectManager           = "Project Manager"
	TitleSeniorKnowledgeEngineer  = "Senior Knowledge Engineer"
)

// Positions возвращает статический каталог позиций. Порядок задаёт порядок вывода результатов.
func Positions() []entity.Position {
	return []entity.Position{
		{
			Title: TitleEntryLevelPythonEngineer,
			Required: []entity.Requirement{
				{Check: func(a *entity.Applicant) bool { return a.PythonCoursework }, Failure: "Python course work not completed"},
				{Check: func(a *entity.Applicant) bool { return a.SoftwareEngCoursework }, Failure: "Software Engineering course work not completed"},
				{Check: hasDegree(valueobject.DegreeLevelBachelor), Failure: "Required qualification is Bachelor in CS"},
			},
			Desired: []entity.Preference{
				{Description: "Agile course", Check: func(a *entity.Applicant) bool { return a.AgileCourse }},
			},
		},
		{
			Title: TitlePythonEngineer,
			Required: []entity.Requirement{
				{Check: atLeast(pythonYears, 3), Failure: "Needs at least 3 years of Python development"},
				{Check: atLeast(dataDevYears, 1), Failure: "Needs at least 1 year of data development"},
				{Check: atLeast(agileProjectYears, 1), Failure: "Needs Agile project experience (at least 1 year)"},
				{Check: hasDegree(valueobject.DegreeLevelBachelor), Failure: "Required qualification is Bachelor in CS"},
			},
			Desired: []entity.Preference{
				{Description: "Used Git", Check: func(a *entity.Applicant) bool { return a.UsedGit }},
			},
		},
		{
			Title: TitleProjectManager,
			Required: []entity.Requirement{
				{Check: atLeast(manageYears, 3), Failure: "Needs at least 3 years managing software projects"},
				{Check: atLeast(agileProjectYears, 2), Failure: "Needs at least 2 years of Agile project experience"},
				{Check: hasCertification(valueobject.CertificationPMILean), Failure: "Required qualification is PMI Lean Project Management Certification"},
			},
		},
		{
			Title: TitleSeniorKnowledgeEngineer,
			Required: []entity.Requirement{
				{Check: atLeast(pythonYears, 4), Failure: "Needs at least 4 years of Python development"},
				{Check: atLeast(expertSystemYears, 2), Failure: "Needs at least 2 years developing Expert Systems"},
				{Check: atLeast(dataArchYears, 2), Failure: "Needs at least 2 years in data architecture and data development"},
				{Check: hasDegree(valueobject.DegreeLevelMasters), Failure: "Required qualification is Masters in CS"},
			},
		},
	}
}

func pythonYears(a *entity.Applicant) int       { return a.PythonYears }
func dataDevYears(a *entity.Applicant) int      { return a.DataDevYears }
func agileProjectYears(a *entity.Applicant) int { return a.AgileProjectYears }
func manageYears(a *entity.Applicant) int       { return a.ManageYears }
func expertSystemYears(a *entity.Applicant) int { return a.ExpertSystemYears }
func dataArchYears(a *entity.Applicant) int     { return a.DataArchYears }

func atLeast(years func(*entity.Applicant) int, min int) entity.Predicate {
	return func(a *entity.Applicant) bool {
		return years(a) >= min
	}
}

func hasDegree(level valueobject.DegreeLevel) entity.Predicate {
	return func(a *entity.Applicant) bool {
		return a.Degree.Satisfies(level)
	}
}

func hasCertification(cert valueobject.Certification) entity.Predicate {
	return func(a *entity.Applicant) bool {
		return a.Certification == cert
	}
}
