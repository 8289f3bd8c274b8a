package entity

import "github.com/ignatzorin/job-qualifier/internal/domain/valueobject"

// Applicant содержит проверенные данные соискателя. Живёт в пределах одного запроса.
type Applicant struct {
	Degree        valueobject.Degree
	Certification valueobject.Certification

	PythonYears       int
	DataDevYears      int
	AgileProjectYears int
	ManageYears       int
	ExpertSystemYears int
	DataArchYears     int

	PythonCoursework      bool
	SoftwareEngCoursework bool
	AgileCourse           bool
	UsedGit               bool
}
