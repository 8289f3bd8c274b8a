package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/ignatzorin/job-qualifier/internal/domain/entity"
	"github.com/ignatzorin/job-qualifier/internal/domain/valueobject"
	"github.com/ignatzorin/job-qualifier/internal/validation"
)

// checkboxOn это значение отмеченного чекбокса в HTML форме.
const checkboxOn = "on"

// YearFieldView описывает поле стажа для шаблона.
type YearFieldView struct {
	Key   string
	Label string
	Value string
}

// FlagView описывает чекбокс для шаблона.
type FlagView struct {
	Key     string
	Label   string
	Checked bool
}

// FormPage содержит данные для шаблона index.html.
type FormPage struct {
	Errors         []string
	Evaluation     *entity.Evaluation
	Degree         string
	Certification  string
	Degrees        []string
	Certifications []string
	YearFields     []YearFieldView
	Flags          []FlagView
}

// readApplicantForm читает поля формы из POST запроса.
func readApplicantForm(c *gin.Context) validation.ApplicantInput {
	in := validation.ApplicantInput{
		Degree:                c.PostForm(validation.FieldDegree),
		Certification:         c.PostForm(validation.FieldCertification),
		Years:                 make(map[string]string),
		PythonCoursework:      c.PostForm(validation.FieldPythonCoursework) == checkboxOn,
		SoftwareEngCoursework: c.PostForm(validation.FieldSoftwareEngCoursework) == checkboxOn,
		AgileCourse:           c.PostForm(validation.FieldAgileCourse) == checkboxOn,
		UsedGit:               c.PostForm(validation.FieldUsedGit) == checkboxOn,
	}
	for _, f := range validation.YearFields() {
		in.Years[f.Key] = c.PostForm(f.Key)
	}
	return in.Normalize()
}

// newFormPage заполняет страницу значениями, введёнными пользователем.
func newFormPage(in validation.ApplicantInput) FormPage {
	page := FormPage{
		Degree:        in.Degree,
		Certification: in.Certification,
	}

	for _, d := range valueobject.AllowedDegrees() {
		page.Degrees = append(page.Degrees, string(d))
	}
	for _, cert := range valueobject.AllowedCertifications() {
		page.Certifications = append(page.Certifications, string(cert))
	}
	for _, f := range validation.YearFields() {
		page.YearFields = append(page.YearFields, YearFieldView{Key: f.Key, Label: f.Label, Value: in.Year(f.Key)})
	}

	page.Flags = []FlagView{
		{Key: validation.FieldPythonCoursework, Label: "Completed Python coursework", Checked: in.PythonCoursework},
		{Key: validation.FieldSoftwareEngCoursework, Label: "Completed Software Engineering coursework", Checked: in.SoftwareEngCoursework},
		{Key: validation.FieldAgileCourse, Label: "Completed an Agile course", Checked: in.AgileCourse},
		{Key: validation.FieldUsedGit, Label: "Have used Git", Checked: in.UsedGit},
	}

	return page
}
