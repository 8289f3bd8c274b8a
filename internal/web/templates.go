package web

import (
	"embed"
	"html/template"
)

// IndexTemplate это имя шаблона страницы с формой.
const IndexTemplate = "index.html"

//go:embed templates/*.html
var templatesFS embed.FS

// ParseTemplates разбирает встроенные HTML шаблоны.
func ParseTemplates() (*template.Template, error) {
	return template.New("").ParseFS(templatesFS, "templates/*.html")
}

// MustParseTemplates паникует, если встроенные шаблоны не разбираются.
func MustParseTemplates() *template.Template {
	return template.Must(ParseTemplates())
}
