// Package views renders the HTML pages of the application.
package views

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"

	"github.com/sbilibin2017/gw-lesson-planner/internal/models"
)

// Page names.
const (
	PageLogin       = "login"
	PageRegister    = "register"
	PageDashboard   = "dashboard"
	PageCreateClass = "create_class"
	PageCourse      = "course"
	PageAddLesson   = "add_lesson"
)

var pageNames = []string{
	PageLogin,
	PageRegister,
	PageDashboard,
	PageCreateClass,
	PageCourse,
	PageAddLesson,
}

//go:embed templates/*.html
var templatesFS embed.FS

// Page is the data every template receives.
type Page struct {
	Authenticated bool
	Flashes       []string
	Courses       []models.Course
	Course        *models.Course
	Lessons       []models.Lesson
}

var funcs = template.FuncMap{
	"deref": deref,
}

// deref returns the value behind an optional field, or "" when it is unset.
func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// Renderer executes the embedded page templates.
type Renderer struct {
	pages map[string]*template.Template
}

// New parses every page together with the shared layout.
func New() (*Renderer, error) {
	pages := make(map[string]*template.Template, len(pageNames))
	for _, name := range pageNames {
		t, err := template.New("layout.html").Funcs(funcs).
			ParseFS(templatesFS, "templates/layout.html", "templates/"+name+".html")
		if err != nil {
			return nil, fmt.Errorf("parse %s template: %w", name, err)
		}
		pages[name] = t
	}
	return &Renderer{pages: pages}, nil
}

// Render writes the named page with the given status. Nothing is written
// when the template fails.
func (r *Renderer) Render(w http.ResponseWriter, status int, name string, page Page) error {
	t, ok := r.pages[name]
	if !ok {
		return fmt.Errorf("unknown page %q", name)
	}

	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout", page); err != nil {
		return fmt.Errorf("render %s: %w", name, err)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, err := buf.WriteTo(w)
	return err
}
