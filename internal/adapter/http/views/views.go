package views

import (
	"embed"
	"html/template"
)

//go:embed templates/*.html
var templateFS embed.FS

const (
	LandingPage       = "landing.html"
	WizardPage        = "wizard.html"
	WizardSuccessPage = "wizard_success.html"
	TrackPage         = "track.html"
)

// Templates parses the embedded page templates. Each page file is addressed
// by its base name.
func Templates() (*template.Template, error) {
	return template.New("").ParseFS(templateFS, "templates/*.html")
}

func MustTemplates() *template.Template {
	return template.Must(Templates())
}

type ToastKind string

const (
	ToastSuccess ToastKind = "success"
	ToastError   ToastKind = "error"
)

// Toast is a one-shot notification shown at the top of a page.
type Toast struct {
	Kind    ToastKind
	Message string
}

func ErrorToast(msg string) *Toast {
	return &Toast{Kind: ToastError, Message: msg}
}

func SuccessToast(msg string) *Toast {
	return &Toast{Kind: ToastSuccess, Message: msg}
}
