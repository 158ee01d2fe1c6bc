package email

import (
	"bytes"
	"embed"
	"fmt"
	htmltemplate "html/template"
	"strings"
	texttemplate "text/template"

	"explorewithme/internal/domain"
)

//go:embed templates/*
var templateFS embed.FS

// Each mail is three files in templates/: <name>_subject.txt, <name>.html and <name>.txt.
const (
	subjectSuffix = "_subject.txt"
	htmlSuffix    = ".html"
	textSuffix    = ".txt"
)

// templateRenderer holds the embedded templates, parsed once. HTML files go
// through html/template so event titles and user names are escaped.
type templateRenderer struct {
	html *htmltemplate.Template
	text *texttemplate.Template
}

// NewTemplateRenderer parses the embedded templates. It panics if they do not parse.
func NewTemplateRenderer() domain.EmailTemplateRenderer {
	return &templateRenderer{
		html: htmltemplate.Must(htmltemplate.ParseFS(templateFS, "templates/*"+htmlSuffix)),
		text: texttemplate.Must(texttemplate.ParseFS(templateFS, "templates/*"+textSuffix)),
	}
}

func (r *templateRenderer) Render(templateName string, data any) (subject, htmlBody, textBody string, err error) {
	if subject, err = r.execText(templateName+subjectSuffix, data); err != nil {
		return "", "", "", fmt.Errorf("render %s subject: %w", templateName, err)
	}
	if htmlBody, err = r.execHTML(templateName+htmlSuffix, data); err != nil {
		return "", "", "", fmt.Errorf("render %s html: %w", templateName, err)
	}
	if textBody, err = r.execText(templateName+textSuffix, data); err != nil {
		return "", "", "", fmt.Errorf("render %s text: %w", templateName, err)
	}
	return strings.TrimSpace(subject), htmlBody, textBody, nil
}

func (r *templateRenderer) execHTML(name string, data any) (string, error) {
	t := r.html.Lookup(name)
	if t == nil {
		return "", fmt.Errorf("template %s not found", name)
	}
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func (r *templateRenderer) execText(name string, data any) (string, error) {
	t := r.text.Lookup(name)
	if t == nil {
		return "", fmt.Errorf("template %s not found", name)
	}
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
