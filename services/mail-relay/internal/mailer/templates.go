package mailer

import (
	"bytes"
	"embed"
	"fmt"
	htmltemplate "html/template"
	"strings"
	texttemplate "text/template"
)

//go:embed templates/volunteer_application.html.tmpl templates/volunteer_application.txt.tmpl
var templateFS embed.FS

var (
	volunteerHTML = htmltemplate.Must(htmltemplate.ParseFS(templateFS, "templates/volunteer_application.html.tmpl"))
	volunteerText = texttemplate.Must(texttemplate.ParseFS(templateFS, "templates/volunteer_application.txt.tmpl"))
)

type Application struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Reason    string
}

type volunteerData struct {
	Application
	// Reason escaped and with newlines turned into <br> for the HTML body.
	ReasonHTML htmltemplate.HTML
}

// RenderVolunteerEmail produces the HTML and plain-text bodies for a
// volunteer application.
func RenderVolunteerEmail(app Application) (html, text string, err error) {
	escaped := htmltemplate.HTMLEscapeString(app.Reason)
	data := volunteerData{
		Application: app,
		ReasonHTML:  htmltemplate.HTML(strings.ReplaceAll(escaped, "\n", "<br>")),
	}

	var hb, tb bytes.Buffer
	if err := volunteerHTML.Execute(&hb, data); err != nil {
		return "", "", fmt.Errorf("render html template: %w", err)
	}
	if err := volunteerText.Execute(&tb, app); err != nil {
		return "", "", fmt.Errorf("render text template: %w", err)
	}
	return hb.String(), tb.String(), nil
}
