package templates

import (
	"bytes"
	"fmt"
	html "html/template"
	text "text/template"
)

// Rendered is the output of a template: ready-to-send subject and bodies.
type Rendered struct {
	Subject string
	Text    string
	HTML    string
}

const welcomeSubject = "Welcome to Crediya"

const welcomeText = `Hi {{.first_name}},

Your account has been created. You can now apply for loans and track your
requests from your profile.

The Crediya team`

const welcomeHTML = `<html><body>
<p>Hi {{.first_name}},</p>
<p>Your account has been created. You can now apply for loans and track your requests from your profile.</p>
<p>The Crediya team</p>
</body></html>`

var (
	welcomeTextTpl = text.Must(text.New("welcome_text").Parse(welcomeText))
	welcomeHTMLTpl = html.Must(html.New("welcome_html").Parse(welcomeHTML))
)

// Render renders a named template with the given data.
func Render(name string, data map[string]any) (Rendered, error) {
	switch name {
	case "welcome":
		var txt, htm bytes.Buffer
		if err := welcomeTextTpl.Execute(&txt, data); err != nil {
			return Rendered{}, err
		}
		if err := welcomeHTMLTpl.Execute(&htm, data); err != nil {
			return Rendered{}, err
		}
		return Rendered{Subject: welcomeSubject, Text: txt.String(), HTML: htm.String()}, nil
	default:
		return Rendered{}, fmt.Errorf("unknown email template %q", name)
	}
}
