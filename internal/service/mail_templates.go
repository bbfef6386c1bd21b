package service

import (
	"bytes"
	"fmt"
	htmltemplate "html/template"
	"net/url"
	"strings"
	texttemplate "text/template"

	"github.com/MKhiriev/go-accounts/models"
)

const verificationSubject = "Verify email"

const verificationHTML = `<!DOCTYPE html>
<html>
<body>
<p>Hello{{if .Name}}, {{.Name}}{{end}}!</p>
<p>Please confirm your e-mail address to finish the registration.</p>
<p><a target="_blank" href="{{.Link}}">Verify email</a></p>
<p>If you did not create an account, ignore this message.</p>
</body>
</html>
`

const verificationText = `Hello{{if .Name}}, {{.Name}}{{end}}!

Please confirm your e-mail address to finish the registration:
{{.Link}}

If you did not create an account, ignore this message.
`

var (
	verificationHTMLTemplate = htmltemplate.Must(htmltemplate.New("verification.html").Parse(verificationHTML))
	verificationTextTemplate = texttemplate.Must(texttemplate.New("verification.txt").Parse(verificationText))
)

type verificationData struct {
	Name string
	Link string
}

// verificationLink returns "{baseURL}/api/users/verify/{token}".
func verificationLink(baseURL, verificationToken string) string {
	return strings.TrimRight(baseURL, "/") + "/api/users/verify/" + url.PathEscape(verificationToken)
}

// newVerificationEmail renders the verification message for user.
func newVerificationEmail(baseURL string, user models.User) (models.Email, error) {
	data := verificationData{
		Name: user.Name,
		Link: verificationLink(baseURL, user.VerificationToken),
	}

	var html, text bytes.Buffer
	if err := verificationHTMLTemplate.Execute(&html, data); err != nil {
		return models.Email{}, fmt.Errorf("error rendering verification email: %w", err)
	}
	if err := verificationTextTemplate.Execute(&text, data); err != nil {
		return models.Email{}, fmt.Errorf("error rendering verification email: %w", err)
	}

	return models.Email{
		To:      user.Email,
		Subject: verificationSubject,
		HTML:    html.String(),
		Text:    text.String(),
	}, nil
}
