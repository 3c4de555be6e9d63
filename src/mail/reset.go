package mail

import (
	"bytes"
	"html/template"
)

const ResetSubject = "Password Reset Request - FindIt App"

var resetTemplate = template.Must(template.New("reset").Parse(`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h1 style="color: #3b0b40;">Password Reset</h1>
  <p>You requested a password reset for your FindIt account.</p>
  <p>Please use one of the links below to reset your password. The link is valid for 1 hour.</p>
  <p><a href="{{.AppURL}}">Reset in App</a> &middot; <a href="{{.WebURL}}">Reset in Browser</a></p>
  <p style="color: #666; font-size: 14px;">If you did not request this, please ignore this email and your password will remain unchanged.</p>
  <p style="color: #666; font-size: 14px; word-break: break-all;">Mobile App: {{.AppURL}}</p>
  <p style="color: #666; font-size: 14px; word-break: break-all;">Web Browser: {{.WebURL}}</p>
</div>`))

type ResetLinks struct {
	AppURL string
	WebURL string
}

// NewResetLinks builds the deep link and the web link for token.
func NewResetLinks(frontendURL, token string) ResetLinks {
	return ResetLinks{
		AppURL: "findit://reset-password/" + token,
		WebURL: frontendURL + "/reset-password/" + token,
	}
}

// RenderReset fills the reset email. The app link uses the findit:// scheme,
// which html/template would otherwise replace as unsafe.
func RenderReset(links ResetLinks) (string, error) {
	data := struct {
		AppURL template.URL
		WebURL string
	}{
		AppURL: template.URL(links.AppURL),
		WebURL: links.WebURL,
	}
	var buf bytes.Buffer
	if err := resetTemplate.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
