package emailtemplate

import (
	"bytes"
	"context"
	"embed"
	"html/template"
	"net/url"

	"github.com/d1d2-apps/ewallet-backend/internal/core/domain/user"
)

const PASSWORD_RESET_SUBJECT = "[eWallet] Password recovery"

//go:embed templates/*.html
var templates embed.FS

type passwordResetParams struct {
	Name      string
	ResetURL  string
	ExpiresIn string
}

type Renderer struct {
	passwordReset        *template.Template
	passwordResetBaseURL url.URL
}

func NewRenderer(passwordResetBaseURL url.URL) *Renderer {
	return &Renderer{
		passwordReset:        template.Must(template.ParseFS(templates, "templates/password_reset.html")),
		passwordResetBaseURL: passwordResetBaseURL,
	}
}

func (r *Renderer) RenderPasswordResetEmail(
	ctx context.Context,
	u user.User,
	token user.PasswordResetToken,
) (email user.PasswordResetEmail, err error) {
	var body bytes.Buffer
	err = r.passwordReset.Execute(&body, passwordResetParams{
		Name:      u.Name,
		ResetURL:  r.passwordResetBaseURL.JoinPath(string(token.ID)).String(),
		ExpiresIn: token.ExpiresIn.UTC().Format("2006-01-02 15:04 MST"),
	})
	if err != nil {
		return email, err
	}
	return user.PasswordResetEmail{
		Subject:  PASSWORD_RESET_SUBJECT,
		HTMLBody: body.String(),
	}, nil
}
