package handler

import (
	"errors"
	"net/http"

	"esgweb/internal/form"
	"esgweb/internal/schema"
	"esgweb/internal/session"

	"github.com/rs/zerolog/log"
)

type loginData struct {
	Form   form.LoginForm
	Errors form.Errors
}

func (p *Pages) LoginPage(w http.ResponseWriter, r *http.Request) {
	if _, ok := session.FromContext(r.Context()); ok {
		p.redirect(w, r, "/")
		return
	}
	p.render(w, r, http.StatusOK, "login", "Sign in", loginData{})
}

func (p *Pages) Login(w http.ResponseWriter, r *http.Request) {
	var f form.LoginForm
	if err := form.Decode(r, &f); err != nil {
		p.render(w, r, http.StatusBadRequest, "login", "Sign in", loginData{Errors: form.Errors{"_": "Couldn't read the form"}})
		return
	}
	if errs, ok := f.Ok(); !ok {
		p.render(w, r, http.StatusUnprocessableEntity, "login", "Sign in", loginData{Form: f, Errors: errs})
		return
	}

	s, err := p.Sessions.Login(r.Context(), f.Email, f.Password)
	if err != nil {
		f.Password = ""
		if errors.Is(err, session.ErrInvalidCredentials) {
			p.render(w, r, http.StatusUnauthorized, "login", "Sign in", loginData{Form: f, Errors: form.Errors{"_": "Invalid email or password"}})
			return
		}
		log.Error().Err(err).Msg("login failed")
		p.render(w, r, http.StatusBadGateway, "login", "Sign in", loginData{Form: f, Errors: form.Errors{"_": "Sign in is unavailable, try again later"}})
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     session.CookieName,
		Value:    s.ID,
		Path:     "/",
		Expires:  s.ExpiresAt,
		HttpOnly: true,
		Secure:   p.SecureCookies,
		SameSite: http.SameSiteLaxMode,
	})
	p.Toasts.Push(session.WithSession(r.Context(), s), schema.Toast{Level: schema.ToastInfo, Message: "Signed in as " + s.Email})
	p.redirect(w, r, "/")
}

func (p *Pages) Logout(w http.ResponseWriter, r *http.Request) {
	if id := session.IDFromContext(r.Context()); id != "" {
		if err := p.Sessions.Logout(r.Context(), id); err != nil {
			log.Error().Err(err).Msg("couldn't delete session")
		}
	}
	http.SetCookie(w, &http.Cookie{Name: session.CookieName, Value: "", Path: "/", MaxAge: -1})
	p.redirect(w, r, "/login")
}
