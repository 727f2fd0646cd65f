package middleware

import (
	"errors"
	"net/http"
	"strings"

	"esgweb/internal/session"

	"github.com/rs/zerolog/log"
)

// Session attaches the session named by the request cookie, stale cookies are cleared
func Session(loader sessionLoader) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(session.CookieName)
			if err != nil || cookie.Value == "" {
				next.ServeHTTP(w, r)
				return
			}

			s, err := loader.Load(r.Context(), cookie.Value)
			if err != nil {
				if !errors.Is(err, session.ErrExpired) {
					log.Error().Err(err).Msg("couldn't load session")
				}
				http.SetCookie(w, &http.Cookie{Name: session.CookieName, Value: "", Path: "/", MaxAge: -1})
				next.ServeHTTP(w, r)
				return
			}

			next.ServeHTTP(w, r.WithContext(session.WithSession(r.Context(), s)))
		})
	}
}

// RequireAuth sends anonymous page requests to /login, api requests get 401
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := session.FromContext(r.Context()); ok {
			next.ServeHTTP(w, r)
			return
		}
		if strings.HasPrefix(r.URL.Path, "/api/") {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"message":"login required"}`))
			return
		}
		http.Redirect(w, r, "/login", http.StatusSeeOther)
	})
}
