package apiproxy

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httputil"
	"net/url"
	"strings"

	"esgweb/internal/session"

	"github.com/rs/zerolog/log"
)

// PathPrefix browser requests under this prefix are forwarded unchanged to the backend
const PathPrefix = "/api/v1/csddd/"

type errorBody struct {
	Message string `json:"message"`
}

// New reverse proxy to backendURL keeping path and query of the incoming request
func New(backendURL string) (*httputil.ReverseProxy, error) {
	target, err := url.Parse(backendURL)
	if err != nil {
		return nil, fmt.Errorf("parse backend url: %w", err)
	}
	if target.Scheme == "" || target.Host == "" {
		return nil, fmt.Errorf("backend url %q must be absolute", backendURL)
	}

	return &httputil.ReverseProxy{
		Rewrite: func(pr *httputil.ProxyRequest) {
			pr.SetURL(target)
			pr.SetXForwarded()
			stripSessionCookie(pr.Out)
			if pr.Out.Header.Get("Authorization") != "" {
				return
			}
			if s, ok := session.FromContext(pr.In.Context()); ok && s.Token != "" {
				pr.Out.Header.Set("Authorization", "Bearer "+s.Token)
			}
		},
		ErrorHandler: func(w http.ResponseWriter, r *http.Request, err error) {
			log.Error().Err(err).Str("path", r.URL.Path).Msg("backend proxy failed")
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadGateway)
			_ = json.NewEncoder(w).Encode(errorBody{Message: "backend unavailable"})
		},
	}, nil
}

func stripSessionCookie(r *http.Request) {
	cookies := r.Cookies()
	if len(cookies) == 0 {
		return
	}
	kept := make([]string, 0, len(cookies))
	for _, c := range cookies {
		if c.Name != session.CookieName {
			kept = append(kept, c.Name+"="+c.Value)
		}
	}
	if len(kept) == 0 {
		r.Header.Del("Cookie")
		return
	}
	r.Header.Set("Cookie", strings.Join(kept, "; "))
}
