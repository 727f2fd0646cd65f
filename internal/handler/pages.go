package handler

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"strconv"
	"time"

	"esgweb/internal/schema"
	"esgweb/internal/session"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"
)

//go:embed templates static
var assets embed.FS

var pageFiles = map[string]string{
	"login":          "login.html",
	"dashboard":      "dashboard.html",
	"scope2":         "scope2.html",
	"risk":           "risk.html",
	"partners":       "partners.html",
	"partner_new":    "partner_new.html",
	"partner_detail": "partner_detail.html",
}

var reportFiles = map[string]string{
	reportScope2: "report_scope2.html",
	reportRisk:   "report_risk.html",
}

var funcs = template.FuncMap{
	"date": func(t time.Time) string {
		if t.IsZero() {
			return ""
		}
		return t.Format("2006-01-02")
	},
	"add": func(a, b int) int {
		return a + b
	},
}

// Deps collaborators of the server-rendered pages
type Deps struct {
	Partners        partnerHook
	Materials       materialHook
	Scope2          scope2Hook
	Risk            riskHook
	Registry        registryGetter
	Reports         reportGenerator
	Toasts          toastStore
	Sessions        sessionStore
	Catalog         emissionCatalog
	RegistryTimeout time.Duration
	SecureCookies   bool
}

// Pages server-rendered dashboard, forms and downloads
type Pages struct {
	Deps
	pages   map[string]*template.Template
	reports map[string]*template.Template
	now     func() time.Time
}

// view data handed to the layout
type view struct {
	Title  string
	Active string
	User   string
	Toasts []schema.Toast
	Data   any
}

func NewPages(deps Deps) (*Pages, error) {
	p := &Pages{
		Deps:    deps,
		pages:   make(map[string]*template.Template, len(pageFiles)),
		reports: make(map[string]*template.Template, len(reportFiles)),
		now:     time.Now,
	}

	for name, file := range pageFiles {
		tpl, err := template.New(file).Funcs(funcs).ParseFS(assets,
			"templates/layout.html",
			"templates/partials.html",
			"templates/"+file,
		)
		if err != nil {
			return nil, fmt.Errorf("parse page %s: %w", name, err)
		}
		p.pages[name] = tpl
	}
	for name, file := range reportFiles {
		tpl, err := template.New(file).Funcs(funcs).ParseFS(assets, "templates/"+file)
		if err != nil {
			return nil, fmt.Errorf("parse report %s: %w", name, err)
		}
		p.reports[name] = tpl
	}
	return p, nil
}

// RegisterPublic routes reachable without a session, login posts go through loginLimit
func (p *Pages) RegisterPublic(r *mux.Router, loginLimit func(http.Handler) http.Handler) {
	static, _ := fs.Sub(assets, "static")
	r.PathPrefix("/static/").Handler(http.StripPrefix("/static/", http.FileServer(http.FS(static))))
	r.HandleFunc("/login", p.LoginPage).Methods(http.MethodGet)
	r.Handle("/login", loginLimit(http.HandlerFunc(p.Login))).Methods(http.MethodPost)
}

// Register routes requiring a session
func (p *Pages) Register(r *mux.Router) {
	r.HandleFunc("/logout", p.Logout).Methods(http.MethodPost)
	r.HandleFunc("/", p.Dashboard).Methods(http.MethodGet)
	r.HandleFunc("/charts/{name:monthly|category}", p.Chart).Methods(http.MethodGet)

	r.HandleFunc("/scope2", p.Scope2Page).Methods(http.MethodGet)
	r.HandleFunc("/scope2", p.SubmitScope2).Methods(http.MethodPost)

	r.HandleFunc("/financialRisk", p.RiskPage).Methods(http.MethodGet, http.MethodPost)

	r.HandleFunc("/managePartner", p.PartnerList).Methods(http.MethodGet)
	r.HandleFunc("/managePartner/search.json", p.PartnerSearch).Methods(http.MethodGet)
	r.HandleFunc("/managePartner/export.xlsx", p.PartnerExport).Methods(http.MethodGet)
	r.HandleFunc("/managePartner/new", p.NewPartnerPage).Methods(http.MethodGet)
	r.HandleFunc("/managePartner/new", p.CreatePartner).Methods(http.MethodPost)
	r.HandleFunc("/managePartner/{id:[0-9]+}", p.PartnerDetail).Methods(http.MethodGet)
	r.HandleFunc("/managePartner/{id:[0-9]+}", p.UpdatePartner).Methods(http.MethodPost)
	r.HandleFunc("/managePartner/{id:[0-9]+}/delete", p.DeletePartner).Methods(http.MethodPost)
	r.HandleFunc("/managePartner/{id:[0-9]+}/materials", p.AssignMaterial).Methods(http.MethodPost)
	r.HandleFunc("/managePartner/{id:[0-9]+}/materials/batch", p.AssignMaterials).Methods(http.MethodPost)

	r.HandleFunc("/report/{kind:scope2|financialRisk}.pdf", p.Report).Methods(http.MethodGet)
}

func (p *Pages) render(w http.ResponseWriter, r *http.Request, status int, name, title string, data any) {
	tpl, ok := p.pages[name]
	if !ok {
		log.Error().Str("page", name).Msg("unknown page")
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	v := view{
		Title:  title,
		Active: name,
		Toasts: p.Toasts.Pop(r.Context()),
		Data:   data,
	}
	if s, ok := session.FromContext(r.Context()); ok {
		v.User = s.Email
	}

	var buf bytes.Buffer
	if err := tpl.ExecuteTemplate(&buf, "layout", v); err != nil {
		log.Error().Err(err).Str("page", name).Msg("couldn't render page")
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		log.Warn().Err(err).Str("page", name).Msg("couldn't write page")
	}
}

func (p *Pages) redirect(w http.ResponseWriter, r *http.Request, location string) {
	http.Redirect(w, r, location, http.StatusSeeOther)
}

func (p *Pages) toast(r *http.Request, level schema.ToastLevel, message string) {
	p.Toasts.Push(r.Context(), schema.Toast{Level: level, Message: message})
}

func intParam(r *http.Request, key string, def int) int {
	v, err := strconv.Atoi(r.URL.Query().Get(key))
	if err != nil {
		return def
	}
	return v
}

func idParam(r *http.Request) int64 {
	id, _ := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	return id
}
