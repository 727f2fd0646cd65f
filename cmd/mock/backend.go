package main

import (
	"encoding/json"
	"fmt"
	"hash/fnv"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"esgweb/internal/dto/auth_dto"
	"esgweb/internal/dto/dart_dto"
	"esgweb/internal/dto/material_dto"
	"esgweb/internal/dto/partner_dto"
	"esgweb/internal/dto/risk_dto"
	"esgweb/internal/dto/scope2_dto"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"
)

const tokenPrefix = "mock-"

// backend in-memory stand-in for the CSDDD api
type backend struct {
	mu        sync.Mutex
	password  string
	latency   time.Duration
	nextID    int64
	partners  map[int64]partner_dto.Partner
	materials map[int64][]material_dto.AssignmentResponse
	scope2    []scope2_dto.Record
	now       func() time.Time
}

func newBackend(password string, latency time.Duration) *backend {
	return &backend{
		password:  password,
		latency:   latency,
		partners:  make(map[int64]partner_dto.Partner),
		materials: make(map[int64][]material_dto.AssignmentResponse),
		now:       time.Now,
	}
}

func (b *backend) routes() *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/api/v1/auth/login", b.login).Methods(http.MethodPost)

	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(b.requireToken)
	api.HandleFunc("/partners", b.listPartners).Methods(http.MethodGet)
	api.HandleFunc("/partners", b.createPartner).Methods(http.MethodPost)
	api.HandleFunc("/partners/{id:[0-9]+}", b.getPartner).Methods(http.MethodGet)
	api.HandleFunc("/partners/{id:[0-9]+}", b.updatePartner).Methods(http.MethodPut)
	api.HandleFunc("/partners/{id:[0-9]+}", b.deletePartner).Methods(http.MethodDelete)
	api.HandleFunc("/partners/{id:[0-9]+}/materials", b.listMaterials).Methods(http.MethodGet)
	api.HandleFunc("/partners/{id:[0-9]+}/materials", b.assignMaterial).Methods(http.MethodPost)
	api.HandleFunc("/partners/{id:[0-9]+}/materials/batch", b.assignMaterials).Methods(http.MethodPost)
	api.HandleFunc("/partners/{id:[0-9]+}/financial-risk", b.financialRisk).Methods(http.MethodGet)
	api.HandleFunc("/dart/companies/lookup", b.lookupCompanies).Methods(http.MethodPost)
	api.HandleFunc("/scope2/emissions", b.listScope2).Methods(http.MethodGet)
	api.HandleFunc("/scope2/emissions", b.submitScope2).Methods(http.MethodPost)
	return r
}

func (b *backend) requireToken(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasPrefix(r.Header.Get("Authorization"), "Bearer "+tokenPrefix) {
			writeError(w, http.StatusUnauthorized, "missing or invalid token")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (b *backend) login(w http.ResponseWriter, r *http.Request) {
	var request auth_dto.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if request.Email == "" || request.Password != b.password {
		writeError(w, http.StatusUnauthorized, "invalid email or password")
		return
	}
	writeJSON(w, http.StatusOK, auth_dto.LoginResponse{AccessToken: tokenPrefix + uuid.NewString(), ExpiresIn: 3600})
}

func (b *backend) listPartners(w http.ResponseWriter, r *http.Request) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	size, err := strconv.Atoi(r.URL.Query().Get("size"))
	if err != nil || size <= 0 {
		size = 20
	}
	keyword := strings.ToLower(r.URL.Query().Get("companyName"))

	b.mu.Lock()
	matched := make([]partner_dto.Partner, 0, len(b.partners))
	for _, p := range b.partners {
		if keyword == "" || strings.Contains(strings.ToLower(p.CompanyName), keyword) {
			matched = append(matched, p)
		}
	}
	b.mu.Unlock()
	sort.Slice(matched, func(i, j int) bool { return matched[i].ID < matched[j].ID })

	total := len(matched)
	from := min(page*size, total)
	to := min(from+size, total)
	writeJSON(w, http.StatusOK, partner_dto.Page{
		Content:       matched[from:to],
		Number:        page,
		Size:          size,
		TotalPages:    (total + size - 1) / size,
		TotalElements: int64(total),
	})
}

func (b *backend) createPartner(w http.ResponseWriter, r *http.Request) {
	var p partner_dto.Partner
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil || p.CompanyName == "" || p.BusinessNumber == "" {
		writeError(w, http.StatusBadRequest, "companyName and businessNumber are required")
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	for _, existing := range b.partners {
		if existing.BusinessNumber == p.BusinessNumber {
			writeError(w, http.StatusConflict, "partner with this business number already exists")
			return
		}
	}
	b.nextID++
	p.ID = b.nextID
	p.CreatedAt = b.now().UTC().Format(time.RFC3339)
	if p.Status == "" {
		p.Status = "ACTIVE"
	}
	b.partners[p.ID] = p
	writeJSON(w, http.StatusCreated, p)
}

func (b *backend) getPartner(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	p, ok := b.partners[pathID(r)]
	b.mu.Unlock()
	if !ok {
		writeError(w, http.StatusNotFound, "partner not found")
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (b *backend) updatePartner(w http.ResponseWriter, r *http.Request) {
	id := pathID(r)
	var p partner_dto.Partner
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	existing, ok := b.partners[id]
	if !ok {
		writeError(w, http.StatusNotFound, "partner not found")
		return
	}
	p.ID = id
	p.CreatedAt = existing.CreatedAt
	b.partners[id] = p
	writeJSON(w, http.StatusOK, p)
}

func (b *backend) deletePartner(w http.ResponseWriter, r *http.Request) {
	id := pathID(r)

	b.mu.Lock()
	defer b.mu.Unlock()
	if _, ok := b.partners[id]; !ok {
		writeError(w, http.StatusNotFound, "partner not found")
		return
	}
	delete(b.partners, id)
	delete(b.materials, id)
	w.WriteHeader(http.StatusNoContent)
}

func (b *backend) listMaterials(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	assignments := append([]material_dto.AssignmentResponse{}, b.materials[pathID(r)]...)
	b.mu.Unlock()
	writeJSON(w, http.StatusOK, material_dto.BatchResponse{Assignments: assignments})
}

func (b *backend) assignMaterial(w http.ResponseWriter, r *http.Request) {
	var request material_dto.AssignmentRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	saved, status, msg := b.assign(pathID(r), []material_dto.AssignmentRequest{request})
	if status != http.StatusOK {
		writeError(w, status, msg)
		return
	}
	writeJSON(w, http.StatusCreated, saved[0])
}

func (b *backend) assignMaterials(w http.ResponseWriter, r *http.Request) {
	var request material_dto.BatchRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil || len(request.Assignments) == 0 {
		writeError(w, http.StatusBadRequest, "assignments are required")
		return
	}
	saved, status, msg := b.assign(pathID(r), request.Assignments)
	if status != http.StatusOK {
		writeError(w, status, msg)
		return
	}
	writeJSON(w, http.StatusCreated, material_dto.BatchResponse{Assignments: saved})
}

func (b *backend) assign(partnerID int64, requests []material_dto.AssignmentRequest) ([]material_dto.AssignmentResponse, int, string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, ok := b.partners[partnerID]; !ok {
		return nil, http.StatusNotFound, "partner not found"
	}
	saved := make([]material_dto.AssignmentResponse, 0, len(requests))
	for _, request := range requests {
		if request.MaterialCode == "" || request.MaterialName == "" {
			return nil, http.StatusBadRequest, "materialCode and materialName are required"
		}
		b.nextID++
		saved = append(saved, material_dto.AssignmentResponse{
			ID:             b.nextID,
			PartnerID:      partnerID,
			MaterialCode:   request.MaterialCode,
			MaterialName:   request.MaterialName,
			Category:       request.Category,
			Unit:           request.Unit,
			EmissionFactor: request.EmissionFactor,
		})
	}
	b.materials[partnerID] = append(b.materials[partnerID], saved...)
	return saved, http.StatusOK, ""
}

func (b *backend) financialRisk(w http.ResponseWriter, r *http.Request) {
	id := pathID(r)
	year, err := strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil || year == 0 {
		year = b.now().Year() - 1
	}

	b.mu.Lock()
	p, ok := b.partners[id]
	b.mu.Unlock()
	if !ok {
		writeError(w, http.StatusNotFound, "partner not found")
		return
	}

	seed := hash(fmt.Sprintf("%d-%d", id, year))
	ratio := func(shift uint32, base, spread float64) float64 {
		return base + float64((seed>>shift)%1000)/1000*spread
	}
	items := []risk_dto.Item{
		{ItemName: "Debt ratio", Description: "Total liabilities over equity, %", ActualValue: ratio(0, 40, 300), Threshold: 200},
		{ItemName: "Current ratio", Description: "Current assets over current liabilities", ActualValue: ratio(4, 0.3, 2.5), Threshold: 1},
		{ItemName: "Interest coverage", Description: "Operating income over interest expense", ActualValue: ratio(8, -1, 10), Threshold: 1},
		{ItemName: "Operating margin", Description: "Operating income over revenue, %", ActualValue: ratio(12, -10, 30), Threshold: 0},
	}
	items[0].AtRisk = items[0].ActualValue > items[0].Threshold
	for i := 1; i < len(items); i++ {
		items[i].AtRisk = items[i].ActualValue < items[i].Threshold
	}

	writeJSON(w, http.StatusOK, risk_dto.Response{
		PartnerID:   id,
		PartnerName: p.CompanyName,
		FiscalYear:  year,
		Items:       items,
	})
}

// lookupCompanies resolves numbers whose checksum is even, the rest are unknown to DART
func (b *backend) lookupCompanies(w http.ResponseWriter, r *http.Request) {
	var request dart_dto.RequestBody
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	time.Sleep(b.latency)

	classes := []string{"Y", "K", "N", "E"}
	rows := make([]dart_dto.ResponseRow, 0, len(request.Rows))
	for _, row := range request.Rows {
		h := hash(row.RegistrationNumber)
		if h%2 == 1 {
			continue
		}
		rows = append(rows, dart_dto.ResponseRow{
			RegistrationNumber: row.RegistrationNumber,
			Company: dart_dto.Company{
				CorpCode:  fmt.Sprintf("%08d", h%100000000),
				CorpName:  "Company " + row.RegistrationNumber,
				CEOName:   "CEO " + strconv.Itoa(int(h%97)),
				Address:   "Seoul",
				StockCode: fmt.Sprintf("%06d", h%1000000),
				CorpCls:   classes[h%uint32(len(classes))],
			},
		})
	}
	writeJSON(w, http.StatusOK, dart_dto.ResponseBody{Rows: rows})
}

func (b *backend) listScope2(w http.ResponseWriter, r *http.Request) {
	year, _ := strconv.Atoi(r.URL.Query().Get("year"))

	b.mu.Lock()
	records := make([]scope2_dto.Record, 0, len(b.scope2))
	for _, record := range b.scope2 {
		if year == 0 || record.ReportingYear == year {
			records = append(records, record)
		}
	}
	b.mu.Unlock()
	writeJSON(w, http.StatusOK, scope2_dto.ListResponse{Records: records})
}

func (b *backend) submitScope2(w http.ResponseWriter, r *http.Request) {
	var request scope2_dto.SubmitRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil || request.FacilityName == "" || len(request.Rows) == 0 {
		writeError(w, http.StatusBadRequest, "facilityName and rows are required")
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	created := make([]scope2_dto.Record, 0, len(request.Rows))
	for _, row := range request.Rows {
		b.nextID++
		created = append(created, scope2_dto.Record{
			ID:             b.nextID,
			ReportingYear:  request.ReportingYear,
			ReportingMonth: request.ReportingMonth,
			FacilityName:   request.FacilityName,
			Category:       row.Category,
			RawMaterial:    row.RawMaterial,
			Unit:           row.Unit,
			Quantity:       row.Quantity,
			Emission:       row.Emission,
			CreatedAt:      b.now().UTC().Format(time.RFC3339),
		})
	}
	b.scope2 = append(b.scope2, created...)
	writeJSON(w, http.StatusCreated, scope2_dto.ListResponse{Records: created})
}

func pathID(r *http.Request) int64 {
	id, _ := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	return id
}

func hash(s string) uint32 {
	h := fnv.New32a()
	_, _ = h.Write([]byte(s))
	return h.Sum32()
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Error().Err(err).Msg("couldn't write response")
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, auth_dto.ErrorBody{Message: message})
}
