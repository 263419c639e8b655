package handler

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/spvm/records-api/internal/models"
	"github.com/spvm/records-api/internal/service"
	"github.com/spvm/records-api/pkg/config"
)

// In-memory stores backing a full router for end-to-end tests. They
// implement the same interfaces the sqlx repositories do.

type memOfficers struct {
	items  map[int64]*models.Officer
	nextID int64
}

func (m *memOfficers) add(o models.Officer) {
	if m.items == nil {
		m.items = make(map[int64]*models.Officer)
	}
	if o.ID == 0 {
		m.nextID++
		o.ID = m.nextID
	} else if o.ID > m.nextID {
		m.nextID = o.ID
	}
	cp := o
	m.items[o.ID] = &cp
}

func (m *memOfficers) List(ctx context.Context) ([]models.OfficerWithRank, error) {
	var out []models.OfficerWithRank
	for _, o := range m.items {
		out = append(out, models.OfficerWithRank{Officer: *o})
	}
	return out, nil
}

func (m *memOfficers) FindByID(ctx context.Context, id int64) (*models.Officer, error) {
	if o, ok := m.items[id]; ok {
		cp := *o
		return &cp, nil
	}
	return nil, sql.ErrNoRows
}

func (m *memOfficers) FindByUsername(ctx context.Context, username string) (*models.Officer, error) {
	for _, o := range m.items {
		if o.Username == username {
			cp := *o
			return &cp, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (m *memOfficers) ExistsByUsername(ctx context.Context, username string, excludeID int64) (bool, error) {
	for _, o := range m.items {
		if o.Username == username && o.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (m *memOfficers) ExistsByBadge(ctx context.Context, badge string, excludeID int64) (bool, error) {
	for _, o := range m.items {
		if o.BadgeNumber == badge && o.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (m *memOfficers) Create(ctx context.Context, officer *models.Officer) error {
	m.nextID++
	officer.ID = m.nextID
	cp := *officer
	if m.items == nil {
		m.items = make(map[int64]*models.Officer)
	}
	m.items[officer.ID] = &cp
	return nil
}

func (m *memOfficers) Update(ctx context.Context, officer *models.Officer) error {
	cp := *officer
	m.items[officer.ID] = &cp
	return nil
}

func (m *memOfficers) Delete(ctx context.Context, id int64) error {
	delete(m.items, id)
	return nil
}

func (m *memOfficers) SetDutyStatus(ctx context.Context, id int64, status models.DutyStatus) error {
	if o, ok := m.items[id]; ok {
		o.DutyStatus = status
		return nil
	}
	return sql.ErrNoRows
}

func (m *memOfficers) CountByRank(ctx context.Context, rankID int64) (int, error) {
	count := 0
	for _, o := range m.items {
		if o.RankID == rankID {
			count++
		}
	}
	return count, nil
}

type memRanks struct {
	items map[int64]*models.Rank
}

func (m *memRanks) List(ctx context.Context) ([]models.Rank, error) {
	var out []models.Rank
	for _, r := range m.items {
		out = append(out, *r)
	}
	return out, nil
}

func (m *memRanks) FindByID(ctx context.Context, id int64) (*models.Rank, error) {
	if r, ok := m.items[id]; ok {
		cp := *r
		return &cp, nil
	}
	return nil, sql.ErrNoRows
}

func (m *memRanks) ExistsByName(ctx context.Context, name string, excludeID int64) (bool, error) {
	for _, r := range m.items {
		if r.Name == name && r.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (m *memRanks) Create(ctx context.Context, rank *models.Rank) error {
	if m.items == nil {
		m.items = make(map[int64]*models.Rank)
	}
	rank.ID = int64(len(m.items) + 1)
	cp := *rank
	m.items[rank.ID] = &cp
	return nil
}

func (m *memRanks) Update(ctx context.Context, rank *models.Rank) error {
	cp := *rank
	m.items[rank.ID] = &cp
	return nil
}

func (m *memRanks) Delete(ctx context.Context, id int64) error {
	delete(m.items, id)
	return nil
}

type memPenalCode struct {
	items map[int64]*models.PenalCodeArticle
}

func (m *memPenalCode) List(ctx context.Context) ([]models.PenalCodeArticle, error) {
	var out []models.PenalCodeArticle
	for _, a := range m.items {
		out = append(out, *a)
	}
	return out, nil
}

func (m *memPenalCode) FindByID(ctx context.Context, id int64) (*models.PenalCodeArticle, error) {
	if a, ok := m.items[id]; ok {
		cp := *a
		return &cp, nil
	}
	return nil, sql.ErrNoRows
}

func (m *memPenalCode) Create(ctx context.Context, article *models.PenalCodeArticle) error {
	if m.items == nil {
		m.items = make(map[int64]*models.PenalCodeArticle)
	}
	article.ID = int64(len(m.items) + 1)
	cp := *article
	m.items[article.ID] = &cp
	return nil
}

func (m *memPenalCode) Update(ctx context.Context, article *models.PenalCodeArticle) error {
	cp := *article
	m.items[article.ID] = &cp
	return nil
}

func (m *memPenalCode) Delete(ctx context.Context, id int64) error {
	delete(m.items, id)
	return nil
}

type memArrests struct{ items []models.ArrestReportWithOfficer }

func (m *memArrests) List(ctx context.Context) ([]models.ArrestReportWithOfficer, error) {
	return m.items, nil
}

func (m *memArrests) Create(ctx context.Context, report *models.ArrestReport) error {
	report.ID = int64(len(m.items) + 1)
	m.items = append(m.items, models.ArrestReportWithOfficer{ArrestReport: *report})
	return nil
}

type memFines struct{ items []models.FineReportWithOfficer }

func (m *memFines) List(ctx context.Context) ([]models.FineReportWithOfficer, error) {
	return m.items, nil
}

func (m *memFines) Create(ctx context.Context, fine *models.FineReport) error {
	fine.ID = int64(len(m.items) + 1)
	m.items = append(m.items, models.FineReportWithOfficer{FineReport: *fine})
	return nil
}

type memComplaints struct {
	items map[int64]*models.Complaint
}

func (m *memComplaints) List(ctx context.Context) ([]models.Complaint, error) {
	var out []models.Complaint
	for _, c := range m.items {
		out = append(out, *c)
	}
	return out, nil
}

func (m *memComplaints) FindByID(ctx context.Context, id int64) (*models.Complaint, error) {
	if c, ok := m.items[id]; ok {
		cp := *c
		return &cp, nil
	}
	return nil, sql.ErrNoRows
}

func (m *memComplaints) Create(ctx context.Context, complaint *models.Complaint) error {
	if m.items == nil {
		m.items = make(map[int64]*models.Complaint)
	}
	complaint.ID = int64(len(m.items) + 1)
	cp := *complaint
	m.items[complaint.ID] = &cp
	return nil
}

func (m *memComplaints) UpdateStatus(ctx context.Context, id int64, status models.ComplaintStatus) error {
	if c, ok := m.items[id]; ok {
		c.Status = status
	}
	return nil
}

type memSanctions struct{ items []models.SanctionWithOfficers }

func (m *memSanctions) List(ctx context.Context) ([]models.SanctionWithOfficers, error) {
	return m.items, nil
}

func (m *memSanctions) Create(ctx context.Context, sanction *models.Sanction) error {
	sanction.ID = int64(len(m.items) + 1)
	m.items = append(m.items, models.SanctionWithOfficers{Sanction: *sanction})
	return nil
}

type memWarrants struct {
	items map[int64]*models.Warrant
}

func (m *memWarrants) List(ctx context.Context) ([]models.WarrantWithOfficer, error) {
	var out []models.WarrantWithOfficer
	for _, w := range m.items {
		out = append(out, models.WarrantWithOfficer{Warrant: *w})
	}
	return out, nil
}

func (m *memWarrants) FindByID(ctx context.Context, id int64) (*models.Warrant, error) {
	if w, ok := m.items[id]; ok {
		cp := *w
		return &cp, nil
	}
	return nil, sql.ErrNoRows
}

func (m *memWarrants) Create(ctx context.Context, warrant *models.Warrant) error {
	if m.items == nil {
		m.items = make(map[int64]*models.Warrant)
	}
	warrant.ID = int64(len(m.items) + 1)
	cp := *warrant
	m.items[warrant.ID] = &cp
	return nil
}

func (m *memWarrants) UpdateStatus(ctx context.Context, id int64, status models.WarrantStatus) error {
	if w, ok := m.items[id]; ok {
		w.Status = status
	}
	return nil
}

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.MinCost)
	require.NoError(t, err)

	officers := &memOfficers{}
	officers.add(models.Officer{
		ID:           1,
		Username:     "admin",
		PasswordHash: string(hash),
		FullName:     "Directeur Général",
		BadgeNumber:  "001",
		RankID:       1,
		Role:         models.RoleAdmin,
		Status:       models.EmploymentActive,
		DutyStatus:   models.DutyUnavailable,
	})
	ranks := &memRanks{items: map[int64]*models.Rank{
		1: {ID: 1, Name: "Directeur", Responsibilities: "General direction"},
		2: {ID: 2, Name: "Agent", Responsibilities: "Patrol"},
	}}

	authSvc := service.NewAuthService(officers, nil, nil, service.AuthConfig{
		Secret:     "router-test-secret",
		Expiration: time.Hour,
		Issuer:     "records-api",
	})
	metricsSvc := service.NewMetricsService()

	handlers := Handlers{
		Auth:      NewAuthHandler(authSvc),
		Officer:   NewOfficerHandler(service.NewOfficerService(officers, ranks, nil, nil)),
		Rank:      NewRankHandler(service.NewRankService(ranks, officers, nil, nil)),
		PenalCode: NewPenalCodeHandler(service.NewPenalCodeService(&memPenalCode{}, nil, nil, time.Minute, nil, nil)),
		Report:    NewReportHandler(service.NewReportService(&memArrests{}, &memFines{}, nil, nil)),
		Complaint: NewComplaintHandler(service.NewComplaintService(&memComplaints{}, nil, nil)),
		Sanction:  NewSanctionHandler(service.NewSanctionService(&memSanctions{}, officers, nil, nil)),
		Warrant:   NewWarrantHandler(service.NewWarrantService(&memWarrants{}, nil, nil)),
	}

	r := gin.New()
	RegisterRoutes(r, &config.Config{Env: "test"}, handlers, authSvc, metricsSvc)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func login(t *testing.T, r *gin.Engine, username, password string) string {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/api/login", "",
		fmt.Sprintf(`{"username":%q,"password":%q}`, username, password))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp models.LoginResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

func TestRouterRejectsMissingToken(t *testing.T) {
	r := setupRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/members", "", "")
	require.Equal(t, http.StatusUnauthorized, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.NotEmpty(t, body["error"])
}

func TestRouterRejectsForgedToken(t *testing.T) {
	r := setupRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/members", "not-a-real-token", "")
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRouterUnknownRoute(t *testing.T) {
	r := setupRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/nonexistent", "", "")
	require.Equal(t, http.StatusNotFound, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "route not found", body["error"])
}

func TestRouterPublicComplaintIntake(t *testing.T) {
	r := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/complaints", "",
		`{"citizen_name":"M. Dubois","officer_name":"Jean Tremblay","description":"Rude during a stop"}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var complaint models.Complaint
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &complaint))
	assert.Equal(t, models.ComplaintPending, complaint.Status)
}

func TestRouterAdminGuard(t *testing.T) {
	r := setupRouter(t)
	admin := login(t, r, "admin", "admin123")

	// Enroll a regular officer, then verify they cannot touch admin routes.
	w := doJSON(t, r, http.MethodPost, "/api/members", admin,
		`{"username":"jtremblay","password":"secret123","full_name":"Jean Tremblay","badge_number":"1042","rank_id":2}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	officer := login(t, r, "jtremblay", "secret123")

	w = doJSON(t, r, http.MethodPost, "/api/members", officer,
		`{"username":"other","password":"secret123","full_name":"Other","badge_number":"2000","rank_id":2}`)
	require.Equal(t, http.StatusForbidden, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/members", officer, "")
	require.Equal(t, http.StatusOK, w.Code)
}

func TestRouterWarrantLifecycle(t *testing.T) {
	r := setupRouter(t)
	admin := login(t, r, "admin", "admin123")

	w := doJSON(t, r, http.MethodPost, "/api/ranks", admin,
		`{"name":"Sergent","responsibilities":"Supervises patrol units"}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var rank models.Rank
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rank))

	w = doJSON(t, r, http.MethodPost, "/api/members", admin,
		fmt.Sprintf(`{"username":"jtremblay","password":"secret123","full_name":"Jean Tremblay","badge_number":"1042","rank_id":%d}`, rank.ID))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	officer := login(t, r, "jtremblay", "secret123")

	// Officer files the warrant request.
	w = doJSON(t, r, http.MethodPost, "/api/warrants", officer,
		`{"suspect_name":"J. Smith","reason":"outstanding charges"}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var warrant models.Warrant
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &warrant))
	assert.Equal(t, models.WarrantPending, warrant.Status)
	path := fmt.Sprintf("/api/warrants/%d", warrant.ID)

	// Approval is admin-only.
	w = doJSON(t, r, http.MethodPut, path, officer, `{"status":"approved"}`)
	require.Equal(t, http.StatusForbidden, w.Code)

	w = doJSON(t, r, http.MethodPut, path, admin, `{"status":"approved"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	// Any officer may execute an approved warrant.
	w = doJSON(t, r, http.MethodPut, path, officer, `{"status":"executed"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	// Executed is terminal.
	w = doJSON(t, r, http.MethodPut, path, admin, `{"status":"executed"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/warrants", officer, "")
	require.Equal(t, http.StatusOK, w.Code)

	var listed []models.WarrantWithOfficer
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listed))
	require.Len(t, listed, 1)
	assert.Equal(t, models.WarrantExecuted, listed[0].Status)
}

func TestRouterDutyStatus(t *testing.T) {
	r := setupRouter(t)
	admin := login(t, r, "admin", "admin123")

	w := doJSON(t, r, http.MethodPut, "/api/users/duty_status", admin, `{"duty_status":"patrol"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = doJSON(t, r, http.MethodPut, "/api/users/duty_status", admin, `{"duty_status":"asleep"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
}
