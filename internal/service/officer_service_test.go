package service

import (
	"context"
	"database/sql"
	"net/http"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/spvm/records-api/internal/models"
	appErrors "github.com/spvm/records-api/pkg/errors"
)

type mockOfficerRepo struct {
	items      map[int64]*models.Officer
	usernames  map[string]int64
	badges     map[string]int64
	deleted    []int64
	deleteErr  error
	dutyStatus map[int64]models.DutyStatus
	nextID     int64
}

func (m *mockOfficerRepo) List(ctx context.Context) ([]models.OfficerWithRank, error) {
	var out []models.OfficerWithRank
	for _, o := range m.items {
		out = append(out, models.OfficerWithRank{Officer: *o})
	}
	return out, nil
}

func (m *mockOfficerRepo) FindByID(ctx context.Context, id int64) (*models.Officer, error) {
	if o, ok := m.items[id]; ok {
		cp := *o
		return &cp, nil
	}
	return nil, sql.ErrNoRows
}

func (m *mockOfficerRepo) ExistsByUsername(ctx context.Context, username string, excludeID int64) (bool, error) {
	if owner, ok := m.usernames[username]; ok && owner != excludeID {
		return true, nil
	}
	return false, nil
}

func (m *mockOfficerRepo) ExistsByBadge(ctx context.Context, badge string, excludeID int64) (bool, error) {
	if owner, ok := m.badges[badge]; ok && owner != excludeID {
		return true, nil
	}
	return false, nil
}

func (m *mockOfficerRepo) Create(ctx context.Context, officer *models.Officer) error {
	if m.items == nil {
		m.items = make(map[int64]*models.Officer)
	}
	m.nextID++
	officer.ID = m.nextID
	cp := *officer
	m.items[officer.ID] = &cp
	return nil
}

func (m *mockOfficerRepo) Update(ctx context.Context, officer *models.Officer) error {
	cp := *officer
	m.items[officer.ID] = &cp
	return nil
}

func (m *mockOfficerRepo) Delete(ctx context.Context, id int64) error {
	if m.deleteErr != nil {
		return m.deleteErr
	}
	m.deleted = append(m.deleted, id)
	delete(m.items, id)
	return nil
}

func (m *mockOfficerRepo) SetDutyStatus(ctx context.Context, id int64, status models.DutyStatus) error {
	if m.dutyStatus == nil {
		m.dutyStatus = make(map[int64]models.DutyStatus)
	}
	m.dutyStatus[id] = status
	return nil
}

type mockRankLookup struct {
	ranks map[int64]*models.Rank
}

func (m *mockRankLookup) FindByID(ctx context.Context, id int64) (*models.Rank, error) {
	if r, ok := m.ranks[id]; ok {
		cp := *r
		return &cp, nil
	}
	return nil, sql.ErrNoRows
}

func sergeantRanks() *mockRankLookup {
	return &mockRankLookup{ranks: map[int64]*models.Rank{3: {ID: 3, Name: "Sergent"}}}
}

func TestOfficerServiceCreate(t *testing.T) {
	repo := &mockOfficerRepo{}
	service := NewOfficerService(repo, sergeantRanks(), validator.New(), zap.NewNop())

	officer, err := service.Create(context.Background(), CreateOfficerRequest{
		Username:    "jtremblay",
		Password:    "secret123",
		FullName:    "Jean Tremblay",
		BadgeNumber: "1042",
		RankID:      3,
	})
	require.NoError(t, err)
	assert.Equal(t, models.RoleOfficer, officer.Role)
	assert.Equal(t, models.EmploymentActive, officer.Status)
	assert.Equal(t, models.DutyUnavailable, officer.DutyStatus)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(officer.PasswordHash), []byte("secret123")))
}

func TestOfficerServiceCreateDuplicateUsername(t *testing.T) {
	repo := &mockOfficerRepo{usernames: map[string]int64{"jtremblay": 7}}
	service := NewOfficerService(repo, sergeantRanks(), validator.New(), zap.NewNop())

	_, err := service.Create(context.Background(), CreateOfficerRequest{
		Username:    "jtremblay",
		Password:    "secret123",
		FullName:    "Jean Tremblay",
		BadgeNumber: "1042",
		RankID:      3,
	})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrDuplicate.Code, appErrors.FromError(err).Code)
}

func TestOfficerServiceCreateDuplicateBadge(t *testing.T) {
	repo := &mockOfficerRepo{badges: map[string]int64{"1042": 7}}
	service := NewOfficerService(repo, sergeantRanks(), validator.New(), zap.NewNop())

	_, err := service.Create(context.Background(), CreateOfficerRequest{
		Username:    "jtremblay",
		Password:    "secret123",
		FullName:    "Jean Tremblay",
		BadgeNumber: "1042",
		RankID:      3,
	})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrDuplicate.Code, appErrors.FromError(err).Code)
}

func TestOfficerServiceCreateUnknownRank(t *testing.T) {
	service := NewOfficerService(&mockOfficerRepo{}, &mockRankLookup{}, validator.New(), zap.NewNop())

	_, err := service.Create(context.Background(), CreateOfficerRequest{
		Username:    "jtremblay",
		Password:    "secret123",
		FullName:    "Jean Tremblay",
		BadgeNumber: "1042",
		RankID:      99,
	})
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErr.Code)
	assert.Equal(t, "rank does not exist", appErr.Message)
}

func TestOfficerServiceCreateShortPassword(t *testing.T) {
	service := NewOfficerService(&mockOfficerRepo{}, sergeantRanks(), validator.New(), zap.NewNop())

	_, err := service.Create(context.Background(), CreateOfficerRequest{
		Username:    "jtremblay",
		Password:    "abc",
		FullName:    "Jean Tremblay",
		BadgeNumber: "1042",
		RankID:      3,
	})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestOfficerServiceUpdate(t *testing.T) {
	repo := &mockOfficerRepo{items: map[int64]*models.Officer{
		5: {ID: 5, Username: "jtremblay", FullName: "Jean Tremblay", BadgeNumber: "1042", RankID: 3, Role: models.RoleOfficer, Status: models.EmploymentActive},
	}}
	service := NewOfficerService(repo, sergeantRanks(), validator.New(), zap.NewNop())

	officer, err := service.Update(context.Background(), 5, UpdateOfficerRequest{
		FullName:    "Jean Tremblay Jr",
		BadgeNumber: "1042",
		RankID:      3,
		Role:        "admin",
		Status:      "inactive",
	})
	require.NoError(t, err)
	assert.Equal(t, "Jean Tremblay Jr", officer.FullName)
	assert.Equal(t, models.RoleAdmin, officer.Role)
	assert.Equal(t, models.EmploymentInactive, officer.Status)
}

func TestOfficerServiceUpdateNotFound(t *testing.T) {
	service := NewOfficerService(&mockOfficerRepo{}, sergeantRanks(), validator.New(), zap.NewNop())

	_, err := service.Update(context.Background(), 99, UpdateOfficerRequest{
		FullName:    "Ghost",
		BadgeNumber: "000",
		RankID:      3,
		Role:        "officer",
		Status:      "active",
	})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
}

func TestOfficerServiceDelete(t *testing.T) {
	repo := &mockOfficerRepo{items: map[int64]*models.Officer{
		5: {ID: 5, Username: "jtremblay"},
	}}
	service := NewOfficerService(repo, sergeantRanks(), validator.New(), zap.NewNop())

	err := service.Delete(context.Background(), 5, 1)
	require.NoError(t, err)
	assert.Equal(t, []int64{5}, repo.deleted)
}

func TestOfficerServiceDeleteWithFiledRecords(t *testing.T) {
	repo := &mockOfficerRepo{
		items: map[int64]*models.Officer{
			2: {ID: 2, Username: "jtremblay"},
		},
		deleteErr: &pq.Error{Code: "23503", Constraint: "warrants_officer_id_fkey"},
	}
	service := NewOfficerService(repo, sergeantRanks(), validator.New(), zap.NewNop())

	err := service.Delete(context.Background(), 2, 1)
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrOfficerInUse.Code, appErr.Code)
	assert.Equal(t, http.StatusConflict, appErr.Status)
	assert.Empty(t, repo.deleted)
}

func TestOfficerServiceDeleteSelf(t *testing.T) {
	repo := &mockOfficerRepo{items: map[int64]*models.Officer{
		1: {ID: 1, Username: "chief"},
	}}
	service := NewOfficerService(repo, sergeantRanks(), validator.New(), zap.NewNop())

	err := service.Delete(context.Background(), 1, 1)
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrSelfDelete.Code, appErrors.FromError(err).Code)
	assert.Empty(t, repo.deleted)
}

func TestOfficerServiceSetDutyStatus(t *testing.T) {
	repo := &mockOfficerRepo{}
	service := NewOfficerService(repo, sergeantRanks(), validator.New(), zap.NewNop())

	err := service.SetDutyStatus(context.Background(), 2, SetDutyStatusRequest{DutyStatus: "patrol"})
	require.NoError(t, err)
	assert.Equal(t, models.DutyPatrol, repo.dutyStatus[2])
}

func TestOfficerServiceSetDutyStatusInvalid(t *testing.T) {
	service := NewOfficerService(&mockOfficerRepo{}, sergeantRanks(), validator.New(), zap.NewNop())

	err := service.SetDutyStatus(context.Background(), 2, SetDutyStatusRequest{DutyStatus: "asleep"})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}
