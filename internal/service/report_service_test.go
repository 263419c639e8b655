package service

import (
	"context"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spvm/records-api/internal/models"
	appErrors "github.com/spvm/records-api/pkg/errors"
)

type mockArrestRepo struct {
	items  []models.ArrestReportWithOfficer
	nextID int64
}

func (m *mockArrestRepo) List(ctx context.Context) ([]models.ArrestReportWithOfficer, error) {
	return m.items, nil
}

func (m *mockArrestRepo) Create(ctx context.Context, report *models.ArrestReport) error {
	m.nextID++
	report.ID = m.nextID
	m.items = append(m.items, models.ArrestReportWithOfficer{ArrestReport: *report})
	return nil
}

type mockFineRepo struct {
	items  []models.FineReportWithOfficer
	nextID int64
}

func (m *mockFineRepo) List(ctx context.Context) ([]models.FineReportWithOfficer, error) {
	return m.items, nil
}

func (m *mockFineRepo) Create(ctx context.Context, fine *models.FineReport) error {
	m.nextID++
	fine.ID = m.nextID
	m.items = append(m.items, models.FineReportWithOfficer{FineReport: *fine})
	return nil
}

func fineAmount(v int64) *int64 { return &v }

func TestReportServiceCreateArrest(t *testing.T) {
	repo := &mockArrestRepo{}
	service := NewReportService(repo, &mockFineRepo{}, validator.New(), zap.NewNop())

	report, err := service.CreateArrest(context.Background(), 2, CreateArrestRequest{
		SuspectName: "J. Smith",
		Charges:     "Art. 2",
		Details:     "Apprehended on scene",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(2), report.OfficerID)
	assert.NotZero(t, report.ID)
}

func TestReportServiceCreateArrestMissingFields(t *testing.T) {
	service := NewReportService(&mockArrestRepo{}, &mockFineRepo{}, validator.New(), zap.NewNop())

	_, err := service.CreateArrest(context.Background(), 2, CreateArrestRequest{SuspectName: "J. Smith"})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestReportServiceCreateFine(t *testing.T) {
	repo := &mockFineRepo{}
	service := NewReportService(&mockArrestRepo{}, repo, validator.New(), zap.NewNop())

	fine, err := service.CreateFine(context.Background(), 2, CreateFineRequest{
		CitizenName: "M. Dubois",
		Amount:      fineAmount(150),
		Reason:      "Speeding",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(150), fine.Amount)
	assert.Equal(t, int64(2), fine.OfficerID)
}

func TestReportServiceCreateFineNonPositiveAmount(t *testing.T) {
	service := NewReportService(&mockArrestRepo{}, &mockFineRepo{}, validator.New(), zap.NewNop())

	_, err := service.CreateFine(context.Background(), 2, CreateFineRequest{
		CitizenName: "M. Dubois",
		Amount:      fineAmount(0),
		Reason:      "Speeding",
	})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestReportServiceListEmptyIsNotNil(t *testing.T) {
	service := NewReportService(&mockArrestRepo{}, &mockFineRepo{}, validator.New(), zap.NewNop())

	arrests, err := service.ListArrests(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, arrests)

	fines, err := service.ListFines(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, fines)
}

func TestReportServiceExportArrestsCSV(t *testing.T) {
	repo := &mockArrestRepo{items: []models.ArrestReportWithOfficer{
		{
			ArrestReport: models.ArrestReport{ID: 1, SuspectName: "J. Smith", Charges: "Art. 2"},
			OfficerName:  "Jean Tremblay",
			BadgeNumber:  "1042",
		},
	}}
	service := NewReportService(repo, &mockFineRepo{}, validator.New(), zap.NewNop())

	result, err := service.ExportArrests(context.Background(), ExportCSV)
	require.NoError(t, err)
	assert.Equal(t, "text/csv", result.ContentType)
	assert.True(t, strings.HasSuffix(result.Filename, ".csv"))
	assert.Contains(t, string(result.Content), "J. Smith")
	assert.Contains(t, string(result.Content), "1042")
}

func TestReportServiceExportFinesPDF(t *testing.T) {
	repo := &mockFineRepo{items: []models.FineReportWithOfficer{
		{
			FineReport:  models.FineReport{ID: 1, CitizenName: "M. Dubois", Amount: 150, Reason: "Speeding"},
			OfficerName: "Jean Tremblay",
		},
	}}
	service := NewReportService(&mockArrestRepo{}, repo, validator.New(), zap.NewNop())

	result, err := service.ExportFines(context.Background(), ExportPDF)
	require.NoError(t, err)
	assert.Equal(t, "application/pdf", result.ContentType)
	assert.True(t, strings.HasSuffix(result.Filename, ".pdf"))
	assert.NotEmpty(t, result.Content)
}

func TestReportServiceExportDefaultsToCSV(t *testing.T) {
	service := NewReportService(&mockArrestRepo{}, &mockFineRepo{}, validator.New(), zap.NewNop())

	result, err := service.ExportArrests(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, "text/csv", result.ContentType)
}

func TestReportServiceExportUnknownFormat(t *testing.T) {
	service := NewReportService(&mockArrestRepo{}, &mockFineRepo{}, validator.New(), zap.NewNop())

	_, err := service.ExportArrests(context.Background(), "xlsx")
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}
