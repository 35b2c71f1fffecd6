package intel

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"crm-service/internal/domain/intel"
	xerrors "crm-service/internal/pkg/errors"
)

type mockIntelRepo struct {
	records map[int64]intel.CompanyIntel
	nextID  int64
}

func newMockIntelRepo() *mockIntelRepo {
	return &mockIntelRepo{records: make(map[int64]intel.CompanyIntel)}
}

func (m *mockIntelRepo) Create(ctx context.Context, rec *intel.CompanyIntel) error {
	m.nextID++
	rec.ID = m.nextID
	m.records[rec.ID] = *rec
	return nil
}

func (m *mockIntelRepo) FindByID(ctx context.Context, id int64) (*intel.CompanyIntel, error) {
	rec, ok := m.records[id]
	if !ok {
		return nil, xerrors.ErrNotFound
	}
	return &rec, nil
}

func (m *mockIntelRepo) List(ctx context.Context) ([]intel.CompanyIntel, error) {
	out := make([]intel.CompanyIntel, 0, len(m.records))
	for id := m.nextID; id >= 1; id-- {
		if rec, ok := m.records[id]; ok {
			out = append(out, rec)
		}
	}
	return out, nil
}

type mockAnalyzer struct {
	content string
	model   string
	err     error

	gotCompany string
	gotType    string
}

func (m *mockAnalyzer) Analyze(ctx context.Context, companyName, analysisType string) (string, string, error) {
	m.gotCompany = companyName
	m.gotType = analysisType
	return m.content, m.model, m.err
}

func TestAnalyze_StoresResult(t *testing.T) {
	repo := newMockIntelRepo()
	analyzer := &mockAnalyzer{content: "STRENGTHS: strong team.", model: "claude-3-5-haiku-latest"}
	svc := NewIntelService(repo, analyzer, zap.NewNop())

	rec, err := svc.Analyze(context.Background(), "user-1", &intel.AnalyzeRequest{
		CompanyName:  "TechCorp",
		AnalysisType: "swot",
	})
	require.NoError(t, err)

	assert.Equal(t, "TechCorp", analyzer.gotCompany)
	assert.Equal(t, "swot", analyzer.gotType)

	assert.Equal(t, "TechCorp", rec.CompanyName)
	assert.Equal(t, "STRENGTHS: strong team.", rec.Content)
	require.True(t, rec.ModelUsed.Valid)
	assert.Equal(t, "claude-3-5-haiku-latest", rec.ModelUsed.String)
	require.True(t, rec.RequestedBy.Valid)
	assert.Equal(t, "user-1", rec.RequestedBy.String)

	stored, err := svc.GetAnalysis(context.Background(), rec.ID)
	require.NoError(t, err)
	assert.Equal(t, rec.Content, stored.Content)
}

func TestAnalyze_AnalyzerFailureStoresNothing(t *testing.T) {
	repo := newMockIntelRepo()
	analyzer := &mockAnalyzer{err: errors.New("upstream timeout")}
	svc := NewIntelService(repo, analyzer, zap.NewNop())

	_, err := svc.Analyze(context.Background(), "user-1", &intel.AnalyzeRequest{
		CompanyName:  "TechCorp",
		AnalysisType: "swot",
	})
	require.Error(t, err)
	assert.Empty(t, repo.records)
}

func TestGetAnalysis_NotFound(t *testing.T) {
	svc := NewIntelService(newMockIntelRepo(), &mockAnalyzer{}, zap.NewNop())

	_, err := svc.GetAnalysis(context.Background(), 42)
	require.Error(t, err)
	assert.True(t, xerrors.Is(err, xerrors.ErrNotFound))
}

func TestListAnalyses_NewestFirst(t *testing.T) {
	repo := newMockIntelRepo()
	analyzer := &mockAnalyzer{content: "analysis", model: "m"}
	svc := NewIntelService(repo, analyzer, zap.NewNop())

	for _, company := range []string{"First", "Second", "Third"} {
		_, err := svc.Analyze(context.Background(), "user-1", &intel.AnalyzeRequest{
			CompanyName:  company,
			AnalysisType: "market",
		})
		require.NoError(t, err)
	}

	out, err := svc.ListAnalyses(context.Background())
	require.NoError(t, err)
	require.Len(t, out, 3)
	assert.Equal(t, "Third", out[0].CompanyName)
	assert.Equal(t, "First", out[2].CompanyName)
}
