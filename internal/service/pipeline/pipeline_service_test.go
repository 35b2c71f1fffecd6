package pipeline

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"crm-service/internal/domain/contact"
	"crm-service/internal/domain/deal"
	xerrors "crm-service/internal/pkg/errors"
)

// mockDealRepo is an in-memory DealRepository for testing.
type mockDealRepo struct {
	deals  map[int64]deal.Deal
	order  []int64
	nextID int64
}

func newMockDealRepo() *mockDealRepo {
	return &mockDealRepo{deals: make(map[int64]deal.Deal)}
}

func (m *mockDealRepo) Create(ctx context.Context, d *deal.Deal) error {
	m.nextID++
	d.ID = m.nextID
	d.CreatedAt = time.Now()
	d.UpdatedAt = d.CreatedAt
	m.deals[d.ID] = *d
	m.order = append(m.order, d.ID)
	return nil
}

func (m *mockDealRepo) FindByID(ctx context.Context, id int64) (*deal.Deal, error) {
	d, ok := m.deals[id]
	if !ok {
		return nil, xerrors.ErrNotFound
	}
	return &d, nil
}

func (m *mockDealRepo) List(ctx context.Context) ([]deal.Deal, error) {
	var out []deal.Deal
	for _, id := range m.order {
		out = append(out, m.deals[id])
	}
	return out, nil
}

func (m *mockDealRepo) UpdateStage(ctx context.Context, id int64, stage string) (*deal.Deal, error) {
	d, ok := m.deals[id]
	if !ok {
		return nil, xerrors.ErrNotFound
	}
	d.Stage = stage
	d.UpdatedAt = time.Now()
	m.deals[id] = d
	return &d, nil
}

func (m *mockDealRepo) DeleteCascade(ctx context.Context, id int64) error {
	if _, ok := m.deals[id]; !ok {
		return xerrors.ErrNotFound
	}
	delete(m.deals, id)
	for i, oid := range m.order {
		if oid == id {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	return nil
}

type mockContactFinder struct {
	ids map[int64]bool
}

func (m *mockContactFinder) FindByID(ctx context.Context, id int64) (*contact.Contact, error) {
	if !m.ids[id] {
		return nil, xerrors.ErrNotFound
	}
	return &contact.Contact{ID: id}, nil
}

type movedEvent struct {
	DealID int64
	Stage  string
}

type mockPublisher struct {
	moved []movedEvent
}

func (m *mockPublisher) PublishDealMoved(dealID int64, stage string) {
	m.moved = append(m.moved, movedEvent{DealID: dealID, Stage: stage})
}

func newTestService(contactIDs ...int64) (*PipelineService, *mockDealRepo, *mockPublisher) {
	ids := make(map[int64]bool)
	for _, id := range contactIDs {
		ids[id] = true
	}
	repo := newMockDealRepo()
	pub := &mockPublisher{}
	svc := NewPipelineService(repo, &mockContactFinder{ids: ids}, pub, zap.NewNop())
	return svc, repo, pub
}

func TestCreateDeal_Defaults(t *testing.T) {
	svc, _, _ := newTestService(1)

	d, err := svc.CreateDeal(context.Background(), &deal.CreateDealRequest{
		Title:     "TechCorp Platform License",
		Value:     45000,
		ContactID: 1,
	})
	require.NoError(t, err)

	assert.Equal(t, deal.StageQualified, d.Stage)
	assert.Equal(t, "USD", d.Currency)
	assert.Equal(t, 0, d.Probability)
	assert.False(t, d.ExpectedClose.Valid)
	assert.NotZero(t, d.ID)
}

func TestCreateDeal_ExpectedClose(t *testing.T) {
	svc, _, _ := newTestService(1)

	d, err := svc.CreateDeal(context.Background(), &deal.CreateDealRequest{
		Title:         "Renewal",
		Value:         100,
		ContactID:     1,
		ExpectedClose: "2026-04-15",
	})
	require.NoError(t, err)
	require.True(t, d.ExpectedClose.Valid)
	assert.Equal(t, "2026-04-15", d.ExpectedClose.Time.Format("2006-01-02"))
}

func TestCreateDeal_UnparseableExpectedCloseIsAbsent(t *testing.T) {
	svc, _, _ := newTestService(1)

	d, err := svc.CreateDeal(context.Background(), &deal.CreateDealRequest{
		Title:         "Renewal",
		Value:         100,
		ContactID:     1,
		ExpectedClose: "sometime next quarter",
	})
	require.NoError(t, err)
	assert.False(t, d.ExpectedClose.Valid)
}

func TestCreateDeal_NegativeValue(t *testing.T) {
	svc, _, _ := newTestService(1)

	_, err := svc.CreateDeal(context.Background(), &deal.CreateDealRequest{
		Title:     "Bad",
		Value:     -1,
		ContactID: 1,
	})
	require.Error(t, err)
	assert.True(t, xerrors.Is(err, xerrors.ErrValidation))
}

func TestCreateDeal_NaNValue(t *testing.T) {
	svc, _, _ := newTestService(1)

	_, err := svc.CreateDeal(context.Background(), &deal.CreateDealRequest{
		Title:     "Bad",
		Value:     math.NaN(),
		ContactID: 1,
	})
	require.Error(t, err)
	assert.True(t, xerrors.Is(err, xerrors.ErrValidation))
}

func TestCreateDeal_MissingContact(t *testing.T) {
	svc, _, _ := newTestService(1)

	_, err := svc.CreateDeal(context.Background(), &deal.CreateDealRequest{
		Title:     "Orphan",
		Value:     100,
		ContactID: 99,
	})
	require.Error(t, err)
	assert.True(t, xerrors.Is(err, xerrors.ErrReference))
}

func TestMoveDeal_AcceptsArbitraryStage(t *testing.T) {
	svc, repo, pub := newTestService(1)

	created, err := svc.CreateDeal(context.Background(), &deal.CreateDealRequest{
		Title:     "Deal",
		Value:     100,
		ContactID: 1,
	})
	require.NoError(t, err)

	moved, err := svc.MoveDeal(context.Background(), created.ID, "archived")
	require.NoError(t, err)
	assert.Equal(t, "archived", moved.Stage)

	stored, err := repo.FindByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, "archived", stored.Stage)

	require.Len(t, pub.moved, 1)
	assert.Equal(t, created.ID, pub.moved[0].DealID)
	assert.Equal(t, "archived", pub.moved[0].Stage)
}

func TestMoveDeal_ClosedStagesAreNotTerminal(t *testing.T) {
	svc, _, _ := newTestService(1)

	created, err := svc.CreateDeal(context.Background(), &deal.CreateDealRequest{
		Title:     "Deal",
		Value:     100,
		ContactID: 1,
		Stage:     deal.StageClosedWon,
	})
	require.NoError(t, err)

	moved, err := svc.MoveDeal(context.Background(), created.ID, deal.StageNegotiation)
	require.NoError(t, err)
	assert.Equal(t, deal.StageNegotiation, moved.Stage)
}

func TestMoveDeal_NotFound(t *testing.T) {
	svc, _, _ := newTestService(1)

	_, err := svc.MoveDeal(context.Background(), 42, deal.StageProposal)
	require.Error(t, err)
	assert.True(t, xerrors.Is(err, xerrors.ErrNotFound))
}

func TestDeleteDeal(t *testing.T) {
	svc, repo, _ := newTestService(1)

	created, err := svc.CreateDeal(context.Background(), &deal.CreateDealRequest{
		Title:     "Deal",
		Value:     100,
		ContactID: 1,
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteDeal(context.Background(), created.ID))

	_, err = repo.FindByID(context.Background(), created.ID)
	assert.True(t, xerrors.Is(err, xerrors.ErrNotFound))

	err = svc.DeleteDeal(context.Background(), created.ID)
	assert.True(t, xerrors.Is(err, xerrors.ErrNotFound))
}

func TestGroupByStage_SingleDeal(t *testing.T) {
	d := deal.Deal{ID: 1, Stage: deal.StageProposal}

	grouped := GroupByStage([]deal.Deal{d})
	assert.Equal(t, []deal.Deal{d}, grouped[deal.StageProposal])
}

func TestGroupByStage_AllBucketsPresent(t *testing.T) {
	grouped := GroupByStage(nil)

	require.Len(t, grouped, 5)
	for _, stage := range deal.Stages() {
		assert.Empty(t, grouped[stage])
		assert.NotNil(t, grouped[stage])
	}
}

func TestGroupByStage_UnknownStageFallsBackToQualified(t *testing.T) {
	deals := []deal.Deal{
		{ID: 1, Stage: deal.StageQualified},
		{ID: 2, Stage: "archived"},
		{ID: 3, Stage: deal.StageQualified},
	}

	grouped := GroupByStage(deals)

	// Unknown stages are bucketed, never dropped, and relative order is kept.
	require.Len(t, grouped[deal.StageQualified], 3)
	assert.Equal(t, int64(1), grouped[deal.StageQualified][0].ID)
	assert.Equal(t, int64(2), grouped[deal.StageQualified][1].ID)
	assert.Equal(t, int64(3), grouped[deal.StageQualified][2].ID)
}

func TestBoard_GroupsAllDeals(t *testing.T) {
	svc, _, _ := newTestService(1)

	for _, stage := range []string{deal.StageQualified, deal.StageProposal, deal.StageProposal} {
		_, err := svc.CreateDeal(context.Background(), &deal.CreateDealRequest{
			Title:     "Deal",
			Value:     10,
			ContactID: 1,
			Stage:     stage,
		})
		require.NoError(t, err)
	}

	board, err := svc.Board(context.Background())
	require.NoError(t, err)

	assert.Equal(t, deal.Stages(), board.Stages)
	assert.Len(t, board.DealsByStage[deal.StageQualified], 1)
	assert.Len(t, board.DealsByStage[deal.StageProposal], 2)
}
