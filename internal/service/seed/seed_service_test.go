package seed

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"crm-service/internal/domain/activity"
	"crm-service/internal/domain/contact"
	"crm-service/internal/domain/deal"
	"crm-service/internal/domain/intel"
)

// memStore records created rows and hands out ids from an arbitrary base to
// catch any code that confuses insertion positions with store ids.
type memStore struct {
	nextID     int64
	contacts   []contact.Contact
	deals      []deal.Deal
	activities []activity.Activity
	intel      []intel.CompanyIntel
}

func newMemStore(base int64) *memStore {
	return &memStore{nextID: base}
}

func (m *memStore) id() int64 {
	m.nextID++
	return m.nextID
}

func (m *memStore) Count(ctx context.Context) (int64, error) {
	return int64(len(m.contacts)), nil
}

func (m *memStore) Create(ctx context.Context, c *contact.Contact) error {
	c.ID = m.id()
	m.contacts = append(m.contacts, *c)
	return nil
}

type dealStore struct{ *memStore }

func (m dealStore) Create(ctx context.Context, d *deal.Deal) error {
	d.ID = m.id()
	m.memStore.deals = append(m.memStore.deals, *d)
	return nil
}

type activityStore struct{ *memStore }

func (m activityStore) Create(ctx context.Context, a *activity.Activity) error {
	a.ID = m.id()
	m.memStore.activities = append(m.memStore.activities, *a)
	return nil
}

type intelStore struct{ *memStore }

func (m intelStore) Create(ctx context.Context, rec *intel.CompanyIntel) error {
	rec.ID = m.id()
	m.memStore.intel = append(m.memStore.intel, *rec)
	return nil
}

func newTestSeeder(store *memStore) *SeedService {
	return NewSeedService(store, dealStore{store}, activityStore{store}, intelStore{store}, zap.NewNop())
}

func TestSeed_PopulatesEmptyStore(t *testing.T) {
	store := newMemStore(100)
	svc := newTestSeeder(store)

	require.NoError(t, svc.Seed(context.Background()))

	assert.Len(t, store.contacts, 10)
	assert.Len(t, store.deals, 8)
	assert.Len(t, store.activities, 8)
	assert.Len(t, store.intel, 2)
}

func TestSeed_Idempotent(t *testing.T) {
	store := newMemStore(0)
	svc := newTestSeeder(store)

	require.NoError(t, svc.Seed(context.Background()))
	require.NoError(t, svc.Seed(context.Background()))

	assert.Len(t, store.contacts, 10)
	assert.Len(t, store.deals, 8)
	assert.Len(t, store.activities, 8)
	assert.Len(t, store.intel, 2)
}

func TestSeed_SkipsWhenContactsExist(t *testing.T) {
	store := newMemStore(0)
	store.contacts = append(store.contacts, contact.Contact{ID: 1, Name: "Existing"})
	svc := newTestSeeder(store)

	require.NoError(t, svc.Seed(context.Background()))

	assert.Len(t, store.contacts, 1)
	assert.Empty(t, store.deals)
	assert.Empty(t, store.activities)
	assert.Empty(t, store.intel)
}

func TestSeed_ResolvesPositionalReferences(t *testing.T) {
	store := newMemStore(500)
	svc := newTestSeeder(store)

	require.NoError(t, svc.Seed(context.Background()))

	contactByName := make(map[string]contact.Contact)
	for _, c := range store.contacts {
		contactByName[c.Name] = c
	}
	dealByTitle := make(map[string]deal.Deal)
	for _, d := range store.deals {
		dealByTitle[d.Title] = d
	}

	// Fifth fixture deal names the seventh contact, so the order rows were
	// written in must not leak into the reference resolution.
	assert.Equal(t, contactByName["George King"].ID, dealByTitle["Royal Ltd Consulting"].ContactID)
	assert.Equal(t, contactByName["Jane Doe"].ID, dealByTitle["Unknown Net Pilot"].ContactID)
	assert.Equal(t, contactByName["Alice Johnson"].ID, dealByTitle["TechCorp Platform License"].ContactID)

	for _, a := range store.activities {
		switch a.Subject {
		case "Follow up with Alice":
			assert.False(t, a.DealID.Valid)
			assert.Equal(t, contactByName["Alice Johnson"].ID, a.ContactID)
		case "Research note":
			assert.False(t, a.DealID.Valid)
		case "Onboarding kickoff":
			require.True(t, a.DealID.Valid)
			assert.Equal(t, dealByTitle["Medical Care Integration"].ID, a.DealID.Int64)
			assert.Equal(t, contactByName["Hannah White"].ID, a.ContactID)
		case "Introduction email":
			require.True(t, a.DealID.Valid)
			assert.Equal(t, dealByTitle["Logistics Fleet Tracker"].ID, a.DealID.Int64)
		}
	}
}

func TestSeed_RowDefaults(t *testing.T) {
	store := newMemStore(0)
	svc := newTestSeeder(store)

	require.NoError(t, svc.Seed(context.Background()))

	for _, c := range store.contacts {
		assert.Equal(t, "system", c.UserID)
		require.True(t, c.AssignedTo.Valid)
		assert.Equal(t, "Sales Team", c.AssignedTo.String)
	}
	for _, d := range store.deals {
		assert.Equal(t, "USD", d.Currency)
		assert.True(t, d.ExpectedClose.Valid)
	}
	for _, rec := range store.intel {
		require.True(t, rec.ModelUsed.Valid)
		assert.Equal(t, "seed_data", rec.ModelUsed.String)
		require.True(t, rec.RequestedBy.Valid)
		assert.Equal(t, "system", rec.RequestedBy.String)
	}
}
