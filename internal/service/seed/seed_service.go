// internal/service/seed/seed_service.go
package seed

import (
	"context"
	"database/sql"
	"time"

	"crm-service/internal/domain/activity"
	"crm-service/internal/domain/contact"
	"crm-service/internal/domain/deal"
	"crm-service/internal/domain/intel"

	"go.uber.org/zap"
)

type ContactRepository interface {
	Count(ctx context.Context) (int64, error)
	Create(ctx context.Context, c *contact.Contact) error
}

type DealRepository interface {
	Create(ctx context.Context, d *deal.Deal) error
}

type ActivityRepository interface {
	Create(ctx context.Context, a *activity.Activity) error
}

type IntelRepository interface {
	Create(ctx context.Context, rec *intel.CompanyIntel) error
}

type SeedService struct {
	contactRepo  ContactRepository
	dealRepo     DealRepository
	activityRepo ActivityRepository
	intelRepo    IntelRepository
	logger       *zap.Logger
}

func NewSeedService(
	contactRepo ContactRepository,
	dealRepo DealRepository,
	activityRepo ActivityRepository,
	intelRepo IntelRepository,
	logger *zap.Logger,
) *SeedService {
	return &SeedService{
		contactRepo:  contactRepo,
		dealRepo:     dealRepo,
		activityRepo: activityRepo,
		intelRepo:    intelRepo,
		logger:       logger,
	}
}

// Seed populates an empty store with the demo dataset. It is a no-op as
// soon as any contact exists, so running it twice inserts nothing extra.
//
// Store-assigned identifiers are opaque, so the fixture rows reference each
// other by 1-based insertion position. Each position->id map is built right
// after the corresponding inserts complete: contacts must be fully inserted
// before deals are built, and deals before activities. This sequencing is a
// hard constraint and the reason Seed runs synchronously at startup.
func (s *SeedService) Seed(ctx context.Context) error {
	count, err := s.contactRepo.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		s.logger.Debug("store already has contacts, skipping seed", zap.Int64("contacts", count))
		return nil
	}

	contactIDs := make(map[int]int64, len(seedContacts))
	for i, sc := range seedContacts {
		c := &contact.Contact{
			UserID:     "system",
			Name:       sc.name,
			Email:      sc.email,
			Phone:      sql.NullString{String: sc.phone, Valid: true},
			Company:    sql.NullString{String: sc.company, Valid: true},
			Title:      sql.NullString{String: sc.title, Valid: true},
			Status:     sc.status,
			Source:     sql.NullString{String: sc.source, Valid: true},
			AssignedTo: sql.NullString{String: "Sales Team", Valid: true},
		}
		if err := s.contactRepo.Create(ctx, c); err != nil {
			return err
		}
		contactIDs[i+1] = c.ID
	}

	dealIDs := make(map[int]int64, len(seedDeals))
	inserted := 0
	for _, sd := range seedDeals {
		contactID, ok := contactIDs[sd.contactPos]
		if !ok {
			// Out-of-range positional reference: skip the row, not the seed.
			continue
		}

		d := &deal.Deal{
			ContactID:   contactID,
			Title:       sd.title,
			Value:       sd.value,
			Currency:    "USD",
			Stage:       sd.stage,
			Probability: sd.probability,
		}
		if t, err := time.Parse("2006-01-02", sd.expectedClose); err == nil {
			d.ExpectedClose = sql.NullTime{Time: t, Valid: true}
		}
		if err := s.dealRepo.Create(ctx, d); err != nil {
			return err
		}
		inserted++
		dealIDs[inserted] = d.ID
	}

	for _, sa := range seedActivities {
		contactID, ok := contactIDs[sa.contactPos]
		if !ok {
			continue
		}

		var dealID sql.NullInt64
		if sa.dealPos != 0 {
			// An unresolved deal position drops the reference but keeps
			// the activity.
			if id, ok := dealIDs[sa.dealPos]; ok {
				dealID = sql.NullInt64{Int64: id, Valid: true}
			}
		}

		date, err := time.Parse("2006-01-02 15:04:05", sa.date)
		if err != nil {
			date = time.Now()
		}

		a := &activity.Activity{
			ContactID:   contactID,
			DealID:      dealID,
			Type:        sa.typ,
			Subject:     sa.subject,
			Description: sql.NullString{String: sa.description, Valid: true},
			Date:        date,
			Completed:   sa.completed,
		}
		if err := s.activityRepo.Create(ctx, a); err != nil {
			return err
		}
	}

	for _, si := range seedIntel {
		rec := &intel.CompanyIntel{
			CompanyName:  si.companyName,
			AnalysisType: si.analysisType,
			Content:      si.content,
			ModelUsed:    sql.NullString{String: "seed_data", Valid: true},
			RequestedBy:  sql.NullString{String: "system", Valid: true},
		}
		if err := s.intelRepo.Create(ctx, rec); err != nil {
			return err
		}
	}

	s.logger.Info("seeded demo dataset",
		zap.Int("contacts", len(contactIDs)),
		zap.Int("deals", len(dealIDs)),
	)

	return nil
}
