// internal/service/activity/activity_service.go
package activity

import (
	"context"
	"database/sql"
	"time"

	"crm-service/internal/domain/activity"
	"crm-service/internal/domain/contact"
	"crm-service/internal/domain/deal"
	xerrors "crm-service/internal/pkg/errors"

	"go.uber.org/zap"
)

// Accepted layouts for the activity date, tried in order. The first is what
// an HTML datetime-local control produces.
var dateLayouts = []string{
	"2006-01-02T15:04",
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

type ActivityRepository interface {
	Create(ctx context.Context, a *activity.Activity) error
	List(ctx context.Context) ([]activity.Activity, error)
	MarkCompleted(ctx context.Context, id int64) (*activity.Activity, error)
}

type ContactFinder interface {
	FindByID(ctx context.Context, id int64) (*contact.Contact, error)
}

type DealFinder interface {
	FindByID(ctx context.Context, id int64) (*deal.Deal, error)
}

type ActivityService struct {
	activityRepo ActivityRepository
	contactRepo  ContactFinder
	dealRepo     DealFinder
	logger       *zap.Logger
	now          func() time.Time
}

func NewActivityService(activityRepo ActivityRepository, contactRepo ContactFinder, dealRepo DealFinder, logger *zap.Logger) *ActivityService {
	return &ActivityService{
		activityRepo: activityRepo,
		contactRepo:  contactRepo,
		dealRepo:     dealRepo,
		logger:       logger,
		now:          time.Now,
	}
}

// CreateActivity logs an interaction against a contact and optionally a
// deal. Both references must resolve. An unparseable date falls back to the
// current time rather than failing.
func (s *ActivityService) CreateActivity(ctx context.Context, req *activity.CreateActivityRequest) (*activity.Activity, error) {
	if _, err := s.contactRepo.FindByID(ctx, req.ContactID); err != nil {
		if xerrors.Is(err, xerrors.ErrNotFound) {
			return nil, xerrors.Referencef("contact %d does not exist", req.ContactID)
		}
		return nil, err
	}

	var dealID sql.NullInt64
	if req.DealID != nil {
		if _, err := s.dealRepo.FindByID(ctx, *req.DealID); err != nil {
			if xerrors.Is(err, xerrors.ErrNotFound) {
				return nil, xerrors.Referencef("deal %d does not exist", *req.DealID)
			}
			return nil, err
		}
		dealID = sql.NullInt64{Int64: *req.DealID, Valid: true}
	}

	a := &activity.Activity{
		ContactID:   req.ContactID,
		DealID:      dealID,
		Type:        req.Type,
		Subject:     req.Subject,
		Description: sql.NullString{String: req.Description, Valid: req.Description != ""},
		Date:        s.parseDate(req.Date),
	}

	if err := s.activityRepo.Create(ctx, a); err != nil {
		s.logger.Error("failed to create activity", zap.Error(err))
		return nil, err
	}

	s.logger.Info("activity created",
		zap.Int64("activity_id", a.ID),
		zap.Int64("contact_id", a.ContactID),
		zap.String("type", a.Type),
	)

	return a, nil
}

func (s *ActivityService) parseDate(raw string) time.Time {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t
		}
	}
	// A date that matches no layout becomes "now" instead of an error.
	s.logger.Debug("unparseable activity date, defaulting to now", zap.String("date", raw))
	return s.now()
}

// ListActivities retrieves all activities, most recently created first.
func (s *ActivityService) ListActivities(ctx context.Context) ([]activity.Activity, error) {
	return s.activityRepo.List(ctx)
}

// CompleteActivity marks an activity as done.
func (s *ActivityService) CompleteActivity(ctx context.Context, id int64) (*activity.Activity, error) {
	a, err := s.activityRepo.MarkCompleted(ctx, id)
	if err != nil {
		return nil, err
	}

	s.logger.Info("activity completed", zap.Int64("activity_id", a.ID))
	return a, nil
}
