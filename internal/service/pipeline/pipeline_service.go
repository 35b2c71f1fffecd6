// internal/service/pipeline/pipeline_service.go
package pipeline

import (
	"context"
	"database/sql"
	"math"
	"time"

	"crm-service/internal/domain/contact"
	"crm-service/internal/domain/deal"
	xerrors "crm-service/internal/pkg/errors"

	"go.uber.org/zap"
)

type DealRepository interface {
	Create(ctx context.Context, d *deal.Deal) error
	FindByID(ctx context.Context, id int64) (*deal.Deal, error)
	List(ctx context.Context) ([]deal.Deal, error)
	UpdateStage(ctx context.Context, id int64, stage string) (*deal.Deal, error)
	DeleteCascade(ctx context.Context, id int64) error
}

type ContactFinder interface {
	FindByID(ctx context.Context, id int64) (*contact.Contact, error)
}

// Publisher receives deal stage-change events for the live board.
type Publisher interface {
	PublishDealMoved(dealID int64, stage string)
}

type PipelineService struct {
	dealRepo    DealRepository
	contactRepo ContactFinder
	events      Publisher
	logger      *zap.Logger
}

func NewPipelineService(dealRepo DealRepository, contactRepo ContactFinder, events Publisher, logger *zap.Logger) *PipelineService {
	return &PipelineService{
		dealRepo:    dealRepo,
		contactRepo: contactRepo,
		events:      events,
		logger:      logger,
	}
}

// CreateDeal creates a new deal against an existing contact. The value must
// be a non-negative number. An expected close date that fails to parse is
// stored as absent rather than rejected.
func (s *PipelineService) CreateDeal(ctx context.Context, req *deal.CreateDealRequest) (*deal.Deal, error) {
	if req.Value < 0 || math.IsNaN(req.Value) || math.IsInf(req.Value, 0) {
		return nil, xerrors.Validationf("deal value must be a non-negative number")
	}

	if _, err := s.contactRepo.FindByID(ctx, req.ContactID); err != nil {
		if xerrors.Is(err, xerrors.ErrNotFound) {
			return nil, xerrors.Referencef("contact %d does not exist", req.ContactID)
		}
		return nil, err
	}

	stage := req.Stage
	if stage == "" {
		stage = deal.StageQualified
	}

	var expectedClose sql.NullTime
	if req.ExpectedClose != "" {
		if t, err := time.Parse("2006-01-02", req.ExpectedClose); err == nil {
			expectedClose = sql.NullTime{Time: t, Valid: true}
		} else {
			s.logger.Debug("ignoring unparseable expected close date",
				zap.String("expected_close", req.ExpectedClose))
		}
	}

	d := &deal.Deal{
		ContactID:     req.ContactID,
		Title:         req.Title,
		Value:         req.Value,
		Currency:      "USD",
		Stage:         stage,
		Probability:   req.Probability,
		ExpectedClose: expectedClose,
		Notes:         sql.NullString{String: req.Notes, Valid: req.Notes != ""},
	}

	if err := s.dealRepo.Create(ctx, d); err != nil {
		s.logger.Error("failed to create deal", zap.Error(err))
		return nil, err
	}

	s.logger.Info("deal created",
		zap.Int64("deal_id", d.ID),
		zap.Int64("contact_id", d.ContactID),
		zap.String("stage", d.Stage),
	)

	return d, nil
}

// MoveDeal sets a deal's stage unconditionally. Any stage string is
// accepted, including moves out of closed_won/closed_lost; there are no
// terminal stages at this level.
func (s *PipelineService) MoveDeal(ctx context.Context, dealID int64, newStage string) (*deal.Deal, error) {
	d, err := s.dealRepo.UpdateStage(ctx, dealID, newStage)
	if err != nil {
		return nil, err
	}

	if s.events != nil {
		s.events.PublishDealMoved(d.ID, d.Stage)
	}

	s.logger.Info("deal moved",
		zap.Int64("deal_id", d.ID),
		zap.String("stage", d.Stage),
	)

	return d, nil
}

// DeleteDeal removes a deal and its activities.
func (s *PipelineService) DeleteDeal(ctx context.Context, dealID int64) error {
	if err := s.dealRepo.DeleteCascade(ctx, dealID); err != nil {
		return err
	}

	s.logger.Info("deal deleted", zap.Int64("deal_id", dealID))
	return nil
}

// Board returns all deals grouped into the canonical stage buckets.
func (s *PipelineService) Board(ctx context.Context) (*deal.Board, error) {
	deals, err := s.dealRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	return &deal.Board{
		Stages:       deal.Stages(),
		DealsByStage: GroupByStage(deals),
	}, nil
}

// GroupByStage partitions deals into the five canonical stage buckets,
// preserving each deal's relative order within its bucket. A deal with an
// unrecognized stage lands in the qualified bucket; nothing is dropped.
// Note the dashboard's stage rollup handles unknown stages differently
// (it excludes them) and the two policies are intentionally separate.
func GroupByStage(deals []deal.Deal) map[string][]deal.Deal {
	grouped := make(map[string][]deal.Deal, len(deal.Stages()))
	for _, stage := range deal.Stages() {
		grouped[stage] = []deal.Deal{}
	}

	for _, d := range deals {
		stage := d.Stage
		if !deal.IsCanonical(stage) {
			stage = deal.StageQualified
		}
		grouped[stage] = append(grouped[stage], d)
	}

	return grouped
}
