// internal/service/dashboard/dashboard_service.go
package dashboard

import (
	"context"
	"encoding/json"
	"math"
	"time"

	"crm-service/internal/domain/activity"
	"crm-service/internal/domain/dashboard"
	"crm-service/internal/domain/deal"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	defaultActivityLimit = 10
	cacheKey             = "crm:dashboard:summary"
)

type ContactCounter interface {
	Count(ctx context.Context) (int64, error)
}

type DealLister interface {
	List(ctx context.Context) ([]deal.Deal, error)
}

type ActivityLister interface {
	ListRecent(ctx context.Context, limit int) ([]activity.Activity, error)
	ListUpcoming(ctx context.Context, limit int) ([]activity.Activity, error)
}

type DashboardService struct {
	contactRepo  ContactCounter
	dealRepo     DealLister
	activityRepo ActivityLister
	cache        *redis.Client
	cacheTTL     time.Duration
	logger       *zap.Logger
}

func NewDashboardService(
	contactRepo ContactCounter,
	dealRepo DealLister,
	activityRepo ActivityLister,
	cache *redis.Client,
	cacheTTL time.Duration,
	logger *zap.Logger,
) *DashboardService {
	return &DashboardService{
		contactRepo:  contactRepo,
		dealRepo:     dealRepo,
		activityRepo: activityRepo,
		cache:        cache,
		cacheTTL:     cacheTTL,
		logger:       logger,
	}
}

// Compute assembles the dashboard snapshot from the current store contents.
// It mutates nothing. A short-TTL Redis cache fronts the computation; cache
// failures fall through to a fresh computation and never surface.
func (s *DashboardService) Compute(ctx context.Context) (*dashboard.Summary, error) {
	if cached := s.fromCache(ctx); cached != nil {
		return cached, nil
	}

	totalContacts, err := s.contactRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	deals, err := s.dealRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	recent, err := s.activityRepo.ListRecent(ctx, defaultActivityLimit)
	if err != nil {
		return nil, err
	}

	upcoming, err := s.activityRepo.ListUpcoming(ctx, defaultActivityLimit)
	if err != nil {
		return nil, err
	}

	openCount, openValue := OpenDeals(deals)
	summary := &dashboard.Summary{
		TotalContacts:     totalContacts,
		OpenDealsCount:    openCount,
		OpenPipelineValue: openValue,
		WinRate:           WinRate(deals),
		StageSummary:      StageSummary(deals),
		RecentActivities:  recent,
		UpcomingTasks:     upcoming,
	}

	s.toCache(ctx, summary)
	return summary, nil
}

func (s *DashboardService) fromCache(ctx context.Context) *dashboard.Summary {
	if s.cache == nil {
		return nil
	}

	raw, err := s.cache.Get(ctx, cacheKey).Bytes()
	if err != nil {
		if err != redis.Nil {
			s.logger.Debug("dashboard cache read failed", zap.Error(err))
		}
		return nil
	}

	var summary dashboard.Summary
	if err := json.Unmarshal(raw, &summary); err != nil {
		s.logger.Warn("dashboard cache entry corrupt, recomputing", zap.Error(err))
		return nil
	}

	return &summary
}

func (s *DashboardService) toCache(ctx context.Context, summary *dashboard.Summary) {
	if s.cache == nil || s.cacheTTL <= 0 {
		return
	}

	raw, err := json.Marshal(summary)
	if err != nil {
		s.logger.Warn("failed to marshal dashboard summary", zap.Error(err))
		return
	}
	if err := s.cache.Set(ctx, cacheKey, raw, s.cacheTTL).Err(); err != nil {
		s.logger.Debug("dashboard cache write failed", zap.Error(err))
	}
}

// OpenDeals returns the count and total value of deals that are not closed.
// The sum over zero deals is 0.0.
func OpenDeals(deals []deal.Deal) (int, float64) {
	var count int
	var value float64
	for _, d := range deals {
		if deal.IsClosed(d.Stage) {
			continue
		}
		count++
		value += d.Value
	}
	return count, value
}

// WinRate returns round(won / (won + lost) * 100) as an integer in [0,100].
// With no closed deals it is 0, not undefined.
func WinRate(deals []deal.Deal) int {
	var won, lost int
	for _, d := range deals {
		switch d.Stage {
		case deal.StageClosedWon:
			won++
		case deal.StageClosedLost:
			lost++
		}
	}

	closed := won + lost
	if closed == 0 {
		return 0
	}
	return int(math.Round(float64(won) / float64(closed) * 100))
}

// StageSummary aggregates count and total value per canonical stage. Stages
// with no deals report zeros. Deals with unrecognized stage strings are
// excluded entirely; the board grouping buckets those into qualified
// instead, and the two fallback policies are deliberately different.
func StageSummary(deals []deal.Deal) map[string]dashboard.StageMetrics {
	summary := make(map[string]dashboard.StageMetrics, len(deal.Stages()))
	for _, stage := range deal.Stages() {
		summary[stage] = dashboard.StageMetrics{}
	}

	for _, d := range deals {
		m, ok := summary[d.Stage]
		if !ok {
			continue
		}
		m.Count++
		m.TotalValue += d.Value
		summary[d.Stage] = m
	}

	return summary
}
