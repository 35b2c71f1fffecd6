package dashboard

import (
	"crm-service/internal/domain/activity"
)

// StageMetrics is the per-stage rollup shown on the dashboard.
type StageMetrics struct {
	Count      int     `json:"count"`
	TotalValue float64 `json:"total_value"`
}

// Summary is a point-in-time snapshot of the dashboard metrics.
type Summary struct {
	TotalContacts     int64                   `json:"total_contacts"`
	OpenDealsCount    int                     `json:"open_deals_count"`
	OpenPipelineValue float64                 `json:"open_pipeline_value"`
	WinRate           int                     `json:"win_rate"`
	StageSummary      map[string]StageMetrics `json:"stage_summary"`
	RecentActivities  []activity.Activity     `json:"recent_activities"`
	UpcomingTasks     []activity.Activity     `json:"upcoming_tasks"`
}
