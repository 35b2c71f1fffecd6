// internal/service/intel/intel_service.go
package intel

import (
	"context"
	"database/sql"

	"crm-service/internal/domain/intel"

	"go.uber.org/zap"
)

type IntelRepository interface {
	Create(ctx context.Context, rec *intel.CompanyIntel) error
	FindByID(ctx context.Context, id int64) (*intel.CompanyIntel, error)
	List(ctx context.Context) ([]intel.CompanyIntel, error)
}

// Analyzer produces a company analysis. The production implementation calls
// an external LLM; it is invoked from this service only, never from the
// pipeline or dashboard code paths.
type Analyzer interface {
	Analyze(ctx context.Context, companyName, analysisType string) (content string, model string, err error)
}

type IntelService struct {
	intelRepo IntelRepository
	analyzer  Analyzer
	logger    *zap.Logger
}

func NewIntelService(intelRepo IntelRepository, analyzer Analyzer, logger *zap.Logger) *IntelService {
	return &IntelService{
		intelRepo: intelRepo,
		analyzer:  analyzer,
		logger:    logger,
	}
}

// Analyze runs a company analysis and stores the result stamped with the
// requesting caller's identity.
func (s *IntelService) Analyze(ctx context.Context, requestedBy string, req *intel.AnalyzeRequest) (*intel.CompanyIntel, error) {
	content, model, err := s.analyzer.Analyze(ctx, req.CompanyName, req.AnalysisType)
	if err != nil {
		s.logger.Error("company analysis failed",
			zap.String("company", req.CompanyName),
			zap.String("analysis_type", req.AnalysisType),
			zap.Error(err),
		)
		return nil, err
	}

	rec := &intel.CompanyIntel{
		CompanyName:  req.CompanyName,
		AnalysisType: req.AnalysisType,
		Content:      content,
		ModelUsed:    sql.NullString{String: model, Valid: model != ""},
		RequestedBy:  sql.NullString{String: requestedBy, Valid: requestedBy != ""},
	}

	if err := s.intelRepo.Create(ctx, rec); err != nil {
		return nil, err
	}

	s.logger.Info("company analysis stored",
		zap.Int64("intel_id", rec.ID),
		zap.String("company", rec.CompanyName),
		zap.String("analysis_type", rec.AnalysisType),
	)

	return rec, nil
}

// GetAnalysis retrieves a stored analysis by ID.
func (s *IntelService) GetAnalysis(ctx context.Context, id int64) (*intel.CompanyIntel, error) {
	return s.intelRepo.FindByID(ctx, id)
}

// ListAnalyses retrieves all stored analyses, newest first.
func (s *IntelService) ListAnalyses(ctx context.Context) ([]intel.CompanyIntel, error) {
	return s.intelRepo.List(ctx)
}
