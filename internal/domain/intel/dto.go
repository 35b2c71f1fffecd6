package intel

type AnalyzeRequest struct {
	CompanyName  string `json:"company_name" binding:"required,max=200"`
	AnalysisType string `json:"analysis_type" binding:"required,oneof=swot competitor market"`
}
