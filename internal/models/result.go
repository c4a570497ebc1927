package models

type AnalyzeResponse struct {
	SessionID string          `json:"session_id"`
	Result    *AnalysisResult `json:"result"`
}

type ResultResponse struct {
	SessionID string          `json:"session_id"`
	Complete  bool            `json:"complete"`
	Result    *AnalysisResult `json:"result,omitempty"`
}
