package request_models

type ChatRequest struct {
	Message   string `json:"message" binding:"required"`
	SessionID string `json:"session_id"`
	Language  string `json:"language"`
}

type PhotoAnalysisRequest struct {
	ImageBase64 string `json:"image_base64" binding:"required"`
	ChildID     string `json:"child_id"`
}
