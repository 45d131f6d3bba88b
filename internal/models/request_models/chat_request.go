package request_models

type ChatRequest struct {
	SessionID string `json:"session_id"`
	Answer    string `json:"answer"`
}
