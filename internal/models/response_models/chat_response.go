package response_models

// TurnResponse is the single wire shape for a chat turn. Exactly one of the
// three variants is populated: a follow-up question, a completed result, or
// a generation error.
type TurnResponse struct {
	NextQuestion string             `json:"next_question,omitempty"`
	Options      []string           `json:"options,omitempty"`
	Done         *bool              `json:"done,omitempty"`
	Feedback     []string           `json:"feedback,omitempty"`
	Result       *ItineraryDocument `json:"result,omitempty"`
	Error        string             `json:"error,omitempty"`
	Raw          string             `json:"raw,omitempty"`
}

func QuestionResponse(question string, options ...string) *TurnResponse {
	return &TurnResponse{NextQuestion: question, Options: options}
}

func ResultResponse(feedback []string, result *ItineraryDocument, options ...string) *TurnResponse {
	done := true
	return &TurnResponse{Done: &done, Feedback: feedback, Result: result, Options: options}
}

func ErrorResponse(message, raw string) *TurnResponse {
	done := false
	return &TurnResponse{Done: &done, Error: message, Raw: raw}
}
