package response_models

type ChatMessageResponse struct {
	SessionID   string               `json:"session_id"`
	Reply       string               `json:"reply"`
	Suggestions []AttractionResponse `json:"suggestions,omitempty"`
}
