package types

type CreateNoteRequest struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Category string `json:"category"`
}

type PersonaRequest struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type RecommendRequest struct {
	Message  string `json:"message"`
	MemberID string `json:"memberId,omitempty"`
}
