package domain

// Turn roles accepted by the conversation flow and the LLM integration.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ChatTurn is one message in a conversation, provider-agnostic.
type ChatTurn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatResponse is the conversation flow's result. Response is always
// non-empty and SuggestedFollowUps holds at most four entries, even when
// the upstream model call failed or returned garbage.
type ChatResponse struct {
	Response           string   `json:"response"`
	SuggestedFollowUps []string `json:"suggestedFollowUps"`
}

// TitleResult holds generated blog title candidates.
type TitleResult struct {
	Titles []string `json:"titles"`
}

// ContentResult holds a generated blog post body.
type ContentResult struct {
	Content string `json:"content"`
}
