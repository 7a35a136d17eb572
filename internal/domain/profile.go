package domain

// Profile is the static biography snapshot the assistant is grounded on.
// It is decoded once at process start and never mutated afterwards.
type Profile struct {
	AssistantName string       `json:"assistantName"`
	OwnerName     string       `json:"ownerName"`
	Bio           string       `json:"bio"`
	Location      string       `json:"location"`
	Skills        []string     `json:"skills"`
	Projects      []Project    `json:"projects"`
	Work          []Experience `json:"work"`
	Education     []Degree     `json:"education"`
}

// Project is one portfolio project summary.
type Project struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Tech        []string `json:"tech"`
}

// Experience is one work-history entry.
type Experience struct {
	Title   string `json:"title"`
	Company string `json:"company"`
}

// Degree is one education entry.
type Degree struct {
	Degree string `json:"degree"`
	School string `json:"school"`
}
