package usecase

import (
	"encoding/json"
	"fmt"
	"strings"

	"portfolio-assistant/internal/domain"
)

// The repair functions turn whatever the model produced into a well-formed
// result. They never fail; a caller always gets a value matching the
// target shape.

const maxFollowUps = 4

const fallbackChatText = "Sorry, I'm having trouble putting an answer together right now. Please try asking again in a moment."

var defaultFollowUps = []string{
	"What projects have you worked on?",
	"What technologies do you use?",
	"Tell me about your work experience.",
	"How can I get in touch?",
}

const fallbackTitlesText = "Something went wrong while generating titles. Please try again."

type chatPayload struct {
	Response           string   `json:"response"`
	SuggestedFollowUps []string `json:"suggestedFollowUps"`
}

type titlesPayload struct {
	Titles []string `json:"titles"`
}

type contentPayload struct {
	Content string `json:"content"`
}

// repairChat parses raw as the chat output shape. A parse failure yields
// the full fallback; a missing or empty response field falls back for that
// field only, keeping whatever follow-ups were usable.
func repairChat(raw string) domain.ChatResponse {
	out := domain.ChatResponse{
		Response:           fallbackChatText,
		SuggestedFollowUps: append([]string(nil), defaultFollowUps...),
	}

	var p chatPayload
	if strings.TrimSpace(raw) == "" || json.Unmarshal([]byte(raw), &p) != nil {
		return out
	}

	out.SuggestedFollowUps = cleanFollowUps(p.SuggestedFollowUps)
	if resp := strings.TrimSpace(p.Response); resp != "" {
		out.Response = resp
	}
	return out
}

// cleanFollowUps keeps the first maxFollowUps non-empty trimmed entries.
// The result is never nil so the JSON field is always present.
func cleanFollowUps(raw []string) []string {
	cleaned := make([]string, 0, maxFollowUps)
	for _, s := range raw {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		cleaned = append(cleaned, s)
		if len(cleaned) == maxFollowUps {
			break
		}
	}
	return cleaned
}

// repairTitles parses raw as the titles output shape. If no titles array
// is present the fallback is a single element stating an error occurred;
// a present array passes through with empty entries dropped, regardless
// of its length.
func repairTitles(raw string) []string {
	var p titlesPayload
	if strings.TrimSpace(raw) == "" || json.Unmarshal([]byte(raw), &p) != nil || p.Titles == nil {
		return []string{fallbackTitlesText}
	}

	titles := make([]string, 0, len(p.Titles))
	for _, title := range p.Titles {
		if t := strings.TrimSpace(title); t != "" {
			titles = append(titles, t)
		}
	}
	if len(titles) == 0 {
		return []string{fallbackTitlesText}
	}
	return titles
}

// repairContent parses raw as the content output shape, falling back to an
// explanatory paragraph that references the requested title.
func repairContent(raw, title string) string {
	var p contentPayload
	if strings.TrimSpace(raw) != "" && json.Unmarshal([]byte(raw), &p) == nil {
		if content := strings.TrimSpace(p.Content); content != "" {
			return content
		}
	}
	return fmt.Sprintf("A full draft for %q couldn't be generated this time. Please regenerate this section in a moment.", title)
}
