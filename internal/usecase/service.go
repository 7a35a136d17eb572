package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"portfolio-assistant/internal/domain"
	"portfolio-assistant/internal/eventlog"
	"portfolio-assistant/internal/integrations/openai"
	"portfolio-assistant/internal/profile"
	"portfolio-assistant/internal/prompt"
)

const (
	maxHistoryTurns = 10

	minTitles = 11
	maxTitles = 20
)

// ModelClient is the single upstream boundary: one call, raw text back,
// no retries.
type ModelClient interface {
	Complete(ctx context.Context, systemInstruction string, messages []domain.ChatTurn) (string, error)
}

// AssistantService orchestrates the chat and generation flows. Each
// invocation is self-contained; the service holds only injected,
// read-only collaborators.
type AssistantService struct {
	llm     ModelClient
	sink    eventlog.Sink
	profile domain.Profile
}

type ChatInput struct {
	Message string
	History []domain.ChatTurn
}

type TitlesInput struct {
	Topic     string
	NumTitles int
}

type ContentInput struct {
	Title string
}

func NewAssistantService(llm ModelClient, sink eventlog.Sink, p domain.Profile) (*AssistantService, error) {
	if llm == nil {
		return nil, errors.New("usecase: model client must not be nil")
	}
	if sink == nil {
		return nil, errors.New("usecase: event sink must not be nil")
	}
	if strings.TrimSpace(p.OwnerName) == "" {
		return nil, errors.New("usecase: profile owner name must not be empty")
	}
	return &AssistantService{llm: llm, sink: sink, profile: p}, nil
}

var timeNow = time.Now

// Chat answers one visitor message grounded on the profile. History is
// caller-owned; only the most recent turns are forwarded upstream. Any
// upstream fault is absorbed into a well-formed fallback response; the
// only propagating error is an empty message.
func (s *AssistantService) Chat(ctx context.Context, in ChatInput) (domain.ChatResponse, error) {
	message := strings.TrimSpace(in.Message)
	if message == "" {
		return domain.ChatResponse{}, newError(ErrorInvalidInput, "empty_message", nil)
	}

	now := timeNow().UTC().Format(time.RFC1123)
	system, err := prompt.Render(prompt.ChatSystemTemplate, map[string]string{
		"ProfileContext": profile.Build(s.profile, now),
	})
	if err != nil {
		// Template defect. Absorbed like an upstream fault so the visitor
		// still gets a presentable response.
		s.record(ctx, "chat_prompt_error", map[string]any{"error": err.Error()})
		return fallbackChatResponse(failureUnavailable), nil
	}

	history := truncateHistory(in.History)
	messages := append(history, domain.ChatTurn{Role: domain.RoleUser, Content: message})

	raw, callErr := s.llm.Complete(ctx, system, messages)

	var out domain.ChatResponse
	outcome := "ok"
	switch {
	case callErr == nil:
		out = repairChat(raw)
	case errors.Is(callErr, openai.ErrEmptyCompletion):
		// Same shape repair as malformed output.
		out = repairChat("")
		outcome = failureEmptyResponse
	default:
		class := classifyUpstreamFailure(callErr)
		out = fallbackChatResponse(class)
		outcome = class
	}

	s.record(ctx, "chat", map[string]any{
		"messageLength": len(message),
		"historyTurns":  len(history),
		"outcome":       outcome,
	})
	return out, nil
}

// GenerateTitles produces blog title candidates for a topic. The count
// bounds are an input contract; violating them rejects the call instead
// of triggering a fallback.
func (s *AssistantService) GenerateTitles(ctx context.Context, in TitlesInput) (domain.TitleResult, error) {
	topic := strings.TrimSpace(in.Topic)
	if topic == "" {
		return domain.TitleResult{}, newError(ErrorInvalidInput, "empty_topic", nil)
	}
	if in.NumTitles < minTitles || in.NumTitles > maxTitles {
		return domain.TitleResult{}, newError(ErrorInvalidInput, "num_titles_out_of_range", nil)
	}

	system, err := prompt.Render(prompt.TitlesSystemTemplate, map[string]string{
		"Topic":     topic,
		"NumTitles": strconv.Itoa(in.NumTitles),
	})
	if err != nil {
		s.record(ctx, "titles_prompt_error", map[string]any{"error": err.Error()})
		return domain.TitleResult{Titles: []string{fallbackTitlesText}}, nil
	}

	raw, callErr := s.llm.Complete(ctx, system, []domain.ChatTurn{
		{Role: domain.RoleUser, Content: "Generate the titles now."},
	})

	outcome := "ok"
	if callErr != nil {
		raw = ""
		outcome = classifyUpstreamFailure(callErr)
	}
	titles := repairTitles(raw)

	// A count mismatch passes through unchanged but is worth knowing about.
	if len(titles) != in.NumTitles {
		outcome = "title_count_mismatch"
	}
	s.record(ctx, "generate_titles", map[string]any{
		"topic":     topic,
		"requested": in.NumTitles,
		"returned":  len(titles),
		"outcome":   outcome,
	})
	return domain.TitleResult{Titles: titles}, nil
}

// GenerateContent drafts a blog post body for a title.
func (s *AssistantService) GenerateContent(ctx context.Context, in ContentInput) (domain.ContentResult, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return domain.ContentResult{}, newError(ErrorInvalidInput, "empty_title", nil)
	}

	system, err := prompt.Render(prompt.ContentSystemTemplate, nil)
	if err != nil {
		s.record(ctx, "content_prompt_error", map[string]any{"error": err.Error()})
		return domain.ContentResult{Content: contentRetryMessage}, nil
	}

	raw, callErr := s.llm.Complete(ctx, system, []domain.ChatTurn{
		{Role: domain.RoleUser, Content: title},
	})

	var content string
	outcome := "ok"
	switch {
	case callErr == nil:
		content = repairContent(raw, title)
	case errors.Is(callErr, openai.ErrEmptyCompletion):
		content = repairContent("", title)
		outcome = failureEmptyResponse
	default:
		content = contentRetryMessage
		outcome = classifyUpstreamFailure(callErr)
	}

	s.record(ctx, "generate_content", map[string]any{
		"titleLength": len(title),
		"outcome":     outcome,
	})
	return domain.ContentResult{Content: content}, nil
}

const contentRetryMessage = "Content generation is temporarily unavailable. This section is retryable; please try generating it again shortly."

// fallbackChatResponse is the adapter-failure reply: an apology naming the
// failure class plus the static suggestion list.
func fallbackChatResponse(failureClass string) domain.ChatResponse {
	return domain.ChatResponse{
		Response:           fmt.Sprintf("Sorry, I couldn't reach my language model just now (%s). Please try again in a moment.", failureReasonText(failureClass)),
		SuggestedFollowUps: append([]string(nil), defaultFollowUps...),
	}
}

func failureReasonText(failureClass string) string {
	switch failureClass {
	case failureAuth:
		return "a configuration issue"
	case failureOverloaded:
		return "the service is busy"
	case failureEmptyResponse:
		return "an empty reply"
	default:
		return "a connection problem"
	}
}

// truncateHistory keeps the most recent maxHistoryTurns turns and drops
// blank ones. Always returns a fresh slice so callers' history is never
// aliased.
func truncateHistory(history []domain.ChatTurn) []domain.ChatTurn {
	kept := make([]domain.ChatTurn, 0, len(history))
	for _, turn := range history {
		if strings.TrimSpace(turn.Content) == "" {
			continue
		}
		kept = append(kept, turn)
	}
	if len(kept) > maxHistoryTurns {
		kept = kept[len(kept)-maxHistoryTurns:]
	}
	return kept
}

// record writes one event to the observability sink. Sink failures are
// logged and dropped; they never change a flow result.
func (s *AssistantService) record(ctx context.Context, label string, payload map[string]any) {
	if err := s.sink.Record(ctx, label, payload); err != nil {
		slog.Warn("event sink write failed", "label", label, "err", err)
	}
}
