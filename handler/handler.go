package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
	"github.com/google/uuid"

	"portfolio-assistant/internal/domain"
	"portfolio-assistant/internal/usecase"
)

const (
	pathChat    = "/chat"
	pathTitles  = "/blog/titles"
	pathContent = "/blog/content"
)

// AssistantService is the flow surface the handler exposes over HTTP.
type AssistantService interface {
	Chat(ctx context.Context, in usecase.ChatInput) (domain.ChatResponse, error)
	GenerateTitles(ctx context.Context, in usecase.TitlesInput) (domain.TitleResult, error)
	GenerateContent(ctx context.Context, in usecase.ContentInput) (domain.ContentResult, error)
}

type Handler struct {
	svc AssistantService
}

func NewHandler(svc AssistantService) (*Handler, error) {
	if svc == nil {
		return nil, errors.New("handler: assistant service must not be nil")
	}
	return &Handler{svc: svc}, nil
}

type chatRequest struct {
	Message string            `json:"message"`
	History []domain.ChatTurn `json:"history"`
}

type titlesRequest struct {
	Topic     string `json:"topic"`
	NumTitles int    `json:"numTitles"`
}

type contentRequest struct {
	Title string `json:"title"`
}

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// Handle routes one API Gateway request to the matching flow. Upstream
// model faults never reach this layer; the only error statuses produced
// here are routing and input-contract rejections.
func (h *Handler) Handle(ctx context.Context, event events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	correlationID := resolveCorrelationID(event.Headers)

	if event.HTTPMethod != http.MethodPost {
		return respondError(correlationID, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "only POST is supported"), nil
	}

	switch event.Path {
	case pathChat:
		return h.handleChat(ctx, correlationID, event.Body), nil
	case pathTitles:
		return h.handleTitles(ctx, correlationID, event.Body), nil
	case pathContent:
		return h.handleContent(ctx, correlationID, event.Body), nil
	default:
		return respondError(correlationID, http.StatusNotFound, "NOT_FOUND", "unknown path"), nil
	}
}

func (h *Handler) handleChat(ctx context.Context, correlationID, body string) events.APIGatewayProxyResponse {
	var req chatRequest
	if err := json.Unmarshal([]byte(body), &req); err != nil {
		return respondError(correlationID, http.StatusBadRequest, string(usecase.ErrorInvalidInput), "request body is not valid JSON")
	}

	out, err := h.svc.Chat(ctx, usecase.ChatInput{Message: req.Message, History: req.History})
	if err != nil {
		return respondUseCaseError(correlationID, err)
	}
	return respondJSON(correlationID, http.StatusOK, out)
}

func (h *Handler) handleTitles(ctx context.Context, correlationID, body string) events.APIGatewayProxyResponse {
	var req titlesRequest
	if err := json.Unmarshal([]byte(body), &req); err != nil {
		return respondError(correlationID, http.StatusBadRequest, string(usecase.ErrorInvalidInput), "request body is not valid JSON")
	}

	out, err := h.svc.GenerateTitles(ctx, usecase.TitlesInput{Topic: req.Topic, NumTitles: req.NumTitles})
	if err != nil {
		return respondUseCaseError(correlationID, err)
	}
	return respondJSON(correlationID, http.StatusOK, out)
}

func (h *Handler) handleContent(ctx context.Context, correlationID, body string) events.APIGatewayProxyResponse {
	var req contentRequest
	if err := json.Unmarshal([]byte(body), &req); err != nil {
		return respondError(correlationID, http.StatusBadRequest, string(usecase.ErrorInvalidInput), "request body is not valid JSON")
	}

	out, err := h.svc.GenerateContent(ctx, usecase.ContentInput{Title: req.Title})
	if err != nil {
		return respondUseCaseError(correlationID, err)
	}
	return respondJSON(correlationID, http.StatusOK, out)
}

func respondUseCaseError(correlationID string, err error) events.APIGatewayProxyResponse {
	var usecaseErr *usecase.Error
	if errors.As(err, &usecaseErr) && usecaseErr.Code == usecase.ErrorInvalidInput {
		return respondError(correlationID, http.StatusBadRequest, string(usecaseErr.Code), usecaseErr.Reason)
	}
	return respondError(correlationID, http.StatusInternalServerError, string(usecase.ErrorInternal), "internal error")
}

func respondJSON(correlationID string, status int, body any) events.APIGatewayProxyResponse {
	buf, err := json.Marshal(body)
	if err != nil {
		return respondError(correlationID, http.StatusInternalServerError, string(usecase.ErrorInternal), "encode response")
	}
	return events.APIGatewayProxyResponse{
		StatusCode: status,
		Headers:    responseHeaders(correlationID),
		Body:       string(buf),
	}
}

func respondError(correlationID string, status int, code, message string) events.APIGatewayProxyResponse {
	buf, _ := json.Marshal(errorResponse{Error: code, Message: message})
	return events.APIGatewayProxyResponse{
		StatusCode: status,
		Headers:    responseHeaders(correlationID),
		Body:       string(buf),
	}
}

func responseHeaders(correlationID string) map[string]string {
	return map[string]string{
		"Content-Type":     "application/json",
		"X-Correlation-Id": correlationID,
	}
}

// resolveCorrelationID echoes the caller's correlation id if present
// (header lookup is case-insensitive) or mints a new one.
func resolveCorrelationID(headers map[string]string) string {
	for k, v := range headers {
		if http.CanonicalHeaderKey(k) == "X-Correlation-Id" && v != "" {
			return v
		}
	}
	return uuid.NewString()
}
