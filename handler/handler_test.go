package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/aws/aws-lambda-go/events"
	"github.com/stretchr/testify/require"

	"portfolio-assistant/internal/domain"
	"portfolio-assistant/internal/usecase"
)

type stubService struct {
	chatOut    domain.ChatResponse
	chatErr    error
	chatIn     usecase.ChatInput
	titlesOut  domain.TitleResult
	titlesErr  error
	titlesIn   usecase.TitlesInput
	contentOut domain.ContentResult
	contentErr error
	contentIn  usecase.ContentInput
}

func (s *stubService) Chat(_ context.Context, in usecase.ChatInput) (domain.ChatResponse, error) {
	s.chatIn = in
	return s.chatOut, s.chatErr
}

func (s *stubService) GenerateTitles(_ context.Context, in usecase.TitlesInput) (domain.TitleResult, error) {
	s.titlesIn = in
	return s.titlesOut, s.titlesErr
}

func (s *stubService) GenerateContent(_ context.Context, in usecase.ContentInput) (domain.ContentResult, error) {
	s.contentIn = in
	return s.contentOut, s.contentErr
}

func makeEvent(path, body string) events.APIGatewayProxyRequest {
	return events.APIGatewayProxyRequest{
		HTTPMethod: http.MethodPost,
		Path:       path,
		Headers:    map[string]string{"Content-Type": "application/json"},
		Body:       body,
	}
}

func parseBody[T any](t *testing.T, body string) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal([]byte(body), &v))
	return v
}

func TestNewHandler_ValidatesDependency(t *testing.T) {
	_, err := NewHandler(nil)
	require.Error(t, err)
}

func TestHandle_Chat_HappyPath(t *testing.T) {
	svc := &stubService{chatOut: domain.ChatResponse{Response: "hello", SuggestedFollowUps: []string{"More?"}}}
	h, err := NewHandler(svc)
	require.NoError(t, err)

	resp, err := h.Handle(context.Background(), makeEvent("/chat", `{"message":"What do you do?","history":[{"role":"user","content":"hi"}]}`))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "What do you do?", svc.chatIn.Message)
	require.Len(t, svc.chatIn.History, 1)

	out := parseBody[domain.ChatResponse](t, resp.Body)
	require.Equal(t, "hello", out.Response)
	require.Equal(t, []string{"More?"}, out.SuggestedFollowUps)
	require.NotEmpty(t, resp.Headers["X-Correlation-Id"])
}

func TestHandle_Titles_HappyPath(t *testing.T) {
	svc := &stubService{titlesOut: domain.TitleResult{Titles: []string{"A", "B"}}}
	h, err := NewHandler(svc)
	require.NoError(t, err)

	resp, err := h.Handle(context.Background(), makeEvent("/blog/titles", `{"topic":"go","numTitles":12}`))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, usecase.TitlesInput{Topic: "go", NumTitles: 12}, svc.titlesIn)

	out := parseBody[domain.TitleResult](t, resp.Body)
	require.Equal(t, []string{"A", "B"}, out.Titles)
}

func TestHandle_Content_HappyPath(t *testing.T) {
	svc := &stubService{contentOut: domain.ContentResult{Content: "body"}}
	h, err := NewHandler(svc)
	require.NoError(t, err)

	resp, err := h.Handle(context.Background(), makeEvent("/blog/content", `{"title":"Testing in Go"}`))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, usecase.ContentInput{Title: "Testing in Go"}, svc.contentIn)

	out := parseBody[domain.ContentResult](t, resp.Body)
	require.Equal(t, "body", out.Content)
}

func TestHandle_InvalidBody(t *testing.T) {
	for _, path := range []string{"/chat", "/blog/titles", "/blog/content"} {
		h, err := NewHandler(&stubService{})
		require.NoError(t, err)

		resp, err := h.Handle(context.Background(), makeEvent(path, `not-json`))
		require.NoError(t, err)
		require.Equal(t, http.StatusBadRequest, resp.StatusCode, "path=%s", path)

		out := parseBody[errorResponse](t, resp.Body)
		require.Equal(t, string(usecase.ErrorInvalidInput), out.Error)
	}
}

func TestHandle_InputContractViolation(t *testing.T) {
	svc := &stubService{titlesErr: &usecase.Error{Code: usecase.ErrorInvalidInput, Reason: "num_titles_out_of_range"}}
	h, err := NewHandler(svc)
	require.NoError(t, err)

	resp, err := h.Handle(context.Background(), makeEvent("/blog/titles", `{"topic":"go","numTitles":5}`))
	require.NoError(t, err)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	out := parseBody[errorResponse](t, resp.Body)
	require.Equal(t, string(usecase.ErrorInvalidInput), out.Error)
	require.Equal(t, "num_titles_out_of_range", out.Message)
}

func TestHandle_UnknownPath(t *testing.T) {
	h, err := NewHandler(&stubService{})
	require.NoError(t, err)

	resp, err := h.Handle(context.Background(), makeEvent("/nope", `{}`))
	require.NoError(t, err)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestHandle_MethodNotAllowed(t *testing.T) {
	h, err := NewHandler(&stubService{})
	require.NoError(t, err)

	event := makeEvent("/chat", `{}`)
	event.HTTPMethod = http.MethodGet
	resp, err := h.Handle(context.Background(), event)
	require.NoError(t, err)
	require.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
}

func TestHandle_UsesProvidedCorrelationID_CaseInsensitive(t *testing.T) {
	svc := &stubService{chatOut: domain.ChatResponse{Response: "ok"}}
	h, err := NewHandler(svc)
	require.NoError(t, err)

	event := makeEvent("/chat", `{"message":"hi"}`)
	event.Headers["x-correlation-id"] = "corr-123"
	resp, err := h.Handle(context.Background(), event)
	require.NoError(t, err)
	require.Equal(t, "corr-123", resp.Headers["X-Correlation-Id"])
}
