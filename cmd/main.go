package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-sdk-go-v2/config"
	awsdynamodb "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	awsssm "github.com/aws/aws-sdk-go-v2/service/ssm"

	"portfolio-assistant/handler"
	"portfolio-assistant/internal/eventlog"
	"portfolio-assistant/internal/integrations/openai"
	"portfolio-assistant/internal/integrations/paramstore"
	"portfolio-assistant/internal/profile"
	"portfolio-assistant/internal/usecase"
)

func main() {
	ctx := context.Background()

	// ---- Configuration (read only here) ----
	eventTable := mustEnv("EVENT_TABLE")
	paramPrefix := mustEnv("PARAM_PREFIX")

	// ---- AWS SDK config ----
	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		slog.Error("failed to load AWS config", "err", err)
		os.Exit(1)
	}

	// ---- Clients ----
	ssmClient, err := paramstore.New(awsssm.NewFromConfig(cfg))
	if err != nil {
		slog.Error("failed to create SSM client", "err", err)
		os.Exit(1)
	}

	model, err := ssmClient.GetParameter(ctx, paramPrefix+"/config/openai_model")
	if err != nil {
		slog.Error("failed to load model id", "err", err)
		os.Exit(1)
	}

	openaiClient, err := openai.NewClient(ssmClient, paramPrefix, model)
	if err != nil {
		slog.Error("failed to create OpenAI client", "err", err)
		os.Exit(1)
	}

	recorder, err := eventlog.New(awsdynamodb.NewFromConfig(cfg), eventTable)
	if err != nil {
		slog.Error("failed to create event recorder", "err", err)
		os.Exit(1)
	}

	// Profile snapshot is loaded once and injected read-only.
	prof, err := profile.Load(ctx, ssmClient, paramPrefix+"/profile")
	if err != nil {
		slog.Error("failed to load profile", "err", err)
		os.Exit(1)
	}

	// ---- Handler ----
	svc, err := usecase.NewAssistantService(openaiClient, recorder, prof)
	if err != nil {
		slog.Error("failed to create assistant service", "err", err)
		os.Exit(1)
	}

	h, err := handler.NewHandler(svc)
	if err != nil {
		slog.Error("failed to create handler", "err", err)
		os.Exit(1)
	}

	lambda.Start(h.Handle)
}

func mustEnv(key string) string {
	v := os.Getenv(key)
	if v == "" {
		slog.Error("required environment variable is not set", "key", key)
		os.Exit(1)
	}
	return v
}
