package main

// Build the Lambda handler binary:
//   GOOS=linux GOARCH=arm64 CGO_ENABLED=0 go build -o bootstrap ./cmd/lambda-http

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	ginadapter "github.com/awslabs/aws-lambda-go-api-proxy/gin"
	"github.com/gin-gonic/gin"

	"coverletter-backend/internal/bootstrap"
	"coverletter-backend/internal/shared/config"
	"coverletter-backend/internal/shared/server/respond"
	"coverletter-backend/internal/shared/telemetry"
)

// lambdaApp builds the router on the first invocation and reuses it for warm starts.
type lambdaApp struct {
	build func(ctx context.Context) (*gin.Engine, error)

	once  sync.Once
	err   error
	proxy *ginadapter.GinLambdaV2
}

func newLambdaApp(build func(ctx context.Context) (*gin.Engine, error)) *lambdaApp {
	return &lambdaApp{build: build}
}

func buildRouter(ctx context.Context) (*gin.Engine, error) {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	app, err := bootstrap.Build(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return app.Router, nil
}

func (a *lambdaApp) handle(ctx context.Context, req events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error) {
	a.once.Do(func() {
		router, err := a.build(ctx)
		if err != nil {
			a.err = err
			return
		}
		a.proxy = ginadapter.NewV2(router)
	})
	if a.err != nil {
		telemetry.Error("lambda.bootstrap_failed", map[string]any{"error": a.err.Error()})
		body, _ := json.Marshal(respond.ErrorResponse{Code: "bootstrap_failed", Detail: "service is not configured"})
		return events.APIGatewayV2HTTPResponse{
			StatusCode: http.StatusInternalServerError,
			Body:       string(body),
			Headers:    map[string]string{"Content-Type": "application/json"},
		}, nil
	}
	return a.proxy.ProxyWithContext(ctx, req)
}

func main() {
	lambda.Start(newLambdaApp(buildRouter).handle)
}
