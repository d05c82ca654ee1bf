package handler

import (
	"context"

	"github.com/aws/aws-lambda-go/events"
	"github.com/rs/zerolog"

	"github.com/deppfellow/form-handler/internal/event"
	"github.com/deppfellow/form-handler/internal/service"
)

// LambdaHandler adapts API Gateway proxy events to the submission service.
type LambdaHandler struct {
	submissions *service.SubmissionService
	logger      *zerolog.Logger
}

// NewLambdaHandler constructs a LambdaHandler.
func NewLambdaHandler(submissions *service.SubmissionService, logger *zerolog.Logger) *LambdaHandler {
	return &LambdaHandler{
		submissions: submissions,
		logger:      logger,
	}
}

// Handle is the Lambda entry point. It never returns an error: every
// failure is already part of the HTTP response.
func (h *LambdaHandler) Handle(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	logger := h.logger.With().
		Str("request_id", req.RequestContext.RequestID).
		Str("method", req.HTTPMethod).
		Logger()

	res := h.submissions.Process(logger.WithContext(ctx), EventFromProxyRequest(req))

	return ProxyResponse(res), nil
}

// EventFromProxyRequest converts an API Gateway proxy request. Single
// value headers win; multi-value headers fill in names missing from them.
func EventFromProxyRequest(req events.APIGatewayProxyRequest) event.Event {
	headers := make(event.Headers, len(req.Headers)+len(req.MultiValueHeaders))
	for name, values := range req.MultiValueHeaders {
		if len(values) > 0 {
			headers[name] = values[0]
		}
	}

	for name, value := range req.Headers {
		headers[name] = value
	}

	return event.Event{
		Headers:         headers,
		Body:            req.Body,
		IsBase64Encoded: req.IsBase64Encoded,
		Path:            req.Path,
	}
}

// ProxyResponse converts a pipeline response for API Gateway.
func ProxyResponse(res event.Response) events.APIGatewayProxyResponse {
	return events.APIGatewayProxyResponse{
		StatusCode: res.StatusCode,
		Headers:    res.Headers,
		Body:       res.Body,
	}
}
