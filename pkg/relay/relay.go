// Package relay implements the CORS relay the dashboard calls instead of
// the Gateway directly. It forwards the request to the destination named in
// the url query parameter and hands the response back with permissive CORS
// headers, since the Gateway itself sends none.
package relay

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/aws/aws-lambda-go/events"
)

// ForwardTimeout bounds the whole round trip to the destination.
const ForwardTimeout = 5 * time.Second

// corsHeaders are attached to every response, errors included, so the
// browser can read them.
func corsHeaders() map[string]string {
	return map[string]string{
		"Access-Control-Allow-Origin":  "*",
		"Access-Control-Allow-Methods": "GET, POST, OPTIONS",
		"Access-Control-Allow-Headers": "Content-Type",
	}
}

// Forwarder relays API Gateway proxy events to the destination URL.
type Forwarder struct {
	client *http.Client
}

// NewForwarder creates a Forwarder with the forwarding timeout applied.
func NewForwarder() *Forwarder {
	return &Forwarder{client: &http.Client{Timeout: ForwardTimeout}}
}

// Handle forwards one request. Preflight OPTIONS requests are answered
// locally; everything else must carry a url parameter naming an http(s)
// destination.
func (f *Forwarder) Handle(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	if req.HTTPMethod == http.MethodOptions {
		return events.APIGatewayProxyResponse{StatusCode: http.StatusNoContent, Headers: corsHeaders()}, nil
	}

	destination := req.QueryStringParameters["url"]
	if destination == "" {
		return errorResponse(http.StatusBadRequest, "url parameter is required"), nil
	}
	parsed, err := url.Parse(destination)
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") {
		return errorResponse(http.StatusBadRequest, "url must be an absolute http(s) URL"), nil
	}

	ctx, cancel := context.WithTimeout(ctx, ForwardTimeout)
	defer cancel()

	var body io.Reader
	if req.Body != "" {
		body = strings.NewReader(req.Body)
	}
	outbound, err := http.NewRequestWithContext(ctx, req.HTTPMethod, destination, body)
	if err != nil {
		return errorResponse(http.StatusBadRequest, "could not build forwarded request"), nil
	}
	if ct := req.Headers["Content-Type"]; ct != "" {
		outbound.Header.Set("Content-Type", ct)
	} else if req.Body != "" {
		outbound.Header.Set("Content-Type", "application/json")
	}

	resp, err := f.client.Do(outbound)
	if err != nil {
		return errorResponse(http.StatusBadGateway, "destination unreachable: "+err.Error()), nil
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return errorResponse(http.StatusBadGateway, "failed to read destination response"), nil
	}

	headers := corsHeaders()
	if ct := resp.Header.Get("Content-Type"); ct != "" {
		headers["Content-Type"] = ct
	}
	return events.APIGatewayProxyResponse{
		StatusCode: resp.StatusCode,
		Headers:    headers,
		Body:       string(payload),
	}, nil
}

func errorResponse(status int, message string) events.APIGatewayProxyResponse {
	headers := corsHeaders()
	headers["Content-Type"] = "application/json"
	body, _ := json.Marshal(map[string]string{"error": message})
	return events.APIGatewayProxyResponse{
		StatusCode: status,
		Headers:    headers,
		Body:       string(body),
	}
}
