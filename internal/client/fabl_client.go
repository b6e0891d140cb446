// Package client provides the HTTP client for the upstream content API.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"syndication-gateway/internal/domain"
	"syndication-gateway/internal/metrics"
)

// Upstream resource names, used in errors and metrics labels.
const (
	ResourceTopic            = "topic"
	ResourceContentSummaries = "content-summaries"
)

// UpstreamError reports a non-success response from the content API,
// carrying the failing resource and the HTTP status.
type UpstreamError struct {
	Resource string
	ID       string
	Status   int
}

// Error implements the error interface.
func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s request for %q failed with status %d", e.Resource, e.ID, e.Status)
}

// FablClient fetches topic and content-summary resources from the content
// API. One call per identifier, no batching, no retries.
type FablClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewFablClient creates a client using the default transport.
func NewFablClient(baseURL string, timeout time.Duration) *FablClient {
	return NewFablClientWithTransport(baseURL, timeout, nil)
}

// NewFablClientWithTransport creates a client with a custom transport, e.g.
// an mTLS transport in production or a stub transport in tests.
func NewFablClientWithTransport(baseURL string, timeout time.Duration, transport http.RoundTripper) *FablClient {
	if transport == nil {
		transport = http.DefaultTransport
	}
	return &FablClient{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{
			Transport: transport,
			Timeout:   timeout,
		},
	}
}

// FetchTopic retrieves the topic resource for topicID.
func (c *FablClient) FetchTopic(ctx context.Context, topicID string) (*domain.Topic, error) {
	endpoint := c.baseURL + "/module/topic?id=" + url.QueryEscape(topicID)
	var topic domain.Topic
	if err := c.getJSON(ctx, ResourceTopic, topicID, endpoint, &topic); err != nil {
		return nil, err
	}
	return &topic, nil
}

// FetchContentSummaries retrieves the content summaries of one curation.
func (c *FablClient) FetchContentSummaries(ctx context.Context, curationID string) (*domain.ContentSummaries, error) {
	endpoint := c.baseURL + "/module/content-summaries?urn=" + url.QueryEscape(curationID)
	var summaries domain.ContentSummaries
	if err := c.getJSON(ctx, ResourceContentSummaries, curationID, endpoint, &summaries); err != nil {
		return nil, err
	}
	return &summaries, nil
}

func (c *FablClient) getJSON(ctx context.Context, resource, id, endpoint string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("building %s request: %w", resource, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		metrics.RecordUpstreamRequest(resource, "network_error")
		return fmt.Errorf("%s request failed: %w", resource, err)
	}
	defer resp.Body.Close()

	metrics.RecordUpstreamRequest(resource, strconv.Itoa(resp.StatusCode))
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return &UpstreamError{Resource: resource, ID: id, Status: resp.StatusCode}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding %s response: %w", resource, err)
	}
	return nil
}
