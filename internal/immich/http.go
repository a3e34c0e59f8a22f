package immich

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"slices"
)

// doGetJSON performs a GET request and unmarshals the JSON response into the result type.
// The endpoint should be the path after the base API URL (e.g., "search/person?name=Jane").
func doGetJSON[T any](ctx context.Context, im *Immich, endpoint string) (*T, error) {
	return doRequestJSON[T](ctx, im, http.MethodGet, endpoint, nil, http.StatusOK)
}

// doPostJSON performs a POST request with a JSON body and unmarshals the JSON response.
func doPostJSON[T any](ctx context.Context, im *Immich, endpoint string, requestBody any) (*T, error) {
	return doRequestJSON[T](ctx, im, http.MethodPost, endpoint, requestBody, http.StatusOK)
}

// doRequestJSON is the internal helper that performs HTTP requests with JSON body and response.
// It accepts one or more valid status codes. If the response status doesn't match any, an error is returned.
func doRequestJSON[T any](ctx context.Context, im *Immich, method, endpoint string, requestBody any, expectedStatuses ...int) (*T, error) {
	body, err := doRequestRaw(ctx, im, method, endpoint, requestBody, expectedStatuses...)
	if err != nil {
		return nil, err
	}

	var result T
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("%w: could not unmarshal response: %w", ErrUpstream, err)
	}

	return &result, nil
}

// doRequestRaw performs an HTTP request and returns the raw response body
// without JSON unmarshaling. Transport failures and unexpected statuses are
// wrapped with ErrUpstream.
func doRequestRaw(ctx context.Context, im *Immich, method, endpoint string, requestBody any, expectedStatuses ...int) ([]byte, error) {
	url := im.resolveURL(endpoint)

	var bodyReader io.Reader
	if requestBody != nil {
		jsonBody, err := json.Marshal(requestBody)
		if err != nil {
			return nil, fmt.Errorf("could not marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonBody)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("could not create request: %w", err)
	}

	req.Header.Set("x-api-key", im.apiKey)
	if requestBody != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := im.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: could not send request: %w", ErrUpstream, err)
	}
	defer resp.Body.Close()

	if !isExpectedStatus(resp.StatusCode, expectedStatuses) {
		return nil, fmt.Errorf("%w: status %d: %s", ErrUpstream, resp.StatusCode, readErrorBody(resp.Body))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: could not read response body: %w", ErrUpstream, err)
	}

	return body, nil
}

// isExpectedStatus checks if a status code is in the list of expected statuses.
func isExpectedStatus(code int, expected []int) bool {
	if len(expected) == 0 {
		return code == http.StatusOK
	}
	return slices.Contains(expected, code)
}
