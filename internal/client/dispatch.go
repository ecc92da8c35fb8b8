package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/ledgerly-io/ledgerly-go/v2/pkg/ledgerly"
)

// Send implements ledgerly.Requester. It is the single dispatch pipeline
// behind every service client: expand the path template, serialize the
// payload, run the middleware chain, map error statuses, and resolve the
// response body into a typed resource.
//
// HEAD and DELETE return a nil resource regardless of the response body.
// Errors are never retried here; the first failure surfaces immediately.
func (c *Client) Send(ctx context.Context, method, pathTemplate string, params map[string]interface{}, payload interface{}, headers map[string]string) (ledgerly.Resource, error) {
	body, err := marshalPayload(payload)
	if err != nil {
		return nil, err
	}

	uri := ledgerly.ExpandURI(pathTemplate, params)

	req := &ledgerly.Request{
		Method: method,
		URL:    uri,
		Body:   body,
	}

	for key, value := range headers {
		req.Header().Set(key, value)
	}

	// Content-Type wins over caller-supplied headers; the wire format is
	// always JSON.
	req.Header().Set("Content-Type", "application/json")

	if req.Header().Get("Accept") == "" {
		req.Header().Set("Accept", "application/json")
	}

	resp, err := c.invoke(ctx, req)
	if err != nil {
		return nil, err
	}

	err = ledgerly.ErrorFromResponse(resp, uri)
	if err != nil {
		return nil, err
	}

	if method == http.MethodHead || method == http.MethodDelete {
		return nil, nil
	}

	// A creation response reports the created resource's canonical path via
	// Location; otherwise the request path stands.
	resolvedPath := resp.Headers.Get("Location")
	if resolvedPath == "" {
		resolvedPath = uri
	}

	resource, err := c.factory.Create(resolvedPath, resp.Body)
	if err != nil {
		return nil, fmt.Errorf("resolving resource for %s: %w", resolvedPath, err)
	}

	return resource, nil
}

// Get sends a GET request.
func (c *Client) Get(ctx context.Context, pathTemplate string, params map[string]interface{}) (ledgerly.Resource, error) {
	return c.Send(ctx, http.MethodGet, pathTemplate, params, nil, nil)
}

// Post sends a POST request.
func (c *Client) Post(ctx context.Context, pathTemplate string, params map[string]interface{}, payload interface{}) (ledgerly.Resource, error) {
	return c.Send(ctx, http.MethodPost, pathTemplate, params, payload, nil)
}

// Put sends a PUT request.
func (c *Client) Put(ctx context.Context, pathTemplate string, params map[string]interface{}, payload interface{}) (ledgerly.Resource, error) {
	return c.Send(ctx, http.MethodPut, pathTemplate, params, payload, nil)
}

// Patch sends a PATCH request.
func (c *Client) Patch(ctx context.Context, pathTemplate string, params map[string]interface{}, payload interface{}) (ledgerly.Resource, error) {
	return c.Send(ctx, http.MethodPatch, pathTemplate, params, payload, nil)
}

// Delete sends a DELETE request. No resource resolution is attempted.
func (c *Client) Delete(ctx context.Context, pathTemplate string, params map[string]interface{}) error {
	_, err := c.Send(ctx, http.MethodDelete, pathTemplate, params, nil, nil)

	return err
}

// Head sends a HEAD request. No resource resolution is attempted.
func (c *Client) Head(ctx context.Context, pathTemplate string, params map[string]interface{}) error {
	_, err := c.Send(ctx, http.MethodHead, pathTemplate, params, nil, nil)

	return err
}

// marshalPayload serializes a payload to a JSON object body. An empty
// payload serializes to {}, never [] or null.
func marshalPayload(payload interface{}) ([]byte, error) {
	if payload == nil {
		return []byte("{}"), nil
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encoding payload: %w", err)
	}

	switch string(data) {
	case "null", "[]", "":
		return []byte("{}"), nil
	}

	return data, nil
}
