package anythingllm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"maps"
	"net/http"
	"net/url"
)

// WithQuery sets the query string of the call.
func WithQuery(q url.Values) CallOption {
	return func(r *Request) {
		r.Query = q
	}
}

// WithHeader sets a per-call header. It wins over instance and default headers.
func WithHeader(key, value string) CallOption {
	return func(r *Request) {
		if r.Headers == nil {
			r.Headers = map[string]string{}
		}
		r.Headers[key] = value
	}
}

// WithHeaders sets several per-call headers.
func WithHeaders(h map[string]string) CallOption {
	return func(r *Request) {
		if r.Headers == nil {
			r.Headers = make(map[string]string, len(h))
		}
		maps.Copy(r.Headers, h)
	}
}

// WithAuthToken overrides the bearer credential for a single call.
func WithAuthToken(token string) CallOption {
	return WithHeader(HeaderAuthorization, "Bearer "+token)
}

func (c *clientImpl) do(ctx context.Context, method, path string, body any, opts []CallOption) (*Response, error) {
	req := Request{Method: method, Path: path, Body: body}
	for _, opt := range opts {
		opt(&req)
	}
	return c.Execute(ctx, req)
}

func (c *clientImpl) Get(ctx context.Context, path string, opts ...CallOption) (*Response, error) {
	return c.do(ctx, http.MethodGet, path, nil, opts)
}

func (c *clientImpl) Post(ctx context.Context, path string, body any, opts ...CallOption) (*Response, error) {
	return c.do(ctx, http.MethodPost, path, body, opts)
}

func (c *clientImpl) Put(ctx context.Context, path string, body any, opts ...CallOption) (*Response, error) {
	return c.do(ctx, http.MethodPut, path, body, opts)
}

func (c *clientImpl) Patch(ctx context.Context, path string, body any, opts ...CallOption) (*Response, error) {
	return c.do(ctx, http.MethodPatch, path, body, opts)
}

func (c *clientImpl) Delete(ctx context.Context, path string, opts ...CallOption) (*Response, error) {
	return c.do(ctx, http.MethodDelete, path, nil, opts)
}

// Decode unmarshals the payload into v. Failures are KindValidation errors.
func (r *Response) Decode(v any) error {
	if err := json.Unmarshal(r.Body, v); err != nil {
		return &Error{Kind: KindValidation, StatusCode: r.StatusCode, Body: string(r.Body), Err: err}
	}
	return nil
}

// getJSON decodes the payload of a GET call into out.
func (c *clientImpl) getJSON(ctx context.Context, path string, out any, opts []CallOption) error {
	resp, err := c.do(ctx, http.MethodGet, path, nil, opts)
	if err != nil {
		return err
	}
	return resp.Decode(out)
}

// rejected reports a 2xx response whose payload carries an error message.
func rejected(resp *Response, msg string) error {
	return &Error{Kind: KindAPI, StatusCode: resp.StatusCode, Body: string(resp.Body), Err: errors.New(msg)}
}

// malformed reports a 2xx response that lacks a required field.
func malformed(resp *Response, field string) error {
	return &Error{Kind: KindValidation, StatusCode: resp.StatusCode, Body: string(resp.Body), Err: fmt.Errorf("response has no %s", field)}
}
