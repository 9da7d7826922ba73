package anythingllm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
)

func (c *clientImpl) ListWorkspaces(ctx context.Context, opts ...CallOption) ([]Workspace, error) {
	var out struct {
		Workspaces []Workspace `json:"workspaces"`
	}
	if err := c.getJSON(ctx, PathWorkspaces, &out, opts); err != nil {
		return nil, err
	}
	return out.Workspaces, nil
}

// GetWorkspace returns the workspace identified by slug. A missing workspace
// is reported as an error matching ErrNotFound.
func (c *clientImpl) GetWorkspace(ctx context.Context, slug string, opts ...CallOption) (*Workspace, error) {
	if slug == "" {
		return nil, &Error{Kind: KindValidation, Err: errors.New("workspace slug is required")}
	}
	resp, err := c.Get(ctx, fmt.Sprintf(PathWorkspace, url.PathEscape(slug)), opts...)
	if err != nil {
		return nil, err
	}
	var out struct {
		Workspace json.RawMessage `json:"workspace"`
	}
	if err := resp.Decode(&out); err != nil {
		return nil, err
	}

	// Depending on the server version the workspace is an object or a one element list.
	var ws Workspace
	switch {
	case len(out.Workspace) == 0 || string(out.Workspace) == "null":
		return nil, notFound(resp, "workspace "+slug)
	case out.Workspace[0] == '[':
		var list []Workspace
		if err := json.Unmarshal(out.Workspace, &list); err != nil {
			return nil, &Error{Kind: KindValidation, StatusCode: resp.StatusCode, Body: string(resp.Body), Err: err}
		}
		if len(list) == 0 {
			return nil, notFound(resp, "workspace "+slug)
		}
		ws = list[0]
	default:
		if err := json.Unmarshal(out.Workspace, &ws); err != nil {
			return nil, &Error{Kind: KindValidation, StatusCode: resp.StatusCode, Body: string(resp.Body), Err: err}
		}
	}
	return &ws, nil
}

func (c *clientImpl) CreateWorkspace(ctx context.Context, in NewWorkspace, opts ...CallOption) (*Workspace, error) {
	if in.Name == "" {
		return nil, &Error{Kind: KindValidation, Err: errors.New("workspace name is required")}
	}
	resp, err := c.Post(ctx, PathWorkspaceNew, in, opts...)
	if err != nil {
		return nil, err
	}
	var out struct {
		Workspace *Workspace `json:"workspace"`
		Message   string     `json:"message"`
	}
	if err := resp.Decode(&out); err != nil {
		return nil, err
	}
	if out.Workspace == nil {
		if out.Message != "" {
			return nil, rejected(resp, out.Message)
		}
		return nil, malformed(resp, "workspace")
	}
	return out.Workspace, nil
}

func (c *clientImpl) DeleteWorkspace(ctx context.Context, slug string, opts ...CallOption) error {
	if slug == "" {
		return &Error{Kind: KindValidation, Err: errors.New("workspace slug is required")}
	}
	_, err := c.Delete(ctx, fmt.Sprintf(PathWorkspace, url.PathEscape(slug)), opts...)
	return err
}

func (c *clientImpl) UpdateEmbeddings(ctx context.Context, slug string, in EmbeddingsUpdate, opts ...CallOption) (*Workspace, error) {
	if slug == "" {
		return nil, &Error{Kind: KindValidation, Err: errors.New("workspace slug is required")}
	}
	if in.Adds == nil {
		in.Adds = []string{}
	}
	if in.Deletes == nil {
		in.Deletes = []string{}
	}
	resp, err := c.Post(ctx, fmt.Sprintf(PathWorkspaceEmbed, url.PathEscape(slug)), in, opts...)
	if err != nil {
		return nil, err
	}
	var out struct {
		Workspace *Workspace `json:"workspace"`
	}
	if err := resp.Decode(&out); err != nil {
		return nil, err
	}
	if out.Workspace == nil {
		return nil, malformed(resp, "workspace")
	}
	return out.Workspace, nil
}

// ListDocuments returns the root of the document storage tree.
func (c *clientImpl) ListDocuments(ctx context.Context, opts ...CallOption) (*Document, error) {
	var out struct {
		LocalFiles *Document `json:"localFiles"`
	}
	resp, err := c.Get(ctx, PathDocuments, opts...)
	if err != nil {
		return nil, err
	}
	if err := resp.Decode(&out); err != nil {
		return nil, err
	}
	if out.LocalFiles == nil {
		return nil, malformed(resp, "localFiles")
	}
	return out.LocalFiles, nil
}

func notFound(resp *Response, what string) error {
	return &Error{Kind: KindAPI, StatusCode: http.StatusNotFound, Body: string(resp.Body), Err: fmt.Errorf("%s not found", what)}
}
