package slides

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	slides "google.golang.org/api/slides/v1"

	"github.com/slidescribe/slidescribe/internal/google"
)

// Client wraps the Google Slides service.
//
// Its methods hand back the service's errors unwrapped so the caller can
// normalize them with NormalizeError; wrapping here would bury the
// googleapi detail the normalizer extracts.
type Client struct {
	svc *slides.Service
}

// NewClient creates a Slides client authenticated with the refresh-token
// credentials from the environment.
func NewClient(ctx context.Context) (*Client, error) {
	cfg, err := google.ConfigFromEnv()
	if err != nil {
		return nil, err
	}
	return NewClientWithConfig(ctx, cfg)
}

// NewClientWithConfig creates a Slides client from explicit credentials.
func NewClientWithConfig(ctx context.Context, cfg *google.Config) (*Client, error) {
	httpClient, err := cfg.HTTPClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to authenticate with Google: %w", err)
	}

	svc, err := slides.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("failed to create Slides service: %w", err)
	}

	return &Client{svc: svc}, nil
}

// NewClientWithService wraps an existing Slides service. Used by tests.
func NewClientWithService(svc *slides.Service) *Client {
	return &Client{svc: svc}
}

// Create creates a new presentation with the given title.
func (c *Client) Create(ctx context.Context, title string) (*slides.Presentation, error) {
	return c.svc.Presentations.Create(&slides.Presentation{Title: title}).Context(ctx).Do()
}

// Get retrieves a presentation by ID. A non-empty fields mask restricts
// the response to the named fields; an empty mask returns the full object.
func (c *Client) Get(ctx context.Context, presentationID, fields string) (*slides.Presentation, error) {
	call := c.svc.Presentations.Get(presentationID).Context(ctx)
	if fields != "" {
		call = call.Fields(googleapi.Field(fields))
	}
	return call.Do()
}

// BatchUpdate applies a sequence of update requests to a presentation.
// The requests and write control are forwarded verbatim; the remote
// service validates their shape.
func (c *Client) BatchUpdate(ctx context.Context, presentationID string, requests []*slides.Request, writeControl *slides.WriteControl) (*slides.BatchUpdatePresentationResponse, error) {
	body := &slides.BatchUpdatePresentationRequest{
		Requests:     requests,
		WriteControl: writeControl,
	}
	return c.svc.Presentations.BatchUpdate(presentationID, body).Context(ctx).Do()
}

// DecodeBatchUpdate converts opaque request and write-control values, as
// received from the tool arguments, into the typed API structures. Each
// value travels through JSON with unknown fields disallowed, so a typo'd
// request key becomes a decode error naming the offending entry instead
// of the mutation being silently dropped.
func DecodeBatchUpdate(rawRequests []any, rawWriteControl map[string]any) ([]*slides.Request, *slides.WriteControl, error) {
	requests := make([]*slides.Request, 0, len(rawRequests))
	for i, raw := range rawRequests {
		request := &slides.Request{}
		if err := decodeStrict(raw, request); err != nil {
			return nil, nil, fmt.Errorf("invalid requests[%d]: %w", i, err)
		}
		requests = append(requests, request)
	}

	var writeControl *slides.WriteControl
	if rawWriteControl != nil {
		writeControl = &slides.WriteControl{}
		if err := decodeStrict(rawWriteControl, writeControl); err != nil {
			return nil, nil, fmt.Errorf("invalid writeControl: %w", err)
		}
	}
	return requests, writeControl, nil
}

func decodeStrict(raw any, target any) error {
	data, err := json.Marshal(raw)
	if err != nil {
		return err
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	return dec.Decode(target)
}

// GetPage retrieves a single page of a presentation by object ID.
func (c *Client) GetPage(ctx context.Context, presentationID, pageObjectID string) (*slides.Page, error) {
	return c.svc.Presentations.Pages.Get(presentationID, pageObjectID).Context(ctx).Do()
}
