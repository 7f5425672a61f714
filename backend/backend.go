package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/Chetanya2001/zip-mobility-solutions-sub000/config"
	"github.com/Chetanya2001/zip-mobility-solutions-sub000/models"
)

// Kind classifies a failed backend call into one of the three canonical
// buckets the UI knows how to talk about.
type Kind int

// The canonical failure kinds
const (
	KindServer Kind = iota
	KindNetwork
	KindTimeout
)

// Canonical error messages surfaced by the search and booking screens
const (
	TimeoutError = "TIMEOUT_ERROR"
	NetworkError = "NETWORK_ERROR"
	ServerError  = "SERVER_ERROR"
)

// Error is the typed failure every backend call returns. Message holds
// whatever the server said; Kind drives the canonical mapping.
type Error struct {
	Kind       Kind
	StatusCode int
	Message    string
	Err        error
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return Canonical(e)
}

func (e *Error) Unwrap() error { return e.Err }

// Canonical maps any error to one of the three canonical error messages.
func Canonical(err error) string {
	var be *Error
	if errors.As(err, &be) {
		switch be.Kind {
		case KindTimeout:
			return TimeoutError
		case KindNetwork:
			return NetworkError
		}
	}
	return ServerError
}

// Upload is one file part of a multipart request, held in memory the way the
// image picker hands it over.
type Upload struct {
	Field    string
	Filename string
	Content  []byte
}

// TokenSource supplies the current bearer token, or "" when logged out
type TokenSource func() string

// Caller contains the transport methods the typed API clients are built on
type Caller interface {
	GetJSON(ctx context.Context, path string, out interface{}) error
	PostJSON(ctx context.Context, path string, body, out interface{}) error
	PostMultipart(ctx context.Context, path string, fields map[string]string, files []Upload, out interface{}) error
}

type httpCaller struct {
	baseURL string
	client  *http.Client
	timeout time.Duration
	token   TokenSource
}

// New returns a Caller that talks to the ZipDrive origin from the config and
// attaches the bearer token from source, when one is present.
func New(conf *config.Config, source TokenSource) Caller {
	return &httpCaller{
		baseURL: strings.TrimRight(conf.BaseURL, "/"),
		client:  &http.Client{},
		timeout: conf.SearchTimeout,
		token:   source,
	}
}

// GetJSON issues a GET and decodes the JSON response into out
func (c *httpCaller) GetJSON(ctx context.Context, path string, out interface{}) error {
	return c.do(ctx, http.MethodGet, path, "", nil, out)
}

// PostJSON issues a POST with a JSON body and decodes the response into out
func (c *httpCaller) PostJSON(ctx context.Context, path string, body, out interface{}) error {
	b, err := json.Marshal(body)
	if err != nil {
		return &Error{Kind: KindNetwork, Err: err}
	}
	return c.do(ctx, http.MethodPost, path, "application/json", bytes.NewReader(b), out)
}

// PostMultipart issues a multipart POST carrying the given form fields and
// file parts and decodes the response into out
func (c *httpCaller) PostMultipart(ctx context.Context, path string, fields map[string]string, files []Upload, out interface{}) error {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		if err := mw.WriteField(k, v); err != nil {
			return &Error{Kind: KindNetwork, Err: err}
		}
	}
	for _, f := range files {
		part, err := mw.CreateFormFile(f.Field, f.Filename)
		if err != nil {
			return &Error{Kind: KindNetwork, Err: err}
		}
		if _, err := part.Write(f.Content); err != nil {
			return &Error{Kind: KindNetwork, Err: err}
		}
	}
	if err := mw.Close(); err != nil {
		return &Error{Kind: KindNetwork, Err: err}
	}
	return c.do(ctx, http.MethodPost, path, mw.FormDataContentType(), &buf, out)
}

func (c *httpCaller) do(ctx context.Context, method, path, contentType string, body io.Reader, out interface{}) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return &Error{Kind: KindNetwork, Err: err}
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if token := c.token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			zap.S().Warnw("request timeout",
				"path", path,
				"method", method,
				"timeout", c.timeout)
			return &Error{Kind: KindTimeout, Err: err}
		}
		return &Error{Kind: KindNetwork, Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return &Error{Kind: KindNetwork, Err: err}
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return &Error{
			Kind:       KindServer,
			StatusCode: resp.StatusCode,
			Message:    serverMessage(raw, resp.StatusCode),
		}
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return &Error{Kind: KindServer, StatusCode: resp.StatusCode, Err: err}
	}
	return nil
}

// serverMessage digs the human-readable message out of a non-2xx body. The
// backend answers with either a flat message or the nested response envelope.
func serverMessage(raw []byte, status int) string {
	var flat models.MessageError
	if err := json.Unmarshal(raw, &flat); err == nil {
		if flat.Message != "" {
			return flat.Message
		}
		if flat.Error != "" {
			return flat.Error
		}
	}
	var nested models.ErrorMessageResponse
	if err := json.Unmarshal(raw, &nested); err == nil && nested.Response.Message != "" {
		return nested.Response.Message
	}
	return fmt.Sprintf("server returned status %d", status)
}
