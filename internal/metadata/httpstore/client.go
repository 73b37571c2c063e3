// Package httpstore is a metadata.Store that forwards uploads to a remote
// upload service speaking the POST /upload multipart protocol.
package httpstore

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"strings"
	"time"

	"escrow-marketplace/internal/metadata"
	"escrow-marketplace/internal/model"
	"escrow-marketplace/pkg/log"
)

// DefaultTimeout bounds each call to the upload service.
const DefaultTimeout = 30 * time.Second

type Config struct {
	BaseURL    string
	MaxBytes   int64
	HTTPClient *http.Client
}

// Client is the upload service HTTP client.
type Client struct {
	baseURL    string
	maxBytes   int64
	httpClient *http.Client
	l          log.Logger
}

var _ metadata.Store = (*Client)(nil)

// New creates a new upload service client.
func New(cfg Config, l log.Logger) *Client {
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = &http.Client{Timeout: DefaultTimeout}
	}
	if cfg.MaxBytes <= 0 {
		cfg.MaxBytes = metadata.DefaultMaxBytes
	}
	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		maxBytes:   cfg.MaxBytes,
		httpClient: cfg.HTTPClient,
		l:          l,
	}
}

type uploadResponse struct {
	URL      string `json:"url"`
	Filename string `json:"filename"`
	Error    string `json:"error"`
}

// Put uploads the file as the multipart field "file".
func (c *Client) Put(ctx context.Context, input metadata.PutInput) (metadata.Object, error) {
	if err := metadata.Validate(input, c.maxBytes); err != nil {
		return metadata.Object{}, err
	}

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename="upload%s"`, metadata.Extension(input.Filename)))
	header.Set("Content-Type", input.ContentType)
	part, err := mw.CreatePart(header)
	if err != nil {
		return metadata.Object{}, fmt.Errorf("failed to create form part: %w", err)
	}
	if _, err := part.Write(input.Data); err != nil {
		return metadata.Object{}, fmt.Errorf("failed to write form part: %w", err)
	}
	if err := mw.Close(); err != nil {
		return metadata.Object{}, fmt.Errorf("failed to close form: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/upload", &body)
	if err != nil {
		return metadata.Object{}, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		c.l.Errorf(ctx, "metadata/httpstore.Put: %v", err)
		return metadata.Object{}, fmt.Errorf("failed to call upload service: %w", err)
	}
	defer resp.Body.Close()

	var out uploadResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, 1<<20)).Decode(&out); err != nil {
		return metadata.Object{}, fmt.Errorf("upload service error: %d: %w", resp.StatusCode, err)
	}
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		if resp.StatusCode == http.StatusBadRequest && out.Error != "" {
			return metadata.Object{}, fmt.Errorf("%w: %s", model.ErrInvalidInput, out.Error)
		}
		return metadata.Object{}, fmt.Errorf("upload service error: %d", resp.StatusCode)
	}
	if out.URL == "" || out.Filename == "" {
		return metadata.Object{}, fmt.Errorf("upload service returned an incomplete response")
	}

	return metadata.Object{Name: out.Filename, URL: out.URL}, nil
}

// Get downloads /uploads/{name} from the upload service.
func (c *Client) Get(ctx context.Context, name string) ([]byte, error) {
	if !metadata.ValidName(name) {
		return nil, metadata.ErrInvalidName
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/uploads/"+url.PathEscape(name), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		c.l.Errorf(ctx, "metadata/httpstore.Get: %v", err)
		return nil, fmt.Errorf("failed to call upload service: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return nil, metadata.ErrObjectNotFound
	default:
		return nil, fmt.Errorf("upload service error: %d", resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, c.maxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	if int64(len(data)) > c.maxBytes {
		return nil, metadata.ErrTooLarge
	}
	return data, nil
}
