// Package images talks to the ImageKit media service through the official
// SDK: it uploads files and builds transformed delivery URLs for them.
package images

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/imagekit-developer/imagekit-go"
	"github.com/imagekit-developer/imagekit-go/api"
	"github.com/imagekit-developer/imagekit-go/api/uploader"
	ikurl "github.com/imagekit-developer/imagekit-go/url"
)

// DefaultUploadPrefix is the base of ImageKit's public upload API.
const DefaultUploadPrefix = "https://upload.imagekit.io/api/v1/"

// Config carries the account credentials and endpoints.
type Config struct {
	PublicKey    string
	PrivateKey   string
	URLEndpoint  string
	UploadPrefix string
	Timeout      time.Duration
}

// UploadResult is the subset of the upload response the service uses.
type UploadResult struct {
	FileID   string
	Name     string
	URL      string
	FilePath string
}

// Transformation is one step of an ImageKit URL transformation chain.
// Zero fields are omitted.
type Transformation struct {
	Quality string
	Format  string
	Width   string
}

// OptimizedCover is the transformation applied to blog cover images.
var OptimizedCover = Transformation{Quality: "auto", Format: "webp", Width: "1280"}

// params maps the step onto the SDK's transformation keys.
func (t Transformation) params() map[string]any {
	p := map[string]any{}
	if t.Quality != "" {
		p["quality"] = t.Quality
	}
	if t.Format != "" {
		p["format"] = t.Format
	}
	if t.Width != "" {
		p["width"] = t.Width
	}
	return p
}

// String renders the step the way it appears in a delivery URL, parameters
// in sorted order.
func (t Transformation) String() string {
	var parts []string
	if t.Quality != "" {
		parts = append(parts, "q-"+t.Quality)
	}
	if t.Format != "" {
		parts = append(parts, "f-"+t.Format)
	}
	if t.Width != "" {
		parts = append(parts, "w-"+t.Width)
	}
	sort.Strings(parts)
	return strings.Join(parts, ",")
}

// Client wraps an SDK instance. It is safe for concurrent use.
type Client struct {
	ik *imagekit.ImageKit
}

// NewClient creates a client from cfg.
func NewClient(cfg Config) (*Client, error) {
	if cfg.URLEndpoint == "" {
		return nil, fmt.Errorf("imagekit url endpoint is required")
	}

	ik := imagekit.NewFromParams(imagekit.NewParams{
		PrivateKey:  cfg.PrivateKey,
		PublicKey:   cfg.PublicKey,
		UrlEndpoint: cfg.URLEndpoint,
	})
	if cfg.UploadPrefix != "" {
		ik.Uploader.Config.API.UploadPrefix = strings.TrimRight(cfg.UploadPrefix, "/") + "/"
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	ik.Uploader.Client = &http.Client{Timeout: timeout}

	return &Client{ik: ik}, nil
}

// Upload stores file under folder and returns where ImageKit put it.
func (c *Client) Upload(ctx context.Context, file []byte, fileName, folder string) (*UploadResult, error) {
	resp, err := c.ik.Uploader.Upload(ctx, bytes.NewReader(file), uploader.UploadParam{
		FileName:          fileName,
		Folder:            folder,
		UseUniqueFileName: api.Bool(true),
	})
	if err != nil {
		return nil, fmt.Errorf("imagekit upload failed: %w", err)
	}
	if resp.Data.FilePath == "" {
		return nil, fmt.Errorf("imagekit upload failed: response has no filePath")
	}
	return &UploadResult{
		FileID:   resp.Data.FileId,
		Name:     resp.Data.Name,
		URL:      resp.Data.Url,
		FilePath: resp.Data.FilePath,
	}, nil
}

// URL returns the delivery URL of path with the transformations applied as a
// path segment, e.g. https://ik.imagekit.io/demo/tr:f-webp,q-auto,w-1280/blogs/a.jpg
func (c *Client) URL(path string, transformations ...Transformation) (string, error) {
	params := ikurl.UrlParam{Path: strings.TrimLeft(path, "/")}
	for _, t := range transformations {
		if p := t.params(); len(p) > 0 {
			params.Transformations = append(params.Transformations, p)
		}
	}

	u, err := c.ik.Url(params)
	if err != nil {
		return "", fmt.Errorf("failed to build image url: %w", err)
	}
	// The SDK swallows parse failures and returns an empty string.
	if u == "" {
		return "", fmt.Errorf("failed to build image url for %q", path)
	}
	return u, nil
}
