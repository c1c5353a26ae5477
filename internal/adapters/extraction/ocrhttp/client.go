// Package ocrhttp implementa extraction.Extractor contra el servicio OCR por HTTP.
package ocrhttp

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"med-reconciliation/internal/domain/reconcile"
	"med-reconciliation/internal/platform/httpclient"
	"med-reconciliation/internal/ports/extraction"
)

const extractPath = "/v1/extract"

type Client struct {
	http *httpclient.Client
}

func New(c *httpclient.Client) *Client {
	return &Client{http: c}
}

type imagePayload struct {
	MimeType string `json:"mimeType"`
	Data     string `json:"data"`
	Source   string `json:"source,omitempty"`
}

type extractRequest struct {
	Images []imagePayload `json:"images"`
}

// Extract envía las imágenes en base64. Cualquier falla (transporte, no-2xx,
// JSON inválido) sale envuelta en reconcile.ErrExtractionFailed.
func (c *Client) Extract(ctx context.Context, images []extraction.Image) (extraction.Response, error) {
	if len(images) == 0 {
		return extraction.Response{}, fmt.Errorf("%w: no images", reconcile.ErrExtractionFailed)
	}

	req := extractRequest{Images: make([]imagePayload, 0, len(images))}
	for _, img := range images {
		mime := strings.TrimSpace(img.MimeType)
		if mime == "" {
			mime = http.DetectContentType(img.Data)
		}
		req.Images = append(req.Images, imagePayload{
			MimeType: mime,
			Data:     base64.StdEncoding.EncodeToString(img.Data),
			Source:   img.Source,
		})
	}

	var raw json.RawMessage
	if err := c.http.DoJSON(ctx, http.MethodPost, extractPath, req, &raw); err != nil {
		return extraction.Response{}, fmt.Errorf("%w: %v", reconcile.ErrExtractionFailed, err)
	}
	return reconcile.DecodeExtraction(raw)
}
