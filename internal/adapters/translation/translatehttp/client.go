// Package translatehttp implementa translation.Translator por HTTP.
package translatehttp

import (
	"context"
	"net/http"

	"med-reconciliation/internal/platform/httpclient"
	"med-reconciliation/internal/ports/translation"
)

const translatePath = "/v1/translate"

type Client struct {
	http *httpclient.Client
}

func New(c *httpclient.Client) *Client {
	return &Client{http: c}
}

// Translate no valida la respuesta; eso lo hace el dominio (ids iguales).
func (c *Client) Translate(ctx context.Context, in translation.Request) (translation.Response, error) {
	var out translation.Response
	if err := c.http.DoJSON(ctx, http.MethodPost, translatePath, in, &out); err != nil {
		return translation.Response{}, err
	}
	return out, nil
}
