package fortnite

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const defaultBase = "https://fortnite-api.com/v2/stats/br/v2"

type Client struct {
	apiKey  string
	http    *http.Client
	baseURL string
}

func New(apiKey string, opts ...Option) *Client {
	c := &Client{
		apiKey:  apiKey,
		http:    &http.Client{Timeout: 10 * time.Second},
		baseURL: defaultBase,
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// envelope: el proveedor mete su propio "status" adentro del JSON,
// separado del status HTTP. Hay que mirar los dos.
type envelope struct {
	Status int             `json:"status"`
	Error  string          `json:"error"`
	Data   json.RawMessage `json:"data"`
}

// getEnvelope hace el GET, agrega Authorization y devuelve el envelope
// decodificado junto con el status HTTP. Los timeouts (de cliente o de
// contexto) salen como ErrTimeout.
func (c *Client) getEnvelope(ctx context.Context, q url.Values) (*envelope, int, error) {
	u := c.baseURL
	if len(q) > 0 {
		u += "?" + q.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, 0, err
	}
	if c.apiKey != "" {
		req.Header.Set("Authorization", c.apiKey)
	}
	req.Header.Set("Accept", "application/json")

	res, err := c.http.Do(req)
	if err != nil {
		if isTimeout(err) {
			return nil, 0, ErrTimeout
		}
		return nil, 0, err
	}
	defer res.Body.Close()

	body, err := io.ReadAll(io.LimitReader(res.Body, 1<<20))
	if err != nil {
		if isTimeout(err) {
			return nil, 0, ErrTimeout
		}
		return nil, 0, err
	}

	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		if res.StatusCode < 200 || res.StatusCode >= 300 {
			return nil, res.StatusCode, &APIError{Status: res.StatusCode, Body: strings.TrimSpace(string(body))}
		}
		return nil, res.StatusCode, fmt.Errorf("fortnite decode: %w", err)
	}
	if env.Status == 0 {
		// JSON válido pero sin el campo status del proveedor: no hay envelope
		// usable, devolvemos el error tipado en vez de un *envelope a medias
		return nil, res.StatusCode, &APIError{Status: res.StatusCode, Body: strings.TrimSpace(string(body))}
	}
	return &env, res.StatusCode, nil
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var ne net.Error
	return errors.As(err, &ne) && ne.Timeout()
}
