// Package rest implementa los puertos de domain/remote sobre la API REST del
// backend usando net/http: bearer token, X-Request-ID por llamada, timeout de
// red y decodificación del cuerpo de error {message} del servidor.
package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/comercio-admin/internal/domain/remote"
	"github.com/jhoicas/comercio-admin/pkg/logger"
)

// maxBodyBytes tope de lectura de cualquier respuesta.
const maxBodyBytes = 4 << 20

// TokenSource provee el bearer vigente; vacío = sin sesión (el login y los
// endpoints públicos viajan sin Authorization).
type TokenSource interface {
	Token() string
}

// Config del cliente HTTP.
type Config struct {
	BaseURL string
	Timeout time.Duration
}

// Client cliente HTTP compartido por todos los adaptadores de colección.
type Client struct {
	baseURL string
	http    *http.Client
	log     *logger.Logger

	mu     sync.RWMutex
	tokens TokenSource
}

// NewClient construye el cliente. Timeout <= 0 usa 15 s.
func NewClient(cfg Config, log *logger.Logger) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		log:     log,
	}
}

// SetTokenSource liga la fuente del bearer. Se asigna después de construir el
// AuthStore porque el login viaja por este mismo cliente.
func (c *Client) SetTokenSource(ts TokenSource) {
	c.mu.Lock()
	c.tokens = ts
	c.mu.Unlock()
}

func (c *Client) bearer() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.tokens == nil {
		return ""
	}
	return c.tokens.Token()
}

func (c *Client) newRequest(ctx context.Context, method, path string, body io.Reader, contentType string) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("api: crear request %s %s: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if token := c.bearer(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req, nil
}

// do ejecuta la petición y decodifica la respuesta en out (nil = descartar
// el cuerpo). Un status >= 400 se devuelve como *remote.Error con el mensaje
// estructurado del backend cuando existe.
func (c *Client) do(req *http.Request, out any) error {
	started := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		if req.Context().Err() != nil {
			return fmt.Errorf("api: %s %s cancelada o con timeout: %w", req.Method, req.URL.Path, req.Context().Err())
		}
		return fmt.Errorf("api: %s %s: %w", req.Method, req.URL.Path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return fmt.Errorf("api: leer respuesta de %s: %w", req.URL.Path, err)
	}

	c.log.Debug().
		Str("method", req.Method).
		Str("path", req.URL.Path).
		Int("status", resp.StatusCode).
		Dur("elapsed", time.Since(started)).
		Str("request_id", req.Header.Get("X-Request-ID")).
		Msg("llamada al backend")

	if resp.StatusCode >= 400 {
		var payload struct {
			Message string `json:"message"`
		}
		_ = json.Unmarshal(body, &payload)
		return &remote.Error{StatusCode: resp.StatusCode, Message: payload.Message}
	}
	if out == nil || len(body) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("api: decodificar respuesta de %s: %w", req.URL.Path, err)
	}
	return nil
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	req, err := c.newRequest(ctx, http.MethodGet, path, nil, "")
	if err != nil {
		return err
	}
	return c.do(req, out)
}

func (c *Client) sendJSON(ctx context.Context, method, path string, in, out any) error {
	body, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("api: serializar payload de %s: %w", path, err)
	}
	req, err := c.newRequest(ctx, method, path, bytes.NewReader(body), "application/json")
	if err != nil {
		return err
	}
	return c.do(req, out)
}

func (c *Client) delete(ctx context.Context, path string, out any) error {
	req, err := c.newRequest(ctx, http.MethodDelete, path, nil, "")
	if err != nil {
		return err
	}
	return c.do(req, out)
}
