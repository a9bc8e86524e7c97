// Package restapi implementa los puertos de repositorio sobre la API REST de la
// tienda. Un único Client (URL base fija + cabeceras por defecto) se construye
// al arrancar y se comparte entre todos los adaptadores; no guarda estado
// mutable por petición, por lo que es seguro para uso concurrente.
package restapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/rs/zerolog"
)

// maxResponseBytes límite de lectura de una respuesta del backend.
const maxResponseBytes = 8 << 20

// Client cliente HTTP hacia el backend con URL base fija.
type Client struct {
	baseURL    string
	headers    http.Header
	httpClient *http.Client
	log        zerolog.Logger
}

// Option configura el Client.
type Option func(*Client)

// WithHeader agrega una cabecera por defecto (ej. Authorization).
func WithHeader(key, value string) Option {
	return func(c *Client) { c.headers.Set(key, value) }
}

// WithHTTPClient reemplaza el *http.Client (timeouts, transport de tests).
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithTimeout fija un timeout de red; cero conserva el valor por defecto de net/http.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.httpClient = &http.Client{Timeout: d, Transport: c.httpClient.Transport}
		}
	}
}

// WithLogger asigna el logger para trazas de peticiones.
func WithLogger(l zerolog.Logger) Option {
	return func(c *Client) { c.log = l }
}

// NewClient construye el cliente. baseURL no debe terminar en "/".
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		headers:    http.Header{},
		httpClient: &http.Client{},
		log:        zerolog.Nop(),
	}
	c.headers.Set("Accept", "application/json")
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// APIError respuesta no-2xx del backend. Message es el texto del servidor
// (campos error, message o details) si vino en el cuerpo.
type APIError struct {
	Method  string
	Path    string
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api: %s %s respondió %d: %s", e.Method, e.Path, e.Status, e.Message)
	}
	return fmt.Sprintf("api: %s %s respondió %d", e.Method, e.Path, e.Status)
}

// ServerMessage devuelve el mensaje del servidor (para anexarlo al aviso).
func (e *APIError) ServerMessage() string { return e.Message }

// do ejecuta la petición y devuelve el cuerpo si el status es 2xx.
func (c *Client) do(ctx context.Context, method, path string, body io.Reader, contentType string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("api: crear request %s %s: %w", method, path, err)
	}
	for k, vs := range c.headers {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("api: %s %s cancelada: %w", method, path, ctx.Err())
		}
		return nil, fmt.Errorf("api: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("api: leer respuesta %s %s: %w", method, path, err)
	}

	c.log.Debug().
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode).
		Dur("elapsed", time.Since(start)).
		Msg("backend")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &APIError{Method: method, Path: path, Status: resp.StatusCode, Message: serverMessage(raw)}
	}
	return raw, nil
}

func (c *Client) get(ctx context.Context, path string) ([]byte, error) {
	return c.do(ctx, http.MethodGet, path, nil, "")
}

// sendJSON serializa payload (nil = sin cuerpo) y lo envía con el método dado.
func (c *Client) sendJSON(ctx context.Context, method, path string, payload any) error {
	if payload == nil {
		_, err := c.do(ctx, method, path, nil, "")
		return err
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("api: serializar %s %s: %w", method, path, err)
	}
	_, err = c.do(ctx, method, path, bytes.NewReader(body), "application/json")
	return err
}

// serverMessage extrae el texto de error del cuerpo: error, message o details.
func serverMessage(raw []byte) string {
	var body map[string]json.RawMessage
	if err := json.Unmarshal(raw, &body); err != nil {
		return strings.TrimSpace(string(truncate(raw, 200)))
	}
	for _, key := range []string{"error", "message", "details"} {
		v, ok := body[key]
		if !ok {
			continue
		}
		var s string
		if err := json.Unmarshal(v, &s); err == nil && s != "" {
			return s
		}
	}
	return ""
}

// truncate corta b a lo sumo en n bytes sin partir una runa UTF-8.
func truncate(b []byte, n int) []byte {
	if len(b) <= n {
		return b
	}
	for n > 0 && !utf8.RuneStart(b[n]) {
		n--
	}
	return b[:n]
}

// pathf arma una ruta escapando cada segmento dinámico.
func pathf(format string, ids ...string) string {
	args := make([]any, len(ids))
	for i, id := range ids {
		args[i] = url.PathEscape(id)
	}
	return fmt.Sprintf(format, args...)
}
