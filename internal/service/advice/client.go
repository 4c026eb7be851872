// Package advice asks the garden-advice model for care tips, offering
// the current catalog as recommendation context.
package advice

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/jardinverde/gardenia/internal/common"
	"github.com/jardinverde/gardenia/internal/entity"
)

const (
	defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"
	defaultModel   = "gemini-2.5-flash"
	userAgent      = "gardenia"
)

// Apology is returned whenever the advice endpoint cannot answer. The
// assistant must degrade to this string, never crash or surface a raw
// provider error to the visitor.
const Apology = "Tuve un problema conectando con mi base de conocimientos botánica. Por favor intenta de nuevo."

// Service answers free-form gardening questions.
type Service interface {
	Ask(ctx context.Context, query string, products []entity.Product) string
}

// Client implements Service using the Gemini generateContent REST API.
type Client struct {
	httpClient *http.Client
	baseURL    string
	model      string
	apiKey     string
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL sets a custom base URL (useful for testing).
func WithBaseURL(url string) Option {
	return func(c *Client) {
		c.baseURL = url
	}
}

// WithModel overrides the model name.
func WithModel(model string) Option {
	return func(c *Client) {
		c.model = model
	}
}

// NewClient creates an advice client. An empty apiKey is tolerated; every
// question then gets the apology.
func NewClient(httpClient *http.Client, apiKey string, opts ...Option) *Client {
	c := &Client{
		httpClient: httpClient,
		baseURL:    defaultBaseURL,
		model:      defaultModel,
		apiKey:     apiKey,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type generateRequest struct {
	SystemInstruction *content  `json:"systemInstruction,omitempty"`
	Contents          []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

// Ask sends the question with the catalog as system context. Any failure
// degrades to the apology string.
func (c *Client) Ask(ctx context.Context, query string, products []entity.Product) string {
	if c.apiKey == "" {
		common.Logger().Warn("advice endpoint not configured")
		return Apology
	}

	body, err := json.Marshal(generateRequest{
		SystemInstruction: &content{Parts: []part{{Text: systemInstruction(products)}}},
		Contents:          []content{{Parts: []part{{Text: query}}}},
	})
	if err != nil {
		return Apology
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", c.baseURL, c.model, c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return Apology
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		common.Logger().Warn("advice request failed", zap.Error(err))
		return Apology
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		common.Logger().Warn("advice request rejected", zap.Int("status", resp.StatusCode))
		return Apology
	}

	var gr generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&gr); err != nil {
		return Apology
	}
	if len(gr.Candidates) == 0 || len(gr.Candidates[0].Content.Parts) == 0 {
		return Apology
	}
	text := gr.Candidates[0].Content.Parts[0].Text
	if strings.TrimSpace(text) == "" {
		return Apology
	}
	return text
}

func systemInstruction(products []entity.Product) string {
	var sb strings.Builder
	sb.WriteString("Eres \"El Jardinero Virtual\", un asistente experto de una empresa de jardinería y paisajismo. ")
	sb.WriteString("Diagnostica problemas de plantas, da consejos de cuidado y recomienda productos de la tienda cuando correspondan. ")
	sb.WriteString("Si el problema requiere un servicio profesional, sugiere el formulario de contacto. Sé conciso.\n\n")
	sb.WriteString("Productos disponibles:\n")
	for _, p := range products {
		if !p.Visible {
			continue
		}
		fmt.Fprintf(&sb, "- %s (%s): $%.2f. %s\n", p.Name, p.Category, p.Price, p.Description)
	}
	return sb.String()
}

// Compile-time interface check
var _ Service = (*Client)(nil)
