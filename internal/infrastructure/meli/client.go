// Package meli implementa el cliente HTTP de MercadoLibre usado por la
// sincronización de órdenes. Usa net/http de la librería estándar; no
// requiere el SDK oficial.
package meli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	gosync "sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/almacenpro/rma-backend/internal/application/sync"
)

// Verificar en tiempo de compilación que Client implementa MarketplaceClient.
var _ sync.MarketplaceClient = (*Client)(nil)

const (
	defaultBaseURL = "https://api.mercadolibre.com"

	// margen antes del vencimiento real para renovar el access token.
	tokenSlack = 2 * time.Minute
)

// Client adaptador del puerto MarketplaceClient contra la API REST de
// MercadoLibre. Renueva el access token con el refresh token OAuth de
// forma transparente y serializada.
type Client struct {
	baseURL      string
	clientID     string
	clientSecret string
	refreshToken string
	sellerID     string
	httpClient   *http.Client

	mu          gosync.Mutex
	accessToken string
	expiraEn    time.Time
}

// NewClient construye el cliente. sellerID es el ID numérico del vendedor
// en MercadoLibre. Si las credenciales están vacías las llamadas devuelven
// error descriptivo en lugar de panic.
func NewClient(clientID, clientSecret, refreshToken, sellerID string) *Client {
	return &Client{
		baseURL:      defaultBaseURL,
		clientID:     clientID,
		clientSecret: clientSecret,
		refreshToken: refreshToken,
		sellerID:     sellerID,
		httpClient: &http.Client{
			Timeout: 25 * time.Second,
		},
	}
}

// NewClientConBase igual que NewClient pero apuntando a otra URL base.
// Pensado para tests con httptest.
func NewClientConBase(baseURL, clientID, clientSecret, refreshToken, sellerID string) *Client {
	c := NewClient(clientID, clientSecret, refreshToken, sellerID)
	c.baseURL = strings.TrimRight(baseURL, "/")
	return c
}

// ── Estructuras internas del protocolo ────────────────────────────────────────

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int    `json:"expires_in"`
}

type ordersSearchResponse struct {
	Results []struct {
		ID          int64  `json:"id"`
		Status      string `json:"status"`
		DateCreated string `json:"date_created"`
		Buyer       struct {
			Nickname string `json:"nickname"`
		} `json:"buyer"`
		TotalAmount decimal.Decimal `json:"total_amount"`
		Shipping    struct {
			ID *int64 `json:"id"`
		} `json:"shipping"`
	} `json:"results"`
	Paging struct {
		Total  int `json:"total"`
		Offset int `json:"offset"`
		Limit  int `json:"limit"`
	} `json:"paging"`
}

type shipmentResponse struct {
	ID     int64  `json:"id"`
	Status string `json:"status"`
}

type apiError struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

// ── Token OAuth ───────────────────────────────────────────────────────────────

// token devuelve un access token vigente, renovándolo si venció.
func (c *Client) token(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.accessToken != "" && time.Now().Before(c.expiraEn.Add(-tokenSlack)) {
		return c.accessToken, nil
	}
	if c.clientID == "" || c.refreshToken == "" {
		return "", fmt.Errorf("meli: credenciales OAuth no configuradas")
	}

	form := url.Values{
		"grant_type":    {"refresh_token"},
		"client_id":     {c.clientID},
		"client_secret": {c.clientSecret},
		"refresh_token": {c.refreshToken},
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/oauth/token", strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("meli: armar request de token: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("meli: renovar token: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", errorDeAPI("renovar token", resp)
	}
	var tok tokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&tok); err != nil {
		return "", fmt.Errorf("meli: decodificar token: %w", err)
	}
	c.accessToken = tok.AccessToken
	c.expiraEn = time.Now().Add(time.Duration(tok.ExpiresIn) * time.Second)
	return c.accessToken, nil
}

// ── Implementación del puerto ─────────────────────────────────────────────────

// OrdenesRecientes busca las órdenes del vendedor, paginando de a 50,
// creadas después de desde (todas si desde es nil).
func (c *Client) OrdenesRecientes(ctx context.Context, desde *time.Time) ([]sync.OrdenMarketplace, error) {
	tok, err := c.token(ctx)
	if err != nil {
		return nil, err
	}

	var ordenes []sync.OrdenMarketplace
	offset := 0
	for {
		q := url.Values{
			"seller": {c.sellerID},
			"sort":   {"date_desc"},
			"limit":  {"50"},
			"offset": {fmt.Sprint(offset)},
		}
		if desde != nil {
			q.Set("order.date_created.from", desde.UTC().Format(time.RFC3339))
		}

		var page ordersSearchResponse
		if err := c.getJSON(ctx, tok, "/orders/search?"+q.Encode(), &page); err != nil {
			return nil, err
		}

		for _, r := range page.Results {
			creada, err := time.Parse(time.RFC3339, r.DateCreated)
			if err != nil {
				return nil, fmt.Errorf("meli: fecha de orden %d inválida: %w", r.ID, err)
			}
			ordenes = append(ordenes, sync.OrdenMarketplace{
				ID:          r.ID,
				Estado:      r.Status,
				Comprador:   r.Buyer.Nickname,
				Total:       r.TotalAmount,
				EnvioID:     r.Shipping.ID,
				FechaCreada: creada,
			})
		}

		offset += page.Paging.Limit
		if len(page.Results) == 0 || offset >= page.Paging.Total {
			return ordenes, nil
		}
	}
}

// EstadoEnvio consulta el estado del envío asociado a una orden.
func (c *Client) EstadoEnvio(ctx context.Context, envioID int64) (string, error) {
	tok, err := c.token(ctx)
	if err != nil {
		return "", err
	}
	var env shipmentResponse
	if err := c.getJSON(ctx, tok, fmt.Sprintf("/shipments/%d", envioID), &env); err != nil {
		return "", err
	}
	return env.Status, nil
}

// getJSON GET autenticado con decodificación del cuerpo en out.
func (c *Client) getJSON(ctx context.Context, token, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("meli: armar request %s: %w", path, err)
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("meli: GET %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return errorDeAPI(path, resp)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("meli: decodificar respuesta de %s: %w", path, err)
	}
	return nil
}

// errorDeAPI extrae el mensaje de error del cuerpo, si lo hay.
func errorDeAPI(op string, resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	var ae apiError
	if json.Unmarshal(body, &ae) == nil && ae.Message != "" {
		return fmt.Errorf("meli: %s: %s (HTTP %d)", op, ae.Message, resp.StatusCode)
	}
	return fmt.Errorf("meli: %s: HTTP %d", op, resp.StatusCode)
}
