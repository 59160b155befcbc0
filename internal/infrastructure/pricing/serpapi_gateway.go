package pricing

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"paint_estimator/internal/config"
	"paint_estimator/internal/domain/entities"
	"paint_estimator/internal/usecase/interfaces"

	"go.uber.org/zap"
)

var (
	ErrUpstreamStatus   = errors.New("price search upstream returned an error status")
	ErrUpstreamResponse = errors.New("price search upstream reported an error")
)

// maxErrorBody bounds how much of a failed upstream body ends up in errors.
const maxErrorBody = 512

// mockResults are served when no SERPAPI_KEY is configured.
var mockResults = []entities.PriceSnippet{
	{
		Title:     "Dulux Trade Vinyl Matt - Pure Brilliant White - 5L",
		Price:     "£42.00",
		Source:    "Mock Hardware Store",
		Link:      "#",
		Thumbnail: "https://via.placeholder.com/100?text=Dulux+5L",
	},
	{
		Title:     "Dulux Retail Matt Emulsion - White - 2.5L",
		Price:     "£26.00",
		Source:    "Mock DIY Shop",
		Link:      "#",
		Thumbnail: "https://via.placeholder.com/100?text=Dulux+2.5L",
	},
	{
		Title:     "Farrow & Ball Estate Emulsion - All White - 2.5L",
		Price:     "£59.00",
		Source:    "Mock Luxury Paints",
		Link:      "#",
		Thumbnail: "https://via.placeholder.com/100?text=F&B+2.5L",
	},
}

type serpAPIResponse struct {
	Error           string `json:"error"`
	ShoppingResults []struct {
		Title     string `json:"title"`
		Price     string `json:"price"`
		Source    string `json:"source"`
		Link      string `json:"link"`
		Thumbnail string `json:"thumbnail"`
	} `json:"shopping_results"`
}

// SerpAPIGateway searches Google Shopping through SerpApi.
type SerpAPIGateway struct {
	client       *http.Client
	apiKey       string
	baseURL      string
	googleDomain string
	country      string
	language     string
	numResults   int
	mockDelay    time.Duration
	mockMode     bool
}

var _ interfaces.IPriceLookupGateway = (*SerpAPIGateway)(nil)

func NewSerpAPIGateway(cfg config.Config, client *http.Client) *SerpAPIGateway {
	log := zap.S().Named("pricing")
	p := cfg.Pricing

	if client == nil {
		client = &http.Client{Timeout: p.Timeout}
	}
	g := &SerpAPIGateway{
		client:       client,
		apiKey:       strings.TrimSpace(p.APIKey),
		baseURL:      p.BaseURL,
		googleDomain: p.GoogleDomain,
		country:      p.Country,
		language:     p.Language,
		numResults:   p.NumResults,
		mockDelay:    p.MockDelay,
	}
	if g.apiKey == "" {
		g.mockMode = true
		log.Infow("no SERPAPI_KEY found, price search runs in mock mode", "delay", p.MockDelay)
		return g
	}
	log.Infow("serpapi client initialized", "base_url", p.BaseURL, "google_domain", p.GoogleDomain)
	return g
}

func (g *SerpAPIGateway) Search(ctx context.Context, query, location string) (entities.PriceSearchResult, error) {
	if g.mockMode {
		return g.mockSearch(ctx)
	}

	log := zap.S().Named("pricing")
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.searchURL(query, location), nil)
	if err != nil {
		return entities.PriceSearchResult{}, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		log.Warnw("serpapi request failed", "error", err)
		return entities.PriceSearchResult{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		var payload serpAPIResponse
		if json.Unmarshal(body, &payload) == nil && payload.Error != "" {
			return entities.PriceSearchResult{}, fmt.Errorf("%w: status %d: %s", ErrUpstreamStatus, resp.StatusCode, payload.Error)
		}
		return entities.PriceSearchResult{}, fmt.Errorf("%w: status %d", ErrUpstreamStatus, resp.StatusCode)
	}

	var payload serpAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return entities.PriceSearchResult{}, fmt.Errorf("decode serpapi response: %w", err)
	}
	if payload.Error != "" {
		return entities.PriceSearchResult{}, fmt.Errorf("%w: %s", ErrUpstreamResponse, payload.Error)
	}

	results := make([]entities.PriceSnippet, 0, len(payload.ShoppingResults))
	for _, item := range payload.ShoppingResults {
		results = append(results, entities.PriceSnippet{
			Title:     item.Title,
			Price:     item.Price,
			Source:    item.Source,
			Link:      item.Link,
			Thumbnail: item.Thumbnail,
		})
	}
	log.Debugw("serpapi search success", "results", len(results))
	return entities.PriceSearchResult{Results: results, IsMock: false}, nil
}

func (g *SerpAPIGateway) MockMode() bool {
	return g.mockMode
}

func (g *SerpAPIGateway) mockSearch(ctx context.Context) (entities.PriceSearchResult, error) {
	if g.mockDelay > 0 {
		t := time.NewTimer(g.mockDelay)
		defer t.Stop()
		select {
		case <-ctx.Done():
			return entities.PriceSearchResult{}, ctx.Err()
		case <-t.C:
		}
	}
	return entities.PriceSearchResult{
		Results: append([]entities.PriceSnippet(nil), mockResults...),
		IsMock:  true,
	}, nil
}

func (g *SerpAPIGateway) searchURL(query, location string) string {
	params := url.Values{}
	params.Set("engine", "google_shopping")
	params.Set("q", query)
	params.Set("google_domain", g.googleDomain)
	params.Set("gl", g.country)
	params.Set("hl", g.language)
	params.Set("api_key", g.apiKey)
	params.Set("num", strconv.Itoa(g.numResults))
	if location != "" {
		params.Set("location", location)
	}
	return g.baseURL + "?" + params.Encode()
}
