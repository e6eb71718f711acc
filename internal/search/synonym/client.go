package synonym

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

const (
	DefaultBaseURL = "https://pubchem.ncbi.nlm.nih.gov"
	maxBodyBytes   = 4 << 20
)

// ErrNotFound is returned when the lookup service knows no synonyms for a name.
var ErrNotFound = errors.New("no synonyms found")

// Source looks up alternate names for a chemical name.
type Source interface {
	Lookup(ctx context.Context, name string) ([]string, error)
}

type pubChemResponse struct {
	InformationList *struct {
		Information []struct {
			Synonym []string `json:"Synonym"`
		} `json:"Information"`
	} `json:"InformationList"`
}

// PubChemClient queries the PubChem PUG REST synonym endpoint.
type PubChemClient struct {
	baseURL string
	http    *http.Client
	limiter *rate.Limiter
}

type ClientConfig struct {
	BaseURL string
	Timeout time.Duration
	// RateLimit is requests per second; zero disables limiting.
	RateLimit float64
	Burst     int
}

func NewPubChemClient(cfg ClientConfig) *PubChemClient {
	base := strings.TrimRight(cfg.BaseURL, "/")
	if base == "" {
		base = DefaultBaseURL
	}
	c := &PubChemClient{
		baseURL: base,
		http:    &http.Client{Timeout: cfg.Timeout},
	}
	if cfg.RateLimit > 0 {
		burst := cfg.Burst
		if burst <= 0 {
			burst = 1
		}
		c.limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit), burst)
	}
	return c
}

// Lookup returns every synonym PubChem lists for name, across all matching substances.
func (c *PubChemClient) Lookup(ctx context.Context, name string) ([]string, error) {
	name = strings.ReplaceAll(name, "/", "")
	if strings.TrimSpace(name) == "" {
		return nil, ErrNotFound
	}

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limit: %w", err)
		}
	}

	endpoint := fmt.Sprintf("%s/rest/pug/substance/name/%s/synonyms/json", c.baseURL, url.PathEscape(name))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("pubchem request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("pubchem status %d", resp.StatusCode)
	}

	var body pubChemResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodyBytes)).Decode(&body); err != nil {
		return nil, fmt.Errorf("decode pubchem response: %w", err)
	}
	if body.InformationList == nil {
		return nil, ErrNotFound
	}

	var synonyms []string
	for _, info := range body.InformationList.Information {
		synonyms = append(synonyms, info.Synonym...)
	}
	if len(synonyms) == 0 {
		return nil, ErrNotFound
	}
	return synonyms, nil
}
