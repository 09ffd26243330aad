// Package services provides external service integrations for the cargo build delegator.
// It includes functionality for interacting with the crates.io registry and searching for crates.
package services

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/samber/lo"
)

// CrateInfo represents a simplified structure for crate details from a registry search.
type CrateInfo struct {
	Name        string
	MaxVersion  string
	Description string
	Homepage    string // Falls back to the repository URL when no homepage is set
}

// CratesRegistryService defines the interface for interacting with the crates.io registry.
type CratesRegistryService interface {
	SearchCrates(pattern string, size int) ([]CrateInfo, error)
}

// cratesRegistryServiceImpl is the concrete implementation of CratesRegistryService
// that talks to the public crates.io API.
type cratesRegistryServiceImpl struct {
	client *http.Client
	// baseSearchURL is the full base URL for the crates endpoint, e.g., "https://crates.io/api/v1/crates"
	baseSearchURL string
}

// NewCratesRegistryService creates a new instance of CratesRegistryService
// with a default HTTP client suitable for production use.
func NewCratesRegistryService() *cratesRegistryServiceImpl {
	return &cratesRegistryServiceImpl{
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
		baseSearchURL: "https://crates.io/api/v1/crates",
	}
}

// NewCratesRegistryServiceWithClient allows injecting a custom HTTP client and base search URL.
// This is primarily useful for unit tests where a mock server URL can be provided.
func NewCratesRegistryServiceWithClient(client *http.Client, baseSearchURL string) CratesRegistryService {
	return &cratesRegistryServiceImpl{
		client:        client,
		baseSearchURL: baseSearchURL,
	}
}

// cratesSearchResponse is the internal struct for decoding the crates.io search response.
// It matches the structure returned by `https://crates.io/api/v1/crates?q=`.
type cratesSearchResponse struct {
	Crates []struct {
		Name        string `json:"name"`
		MaxVersion  string `json:"max_version"`
		Description string `json:"description"`
		Homepage    string `json:"homepage"`
		Repository  string `json:"repository"`
	} `json:"crates"`
}

// SearchCrates searches the crates.io registry for crates matching the given pattern.
// It constructs the search URL, performs the HTTP GET request, and parses the JSON
// response into a slice of CrateInfo.
func (s *cratesRegistryServiceImpl) SearchCrates(pattern string, size int) ([]CrateInfo, error) {
	if pattern == "" {
		return nil, fmt.Errorf("search pattern cannot be empty")
	}

	if size <= 0 {
		size = 10
	}

	requestURL := fmt.Sprintf("%s?q=%s&per_page=%d", s.baseSearchURL, url.QueryEscape(pattern), size)

	req, err := http.NewRequest(http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create HTTP request: %w", err)
	}

	// crates.io rejects requests without a user agent
	req.Header.Set("User-Agent", "cargo-build-delegator")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to make HTTP request to crates.io: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("crates.io returned status %d: %s (body: %s)", resp.StatusCode, resp.Status, string(bodyBytes))
	}

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body from crates.io: %w", err)
	}

	var searchResp cratesSearchResponse
	if err := json.Unmarshal(bodyBytes, &searchResp); err != nil {
		return nil, fmt.Errorf("failed to parse crates.io response: %w", err)
	}

	crates := lo.Map(searchResp.Crates, func(crate struct {
		Name        string `json:"name"`
		MaxVersion  string `json:"max_version"`
		Description string `json:"description"`
		Homepage    string `json:"homepage"`
		Repository  string `json:"repository"`
	}, _ int,
	) CrateInfo {
		homepage := crate.Homepage
		if homepage == "" {
			homepage = crate.Repository
		}

		return CrateInfo{
			Name:        crate.Name,
			MaxVersion:  crate.MaxVersion,
			Description: crate.Description,
			Homepage:    homepage,
		}
	})

	return crates, nil
}
