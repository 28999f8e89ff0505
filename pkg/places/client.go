// Package places wraps the Google Places web service endpoints used for
// venue search and store detail pages.
package places

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

	pkgerrors "github.com/toyosu-dev/lunchnavi-backend/pkg/errors"
)

const (
	defaultBaseURL             = "https://maps.googleapis.com/maps/api/place"
	detailFields               = "name,geometry,reviews,photos,formatted_address,website,opening_hours"
	responseBodyReadLimit      = 1024
	defaultTimeout             = 10 * time.Second
	statusOK                   = "OK"
	statusZeroResults          = "ZERO_RESULTS"
)

var errAPIKeyRequired = errors.New("places api key is required")

// Client issues requests against the Places text-search and details APIs.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
}

// Option configures optional client behavior.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// WithBaseURL overrides the configured Places base URL.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		trimmed := strings.TrimSpace(baseURL)
		if trimmed != "" {
			c.baseURL = trimmed
		}
	}
}

// WithTimeout bounds every outbound request; a failed deadline surfaces
// as a dependency error, never as a hung call.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.httpClient.Timeout = timeout
		}
	}
}

// NewClient builds the Places client given an API key.
func NewClient(apiKey string, opts ...Option) (*Client, error) {
	trimmedKey := strings.TrimSpace(apiKey)
	if trimmedKey == "" {
		return nil, errAPIKeyRequired
	}

	client := &Client{
		apiKey:     trimmedKey,
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}

	for _, opt := range opts {
		if opt != nil {
			opt(client)
		}
	}

	if client.httpClient == nil {
		client.httpClient = &http.Client{Timeout: defaultTimeout}
	}
	if client.baseURL == "" {
		client.baseURL = defaultBaseURL
	}

	return client, nil
}

// TextSearchRequest describes one free-text venue search.
type TextSearchRequest struct {
	Query        string
	OriginLat    float64
	OriginLng    float64
	RadiusMeters int
	Language     string
}

// SearchHit is a single venue returned by the text-search endpoint.
type SearchHit struct {
	PlaceID          string
	Name             string
	Rating           float64
	UserRatingsTotal int
	Vicinity         string
	Lat              float64
	Lng              float64
}

// LatLng is a latitude/longitude pair returned by the API.
type LatLng struct {
	Latitude  float64
	Longitude float64
}

// Review is one user review attached to a place.
type Review struct {
	AuthorName string
	Rating     float64
	Text       string
}

// PlaceDetails holds the normalized payload of the details endpoint.
type PlaceDetails struct {
	PlaceID          string
	Name             string
	Location         LatLng
	Reviews          []Review
	PhotoReferences  []string
	FormattedAddress string
	Website          string
	WeekdayHours     []string
}

// TextSearch performs a free-text venue search around the provided origin.
// A ZERO_RESULTS status is a successful call with an empty hit list.
func (c *Client) TextSearch(ctx context.Context, req TextSearchRequest) ([]SearchHit, error) {
	if c == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "places client not configured")
	}
	if strings.TrimSpace(req.Query) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "search query is required")
	}

	params := url.Values{}
	params.Set("query", req.Query)
	params.Set("location", fmt.Sprintf("%g,%g", req.OriginLat, req.OriginLng))
	params.Set("radius", strconv.Itoa(req.RadiusMeters))
	params.Set("key", c.apiKey)
	if req.Language != "" {
		params.Set("language", req.Language)
	}

	var apiResp struct {
		Status  string `json:"status"`
		Results []struct {
			PlaceID          string  `json:"place_id"`
			Name             string  `json:"name"`
			Rating           float64 `json:"rating"`
			UserRatingsTotal int     `json:"user_ratings_total"`
			Vicinity         string  `json:"vicinity"`
			Geometry         struct {
				Location struct {
					Lat float64 `json:"lat"`
					Lng float64 `json:"lng"`
				} `json:"location"`
			} `json:"geometry"`
		} `json:"results"`
	}

	if err := c.getJSON(ctx, "textsearch/json", params, &apiResp); err != nil {
		return nil, err
	}

	if apiResp.Status != statusOK && apiResp.Status != statusZeroResults {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, fmt.Sprintf("text search rejected with status %s", apiResp.Status))
	}

	hits := make([]SearchHit, 0, len(apiResp.Results))
	for _, result := range apiResp.Results {
		hits = append(hits, SearchHit{
			PlaceID:          result.PlaceID,
			Name:             result.Name,
			Rating:           result.Rating,
			UserRatingsTotal: result.UserRatingsTotal,
			Vicinity:         result.Vicinity,
			Lat:              result.Geometry.Location.Lat,
			Lng:              result.Geometry.Location.Lng,
		})
	}
	return hits, nil
}

// Details fetches the store detail payload for the provided place ID.
func (c *Client) Details(ctx context.Context, placeID, language string) (*PlaceDetails, error) {
	if c == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "places client not configured")
	}
	trimmed := strings.TrimSpace(placeID)
	if trimmed == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "place ID is required")
	}

	params := url.Values{}
	params.Set("place_id", trimmed)
	params.Set("key", c.apiKey)
	params.Set("fields", detailFields)
	if language != "" {
		params.Set("language", language)
	}

	var apiResp struct {
		Status string `json:"status"`
		Result struct {
			Name     string `json:"name"`
			Geometry struct {
				Location struct {
					Lat float64 `json:"lat"`
					Lng float64 `json:"lng"`
				} `json:"location"`
			} `json:"geometry"`
			Reviews []struct {
				AuthorName string  `json:"author_name"`
				Rating     float64 `json:"rating"`
				Text       string  `json:"text"`
			} `json:"reviews"`
			Photos []struct {
				PhotoReference string `json:"photo_reference"`
			} `json:"photos"`
			FormattedAddress string `json:"formatted_address"`
			Website          string `json:"website"`
			OpeningHours     struct {
				WeekdayText []string `json:"weekday_text"`
			} `json:"opening_hours"`
		} `json:"result"`
	}

	if err := c.getJSON(ctx, "details/json", params, &apiResp); err != nil {
		return nil, err
	}

	if apiResp.Status != statusOK {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, fmt.Sprintf("place details rejected with status %s", apiResp.Status))
	}

	result := apiResp.Result
	reviews := make([]Review, 0, len(result.Reviews))
	for _, review := range result.Reviews {
		reviews = append(reviews, Review{
			AuthorName: review.AuthorName,
			Rating:     review.Rating,
			Text:       review.Text,
		})
	}
	photos := make([]string, 0, len(result.Photos))
	for _, photo := range result.Photos {
		photos = append(photos, photo.PhotoReference)
	}

	return &PlaceDetails{
		PlaceID: trimmed,
		Name:    result.Name,
		Location: LatLng{
			Latitude:  result.Geometry.Location.Lat,
			Longitude: result.Geometry.Location.Lng,
		},
		Reviews:          reviews,
		PhotoReferences:  photos,
		FormattedAddress: result.FormattedAddress,
		Website:          result.Website,
		WeekdayHours:     result.OpeningHours.WeekdayText,
	}, nil
}

func (c *Client) getJSON(ctx context.Context, path string, params url.Values, dest any) error {
	endpoint := fmt.Sprintf("%s/%s?%s", strings.TrimRight(c.baseURL, "/"), strings.TrimLeft(path, "/"), params.Encode())

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "build places request")
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "execute places request")
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, responseBodyReadLimit))
		return pkgerrors.Wrap(pkgerrors.CodeDependency, fmt.Errorf("status %d: %s", resp.StatusCode, strings.TrimSpace(string(msg))), "places request failed")
	}

	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "decode places response")
	}
	return nil
}
