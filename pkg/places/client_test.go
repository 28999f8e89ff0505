package places

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"

	pkgerrors "github.com/toyosu-dev/lunchnavi-backend/pkg/errors"
)

func TestClientTextSearchRequest(t *testing.T) {
	respBody := `{"status":"OK","results":[
		{"place_id":"place_1","name":"Soba Ichi","rating":4.2,"user_ratings_total":120,"vicinity":"Toyosu 1-2-3","geometry":{"location":{"lat":35.66,"lng":139.79}}},
		{"place_id":"place_2","name":"Ramen Go","rating":3.9,"user_ratings_total":88,"vicinity":"Toyosu 4-5-6","geometry":{"location":{"lat":35.65,"lng":139.80}}}
	]}`

	var capturedURL string
	rt := roundTripFunc(func(req *http.Request) (*http.Response, error) {
		capturedURL = req.URL.String()
		return &http.Response{
			StatusCode: http.StatusOK,
			Body:       io.NopCloser(strings.NewReader(respBody)),
			Header:     http.Header{},
		}, nil
	})

	client, err := NewClient("test-key", WithBaseURL("http://places.test/api"), WithHTTPClient(&http.Client{Transport: rt}))
	if err != nil {
		t.Fatalf("new client: %v", err)
	}

	hits, err := client.TextSearch(context.Background(), TextSearchRequest{
		Query:        "ラーメン ランチ",
		OriginLat:    35.6606,
		OriginLng:    139.7945,
		RadiusMeters: 5000,
		Language:     "ja",
	})
	if err != nil {
		t.Fatalf("text search: %v", err)
	}

	if !strings.HasPrefix(capturedURL, "http://places.test/api/textsearch/json?") {
		t.Fatalf("unexpected URL %q", capturedURL)
	}
	for _, fragment := range []string{"key=test-key", "language=ja", "radius=5000", "location=35.6606%2C139.7945"} {
		if !strings.Contains(capturedURL, fragment) {
			t.Fatalf("expected %q in URL %q", fragment, capturedURL)
		}
	}
	if len(hits) != 2 || hits[0].PlaceID != "place_1" || hits[1].Rating != 3.9 {
		t.Fatalf("unexpected hits %+v", hits)
	}
	if hits[0].Lat != 35.66 || hits[0].Lng != 139.79 {
		t.Fatalf("geometry not mapped: %+v", hits[0])
	}
}

func TestClientTextSearchZeroResultsIsSuccess(t *testing.T) {
	rt := roundTripFunc(func(*http.Request) (*http.Response, error) {
		return &http.Response{
			StatusCode: http.StatusOK,
			Body:       io.NopCloser(strings.NewReader(`{"status":"ZERO_RESULTS","results":[]}`)),
			Header:     http.Header{},
		}, nil
	})

	client, err := NewClient("test-key", WithHTTPClient(&http.Client{Transport: rt}))
	if err != nil {
		t.Fatalf("new client: %v", err)
	}

	hits, err := client.TextSearch(context.Background(), TextSearchRequest{Query: "lunch"})
	if err != nil {
		t.Fatalf("zero results must not error: %v", err)
	}
	if len(hits) != 0 {
		t.Fatalf("expected empty hits, got %+v", hits)
	}
}

func TestClientTextSearchDeniedStatus(t *testing.T) {
	rt := roundTripFunc(func(*http.Request) (*http.Response, error) {
		return &http.Response{
			StatusCode: http.StatusOK,
			Body:       io.NopCloser(strings.NewReader(`{"status":"REQUEST_DENIED"}`)),
			Header:     http.Header{},
		}, nil
	})

	client, err := NewClient("test-key", WithHTTPClient(&http.Client{Transport: rt}))
	if err != nil {
		t.Fatalf("new client: %v", err)
	}

	_, err = client.TextSearch(context.Background(), TextSearchRequest{Query: "lunch"})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeDependency {
		t.Fatalf("expected dependency error, got %v", err)
	}
}

func TestClientTextSearchTransportFailure(t *testing.T) {
	rt := roundTripFunc(func(*http.Request) (*http.Response, error) {
		return nil, errors.New("dial timeout")
	})

	client, err := NewClient("test-key", WithHTTPClient(&http.Client{Transport: rt}))
	if err != nil {
		t.Fatalf("new client: %v", err)
	}

	_, err = client.TextSearch(context.Background(), TextSearchRequest{Query: "lunch"})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeDependency {
		t.Fatalf("expected dependency error on transport failure, got %v", err)
	}
}

func TestClientDetailsRequest(t *testing.T) {
	respBody := `{"status":"OK","result":{
		"name":"Soba Ichi",
		"geometry":{"location":{"lat":35.66,"lng":139.79}},
		"reviews":[{"author_name":"taro","rating":5,"text":"great"}],
		"photos":[{"photo_reference":"ref-1"}],
		"formatted_address":"Tokyo, Koto, Toyosu 1-2-3",
		"website":"https://soba.example",
		"opening_hours":{"weekday_text":["Mon: 11:00-15:00"]}
	}}`

	var capturedURL string
	rt := roundTripFunc(func(req *http.Request) (*http.Response, error) {
		capturedURL = req.URL.String()
		return &http.Response{
			StatusCode: http.StatusOK,
			Body:       io.NopCloser(strings.NewReader(respBody)),
			Header:     http.Header{},
		}, nil
	})

	client, err := NewClient("test-key", WithBaseURL("http://places.test/api"), WithHTTPClient(&http.Client{Transport: rt}))
	if err != nil {
		t.Fatalf("new client: %v", err)
	}

	details, err := client.Details(context.Background(), "place_1", "ja")
	if err != nil {
		t.Fatalf("details: %v", err)
	}
	if !strings.HasPrefix(capturedURL, "http://places.test/api/details/json?") {
		t.Fatalf("unexpected URL %q", capturedURL)
	}
	if !strings.Contains(capturedURL, "place_id=place_1") {
		t.Fatalf("expected place_id in URL %q", capturedURL)
	}
	if details.Name != "Soba Ichi" || details.Website != "https://soba.example" {
		t.Fatalf("unexpected details %+v", details)
	}
	if len(details.Reviews) != 1 || details.Reviews[0].AuthorName != "taro" {
		t.Fatalf("reviews not mapped: %+v", details.Reviews)
	}
	if len(details.PhotoReferences) != 1 || details.PhotoReferences[0] != "ref-1" {
		t.Fatalf("photos not mapped: %+v", details.PhotoReferences)
	}
	if len(details.WeekdayHours) != 1 {
		t.Fatalf("opening hours not mapped: %+v", details.WeekdayHours)
	}
}

func TestClientDetailsNotFoundStatus(t *testing.T) {
	rt := roundTripFunc(func(*http.Request) (*http.Response, error) {
		return &http.Response{
			StatusCode: http.StatusOK,
			Body:       io.NopCloser(strings.NewReader(`{"status":"NOT_FOUND"}`)),
			Header:     http.Header{},
		}, nil
	})

	client, err := NewClient("test-key", WithHTTPClient(&http.Client{Transport: rt}))
	if err != nil {
		t.Fatalf("new client: %v", err)
	}

	if _, err := client.Details(context.Background(), "missing", "ja"); err == nil {
		t.Fatalf("expected error for NOT_FOUND status")
	}
}

func TestNewClientRequiresKey(t *testing.T) {
	if _, err := NewClient("   "); err == nil {
		t.Fatalf("expected error for blank key")
	}
}

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}
