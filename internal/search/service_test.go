package search

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/toyosu-dev/lunchnavi-backend/pkg/config"
	"github.com/toyosu-dev/lunchnavi-backend/pkg/logger"
	"github.com/toyosu-dev/lunchnavi-backend/pkg/places"
)

type stubProvider struct {
	lastRequest places.TextSearchRequest
	hits        []places.SearchHit
	err         error
}

func (s *stubProvider) TextSearch(ctx context.Context, req places.TextSearchRequest) ([]places.SearchHit, error) {
	s.lastRequest = req
	return s.hits, s.err
}

func newTestService(t *testing.T, provider Provider) Service {
	t.Helper()
	svc, err := NewService(ServiceParams{
		Provider: provider,
		Config: config.SearchConfig{
			OriginLat:           testOriginLat,
			OriginLng:           testOriginLng,
			DefaultRadiusMeters: 5000,
			Language:            "ja",
		},
		Logger: logger.New(logger.Options{ServiceName: "test", Output: &bytes.Buffer{}}),
	})
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	return svc
}

func TestSearchRejectsEmptyCriteria(t *testing.T) {
	provider := &stubProvider{}
	svc := newTestService(t, provider)

	envelope := svc.Search(context.Background(), Criteria{})
	if envelope.Status != StatusInvalidInput {
		t.Fatalf("expected INVALID_INPUT, got %s", envelope.Status)
	}
	if envelope.Message == "" {
		t.Fatal("validation failure must carry a message")
	}
	if provider.lastRequest.Query != "" {
		t.Fatal("provider must not be called for invalid criteria")
	}
}

func TestSearchDefaultsRadiusWhenOtherFiltersSet(t *testing.T) {
	provider := &stubProvider{hits: []places.SearchHit{
		{PlaceID: "a", Name: "A", Rating: 3.5, Lat: testOriginLat, Lng: testOriginLng},
		{PlaceID: "b", Name: "B", Rating: 4.8, Lat: testOriginLat, Lng: testOriginLng},
		{PlaceID: "c", Name: "C", Rating: 4.8, Lat: testOriginLat, Lng: testOriginLng},
	}}
	svc := newTestService(t, provider)

	envelope := svc.Search(context.Background(), Criteria{Genre: "ラーメン", PriceCeilingYen: 1000})
	if provider.lastRequest.RadiusMeters != 5000 {
		t.Fatalf("expected radius rewritten to 5000, got %d", provider.lastRequest.RadiusMeters)
	}
	if provider.lastRequest.Query != "ラーメン ランチ ~1000円" {
		t.Fatalf("unexpected query %q", provider.lastRequest.Query)
	}
	if provider.lastRequest.Language != "ja" {
		t.Fatalf("expected language ja, got %q", provider.lastRequest.Language)
	}

	if envelope.Status != StatusOK {
		t.Fatalf("expected OK, got %s", envelope.Status)
	}
	got := []string{envelope.Candidates[0].StoreID, envelope.Candidates[1].StoreID, envelope.Candidates[2].StoreID}
	want := []string{"b", "c", "a"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected order %v, got %v", want, got)
		}
	}
}

func TestSearchKeepsExplicitRadius(t *testing.T) {
	provider := &stubProvider{}
	svc := newTestService(t, provider)

	svc.Search(context.Background(), Criteria{RadiusMeters: 1200})
	if provider.lastRequest.RadiusMeters != 1200 {
		t.Fatalf("expected radius 1200 to be sent verbatim, got %d", provider.lastRequest.RadiusMeters)
	}
}

func TestSearchProviderFailureBecomesErrorEnvelope(t *testing.T) {
	provider := &stubProvider{err: errors.New("context deadline exceeded")}
	svc := newTestService(t, provider)

	envelope := svc.Search(context.Background(), Criteria{Genre: "蕎麦"})
	if envelope.Status != StatusError {
		t.Fatalf("expected ERROR, got %s", envelope.Status)
	}
	if len(envelope.Candidates) != 0 {
		t.Fatalf("expected empty candidates, got %d", len(envelope.Candidates))
	}
	if envelope.Message == "" {
		t.Fatal("error envelope must carry a message")
	}
}

func TestSearchNoMatch(t *testing.T) {
	provider := &stubProvider{hits: []places.SearchHit{}}
	svc := newTestService(t, provider)

	envelope := svc.Search(context.Background(), Criteria{Genre: "フレンチ"})
	if envelope.Status != StatusNoMatch {
		t.Fatalf("expected NO_MATCH, got %s", envelope.Status)
	}
	if envelope.Candidates == nil {
		t.Fatal("candidates must be an empty slice, not nil")
	}
}

func TestNewServiceValidatesDeps(t *testing.T) {
	if _, err := NewService(ServiceParams{}); err == nil {
		t.Fatal("expected error for missing provider")
	}
	if _, err := NewService(ServiceParams{Provider: &stubProvider{}}); err == nil {
		t.Fatal("expected error for missing logger")
	}
}
