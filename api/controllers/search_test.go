package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/toyosu-dev/lunchnavi-backend/internal/search"
)

type stubSearchService struct {
	envelope     search.Envelope
	lastCriteria search.Criteria
}

func (s *stubSearchService) Search(ctx context.Context, criteria search.Criteria) search.Envelope {
	s.lastCriteria = criteria
	return s.envelope
}

func TestSearchStoresPassesCriteria(t *testing.T) {
	svc := &stubSearchService{envelope: search.Envelope{
		Status: search.StatusOK,
		Candidates: []search.Candidate{
			{StoreID: "place-1", Name: "すし処 豊洲", Rating: 4.4},
		},
	}}
	handler := SearchStores(svc, nil)

	body := []byte(`{"genre":"寿司","price_ceiling_yen":2000,"radius_meters":800}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/search", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()

	handler.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	if svc.lastCriteria.Genre != "寿司" || svc.lastCriteria.PriceCeilingYen != 2000 || svc.lastCriteria.RadiusMeters != 800 {
		t.Fatalf("unexpected criteria %+v", svc.lastCriteria)
	}

	var envelope struct {
		Data search.Envelope `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if envelope.Data.Status != search.StatusOK || len(envelope.Data.Candidates) != 1 {
		t.Fatalf("unexpected envelope %+v", envelope.Data)
	}
}

func TestSearchStoresInvalidInputStaysHTTP200(t *testing.T) {
	svc := &stubSearchService{envelope: search.Envelope{
		Status:     search.StatusInvalidInput,
		Message:    "ジャンル、距離、金額のいずれか一つ以上を選択してください。",
		Candidates: []search.Candidate{},
	}}
	handler := SearchStores(svc, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/search", bytes.NewReader([]byte(`{}`)))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()

	handler.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}

	var envelope struct {
		Data search.Envelope `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if envelope.Data.Status != search.StatusInvalidInput {
		t.Fatalf("unexpected status %s", envelope.Data.Status)
	}
}

func TestSearchStoresRejectsUnknownFields(t *testing.T) {
	handler := SearchStores(&stubSearchService{}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/search", bytes.NewReader([]byte(`{"cuisine":"sushi"}`)))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()

	handler.ServeHTTP(resp, req)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}
