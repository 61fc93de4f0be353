package web

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ConAcademy/BuffaloBuffalo/english"
)

func testServer() *Server {
	return NewServer(english.Grammar(), english.Lexicon(), DefaultConfig())
}

func postParse(t *testing.T, s *Server, body string) (*httptest.ResponseRecorder, parseResponse) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/parse", strings.NewReader(body))
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)

	var resp parseResponse
	if w.Code == http.StatusOK {
		if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
			t.Fatalf("decode response: %v", err)
		}
	}
	return w, resp
}

func TestHandleParseSentence(t *testing.T) {
	s := testServer()
	w, resp := postParse(t, s, `{"sentence": "the dog chased the cat"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if len(resp.Tokens) != 5 {
		t.Errorf("tokens = %v, want 5 tokens", resp.Tokens)
	}
	if len(resp.Trees) == 0 {
		t.Fatal("no trees in response")
	}
	if resp.Error != "" {
		t.Errorf("unexpected error: %s", resp.Error)
	}
	if !strings.HasPrefix(resp.Trees[0].Canonical, "(S ") {
		t.Errorf("canonical = %q, want an S tree", resp.Trees[0].Canonical)
	}
}

func TestHandleParseTokens(t *testing.T) {
	s := testServer()
	w, resp := postParse(t, s, `{"tokens": ["the", "dog", "ran"]}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if len(resp.Trees) == 0 {
		t.Fatal("no trees in response")
	}
}

func TestHandleParseEmptyInput(t *testing.T) {
	s := testServer()
	w, resp := postParse(t, s, `{"sentence": ""}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if resp.Error != "Empty input" {
		t.Errorf("error = %q, want %q", resp.Error, "Empty input")
	}
	if len(resp.Trees) != 0 {
		t.Errorf("trees = %d, want 0", len(resp.Trees))
	}
}

func TestHandleParseNoValidParse(t *testing.T) {
	s := testServer()
	w, resp := postParse(t, s, `{"tokens": ["the", "zzz", "ran"]}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if resp.Error != "No valid parse found" {
		t.Errorf("error = %q, want %q", resp.Error, "No valid parse found")
	}
}

func TestHandleParseRejectsGet(t *testing.T) {
	s := testServer()
	req := httptest.NewRequest(http.MethodGet, "/api/parse", nil)
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)
	if w.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want 405", w.Code)
	}
}

func TestHandleParseRejectsBadJSON(t *testing.T) {
	s := testServer()
	w, _ := postParse(t, s, `{"sentence": `)
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestHandleGrammar(t *testing.T) {
	s := testServer()
	req := httptest.NewRequest(http.MethodGet, "/api/grammar", nil)
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var resp grammarResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Start != "S" {
		t.Errorf("start = %q, want S", resp.Start)
	}
	if len(resp.Rules) == 0 {
		t.Error("no rules in response")
	}
}

func TestHandleLexiconWord(t *testing.T) {
	s := testServer()
	req := httptest.NewRequest(http.MethodGet, "/api/lexicon?word=buffalo", nil)
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var resp lexiconResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp.Words["buffalo"]) != 3 {
		t.Errorf("buffalo readings = %d, want 3", len(resp.Words["buffalo"]))
	}
}

func TestMetricsEndpoint(t *testing.T) {
	s := testServer()
	postParse(t, s, `{"sentence": "the dog ran"}`)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if !strings.Contains(w.Body.String(), "buffalo_parses_total") {
		t.Error("metrics output missing buffalo_parses_total")
	}
}

func TestHealthz(t *testing.T) {
	s := testServer()
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", w.Code)
	}
}
