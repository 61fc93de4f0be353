// Package web exposes the parser over a JSON REST API for the tree
// visualizer.
//
// Endpoints:
//
//	POST /api/parse     body: {"sentence": "..."} or {"tokens": [...]}
//	GET  /api/grammar
//	GET  /api/lexicon[?word=<form>]
//	GET  /healthz
//	GET  /metrics
package web

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"github.com/tliron/commonlog"
	"golang.org/x/sync/singleflight"
	"gopkg.in/yaml.v3"

	_ "github.com/tliron/commonlog/simple"

	"github.com/ConAcademy/BuffaloBuffalo/grammar"
	"github.com/ConAcademy/BuffaloBuffalo/lexicon"
	"github.com/ConAcademy/BuffaloBuffalo/parse"
	"github.com/ConAcademy/BuffaloBuffalo/syntax"
)

var log = commonlog.GetLogger("web")

// Config holds the server settings.
type Config struct {
	Addr            string        `yaml:"addr"`
	AllowedOrigins  []string      `yaml:"allowedOrigins"`
	ShutdownTimeout time.Duration `yaml:"shutdownTimeout"`
}

// DefaultConfig returns the settings used when no config file is given.
func DefaultConfig() Config {
	return Config{
		Addr:            ":8080",
		AllowedOrigins:  []string{"*"},
		ShutdownTimeout: 5 * time.Second,
	}
}

// LoadConfig reads a YAML config file, filling unset fields from the
// defaults.
func LoadConfig(filename string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(filename)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Server serves parse results over HTTP. The grammar and lexicon are fixed
// at construction; handlers only ever read them.
type Server struct {
	parser   *parse.Parser
	grammar  *grammar.Grammar
	lexicon  *lexicon.Lexicon
	handler  http.Handler
	metrics  *metrics
	inflight singleflight.Group
	cfg      Config
}

// NewServer wires the API around a grammar/lexicon pair.
func NewServer(g *grammar.Grammar, l *lexicon.Lexicon, cfg Config) *Server {
	reg := prometheus.NewRegistry()
	s := &Server{
		parser:  parse.New(g, l),
		grammar: g,
		lexicon: l,
		metrics: newMetrics(reg),
		cfg:     cfg,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/api/parse", s.handleParse)
	mux.HandleFunc("/api/grammar", s.handleGrammar)
	mux.HandleFunc("/api/lexicon", s.handleLexicon)
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))

	c := cors.New(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
	})
	s.handler = c.Handler(mux)
	return s
}

// Handler returns the root handler, CORS included.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Run serves until ctx is canceled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{Addr: s.cfg.Addr, Handler: s.handler}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()
	log.Noticef("listening on %s", s.cfg.Addr)

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

// ---- JSON request/response types ----------------------------------------

type parseRequest struct {
	Sentence string   `json:"sentence"`
	Tokens   []string `json:"tokens"`
}

type treeJSON struct {
	Root      *syntax.Node `json:"root"`
	Canonical string       `json:"canonical"`
	Weight    float64      `json:"weight"`
}

type parseResponse struct {
	Tokens []string    `json:"tokens"`
	Trees  []*treeJSON `json:"trees"`
	Error  string      `json:"error,omitempty"`
}

type ruleJSON struct {
	LHS    string   `json:"lhs"`
	RHS    []string `json:"rhs"`
	Weight float64  `json:"weight"`
}

type grammarResponse struct {
	Start string     `json:"start"`
	Rules []ruleJSON `json:"rules"`
}

type readingJSON struct {
	POS       string            `json:"pos"`
	Canonical string            `json:"canonical"`
	Features  map[string]string `json:"features,omitempty"`
}

type lexiconResponse struct {
	Words map[string][]readingJSON `json:"words"`
}

// ---- Handlers ------------------------------------------------------------

func (s *Server) handleParse(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		s.metrics.parsesTotal.WithLabelValues("bad_request").Inc()
		http.Error(w, "POST required", http.StatusMethodNotAllowed)
		return
	}

	var req parseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.metrics.parsesTotal.WithLabelValues("bad_request").Inc()
		http.Error(w, "bad request body: "+err.Error(), http.StatusBadRequest)
		return
	}
	tokens := req.Tokens
	if len(tokens) == 0 {
		tokens = strings.Fields(req.Sentence)
	}

	// Identical sentences arriving together share one parse; results are
	// read-only, so handing the same trees to every waiter is safe.
	key := strings.Join(tokens, "\x00")
	start := time.Now()
	v, parseErr, _ := s.inflight.Do(key, func() (any, error) {
		return s.parser.Parse(tokens)
	})
	s.metrics.parseSeconds.Observe(time.Since(start).Seconds())
	result := v.(*syntax.Result)

	resp := parseResponse{Tokens: result.Tokens, Trees: []*treeJSON{}}
	switch {
	case errors.Is(parseErr, parse.ErrEmptyInput):
		s.metrics.parsesTotal.WithLabelValues("empty").Inc()
		resp.Error = parseErr.Error()
	case errors.Is(parseErr, parse.ErrNoParse):
		s.metrics.parsesTotal.WithLabelValues("no_parse").Inc()
		resp.Error = parseErr.Error()
	default:
		s.metrics.parsesTotal.WithLabelValues("ok").Inc()
		s.metrics.treesReturned.Observe(float64(len(result.Trees)))
		for _, t := range result.Trees {
			resp.Trees = append(resp.Trees, &treeJSON{
				Root:      t.Root,
				Canonical: t.Canonical(),
				Weight:    t.Weight,
			})
		}
	}

	log.Infof("parse: %d tokens, %d trees", len(result.Tokens), len(resp.Trees))
	writeJSON(w, resp)
}

func (s *Server) handleGrammar(w http.ResponseWriter, r *http.Request) {
	resp := grammarResponse{Start: string(s.grammar.Start()), Rules: []ruleJSON{}}
	for _, rule := range s.grammar.Rules() {
		rj := ruleJSON{LHS: string(rule.LHS), Weight: rule.Weight}
		for _, sym := range rule.RHS {
			rj.RHS = append(rj.RHS, string(sym))
		}
		resp.Rules = append(resp.Rules, rj)
	}
	writeJSON(w, resp)
}

func (s *Server) handleLexicon(w http.ResponseWriter, r *http.Request) {
	resp := lexiconResponse{Words: make(map[string][]readingJSON)}

	words := s.lexicon.Words()
	if want := r.URL.Query().Get("word"); want != "" {
		words = []string{want}
	}
	for _, word := range words {
		for _, e := range s.lexicon.Lookup(word) {
			resp.Words[word] = append(resp.Words[word], readingJSON{
				POS:       string(e.POS),
				Canonical: e.Canonical,
				Features:  e.Features,
			})
		}
	}
	writeJSON(w, resp)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Errorf("encode response: %v", err)
	}
}
