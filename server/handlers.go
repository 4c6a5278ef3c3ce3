package server

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/flosch/pongo2/v6"
	log "github.com/sirupsen/logrus"

	"github.com/satishbabariya/classql/query/ast"
	"github.com/satishbabariya/classql/query/parser"
	"github.com/satishbabariya/classql/render"
	"github.com/satishbabariya/classql/runtime/client"
	"github.com/satishbabariya/classql/runtime/introspect"
)

// queryResponse is the payload of a successful /api/query call.
type queryResponse struct {
	Success bool             `json:"success"`
	Query   string           `json:"query"`
	Params  []interface{}    `json:"params"`
	Results []client.RowData `json:"results"`
	Count   int              `json:"count"`
}

type errorResponse struct {
	Error string `json:"error"`
}

type schemaResponse struct {
	Tables []introspect.TableInfo `json:"tables"`
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	hero, err := s.heroValue(r.Context())
	if err != nil {
		s.renderError(w, err)
		return
	}

	examples, err := s.buildExamples(r.Context())
	if err != nil {
		s.renderError(w, err)
		return
	}

	s.renderPage(w, "index.html", pongo2.Context{
		"hero_value": hero,
		"examples":   examples,
	})
}

func (s *Server) handleExplorer(w http.ResponseWriter, r *http.Request) {
	s.renderPage(w, "explorer.html", pongo2.Context{})
}

func (s *Server) handleQuery(w http.ResponseWriter, r *http.Request) {
	desc, errResp := descFromRequest(r)
	if errResp != nil {
		writeJSON(w, http.StatusBadRequest, *errResp)
		return
	}

	cacheKey := r.URL.Query().Get("className") + "\x00" + r.URL.Query().Get("join")
	if cached, ok := s.cache.Get(cacheKey); ok {
		writeJSON(w, http.StatusOK, cached)
		return
	}

	result, err := s.executor.Run(r.Context(), desc)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return
	}

	resp := queryResponse{
		Success: true,
		Query:   result.SQL,
		Params:  result.Params,
		Results: result.Rows,
		Count:   result.Count,
	}
	s.cache.Set(cacheKey, resp, 0)
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	desc, errResp := descFromRequest(r)
	if errResp != nil {
		writeJSON(w, http.StatusBadRequest, *errResp)
		return
	}

	result, err := s.executor.Run(r.Context(), desc)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return
	}

	mode := render.ParseMode(r.URL.Query().Get("as"))
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprint(w, render.Rows(result.Rows, result.Columns, mode))
}

func (s *Server) handleSchema(w http.ResponseWriter, r *http.Request) {
	in, err := introspect.NewIntrospector(s.client)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return
	}

	tables, err := in.Tables(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, schemaResponse{Tables: tables})
}

// descFromRequest parses the className and optional join parameters. A
// non-nil errorResponse means the request was bad.
func descFromRequest(r *http.Request) (*ast.QueryDescription, *errorResponse) {
	className := r.URL.Query().Get("className")
	if className == "" {
		return nil, &errorResponse{Error: "Missing className parameter"}
	}

	desc, ok := parser.ParseClass(className)
	if !ok {
		return nil, &errorResponse{Error: fmt.Sprintf("Invalid ClassQL class: %s", className)}
	}

	if joinParam := r.URL.Query().Get("join"); joinParam != "" {
		if join, ok := parser.ParseJoinParam(joinParam); ok {
			desc = desc.WithJoin(*join)
		}
	}

	log.WithFields(log.Fields{
		"table": desc.Table,
		"where": desc.WhereMap(),
		"joins": len(desc.Joins),
	}).Debug("Parsed query class")

	return desc, nil
}

func (s *Server) renderPage(w http.ResponseWriter, name string, ctx pongo2.Context) {
	html, err := s.templates.Render(name, ctx)
	if err != nil {
		s.renderError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprint(w, html)
}

func (s *Server) renderError(w http.ResponseWriter, err error) {
	log.Errorf("Request failed: %v", err)
	http.Error(w, err.Error(), http.StatusInternalServerError)
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Errorf("Failed to encode response: %v", err)
	}
}
