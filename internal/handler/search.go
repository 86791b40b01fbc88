package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/pkordes/guidebook/internal/auth"
	"github.com/pkordes/guidebook/internal/domain"
	"github.com/pkordes/guidebook/internal/i18n"
	"github.com/pkordes/guidebook/internal/mockgen"
	"github.com/pkordes/guidebook/internal/present"
	"github.com/pkordes/guidebook/internal/service"
)

// SearchRequest is the body of POST /search.
type SearchRequest struct {
	Category    domain.Category `json:"category"`
	Region      string          `json:"region"`
	Country     string          `json:"country"`
	City        string          `json:"city"`
	ResultCount int             `json:"result_count"`
}

// SearchResponse is one batch laid out as a feed.
// Seq is the batch's token on the session's board; 0 for anonymous searches.
type SearchResponse struct {
	Seq      uint64          `json:"seq"`
	Category domain.Category `json:"category"`
	Items    []present.Item  `json:"items"`
}

// ExportRequest is the body of POST /search/export.
type ExportRequest struct {
	Category domain.Category         `json:"category"`
	Records  []domain.BusinessRecord `json:"records"`
}

// postSearch handles POST /search.
func (s *Server) postSearch(w http.ResponseWriter, r *http.Request) {
	var req SearchRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	batch, err := s.svc.Search.Search(r.Context(), sessionKey(r), mockgen.Query{
		Category: req.Category,
		Region:   req.Region,
		Country:  req.Country,
		City:     req.City,
		Count:    req.ResultCount,
	})
	if err != nil {
		s.respondErr(w, r, err, "")
		return
	}
	writeJSON(w, http.StatusOK, batchToResponse(batch))
}

// postSearchExport handles POST /search/export.
func (s *Server) postSearchExport(w http.ResponseWriter, r *http.Request) {
	var req ExportRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if len(req.Records) == 0 {
		lang := i18n.FromContext(r.Context())
		writeError(w, http.StatusUnprocessableEntity, "nothing_to_export", i18n.Notice(lang, i18n.NothingToExport))
		return
	}
	writeCSV(w, req.Category, req.Records)
}

// getLatest handles GET /search/latest.
func (s *Server) getLatest(w http.ResponseWriter, r *http.Request) {
	batch, ok := s.latest(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, batchToResponse(batch))
}

// getLatestExport handles GET /search/latest/export.
func (s *Server) getLatestExport(w http.ResponseWriter, r *http.Request) {
	batch, ok := s.latest(w, r)
	if !ok {
		return
	}
	writeCSV(w, batch.Category, batch.Records)
}

func (s *Server) latest(w http.ResponseWriter, r *http.Request) (service.Batch, bool) {
	batch, err := s.svc.Search.Latest(r.Context(), sessionKey(r))
	if errors.Is(err, domain.ErrNotFound) {
		lang := i18n.FromContext(r.Context())
		writeError(w, http.StatusNotFound, "nothing_to_export", i18n.Notice(lang, i18n.NothingToExport))
		return service.Batch{}, false
	}
	if err != nil {
		s.respondErr(w, r, err, "")
		return service.Batch{}, false
	}
	return batch, true
}

// sessionKey identifies the caller's board entry: the session token, or ""
// for anonymous requests.
func sessionKey(r *http.Request) string {
	if sess, ok := auth.FromContext(r.Context()); ok {
		return sess.Token
	}
	return ""
}

func batchToResponse(b service.Batch) SearchResponse {
	return SearchResponse{Seq: b.Seq, Category: b.Category, Items: present.Feed(b.Records)}
}

func writeCSV(w http.ResponseWriter, category domain.Category, records []domain.BusinessRecord) {
	body := present.CSV(records)
	w.Header().Set("Content-Type", present.CSVContentType+"; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", present.Filename(category)))
	w.Header().Set("Content-Length", strconv.Itoa(len(body)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}
