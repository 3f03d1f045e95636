package daemon

import (
	"net/http"
	"strconv"
	"strings"

	"inkwell/internal/api"
)

// handleSpreads serves /api/spreads/{year}/{month} and
// /api/spreads/{year}/{month}/elements.
func (s *apiServer) handleSpreads(w http.ResponseWriter, r *http.Request) {
	parts := pathParts(r.URL.Path, "/api/spreads/")
	year, month, ok := parseYearMonth(parts)
	if !ok {
		s.writeError(w, http.StatusNotFound, "not found")
		return
	}

	switch {
	case len(parts) == 2 && r.Method == http.MethodGet:
		resp, err := s.spreadSvc.SpreadForMonth(r.Context(), year, month)
		if err != nil {
			s.writeServiceError(w, err)
			return
		}
		s.writeJSON(w, http.StatusOK, resp)
	case len(parts) == 3 && parts[2] == "elements" && r.Method == http.MethodPut:
		var req api.SaveElementsRequest
		if !s.decodeBody(w, r, &req) {
			return
		}
		resp, err := s.spreadSvc.SaveElements(r.Context(), year, month, req.Elements)
		if err != nil {
			s.writeServiceError(w, err)
			return
		}
		s.writeJSON(w, http.StatusOK, resp)
	default:
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

// handleMonths serves /api/months/{year}/{month}/summary.
func (s *apiServer) handleMonths(w http.ResponseWriter, r *http.Request) {
	parts := pathParts(r.URL.Path, "/api/months/")
	year, month, ok := parseYearMonth(parts)
	if !ok || len(parts) != 3 || parts[2] != "summary" {
		s.writeError(w, http.StatusNotFound, "not found")
		return
	}
	if r.Method != http.MethodGet {
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	summaries, err := s.daemon.builder.BuildMonth(r.Context(), year, month)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	s.writeJSON(w, http.StatusOK, summaries)
}

// handleDays serves /api/days/{date}, /api/days/{date}/smudge, and
// /api/days/{date}/entries.
func (s *apiServer) handleDays(w http.ResponseWriter, r *http.Request) {
	parts := pathParts(r.URL.Path, "/api/days/")
	if len(parts) == 0 || parts[0] == "" {
		s.writeError(w, http.StatusNotFound, "not found")
		return
	}
	date := parts[0]

	switch {
	case len(parts) == 1:
		s.handleDay(w, r, date)
	case len(parts) == 2 && parts[1] == "smudge":
		s.handleSmudge(w, r, date)
	case len(parts) == 2 && parts[1] == "entries":
		s.handleDayEntries(w, r, date)
	default:
		s.writeError(w, http.StatusNotFound, "not found")
	}
}

func (s *apiServer) handleDay(w http.ResponseWriter, r *http.Request, date string) {
	switch r.Method {
	case http.MethodGet:
		entry, err := s.daySvc.Day(r.Context(), date)
		if err != nil {
			s.writeServiceError(w, err)
			return
		}
		if entry == nil {
			s.writeError(w, http.StatusNotFound, "no entry for "+date)
			return
		}
		s.writeJSON(w, http.StatusOK, entry)
	case http.MethodPut:
		var req api.DayEntryRequest
		if !s.decodeBody(w, r, &req) {
			return
		}
		entry, err := s.daySvc.SaveDay(r.Context(), date, req)
		if err != nil {
			s.writeServiceError(w, err)
			return
		}
		s.writeJSON(w, http.StatusOK, entry)
	default:
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

func (s *apiServer) handleSmudge(w http.ResponseWriter, r *http.Request, date string) {
	switch r.Method {
	case http.MethodGet:
		smudge, err := s.daySvc.Smudge(r.Context(), date)
		if err != nil {
			s.writeServiceError(w, err)
			return
		}
		s.writeJSON(w, http.StatusOK, smudge)
	case http.MethodPut:
		var req api.Smudge
		if !s.decodeBody(w, r, &req) {
			return
		}
		smudge, err := s.daySvc.SetSmudge(r.Context(), date, req)
		if err != nil {
			s.writeServiceError(w, err)
			return
		}
		s.writeJSON(w, http.StatusOK, smudge)
	case http.MethodDelete:
		if err := s.daySvc.ClearSmudge(r.Context(), date); err != nil {
			s.writeServiceError(w, err)
			return
		}
		s.writeJSON(w, http.StatusOK, map[string]bool{"cleared": true})
	default:
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

func (s *apiServer) handleDayEntries(w http.ResponseWriter, r *http.Request, date string) {
	if r.Method != http.MethodPost {
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	var req api.EntryRequest
	if !s.decodeBody(w, r, &req) {
		return
	}
	entry, err := s.daySvc.CreateEntry(r.Context(), date, req)
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	s.writeJSON(w, http.StatusCreated, entry)
}

// handleEntries serves /api/entries/{id} and /api/entries/{id}/media.
func (s *apiServer) handleEntries(w http.ResponseWriter, r *http.Request) {
	parts := pathParts(r.URL.Path, "/api/entries/")
	if len(parts) == 0 || parts[0] == "" {
		s.writeError(w, http.StatusNotFound, "not found")
		return
	}
	id, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid entry id")
		return
	}

	switch {
	case len(parts) == 1 && r.Method == http.MethodPatch:
		var req api.EntryPatchRequest
		if !s.decodeBody(w, r, &req) {
			return
		}
		entry, patchErr := s.daySvc.PatchEntry(r.Context(), id, req)
		if patchErr != nil {
			s.writeServiceError(w, patchErr)
			return
		}
		s.writeJSON(w, http.StatusOK, entry)
	case len(parts) == 1 && r.Method == http.MethodDelete:
		if delErr := s.daySvc.DeleteEntry(r.Context(), id); delErr != nil {
			s.writeServiceError(w, delErr)
			return
		}
		s.writeJSON(w, http.StatusOK, map[string]bool{"deleted": true})
	case len(parts) == 2 && parts[1] == "media" && r.Method == http.MethodPost:
		var req api.MediaRequest
		if !s.decodeBody(w, r, &req) {
			return
		}
		media, attachErr := s.daySvc.AttachMedia(r.Context(), id, req)
		if attachErr != nil {
			s.writeServiceError(w, attachErr)
			return
		}
		s.writeJSON(w, http.StatusCreated, media)
	case len(parts) == 2 && parts[1] == "media" && r.Method == http.MethodGet:
		media, listErr := s.daySvc.MediaForEntry(r.Context(), id)
		if listErr != nil {
			s.writeServiceError(w, listErr)
			return
		}
		s.writeJSON(w, http.StatusOK, media)
	default:
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

// handleDecor serves /api/decor/{year}/{month}/{page}.
func (s *apiServer) handleDecor(w http.ResponseWriter, r *http.Request) {
	parts := pathParts(r.URL.Path, "/api/decor/")
	year, month, ok := parseYearMonth(parts)
	if !ok || len(parts) != 3 {
		s.writeError(w, http.StatusNotFound, "not found")
		return
	}
	page := parts[2]

	switch r.Method {
	case http.MethodGet:
		items, err := s.decorSvc.ListDecor(r.Context(), year, month, page)
		if err != nil {
			s.writeServiceError(w, err)
			return
		}
		s.writeJSON(w, http.StatusOK, api.DecorListResponse{Items: items})
	case http.MethodPut:
		var req []api.DecorItemRequest
		if !s.decodeBody(w, r, &req) {
			return
		}
		items, err := s.decorSvc.SaveDecor(r.Context(), year, month, page, req)
		if err != nil {
			s.writeServiceError(w, err)
			return
		}
		s.writeJSON(w, http.StatusOK, api.DecorListResponse{Items: items})
	default:
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

func pathParts(path, prefix string) []string {
	trimmed := strings.Trim(strings.TrimPrefix(path, prefix), "/")
	if trimmed == "" {
		return nil
	}
	return strings.Split(trimmed, "/")
}

func parseYearMonth(parts []string) (int, int, bool) {
	if len(parts) < 2 {
		return 0, 0, false
	}
	year, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, false
	}
	month, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, false
	}
	return year, month, true
}
