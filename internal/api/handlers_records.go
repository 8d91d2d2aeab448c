package api

import (
	"encoding/json"
	"net/http"
	"net/url"

	"dossier/internal/identity"
	"github.com/go-chi/chi/v5"
)

// handleListRecords lists stored record names, one kind or all.
func (s *Server) handleListRecords(w http.ResponseWriter, r *http.Request) {
	st := s.orchestrator.Store()

	if k := r.URL.Query().Get("kind"); k != "" {
		kind, ok := identity.ParseKind(k)
		if !ok {
			jsonError(w, "unknown kind: "+k, http.StatusBadRequest)
			return
		}
		names := st.Names(kind)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"kind":  kind,
			"names": names,
			"count": len(names),
		})
		return
	}

	byKind := make(map[identity.Kind][]string)
	for _, kind := range []identity.Kind{
		identity.KindPerson,
		identity.KindEmail,
		identity.KindLocation,
		identity.KindSystem,
		identity.KindList,
	} {
		if names := st.Names(kind); len(names) > 0 {
			byKind[kind] = names
		}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{"records": byKind})
}

// handleGetRecord returns one top-level record with its children.
func (s *Server) handleGetRecord(w http.ResponseWriter, r *http.Request) {
	kind, name, ok := recordParams(w, r)
	if !ok {
		return
	}

	rec := s.orchestrator.Store().Find(kind, name)
	if rec == nil {
		jsonError(w, "record not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(rec)
}

// handleDeleteRecord removes one top-level record and its subtree.
func (s *Server) handleDeleteRecord(w http.ResponseWriter, r *http.Request) {
	kind, name, ok := recordParams(w, r)
	if !ok {
		return
	}

	if !s.orchestrator.Store().Remove(kind, name) {
		jsonError(w, "record not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"deleted": true,
		"kind":    kind,
		"name":    name,
	})
}

// recordParams decodes the {kind}/{name} pair. Names may contain
// spaces, which arrive percent-encoded in the path.
func recordParams(w http.ResponseWriter, r *http.Request) (identity.Kind, string, bool) {
	kind, ok := identity.ParseKind(chi.URLParam(r, "kind"))
	if !ok {
		jsonError(w, "unknown kind: "+chi.URLParam(r, "kind"), http.StatusBadRequest)
		return "", "", false
	}
	name, err := url.PathUnescape(chi.URLParam(r, "name"))
	if err != nil {
		jsonError(w, "bad record name", http.StatusBadRequest)
		return "", "", false
	}
	return kind, name, true
}
