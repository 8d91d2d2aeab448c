package api

import (
	"encoding/json"
	"net/http"
)

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	st := s.orchestrator.Store()
	ingests, stored := st.Totals()

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"records": map[string]any{
			"total":   st.Len(),
			"by_kind": st.Counts(),
		},
		"ingests": map[string]any{
			"archives":       ingests,
			"records_stored": stored,
		},
		"queue_depth":      s.orchestrator.QueueDepth(),
		"ingest_durations": s.orchestrator.Stats(),
	})
}
