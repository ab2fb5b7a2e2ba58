package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/vytor/braingym/internal/logger"
)

var heartbeatInterval = 15 * time.Second

// handleEvents streams every session view as a server-sent event.
func (s *Server) handleEvents(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())
	rc := http.NewResponseController(w)

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	// The server-wide write timeout would cut the stream.
	_ = rc.SetWriteDeadline(time.Time{})

	views, unsubscribe := s.Sessions.Subscribe()
	defer unsubscribe()

	w.WriteHeader(http.StatusOK)
	if err := rc.Flush(); err != nil {
		log.Error("streaming unsupported: %v", err)
		return
	}
	log.Debug("event stream opened")

	heartbeat := time.NewTicker(heartbeatInterval)
	defer heartbeat.Stop()

	for {
		select {
		case view, ok := <-views:
			if !ok {
				log.Debug("event stream closed by server")
				return
			}
			data, err := json.Marshal(view)
			if err != nil {
				log.Error("failed to encode view: %v", err)
				return
			}
			if _, err := fmt.Fprintf(w, "event: view\ndata: %s\n\n", data); err != nil {
				return
			}
		case <-heartbeat.C:
			if _, err := fmt.Fprint(w, ": ping\n\n"); err != nil {
				return
			}
		case <-r.Context().Done():
			log.Debug("event stream closed by client")
			return
		}
		if err := rc.Flush(); err != nil {
			return
		}
	}
}
