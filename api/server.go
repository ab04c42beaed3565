// Package api serves a running game to spectators: a JSON status endpoint,
// a websocket stream of frames and the prometheus metrics.
package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/julienschmidt/httprouter"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	log "github.com/sirupsen/logrus"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// Server is the spectator API server.
type Server struct {
	hs  *http.Server
	hub *Hub
}

// New creates a server listening on addr and serving frames from hub.
func New(addr string, hub *Hub) *Server {
	s := &Server{hub: hub}

	router := httprouter.New()
	router.GET("/status", s.status)
	router.GET("/socket", s.socket)
	router.Handler(http.MethodGet, "/metrics", promhttp.Handler())

	s.hs = &http.Server{
		Addr:    addr,
		Handler: cors.Default().Handler(router),
	}
	return s
}

// Handler exposes the routed handler, mostly for tests.
func (s *Server) Handler() http.Handler { return s.hs.Handler }

// WaitForExit serves until the server is shut down.
func (s *Server) WaitForExit() error {
	log.WithField("listen", s.hs.Addr).Info("spectator api serving")
	err := s.hs.ListenAndServe()
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}

// Shutdown stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.hs.Shutdown(ctx)
}

type statusResponse struct {
	Run   interface{} `json:"run"`
	Frame interface{} `json:"frame"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) status(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	frame, ok := s.hub.Latest()
	if !ok {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "no frames yet"})
		return
	}
	writeJSON(w, http.StatusOK, statusResponse{
		Run:   s.hub.Info(),
		Frame: frame,
	})
}

func (s *Server) socket(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.WithError(err).Warn("unable to upgrade spectator connection")
		return
	}
	defer conn.Close()

	frames, unsubscribe := s.hub.Subscribe()
	defer unsubscribe()
	log.WithField("remote", r.RemoteAddr).Info("spectator connected")

	// Spectators never send anything; reading only notices the close.
	closed := make(chan struct{})
	go func() {
		defer close(closed)
		for {
			if _, _, err := conn.NextReader(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case f, ok := <-frames:
			if !ok {
				return
			}
			if err := conn.WriteJSON(f); err != nil {
				log.WithError(err).Debug("spectator write failed")
				return
			}
		case <-closed:
			log.WithField("remote", r.RemoteAddr).Info("spectator disconnected")
			return
		}
	}
}

func writeJSON(w http.ResponseWriter, code int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.WithError(err).Error("unable to write response")
	}
}
