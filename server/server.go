package server

import (
	"net/http"

	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"

	"github.com/mrashidii/Electric-Propeller-CFD-Analysis/model"
	"github.com/mrashidii/Electric-Propeller-CFD-Analysis/solver"
)

type Server struct {
	addr     string
	cfg      solver.Config
	upgrader websocket.Upgrader
}

func NewServer(cfg solver.Config, upgrader websocket.Upgrader) *Server {
	return &Server{
		addr:     cfg.Addr,
		cfg:      cfg,
		upgrader: upgrader,
	}
}

// serveWs handles websocket requests from the peer. Each connection gets
// its own hub; nothing is shared across connections.
func (s *Server) serveWs(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.WithError(err).Error("upgrade")
		return
	}
	defer conn.Close()

	hub := NewHub(s.cfg)
	hub.conn = conn
	defer close(hub.msg)
	go hub.handleRequest()
	go hub.handleResponse()

	var msg model.Msg
	for {
		if err := conn.ReadJSON(&msg); err != nil {
			log.WithError(err).Info("connection closed")
			return
		}
		hub.msg <- msg
	}
}

func (s *Server) Serve() {
	http.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		s.serveWs(w, r)
	})
	log.WithField("addr", s.addr).Info("listening")
	if err := http.ListenAndServe(s.addr, nil); err != nil {
		log.WithError(err).Fatal("ListenAndServe")
	}
}
