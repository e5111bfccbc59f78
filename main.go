package main

import (
	"net/http"

	"github.com/gorilla/websocket"

	"github.com/mrashidii/Electric-Propeller-CFD-Analysis/server"
	"github.com/mrashidii/Electric-Propeller-CFD-Analysis/solver"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

func main() {
	upgrader.CheckOrigin = func(r *http.Request) bool {
		return true
	}
	cfg := solver.LoadConfig("conf/config.ini")
	s := server.NewServer(cfg, upgrader)
	s.Serve()
}
