package server

import (
	"encoding/json"

	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"

	"github.com/mrashidii/Electric-Propeller-CFD-Analysis/model"
	"github.com/mrashidii/Electric-Propeller-CFD-Analysis/solver"
)

// Hub routes the request/response traffic of one connection and assembles
// the array payloads the front end renders.
type Hub struct {
	s    *solver.Solver
	cfg  solver.Config
	env  model.Env // owned by handleRequest; start carries a snapshot
	conn *websocket.Conn

	// request
	msg chan model.Msg
	// response
	envSet  chan model.Msg
	started chan model.Env
	stopped chan model.Msg
	failed  chan model.Msg

	// closed by handleRequest once msg is drained
	done chan struct{}
}

func NewHub(cfg solver.Config) *Hub {
	return &Hub{
		cfg: cfg,
		env: model.Env{
			AirfoilCode: "4412",
			AlphaDeg:    6,
			Reynolds:    1e6,
			ChordPoints: cfg.ChordPoints,
			GridRes:     cfg.GridRes,
		},
		msg:     make(chan model.Msg, 10),
		envSet:  make(chan model.Msg, 10),
		started: make(chan model.Env, 10),
		stopped: make(chan model.Msg, 10),
		failed:  make(chan model.Msg, 10),
		done:    make(chan struct{}),
	}
}

// GeometryData carries the chord-indexed sequences.
type GeometryData struct {
	X     []float64 `json:"x"`
	Yc    []float64 `json:"yc"`
	Yt    []float64 `json:"yt"`
	Theta []float64 `json:"theta"`
	XU    []float64 `json:"xu"`
	YU    []float64 `json:"yu"`
	XL    []float64 `json:"xl"`
	YL    []float64 `json:"yl"`
}

// FlowData carries the grid-indexed arrays, flattened row-major.
type FlowData struct {
	NumX int       `json:"num_x"`
	NumY int       `json:"num_y"`
	X    []float64 `json:"x"`
	Y    []float64 `json:"y"`
	U    []float64 `json:"u"`
	V    []float64 `json:"v"`
	Cp   []float64 `json:"cp"`
}

// ResultData is the full payload pushed after a solve: the front end masks
// the body with the geometry on top of the flow field.
type ResultData struct {
	Env      model.Env    `json:"env"`
	Geometry GeometryData `json:"geometry"`
	Flow     FlowData     `json:"flow"`
}

func (h *Hub) handleRequest() {
	defer close(h.done)
	for msg := range h.msg {
		switch msg.Type {
		case "env":
			var env model.Env
			if err := json.Unmarshal([]byte(msg.Content), &env); err != nil {
				h.failed <- model.Msg{Type: "error", Content: err.Error()}
				continue
			}
			if env.ChordPoints == 0 {
				env.ChordPoints = h.cfg.ChordPoints
			}
			if env.GridRes == 0 {
				env.GridRes = h.cfg.GridRes
			}
			h.env = env
			h.envSet <- model.Msg{Type: "envSet", Content: "env is set"}
		case "start":
			h.started <- h.env
		case "stop":
			h.stopped <- model.Msg{Type: "stopped", Content: "stopped"}
		default:
			log.WithField("type", msg.Type).Warn("no such type")
		}
	}
}

func (h *Hub) handleResponse() {
	for {
		select {
		case <-h.done:
			return
		case reply := <-h.envSet:
			h.write(&reply)
		case env := <-h.started:
			data, err := h.buildData(env)
			if err != nil {
				h.write(&model.Msg{Type: "error", Content: err.Error()})
				continue
			}
			payload, err := json.Marshal(data)
			if err != nil {
				log.WithError(err).Error("marshal result")
				continue
			}
			h.write(&model.Msg{Type: "started", Content: string(payload)})
		case reply := <-h.stopped:
			h.write(&reply)
		case reply := <-h.failed:
			h.write(&reply)
		}
	}
}

func (h *Hub) write(reply *model.Msg) {
	if err := h.conn.WriteJSON(reply); err != nil {
		log.WithError(err).Error("write response")
	}
}

// buildData runs the two computations for the given operating condition
// and assembles the payload. No computation runs before this request.
func (h *Hub) buildData(env model.Env) (*ResultData, error) {
	cfg := h.cfg
	cfg.GridRes = env.GridRes
	h.s = solver.New(env.AirfoilCode, env.AlphaDeg, env.Reynolds, cfg)

	pr, su, err := h.s.SectionGeometry(env.ChordPoints)
	if err != nil {
		return nil, err
	}

	if err := h.s.Run(); err != nil {
		return nil, err
	}
	<-h.s.GetCalcHub().ResultDone
	res := h.s.LastResult()

	return &ResultData{
		Env: env,
		Geometry: GeometryData{
			X:     pr.X,
			Yc:    pr.Yc,
			Yt:    pr.Yt,
			Theta: pr.Theta,
			XU:    su.XU,
			YU:    su.YU,
			XL:    su.XL,
			YL:    su.YL,
		},
		Flow: FlowData{
			NumX: res.Grid.NumX,
			NumY: res.Grid.NumY,
			X:    res.Grid.X,
			Y:    res.Grid.Y,
			U:    res.Velocity.U,
			V:    res.Velocity.V,
			Cp:   res.Cp.Values,
		},
	}, nil
}
