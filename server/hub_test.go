package server

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrashidii/Electric-Propeller-CFD-Analysis/geometry"
	"github.com/mrashidii/Electric-Propeller-CFD-Analysis/model"
	"github.com/mrashidii/Electric-Propeller-CFD-Analysis/solver"
)

func testHub() *Hub {
	cfg := solver.DefaultConfig()
	cfg.Workers = 2
	cfg.ChordPoints = 50
	cfg.GridRes = 16
	return NewHub(cfg)
}

func TestBuildData(t *testing.T) {
	h := testHub()
	data, err := h.buildData(h.env)
	require.NoError(t, err)

	assert.Len(t, data.Geometry.X, 50)
	assert.Len(t, data.Geometry.YU, 50)
	assert.Len(t, data.Geometry.YL, 50)
	assert.Equal(t, 16, data.Flow.NumX)
	assert.Equal(t, 16, data.Flow.NumY)
	assert.Len(t, data.Flow.Cp, 256)
	assert.Equal(t, "4412", data.Env.AirfoilCode)
}

func TestBuildDataInvalidCode(t *testing.T) {
	h := testHub()
	env := h.env
	env.AirfoilCode = "44a2"
	_, err := h.buildData(env)
	assert.ErrorIs(t, err, geometry.ErrInvalidDesignation)
}

func TestBuildDataInvalidGridRes(t *testing.T) {
	h := testHub()
	env := h.env
	env.GridRes = -1
	_, err := h.buildData(env)
	assert.ErrorIs(t, err, solver.ErrInvalidGridResolution)
}

func TestHandleRequestEnvDefaults(t *testing.T) {
	h := testHub()
	go h.handleRequest()
	h.msg <- model.Msg{
		Type:    "env",
		Content: `{"airfoil_code":"2412","alpha_deg":4,"reynolds":500000}`,
	}
	reply := <-h.envSet
	assert.Equal(t, "envSet", reply.Type)

	h.msg <- model.Msg{Type: "start"}
	env := <-h.started
	assert.Equal(t, "2412", env.AirfoilCode)
	assert.Equal(t, 50, env.ChordPoints)
	assert.Equal(t, 16, env.GridRes)
	assert.Equal(t, 500000.0, env.Reynolds)
	close(h.msg)
}

func TestHandleRequestBadEnv(t *testing.T) {
	h := testHub()
	go h.handleRequest()
	h.msg <- model.Msg{Type: "env", Content: "{not json"}
	reply := <-h.failed
	assert.Equal(t, "error", reply.Type)
	close(h.msg)
}

// A start request must solve the condition it snapshotted, even while the
// client keeps updating the operating condition concurrently.
func TestStartSnapshotsEnv(t *testing.T) {
	h := testHub()
	go h.handleRequest()
	go func() {
		for i := 0; i < 20; i++ {
			h.msg <- model.Msg{
				Type: "env",
				Content: fmt.Sprintf(
					`{"airfoil_code":"2412","alpha_deg":%d,"grid_res":8,"chord_points":10}`, i),
			}
			h.msg <- model.Msg{Type: "start"}
		}
		close(h.msg)
	}()

	solves := 0
	for solves < 20 {
		select {
		case <-h.envSet:
		case env := <-h.started:
			data, err := h.buildData(env)
			require.NoError(t, err)
			assert.Equal(t, env, data.Env)
			assert.Equal(t, float64(solves), env.AlphaDeg)
			solves++
		}
	}
	<-h.done
}

// Closing the request channel, as serveWs does on disconnect, must let both
// hub goroutines exit.
func TestHubGoroutinesExitOnDisconnect(t *testing.T) {
	h := testHub()
	exited := make(chan struct{})
	go h.handleRequest()
	go func() {
		h.handleResponse()
		close(exited)
	}()

	close(h.msg)
	select {
	case <-exited:
	case <-time.After(2 * time.Second):
		t.Fatal("handleResponse still running after disconnect")
	}
}
