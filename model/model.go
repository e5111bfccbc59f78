package model

// Msg is the request/response envelope exchanged with the front end.
type Msg struct {
	Type    string `json:"type"`
	Content string `json:"content"`
}

// Env carries the operating condition requested by the front end.
// Reynolds is stored for the caller but consumed by no formula: the solver
// applies no viscous correction.
type Env struct {
	AirfoilCode string  `json:"airfoil_code"`
	AlphaDeg    float64 `json:"alpha_deg"`
	Reynolds    float64 `json:"reynolds"`
	ChordPoints int     `json:"chord_points"`
	GridRes     int     `json:"grid_res"`
}
