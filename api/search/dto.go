// Package searchapi exposes grid searches over HTTP.
package searchapi

import (
	"github.com/google/uuid"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// SearchRequest is the body of POST /search.
type SearchRequest struct {
	Map       string `json:"map" binding:"required"`
	Algorithm string `json:"algorithm"`
	Heuristic string `json:"heuristic"`
	Conn      int    `json:"conn"`
}

// CoordDTO is a cell position.
type CoordDTO struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// SearchResponse describes one finished run.
type SearchResponse struct {
	ID            uuid.UUID  `json:"id"`
	Ran           bool       `json:"ran"`
	Algorithm     string     `json:"algorithm"`
	Heuristic     string     `json:"heuristic"`
	Found         bool       `json:"found"`
	Path          []CoordDTO `json:"path"`
	Steps         int        `json:"steps"`
	Cost          float64    `json:"cost"`
	Expanded      int        `json:"expanded"`
	Order         []CoordDTO `json:"order"`
	Grid          string     `json:"grid"`
	ExecutionTime float64    `json:"executionTimeMs"`
}

func toDTOs(cs []gridgraph.Coord) []CoordDTO {
	out := make([]CoordDTO, len(cs))
	for k, c := range cs {
		out[k] = CoordDTO{Row: c.Row, Col: c.Col}
	}
	return out
}
