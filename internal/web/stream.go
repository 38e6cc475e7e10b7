package web

import (
	"log"
	"net/http"

	"github.com/ehrlich-b/blocksolver/internal/blocksolver"
	"github.com/ehrlich-b/blocksolver/internal/cube"
	"github.com/gorilla/websocket"
)

var streamUpgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// The terminal and solve pages are served from this same process, but
	// the origin check is relaxed so the endpoint also works behind a
	// reverse proxy on a different host header.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// StreamMessage is one frame of a streamed solve: either a "stage" progress
// update, the final "result", or an "error" that ends the stream.
type StreamMessage struct {
	Type         string `json:"type"`
	StageIndex   int    `json:"stage_index,omitempty"`
	StageComment string `json:"stage_comment,omitempty"`
	FrontierSize int    `json:"frontier_size,omitempty"`
	BestDepth    int    `json:"best_depth,omitempty"`
	Solution     string `json:"solution,omitempty"`
	Steps        int    `json:"steps,omitempty"`
	Time         string `json:"time,omitempty"`
	Error        string `json:"error,omitempty"`
}

// handleSolveStream upgrades to a websocket and reports blocksolver's
// stage-by-stage progress as it searches, finishing with the solution
// once the last stage completes.
func (s *Server) handleSolveStream(w http.ResponseWriter, r *http.Request) {
	conn, err := streamUpgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("solve/stream: upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	q := r.URL.Query()
	scramble := q.Get("scramble")
	dimension := 3

	c := cube.NewCube(dimension)
	moves, err := cube.ParseScramble(scramble)
	if err != nil {
		conn.WriteJSON(StreamMessage{Type: "error", Error: "parsing scramble: " + err.Error()})
		return
	}
	c.ApplyMoves(moves)

	tablesDir := q.Get("tables")
	adapter := blocksolver.New(tablesDir)

	result, err := adapter.SolveStream(c, func(p blocksolver.StageProgress) {
		conn.WriteJSON(StreamMessage{
			Type:         "stage",
			StageIndex:   p.Index,
			StageComment: p.Comment,
			FrontierSize: p.FrontierSize,
			BestDepth:    p.BestDepth,
		})
	})
	if err != nil {
		conn.WriteJSON(StreamMessage{Type: "error", Error: err.Error()})
		return
	}

	var solutionStr string
	for i, m := range result.Solution {
		if i > 0 {
			solutionStr += " "
		}
		solutionStr += m.String()
	}

	conn.WriteJSON(StreamMessage{
		Type:     "result",
		Solution: solutionStr,
		Steps:    result.Steps,
		Time:     result.Duration.String(),
	})
}
