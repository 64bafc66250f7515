package engine

import "github.com/arcade-cabinet/iron-frontier-sub004/internal/game"

// hexNeighbors are the six axial direction offsets.
var hexNeighbors = [6]game.GridPos{
	{Q: 1, R: 0}, {Q: 1, R: -1}, {Q: 0, R: -1},
	{Q: -1, R: 0}, {Q: -1, R: 1}, {Q: 0, R: 1},
}

// HexNeighbors returns the six axial direction offsets in their fixed scan
// order.
func HexNeighbors() [6]game.GridPos {
	return hexNeighbors
}

// Distance returns the hex distance between two axial coordinates.
func Distance(a, b game.GridPos) int {
	dq := a.Q - b.Q
	dr := a.R - b.R
	return (abs(dq) + abs(dr) + abs(dq+dr)) / 2
}

// StepToward returns the neighbor of `from` that is closest to `to`.
// Neighbors are scanned in a fixed direction order so movement is
// deterministic. Returns `from` unchanged when already adjacent-or-equal
// makes no step an improvement.
func StepToward(from, to game.GridPos) game.GridPos {
	best := from
	bestDist := Distance(from, to)
	for _, n := range hexNeighbors {
		cand := game.GridPos{Q: from.Q + n.Q, R: from.R + n.R}
		if d := Distance(cand, to); d < bestDist {
			best = cand
			bestDist = d
		}
	}
	return best
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
