package worldgen

import (
	"container/heap"
	"log"
	"math"

	"mapgen/internal/core"
)

// roadScanOrder is the fixed 4-connected neighbor order for path search.
var roadScanOrder = [4][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

// placeRoads links the city sites with a nearest-neighbor spanning chain,
// routing each link over low terrain and never across ocean.
func placeRoads(g *core.Grid, cfg Config, cities []core.Point) {
	if len(cities) < 2 {
		return
	}

	for _, edge := range spanningEdges(cities) {
		path := findRoadPath(g, cfg, edge[0], edge[1])
		if path == nil {
			log.Printf("worldgen: no land route between cities (%d,%d) and (%d,%d)", edge[0].X, edge[0].Y, edge[1].X, edge[1].Y)
			continue
		}
		for _, pt := range path {
			cell := g.At(pt.X, pt.Y)
			if core.CanClaim(cell.Feature, core.FeatureRoad) {
				cell.Feature = core.FeatureRoad
			}
		}
	}
}

// spanningEdges builds a minimum spanning structure over the city sites
// (Prim's algorithm on straight-line distance), so every city is reachable
// without connecting all pairs.
func spanningEdges(cities []core.Point) [][2]core.Point {
	n := len(cities)
	inTree := make([]bool, n)
	bestDist := make([]float64, n)
	bestFrom := make([]int, n)
	for i := range bestDist {
		bestDist[i] = math.Inf(1)
	}

	inTree[0] = true
	for i := 1; i < n; i++ {
		bestDist[i] = pointDist(cities[0], cities[i])
		bestFrom[i] = 0
	}

	var edges [][2]core.Point
	for added := 1; added < n; added++ {
		next := -1
		for i := 0; i < n; i++ {
			if inTree[i] {
				continue
			}
			if next == -1 || bestDist[i] < bestDist[next] {
				next = i
			}
		}
		inTree[next] = true
		edges = append(edges, [2]core.Point{cities[bestFrom[next]], cities[next]})
		for i := 0; i < n; i++ {
			if inTree[i] {
				continue
			}
			if d := pointDist(cities[next], cities[i]); d < bestDist[i] {
				bestDist[i] = d
				bestFrom[i] = next
			}
		}
	}
	return edges
}

func pointDist(a, b core.Point) float64 {
	dx := float64(a.X - b.X)
	dy := float64(a.Y - b.Y)
	return math.Hypot(dx, dy)
}

// findRoadPath runs Dijkstra over the cell graph from a to b. Step cost is
// 1 + slopeCost*|elevation delta| so routes prefer flat ground; ocean cells
// are not traversable. Returns the intermediate cells of the path (excluding
// both endpoints) or nil when no route exists.
func findRoadPath(g *core.Grid, cfg Config, a, b core.Point) []core.Point {
	total := g.W * g.H
	dist := make([]float64, total)
	prev := make([]int, total)
	done := make([]bool, total)
	for i := range dist {
		dist[i] = math.Inf(1)
		prev[i] = -1
	}

	startIdx := g.Index(a.X, a.Y)
	goalIdx := g.Index(b.X, b.Y)
	dist[startIdx] = 0

	pq := &cellQueue{}
	heap.Init(pq)
	heap.Push(pq, cellItem{idx: startIdx, cost: 0})

	cells := g.Cells()
	for pq.Len() > 0 {
		item := heap.Pop(pq).(cellItem)
		if done[item.idx] {
			continue
		}
		done[item.idx] = true
		if item.idx == goalIdx {
			break
		}

		x := item.idx % g.W
		y := item.idx / g.W
		here := cells[item.idx].Elevation

		for _, d := range roadScanOrder {
			nx, ny := x+d[0], y+d[1]
			if !g.InBounds(nx, ny) {
				continue
			}
			nIdx := g.Index(nx, ny)
			if done[nIdx] || cells[nIdx].Biome == core.BiomeOcean {
				continue
			}
			cost := item.cost + 1 + cfg.Params.RoadSlopeCost*math.Abs(cells[nIdx].Elevation-here)
			if cost < dist[nIdx] {
				dist[nIdx] = cost
				prev[nIdx] = item.idx
				heap.Push(pq, cellItem{idx: nIdx, cost: cost})
			}
		}
	}

	if prev[goalIdx] == -1 {
		return nil
	}

	var rev []core.Point
	for idx := prev[goalIdx]; idx != startIdx && idx != -1; idx = prev[idx] {
		rev = append(rev, core.Point{X: idx % g.W, Y: idx / g.W})
	}
	path := make([]core.Point, 0, len(rev))
	for i := len(rev) - 1; i >= 0; i-- {
		path = append(path, rev[i])
	}
	return path
}

type cellItem struct {
	idx  int
	cost float64
}

type cellQueue []cellItem

func (q cellQueue) Len() int           { return len(q) }
func (q cellQueue) Less(i, j int) bool { return q[i].cost < q[j].cost }
func (q cellQueue) Swap(i, j int)      { q[i], q[j] = q[j], q[i] }
func (q *cellQueue) Push(x any)        { *q = append(*q, x.(cellItem)) }
func (q *cellQueue) Pop() any {
	old := *q
	n := len(old)
	item := old[n-1]
	*q = old[:n-1]
	return item
}
