package pathfinding

import (
	"container/heap"
	"context"
	"gridpath/core"
	"gridpath/geometry"
	"gridpath/grid"

	"github.com/zyedidia/generic/mapset"
)

// openNode is an entry of the open set together with its current scores.
type openNode struct {
	Point core.Point
	GCost int // cost from start (see PathFinder for how it is estimated)
	HCost int // Manhattan distance to the destination
	FCost int // GCost + HCost
	seq   int // insertion order, used as tie-breaker
	Index int // index in the heap
}

// NodeQueue is the open set: a min-heap on FCost, ties broken by insertion
// order so that the first node to enter the frontier wins.
type NodeQueue []*openNode

func (nq NodeQueue) Len() int { return len(nq) }
func (nq NodeQueue) Less(i, j int) bool {
	if nq[i].FCost != nq[j].FCost {
		return nq[i].FCost < nq[j].FCost
	}
	return nq[i].seq < nq[j].seq
}
func (nq NodeQueue) Swap(i, j int) {
	nq[i], nq[j] = nq[j], nq[i]
	nq[i].Index = i
	nq[j].Index = j
}

func (nq *NodeQueue) Push(x interface{}) {
	n := len(*nq)
	node := x.(*openNode)
	node.Index = n
	*nq = append(*nq, node)
}

func (nq *NodeQueue) Pop() interface{} {
	old := *nq
	n := len(old)
	node := old[n-1]
	old[n-1] = nil  // avoid memory leak
	node.Index = -1 // for safety
	*nq = old[0 : n-1]
	return node
}

// search holds the scratch state of a single run. Nothing here outlives the
// call, so repeated or concurrent searches over one grid never see each other.
type search struct {
	finder      *PathFinder
	grid        *grid.Grid
	start, dest core.Point

	open   NodeQueue
	inOpen map[core.Point]*openNode
	closed mapset.Set[core.Point]
	parent map[core.Point]core.Point
	seq    int

	expanded []core.Point
}

func newSearch(f *PathFinder, g *grid.Grid, start, dest core.Point) *search {
	s := &search{
		finder: f,
		grid:   g,
		start:  start,
		dest:   dest,
		inOpen: make(map[core.Point]*openNode),
		closed: mapset.New[core.Point](),
		parent: make(map[core.Point]core.Point),
	}
	heap.Init(&s.open)
	s.push(&openNode{Point: start})
	return s
}

func (s *search) push(n *openNode) {
	n.seq = s.seq
	s.seq++
	heap.Push(&s.open, n)
	s.inOpen[n.Point] = n
}

func (s *search) run(ctx context.Context) (Result, error) {
	for s.open.Len() > 0 {
		select {
		case <-ctx.Done():
			return Result{}, ctx.Err()
		default:
		}
		if s.finder.maxNodes > 0 && len(s.expanded) >= s.finder.maxNodes {
			return Result{}, ErrNodeLimit
		}

		current := heap.Pop(&s.open).(*openNode)
		delete(s.inOpen, current.Point)
		s.closed.Put(current.Point)
		s.expanded = append(s.expanded, current.Point)

		if current.Point == s.dest {
			return s.result(true), nil
		}

		for _, next := range s.grid.Neighbours(current.Point) {
			node, _ := s.grid.Node(next)
			if !node.Type.Traversable() || s.closed.Has(next) {
				continue
			}
			if s.finder.accumulated {
				s.relaxAccumulated(current, node)
			} else {
				s.relax(current, node)
			}
		}
	}
	return s.result(false), nil
}

// relax scores a neighbour with the start-distance estimate: g is the
// Manhattan distance from start to the expanding node plus the neighbour's
// cost. An open neighbour always takes the new scores; it is re-parented when
// its f exceeds its h plus the expanding node's g.
func (s *search) relax(current *openNode, next grid.Node) {
	g := geometry.ManhattanDistance(s.start, current.Point) + next.Cost
	h := geometry.ManhattanDistance(next.Position, s.dest)

	existing, ok := s.inOpen[next.Position]
	if !ok {
		s.parent[next.Position] = current.Point
		s.push(&openNode{Point: next.Position, GCost: g, HCost: h, FCost: g + h})
		return
	}

	existing.GCost, existing.HCost, existing.FCost = g, h, g+h
	heap.Fix(&s.open, existing.Index)
	if existing.FCost > existing.HCost+current.GCost {
		s.parent[next.Position] = current.Point
	}
}

// relaxAccumulated is textbook A*: g accumulates one step plus the node cost
// along the parent chain and an open node is only updated on improvement.
func (s *search) relaxAccumulated(current *openNode, next grid.Node) {
	g := current.GCost + 1 + next.Cost
	h := geometry.ManhattanDistance(next.Position, s.dest)

	existing, ok := s.inOpen[next.Position]
	if !ok {
		s.parent[next.Position] = current.Point
		s.push(&openNode{Point: next.Position, GCost: g, HCost: h, FCost: g + h})
		return
	}
	if g < existing.GCost {
		existing.GCost, existing.FCost = g, g+existing.HCost
		s.parent[next.Position] = current.Point
		heap.Fix(&s.open, existing.Index)
	}
}

func (s *search) result(found bool) Result {
	res := Result{
		Expanded: s.expanded,
		Checked:  make([]core.Point, 0, len(s.expanded)),
		Found:    found,
	}
	for _, p := range s.expanded {
		if p != s.start && p != s.dest {
			res.Checked = append(res.Checked, p)
		}
	}
	if found {
		res.Path = s.backtrack()
	}
	return res
}

// backtrack walks parent links from the destination until it reaches a node
// without a parent (the start), which is left out.
func (s *search) backtrack() core.Path {
	path := core.Path{}
	current := s.dest
	for {
		prev, ok := s.parent[current]
		if !ok {
			break
		}
		path.Points = append(path.Points, current)
		if node, ok := s.grid.Node(current); ok {
			path.Cost += 1 + node.Cost
		}
		current = prev
	}
	return path
}
