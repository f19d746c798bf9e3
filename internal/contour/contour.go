// Package contour reconstructs continuous drawing chains from an
// unordered bucket of oriented edge segments.
//
// Segments are owned by the caller's bucket slice; this package only
// ever refers to them by index, so the "doubly linked" neighbour
// bookkeeping used to join segments into chains is a flat pair of index
// arrays, never a pointer graph.
package contour

// Point is an exact-integer 2D coordinate. Equality is load-bearing:
// two segments connect iff their endpoints compare equal.
type Point struct {
	X, Y int32
}

// Segment is one oriented edge filed into a style bucket. Control is nil
// for a straight segment and non-nil for a curved one. Reversed records
// the orientation assigned by the segment emitter; StartPoint/EndPoint
// below account for it so the rest of this package never has to.
type Segment struct {
	Start, End Point
	Control    *Point
	Reversed   bool

	// Tag is opaque to this package. It is copied verbatim into the
	// Step that plays this segment, so a caller pairing each segment
	// with out-of-band data (a morph decoder's end-frame companion
	// geometry, keyed by bucket position) can recover it after
	// Reconstruct reorders and flips segments.
	Tag int
}

// StartPoint returns the segment's effective start, honouring Reversed.
func (s Segment) StartPoint() Point {
	if s.Reversed {
		return s.End
	}
	return s.Start
}

// EndPoint returns the segment's effective end, honouring Reversed.
func (s Segment) EndPoint() Point {
	if s.Reversed {
		return s.Start
	}
	return s.End
}

// Step is one segment played during chain emission, in the direction
// required to continue the chain from the previous step's pen position.
// Flipped true means the segment is traversed from EndPoint to
// StartPoint (curves keep their control point and swap only the
// endpoint).
type Step struct {
	Segment Segment
	Flipped bool
}

// Reconstruct joins bucket's segments into maximal continuous chains and
// returns them in discovery order. Every segment appears in exactly one
// chain. A segment whose two endpoints coincide forms its own
// single-segment chain.
func Reconstruct(bucket []Segment) [][]Step {
	n := len(bucket)
	if n == 0 {
		return nil
	}

	prev := make([]int, n)
	next := make([]int, n)
	for i := range prev {
		prev[i] = -1
		next[i] = -1
	}

	// Build the undirected neighbour graph by matching endpoints
	// pairwise, startPoint before endPoint per segment so a segment
	// prefers linking via its start point when both would otherwise
	// match.
	waiting := make(map[Point]int, 2*n)
	link := func(a, b int) {
		if prev[a] == -1 {
			prev[a] = b
		} else {
			next[a] = b
		}
		if prev[b] == -1 {
			prev[b] = a
		} else {
			next[b] = a
		}
	}
	for i, s := range bucket {
		for _, p := range [2]Point{s.StartPoint(), s.EndPoint()} {
			if q, ok := waiting[p]; ok {
				delete(waiting, p)
				if q != i {
					link(q, i)
				}
			} else {
				waiting[p] = i
			}
		}
	}

	visited := make([]bool, n)
	var chains [][]Step
	for i := range bucket {
		if visited[i] {
			continue
		}
		start, closed := findStart(i, prev, next)
		chains = append(chains, emitChain(start, closed, bucket, prev, next, visited))
	}
	return chains
}

// other returns the neighbour of cur that is not came, per the
// undirected prev/next linkage, or ok=false at a dead end.
func other(cur, came int, prev, next []int) (idx int, ok bool) {
	p, nx := prev[cur], next[cur]
	switch {
	case p != -1 && p != came:
		return p, true
	case nx != -1 && nx != came:
		return nx, true
	default:
		return -1, false
	}
}

// findStart walks backward from i until it reaches a dead end or
// returns to i, in which case the chain is a closed loop starting from
// i itself. A segment with fewer than two neighbours is already a
// terminus and is returned as is.
func findStart(i int, prev, next []int) (start int, closed bool) {
	if prev[i] == -1 || next[i] == -1 {
		return i, false
	}
	came := -1
	cur := i
	for {
		nxt, ok := other(cur, came, prev, next)
		if !ok {
			return cur, false
		}
		if nxt == i {
			return i, true
		}
		came, cur = cur, nxt
	}
}

// emitChain walks forward from start, tracking the pen position and
// flipping each segment's playback direction whenever its recorded
// orientation disagrees with where the pen currently sits.
func emitChain(start int, closed bool, bucket []Segment, prev, next []int, visited []bool) []Step {
	first := bucket[start]

	// Orient the first segment so that it ends where the neighbour visited
	// next (prev before next, as in other) is attached; for a closed loop
	// this also picks the direction around the ring.
	pen, flip := first.StartPoint(), false
	nb := -1
	if prev[start] != -1 {
		nb = prev[start]
	} else if next[start] != -1 {
		nb = next[start]
	}
	if nb != -1 {
		neighbor := bucket[nb]
		if first.StartPoint() == neighbor.StartPoint() || first.StartPoint() == neighbor.EndPoint() {
			pen, flip = first.EndPoint(), true
		}
	}

	var steps []Step
	cur, came := start, -1
	for {
		seg := bucket[cur]
		visited[cur] = true

		stepFlip := flip
		if cur != start {
			stepFlip = pen != seg.StartPoint()
		}
		steps = append(steps, Step{Segment: seg, Flipped: stepFlip})
		if stepFlip {
			pen = seg.StartPoint()
		} else {
			pen = seg.EndPoint()
		}

		nxt, ok := other(cur, came, prev, next)
		if !ok || visited[nxt] {
			break
		}
		came, cur = cur, nxt
	}
	return steps
}
