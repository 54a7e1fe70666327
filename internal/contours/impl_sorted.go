package contours

import "sort"

// point is one Pareto-maximal boundary point of a single layer: every
// arrow in arrows currently justifies "this layer's region reaches at
// least here".
type point struct {
	pos    Pos
	arrows map[int]struct{}
}

// Sorted is the production Contours implementation: layers[v] holds the
// boundary of region {u : Score(u) >= v}, stored as an antichain sorted by
// ascending I (and, by the antichain property, descending J). Query and
// insert both reduce to a binary search over this slice.
//
// layers[0] is always nil (layer 0, the implicit target layer, is never
// stored — Score defaults to 0).
type Sorted struct {
	layers [][]*point

	// arrowLayers[id] is the set of layer indices at which arrow id
	// currently justifies a boundary point (an arrow whose score V makes
	// it a witness at every layer 1..V, per spec.md §4.4's construction
	// order — a single match can be the reason several consecutive
	// layers exist).
	arrowLayers map[int]map[int]bool
	starts      map[int]Pos // arrow id -> its Start, for relocating on prune
}

// NewSorted builds a Sorted contour structure from arrows. Arrows are
// processed in decreasing order of Start.I (ties broken by decreasing
// Start.J) so that, by
// the time an arrow is processed, every arrow it could chain through
// (those with a greater Start) has already been inserted — spec.md §4.4's
// construction order.
func NewSorted(arrows []Arrow) *Sorted {
	sorted := make([]Arrow, len(arrows))
	copy(sorted, arrows)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Start.I != sorted[j].Start.I {
			return sorted[i].Start.I > sorted[j].Start.I
		}
		return sorted[i].Start.J > sorted[j].Start.J
	})

	s := &Sorted{
		layers:      [][]*point{nil},
		arrowLayers: make(map[int]map[int]bool, len(arrows)),
		starts:      make(map[int]Pos, len(arrows)),
	}
	for _, a := range sorted {
		s.insert(a)
	}
	return s
}

// insert adds arrow a to the structure: its end-to-end score v = a.Score +
// Score(a.End) makes a.Start a valid witness for every layer 1..v, so it is
// dominant-inserted at each of those layers independently.
func (s *Sorted) insert(a Arrow) {
	v := a.Score + s.Score(a.End)
	s.starts[a.ID] = a.Start
	s.arrowLayers[a.ID] = make(map[int]bool)
	for layerIdx := 1; layerIdx <= v; layerIdx++ {
		s.ensureLayer(layerIdx)
		s.dominantInsert(layerIdx, a.Start, a.ID)
	}
}

func (s *Sorted) ensureLayer(v int) {
	for len(s.layers) <= v {
		s.layers = append(s.layers, nil)
	}
}

// dominantInsert attempts to add pos (justified by arrowID) as a boundary
// point of layers[v]. If an existing point already dominates pos (pos <=
// that point), pos merely merges its justification into it. Otherwise pos
// becomes a new point and any points it now dominates are removed.
func (s *Sorted) dominantInsert(v int, pos Pos, arrowID int) {
	layer := s.layers[v]
	for _, p := range layer {
		if pos.leq(p.pos) {
			p.arrows[arrowID] = struct{}{}
			s.arrowLayers[arrowID][v] = true
			return
		}
	}

	kept := layer[:0:0]
	for _, p := range layer {
		if pos.geq(p.pos) {
			for victim := range p.arrows {
				delete(s.arrowLayers[victim], v)
			}
			continue
		}
		kept = append(kept, p)
	}
	newPoint := &point{pos: pos, arrows: map[int]struct{}{arrowID: {}}}
	kept = append(kept, newPoint)
	sort.Slice(kept, func(i, j int) bool { return kept[i].pos.I < kept[j].pos.I })
	s.layers[v] = kept
	s.arrowLayers[arrowID][v] = true
}

// containsLayer reports whether layer v's boundary dominates pos (i.e.
// pos is inside region v).
func (s *Sorted) containsLayer(v int, pos Pos) bool {
	if v <= 0 {
		return true
	}
	if v >= len(s.layers) {
		return false
	}
	layer := s.layers[v]
	idx := sort.Search(len(layer), func(i int) bool { return layer[i].pos.I >= pos.I })
	if idx == len(layer) {
		return false
	}
	return layer[idx].pos.J >= pos.J
}

func (s *Sorted) Score(pos Pos) int {
	lo, hi := 0, len(s.layers)-1
	for lo < hi {
		mid := (lo + hi + 1) / 2
		if s.containsLayer(mid, pos) {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	return lo
}

func (s *Sorted) ScoreWithHint(pos Pos, hint Hint) (int, Hint) {
	const probe = 5
	maxV := len(s.layers) - 1
	h := int(hint)
	if h < 0 {
		h = 0
	}
	if h > maxV {
		h = maxV
	}
	lo, hi := h-probe, h+probe
	if lo < 1 {
		lo = 1
	}
	if hi > maxV {
		hi = maxV
	}
	for v := hi; v >= lo; v-- {
		if s.containsLayer(v, pos) {
			if v == hi && s.containsLayer(v+1, pos) {
				break // the score lies above the probe window
			}
			return v, Hint(v)
		}
	}
	v := s.Score(pos)
	return v, Hint(v)
}

func (s *Sorted) Parent(pos Pos) (int, Pos, int, bool) {
	v := s.Score(pos)
	if v == 0 {
		return 0, Pos{}, -1, false
	}
	layer := s.layers[v]
	idx := sort.Search(len(layer), func(i int) bool { return layer[i].pos.I >= pos.I })
	p := layer[idx]
	for id := range p.arrows {
		return v, p.pos, id, true
	}
	return v, p.pos, -1, true
}

func (s *Sorted) Prune(arrowID int) (bool, int, error) {
	layerSet, ok := s.arrowLayers[arrowID]
	if !ok {
		return false, 0, ErrUnknownArrow
	}
	pos := s.starts[arrowID]
	wasDominant := len(layerSet) > 0

	for v := range layerSet {
		layer := s.layers[v]
		idx := sort.Search(len(layer), func(i int) bool { return layer[i].pos.I >= pos.I })
		if idx < len(layer) && layer[idx].pos == pos {
			delete(layer[idx].arrows, arrowID)
			if len(layer[idx].arrows) == 0 {
				s.layers[v] = append(layer[:idx:idx], layer[idx+1:]...)
			}
		}
	}
	delete(s.arrowLayers, arrowID)
	delete(s.starts, arrowID)

	collapsed := 0
	for len(s.layers) > 1 && len(s.layers[len(s.layers)-1]) == 0 {
		s.layers = s.layers[:len(s.layers)-1]
		collapsed++
	}
	return wasDominant, collapsed, nil
}

func (s *Sorted) NumLayers() int { return len(s.layers) - 1 }
