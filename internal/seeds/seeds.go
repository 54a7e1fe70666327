package seeds

// Seeds holds the partition of A into non-overlapping seeds plus the three
// dense, position-indexed arrays every heuristic query reduces to:
//
//   - seedAt[i]:          index of the seed covering i, or -1.
//   - potential[i]:       sum of Potential over all seeds with Start >= i.
//   - startOfPotential[p]: largest i with potential[i] == p.
//
// All three are built in a single right-to-left sweep in Build, and are
// immutable afterwards; only the per-seed Cost field is ever mutated (by
// matches.Find, when it narrows a seed's cost below its full potential).
type Seeds struct {
	// List is sorted by Start; consecutive seeds are non-overlapping.
	List []Seed

	n int

	seedAt            []int // length n+1; -1 where no seed covers i
	potential         []int // length n+1; non-increasing
	startOfPotential  []int // length = potential[0]+1
}

// Build partitions [0, len(a)) into non-overlapping seeds of length cfg.K,
// discarding a trailing partial block, and computes the derived arrays.
//
// Complexity: O(n) time and space, a single pass over A plus a single
// right-to-left sweep over the derived arrays, following
// pa-heuristic/src/seeds.rs's Seeds::new.
func Build(n int, cfg Config) (*Seeds, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, ErrEmptySequence
	}

	numSeeds := n / cfg.K
	list := make([]Seed, numSeeds)
	for s := 0; s < numSeeds; s++ {
		list[s] = Seed{
			Start:     s * cfg.K,
			End:       (s + 1) * cfg.K,
			Potential: cfg.R,
			Cost:      cfg.R,
		}
	}

	return fromSeeds(n, list)
}

// fromSeeds computes seedAt/potential/startOfPotential for an already
// partitioned, sorted, non-overlapping seed list. Exposed indirectly via
// Build; kept separate so tests can construct irregular seed sets (for
// example a final short seed) without going through Build's fixed-k split.
func fromSeeds(n int, list []Seed) (*Seeds, error) {
	for s := 0; s < len(list); s++ {
		if list[s].Start >= list[s].End {
			return nil, ErrUnsorted
		}
		if s+1 < len(list) && list[s].End > list[s+1].Start {
			return nil, ErrUnsorted
		}
	}

	seedAt := make([]int, n+1)
	potential := make([]int, n+1)
	for i := range seedAt {
		seedAt[i] = -1
	}

	startOfPotential := []int{n}
	curPotential := 0
	nextSeed := len(list) - 1
	for i := n; i >= 0; i-- {
		if nextSeed >= 0 {
			s := &list[nextSeed]
			if i < s.End {
				seedAt[i] = nextSeed
			}
			if i == s.Start {
				curPotential += s.Potential
				for k := 0; k < s.Potential; k++ {
					startOfPotential = append(startOfPotential, i)
				}
				nextSeed--
			}
		}
		potential[i] = curPotential
	}

	return &Seeds{
		List:             list,
		n:                n,
		seedAt:           seedAt,
		potential:        potential,
		startOfPotential: startOfPotential,
	}, nil
}

// N returns the length of A that this Seeds instance was built over.
func (s *Seeds) N() int { return s.n }

// Potential returns the admissible upper bound on unmatched seed errors
// from position i to the end of A. Non-increasing in i; Potential(n) == 0.
func (s *Seeds) Potential(i int) int { return s.potential[i] }

// PotentialDistance returns the potential lost crossing from one position
// to another: potential(from) - potential(start of the seed covering to),
// or potential(from) - potential(to) if to is not inside a seed.
func (s *Seeds) PotentialDistance(from, to int) int {
	endI := to
	if seed := s.SeedAt(to); seed != nil {
		endI = seed.Start
	}
	return s.potential[from] - s.potential[endI]
}

// SeedAt returns the seed covering position i in A, or nil.
func (s *Seeds) SeedAt(i int) *Seed {
	idx := s.seedAt[i]
	if idx < 0 {
		return nil
	}
	return &s.List[idx]
}

// SeedEndingAt returns the seed whose End equals i, or nil.
func (s *Seeds) SeedEndingAt(i int) *Seed {
	if i == 0 {
		return nil
	}
	idx := s.seedAt[i-1]
	if idx < 0 {
		return nil
	}
	seed := &s.List[idx]
	if seed.End != i {
		return nil
	}
	return seed
}

// IsSeedStart reports whether i is the Start of the seed covering it.
func (s *Seeds) IsSeedStart(i int) bool {
	seed := s.SeedAt(i)
	return seed != nil && i == seed.Start
}

// IsSeedEnd reports whether i is the End of the seed ending there.
func (s *Seeds) IsSeedEnd(i int) bool {
	seed := s.SeedEndingAt(i)
	return seed != nil && i == seed.End
}

// IsSeedStartOrEnd reports whether i is a seed boundary in either sense;
// this is the query the heuristic façades gate pruning on (spec §4.5/§4.6).
func (s *Seeds) IsSeedStartOrEnd(i int) bool {
	return s.IsSeedStart(i) || s.IsSeedEnd(i)
}

// Transform maps a position into the gap-cost-aware coordinates used by
// GCSH: x = i - j - potential(i), y = j - i - potential(i). For any two
// positions u <= v (componentwise), transform(u) <= transform(v)
// componentwise iff the gap-cost lower bound from u to v is tight.
func (s *Seeds) Transform(p Pos) Pos {
	pot := s.Potential(p.I)
	return Pos{I: p.I - p.J - pot, J: p.J - p.I - pot}
}

// TransformBack inverts Transform using startOfPotential.
func (s *Seeds) TransformBack(p Pos) Pos {
	potential := -(p.I + p.J) / 2
	i := s.startOfPotential[potential]
	diff := (p.I - p.J) / 2
	j := i - diff
	return Pos{I: i, J: j}
}
