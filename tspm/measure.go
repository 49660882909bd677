package tspm

// top marks a measure component raised past the lattice maximum: the
// component's player wins the vertex.
const top = -1

// pm returns the measure vector of vertex v as a k-length view into the
// flat storage.
func (s *solver) pm(v int) []int {
	return s.pms[v*s.k : (v+1)*s.k]
}

// pmCopy copies the coordinates of player pl from src into dst, leaving the
// other player's coordinates untouched.
func (s *solver) pmCopy(dst, src []int, pl int) {
	for i := pl; i < s.k; i += 2 {
		dst[i] = src[i]
	}
}

// prog computes into dst the measure player pl must reach at a vertex of
// priority d whose successor carries src: coordinates of parity pl below d
// are truncated to zero, and the remaining coordinates ripple-add a carry
// seeded at d when d has parity pl. A carry escaping the top coordinate
// raises the component to Top.
func (s *solver) prog(dst, src []int, d, pl int) {
	if src[pl] == top {
		dst[pl] = top

		return
	}

	i := pl
	for ; i < d; i += 2 {
		dst[i] = 0
	}

	carry := 0
	if d == i {
		carry = 1
	}

	for ; i < s.k; i += 2 {
		v := src[i] + carry
		if v > s.counts[i] {
			dst[i] = 0
			carry = 1
		} else {
			dst[i] = v
			carry = 0
		}
	}

	if carry != 0 {
		dst[pl] = top
	}
}

// less reports whether measure a is strictly below b for player pl,
// truncated at priority d: the comparison runs from the top-most coordinate
// of parity pl down to d, first difference deciding. Top dominates every
// non-Top measure; two Tops are incomparable. Coordinates where both sides
// exceed the current counts bound are retired and compare equal.
func (s *solver) less(a, b []int, d, pl int) bool {
	if b[pl] == top {
		return a[pl] != top
	}
	if a[pl] == top {
		return false
	}

	start := s.k - 1
	if s.k%2 == pl {
		start = s.k - 2
	}
	for i := start; i >= d; i -= 2 {
		if a[i] == b[i] {
			continue
		}
		if a[i] > s.counts[i] && b[i] > s.counts[i] {
			return false
		}

		return a[i] < b[i]
	}

	return false
}

// canlift reports whether v's measure for player pl can strictly rise:
// against the best successor if pl owns v, against the least otherwise.
func (s *solver) canlift(v, pl int) bool {
	pm := s.pm(v)
	if pm[pl] == top {
		return false
	}

	d := s.g.Priority(v)

	if s.g.Owner(v) == pl {
		for _, to := range s.g.Outs(v) {
			if s.g.Disabled(to) {
				continue
			}
			s.prog(s.tmp, s.pm(to), d, pl)
			if s.less(pm, s.tmp, d, pl) {
				return true
			}
		}

		return false
	}

	bestTo := -1
	for _, to := range s.g.Outs(v) {
		if s.g.Disabled(to) {
			continue
		}
		s.prog(s.tmp, s.pm(to), d, pl)
		if bestTo == -1 || s.less(s.tmp, s.best, d, pl) {
			copy(s.best, s.tmp)
			bestTo = to
		}
	}
	// bestTo == -1 means every successor is disabled: nothing to lift to.
	if bestTo == -1 {
		return false
	}

	return s.less(pm, s.best, d, pl)
}
