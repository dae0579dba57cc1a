package advanced

import "github.com/osuushi/covercircle/geom"

// The points known to lie inside (or on the boundary of, without being a
// vertex of) the hull. Identity is by bit pattern, via geom.Key.
//
// This is a multiset, since the same point can be pushed more than once, and
// a copy of a hull vertex has to be accounted for somewhere. Iteration follows
// first insertion, so that repairs replay in the same order on every run.
//
// Removing the last copy of a point leaves a dead entry behind instead of
// shifting the rest down. Dead entries are swept out by RemoveWhere, or once
// they outnumber the live ones.
type interiorSet struct {
	positions map[geom.Key]int
	entries   []interiorEntry
	count     int
	dead      int
}

type interiorEntry struct {
	point geom.Point
	// Zero for a dead entry
	count int
}

func (s *interiorSet) Add(point geom.Point) {
	if s.positions == nil {
		s.positions = make(map[geom.Key]int)
	}
	s.count++
	key := point.Key()
	if i, ok := s.positions[key]; ok {
		s.entries[i].count++
		return
	}
	s.positions[key] = len(s.entries)
	s.entries = append(s.entries, interiorEntry{point, 1})
}

func (s *interiorSet) Has(point geom.Point) bool {
	_, ok := s.positions[point.Key()]
	return ok
}

// Remove one copy of the point. Returns false if there was none.
func (s *interiorSet) Remove(point geom.Point) bool {
	key := point.Key()
	i, ok := s.positions[key]
	if !ok {
		return false
	}
	s.count--
	s.entries[i].count--
	if s.entries[i].count == 0 {
		delete(s.positions, key)
		s.dead++
		if s.dead > len(s.entries)/2 {
			s.compact(nil)
		}
	}
	return true
}

// Remove every copy of every point matching the predicate, returning them in
// iteration order.
func (s *interiorSet) RemoveWhere(predicate func(geom.Point) bool) []geom.Point {
	var removed []geom.Point
	s.compact(func(entry interiorEntry) bool {
		if !predicate(entry.point) {
			return true
		}
		for i := 0; i < entry.count; i++ {
			removed = append(removed, entry.point)
		}
		s.count -= entry.count
		delete(s.positions, entry.point.Key())
		return false
	})
	return removed
}

func (s *interiorSet) Len() int {
	return s.count
}

// All points, with duplicates repeated.
func (s *interiorSet) Points() []geom.Point {
	points := make([]geom.Point, 0, s.count)
	for _, entry := range s.entries {
		for i := 0; i < entry.count; i++ {
			points = append(points, entry.point)
		}
	}
	return points
}

// Drop dead entries, and live ones that keep rejects, then fix up the
// positions of whatever moved.
func (s *interiorSet) compact(keep func(interiorEntry) bool) {
	kept := s.entries[:0]
	for _, entry := range s.entries {
		if entry.count == 0 || (keep != nil && !keep(entry)) {
			continue
		}
		s.positions[entry.point.Key()] = len(kept)
		kept = append(kept, entry)
	}
	// Clear the tail so dropped points aren't kept alive
	for i := len(kept); i < len(s.entries); i++ {
		s.entries[i] = interiorEntry{}
	}
	s.entries = kept
	s.dead = 0
}
