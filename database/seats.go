package database

import (
	"sort"
	"sync"
)

// seats is the membership set of one room. Chat and broadcasts read it
// while joins and leaves change it, so every access goes through the lock.
type seats struct {
	sync.RWMutex
	ids map[int64]bool
}

func newSeats() *seats {
	return &seats{ids: map[int64]bool{}}
}

func (s *seats) add(id int64) bool {
	s.Lock()
	defer s.Unlock()
	if s.ids[id] {
		return false
	}
	s.ids[id] = true
	return true
}

// remove reports whether id was seated and how many seats are left.
func (s *seats) remove(id int64) (bool, int) {
	s.Lock()
	defer s.Unlock()
	_, ok := s.ids[id]
	delete(s.ids, id)
	return ok, len(s.ids)
}

func (s *seats) list() []int64 {
	s.RLock()
	ids := make([]int64, 0, len(s.ids))
	for id := range s.ids {
		ids = append(ids, id)
	}
	s.RUnlock()
	sort.Slice(ids, func(i, j int) bool {
		return ids[i] < ids[j]
	})
	return ids
}
