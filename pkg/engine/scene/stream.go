package scene

import (
	"sort"
	"sync"
)

// Stream is an in-memory snapshot stream: it tracks the set of live data
// objects a scene has announced. Clients attach one as the scene's recorder
// so asset state can be inspected at runtime.
type Stream struct {
	mu   sync.Mutex
	live map[*Data]struct{}
}

// NewStream returns an empty stream.
func NewStream() *Stream {
	return &Stream{live: make(map[*Data]struct{})}
}

// AddData records d as live.
func (s *Stream) AddData(d *Data) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.live[d] = struct{}{}
}

// RemoveData retracts d.
func (s *Stream) RemoveData(d *Data) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.live, d)
}

// Live returns the names of the currently live data objects, sorted.
func (s *Stream) Live() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	names := make([]string, 0, len(s.live))
	for d := range s.live {
		names = append(names, d.Name())
	}
	sort.Strings(names)
	return names
}
