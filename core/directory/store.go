package directory

import "sync"

// Store is the process-wide cache of the loaded directory. It replaces
// the cached value wholesale: readers see either the previous directory
// or the new one, never a partial update. Inject a Store rather than
// sharing an ambient singleton so tests can supply their own.
type Store struct {
	mu      sync.RWMutex
	dir     PortDirectory
	version int
}

// NewStore returns an empty store. Lookups against an empty store
// return no matches; callers treat "not yet loaded" as "no data".
func NewStore() *Store {
	return &Store{dir: PortDirectory{}}
}

// Populate replaces the cached directory and bumps the version.
func (s *Store) Populate(d PortDirectory) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dir = d.Clone()
	s.version++
}

// Invalidate drops the cached directory back to empty.
func (s *Store) Invalidate() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dir = PortDirectory{}
	s.version++
}

// Version returns the current cache generation.
func (s *Store) Version() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.version
}

// Snapshot returns a copy of the cached directory.
func (s *Store) Snapshot() PortDirectory {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.dir.Clone()
}

// Ports lists the literal port names, sorted.
func (s *Store) Ports() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return sortedKeys(s.dir)
}

// Terminals lists the terminal names under a port, matched by
// normalized key. Unknown ports yield an empty list.
func (s *Store) Terminals(port string) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.lookupPort(port)
	if !ok {
		return nil
	}
	return sortedTerminalKeys(p.Terminals)
}

// Berths lists the berth entries under a port/terminal pair, matched by
// normalized keys. Unknown pairs yield an empty list.
func (s *Store) Berths(port, terminal string) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.lookupPort(port)
	if !ok {
		return nil
	}
	keys := make([]string, 0, len(p.Terminals))
	for k := range p.Terminals {
		keys = append(keys, k)
	}
	key, ok := FindExistingKey(terminal, keys)
	if !ok {
		return nil
	}
	berths := make([]string, len(p.Terminals[key].Berths))
	copy(berths, p.Terminals[key].Berths)
	return berths
}

func (s *Store) lookupPort(port string) (Port, bool) {
	keys := make([]string, 0, len(s.dir))
	for k := range s.dir {
		keys = append(keys, k)
	}
	key, ok := FindExistingKey(port, keys)
	if !ok {
		return Port{}, false
	}
	return s.dir[key], true
}
