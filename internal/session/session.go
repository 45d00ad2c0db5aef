// Package session implements the session store component: a sharded
// mapping from session id to a mutable text buffer, so one session's
// state never contends with another's under concurrent submit/feed
// calls (spec §5's "implementations may choose to shard sessions to
// avoid global locking").
package session

import (
	"hash/fnv"
	"sync"
)

const shardCount = 16

type shard struct {
	mu      sync.RWMutex
	buffers map[string]string
}

// Store holds one text buffer per session id. All methods are safe for
// concurrent use; each session id only ever contends with other ids that
// happen to hash to the same shard.
type Store struct {
	shards [shardCount]*shard
}

// New creates an empty session store.
func New() *Store {
	s := &Store{}
	for i := range s.shards {
		s.shards[i] = &shard{buffers: make(map[string]string)}
	}
	return s
}

func (s *Store) shardFor(sid string) *shard {
	h := fnv.New32a()
	_, _ = h.Write([]byte(sid))
	return s.shards[h.Sum32()%shardCount]
}

// GetOrCreate returns the current buffer for sid, creating an empty one
// if it doesn't exist yet.
func (s *Store) GetOrCreate(sid string) string {
	sh := s.shardFor(sid)
	sh.mu.Lock()
	defer sh.mu.Unlock()
	buf, ok := sh.buffers[sid]
	if !ok {
		sh.buffers[sid] = ""
	}
	return buf
}

// Append adds delta to sid's buffer and returns the new buffer, leaving
// buffer(sid) == old_buffer(sid) + delta.
func (s *Store) Append(sid, delta string) string {
	sh := s.shardFor(sid)
	sh.mu.Lock()
	defer sh.mu.Unlock()
	buf := sh.buffers[sid] + delta
	sh.buffers[sid] = buf
	return buf
}

// Replace overwrites sid's buffer with text.
func (s *Store) Replace(sid, text string) {
	sh := s.shardFor(sid)
	sh.mu.Lock()
	defer sh.mu.Unlock()
	sh.buffers[sid] = text
}

// Remove deletes sid's buffer. A no-op on an unknown session id.
func (s *Store) Remove(sid string) {
	sh := s.shardFor(sid)
	sh.mu.Lock()
	defer sh.mu.Unlock()
	delete(sh.buffers, sid)
}

// Peek returns sid's current buffer and whether the session exists,
// without creating it.
func (s *Store) Peek(sid string) (string, bool) {
	sh := s.shardFor(sid)
	sh.mu.RLock()
	defer sh.mu.RUnlock()
	buf, ok := sh.buffers[sid]
	return buf, ok
}

// Len returns the number of live sessions across all shards. Intended
// for introspection (see suggest.Engine.Stats), not the hot path.
func (s *Store) Len() int {
	total := 0
	for _, sh := range s.shards {
		sh.mu.RLock()
		total += len(sh.buffers)
		sh.mu.RUnlock()
	}
	return total
}
