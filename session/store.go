package session

import (
	"sync"
	"time"

	"yt-describe/models"
)

// Store is the in-process session map. Each job has a single writer (its
// pipeline goroutine) and many concurrent readers (progress polls), so all
// mutation funnels through Update under the write lock and Get hands out
// copies.
type Store struct {
	mu   sync.RWMutex
	jobs map[string]*models.Job
	ttl  time.Duration
	quit chan struct{}
	once sync.Once
}

// NewStore creates a store whose janitor evicts terminal jobs ttl after
// their last update. Transcript and description files on disk are left
// alone; eviction only drops the record.
func NewStore(ttl time.Duration) *Store {
	s := &Store{
		jobs: make(map[string]*models.Job),
		ttl:  ttl,
		quit: make(chan struct{}),
	}
	go s.janitor()
	return s
}

func (s *Store) Create(job *models.Job) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.jobs[job.ID] = job
}

// Get returns a snapshot of the job, so callers never share memory with the
// writing goroutine.
func (s *Store) Get(id string) (models.Job, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	job, ok := s.jobs[id]
	if !ok {
		return models.Job{}, false
	}
	return *job, true
}

// Update applies fn to the stored record under the write lock and stamps
// UpdatedAt. Returns false if the session is unknown.
func (s *Store) Update(id string, fn func(*models.Job)) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	job, ok := s.jobs[id]
	if !ok {
		return false
	}
	fn(job)
	job.UpdatedAt = time.Now()
	return true
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.jobs)
}

func (s *Store) Close() {
	s.once.Do(func() { close(s.quit) })
}

func (s *Store) janitor() {
	interval := s.ttl / 4
	if interval > 10*time.Minute {
		interval = 10 * time.Minute
	}
	if interval < time.Second {
		interval = time.Second
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.quit:
			return
		case <-ticker.C:
			s.evictExpired(time.Now())
		}
	}
}

// evictExpired removes terminal jobs idle for longer than the TTL. Running
// jobs are never evicted; their goroutine is still the record's writer.
func (s *Store) evictExpired(now time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for id, job := range s.jobs {
		if job.IsTerminal() && now.Sub(job.UpdatedAt) > s.ttl {
			delete(s.jobs, id)
			removed++
		}
	}
	return removed
}
