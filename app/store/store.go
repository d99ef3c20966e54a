// Package store keeps the collection of job applications and mirrors it to a durable slot.
// Every successful mutation rewrites the whole collection to the slot before returning,
// the slot is read once on Load.
package store

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	log "github.com/go-pkgz/lgr"
	"github.com/go-pkgz/repeater"
	"github.com/go-pkgz/repeater/strategy"

	"github.com/umputun/jobwise/app/store/slot"
)

//go:generate moq -out mocks/slot.go -pkg mocks -skip-ensure -fmt goimports . Slot
//go:generate moq -out mocks/notifier.go -pkg mocks -skip-ensure -fmt goimports . Notifier

// ErrInvalidJob returned for job data missing required fields or with unknown status
var ErrInvalidJob = errors.New("invalid job")

// Slot is a durable key-value entry holding the serialized collection
type Slot interface {
	Read(ctx context.Context) ([]byte, error)
	Write(ctx context.Context, data []byte) error
	String() string
}

// Notifier receives user-facing success messages, fire-and-forget
type Notifier interface {
	Success(msg string)
}

// Repeater repeats failed function
type Repeater interface {
	Do(ctx context.Context, fun func() error, errors ...error) (err error)
}

// Params for New
type Params struct {
	Slot     Slot
	Notifier Notifier         // optional
	Repeater Repeater         // optional, retries slot writes
	Now      func() time.Time // optional, clock for id generation
	Timeout  time.Duration    // optional, limit for a single persist with retries, default 30s
}

// Store is the single source of truth for job records.
// Safe for concurrent use, mutations are serialized together with their slot writes.
type Store struct {
	slot     Slot
	notifier Notifier
	repeater Repeater

	writeTimeout time.Duration

	mu   sync.RWMutex
	jobs []Job
	ids  idGen
}

// New makes a store with empty collection, call Load to populate it from the slot
func New(p Params) *Store {
	res := &Store{slot: p.Slot, notifier: p.Notifier, repeater: p.Repeater, writeTimeout: p.Timeout, jobs: []Job{}}
	if res.writeTimeout <= 0 {
		res.writeTimeout = 30 * time.Second
	}
	res.ids.now = time.Now
	if p.Now != nil {
		res.ids.now = p.Now
	}
	if res.repeater == nil {
		res.repeater = repeater.New(&strategy.Once{})
	}
	return res
}

// NewRepeater makes backoff repeater for slot writes, attempts includes the first call
func NewRepeater(attempts int) Repeater {
	if attempts < 1 {
		attempts = 1
	}
	return repeater.New(&strategy.Backoff{Repeats: attempts, Duration: 100 * time.Millisecond, Factor: 2, Jitter: true})
}

// Load reads the collection from the slot. Empty slot gives empty collection.
// Malformed content is logged and replaced by empty collection, it never fails the load.
// Only a failure to read the slot itself is returned.
func (s *Store) Load(ctx context.Context) error {
	data, err := s.slot.Read(ctx)
	if err != nil && !errors.Is(err, slot.ErrEmpty) {
		return fmt.Errorf("failed to read jobs from %s: %w", s.slot, err)
	}

	jobs := []Job{}
	if err == nil {
		decoded, decErr := Decode(data)
		if decErr != nil {
			log.Printf("[WARN] stored jobs in %s can't be parsed, starting with empty list: %v", s.slot, decErr)
		} else {
			jobs = dedup(decoded)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.jobs = jobs
	for _, j := range jobs {
		s.ids.observe(j.ID)
	}
	log.Printf("[INFO] loaded %d jobs from %s", len(jobs), s.slot)
	return nil
}

// Add assigns a fresh id to data, appends the job and persists the collection
func (s *Store) Add(ctx context.Context, data JobData) (Job, error) {
	if err := data.validate(); err != nil {
		return Job{}, err
	}

	s.mu.Lock()
	job := Job{ID: s.ids.next(), JobData: data}
	s.jobs = append(s.jobs, job)
	s.persist(ctx)
	s.mu.Unlock()

	log.Printf("[DEBUG] added job %d, %s at %s", job.ID, job.Role, job.Company)
	s.notify("Job added successfully!")
	return job, nil
}

// Update replaces the job with the same id. Unknown id leaves the collection and the slot
// untouched and reports found=false, it is not an error.
func (s *Store) Update(ctx context.Context, job Job) (found bool, err error) {
	if err := job.validate(); err != nil {
		return false, err
	}

	s.mu.Lock()
	idx := s.index(job.ID)
	if idx < 0 {
		s.mu.Unlock()
		log.Printf("[DEBUG] update skipped, job %d not found", job.ID)
		return false, nil
	}
	prevStatus := s.jobs[idx].Status
	s.jobs[idx] = job
	s.persist(ctx)
	s.mu.Unlock()

	log.Printf("[DEBUG] updated job %d, status %s", job.ID, job.Status)
	if prevStatus != job.Status {
		s.notify(fmt.Sprintf("Job moved to %s status!", job.Status))
		return true, nil
	}
	s.notify("Job updated successfully!")
	return true, nil
}

// Delete removes the job with given id. Unknown id is a no-op with found=false.
func (s *Store) Delete(ctx context.Context, id int64) (found bool) {
	s.mu.Lock()
	idx := s.index(id)
	if idx < 0 {
		s.mu.Unlock()
		log.Printf("[DEBUG] delete skipped, job %d not found", id)
		return false
	}
	s.jobs = slices.Delete(s.jobs, idx, idx+1)
	s.persist(ctx)
	s.mu.Unlock()

	log.Printf("[DEBUG] deleted job %d", id)
	s.notify("Job removed successfully!")
	return true
}

// ByStatus returns jobs with given status in collection order
func (s *Store) ByStatus(status Status) []Job {
	s.mu.RLock()
	defer s.mu.RUnlock()
	res := []Job{}
	for _, j := range s.jobs {
		if j.Status == status {
			res = append(res, j)
		}
	}
	return res
}

// List returns all jobs in collection order
func (s *Store) List() []Job {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.jobs)
}

// Get returns job by id
func (s *Store) Get(id int64) (Job, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if idx := s.index(id); idx >= 0 {
		return s.jobs[idx], true
	}
	return Job{}, false
}

// Snapshot returns the serialized collection, same document the slot holds
func (s *Store) Snapshot() ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Encode(s.jobs)
}

// persist writes the whole collection to the slot, must be called under write lock.
// The write is detached from caller's cancellation and bounded by writeTimeout.
// Failures are retried and then logged, the in-memory change stands.
func (s *Store) persist(ctx context.Context) {
	data, err := Encode(s.jobs)
	if err != nil {
		log.Printf("[ERROR] can't encode jobs, %v", err)
		return
	}
	wrCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.writeTimeout)
	defer cancel()
	err = s.repeater.Do(wrCtx, func() error { return s.slot.Write(wrCtx, data) })
	if err != nil {
		log.Printf("[WARN] failed to save %d jobs to %s: %v", len(s.jobs), s.slot, err)
	}
}

func (s *Store) index(id int64) int {
	return slices.IndexFunc(s.jobs, func(j Job) bool { return j.ID == id })
}

func (s *Store) notify(msg string) {
	if s.notifier != nil {
		s.notifier.Success(msg)
	}
}

// dedup drops jobs repeating an earlier id, keeps the first occurrence
func dedup(jobs []Job) []Job {
	seen := make(map[int64]bool, len(jobs))
	res := make([]Job, 0, len(jobs))
	for _, j := range jobs {
		if seen[j.ID] {
			log.Printf("[WARN] duplicate job id %d in stored jobs, dropped", j.ID)
			continue
		}
		seen[j.ID] = true
		res = append(res, j)
	}
	return res
}
