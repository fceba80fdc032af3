// Package catalog mirrors the server's question bank in memory and keeps
// the mirror reconciled across the add/update/delete operations.
package catalog

import (
	"context"
	"fmt"
	"sync"

	"github.com/lnrs-platform/adminconsole/internal/exam"
)

// Backend is the slice of the REST surface the catalog needs; *api.Client
// satisfies it.
type Backend interface {
	ListQuestions(ctx context.Context, page, limit int) ([]exam.Question, error)
	CreateQuestion(ctx context.Context, q exam.Question) (exam.Question, error)
	UpdateQuestion(ctx context.Context, q exam.Question) (exam.Question, error)
	DeleteQuestion(ctx context.Context, id string) error
}

// Confirmer guards destructive actions. Declining is not an error: the
// operation is simply never started.
type Confirmer interface {
	Confirm(prompt string) bool
}

// ConfirmFunc adapts a function to the Confirmer interface.
type ConfirmFunc func(prompt string) bool

func (f ConfirmFunc) Confirm(prompt string) bool { return f(prompt) }

// ValidationError is a draft defect caught before any network traffic.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }

// DefaultPageSize is the sweep page size the backend paginates by.
const DefaultPageSize = 100

type Store struct {
	backend  Backend
	pageSize int

	mu        sync.Mutex
	questions []exam.Question
	loadSeq   uint64 // latest sweep issued; stale sweeps are discarded
}

func NewStore(backend Backend, pageSize int) *Store {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return &Store{backend: backend, pageSize: pageSize}
}

// LoadAll sweeps the catalog page by page, strictly sequentially: the next
// page number only exists once the previous page's length is known. A page
// shorter than the page size ends the sweep. The merged list is dedup'd by
// id (first occurrence wins; duplicates can arrive when the catalog shifts
// under a sweep) and published only if no newer sweep has started since.
func (s *Store) LoadAll(ctx context.Context) ([]exam.Question, error) {
	s.mu.Lock()
	s.loadSeq++
	seq := s.loadSeq
	limit := s.pageSize
	s.mu.Unlock()

	var all []exam.Question
	for page := 1; ; page++ {
		items, err := s.backend.ListQuestions(ctx, page, limit)
		if err != nil {
			return nil, err
		}
		all = append(all, items...)
		if len(items) < limit {
			break
		}
	}
	merged := dedupeByID(all)

	s.mu.Lock()
	if seq == s.loadSeq {
		s.questions = merged
	}
	s.mu.Unlock()
	return merged, nil
}

// Add validates the question locally, prunes what must not go over the
// wire, and creates it. No request is issued for an invalid draft. On
// success the catalog is reloaded so the cache reflects server order; if
// the reload itself fails the created question is appended locally and the
// reload error is surfaced alongside it.
func (s *Store) Add(ctx context.Context, q exam.Question) (exam.Question, error) {
	q = pruneForSend(q)
	if err := q.Validate(); err != nil {
		return exam.Question{}, &ValidationError{Reason: err.Error()}
	}

	created, err := s.backend.CreateQuestion(ctx, q)
	if err != nil {
		return exam.Question{}, err
	}
	if _, err := s.LoadAll(ctx); err != nil {
		s.mu.Lock()
		s.questions = append(s.questions, created)
		s.mu.Unlock()
		return created, fmt.Errorf("question added but catalog refresh failed: %w", err)
	}
	return created, nil
}

// Update replaces the question wholesale. The cache entry takes the
// server's returned representation, not the optimistic local copy, since
// the server may normalize fields. Other entries are untouched.
func (s *Store) Update(ctx context.Context, q exam.Question) (exam.Question, error) {
	if q.ID == "" {
		return exam.Question{}, &ValidationError{Reason: "question id is required"}
	}
	updated, err := s.backend.UpdateQuestion(ctx, q)
	if err != nil {
		return exam.Question{}, err
	}
	s.mu.Lock()
	for i := range s.questions {
		if s.questions[i].ID == q.ID {
			s.questions[i] = updated
			break
		}
	}
	s.mu.Unlock()
	return updated, nil
}

// Delete asks for confirmation before touching the network. Declined means
// no request and no cache change; the false return tells the caller so.
// On success the entry leaves the cache; on failure it stays.
func (s *Store) Delete(ctx context.Context, id string, confirm Confirmer) (bool, error) {
	if !confirm.Confirm("Are you sure you want to delete this question?") {
		return false, nil
	}
	if err := s.backend.DeleteQuestion(ctx, id); err != nil {
		return false, err
	}
	s.mu.Lock()
	kept := s.questions[:0]
	for _, q := range s.questions {
		if q.ID != id {
			kept = append(kept, q)
		}
	}
	s.questions = kept
	s.mu.Unlock()
	return true, nil
}

// Reset drops the cached catalog. Wired as a session-teardown subscriber.
func (s *Store) Reset() {
	s.mu.Lock()
	s.questions = nil
	s.mu.Unlock()
}

func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.questions)
}

// Snapshot copies the cached catalog.
func (s *Store) Snapshot() []exam.Question {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]exam.Question, len(s.questions))
	copy(out, s.questions)
	return out
}

// BySection filters the cached catalog.
func (s *Store) BySection(sec exam.Section) []exam.Question {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []exam.Question
	for _, q := range s.questions {
		if q.Section == sec {
			out = append(out, q)
		}
	}
	return out
}

// pruneForSend drops fully blank test cases and, for coding questions,
// strips the options/answer left over from a prior section choice. They
// are not meaningful there and must not be persisted.
func pruneForSend(q exam.Question) exam.Question {
	if len(q.TestCases) > 0 {
		kept := make([]exam.TestCase, 0, len(q.TestCases))
		for _, tc := range q.TestCases {
			if !tc.Blank() {
				kept = append(kept, tc)
			}
		}
		q.TestCases = kept
	}
	if q.Section == exam.SectionCoding {
		q.Options = nil
		q.Answer = ""
	} else {
		q.TestCases = nil
	}
	return q
}

func dedupeByID(in []exam.Question) []exam.Question {
	seen := make(map[string]struct{}, len(in))
	out := make([]exam.Question, 0, len(in))
	for _, q := range in {
		if _, dup := seen[q.ID]; dup {
			continue
		}
		seen[q.ID] = struct{}{}
		out = append(out, q)
	}
	return out
}
