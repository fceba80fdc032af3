package roster

import (
	"context"
	"sync"

	"github.com/lnrs-platform/adminconsole/internal/exam"
)

// SubmissionBackend is the single read the submission list needs.
type SubmissionBackend interface {
	ListExams(ctx context.Context) ([]exam.Submission, error)
}

// Submissions is display-only: no client-side mutation exists, and the
// list keeps the server-provided order.
type Submissions struct {
	backend SubmissionBackend

	mu   sync.Mutex
	subs []exam.Submission
}

func NewSubmissions(backend SubmissionBackend) *Submissions {
	return &Submissions{backend: backend}
}

func (s *Submissions) Load(ctx context.Context) ([]exam.Submission, error) {
	subs, err := s.backend.ListExams(ctx)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	s.subs = subs
	s.mu.Unlock()
	return subs, nil
}

func (s *Submissions) Reset() {
	s.mu.Lock()
	s.subs = nil
	s.mu.Unlock()
}

func (s *Submissions) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.subs)
}

func (s *Submissions) Snapshot() []exam.Submission {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]exam.Submission, len(s.subs))
	copy(out, s.subs)
	return out
}
