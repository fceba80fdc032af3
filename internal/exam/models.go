package exam

import (
	"fmt"
	"strings"
	"time"
)

// Section identifies a question bank. The backend recognizes exactly four.
type Section string

const (
	SectionMCQ      Section = "mcqs"
	SectionAptitude Section = "aptitude"
	SectionAI       Section = "ai"
	SectionCoding   Section = "coding"
)

// OptionCount is the fixed number of options a choice question carries.
const OptionCount = 4

func Sections() []Section {
	return []Section{SectionMCQ, SectionAptitude, SectionAI, SectionCoding}
}

func (s Section) Valid() bool {
	switch s {
	case SectionMCQ, SectionAptitude, SectionAI, SectionCoding:
		return true
	}
	return false
}

// IsChoice reports whether the section uses fixed options plus an answer
// rather than test cases.
func (s Section) IsChoice() bool {
	return s == SectionMCQ || s == SectionAptitude || s == SectionAI
}

type TestCase struct {
	Input  string `json:"input"`
	Output string `json:"output"`
	Hidden bool   `json:"isHidden"`
}

// Blank reports whether both sides of the test case are empty after
// trimming. Blank cases are dropped before a draft is sent.
func (tc TestCase) Blank() bool {
	return strings.TrimSpace(tc.Input) == "" && strings.TrimSpace(tc.Output) == ""
}

type Example struct {
	Input  string `json:"input"`
	Output string `json:"output"`
}

// Question mirrors the backend's wire representation. Options/Answer are
// meaningful only for choice sections; TestCases, Description, Constraints
// and Examples only for coding.
type Question struct {
	ID          string     `json:"_id,omitempty"`
	Section     Section    `json:"section"`
	Text        string     `json:"text"`
	Options     []string   `json:"options,omitempty"`
	Answer      string     `json:"answer,omitempty"`
	TestCases   []TestCase `json:"testCases,omitempty"`
	Description string     `json:"description,omitempty"`
	Constraints []string   `json:"constraints,omitempty"`
	Examples    []Example  `json:"examples,omitempty"`
	CreatedBy   string     `json:"createdBy,omitempty"`
	CreatedAt   *time.Time `json:"createdAt,omitempty"`
}

// Validate checks the section-capability invariants on a fully formed
// question (e.g. one returned by the server or built from a draft).
func (q Question) Validate() error {
	if !q.Section.Valid() {
		return fmt.Errorf("unknown section %q", q.Section)
	}
	if strings.TrimSpace(q.Text) == "" {
		return fmt.Errorf("question text is required")
	}
	if q.Section.IsChoice() {
		filled := 0
		for _, o := range q.Options {
			if strings.TrimSpace(o) != "" {
				filled++
			}
		}
		if filled != OptionCount {
			return fmt.Errorf("%d non-empty options are required for %s questions", OptionCount, q.Section)
		}
		if strings.TrimSpace(q.Answer) == "" {
			return fmt.Errorf("an answer is required for %s questions", q.Section)
		}
		for _, o := range q.Options {
			if o == q.Answer {
				return nil
			}
		}
		return fmt.Errorf("the answer must match one of the options")
	}
	// coding
	if len(q.Options) > 0 || q.Answer != "" {
		return fmt.Errorf("coding questions carry no options or answer")
	}
	if len(q.TestCases) == 0 {
		return fmt.Errorf("at least one test case is required for coding questions")
	}
	return nil
}

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

type User struct {
	ID    string `json:"_id,omitempty"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}

// UserRef is the weak back-reference a submission carries, not a full user.
type UserRef struct {
	ID    string `json:"_id"`
	Email string `json:"email"`
}

type AnswerRecord struct {
	Question  string `json:"question"`
	Answer    string `json:"answer"`
	IsCorrect bool   `json:"isCorrect"`
}

const (
	StatusInProgress = "in-progress"
	StatusCompleted  = "completed"
)

// Submission is read-only from the console's perspective.
type Submission struct {
	ID        string         `json:"_id"`
	User      UserRef        `json:"user"`
	Answers   []AnswerRecord `json:"answers"`
	Score     float64        `json:"score"`
	Status    string         `json:"status"`
	StartTime time.Time      `json:"startTime"`
	EndTime   *time.Time     `json:"endTime,omitempty"`
}

// Badge collapses submission status for display: anything not completed
// counts as pending.
func (s Submission) Badge() string {
	if s.Status == StatusCompleted {
		return "completed"
	}
	return "pending"
}
