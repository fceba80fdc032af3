// Package draft holds not-yet-persisted candidate questions. A draft's
// shape is a tagged variant over the section's capability set, so a coding
// draft structurally cannot carry options or an answer.
package draft

import (
	"fmt"

	"github.com/lnrs-platform/adminconsole/internal/exam"
)

// Draft is one candidate question under construction.
type Draft interface {
	Section() exam.Section
	// Question builds the wire payload the draft stands for.
	Question() exam.Question
}

// Choice is the draft shape for the mcqs/aptitude/ai sections: a fixed
// 4-slot option sequence plus the answer.
type Choice struct {
	Sec     exam.Section
	Text    string
	Options [exam.OptionCount]string
	Answer  string
}

func NewChoice(sec exam.Section) (*Choice, error) {
	if !sec.IsChoice() {
		return nil, fmt.Errorf("%s is not a choice section", sec)
	}
	return &Choice{Sec: sec}, nil
}

func (d *Choice) Section() exam.Section { return d.Sec }

func (d *Choice) Question() exam.Question {
	return exam.Question{
		Section: d.Sec,
		Text:    d.Text,
		Options: append([]string(nil), d.Options[:]...),
		Answer:  d.Answer,
	}
}

// Coding is the draft shape for the coding section: growable test-case,
// constraint and example sequences plus the extended description.
type Coding struct {
	Text        string
	Description string
	TestCases   []exam.TestCase
	Constraints []string
	Examples    []exam.Example
}

// NewCoding starts with a single empty test case, matching the blank form.
func NewCoding() *Coding {
	return &Coding{TestCases: []exam.TestCase{{}}}
}

func (d *Coding) Section() exam.Section { return exam.SectionCoding }

func (d *Coding) Question() exam.Question {
	return exam.Question{
		Section:     exam.SectionCoding,
		Text:        d.Text,
		Description: d.Description,
		TestCases:   append([]exam.TestCase(nil), d.TestCases...),
		Constraints: append([]string(nil), d.Constraints...),
		Examples:    append([]exam.Example(nil), d.Examples...),
	}
}
