package draft

import (
	"context"
	"errors"
	"fmt"

	"github.com/lnrs-platform/adminconsole/internal/exam"
)

// Catalog is the submit target; *catalog.Store satisfies it.
type Catalog interface {
	Add(ctx context.Context, q exam.Question) (exam.Question, error)
	Update(ctx context.Context, q exam.Question) (exam.Question, error)
}

var (
	ErrNoSection    = errors.New("no section selected")
	ErrEditInFlight = errors.New("another question is already being edited")
	ErrNotEditing   = errors.New("no question is being edited")
	errNotChoice    = errors.New("current draft carries no options")
	errNotCoding    = errors.New("current draft carries no test cases")
)

// Controller manages at most two drafts: the "new question" form and one
// optional in-progress edit. Array fields are addressed by position; only
// in-place edits and tail appends exist, never reordering.
type Controller struct {
	draft   Draft
	editing *exam.Question
}

func NewController() *Controller { return &Controller{} }

// Current returns the new-question draft, nil before a section is chosen.
func (c *Controller) Current() Draft { return c.draft }

// SetSection re-templates the new-question draft for the target capability
// set. Switching between two choice sections keeps the entered options and
// answer; crossing the choice/coding boundary clears fields the new
// section cannot carry.
func (c *Controller) SetSection(sec exam.Section) error {
	if !sec.Valid() {
		return fmt.Errorf("unknown section %q", sec)
	}
	switch d := c.draft.(type) {
	case *Choice:
		if sec.IsChoice() {
			d.Sec = sec
			return nil
		}
		nd := NewCoding()
		nd.Text = d.Text
		c.draft = nd
	case *Coding:
		if sec == exam.SectionCoding {
			return nil
		}
		nd, _ := NewChoice(sec)
		nd.Text = d.Text
		c.draft = nd
	default:
		if sec.IsChoice() {
			c.draft, _ = NewChoice(sec)
		} else {
			c.draft = NewCoding()
		}
	}
	return nil
}

func (c *Controller) SetText(v string) error {
	switch d := c.draft.(type) {
	case *Choice:
		d.Text = v
	case *Coding:
		d.Text = v
	default:
		return ErrNoSection
	}
	return nil
}

func (c *Controller) SetOption(i int, v string) error {
	d, ok := c.draft.(*Choice)
	if !ok {
		return errNotChoice
	}
	if i < 0 || i >= exam.OptionCount {
		return fmt.Errorf("option index %d out of range", i)
	}
	d.Options[i] = v
	return nil
}

func (c *Controller) SetAnswer(v string) error {
	d, ok := c.draft.(*Choice)
	if !ok {
		return errNotChoice
	}
	d.Answer = v
	return nil
}

func (c *Controller) SetDescription(v string) error {
	d, ok := c.draft.(*Coding)
	if !ok {
		return errNotCoding
	}
	d.Description = v
	return nil
}

func (c *Controller) coding() (*Coding, error) {
	d, ok := c.draft.(*Coding)
	if !ok {
		return nil, errNotCoding
	}
	return d, nil
}

func (c *Controller) AddTestCase() error {
	d, err := c.coding()
	if err != nil {
		return err
	}
	d.TestCases = append(d.TestCases, exam.TestCase{})
	return nil
}

func (c *Controller) SetTestCaseInput(i int, v string) error {
	return c.editTestCase(i, func(tc *exam.TestCase) { tc.Input = v })
}

func (c *Controller) SetTestCaseOutput(i int, v string) error {
	return c.editTestCase(i, func(tc *exam.TestCase) { tc.Output = v })
}

func (c *Controller) SetTestCaseHidden(i int, hidden bool) error {
	return c.editTestCase(i, func(tc *exam.TestCase) { tc.Hidden = hidden })
}

func (c *Controller) editTestCase(i int, mutate func(*exam.TestCase)) error {
	d, err := c.coding()
	if err != nil {
		return err
	}
	if i < 0 || i >= len(d.TestCases) {
		return fmt.Errorf("test case index %d out of range", i)
	}
	mutate(&d.TestCases[i])
	return nil
}

func (c *Controller) AddConstraint(v string) error {
	d, err := c.coding()
	if err != nil {
		return err
	}
	d.Constraints = append(d.Constraints, v)
	return nil
}

func (c *Controller) SetConstraint(i int, v string) error {
	d, err := c.coding()
	if err != nil {
		return err
	}
	if i < 0 || i >= len(d.Constraints) {
		return fmt.Errorf("constraint index %d out of range", i)
	}
	d.Constraints[i] = v
	return nil
}

func (c *Controller) AddExample() error {
	d, err := c.coding()
	if err != nil {
		return err
	}
	d.Examples = append(d.Examples, exam.Example{})
	return nil
}

func (c *Controller) SetExampleInput(i int, v string) error {
	return c.editExample(i, func(e *exam.Example) { e.Input = v })
}

func (c *Controller) SetExampleOutput(i int, v string) error {
	return c.editExample(i, func(e *exam.Example) { e.Output = v })
}

func (c *Controller) editExample(i int, mutate func(*exam.Example)) error {
	d, err := c.coding()
	if err != nil {
		return err
	}
	if i < 0 || i >= len(d.Examples) {
		return fmt.Errorf("example index %d out of range", i)
	}
	mutate(&d.Examples[i])
	return nil
}

// Question builds the payload for the current new-question draft.
func (c *Controller) Question() (exam.Question, error) {
	if c.draft == nil {
		return exam.Question{}, ErrNoSection
	}
	return c.draft.Question(), nil
}

// Submit runs the draft through the catalog's add. The form resets to its
// empty template on success only; on any failure the entered values stay
// so the user's input is not lost.
func (c *Controller) Submit(ctx context.Context, cat Catalog) (exam.Question, error) {
	q, err := c.Question()
	if err != nil {
		return exam.Question{}, err
	}
	created, err := cat.Add(ctx, q)
	if err != nil {
		return exam.Question{}, err
	}
	c.Reset()
	return created, nil
}

// Reset returns the new-question form to its empty, section-less template.
func (c *Controller) Reset() { c.draft = nil }

// BeginEdit starts editing a copy of q. Only one edit may be in progress.
func (c *Controller) BeginEdit(q exam.Question) error {
	if c.editing != nil {
		return ErrEditInFlight
	}
	cp := q
	cp.Options = append([]string(nil), q.Options...)
	cp.TestCases = append([]exam.TestCase(nil), q.TestCases...)
	cp.Constraints = append([]string(nil), q.Constraints...)
	cp.Examples = append([]exam.Example(nil), q.Examples...)
	c.editing = &cp
	return nil
}

// Editing returns a copy of the in-progress edit, if any.
func (c *Controller) Editing() (exam.Question, bool) {
	if c.editing == nil {
		return exam.Question{}, false
	}
	return *c.editing, true
}

func (c *Controller) SetEditingText(v string) error {
	if c.editing == nil {
		return ErrNotEditing
	}
	c.editing.Text = v
	return nil
}

func (c *Controller) SetEditingOption(i int, v string) error {
	if c.editing == nil {
		return ErrNotEditing
	}
	if i < 0 || i >= len(c.editing.Options) {
		return fmt.Errorf("option index %d out of range", i)
	}
	c.editing.Options[i] = v
	return nil
}

func (c *Controller) SetEditingAnswer(v string) error {
	if c.editing == nil {
		return ErrNotEditing
	}
	c.editing.Answer = v
	return nil
}

func (c *Controller) SetEditingTestCaseInput(i int, v string) error {
	return c.editEditingTestCase(i, func(tc *exam.TestCase) { tc.Input = v })
}

func (c *Controller) SetEditingTestCaseOutput(i int, v string) error {
	return c.editEditingTestCase(i, func(tc *exam.TestCase) { tc.Output = v })
}

func (c *Controller) editEditingTestCase(i int, mutate func(*exam.TestCase)) error {
	if c.editing == nil {
		return ErrNotEditing
	}
	if i < 0 || i >= len(c.editing.TestCases) {
		return fmt.Errorf("test case index %d out of range", i)
	}
	mutate(&c.editing.TestCases[i])
	return nil
}

// SaveEdit pushes the in-progress edit through the catalog's update and,
// on success, ends the edit. On failure the edit stays open.
func (c *Controller) SaveEdit(ctx context.Context, cat Catalog) (exam.Question, error) {
	if c.editing == nil {
		return exam.Question{}, ErrNotEditing
	}
	updated, err := cat.Update(ctx, *c.editing)
	if err != nil {
		return exam.Question{}, err
	}
	c.editing = nil
	return updated, nil
}

// EndEdit abandons the in-progress edit.
func (c *Controller) EndEdit() { c.editing = nil }
