package exam

import (
	"encoding/json"
	"strings"
	"testing"
	"time"
)

func validChoice() Question {
	return Question{
		Section: SectionMCQ,
		Text:    "What is 2+2?",
		Options: []string{"1", "2", "3", "4"},
		Answer:  "4",
	}
}

func validCoding() Question {
	return Question{
		Section:   SectionCoding,
		Text:      "Reverse a string",
		TestCases: []TestCase{{Input: "abc", Output: "cba"}},
	}
}

func TestValidateChoice(t *testing.T) {
	if err := validChoice().Validate(); err != nil {
		t.Fatalf("valid choice question rejected: %v", err)
	}

	q := validChoice()
	q.Options[2] = "  "
	if err := q.Validate(); err == nil {
		t.Fatalf("expected rejection with a blank option")
	}

	q = validChoice()
	q.Answer = ""
	if err := q.Validate(); err == nil {
		t.Fatalf("expected rejection with a blank answer")
	}

	q = validChoice()
	q.Answer = "5"
	if err := q.Validate(); err == nil {
		t.Fatalf("expected rejection when the answer matches no option")
	}

	q = validChoice()
	q.Text = "   "
	if err := q.Validate(); err == nil {
		t.Fatalf("expected rejection with blank text")
	}
}

func TestValidateCoding(t *testing.T) {
	if err := validCoding().Validate(); err != nil {
		t.Fatalf("valid coding question rejected: %v", err)
	}

	q := validCoding()
	q.TestCases = nil
	if err := q.Validate(); err == nil {
		t.Fatalf("expected rejection without test cases")
	}

	q = validCoding()
	q.Options = []string{"a", "b", "c", "d"}
	if err := q.Validate(); err == nil {
		t.Fatalf("expected rejection when coding carries options")
	}

	q = Question{Section: "essay", Text: "hi"}
	if err := q.Validate(); err == nil {
		t.Fatalf("expected rejection of an unknown section")
	}
}

func TestSectionCapabilities(t *testing.T) {
	for _, sec := range []Section{SectionMCQ, SectionAptitude, SectionAI} {
		if !sec.IsChoice() {
			t.Fatalf("%s should be a choice section", sec)
		}
	}
	if SectionCoding.IsChoice() {
		t.Fatalf("coding should not be a choice section")
	}
	if len(Sections()) != 4 {
		t.Fatalf("expected 4 sections, got %d", len(Sections()))
	}
}

func TestTestCaseBlank(t *testing.T) {
	if !(TestCase{Input: " ", Output: "\t"}).Blank() {
		t.Fatalf("whitespace-only test case should be blank")
	}
	if (TestCase{Input: "x"}).Blank() {
		t.Fatalf("half-filled test case should not be blank")
	}
}

func TestSubmissionBadge(t *testing.T) {
	if badge := (Submission{Status: StatusCompleted}).Badge(); badge != "completed" {
		t.Fatalf("got badge %q", badge)
	}
	for _, status := range []string{StatusInProgress, "", "abandoned"} {
		if badge := (Submission{Status: status}).Badge(); badge != "pending" {
			t.Fatalf("status %q: got badge %q", status, badge)
		}
	}
}

func TestQuestionWireNames(t *testing.T) {
	q := validCoding()
	q.ID = "Q1"
	q.TestCases[0].Hidden = true
	ts := time.Unix(0, 0).UTC()
	q.CreatedAt = &ts
	b, err := json.Marshal(q)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	for _, want := range []string{`"_id":"Q1"`, `"isHidden":true`, `"section":"coding"`} {
		if !strings.Contains(string(b), want) {
			t.Fatalf("wire form %s missing %s", b, want)
		}
	}
	if strings.Contains(string(b), `"options"`) {
		t.Fatalf("empty options should be omitted: %s", b)
	}
}
