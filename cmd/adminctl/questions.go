package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/lnrs-platform/adminconsole/internal/config"
	"github.com/lnrs-platform/adminconsole/internal/console"
	"github.com/lnrs-platform/adminconsole/internal/draft"
	"github.com/lnrs-platform/adminconsole/internal/exam"
)

func dispatchQuestions(ctx context.Context, c *console.Console, cfg config.Config, args []string) error {
	if len(args) < 1 {
		return errors.New("usage: adminctl questions <list|add|update|delete>")
	}
	if err := requireLogin(c); err != nil {
		return err
	}
	switch args[0] {
	case "list":
		return cmdQuestionsList(ctx, c, args[1:])
	case "add":
		return cmdQuestionsAdd(ctx, c, args[1:])
	case "update":
		return cmdQuestionsUpdate(ctx, c, args[1:])
	case "delete":
		return cmdQuestionsDelete(ctx, c, cfg, args[1:])
	default:
		return fmt.Errorf("unknown questions command %q", args[0])
	}
}

func cmdQuestionsList(ctx context.Context, c *console.Console, args []string) error {
	fs := flag.NewFlagSet("questions list", flag.ExitOnError)
	section := fs.String("section", "", "filter by section")
	fs.Parse(args)

	questions, err := c.Catalog.LoadAll(ctx)
	if err != nil {
		return c.Guard(err)
	}
	if *section != "" {
		sec := exam.Section(*section)
		if !sec.Valid() {
			return fmt.Errorf("unknown section %q", *section)
		}
		questions = c.Catalog.BySection(sec)
	}
	if len(questions) == 0 {
		fmt.Println("No questions found")
		return nil
	}
	renderQuestions(os.Stdout, questions)
	return nil
}

// questionFile is the JSON shape `questions add` reads. It intentionally
// looks like the web form: a section plus whichever fields that section
// uses; the draft controller rejects the rest.
type questionFile struct {
	Section     exam.Section    `json:"section"`
	Text        string          `json:"text"`
	Options     []string        `json:"options"`
	Answer      string          `json:"answer"`
	Description string          `json:"description"`
	TestCases   []exam.TestCase `json:"testCases"`
	Constraints []string        `json:"constraints"`
	Examples    []exam.Example  `json:"examples"`
}

func cmdQuestionsAdd(ctx context.Context, c *console.Console, args []string) error {
	fs := flag.NewFlagSet("questions add", flag.ExitOnError)
	file := fs.String("file", "", "path to a draft JSON file, or - for stdin")
	fs.Parse(args)

	var qf questionFile
	if err := readJSON(*file, &qf); err != nil {
		return err
	}

	ctrl := draft.NewController()
	if err := ctrl.SetSection(qf.Section); err != nil {
		return err
	}
	if err := fillDraft(ctrl, qf); err != nil {
		return err
	}

	created, err := ctrl.Submit(ctx, c.Catalog)
	if err != nil {
		return c.Guard(err)
	}
	fmt.Printf("Question added successfully (id %s)\n", created.ID)
	return nil
}

// fillDraft replays the file's fields through the controller's positional
// mutators so CLI input follows the same shape rules as the form.
func fillDraft(ctrl *draft.Controller, qf questionFile) error {
	if err := ctrl.SetText(qf.Text); err != nil {
		return err
	}
	if qf.Section.IsChoice() {
		if len(qf.Options) > exam.OptionCount {
			return fmt.Errorf("at most %d options are allowed", exam.OptionCount)
		}
		for i, o := range qf.Options {
			if err := ctrl.SetOption(i, o); err != nil {
				return err
			}
		}
		return ctrl.SetAnswer(qf.Answer)
	}
	if qf.Description != "" {
		if err := ctrl.SetDescription(qf.Description); err != nil {
			return err
		}
	}
	// the controller templates one empty test case; fill it, then append
	for i, tc := range qf.TestCases {
		if i > 0 {
			if err := ctrl.AddTestCase(); err != nil {
				return err
			}
		}
		if err := ctrl.SetTestCaseInput(i, tc.Input); err != nil {
			return err
		}
		if err := ctrl.SetTestCaseOutput(i, tc.Output); err != nil {
			return err
		}
		if err := ctrl.SetTestCaseHidden(i, tc.Hidden); err != nil {
			return err
		}
	}
	for _, con := range qf.Constraints {
		if err := ctrl.AddConstraint(con); err != nil {
			return err
		}
	}
	for i, ex := range qf.Examples {
		if err := ctrl.AddExample(); err != nil {
			return err
		}
		if err := ctrl.SetExampleInput(i, ex.Input); err != nil {
			return err
		}
		if err := ctrl.SetExampleOutput(i, ex.Output); err != nil {
			return err
		}
	}
	return nil
}

func cmdQuestionsUpdate(ctx context.Context, c *console.Console, args []string) error {
	fs := flag.NewFlagSet("questions update", flag.ExitOnError)
	file := fs.String("file", "", "path to a full question JSON file, or - for stdin")
	fs.Parse(args)

	var q exam.Question
	if err := readJSON(*file, &q); err != nil {
		return err
	}

	ctrl := draft.NewController()
	if err := ctrl.BeginEdit(q); err != nil {
		return err
	}
	updated, err := ctrl.SaveEdit(ctx, c.Catalog)
	if err != nil {
		return c.Guard(err)
	}
	fmt.Printf("Question updated successfully (id %s)\n", updated.ID)
	return nil
}

func cmdQuestionsDelete(ctx context.Context, c *console.Console, cfg config.Config, args []string) error {
	fs := flag.NewFlagSet("questions delete", flag.ExitOnError)
	id := fs.String("id", "", "question id")
	yes := fs.Bool("yes", cfg.AssumeYes, "skip confirmation")
	fs.Parse(args)

	if *id == "" {
		return errors.New("questions delete: -id is required")
	}
	deleted, err := c.Catalog.Delete(ctx, *id, confirmer(*yes))
	if err != nil {
		return c.Guard(err)
	}
	if !deleted {
		fmt.Println("Aborted")
		return nil
	}
	fmt.Println("Question deleted successfully")
	return nil
}

func readJSON(path string, out any) error {
	if path == "" {
		return errors.New("-file is required")
	}
	var r io.Reader
	if path == "-" {
		r = os.Stdin
	} else {
		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()
		r = f
	}
	return json.NewDecoder(r).Decode(out)
}
