package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/lnrs-platform/adminconsole/internal/exam"
)

func renderQuestions(w io.Writer, questions []exam.Question) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tSECTION\tTEXT\tDETAIL")
	for _, q := range questions {
		detail := ""
		if q.Section.IsChoice() {
			detail = fmt.Sprintf("answer: %s", q.Answer)
		} else {
			detail = fmt.Sprintf("%d test cases", len(q.TestCases))
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", q.ID, q.Section, truncate(q.Text, 60), detail)
	}
	tw.Flush()
}

func renderUsers(w io.Writer, users []exam.User) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tEMAIL\tROLE")
	for _, u := range users {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", u.ID, u.Name, u.Email, u.Role)
	}
	tw.Flush()
}

func renderSubmissions(w io.Writer, subs []exam.Submission) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tUSER\tSCORE\tSTATUS\tSTARTED")
	for _, s := range subs {
		fmt.Fprintf(tw, "%s\t%s\t%.0f\t%s\t%s\n",
			s.ID, s.User.Email, s.Score, s.Badge(), s.StartTime.Format(time.RFC3339))
	}
	tw.Flush()
}

func truncate(s string, n int) string {
	s = strings.ReplaceAll(s, "\n", " ")
	if len(s) <= n {
		return s
	}
	return s[:n-1] + "…"
}
