package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/lnrs-platform/adminconsole/internal/catalog"
	"github.com/lnrs-platform/adminconsole/internal/config"
	"github.com/lnrs-platform/adminconsole/internal/console"
	"github.com/lnrs-platform/adminconsole/internal/session"
)

const usage = `adminctl — quiz platform admin console

Usage:
  adminctl login -email <email> [-password <password>]
  adminctl logout
  adminctl status
  adminctl questions list [-section <mcqs|aptitude|ai|coding>]
  adminctl questions add -file <draft.json|->
  adminctl questions update -file <question.json|->
  adminctl questions delete -id <id> [-yes]
  adminctl users list
  adminctl users add -name <name> -email <email> -password <password> [-admin]
  adminctl users delete -id <id> [-yes]
  adminctl exams list
`

func main() {
	_ = godotenv.Load()
	cfg := config.FromEnv()

	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	tokens, err := session.OpenStateFile(ctx, cfg.StateDBPath)
	if err != nil {
		log.Fatalf("open state db %s: %v", cfg.StateDBPath, err)
	}
	defer tokens.Close()

	c := console.New(cfg, tokens)
	if _, err := c.Session.Restore(); err != nil {
		log.Printf("warning: could not restore session: %v", err)
	}

	if err := dispatch(ctx, c, cfg, os.Args[1:]); err != nil {
		log.Fatalf("%v", err)
	}
}

func dispatch(ctx context.Context, c *console.Console, cfg config.Config, args []string) error {
	switch args[0] {
	case "login":
		return cmdLogin(ctx, c, args[1:])
	case "logout":
		if err := c.Session.Logout(); err != nil {
			return err
		}
		fmt.Println("Logged out successfully")
		return nil
	case "status":
		return cmdStatus(c)
	case "questions":
		return dispatchQuestions(ctx, c, cfg, args[1:])
	case "users":
		return dispatchUsers(ctx, c, cfg, args[1:])
	case "exams":
		if len(args) < 2 || args[1] != "list" {
			return errors.New("usage: adminctl exams list")
		}
		return cmdExamsList(ctx, c)
	case "help", "-h", "--help":
		fmt.Print(usage)
		return nil
	default:
		return fmt.Errorf("unknown command %q", args[0])
	}
}

func cmdLogin(ctx context.Context, c *console.Console, args []string) error {
	fs := flag.NewFlagSet("login", flag.ExitOnError)
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password (prompted when omitted)")
	fs.Parse(args)

	if *email == "" {
		return errors.New("login: -email is required")
	}
	if *password == "" {
		fmt.Fprint(os.Stderr, "Password: ")
		line, err := bufio.NewReader(os.Stdin).ReadString('\n')
		if err != nil {
			return err
		}
		*password = strings.TrimRight(line, "\r\n")
	}

	if err := c.Login(ctx, *email, *password); err != nil {
		if errors.Is(err, session.ErrInvalidCredentials) {
			return errors.New("invalid credentials")
		}
		return err
	}
	fmt.Printf("Successfully logged in: %d questions, %d users, %d submissions\n",
		c.Catalog.Len(), c.Users.Len(), c.Submissions.Len())
	return nil
}

func cmdStatus(c *console.Console) error {
	fmt.Printf("session: %s\n", c.Session.State())
	if exp := c.Session.Expiry(); !exp.IsZero() {
		fmt.Printf("token expires: %s\n", exp.Format(time.RFC3339))
	}
	return nil
}

func requireLogin(c *console.Console) error {
	if !c.Session.LoggedIn() {
		return errors.New("not logged in; run adminctl login first")
	}
	return nil
}

// confirmer builds the destructive-action guard: a real prompt, or an
// always-yes stub when -yes/ADMIN_ASSUME_YES asked for one.
func confirmer(assumeYes bool) catalog.Confirmer {
	if assumeYes {
		return catalog.ConfirmFunc(func(string) bool { return true })
	}
	return catalog.ConfirmFunc(func(prompt string) bool {
		fmt.Fprintf(os.Stderr, "%s [y/N]: ", prompt)
		line, err := bufio.NewReader(os.Stdin).ReadString('\n')
		if err != nil {
			return false
		}
		switch strings.ToLower(strings.TrimSpace(line)) {
		case "y", "yes":
			return true
		}
		return false
	})
}
