package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/lnrs-platform/adminconsole/internal/config"
	"github.com/lnrs-platform/adminconsole/internal/console"
	"github.com/lnrs-platform/adminconsole/internal/exam"
)

func dispatchUsers(ctx context.Context, c *console.Console, cfg config.Config, args []string) error {
	if len(args) < 1 {
		return errors.New("usage: adminctl users <list|add|delete>")
	}
	if err := requireLogin(c); err != nil {
		return err
	}
	switch args[0] {
	case "list":
		users, err := c.Users.Load(ctx)
		if err != nil {
			return c.Guard(err)
		}
		if len(users) == 0 {
			fmt.Println("No users found")
			return nil
		}
		renderUsers(os.Stdout, users)
		return nil
	case "add":
		return cmdUsersAdd(ctx, c, args[1:])
	case "delete":
		return cmdUsersDelete(ctx, c, cfg, args[1:])
	default:
		return fmt.Errorf("unknown users command %q", args[0])
	}
}

func cmdUsersAdd(ctx context.Context, c *console.Console, args []string) error {
	fs := flag.NewFlagSet("users add", flag.ExitOnError)
	name := fs.String("name", "", "full name")
	email := fs.String("email", "", "email address")
	password := fs.String("password", "", "initial password")
	admin := fs.Bool("admin", false, "grant the admin role")
	fs.Parse(args)

	if *name == "" || *email == "" || *password == "" {
		return errors.New("users add: -name, -email and -password are required")
	}
	role := exam.RoleUser
	if *admin {
		role = exam.RoleAdmin
	}
	u, err := c.Users.Add(ctx, *name, *email, *password, role)
	if err != nil {
		return c.Guard(err)
	}
	fmt.Printf("User added successfully (id %s)\n", u.ID)
	return nil
}

func cmdUsersDelete(ctx context.Context, c *console.Console, cfg config.Config, args []string) error {
	fs := flag.NewFlagSet("users delete", flag.ExitOnError)
	id := fs.String("id", "", "user id")
	yes := fs.Bool("yes", cfg.AssumeYes, "skip confirmation")
	fs.Parse(args)

	if *id == "" {
		return errors.New("users delete: -id is required")
	}
	deleted, err := c.Users.Delete(ctx, *id, confirmer(*yes))
	if err != nil {
		return c.Guard(err)
	}
	if !deleted {
		fmt.Println("Aborted")
		return nil
	}
	fmt.Println("User deleted successfully")
	return nil
}

func cmdExamsList(ctx context.Context, c *console.Console) error {
	if err := requireLogin(c); err != nil {
		return err
	}
	subs, err := c.Submissions.Load(ctx)
	if err != nil {
		return c.Guard(err)
	}
	if len(subs) == 0 {
		fmt.Println("No submissions found")
		return nil
	}
	renderSubmissions(os.Stdout, subs)
	return nil
}
