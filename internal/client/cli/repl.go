package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output.
var printlnFn = fmt.Println

// execIface is the command surface the REPL drives. App satisfies it; tests
// use a recording stub.
type execIface interface {
	isLoggedIn() bool
	Login(ctx context.Context, args []string) error
	Comments(ctx context.Context, args []string) error
	DeleteComment(ctx context.Context, args []string) error
	AdminComments(ctx context.Context, args []string) error
	AdminDeleteComment(ctx context.Context, args []string) error
	Recipes(ctx context.Context, args []string) error
	DeleteRecipe(ctx context.Context, args []string) error
	Users(ctx context.Context, args []string) error
	ToggleStatus(ctx context.Context, args []string) error
	SetRole(ctx context.Context, args []string) error
	Dashboard(ctx context.Context, args []string) error
	CheckFile(ctx context.Context, args []string) error
}

type command struct {
	run      func(execIface, context.Context, []string) error
	needAuth bool
}

var commands = map[string]command{
	"login":            {run: execIface.Login},
	"comments":         {run: execIface.Comments, needAuth: true},
	"delcomment":       {run: execIface.DeleteComment, needAuth: true},
	"admin-comments":   {run: execIface.AdminComments, needAuth: true},
	"admin-delcomment": {run: execIface.AdminDeleteComment, needAuth: true},
	"recipes":          {run: execIface.Recipes, needAuth: true},
	"delrecipe":        {run: execIface.DeleteRecipe, needAuth: true},
	"users":            {run: execIface.Users, needAuth: true},
	"togglestatus":     {run: execIface.ToggleStatus, needAuth: true},
	"setrole":          {run: execIface.SetRole, needAuth: true},
	"dashboard":        {run: execIface.Dashboard, needAuth: true},
	"checkfile":        {run: execIface.CheckFile},
}

const (
	helpLoggedOut = "Available commands: login [username], checkfile <profile|recipe> <path>, exit"
	helpLoggedIn  = "Available commands: comments <recipeId>, delcomment <id>, admin-comments, admin-delcomment <id>, " +
		"recipes, delrecipe <id>, users, togglestatus <id>, setrole <id>, dashboard, " +
		"checkfile <profile|recipe> <path>, login [username], exit"
)

// runREPL reads commands from reader until EOF, "exit" or "quit", and
// dispatches them to a. Commands that talk to the admin API are refused
// before login.
//
// Errors returned by command handlers are dropped here: handlers log and
// print their own failures, and a failed command leaves the last shown view
// in place.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("ra%s> ", statusFn()))
		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn(helpLoggedIn)
			} else {
				printlnFn(helpLoggedOut)
			}
			continue
		case "exit", "quit":
			printlnFn("Bye!")
			return
		}

		c, ok := commands[cmd]
		if !ok {
			printlnFn("Unknown command:", cmd)
			continue
		}
		if c.needAuth && !a.isLoggedIn() {
			printlnFn("Please log in first")
			continue
		}
		_ = c.run(a, ctx, args)
	}
}

// Root greets the operator, logs in when a username is configured, and runs
// the REPL on the app's input.
func (a *App) Root(ctx context.Context) {
	a.log.Info(ctx, "recipe admin console started", "base_url", a.config.BaseURL)
	printlnFn("Recipe admin console (type 'help' for commands)")

	if a.config.Username != "" {
		_ = a.Login(ctx, nil)
	}

	runREPL(ctx, a, a.status, a.reader)
}
