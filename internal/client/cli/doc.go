// Package cli provides the interactive recipe admin console.
//
// It wires configuration, logging, the REST client and the admin pages
// into a REPL. The App is the terminal side of every page: it renders views
// as text or HTML, asks confirmations and prompts on stdin, and shows
// upload alerts.
//
// Commands:
//   - login [username]
//   - comments <recipeId>, delcomment <commentId>
//   - admin-comments, admin-delcomment <commentId>
//   - recipes, delrecipe <recipeId>
//   - users, togglestatus <userId>, setrole <userId>
//   - dashboard
//   - checkfile <profile|recipe> <path>
//   - help, exit | quit
//
// The REPL is started via App.Run(ctx), which blocks until the operator
// exits.
package cli
