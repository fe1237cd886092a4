package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/dmitrijs2005/recipeadmin/internal/client/client"
	"github.com/dmitrijs2005/recipeadmin/internal/client/config"
	"github.com/dmitrijs2005/recipeadmin/internal/client/services"
	"github.com/dmitrijs2005/recipeadmin/internal/client/upload"
	"github.com/dmitrijs2005/recipeadmin/internal/client/view"
	"github.com/dmitrijs2005/recipeadmin/internal/logging"
)

type App struct {
	config   *config.Config
	client   client.Client
	metrics  http.Handler
	log      logging.Logger
	reader   *bufio.Reader
	out      io.Writer
	userName string

	deps      services.Deps
	section   *services.CommentSection
	comments  *services.CommentTable
	recipes   *services.RecipeTable
	users     *services.UserTable
	dashboard *services.Dashboard
	guards    map[string]*upload.Guard
}

func NewApp(c *config.Config) (*App, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	logger, err := logging.New(logging.Options{
		Backend: c.LogBackend,
		Level:   c.LogLevel,
		Format:  c.LogFormat,
		Output:  os.Stderr,
	})
	if err != nil {
		return nil, err
	}

	apiClient, err := client.NewHTTPClient(c.BaseURL, client.WithTimeout(c.RequestTimeout))
	if err != nil {
		return nil, err
	}

	a, err := newApp(c, apiClient, logger, bufio.NewReader(os.Stdin), os.Stdout)
	if err != nil {
		return nil, err
	}
	a.metrics = apiClient.MetricsHandler()
	return a, nil
}

// newApp wires the pages around an already built client. The App itself is
// the display and the question asker of every page.
func newApp(c *config.Config, cl client.Client, logger logging.Logger, r *bufio.Reader, w io.Writer) (*App, error) {
	loc, err := c.Location()
	if err != nil {
		return nil, err
	}

	a := &App{config: c, client: cl, log: logger, reader: r, out: w}
	a.deps = services.Deps{
		Client:   cl,
		Display:  a,
		Confirm:  a,
		Prompt:   a,
		Logger:   logger,
		Location: loc,
	}
	a.comments = services.NewCommentTable(a.deps)
	a.recipes = services.NewRecipeTable(a.deps)
	a.users = services.NewUserTable(a.deps)
	a.dashboard = services.NewDashboard(a.deps)
	a.guards = map[string]*upload.Guard{
		"profile": upload.ProfilePicture(a),
		"recipe":  upload.RecipeImage(a),
	}
	return a, nil
}

// Run blocks in the REPL until the operator leaves.
func (a *App) Run(ctx context.Context) {
	defer a.client.Close()
	defer a.flushLog()

	if a.config.MetricsAddr != "" && a.metrics != nil {
		stop := a.serveMetrics()
		defer stop()
	}

	a.Root(ctx)
}

// flushLog writes out entries a buffering backend (zap) still holds.
func (a *App) flushLog() {
	if s, ok := a.log.(interface{ Sync() error }); ok {
		_ = s.Sync()
	}
}

func (a *App) serveMetrics() func() {
	mux := http.NewServeMux()
	mux.Handle("/metrics", a.metrics)
	srv := &http.Server{Addr: a.config.MetricsAddr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.log.Error(context.Background(), "metrics server stopped", "addr", srv.Addr, "error", err)
		}
	}()
	a.log.Info(context.Background(), "serving metrics", "addr", srv.Addr)

	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		_ = srv.Shutdown(ctx)
	}
}

func (a *App) isLoggedIn() bool {
	return a.userName != ""
}

func (a *App) status() string {
	if a.userName == "" {
		return ""
	}
	return fmt.Sprintf("(%s)", a.userName)
}

// Show renders n in the configured output format.
func (a *App) Show(n *view.Node) {
	var err error
	if a.config.OutputFormat == config.OutputHTML {
		err = view.RenderHTML(a.out, n)
		if err == nil {
			_, err = fmt.Fprintln(a.out)
		}
	} else {
		err = view.RenderText(a.out, n)
	}
	if err != nil {
		a.log.Error(context.Background(), "error rendering view", "error", err)
	}
}

// Confirm asks a yes/no question; anything but y or yes is a no.
func (a *App) Confirm(message string) bool {
	answer, err := GetSimpleText(a.reader, message+" [y/N]", a.out)
	if err != nil {
		return false
	}
	switch strings.ToLower(answer) {
	case "y", "yes":
		return true
	}
	return false
}

func (a *App) Prompt(message string) (string, error) {
	return GetSimpleText(a.reader, message, a.out)
}

func (a *App) Alert(message string) {
	fmt.Fprintf(a.out, "! %s\n", message)
}
