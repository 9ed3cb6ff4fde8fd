package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"time"

	"github.com/dmitrijs2005/wellbeinghub/internal/client/brand"
	"github.com/dmitrijs2005/wellbeinghub/internal/client/client"
	"github.com/dmitrijs2005/wellbeinghub/internal/client/config"
	"github.com/dmitrijs2005/wellbeinghub/internal/client/services"
	"github.com/dmitrijs2005/wellbeinghub/internal/client/session"
	"github.com/dmitrijs2005/wellbeinghub/internal/logging"
)

// getSimpleText, getPassword and getMultiline are indirections used to
// facilitate testing.
var (
	getSimpleText = GetSimpleText
	getPassword   = GetPassword
	getMultiline  = GetMultiline
)

type App struct {
	config      *config.Config
	authService services.AuthService
	marketplace services.MarketplaceService
	groups      services.GroupService
	log         logging.Logger
	reader      *bufio.Reader
	out         io.Writer
	closeFn     func() error
}

// NewApp opens the configured session store and builds the API client and
// services on top of it. Close releases the store.
func NewApp(ctx context.Context, c *config.Config, log logging.Logger, in io.Reader, out io.Writer) (*App, error) {
	if log == nil {
		log = logging.Nop()
	}

	repo, closeFn, err := client.OpenRepository(ctx, c.SessionStore, c.SessionDSN, c.RedisURL)
	if err != nil {
		return nil, err
	}

	store := session.NewStore(repo, log)
	api := client.NewHTTPClient(c.APIBaseURL, store, client.WithLogger(log))

	a := newApp(c,
		services.NewAuthService(api, store, log),
		services.NewMarketplaceService(api, store),
		services.NewGroupService(api, store),
		log, in, out)
	a.closeFn = closeFn
	return a, nil
}

func newApp(c *config.Config, as services.AuthService, ms services.MarketplaceService, gs services.GroupService,
	log logging.Logger, in io.Reader, out io.Writer) *App {
	if log == nil {
		log = logging.Nop()
	}
	return &App{
		config:      c,
		authService: as,
		marketplace: ms,
		groups:      gs,
		log:         log,
		reader:      bufio.NewReader(in),
		out:         out,
	}
}

// Run prints the banner and serves commands until exit or end of input.
func (a *App) Run(ctx context.Context) {
	a.banner(ctx)
	runREPL(ctx, a, func() string { return a.status(ctx) }, a.reader)
}

// Close releases the session store.
func (a *App) Close() error {
	if a.closeFn == nil {
		return nil
	}
	return a.closeFn()
}

func (a *App) banner(ctx context.Context) {
	p := brand.Current()

	baseURL := a.config.APIBaseURL
	if baseURL == "" {
		baseURL = "(not set)"
	}

	fmt.Fprintln(a.out, brand.Paint(p.Primary, "Welcome to WellbeingHub (type 'help' for commands)"))
	fmt.Fprintln(a.out, "API:", brand.Paint(p.Link, baseURL))

	u, err := a.authService.CurrentUser(ctx)
	switch {
	case err != nil:
		a.log.Warn(ctx, "restore session failed", "error", err)
	case u != nil:
		fmt.Fprintln(a.out, "Signed in as", brand.Paint(p.Accent1, u.Name), "<"+u.Email+">")
	case a.isLoggedIn(ctx):
		fmt.Fprintln(a.out, "Signed in (profile not cached)")
	default:
		fmt.Fprintln(a.out, "Not signed in")
	}
}

func (a *App) isLoggedIn(ctx context.Context) bool {
	ok, err := a.authService.IsLoggedIn(ctx)
	if err != nil {
		a.log.Warn(ctx, "read session failed", "error", err)
		return false
	}
	return ok
}

// status is shown in the prompt: the signed-in user's name, or "guest".
func (a *App) status(ctx context.Context) string {
	if !a.isLoggedIn(ctx) {
		return "guest"
	}
	u, err := a.authService.CurrentUser(ctx)
	if err != nil || u == nil {
		return "signed in"
	}
	return u.Name
}

// callCtx bounds a single command by the configured request timeout.
func (a *App) callCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	var timeout time.Duration
	if a.config != nil {
		timeout = a.config.RequestTimeout
	}
	if timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, timeout)
}

func (a *App) success(msg string) {
	fmt.Fprintln(a.out, brand.Paint(brand.Current().Accent2, msg))
}
