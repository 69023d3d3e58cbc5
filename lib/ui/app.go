// Copyright 2026 The Ebank Authors
// SPDX-License-Identifier: Apache-2.0

package ui

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/TNT-747/ebank/lib/api"
	"github.com/TNT-747/ebank/lib/routes"
	"github.com/TNT-747/ebank/lib/session"
)

// AppConfig holds configuration for creating an App.
type AppConfig struct {
	// Store is the session store. Restored by the app at startup.
	Store *session.Store
	// Gateway issues all backend calls.
	Gateway *api.Client
	// Logger is used for structured logging. If nil, slog.Default()
	// is used.
	Logger *slog.Logger
	// Timeout bounds each backend call. Zero means 30 seconds.
	Timeout time.Duration
	// Unauthorized delivers the gateway's rejected-credential
	// notifications. May be nil in tests.
	Unauthorized <-chan struct{}
}

// App is the root bubbletea model: it owns session restoration, the
// route guard, the navbar, and the per-view sub-models.
type App struct {
	store        *session.Store
	gateway      *api.Client
	logger       *slog.Logger
	timeout      time.Duration
	unauthorized <-chan struct{}

	theme Theme
	keys  KeyMap

	width  int
	height int

	// loading is true until session restoration completes. While set,
	// the guard returns pending and the app renders a neutral
	// placeholder — never a premature login redirect.
	loading bool

	// route is the active view; forbidden overlays it with the access
	// denied message when the guard said so. wanted remembers where an
	// unauthenticated user was headed, for the post-login redirect.
	route     routes.Route
	wanted    routes.Route
	forbidden bool

	// gen is the view generation. Bumped on every navigation; async
	// results stamped with an older generation are discarded.
	gen int

	spin spinner.Model

	login          loginView
	dashboard      dashboardView
	newClient      newClientView
	newAccount     newAccountView
	newTransfer    newTransferView
	changePassword changePasswordView

	// Transient status-bar notice.
	notice      string
	noticeError bool
	noticeID    int
}

// NewApp creates the root model. Call tea.NewProgram(app).Run() to
// start the client.
func NewApp(config AppConfig) *App {
	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}
	timeout := config.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}

	spin := spinner.New()
	spin.Spinner = spinner.Dot

	app := &App{
		store:        config.Store,
		gateway:      config.Gateway,
		logger:       logger,
		timeout:      timeout,
		unauthorized: config.Unauthorized,
		theme:        DefaultTheme,
		keys:         DefaultKeyMap,
		loading:      true,
		route:        routes.RouteLogin,
		spin:         spin,
	}
	app.login = newLoginView()
	app.newClient = newNewClientView()
	app.newAccount = newNewAccountView()
	app.newTransfer = newNewTransferView()
	app.changePassword = newChangePasswordView()
	return app
}

// Init starts session restoration and arms the unauthorized listener.
func (a *App) Init() tea.Cmd {
	store := a.store
	restore := func() tea.Msg {
		return restoredMsg{err: store.Restore()}
	}
	return tea.Batch(restore, a.waitUnauthorized(), a.spin.Tick)
}

// stale reports whether an async result belongs to a view the user has
// already left.
func (a *App) stale(gen int) bool {
	return gen != a.gen
}

// setNotice shows a transient message in the status bar.
func (a *App) setNotice(text string, isError bool) tea.Cmd {
	a.noticeID++
	id := a.noticeID
	a.notice = text
	a.noticeError = isError
	return tea.Tick(statusNoticeDelay, func(time.Time) tea.Msg {
		return statusExpiredMsg{id: id}
	})
}

// navigate moves to a view, consulting the guard. Bumps the generation
// so in-flight results for the previous view are dropped.
func (a *App) navigate(route routes.Route) tea.Cmd {
	a.gen++
	a.forbidden = false
	identity := a.store.Current()

	if route == routes.RouteLogin {
		a.route = routes.RouteLogin
		a.login.reset()
		return textinput.Blink
	}

	switch routes.Decide(identity, a.loading, routes.Allowed(route)) {
	case routes.DecisionPending:
		return nil
	case routes.DecisionRedirectLogin:
		a.wanted = route
		a.route = routes.RouteLogin
		a.login.reset()
		return textinput.Blink
	case routes.DecisionForbidden:
		a.logger.Info("access denied", "route", route, "role", identity.Role)
		a.route = route
		a.forbidden = true
		return nil
	}

	a.route = route
	switch route {
	case routes.RouteDashboard:
		a.dashboard.reset()
		return tea.Batch(a.dashboard.load(a), a.spin.Tick)
	case routes.RouteNewTransfer:
		a.newTransfer.reset()
		return tea.Batch(a.newTransfer.loadAccounts(a), textinput.Blink)
	case routes.RouteNewClient:
		a.newClient.reset()
		return textinput.Blink
	case routes.RouteNewAccount:
		a.newAccount.reset()
		return textinput.Blink
	case routes.RouteChangePassword:
		a.changePassword.reset()
		return textinput.Blink
	}
	return nil
}

// afterLogin routes to the remembered destination when the new role is
// allowed there, otherwise to the role's home view.
func (a *App) afterLogin(identity *session.Identity) tea.Cmd {
	wanted := a.wanted
	a.wanted = ""
	if wanted != "" && routes.Decide(identity, false, routes.Allowed(wanted)) == routes.DecisionRender {
		return a.navigate(wanted)
	}
	return a.navigate(routes.HomeRoute(identity))
}

// Update is the bubbletea message dispatcher.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.dashboard.resize(msg.Width, msg.Height)
		return a, nil

	case restoredMsg:
		a.loading = false
		if msg.err != nil {
			a.logger.Warn("session restore failed", "error", msg.err)
		}
		return a, a.navigate(routes.HomeRoute(a.store.Current()))

	case unauthorizedMsg:
		// The store is already cleared; route to login and re-arm.
		notice := a.setNotice("your session has expired, please sign in again", true)
		return a, tea.Batch(notice, a.navigate(routes.RouteLogin), a.waitUnauthorized())

	case statusExpiredMsg:
		if msg.id == a.noticeID {
			a.notice = ""
		}
		return a, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		a.spin, cmd = a.spin.Update(msg)
		return a, cmd

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, a.keys.Quit):
			return a, tea.Quit
		case key.Matches(msg, a.keys.Logout):
			if a.store.Authenticated() {
				a.store.Logout()
				return a, a.navigate(routes.RouteLogin)
			}
			return a, nil
		case key.Matches(msg, a.keys.NextView):
			return a, a.cycleView(1)
		case key.Matches(msg, a.keys.PrevView):
			return a, a.cycleView(-1)
		case key.Matches(msg, a.keys.Back):
			if a.route != routes.RouteLogin && !a.loading {
				return a, a.navigate(routes.HomeRoute(a.store.Current()))
			}
			return a, nil
		}
	}

	if a.loading || a.forbidden {
		return a, nil
	}
	return a, a.updateActiveView(msg)
}

// cycleView moves to the adjacent navbar tab.
func (a *App) cycleView(direction int) tea.Cmd {
	identity := a.store.Current()
	visible := routes.Navigable(identity)
	if len(visible) == 0 {
		return nil
	}
	current := 0
	for i, route := range visible {
		if route == a.route {
			current = i
			break
		}
	}
	next := (current + direction + len(visible)) % len(visible)
	return a.navigate(visible[next])
}

// updateActiveView forwards a message to the sub-model owning the
// current route.
func (a *App) updateActiveView(msg tea.Msg) tea.Cmd {
	switch a.route {
	case routes.RouteLogin:
		return a.login.update(a, msg)
	case routes.RouteDashboard:
		return a.dashboard.update(a, msg)
	case routes.RouteNewClient:
		return a.newClient.update(a, msg)
	case routes.RouteNewAccount:
		return a.newAccount.update(a, msg)
	case routes.RouteNewTransfer:
		return a.newTransfer.update(a, msg)
	case routes.RouteChangePassword:
		return a.changePassword.update(a, msg)
	}
	return nil
}

// View renders the full frame: navbar, active view (or the forbidden
// overlay), and the status bar.
func (a *App) View() string {
	if a.loading {
		return fmt.Sprintf("\n  %s loading…\n", a.spin.View())
	}

	var body string
	switch {
	case a.forbidden:
		body = a.forbiddenView()
	case a.route == routes.RouteLogin:
		body = a.login.view(a)
	case a.route == routes.RouteDashboard:
		body = a.dashboard.view(a)
	case a.route == routes.RouteNewClient:
		body = a.newClient.view(a)
	case a.route == routes.RouteNewAccount:
		body = a.newAccount.view(a)
	case a.route == routes.RouteNewTransfer:
		body = a.newTransfer.view(a)
	case a.route == routes.RouteChangePassword:
		body = a.changePassword.view(a)
	}

	frame := lipgloss.NewStyle().Padding(0, 2)
	return a.navbarView() + "\n" + frame.Render(body) + "\n" + a.statusBarView()
}
