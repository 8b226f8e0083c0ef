package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-fin-simulator/internal/app"
	"github.com/MKhiriev/go-fin-simulator/internal/controller"
	"github.com/MKhiriev/go-fin-simulator/models"
)

const toastDuration = 3 * time.Second

// page is a routed screen. Enter is called every time the route becomes
// active.
type page interface {
	tea.Model
	Enter() tea.Cmd
}

// resetter is implemented by pages that hold session-bound state.
type resetter interface {
	Reset()
}

// RootModel is a TUI router:
// 1) keeps the active route, resolved through the session guard
// 2) handles global quit and the build info window
// 3) shows transient notifications
// 4) delegates all other messages to the active page
type RootModel struct {
	guard controller.Guard
	pages map[controller.Route]page
	start controller.Route
	route controller.Route

	buildInfo     models.AppBuildInfo
	showBuildInfo bool

	toast    toastMsg
	toastSeq int

	quitByUser bool
}

// NewRootModel registers all pages. The program starts at start.
func NewRootModel(guard controller.Guard, pages map[controller.Route]page, start controller.Route, buildInfo models.AppBuildInfo) RootModel {
	return RootModel{
		guard:     guard,
		pages:     pages,
		start:     start,
		buildInfo: buildInfo,
	}
}

func (r RootModel) Init() tea.Cmd {
	start := r.start
	return func() tea.Msg { return NavigateTo{Route: start} }
}

func (r RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.forceQuit):
			r.quitByUser = true
			return r, tea.Quit
		case key.Matches(msg, keys.buildInfo):
			r.showBuildInfo = !r.showBuildInfo
			return r, nil
		case r.showBuildInfo:
			if key.Matches(msg, keys.esc) {
				r.showBuildInfo = false
			}
			return r, nil
		}

	case NavigateTo:
		return r.navigate(msg)

	case SessionExpiredMsg:
		for _, p := range r.pages {
			if res, ok := p.(resetter); ok {
				res.Reset()
			}
		}
		if r.route != controller.RouteSimulator {
			return r, nil
		}
		return r.navigate(NavigateTo{Route: controller.RouteLogin, Notice: app.MsgSessionExpired})

	case toastMsg:
		r.toastSeq++
		r.toast = msg
		seq := r.toastSeq
		return r, tea.Tick(toastDuration, func(time.Time) tea.Msg {
			return clearToastMsg{seq: seq}
		})

	case clearToastMsg:
		if msg.seq == r.toastSeq {
			r.toast = toastMsg{}
		}
		return r, nil
	}

	current, ok := r.pages[r.route]
	if !ok {
		return r, nil
	}

	updated, cmd := current.Update(msg)
	if p, ok := updated.(page); ok {
		r.pages[r.route] = p
	}
	return r, cmd
}

func (r RootModel) navigate(nav NavigateTo) (tea.Model, tea.Cmd) {
	route := r.guard.Resolve(nav.Route)
	next, ok := r.pages[route]
	if !ok {
		return r, nil
	}

	r.showBuildInfo = false
	r.route = route

	cmds := []tea.Cmd{next.Enter()}
	if nav.Notice != "" {
		cmds = append(cmds, showToast(nav.Notice, false))
	}
	return r, tea.Batch(cmds...)
}

func (r RootModel) View() string {
	if r.showBuildInfo {
		return appStyle.Render(renderBuildInfoWindow(r.buildInfo))
	}

	current, ok := r.pages[r.route]
	if !ok {
		return appStyle.Render(renderPage("SIMULADOR FINANCIERO", "", ""))
	}

	view := current.View()
	if r.toast.text != "" {
		style := successStyle
		if r.toast.failed {
			style = errorStyle
		}
		view += "\n\n  " + style.Render(r.toast.text)
	}
	return appStyle.Render(view)
}

// Route returns the active route.
func (r RootModel) Route() controller.Route {
	return r.route
}

func showToast(text string, failed bool) tea.Cmd {
	if text == "" {
		return nil
	}
	return func() tea.Msg { return toastMsg{text: text, failed: failed} }
}

func navigateTo(route controller.Route) tea.Cmd {
	return func() tea.Msg { return NavigateTo{Route: route} }
}
