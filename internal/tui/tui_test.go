package tui

import (
	"context"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-fin-simulator/internal/controller"
	"github.com/MKhiriev/go-fin-simulator/internal/logger"
	"github.com/MKhiriev/go-fin-simulator/internal/mock"
	"github.com/MKhiriev/go-fin-simulator/models"
)

// ── helpers ──

type staticAuth bool

func (a staticAuth) IsAuthenticated() bool { return bool(a) }

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var (
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyTab   = tea.KeyMsg{Type: tea.KeyTab}
	keyEsc   = tea.KeyMsg{Type: tea.KeyEscape}
)

// collect runs cmd and every command batched inside it, returning the
// produced messages.
func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}

	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, collect(c)...)
		}
		return out
	}
	if msg == nil {
		return nil
	}
	return []tea.Msg{msg}
}

func findMsg[T tea.Msg](msgs []tea.Msg) (T, bool) {
	for _, msg := range msgs {
		if typed, ok := msg.(T); ok {
			return typed, true
		}
	}
	var zero T
	return zero, false
}

type fakePage struct {
	name    string
	entered int
	resets  int
	got     []tea.Msg
}

func (p *fakePage) Init() tea.Cmd { return nil }

func (p *fakePage) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	p.got = append(p.got, msg)
	return p, nil
}

func (p *fakePage) View() string { return "page " + p.name }

func (p *fakePage) Enter() tea.Cmd {
	p.entered++
	return nil
}

func (p *fakePage) Reset() { p.resets++ }

func newFakeRoot(authenticated bool) (RootModel, map[controller.Route]*fakePage) {
	fakes := map[controller.Route]*fakePage{
		controller.RouteLogin:     {name: "login"},
		controller.RouteRegister:  {name: "register"},
		controller.RouteSimulator: {name: "simulator"},
	}
	pages := map[controller.Route]page{}
	for route, p := range fakes {
		pages[route] = p
	}
	root := NewRootModel(controller.NewGuard(staticAuth(authenticated)), pages, controller.RouteSimulator,
		models.NewAppBuildInfo("1.0.0", "2026-01-01", "abc123"))
	return root, fakes
}

func update(t *testing.T, m tea.Model, msg tea.Msg) (RootModel, tea.Cmd) {
	t.Helper()
	updated, cmd := m.Update(msg)
	root, ok := updated.(RootModel)
	require.True(t, ok)
	return root, cmd
}

// ── RootModel ──

func TestRootModel_StartRouteGoesThroughGuard(t *testing.T) {
	tests := []struct {
		name          string
		authenticated bool
		want          controller.Route
	}{
		{name: "no session", authenticated: false, want: controller.RouteLogin},
		{name: "session", authenticated: true, want: controller.RouteSimulator},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root, fakes := newFakeRoot(tt.authenticated)

			msgs := collect(root.Init())
			require.Len(t, msgs, 1)
			root, _ = update(t, root, msgs[0])

			assert.Equal(t, tt.want, root.Route())
			assert.Equal(t, 1, fakes[tt.want].entered)
			assert.Contains(t, root.View(), "page "+fakes[tt.want].name)
		})
	}
}

func TestRootModel_DelegatesToActivePage(t *testing.T) {
	root, fakes := newFakeRoot(false)
	root, _ = update(t, root, NavigateTo{Route: controller.RouteRegister})

	root, _ = update(t, root, keyRunes("a"))

	require.Len(t, fakes[controller.RouteRegister].got, 1)
	assert.Empty(t, fakes[controller.RouteLogin].got)
	assert.Equal(t, controller.RouteRegister, root.Route())
}

func TestRootModel_Toasts(t *testing.T) {
	root, _ := newFakeRoot(false)
	root, _ = update(t, root, NavigateTo{Route: controller.RouteLogin})

	root, cmd := update(t, root, toastMsg{text: "primero"})
	assert.NotNil(t, cmd, "a clear is scheduled")
	root, _ = update(t, root, toastMsg{text: "segundo", failed: true})
	assert.Contains(t, root.View(), "segundo")

	root, _ = update(t, root, clearToastMsg{seq: 1})
	assert.Contains(t, root.View(), "segundo", "a stale clear keeps the newer toast")

	root, _ = update(t, root, clearToastMsg{seq: 2})
	assert.NotContains(t, root.View(), "segundo")
}

func TestRootModel_SessionExpired(t *testing.T) {
	root, fakes := newFakeRoot(false)
	root.route = controller.RouteSimulator

	root, cmd := update(t, root, SessionExpiredMsg{})

	assert.Equal(t, controller.RouteLogin, root.Route())
	assert.Equal(t, 1, fakes[controller.RouteSimulator].resets)
	toast, ok := findMsg[toastMsg](collect(cmd))
	require.True(t, ok)
	assert.True(t, strings.Contains(toast.text, "sesión"))
}

func TestRootModel_BuildInfoAndQuit(t *testing.T) {
	root, _ := newFakeRoot(false)
	root, _ = update(t, root, NavigateTo{Route: controller.RouteLogin})

	root, _ = update(t, root, tea.KeyMsg{Type: tea.KeyF1})
	assert.Contains(t, root.View(), "1.0.0")
	assert.Contains(t, root.View(), "abc123")

	root, _ = update(t, root, keyEsc)
	assert.Contains(t, root.View(), "page login")

	root, cmd := update(t, root, tea.KeyMsg{Type: tea.KeyCtrlC})
	assert.True(t, root.quitByUser)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

// ── login and register ──

func newTestAuth(t *testing.T) (*controller.AuthController, *mock.MockClientAuthService) {
	t.Helper()
	auth := mock.NewMockClientAuthService(gomock.NewController(t))
	return controller.NewAuthController(auth, logger.Nop()), auth
}

func TestLoginModel_InvalidFieldsStayLocal(t *testing.T) {
	auth, _ := newTestAuth(t)
	m := NewLoginModel(context.Background(), auth)
	m.inputs[0].SetValue("no-es-correo")
	m.inputs[1].SetValue("123")

	_, cmd := m.Update(keyEnter)
	msgs := collect(cmd)
	done, ok := findMsg[loginDoneMsg](msgs)
	require.True(t, ok)

	_, cmd = m.Update(done)

	assert.Nil(t, collect(cmd), "no toast for inline errors")
	view := m.View()
	assert.Contains(t, view, "Correo electrónico inválido")
	assert.Contains(t, view, "al menos 6 caracteres")
}

func TestLoginModel_Success(t *testing.T) {
	auth, svc := newTestAuth(t)
	m := NewLoginModel(context.Background(), auth)
	m.inputs[0].SetValue("ana@example.com")
	m.inputs[1].SetValue("secret1")

	svc.EXPECT().Login(gomock.Any(), "ana@example.com", "secret1").Return(models.Credential{AccessToken: "t"}, nil)

	_, cmd := m.Update(keyEnter)
	assert.True(t, m.submitting)
	done, ok := findMsg[loginDoneMsg](collect(cmd))
	require.True(t, ok)

	_, cmd = m.Update(done)
	msgs := collect(cmd)

	nav, ok := findMsg[NavigateTo](msgs)
	require.True(t, ok)
	assert.Equal(t, controller.RouteSimulator, nav.Route)
	_, ok = findMsg[toastMsg](msgs)
	assert.True(t, ok)
	assert.False(t, m.submitting)
}

func TestLoginModel_OpensRegister(t *testing.T) {
	auth, _ := newTestAuth(t)
	m := NewLoginModel(context.Background(), auth)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlR})

	nav, ok := findMsg[NavigateTo](collect(cmd))
	require.True(t, ok)
	assert.Equal(t, controller.RouteRegister, nav.Route)
}

func TestRegisterModel_MismatchNeverCallsServer(t *testing.T) {
	auth, _ := newTestAuth(t)
	m := NewRegisterModel(context.Background(), auth)
	m.inputs[0].SetValue("ana@example.com")
	m.inputs[1].SetValue("secret1")
	m.inputs[2].SetValue("secret2")

	_, cmd := m.Update(keyEnter)
	done, ok := findMsg[registerDoneMsg](collect(cmd))
	require.True(t, ok)
	m.Update(done)

	assert.Contains(t, m.View(), "Las contraseñas no coinciden")
}

func TestRegisterModel_SuccessGoesToLogin(t *testing.T) {
	auth, svc := newTestAuth(t)
	m := NewRegisterModel(context.Background(), auth)
	m.inputs[0].SetValue("ana@example.com")
	m.inputs[1].SetValue("secret1")
	m.inputs[2].SetValue("secret1")

	svc.EXPECT().Register(gomock.Any(), "ana@example.com", "secret1").Return(nil)

	_, cmd := m.Update(keyEnter)
	done, ok := findMsg[registerDoneMsg](collect(cmd))
	require.True(t, ok)
	_, cmd = m.Update(done)

	nav, ok := findMsg[NavigateTo](collect(cmd))
	require.True(t, ok)
	assert.Equal(t, controller.RouteLogin, nav.Route)
}

// ── simulator ──

type simulatorDeps struct {
	auth        *mock.MockClientAuthService
	simulations *mock.MockClientSimulationService
}

func newTestSimulator(t *testing.T) (*SimulatorModel, simulatorDeps) {
	t.Helper()
	ctrl := gomock.NewController(t)
	deps := simulatorDeps{
		auth:        mock.NewMockClientAuthService(ctrl),
		simulations: mock.NewMockClientSimulationService(ctrl),
	}
	page := controller.NewSimulatorPage(controller.NewGuard(staticAuth(true)), deps.auth, deps.simulations, logger.Nop())
	return NewSimulatorModel(context.Background(), page), deps
}

// step feeds msg and then every message its commands produce, except
// spinner ticks.
func step(m *SimulatorModel, msg tea.Msg) []tea.Msg {
	_, cmd := m.Update(msg)
	var out []tea.Msg
	for _, produced := range collect(cmd) {
		if done, ok := produced.(pageDoneMsg); ok {
			_, next := m.Update(done)
			out = append(out, collect(next)...)
			continue
		}
		out = append(out, produced)
	}
	return out
}

func mount(t *testing.T, m *SimulatorModel) {
	t.Helper()
	for _, produced := range collect(m.Enter()) {
		if done, ok := produced.(pageDoneMsg); ok {
			m.Update(done)
		}
	}
}

func sampleSimulation(id int64) models.Simulation {
	return models.Simulation{
		ID:          id,
		Amount:      decimal.NewFromInt(1_500_000),
		Term:        models.TermAnnual,
		StartDate:   models.NewDate(2025, time.January, 1),
		EndDate:     models.NewDate(2026, time.January, 1),
		RateApplied: decimal.RequireFromString("0.15"),
	}
}

func TestSimulatorModel_EmptyState(t *testing.T) {
	m, deps := newTestSimulator(t)
	deps.simulations.EXPECT().List(gomock.Any()).Return([]models.Simulation{}, nil)

	mount(t, m)

	view := m.View()
	assert.Contains(t, view, "No hay simulaciones todavía")
	assert.Contains(t, view, "Crea tu primera simulación usando el formulario")
	assert.NotContains(t, view, "Monto │")
}

func TestSimulatorModel_Table(t *testing.T) {
	m, deps := newTestSimulator(t)
	deps.simulations.EXPECT().List(gomock.Any()).Return([]models.Simulation{sampleSimulation(1)}, nil)

	mount(t, m)

	view := m.View()
	assert.Contains(t, view, "$ 1.500.000")
	assert.Contains(t, view, "15.00%")
	assert.Contains(t, view, "Anual")
	assert.Contains(t, view, "2026-01-01")
}

func TestSimulatorModel_SubmitInvalidShowsInlineErrors(t *testing.T) {
	m, deps := newTestSimulator(t)
	deps.simulations.EXPECT().List(gomock.Any()).Return([]models.Simulation{}, nil)
	mount(t, m)

	msgs := step(m, keyEnter)

	_, toasted := findMsg[toastMsg](msgs)
	assert.False(t, toasted)
	assert.Contains(t, m.View(), "El monto debe ser mayor que 0")
}

func TestSimulatorModel_TermToggle(t *testing.T) {
	m, deps := newTestSimulator(t)
	deps.simulations.EXPECT().List(gomock.Any()).Return([]models.Simulation{}, nil)
	mount(t, m)

	step(m, keyTab)
	step(m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})

	assert.Equal(t, models.TermAnnual, m.page.Form.Fields().Term)
}

func TestSimulatorModel_DeleteConfirmation(t *testing.T) {
	m, deps := newTestSimulator(t)
	deps.simulations.EXPECT().List(gomock.Any()).Return([]models.Simulation{sampleSimulation(1)}, nil)
	mount(t, m)
	m.setFocus(focusTable)

	step(m, keyRunes("d"))
	assert.Contains(t, m.View(), "¿Eliminar la simulación #1?")

	step(m, keyRunes("n"))
	assert.NotContains(t, m.View(), "¿Eliminar")

	gomock.InOrder(
		deps.simulations.EXPECT().Delete(gomock.Any(), int64(1)).Return(nil),
		deps.simulations.EXPECT().List(gomock.Any()).Return([]models.Simulation{}, nil),
	)
	step(m, keyRunes("d"))
	msgs := step(m, keyRunes("y"))

	toast, ok := findMsg[toastMsg](msgs)
	require.True(t, ok)
	assert.Equal(t, "Simulación eliminada exitosamente", toast.text)
	assert.Contains(t, m.View(), "No hay simulaciones todavía")
}

func TestSimulatorModel_EditFillsForm(t *testing.T) {
	m, deps := newTestSimulator(t)
	deps.simulations.EXPECT().List(gomock.Any()).Return([]models.Simulation{sampleSimulation(4)}, nil)
	mount(t, m)
	m.setFocus(focusTable)

	step(m, keyRunes("e"))

	assert.Equal(t, "1500000", m.inputs[inputAmount].Value())
	assert.Equal(t, "2025-01-01", m.inputs[inputStartDate].Value())
	assert.Contains(t, m.View(), "Editando simulación #4")

	step(m, keyEsc)
	assert.Equal(t, "0", m.inputs[inputAmount].Value())
}

func TestSimulatorModel_Copy(t *testing.T) {
	var copied string
	writeClipboard = func(text string) error {
		copied = text
		return nil
	}
	t.Cleanup(func() { writeClipboard = defaultWriteClipboard })

	m, deps := newTestSimulator(t)
	deps.simulations.EXPECT().List(gomock.Any()).Return([]models.Simulation{sampleSimulation(2)}, nil)
	mount(t, m)
	m.setFocus(focusTable)

	msgs := step(m, keyRunes("c"))
	copiedResult, ok := findMsg[copiedMsg](msgs)
	require.True(t, ok)
	_, cmd := m.Update(copiedResult)

	assert.Contains(t, copied, "Simulación #2")
	assert.Contains(t, copied, "$ 1.500.000")
	toast, ok := findMsg[toastMsg](collect(cmd))
	require.True(t, ok)
	assert.Equal(t, "Copiado al portapapeles", toast.text)
}

func TestSimulatorModel_LogoutRedirects(t *testing.T) {
	m, deps := newTestSimulator(t)
	deps.simulations.EXPECT().List(gomock.Any()).Return([]models.Simulation{sampleSimulation(2)}, nil)
	mount(t, m)
	m.setFocus(focusTable)

	deps.auth.EXPECT().Logout(gomock.Any()).Return(nil)
	msgs := step(m, keyRunes("x"))

	nav, ok := findMsg[NavigateTo](msgs)
	require.True(t, ok)
	assert.Equal(t, controller.RouteLogin, nav.Route)
	assert.False(t, m.page.List.Loaded())
}

func TestSimulatorModel_ReloadBlocksInput(t *testing.T) {
	m, deps := newTestSimulator(t)
	deps.simulations.EXPECT().List(gomock.Any()).Return([]models.Simulation{sampleSimulation(1)}, nil)
	mount(t, m)
	m.setFocus(focusTable)

	// the reload command is never run, so the page stays busy
	m.Update(keyRunes("r"))
	require.True(t, m.busy)

	step(m, keyRunes("d"))
	_, pending := m.page.List.PendingDelete()
	assert.False(t, pending)

	step(m, keyRunes("e"))
	_, editing := m.page.Form.Mode().(controller.EditMode)
	assert.False(t, editing)
}

func TestSimulatorModel_CursorPastShrunkList(t *testing.T) {
	m, deps := newTestSimulator(t)
	deps.simulations.EXPECT().List(gomock.Any()).Return([]models.Simulation{sampleSimulation(3)}, nil)
	mount(t, m)
	m.setFocus(focusTable)
	m.cursor = 4

	require.NotPanics(t, func() { step(m, keyRunes("e")) })
	assert.Equal(t, 0, m.cursor)
	assert.Equal(t, controller.EditMode{ID: 3}, m.page.Form.Mode())
}
