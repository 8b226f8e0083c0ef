package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-fin-simulator/internal/app"
	"github.com/MKhiriev/go-fin-simulator/internal/controller"
	"github.com/MKhiriev/go-fin-simulator/internal/validators"
	"github.com/MKhiriev/go-fin-simulator/models"
)

type simulatorFocus int

const (
	focusAmount simulatorFocus = iota
	focusTerm
	focusStartDate
	focusEndDate
	focusTable
	focusCount
)

// inputs index for the text fields; the term is a toggle, not an input.
const (
	inputAmount = iota
	inputStartDate
	inputEndDate
)

// writeClipboard is replaced in tests.
var (
	defaultWriteClipboard = clipboard.WriteAll
	writeClipboard        = defaultWriteClipboard
)

// SimulatorModel is the simulator screen: the create/edit form on top and
// the user's simulations below.
type SimulatorModel struct {
	ctx  context.Context
	page *controller.SimulatorPage

	inputs  []textinput.Model
	focus   simulatorFocus
	cursor  int
	loading bool
	busy    bool
	spinner spinner.Model
}

func NewSimulatorModel(ctx context.Context, page *controller.SimulatorPage) *SimulatorModel {
	amount := textinput.New()
	amount.Placeholder = "1500000"
	amount.CharLimit = 16
	amount.Width = 20

	start := textinput.New()
	start.Placeholder = models.DateLayout
	start.CharLimit = 10
	start.Width = 12

	end := textinput.New()
	end.Placeholder = models.DateLayout
	end.CharLimit = 10
	end.Width = 12

	s := spinner.New()
	s.Spinner = spinner.MiniDot

	m := &SimulatorModel{
		ctx:     ctx,
		page:    page,
		inputs:  []textinput.Model{amount, start, end},
		spinner: s,
	}
	m.syncInputs()
	m.setFocus(focusAmount)
	return m
}

func (m *SimulatorModel) Init() tea.Cmd {
	return nil
}

// Enter loads the collection.
func (m *SimulatorModel) Enter() tea.Cmd {
	m.syncInputs()
	m.setFocus(focusAmount)
	m.loading = true
	m.busy = true
	return tea.Batch(m.spinner.Tick, m.cmd(opLoad, m.page.Mount))
}

// Reset drops everything bound to the previous session.
func (m *SimulatorModel) Reset() {
	m.page.Reset()
	m.syncInputs()
	m.cursor = 0
	m.busy = false
	m.loading = false
}

func (m *SimulatorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case pageDoneMsg:
		return m.handleDone(msg)

	case copiedMsg:
		if msg.err != nil {
			return m, showToast(msg.err.Error(), true)
		}
		return m, showToast(app.MsgCopiedToClipboard, false)

	case spinner.TickMsg:
		if !m.loading && !m.busy {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if _, pending := m.page.List.PendingDelete(); pending {
			return m.updateConfirm(msg)
		}
		if m.busy {
			return m, nil
		}
		return m.updateKeys(msg)
	}

	if idx, ok := m.focusedInput(); ok {
		var cmd tea.Cmd
		m.inputs[idx], cmd = m.inputs[idx].Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *SimulatorModel) handleDone(msg pageDoneMsg) (tea.Model, tea.Cmd) {
	m.busy = false
	if msg.op == opLoad {
		m.loading = false
	}
	m.syncInputs()
	m.clampCursor()

	out := msg.out
	if msg.op == opSubmit && out.OK() {
		m.setFocus(focusAmount)
	}

	var cmds []tea.Cmd
	if out.Redirect != "" {
		cmds = append(cmds, navigateTo(out.Redirect))
	}
	// a failed reload after a successful mutation still reports both
	if out.Notice != "" && out.Err != nil && out.Redirect == "" {
		cmds = append(cmds, showToast(out.Notice, false))
	}
	cmds = append(cmds, showToast(outcomeText(out), !out.OK()))
	return m, tea.Batch(cmds...)
}

func (m *SimulatorModel) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.yes):
		if m.busy {
			return m, nil
		}
		m.busy = true
		return m, tea.Batch(m.spinner.Tick, m.cmd(opDelete, m.page.ConfirmDelete))
	case key.Matches(msg, keys.no):
		m.page.List.CancelDelete()
	}
	return m, nil
}

func (m *SimulatorModel) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.tab):
		m.setFocus((m.focus + 1) % focusCount)
		return m, nil
	case key.Matches(msg, keys.backtab):
		m.setFocus((m.focus - 1 + focusCount) % focusCount)
		return m, nil
	case key.Matches(msg, keys.esc):
		if _, editing := m.page.Form.Mode().(controller.EditMode); editing {
			m.page.Form.Cancel()
			m.syncInputs()
		}
		return m, nil
	}

	if m.focus == focusTable {
		return m.updateTable(msg)
	}

	switch {
	case key.Matches(msg, keys.enter):
		m.pushFields()
		m.busy = true
		return m, tea.Batch(m.spinner.Tick, m.cmd(opSubmit, m.page.Submit))
	case m.focus == focusTerm && key.Matches(msg, keys.toggle):
		m.page.Form.ToggleTerm()
		return m, nil
	}

	idx, ok := m.focusedInput()
	if !ok {
		return m, nil
	}
	var cmd tea.Cmd
	m.inputs[idx], cmd = m.inputs[idx].Update(msg)
	m.pushFields()
	return m, cmd
}

func (m *SimulatorModel) updateTable(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	items := m.page.List.Items()

	switch {
	case key.Matches(msg, keys.up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, keys.down):
		if m.cursor < len(items)-1 {
			m.cursor++
		}
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	case key.Matches(msg, keys.logout):
		m.busy = true
		return m, m.cmd(opLogout, m.page.Logout)
	case key.Matches(msg, keys.reload):
		m.loading = true
		m.busy = true
		return m, tea.Batch(m.spinner.Tick, m.cmd(opLoad, m.page.Mount))
	}

	if len(items) == 0 {
		return m, nil
	}
	m.clampCursor()
	selected := items[m.cursor]

	switch {
	case key.Matches(msg, keys.edit):
		if m.page.Edit(selected.ID) {
			m.syncInputs()
			m.setFocus(focusAmount)
		}
	case key.Matches(msg, keys.delete):
		m.page.List.RequestDelete(selected.ID)
	case key.Matches(msg, keys.copy):
		return m, cmdCopy(simulationSummary(selected))
	}
	return m, nil
}

func (m *SimulatorModel) View() string {
	var b strings.Builder

	m.viewForm(&b)
	b.WriteString("\n")
	m.viewTable(&b)

	if id, pending := m.page.List.PendingDelete(); pending {
		b.WriteString("\n")
		b.WriteString(overlayBoxStyle.Render(fmt.Sprintf("¿Eliminar la simulación #%d?\n\ny: sí    n: no", id)))
		b.WriteString("\n")
	}

	hotKeys := "tab: cambiar foco │ enter: guardar │ espacio: cambiar plazo │ esc: cancelar edición"
	if m.focus == focusTable {
		hotKeys = "↑/↓: mover │ e: editar │ d: eliminar │ c: copiar │ r: recargar │ x: cerrar sesión │ q: salir"
	}
	return renderPage("SIMULADOR FINANCIERO", strings.TrimRight(b.String(), "\n"), hotKeys)
}

func (m *SimulatorModel) viewForm(b *strings.Builder) {
	title := "Nueva simulación"
	if edit, ok := m.page.Form.Mode().(controller.EditMode); ok {
		title = fmt.Sprintf("Editando simulación #%d", edit.ID)
	}
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n\n")

	errs := m.page.Form.FieldErrors()
	fields := m.page.Form.Fields()

	fieldRow(b, "Monto        ", m.inputs[inputAmount].View(), errs[validators.FieldAmount])

	term := fmt.Sprintf("< %s >", fields.Term)
	if m.focus == focusTerm {
		term = selectedStyle.Render(term)
	}
	b.WriteString("Plazo         │ ")
	b.WriteString(term)
	b.WriteString("\n")
	if msg := errs[validators.FieldTerm]; msg != "" {
		b.WriteString("                ")
		b.WriteString(errorStyle.Render(msg))
		b.WriteString("\n")
	}

	fieldRow(b, "Fecha inicio ", m.inputs[inputStartDate].View(), errs[validators.FieldStartDate])
	fieldRow(b, "Fecha fin    ", m.inputs[inputEndDate].View(), errs[validators.FieldEndDate])

	switch {
	case m.busy && m.page.Form.Submitting():
		b.WriteString("\n[Guardando... ")
		b.WriteString(m.spinner.View())
		b.WriteString("]\n")
	default:
		b.WriteString("\n[Guardar]\n")
	}
}

const tableHeader = "  ID     │           Monto │ Plazo   │ Inicio     │ Fin        │    Tasa"

func (m *SimulatorModel) viewTable(b *strings.Builder) {
	b.WriteString(titleStyle.Render("Mis simulaciones"))
	if m.loading {
		b.WriteString("  ")
		b.WriteString(m.spinner.View())
	}
	b.WriteString("\n\n")

	if !m.page.List.Loaded() {
		if m.loading {
			b.WriteString("Cargando...\n")
		}
		return
	}

	if m.page.List.IsEmpty() {
		title, hint := controller.EmptyState()
		b.WriteString(title)
		b.WriteString("\n")
		b.WriteString(helpStyle.Render(hint))
		b.WriteString("\n")
		return
	}

	b.WriteString(tableHeader)
	b.WriteString("\n")
	for i, sim := range m.page.List.Items() {
		row := fmt.Sprintf("%-6s │ %15s │ %-7s │ %-10s │ %-10s │ %7s",
			fitText(fmt.Sprint(sim.ID), 6),
			fitText(controller.FormatCurrency(sim.Amount), 15),
			sim.Term,
			sim.StartDate,
			sim.EndDate,
			controller.FormatRate(sim.RateApplied),
		)
		if i == m.cursor && m.focus == focusTable {
			b.WriteString(selectedStyle.Render("> " + row))
		} else {
			b.WriteString("  " + row)
		}
		b.WriteString("\n")
	}
}

// cmd runs a page action off the update loop and reports it as pageDoneMsg.
func (m *SimulatorModel) cmd(op pageOp, action func(context.Context) controller.Outcome) tea.Cmd {
	ctx := m.ctx
	return func() tea.Msg {
		return pageDoneMsg{op: op, out: action(ctx)}
	}
}

func (m *SimulatorModel) pushFields() {
	fields := m.page.Form.Fields()
	fields.Amount = m.inputs[inputAmount].Value()
	fields.StartDate = m.inputs[inputStartDate].Value()
	fields.EndDate = m.inputs[inputEndDate].Value()
	m.page.Form.SetFields(fields)
}

func (m *SimulatorModel) syncInputs() {
	fields := m.page.Form.Fields()
	m.inputs[inputAmount].SetValue(fields.Amount)
	m.inputs[inputStartDate].SetValue(fields.StartDate)
	m.inputs[inputEndDate].SetValue(fields.EndDate)
}

func (m *SimulatorModel) setFocus(focus simulatorFocus) {
	for i := range m.inputs {
		m.inputs[i].Blur()
	}
	m.focus = focus
	if idx, ok := m.focusedInput(); ok {
		m.inputs[idx].Focus()
	}
}

func (m *SimulatorModel) focusedInput() (int, bool) {
	switch m.focus {
	case focusAmount:
		return inputAmount, true
	case focusStartDate:
		return inputStartDate, true
	case focusEndDate:
		return inputEndDate, true
	default:
		return 0, false
	}
}

func (m *SimulatorModel) clampCursor() {
	n := len(m.page.List.Items())
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func simulationSummary(sim models.Simulation) string {
	return fmt.Sprintf("Simulación #%d: %s, %s, %s a %s, tasa %s",
		sim.ID,
		controller.FormatCurrency(sim.Amount),
		sim.Term,
		sim.StartDate,
		sim.EndDate,
		controller.FormatRate(sim.RateApplied),
	)
}

func cmdCopy(text string) tea.Cmd {
	return func() tea.Msg {
		if err := writeClipboard(text); err != nil {
			return copiedMsg{err: fmt.Errorf("error copying to clipboard: %w", err)}
		}
		return copiedMsg{}
	}
}
