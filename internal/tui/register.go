package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-fin-simulator/internal/controller"
	"github.com/MKhiriev/go-fin-simulator/internal/validators"
)

// RegisterModel is the registration screen: email, password and its
// confirmation. A successful registration returns to the login screen
// without logging in.
type RegisterModel struct {
	ctx  context.Context
	auth *controller.AuthController

	inputs     []textinput.Model
	focus      int
	submitting bool
	fieldErrs  controller.FieldErrors
}

func NewRegisterModel(ctx context.Context, auth *controller.AuthController) *RegisterModel {
	return &RegisterModel{
		ctx:  ctx,
		auth: auth,
		inputs: []textinput.Model{
			newEmailInput(),
			newPasswordInput("contraseña"),
			newPasswordInput("confirmar contraseña"),
		},
	}
}

func (m *RegisterModel) Init() tea.Cmd {
	return textinput.Blink
}

// Enter starts from an empty form.
func (m *RegisterModel) Enter() tea.Cmd {
	for i := range m.inputs {
		m.inputs[i].SetValue("")
	}
	m.fieldErrs = nil
	m.submitting = false
	focusInput(m.inputs, &m.focus, 0)
	return textinput.Blink
}

func (m *RegisterModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if done, ok := msg.(registerDoneMsg); ok {
		m.submitting = false
		m.fieldErrs = done.out.FieldErrors
		if done.out.Redirect != "" {
			return m, tea.Batch(navigateTo(done.out.Redirect), showToast(done.out.Notice, false))
		}
		return m, showToast(outcomeText(done.out), !done.out.OK())
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			return m, navigateTo(controller.RouteLogin)
		case key.Matches(keyMsg, keys.tab):
			focusInput(m.inputs, &m.focus, m.focus+1)
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			focusInput(m.inputs, &m.focus, m.focus-1)
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.submitting {
				return m, nil
			}
			m.submitting = true
			return m, m.cmdRegister(m.inputs[0].Value(), m.inputs[1].Value(), m.inputs[2].Value())
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *RegisterModel) View() string {
	var b strings.Builder
	fieldRow(&b, "Correo     ", m.inputs[0].View(), m.fieldErrs[validators.FieldEmail])
	fieldRow(&b, "Contraseña ", m.inputs[1].View(), m.fieldErrs[validators.FieldPassword])
	fieldRow(&b, "Confirmar  ", m.inputs[2].View(), m.fieldErrs[controller.FieldPasswordConfirm])

	if m.submitting {
		b.WriteString("\n[Registrando...]\n")
	} else {
		b.WriteString("\n[Crear cuenta]\n")
	}

	return renderPage("CREAR CUENTA", strings.TrimRight(b.String(), "\n"),
		"esc: volver │ tab: siguiente campo │ enter: registrarse")
}

func (m *RegisterModel) cmdRegister(email, password, confirm string) tea.Cmd {
	ctx := m.ctx
	auth := m.auth

	return func() tea.Msg {
		return registerDoneMsg{out: auth.Register(ctx, email, password, confirm)}
	}
}
