// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

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

// LoginModel is the Bubble Tea model for the login screen. It renders the
// email and password inputs and dispatches an async login command on
// submit. A successful login navigates to the simulator.
type LoginModel struct {
	ctx  context.Context
	auth *controller.AuthController

	inputs     []textinput.Model
	focus      int
	submitting bool
	fieldErrs  controller.FieldErrors
}

// NewLoginModel creates a [LoginModel]. The email field receives focus; the
// password field uses masked echo.
func NewLoginModel(ctx context.Context, auth *controller.AuthController) *LoginModel {
	return &LoginModel{
		ctx:    ctx,
		auth:   auth,
		inputs: []textinput.Model{newEmailInput(), newPasswordInput("contraseña")},
	}
}

func newEmailInput() textinput.Model {
	in := textinput.New()
	in.Placeholder = "correo@ejemplo.com"
	in.CharLimit = 254
	in.Width = 40
	in.Focus()
	return in
}

func newPasswordInput(placeholder string) textinput.Model {
	in := textinput.New()
	in.Placeholder = placeholder
	in.CharLimit = 256
	in.Width = 40
	in.EchoMode = textinput.EchoPassword
	in.EchoCharacter = '*'
	return in
}

func (m *LoginModel) Init() tea.Cmd {
	return textinput.Blink
}

// Enter clears the password and inline errors.
func (m *LoginModel) Enter() tea.Cmd {
	m.inputs[1].SetValue("")
	m.fieldErrs = nil
	m.submitting = false
	focusInput(m.inputs, &m.focus, 0)
	return textinput.Blink
}

// Update implements [tea.Model]. Handled messages:
//   - [loginDoneMsg]: shows inline errors or a toast, or navigates on success.
//   - tab, shift+tab: move focus between the inputs.
//   - enter: dispatches the async login command.
//   - ctrl+r: opens the register screen.
//
// All other key events are forwarded to the focused input.
func (m *LoginModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if done, ok := msg.(loginDoneMsg); ok {
		m.submitting = false
		m.fieldErrs = done.out.FieldErrors
		if done.out.Redirect != "" {
			return m, tea.Batch(navigateTo(done.out.Redirect), showToast(done.out.Notice, false))
		}
		return m, showToast(outcomeText(done.out), !done.out.OK())
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.register):
			return m, navigateTo(controller.RouteRegister)
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
			return m, m.cmdLogin(m.inputs[0].Value(), m.inputs[1].Value())
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *LoginModel) View() string {
	var b strings.Builder
	fieldRow(&b, "Correo     ", m.inputs[0].View(), m.fieldErrs[validators.FieldEmail])
	fieldRow(&b, "Contraseña ", m.inputs[1].View(), m.fieldErrs[validators.FieldPassword])

	if m.submitting {
		b.WriteString("\n[Ingresando...]\n")
	} else {
		b.WriteString("\n[Ingresar]\n")
	}

	return renderPage("INICIAR SESIÓN", strings.TrimRight(b.String(), "\n"),
		"tab: siguiente campo │ enter: ingresar │ ctrl+r: crear cuenta")
}

func (m *LoginModel) cmdLogin(email, password string) tea.Cmd {
	ctx := m.ctx
	auth := m.auth

	return func() tea.Msg {
		return loginDoneMsg{out: auth.Login(ctx, email, password)}
	}
}

// focusInput blurs the focused input and focuses inputs[next], wrapping
// around in both directions.
func focusInput(inputs []textinput.Model, focus *int, next int) {
	inputs[*focus].Blur()
	*focus = (next%len(inputs) + len(inputs)) % len(inputs)
	inputs[*focus].Focus()
}
