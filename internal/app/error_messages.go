// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the user-facing message strings shared by the
// simulator server and its terminal client.
//
// Server messages are written into the "detail" field of API error bodies.
// Client messages are shown as transient notifications.
package app

// API error details.
const (
	MsgEmailAlreadyRegistered = "Email ya registrado"
	MsgInvalidCredentials     = "Credenciales inválidas"
	MsgUnauthorized           = "No autorizado"
	MsgInvalidToken           = "Token inválido"
	MsgSimulationNotFound     = "No encontrada"
	MsgInternalServerError    = "Error interno del servidor"
	MsgTooManyRequests        = "Demasiadas solicitudes, intenta más tarde"
	MsgInvalidJSON            = "JSON inválido"
	MsgInvalidSimulationID    = "Identificador de simulación inválido"
)

// Field validation messages, used both by the API and by client forms.
const (
	MsgEmailRequired       = "El correo es requerido"
	MsgEmailInvalid        = "Correo electrónico inválido"
	MsgPasswordRequired    = "La contraseña es requerida"
	MsgPasswordTooShort    = "La contraseña debe tener al menos 6 caracteres"
	MsgPasswordsDoNotMatch = "Las contraseñas no coinciden"
	MsgAmountRequired      = "El monto es requerido"
	MsgAmountNotPositive   = "El monto debe ser mayor que 0"
	MsgAmountInvalid       = "El monto debe ser un número"
	MsgTermInvalid         = "El plazo debe ser Mensual o Anual"
	MsgStartDateRequired   = "La fecha de inicio es requerida"
	MsgEndDateRequired     = "La fecha de fin es requerida"
	MsgDateInvalid         = "La fecha debe tener el formato AAAA-MM-DD"
	MsgEndDateBeforeStart  = "La fecha de fin no puede ser anterior a la fecha de inicio"
)

// Client notifications.
const (
	MsgLoginSucceeded      = "¡Inicio de sesión exitoso!"
	MsgLoginFailed         = "Error al iniciar sesión"
	MsgRegisterSucceeded   = "¡Registro exitoso! Ahora puedes iniciar sesión"
	MsgRegisterFailed      = "Error al registrar usuario"
	MsgLogoutSucceeded     = "Sesión cerrada exitosamente"
	MsgSessionExpired      = "Tu sesión expiró, inicia sesión nuevamente"
	MsgSimulationCreated   = "Simulación creada exitosamente"
	MsgSimulationUpdated   = "Simulación actualizada exitosamente"
	MsgSimulationSaveFail  = "Error al guardar la simulación"
	MsgSimulationDeleted   = "Simulación eliminada exitosamente"
	MsgSimulationDeleteErr = "Error al eliminar la simulación"
	MsgSimulationsLoadErr  = "Error al cargar las simulaciones"
	MsgServerUnavailable   = "El servidor no está disponible"
	MsgEmptyStateTitle     = "No hay simulaciones todavía"
	MsgEmptyStateHint      = "Crea tu primera simulación usando el formulario"
	MsgCopiedToClipboard   = "Copiado al portapapeles"
)
