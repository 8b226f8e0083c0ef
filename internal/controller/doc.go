// Package controller holds the client's screen logic, independent of the
// terminal rendering: the session guard, field validation, the
// create/edit simulation form, the simulation list and the simulator page
// composing them.
//
// Controllers call the client services and report results as an [Outcome].
// They are safe for use from a UI goroutine and from the goroutines running
// its network commands.
package controller
