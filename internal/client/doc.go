// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive client application runtime.
//
// It restores the persisted session, runs the terminal UI and the
// background session watcher as a single process lifecycle.
package client
