// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive client application runtime.
//
// It ties the terminal UI and the client services into a single process
// lifecycle that ends on user exit or on SIGINT/SIGTERM/SIGQUIT.
package client
