// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the portal console runtime.
//
// It probes the portal once at startup and then hands the terminal to the
// console until the operator quits or the process is signalled.
package client
