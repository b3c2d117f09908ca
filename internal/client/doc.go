// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the command line clients of a running
// go-shop-keeper server.
//
// The only client today is the health probe used by cmd/healthcheck. It
// talks to the server through [adapter.ServerAdapter].
package client
