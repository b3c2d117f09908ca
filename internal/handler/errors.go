// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import "errors"

// errNoServicesProvided is returned by NewHandlers when it is given no
// service layer. This is treated as a fatal misconfiguration and causes the
// application to fail at startup.
var errNoServicesProvided = errors.New("no services provided")
