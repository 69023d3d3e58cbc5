// Copyright 2026 The Ebank Authors
// SPDX-License-Identifier: Apache-2.0

// Package api is the HTTP gateway to the ebank backend. It is the only
// component in the client that issues outbound calls: every request goes
// through [Client.doRequest], which attaches the bearer credential from
// the configured token source, stamps a request ID, and normalizes all
// failures into [*Error] values with a closed [Kind] taxonomy.
//
// View code never sees raw transport errors or HTTP status codes. An
// unauthorized response additionally fires the OnUnauthorized callback
// exactly once per credential, so the application root can clear the
// session and route back to the login view — the gateway itself performs
// no navigation.
package api
