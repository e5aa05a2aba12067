// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the JSON-over-HTTP transport of the code review
// service.
//
// It wires chi routes, the request handlers, and the middleware chain (trace
// id, access log, gzip, session authentication). Every JSON endpoint answers
// 200 OK with the outcome carried in the "success" field of
// [models.APIResponse]; failures are translated into the fixed messages of
// package app before they reach the client.
package http
