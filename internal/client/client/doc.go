// Package client is the boundary between gophdrop and the remote storage
// API.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic contract (see the Client interface): ListFiles,
//     GetFile, UploadFile with progress, DownloadFile, DeleteFile, Ping and
//     the DownloadURL/ViewURL builders.
//  2. A REST implementation (see HTTPClient) that tags every request with an
//     X-Request-ID, accepts enveloped and bare JSON payloads, and maps HTTP
//     statuses to sentinel errors.
//  3. Optional Prometheus instrumentation (see Metrics).
//
// # Error Handling
//
// Failures match one of ErrNetwork, ErrServer, ErrNotFound or ErrValidation
// with errors.Is. Non-2xx responses are returned as *APIError carrying the
// status code and the server's message. Nothing is retried.
//
// Concurrency & Contexts
//
// HTTPClient is safe for concurrent use. Every remote call takes a
// context.Context and honours cancellation.
package client
