// Package cli provides the interactive gophdrop command-line client.
//
// It wires configuration, the storage API client, the file session and an
// interactive REPL. On start it probes the API, loads the file list and
// starts a background connectivity watcher that switches the prompt between
// online and offline.
//
// Key features:
//   - List / refresh files
//   - Upload with a live progress line
//   - Show a file preview (text, pretty-printed JSON, links for images and PDFs)
//   - Delete with y/N confirmation
//   - Download into the configured directory
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App, StartOnlineStatusWatcher and runREPL for details.
package cli
