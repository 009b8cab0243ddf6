// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package docstore defines where client documents would be stored. The
// only implementation is simulated; a blob-store implementation can be
// substituted without touching the board or the handlers.
package docstore

import (
	"context"
	"io"
)

// Store saves a client document and returns its public URL.
type Store interface {
	Upload(ctx context.Context, clientID, filename string, r io.Reader) (string, error)
}

// Simulated discards the content and fabricates a URL.
type Simulated struct{}

func (Simulated) Upload(ctx context.Context, clientID, filename string, r io.Reader) (string, error) {
	if r != nil {
		// Drain so multipart uploads complete cleanly.
		if _, err := io.Copy(io.Discard, r); err != nil {
			return "", err
		}
	}
	return "https://documents.invalid/" + clientID + "/" + filename, nil
}
