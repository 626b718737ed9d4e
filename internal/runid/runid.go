// Package runid generates the run-scoped deployment identity.
package runid

import (
	"crypto/rand"
	"fmt"
	"io"

	"github.com/google/uuid"
)

// prefixLen is how many leading characters of the revision are kept.
const prefixLen = 8

// New derives a run identity from a revision identifier and an entropy
// source: the first 8 characters of the revision plus an 8-hex-digit
// random suffix. The identity is unique per run and never persisted; it
// exists only as a template variable.
//
// The entropy source is an explicit argument so tests can substitute a
// deterministic reader.
func New(revision string, entropy io.Reader) (string, error) {
	u, err := uuid.NewRandomFromReader(entropy)
	if err != nil {
		return "", fmt.Errorf("failed to generate run identity: %w", err)
	}

	prefix := revision
	if len(prefix) > prefixLen {
		prefix = prefix[:prefixLen]
	}

	return fmt.Sprintf("%s-%x", prefix, u[:4]), nil
}

// Default derives a run identity using crypto/rand.
func Default(revision string) (string, error) {
	return New(revision, rand.Reader)
}
