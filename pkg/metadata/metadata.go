// Package metadata stamps cleaned outputs with run provenance and verifies
// them later. The stamp lives in a sidecar file next to the data file, so
// the output itself stays plain CSV or JSON.
package metadata

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"
)

// Suffix is appended to a data file's path to name its stamp.
const Suffix = ".meta.json"

// Stamp verification errors.
var (
	ErrNoStamp      = errors.New("no metadata stamp found")
	ErrNoHash       = errors.New("stamp has no content hash")
	ErrHashMismatch = errors.New("content hash mismatch")
)

// Stamp records where a cleaned dataset came from and what it contains.
type Stamp struct {
	RunID       string    `json:"run_id"`
	Source      string    `json:"source"`
	GeneratedAt time.Time `json:"generated_at"`
	Rows        int       `json:"rows"`
	Columns     int       `json:"columns"`
	Hash        string    `json:"hash"`
}

// StampPath returns the sidecar path for the data file at dataPath.
func StampPath(dataPath string) string {
	return dataPath + Suffix
}

// CalculateHash computes the SHA-256 hex digest of the file at path.
func CalculateHash(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}

	sum := sha256.Sum256(data)

	return hex.EncodeToString(sum[:]), nil
}

// Sign writes a stamp for the data file at path, filling in its content
// hash and, when unset, the generation time.
func Sign(path string, stamp Stamp) error {
	hash, err := CalculateHash(path)
	if err != nil {
		return fmt.Errorf("hash output: %w", err)
	}
	stamp.Hash = hash

	if stamp.GeneratedAt.IsZero() {
		stamp.GeneratedAt = time.Now().UTC()
	}

	data, err := json.MarshalIndent(stamp, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal stamp: %w", err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(StampPath(path), data, 0644); err != nil {
		return fmt.Errorf("write stamp: %w", err)
	}

	return nil
}

// Load reads the stamp for the data file at path.
func Load(path string) (*Stamp, error) {
	data, err := os.ReadFile(StampPath(path))
	if errors.Is(err, os.ErrNotExist) {
		return nil, ErrNoStamp
	}
	if err != nil {
		return nil, err
	}

	var stamp Stamp
	if err := json.Unmarshal(data, &stamp); err != nil {
		return nil, fmt.Errorf("parse stamp: %w", err)
	}

	return &stamp, nil
}

// Verify checks that the data file at path still matches its stamp's hash.
func Verify(path string) (*Stamp, error) {
	stamp, err := Load(path)
	if err != nil {
		return nil, err
	}

	if stamp.Hash == "" {
		return nil, ErrNoHash
	}

	calculated, err := CalculateHash(path)
	if err != nil {
		return nil, err
	}

	if calculated != stamp.Hash {
		return nil, fmt.Errorf("%w: expected %s, got %s", ErrHashMismatch, stamp.Hash, calculated)
	}

	return stamp, nil
}
