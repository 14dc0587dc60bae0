package source

import (
	"crypto/sha256"
	"encoding/hex"
	"io"
	"os"
)

// Checksum returns the hex-encoded SHA-256 of the file at path, streaming it
// instead of loading it into memory.
func Checksum(path string) (string, error) {
	//nolint:gosec // G304: dataset and weight paths come from the user by design
	f, err := os.Open(path)
	if err != nil {
		return "", &NotFoundError{Path: path, Err: err}
	}
	defer f.Close()

	sum, err := ChecksumReader(f)
	if err != nil {
		return "", &NotFoundError{Path: path, Err: err}
	}
	return sum, nil
}

// ChecksumReader returns the hex-encoded SHA-256 of everything read from r.
func ChecksumReader(r io.Reader) (string, error) {
	h := sha256.New()
	if _, err := io.Copy(h, r); err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}
