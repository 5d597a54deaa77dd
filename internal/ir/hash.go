package ir

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// DomainRun prefixes run digests. The version suffix allows the digest
// input to change without colliding with older digests.
const DomainRun = "rovers/run/v1"

// hashWithDomain computes SHA256(domain + 0x00 + data).
func hashWithDomain(domain string, data []byte) string {
	h := sha256.New()
	h.Write([]byte(domain))
	h.Write([]byte{0x00})
	h.Write(data)
	return hex.EncodeToString(h.Sum(nil))
}

// RunDigest identifies the observable result of a run: its output lines and
// the scent cells it left behind, in that order.
// Two runs over the same input must produce the same digest.
func RunDigest(outputs []string, scents []Coordinate) (string, error) {
	if outputs == nil {
		outputs = []string{}
	}
	if scents == nil {
		scents = []Coordinate{}
	}
	canonical, err := MarshalCanonical(map[string]any{
		"outputs": outputs,
		"scents":  scents,
	})
	if err != nil {
		return "", fmt.Errorf("RunDigest: failed to marshal: %w", err)
	}
	return hashWithDomain(DomainRun, canonical), nil
}
