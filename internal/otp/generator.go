package otp

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

const (
	codeMin = 100000
	codeMax = 999999
)

// Source yields uniformly distributed integers in [0, n).
// Tests inject a deterministic implementation.
type Source interface {
	Int63n(n int64) (int64, error)
}

// CryptoSource draws from crypto/rand and is safe for concurrent use.
type CryptoSource struct{}

func (CryptoSource) Int63n(n int64) (int64, error) {
	v, err := rand.Int(rand.Reader, big.NewInt(n))
	if err != nil {
		return 0, err
	}
	return v.Int64(), nil
}

// Generator produces 6-digit one-time codes over [100000, 999999].
type Generator struct {
	src Source
}

// NewGenerator returns a Generator backed by src, or by CryptoSource when src is nil.
func NewGenerator(src Source) *Generator {
	if src == nil {
		src = CryptoSource{}
	}
	return &Generator{src: src}
}

// Generate draws exactly once from the source.
func (g *Generator) Generate() (string, error) {
	n, err := g.src.Int63n(codeMax - codeMin + 1)
	if err != nil {
		return "", fmt.Errorf("draw random code: %w", err)
	}
	return fmt.Sprintf("%06d", codeMin+n), nil
}
