package ports

import (
	"strings"
)

type HashAlgo string

const (
	AlgoCryptMD5    HashAlgo = "crypt-md5"    // $1$
	AlgoCryptSHA256 HashAlgo = "crypt-sha256" // $5$
	AlgoCryptSHA512 HashAlgo = "crypt-sha512" // $6$
)

// Hasher produces and verifies crypt(3) hashes of access key secrets.
type Hasher interface {
	DefaultHash(plain string) (hash string, err error)
	Hash(plain string, alg HashAlgo, rounds *int, saltLen *int) (hash string, err error)
	Verify(hashed, plain string) (verified bool, alg HashAlgo, err error)
}

func ParseHashAlgo(s string) (HashAlgo, error) {
	switch HashAlgo(strings.ToLower(strings.TrimSpace(s))) {
	case AlgoCryptMD5:
		return AlgoCryptMD5, nil
	case AlgoCryptSHA256:
		return AlgoCryptSHA256, nil
	case AlgoCryptSHA512:
		return AlgoCryptSHA512, nil
	default:
		return "", ErrUnsupportedAlgorithm
	}
}

// DetectHashAlgo inspects the crypt(3) marker of a stored hash.
func DetectHashAlgo(hashed string) (HashAlgo, error) {
	s := strings.TrimSpace(hashed)
	switch {
	case strings.HasPrefix(s, "$6$"):
		return AlgoCryptSHA512, nil
	case strings.HasPrefix(s, "$5$"):
		return AlgoCryptSHA256, nil
	case strings.HasPrefix(s, "$1$"):
		return AlgoCryptMD5, nil
	default:
		return "", ErrUnsupportedAlgorithm
	}
}

// IsCryptHash reports whether secret is stored as a crypt(3) hash rather than in clear hex.
func IsCryptHash(secret string) bool {
	_, err := DetectHashAlgo(secret)
	return err == nil
}
