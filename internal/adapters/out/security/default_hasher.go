package security

import (
	"area-api/internal/app/config"
	"area-api/internal/app/ports"
	"crypto/rand"
	"fmt"
	"io"

	"github.com/GehirnInc/crypt"
	"github.com/GehirnInc/crypt/md5_crypt"
	"github.com/GehirnInc/crypt/sha256_crypt"
	"github.com/GehirnInc/crypt/sha512_crypt"
)

// DefaultHasher produces glibc crypt(3) hashes, format `$5|6$rounds=<N>$<salt>$<digest>`.
type DefaultHasher struct {
	rr             io.Reader
	defaultAlgId   int
	defaultCrypter crypt.Crypter
	defaultRounds  int
	defaultSaltLen int
}

// Enforce compile-time conformance to the interface
var _ ports.Hasher = (*DefaultHasher)(nil)

// NewDefaultHasher returns encoder with sane defaults (rounds=5000, salt=16).
func NewDefaultHasher() (*DefaultHasher, error) {
	return NewDefaultHasherFromConfig(config.HasherConfig{
		DefaultAlgorithm: "crypt-sha256",
		DefaultRounds:    5000,
		DefaultSaltLen:   16,
	})
}

func NewDefaultHasherFromConfig(cfg config.HasherConfig) (*DefaultHasher, error) {
	alg, err := ports.ParseHashAlgo(cfg.DefaultAlgorithm)
	if err != nil {
		return nil, err
	}
	algId, crypter, err := resolveCrypter(alg)
	if err != nil {
		return nil, err
	}
	if err := validateParams(algId, cfg.DefaultRounds, cfg.DefaultSaltLen); err != nil {
		return nil, err
	}
	return &DefaultHasher{
		rr:             rand.Reader,
		defaultAlgId:   algId,
		defaultCrypter: crypter,
		defaultRounds:  cfg.DefaultRounds,
		defaultSaltLen: cfg.DefaultSaltLen,
	}, nil
}

const (
	md5MaxSaltLen = 8
	// sha256_crypt and sha512_crypt only verify hashes carrying a full 16 character salt.
	shaSaltLen = 16
)

func validateParams(algId int, rounds int, saltLen int) error {
	if rounds < 1000 || rounds > 1000000 {
		return fmt.Errorf("rounds must be between 1000 and 1000000: %w", ports.ErrInvalidInput)
	}
	switch algId {
	case 1:
		if saltLen <= 0 || saltLen > md5MaxSaltLen {
			return fmt.Errorf("salt length for $1$ must be between 1 and %d: %w", md5MaxSaltLen, ports.ErrInvalidInput)
		}
	default:
		if saltLen != shaSaltLen {
			return fmt.Errorf("salt length for $%d$ must be %d: %w", algId, shaSaltLen, ports.ErrInvalidInput)
		}
	}
	return nil
}

func prepareSaltSpec(rr io.Reader, algId int, rounds int, saltLen int) (saltSpec string, err error) {
	if err := validateParams(algId, rounds, saltLen); err != nil {
		return "", err
	}
	salt, err := randomSalt(saltLen, rr)
	if err != nil {
		return "", err
	}
	// Build salt spec per crypt(3): $algId$[rounds=N$]<salt>
	return fmt.Sprintf("$%d$rounds=%d$%s", algId, rounds, salt), nil
}

func (c *DefaultHasher) Hash(plain string, alg ports.HashAlgo, rounds *int, saltLen *int) (string, error) {
	algId, crypter, err := resolveCrypter(alg)
	if err != nil {
		return "", err
	}
	if rounds == nil {
		rounds = &c.defaultRounds
	}
	if saltLen == nil {
		saltLen = &c.defaultSaltLen
	}
	saltSpec, err := prepareSaltSpec(c.rr, algId, *rounds, *saltLen)
	if err != nil {
		return "", err
	}
	return crypter.Generate([]byte(plain), []byte(saltSpec))
}

// DefaultHash returns a crypt string like `$5$rounds=5000$<salt>$<hash>`
func (c *DefaultHasher) DefaultHash(plain string) (string, error) {
	saltSpec, err := prepareSaltSpec(c.rr, c.defaultAlgId, c.defaultRounds, c.defaultSaltLen)
	if err != nil {
		return "", err
	}
	return c.defaultCrypter.Generate([]byte(plain), []byte(saltSpec))
}

// Verify compares a stored crypt(3) hash ($1$/$5$/$6$) against the provided plaintext.
func (c *DefaultHasher) Verify(hashed, plain string) (bool, ports.HashAlgo, error) {
	alg, err := ports.DetectHashAlgo(hashed)
	if err != nil {
		return false, alg, err
	}
	_, crypter, err := resolveCrypter(alg)
	if err != nil {
		return false, alg, err
	}
	return crypter.Verify(hashed, []byte(plain)) == nil, alg, nil
}

// Crypt uses the classic crypt(3) base64 alphabet for salt: [./0-9A-Za-z]
const cryptAlphabet = "./0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

func resolveCrypter(alg ports.HashAlgo) (id int, crypter crypt.Crypter, err error) {
	switch alg {
	case ports.AlgoCryptMD5:
		return 1, md5_crypt.New(), nil // $1$
	case ports.AlgoCryptSHA256:
		return 5, sha256_crypt.New(), nil // $5$
	case ports.AlgoCryptSHA512:
		return 6, sha512_crypt.New(), nil // $6$
	default:
		return 0, nil, fmt.Errorf("cannot create crypter for algorithm %s: %w", alg, ports.ErrUnsupportedAlgorithm)
	}
}

// randomSalt generates a salt of length n using the crypt(3) alphabet.
func randomSalt(n int, rng io.Reader) (string, error) {
	if rng == nil {
		rng = rand.Reader
	}
	buf := make([]byte, n)
	out := make([]byte, n)
	if _, err := io.ReadFull(rng, buf); err != nil {
		return "", err
	}
	for i := 0; i < n; i++ {
		out[i] = cryptAlphabet[int(buf[i])%len(cryptAlphabet)]
	}
	return string(out), nil
}
