package token

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
)

// DefaultTTL applies when Config.TTL is zero.
const DefaultTTL = 24 * time.Hour

type header struct {
	Typ string `json:"typ"`
	Alg string `json:"alg"`
}

var signingMethod = jwt.SigningMethodHS256

// Config holds the process-wide signing parameters.
type Config struct {
	Secret []byte
	TTL    time.Duration
	// Now overrides the clock; nil means time.Now.
	Now func() time.Time
}

// Manager issues and verifies HS256 tokens. It holds no mutable state and is
// safe for concurrent use.
type Manager struct {
	secret    []byte
	ttl       time.Duration
	now       func() time.Time
	validator *jwt.Validator
	header    string
}

// NewManager validates cfg and builds a Manager.
func NewManager(cfg Config) (*Manager, error) {
	if len(cfg.Secret) == 0 {
		return nil, ErrMissingSecret
	}
	if cfg.TTL == 0 {
		cfg.TTL = DefaultTTL
	}
	if cfg.TTL < time.Second {
		return nil, ErrInvalidTTL
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}

	rawHeader, err := json.Marshal(header{Typ: "JWT", Alg: signingMethod.Alg()})
	if err != nil {
		return nil, err
	}

	secret := make([]byte, len(cfg.Secret))
	copy(secret, cfg.Secret)

	return &Manager{
		secret: secret,
		ttl:    cfg.TTL,
		now:    cfg.Now,
		validator: jwt.NewValidator(
			jwt.WithTimeFunc(cfg.Now),
			jwt.WithExpirationRequired(),
			jwt.WithIssuedAt(),
		),
		header: EncodeSegment(rawHeader),
	}, nil
}

// TTL returns the default token lifetime.
func (m *Manager) TTL() time.Duration {
	return m.ttl
}

// Issue signs claims with the default TTL.
func (m *Manager) Issue(claims Claims) (string, time.Time, error) {
	return m.IssueWithTTL(claims, m.ttl)
}

// IssueWithTTL stamps iat=now and exp=now+ttl onto claims and signs them.
func (m *Manager) IssueWithTTL(claims Claims, ttl time.Duration) (string, time.Time, error) {
	if ttl < time.Second {
		return "", time.Time{}, ErrInvalidTTL
	}
	now := m.now()
	claims.IssuedAt = jwt.NewNumericDate(now)
	claims.ExpiresAt = jwt.NewNumericDate(now.Add(ttl))

	payload, err := json.Marshal(claims)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("encode claims: %w", err)
	}
	payloadSeg := EncodeSegment(payload)

	sig, err := signingMethod.Sign(signingInput(m.header, payloadSeg), m.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign token: %w", err)
	}
	return Assemble(m.header, payloadSeg, EncodeSegment(sig)), claims.ExpiresAt.Time, nil
}

// Verify checks the signature before looking at any payload content, then
// decodes the claims and finally checks expiry (now >= exp is expired).
func (m *Manager) Verify(raw string) (*Claims, error) {
	headerSeg, payloadSeg, sigSeg, err := Split(raw)
	if err != nil {
		return nil, err
	}
	sig, err := DecodeSegment(sigSeg)
	if err != nil {
		return nil, err
	}
	if err := signingMethod.Verify(signingInput(headerSeg, payloadSeg), sig, m.secret); err != nil {
		return nil, ErrBadSignature
	}

	if err := checkHeader(headerSeg); err != nil {
		return nil, err
	}

	payload, err := DecodeSegment(payloadSeg)
	if err != nil {
		return nil, err
	}
	var claims Claims
	if err := json.Unmarshal(payload, &claims); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedClaims, err)
	}
	if err := claims.checkShape(); err != nil {
		return nil, err
	}

	if err := m.validator.Validate(&claims); err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpired
		}
		return nil, fmt.Errorf("%w: %v", ErrMalformedClaims, err)
	}
	return &claims, nil
}

func checkHeader(seg string) error {
	raw, err := DecodeSegment(seg)
	if err != nil {
		return err
	}
	var h header
	if err := json.Unmarshal(raw, &h); err != nil {
		return fmt.Errorf("%w: header: %v", ErrMalformedToken, err)
	}
	if h.Alg != signingMethod.Alg() {
		return fmt.Errorf("%w: unsupported algorithm %q", ErrMalformedToken, h.Alg)
	}
	return nil
}
