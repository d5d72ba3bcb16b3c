package token

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"

	"github.com/spec-kit/hr-service/internal/domain"
)

var testSecret = []byte("0123456789abcdef0123456789abcdef")

type fakeClock struct{ t time.Time }

func (c *fakeClock) Now() time.Time          { return c.t }
func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestManager(t *testing.T, secret []byte, ttl time.Duration) (*Manager, *fakeClock) {
	t.Helper()
	clock := &fakeClock{t: time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)}
	m, err := NewManager(Config{Secret: secret, TTL: ttl, Now: clock.Now})
	if err != nil {
		t.Fatalf("new manager: %v", err)
	}
	return m, clock
}

func sampleClaims() Claims {
	emp := int64(42)
	return Claims{
		UserID:     7,
		EmployeeID: &emp,
		Username:   "alice",
		Role:       domain.RoleHRAdmin,
		FullName:   "Alice Reyes",
	}
}

func TestNewManagerValidation(t *testing.T) {
	if _, err := NewManager(Config{}); !errors.Is(err, ErrMissingSecret) {
		t.Fatalf("empty secret err = %v, want ErrMissingSecret", err)
	}
	if _, err := NewManager(Config{Secret: testSecret, TTL: 500 * time.Millisecond}); !errors.Is(err, ErrInvalidTTL) {
		t.Fatalf("sub-second ttl err = %v, want ErrInvalidTTL", err)
	}
	m, err := NewManager(Config{Secret: testSecret})
	if err != nil {
		t.Fatalf("new manager: %v", err)
	}
	if m.TTL() != DefaultTTL {
		t.Errorf("TTL() = %v, want %v", m.TTL(), DefaultTTL)
	}
}

func TestIssueVerifyRoundTrip(t *testing.T) {
	m, clock := newTestManager(t, testSecret, 0)
	in := sampleClaims()

	raw, exp, err := m.Issue(in)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if want := clock.Now().Add(DefaultTTL); !exp.Equal(want) {
		t.Errorf("expires at %v, want %v", exp, want)
	}

	got, err := m.Verify(raw)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if got.UserID != in.UserID || got.Username != in.Username || got.Role != in.Role || got.FullName != in.FullName {
		t.Errorf("claims = %+v, want application fields of %+v", got, in)
	}
	if got.EmployeeID == nil || *got.EmployeeID != *in.EmployeeID {
		t.Errorf("employee_id = %v, want %d", got.EmployeeID, *in.EmployeeID)
	}
	if !got.ExpiresAtTime().After(got.IssuedAtTime()) {
		t.Errorf("exp %v must be after iat %v", got.ExpiresAtTime(), got.IssuedAtTime())
	}
}

func TestVerifyNullEmployeeID(t *testing.T) {
	m, _ := newTestManager(t, testSecret, time.Hour)
	in := sampleClaims()
	in.EmployeeID = nil

	raw, _, err := m.Issue(in)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	got, err := m.Verify(raw)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if got.EmployeeID != nil {
		t.Errorf("employee_id = %d, want nil", *got.EmployeeID)
	}
}

func TestWireFormat(t *testing.T) {
	m, _ := newTestManager(t, testSecret, time.Hour)
	raw, _, err := m.Issue(sampleClaims())
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	h, p, _, err := Split(raw)
	if err != nil {
		t.Fatalf("split: %v", err)
	}

	hb, err := DecodeSegment(h)
	if err != nil {
		t.Fatalf("decode header: %v", err)
	}
	if string(hb) != `{"typ":"JWT","alg":"HS256"}` {
		t.Errorf("header = %s", hb)
	}

	pb, err := DecodeSegment(p)
	if err != nil {
		t.Fatalf("decode payload: %v", err)
	}
	var fields map[string]any
	if err := json.Unmarshal(pb, &fields); err != nil {
		t.Fatalf("payload json: %v", err)
	}
	for _, key := range []string{"user_id", "employee_id", "username", "role", "iat", "exp"} {
		if _, ok := fields[key]; !ok {
			t.Errorf("payload missing %q: %s", key, pb)
		}
	}
}

func TestVerifyWrongSecret(t *testing.T) {
	issuer, _ := newTestManager(t, testSecret, time.Hour)
	verifier, _ := newTestManager(t, []byte("another-secret-another-secret-xx"), time.Hour)

	raw, _, err := issuer.Issue(sampleClaims())
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if _, err := verifier.Verify(raw); !errors.Is(err, ErrBadSignature) {
		t.Fatalf("verify err = %v, want ErrBadSignature", err)
	}
}

func TestVerifyTamperedPayload(t *testing.T) {
	m, _ := newTestManager(t, testSecret, time.Hour)
	raw, _, err := m.Issue(sampleClaims())
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	h, p, s, _ := Split(raw)

	for i := 0; i < len(p); i++ {
		b := []byte(p)
		if b[i] == 'A' {
			b[i] = 'B'
		} else {
			b[i] = 'A'
		}
		tampered := Assemble(h, string(b), s)
		if _, err := m.Verify(tampered); !errors.Is(err, ErrBadSignature) {
			t.Fatalf("tamper at %d: err = %v, want ErrBadSignature", i, err)
		}
	}
}

func TestVerifyExpiryBoundary(t *testing.T) {
	m, clock := newTestManager(t, testSecret, time.Hour)
	raw, exp, err := m.Issue(sampleClaims())
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	clock.t = exp.Add(-time.Second)
	if _, err := m.Verify(raw); err != nil {
		t.Fatalf("one second before exp: %v", err)
	}

	clock.t = exp
	if _, err := m.Verify(raw); !errors.Is(err, ErrExpired) {
		t.Fatalf("at exp: err = %v, want ErrExpired", err)
	}

	clock.t = exp.Add(time.Minute)
	if _, err := m.Verify(raw); !errors.Is(err, ErrExpired) {
		t.Fatalf("after exp: err = %v, want ErrExpired", err)
	}
}

func TestVerifyOneSecondTTL(t *testing.T) {
	m, clock := newTestManager(t, testSecret, time.Hour)
	raw, _, err := m.IssueWithTTL(sampleClaims(), time.Second)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	clock.Advance(2 * time.Second)
	if _, err := m.Verify(raw); !errors.Is(err, ErrExpired) {
		t.Fatalf("err = %v, want ErrExpired", err)
	}
}

func TestVerifyExpiredNeedsValidSignature(t *testing.T) {
	issuer, clock := newTestManager(t, testSecret, time.Hour)
	raw, _, err := issuer.Issue(sampleClaims())
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	other, err := NewManager(Config{Secret: []byte("not-the-secret"), Now: clock.Now})
	if err != nil {
		t.Fatalf("new manager: %v", err)
	}
	clock.Advance(48 * time.Hour)
	if _, err := other.Verify(raw); !errors.Is(err, ErrBadSignature) {
		t.Fatalf("err = %v, want ErrBadSignature before any expiry check", err)
	}
}

// signRaw builds a validly signed token around an arbitrary payload.
func signRaw(t *testing.T, headerJSON, payloadJSON string) string {
	t.Helper()
	h := EncodeSegment([]byte(headerJSON))
	p := EncodeSegment([]byte(payloadJSON))
	sig, err := jwt.SigningMethodHS256.Sign(signingInput(h, p), testSecret)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	return Assemble(h, p, EncodeSegment(sig))
}

func TestVerifyMalformed(t *testing.T) {
	m, _ := newTestManager(t, testSecret, time.Hour)
	const hdr = `{"typ":"JWT","alg":"HS256"}`
	iat := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC).Unix()
	exp := iat + 7200

	tests := []struct {
		name string
		raw  string
		want error
	}{
		{name: "two segments", raw: "abc.def", want: ErrMalformedToken},
		{name: "bad signature alphabet", raw: "abc.def.gh+i", want: ErrMalformedSegment},
		{name: "payload not json", raw: signRaw(t, hdr, "not json"), want: ErrMalformedClaims},
		{name: "payload is array", raw: signRaw(t, hdr, `[1,2]`), want: ErrMalformedClaims},
		{name: "missing role", raw: signRaw(t, hdr, jsonf(`{"user_id":1,"username":"a","iat":%d,"exp":%d}`, iat, exp)), want: ErrMalformedClaims},
		{name: "missing exp", raw: signRaw(t, hdr, jsonf(`{"user_id":1,"username":"a","role":"Employee","iat":%d}`, iat)), want: ErrMalformedClaims},
		{name: "exp as string", raw: signRaw(t, hdr, jsonf(`{"user_id":1,"username":"a","role":"Employee","iat":%d,"exp":"soon"}`, iat)), want: ErrMalformedClaims},
		{name: "alg none header", raw: signRaw(t, `{"typ":"JWT","alg":"none"}`, jsonf(`{"user_id":1,"username":"a","role":"Employee","iat":%d,"exp":%d}`, iat, exp)), want: ErrMalformedToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := m.Verify(tt.raw); !errors.Is(err, tt.want) {
				t.Fatalf("Verify() err = %v, want %v", err, tt.want)
			}
		})
	}

	valid := signRaw(t, hdr, jsonf(`{"user_id":1,"username":"a","role":"Employee","iat":%d,"exp":%d,"extra":"ok"}`, iat, exp))
	if _, err := m.Verify(valid); err != nil {
		t.Fatalf("hand-signed valid token rejected: %v", err)
	}
}

func TestConcurrentVerify(t *testing.T) {
	m, _ := newTestManager(t, testSecret, time.Hour)
	raw, _, err := m.Issue(sampleClaims())
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	errs := make(chan error, 32)
	for i := 0; i < cap(errs); i++ {
		go func() {
			_, err := m.Verify(raw)
			errs <- err
		}()
	}
	for i := 0; i < cap(errs); i++ {
		if err := <-errs; err != nil {
			t.Fatalf("concurrent verify: %v", err)
		}
	}
}

func jsonf(format string, args ...any) string {
	return fmt.Sprintf(format, args...)
}
