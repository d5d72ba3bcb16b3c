package auth

import (
	"sync"

	"golang.org/x/crypto/bcrypt"
)

// dummyHashes caches one throwaway hash per bcrypt cost.
var dummyHashes sync.Map

// HashPassword hashes a plaintext password with configured cost.
func HashPassword(password string, cost int) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), clampCost(cost))
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

func clampCost(cost int) int {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		return bcrypt.DefaultCost
	}
	return cost
}

// ComparePassword verifies a password against its hashed value.
func ComparePassword(hashed, plain string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain))
}

// BurnPasswordCheck spends one bcrypt comparison at cost when no account
// matched. cost must be the one stored hashes use, so unknown usernames take
// as long as wrong passwords.
func BurnPasswordCheck(plain string, cost int) {
	_ = bcrypt.CompareHashAndPassword(dummyHash(cost), []byte(plain))
}

func dummyHash(cost int) []byte {
	cost = clampCost(cost)
	if h, ok := dummyHashes.Load(cost); ok {
		return h.([]byte)
	}
	h, _ := bcrypt.GenerateFromPassword([]byte("no-such-account"), cost)
	actual, _ := dummyHashes.LoadOrStore(cost, h)
	return actual.([]byte)
}
