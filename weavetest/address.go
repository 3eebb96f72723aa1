package weavetest

import (
	"crypto/rand"
	"testing"

	weave "github.com/iov-one/yieldweave"
)

// ParseAddress takes a weave address in a human readable format and returns
// its binary representation. This function is a test helper that is using
// weave.ParseAddress function functionality.
func ParseAddress(t testing.TB, encodedAddress string) weave.Address {
	t.Helper()

	addr, err := weave.ParseAddress(encodedAddress)
	if err != nil {
		t.Fatalf("cannot parse %q address: %s", encodedAddress, err)
	}
	return addr
}

// RandomAddr returns a valid random weave address genearted on the fly.
func RandomAddr(t testing.TB) weave.Address {
	raw := make([]byte, weave.AddressLength)
	if _, err := rand.Read(raw); err != nil {
		t.Fatalf("cannot generate a random address: %s", err)
	}
	a := weave.Address(raw)
	if err := a.Validate(); err != nil {
		t.Fatalf("generated address is not a valid weave address: %s", err)
	}
	return a
}
