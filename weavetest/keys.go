package weavetest

import (
	"crypto/rand"

	weave "github.com/iov-one/yieldweave"
	"golang.org/x/crypto/ed25519"
)

// NewKey returns a freshly generated ed25519 key pair. It panics if the
// system source of randomness fails.
func NewKey() (ed25519.PublicKey, ed25519.PrivateKey) {
	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		panic(err)
	}
	return pub, priv
}

// NewCondition returns a signature condition for a freshly generated public
// key. Each call returns a different condition.
func NewCondition() weave.Condition {
	pub, _ := NewKey()
	return SigCondition(pub)
}

// SigCondition returns the signature condition that authenticates the owner
// of given public key.
func SigCondition(pub ed25519.PublicKey) weave.Condition {
	return weave.NewCondition("sigs", "ed25519", pub)
}
