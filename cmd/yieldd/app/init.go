package yieldd

import (
	"encoding/hex"
	"encoding/json"
	"fmt"

	weave "github.com/iov-one/yieldweave"
	"github.com/iov-one/yieldweave/errors"
	"github.com/iov-one/yieldweave/x/sigs"
	"golang.org/x/crypto/ed25519"
)

// DefaultPercentage is the yield percentage of a development genesis, in
// hundredths of a percent.
const DefaultPercentage = 1200

// DevToken returns the address of the settlement token used in a
// development genesis.
func DevToken() weave.Address {
	return weave.NewCondition("cash", "token", []byte("YIELD")).Address()
}

// GenerateAdminKey creates a new ed25519 key and returns the address it
// signs for, together with the hex encoded private key.
func GenerateAdminKey() (weave.Address, string, error) {
	pub, priv, err := ed25519.GenerateKey(nil)
	if err != nil {
		return nil, "", errors.Wrapf(errors.ErrInput, "generate key: %s", err)
	}
	return sigs.PubkeyCondition(pub).Address(), hex.EncodeToString(priv), nil
}

// GenInitOptions will produce the options of a development ledger: an
// administrator, a percentage, a settlement token and a funded
// administrator account.
//
// An administrator address can be given as the first argument, otherwise
// a new key is generated and its private part printed out.
func GenInitOptions(args []string) (json.RawMessage, error) {
	var admin weave.Address
	if len(args) > 0 {
		addr, err := weave.ParseAddress(args[0])
		if err != nil {
			return nil, errors.Wrap(err, "admin address")
		}
		admin = addr
	} else {
		addr, secret, err := GenerateAdminKey()
		if err != nil {
			return nil, err
		}
		admin = addr
		fmt.Println("admin private key:", secret)
	}

	opts := fmt.Sprintf(`
          {
            "conf": {
              "yield": {
                "metadata": {"schema": 1},
                "admin": %q,
                "percentage": %d,
                "settlement_token": %q
              }
            },
            "cash": [
              {"token": %q, "owner": %q, "amount": 1000000}
            ]
          }
	`, admin, DefaultPercentage, DevToken(), DevToken(), admin)
	return []byte(opts), nil
}
