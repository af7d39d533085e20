// Package commit hides a fleet layout behind a salted MiMC hash so it can
// be published before play and checked once the salt is revealed.
package commit

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	bnmimc "github.com/consensys/gnark-crypto/ecc/bn254/fr/mimc"
)

const saltBytes = 32

type Commitment struct {
	Root *big.Int
	salt *big.Int
}

// encode BN254 field elements as 32-byte big-endian
func feBytes(x *big.Int) []byte {
	b := x.Bytes()
	if len(b) == 32 {
		return b
	}
	out := make([]byte, 32)
	copy(out[32-len(b):], b)
	return out
}

func hash(bits []uint8, salt *big.Int) (*big.Int, error) {
	h := bnmimc.NewMiMC()
	if _, err := h.Write(feBytes(salt)); err != nil {
		return nil, err
	}
	for _, bit := range bits {
		if _, err := h.Write(feBytes(new(big.Int).SetUint64(uint64(bit)))); err != nil {
			return nil, err
		}
	}
	return new(big.Int).SetBytes(h.Sum(nil)), nil
}

// New commits to bits with a fresh random salt.
func New(bits []uint8) (Commitment, error) {
	raw := make([]byte, saltBytes)
	if _, err := rand.Read(raw); err != nil {
		return Commitment{}, err
	}
	// the salt has to be a canonical field element
	salt := new(big.Int).SetBytes(raw)
	salt.Mod(salt, fr.Modulus())

	return NewWithSalt(bits, salt)
}

func NewWithSalt(bits []uint8, salt *big.Int) (Commitment, error) {
	if salt.Sign() < 0 || salt.Cmp(fr.Modulus()) >= 0 {
		return Commitment{}, fmt.Errorf("salt is not a bn254 field element")
	}
	root, err := hash(bits, salt)
	if err != nil {
		return Commitment{}, err
	}
	return Commitment{Root: root, salt: new(big.Int).Set(salt)}, nil
}

func (c Commitment) RootHex() string {
	return toHex(c.Root)
}

// SaltHex reveals the salt. Publish it only after the game is over.
func (c Commitment) SaltHex() string {
	return toHex(c.salt)
}

// Verify recomputes the commitment of bits with the revealed salt and
// compares it with the published root.
func Verify(bits []uint8, rootHex, saltHex string) (bool, error) {
	root, err := fromHex(rootHex)
	if err != nil {
		return false, err
	}
	salt, err := fromHex(saltHex)
	if err != nil {
		return false, err
	}

	c, err := NewWithSalt(bits, salt)
	if err != nil {
		return false, err
	}
	return c.Root.Cmp(root) == 0, nil
}

func toHex(x *big.Int) string {
	if x == nil {
		return ""
	}
	return fmt.Sprintf("0x%x", x)
}

func fromHex(s string) (*big.Int, error) {
	if len(s) < 3 || !strings.HasPrefix(s, "0x") {
		return nil, fmt.Errorf("invalid hex format: %q", s)
	}
	x, ok := new(big.Int).SetString(s[2:], 16)
	if !ok {
		return nil, fmt.Errorf("can't parse hex value: %q", s)
	}
	return x, nil
}
