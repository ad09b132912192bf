package coding

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/cometbft/cometbft/crypto/tmhash"
)

func DecodeHex(in string) ([]byte, error) {
	normalized := in
	if strings.HasPrefix(in, "0x") || strings.HasPrefix(in, "0X") {
		normalized = normalized[2:]
	}

	return hex.DecodeString(normalized)
}

func NormalizeBytesToHex(input []byte) string {
	return strings.ToLower("0x" + hex.EncodeToString(input))
}

// TxHash is the lowercase hex SHA-256 of encoded transaction bytes, as the chain reports it.
func TxHash(txBytes []byte) string {
	return hex.EncodeToString(tmhash.Sum(txBytes))
}

// PayloadFingerprint pretty prints a hex payload in an identifiable and succint way.
func PayloadFingerprint(payload []byte) string {
	if len(payload) < 8 {
		return NormalizeMaybeEmptyBytes(payload)
	}

	return fmt.Sprintf("[%s...%s]", hex.EncodeToString(payload[0:4]), hex.EncodeToString(payload[len(payload)-4:]))
}

// Returns an empty byte slice rather than no output for empty byte arrays
func NormalizeMaybeEmptyBytes(bytes []byte) string {
	if len(bytes) > 0 {
		return hex.EncodeToString(bytes)
	}
	return "[]"
}
