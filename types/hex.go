package types

import (
	"strings"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/pkg/errors"
)

// EncodeHex encodes b as 0x-prefixed lowercase hex.
func EncodeHex(b []byte) string {
	return hexutil.Encode(b)
}

// DecodeHex decodes 0x-prefixed hex text. The prefix must be exactly "0x",
// the digits may be in either case.
func DecodeHex(input string) ([]byte, error) {
	if !strings.HasPrefix(input, "0x") {
		return nil, errors.Wrap(ErrInvalidHex, "missing 0x prefix")
	}
	b, err := hexutil.Decode(input)
	if err != nil {
		return nil, errors.Wrap(ErrInvalidHex, err.Error())
	}
	return b, nil
}

func isString(input []byte) bool {
	return len(input) >= 2 && input[0] == '"' && input[len(input)-1] == '"'
}

func unquote(input []byte) ([]byte, error) {
	if !isString(input) {
		return nil, errors.Wrap(ErrInvalidHex, "non-string JSON value")
	}
	return input[1 : len(input)-1], nil
}

// unmarshalFixedText decodes hex text into out, which must be filled exactly.
func unmarshalFixedText(input []byte, out []byte) error {
	raw, err := DecodeHex(string(input))
	if err != nil {
		return err
	}
	if len(raw) != len(out) {
		return lengthMismatch(len(raw), len(out))
	}
	copy(out, raw)
	return nil
}

func unmarshalFixedJSON(input []byte, out []byte) error {
	text, err := unquote(input)
	if err != nil {
		return err
	}
	return unmarshalFixedText(text, out)
}

func fixedFromSlice(src []byte, out []byte) error {
	if len(src) != len(out) {
		return lengthMismatch(len(src), len(out))
	}
	copy(out, src)
	return nil
}
