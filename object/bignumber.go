package object

import (
	"math/big"
	"strconv"
)

// BigNumber is an arbitrary-precision decimal value, carried by its
// canonical decimal literal form so encode/decode never has to agree on
// a binary representation. Distinct from BigInt (§10.1), which is an
// integer literal.
type BigNumber struct {
	Literal string
}

func (*BigNumber) isValue() {}

// NewBigNumber parses s as a decimal literal, validating it the way the
// decoder must (math/big.ParseFloat), but keeps the literal string
// as the canonical form.
func NewBigNumber(s string) (*BigNumber, error) {
	if _, _, err := big.ParseFloat(s, 10, 0, big.ToNearestEven); err != nil {
		return nil, err
	}
	return &BigNumber{Literal: s}, nil
}

// BigInt is the §10.1 extension: an arbitrary-precision integer.
type BigInt struct {
	Value *big.Int
}

func (*BigInt) isValue() {}

// NewBigIntFromString parses s (base 10) into a BigInt.
func NewBigIntFromString(s string) (*BigInt, error) {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, &InvalidLiteralError{Kind: "bigint", Literal: s}
	}
	return &BigInt{Value: v}, nil
}

// Literal returns the canonical base-10 decimal string form.
func (b *BigInt) Literal() string {
	return b.Value.String()
}

// InvalidLiteralError reports a malformed by-value literal (bignumber or
// bigint) encountered while allocating a decoded value.
type InvalidLiteralError struct {
	Kind    string
	Literal string
}

func (e *InvalidLiteralError) Error() string {
	return "object: invalid " + e.Kind + " literal " + strconv.Quote(e.Literal)
}
