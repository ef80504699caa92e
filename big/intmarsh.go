package big

import (
	"encoding/base64"
	"encoding/json"

	"github.com/fxamacker/cbor/v2"
	"github.com/go-errors/errors"
)

// CBOR tag numbers for unsigned and negative bignums (RFC 8949, 3.4.3).
const (
	tagPositiveBignum = 2
	tagNegativeBignum = 3
)

// MarshalText implements encoding.TextMarshaler, returning the base64-encoding
// of x.Bytes(), prefixed with '-' for negative values.
func (x *Int) MarshalText() ([]byte, error) {
	bts := x.Bytes()
	enc := make([]byte, base64.StdEncoding.EncodedLen(len(bts)))
	base64.StdEncoding.Encode(enc, bts)
	if x.neg {
		enc = append([]byte{'-'}, enc...)
	}
	return enc, nil
}

// UnmarshalText implements encoding.TextUnmarshaler as the inverse of
// MarshalText.
func (x *Int) UnmarshalText(text []byte) error {
	neg := len(text) > 0 && text[0] == '-'
	if neg {
		text = text[1:]
	}
	bts := make([]byte, base64.StdEncoding.DecodedLen(len(text)))
	n, err := base64.StdEncoding.Decode(bts, text)
	if err != nil {
		return errors.WrapPrefix(err, "big: decoding base64 integer", 0)
	}
	*x = *newInt(neg, natFromBytes(bts[:n]))
	return nil
}

// UnmarshalJSON implements json.Unmarshaler. A quoted value is decoded as
// base64 by UnmarshalText; anything else must be a base 10 JSON number.
func (x *Int) UnmarshalJSON(b []byte) error {
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return errors.Wrap(err, 0)
		}
		return x.UnmarshalText([]byte(s))
	}

	var num json.Number
	if err := json.Unmarshal(b, &num); err != nil {
		return errors.Wrap(err, 0)
	}
	y, err := Parse(num.String(), 10)
	if err != nil {
		return err
	}
	*x = *y
	return nil
}

// MarshalCBOR encodes x as a tagged CBOR bignum. Negative values n are
// encoded with tag 3 holding -1-n.
func (x *Int) MarshalCBOR() ([]byte, error) {
	if !x.neg {
		return cbor.Marshal(cbor.Tag{Number: tagPositiveBignum, Content: x.abs.bytes()})
	}
	return cbor.Marshal(cbor.Tag{Number: tagNegativeBignum, Content: x.abs.sub(natOne).bytes()})
}

// UnmarshalCBOR decodes a tagged CBOR bignum written by MarshalCBOR.
func (x *Int) UnmarshalCBOR(data []byte) error {
	var raw cbor.RawTag
	if err := cbor.Unmarshal(data, &raw); err != nil {
		return errors.Wrap(err, 0)
	}
	var bts []byte
	if err := cbor.Unmarshal(raw.Content, &bts); err != nil {
		return errors.Wrap(err, 0)
	}

	switch raw.Number {
	case tagPositiveBignum:
		*x = *newInt(false, natFromBytes(bts))
	case tagNegativeBignum:
		*x = *newInt(true, natFromBytes(bts).add(natOne))
	default:
		return errors.Errorf("big: unexpected CBOR tag %d for bignum", raw.Number)
	}
	return nil
}
