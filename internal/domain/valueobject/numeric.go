// Package valueobject contains domain value objects for the fleet reporting backend.
package valueobject

import (
	"bytes"
	"math"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
	"github.com/shopspring/decimal"
)

// Numeric is implemented by every optional numeric field that takes part in
// an aggregate. Decimal returns zero when the value is missing.
type Numeric interface {
	Decimal() decimal.Decimal
}

// Amount is an optional currency amount.
// A missing or non-numeric source value is kept as "missing" rather than
// failing the decode, and contributes zero to every sum.
type Amount struct {
	value decimal.Decimal
	valid bool
}

// NewAmount creates a present Amount.
func NewAmount(d decimal.Decimal) Amount {
	return Amount{value: d, valid: true}
}

// AmountFromFloat creates an Amount from a float. NaN and infinities are missing.
func AmountFromFloat(f float64) Amount {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Amount{}
	}
	return NewAmount(decimal.NewFromFloat(f))
}

// AmountFromNullDecimal converts a nullable database column.
func AmountFromNullDecimal(d decimal.NullDecimal) Amount {
	if !d.Valid {
		return Amount{}
	}
	return NewAmount(d.Decimal)
}

// MissingAmount returns an Amount with no value.
func MissingAmount() Amount {
	return Amount{}
}

// Valid reports whether the amount was present and numeric.
func (a Amount) Valid() bool {
	return a.valid
}

// Decimal returns the amount, or zero when missing.
func (a Amount) Decimal() decimal.Decimal {
	if !a.valid {
		return decimal.Zero
	}
	return a.value
}

// NullDecimal converts the amount for storage.
func (a Amount) NullDecimal() decimal.NullDecimal {
	return decimal.NullDecimal{Decimal: a.value, Valid: a.valid}
}

// UnmarshalJSON decodes numbers and numeric strings; anything else is missing.
func (a *Amount) UnmarshalJSON(data []byte) error {
	d, ok := parseLenientDecimal(data)
	*a = Amount{value: d, valid: ok}
	return nil
}

// MarshalJSON encodes the amount as a JSON number, or null when missing.
func (a Amount) MarshalJSON() ([]byte, error) {
	if !a.valid {
		return []byte("null"), nil
	}
	return []byte(a.value.String()), nil
}

// Days is an optional whole number of rental days.
type Days struct {
	value int64
	valid bool
}

// NewDays creates a present Days value.
func NewDays(n int64) Days {
	return Days{value: n, valid: true}
}

// DaysFromNullInt converts a nullable database column.
func DaysFromNullInt(n *int64) Days {
	if n == nil {
		return Days{}
	}
	return NewDays(*n)
}

// Valid reports whether the value was present and numeric.
func (d Days) Valid() bool {
	return d.valid
}

// Int returns the number of days, or zero when missing.
func (d Days) Int() int64 {
	if !d.valid {
		return 0
	}
	return d.value
}

// Decimal returns the number of days as a decimal, or zero when missing.
func (d Days) Decimal() decimal.Decimal {
	return decimal.NewFromInt(d.Int())
}

// UnmarshalJSON decodes numbers and numeric strings, keeping the integer part.
func (d *Days) UnmarshalJSON(data []byte) error {
	v, ok := parseLenientDecimal(data)
	*d = Days{value: v.IntPart(), valid: ok}
	return nil
}

// MarshalJSON encodes the value as a JSON number, or null when missing.
func (d Days) MarshalJSON() ([]byte, error) {
	if !d.valid {
		return []byte("null"), nil
	}
	return []byte(strconv.FormatInt(d.value, 10)), nil
}

// Ratio is an optional fraction, e.g. branch occupation in [0,1].
type Ratio struct {
	value float64
	valid bool
}

// NewRatio creates a Ratio. NaN and infinities are treated as missing.
func NewRatio(f float64) Ratio {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Ratio{}
	}
	return Ratio{value: f, valid: true}
}

// RatioFromNullFloat converts a nullable database column.
func RatioFromNullFloat(f *float64) Ratio {
	if f == nil {
		return Ratio{}
	}
	return NewRatio(*f)
}

// Valid reports whether the ratio is present and finite.
func (r Ratio) Valid() bool {
	return r.valid
}

// Float returns the ratio, or zero when missing.
func (r Ratio) Float() float64 {
	if !r.valid {
		return 0
	}
	return r.value
}

// UnmarshalJSON accepts JSON numbers only. Strings, even numeric ones, and
// every other type are missing.
func (r *Ratio) UnmarshalJSON(data []byte) error {
	*r = Ratio{}
	trimmed := bytes.TrimSpace(data)
	if bytes.Equal(trimmed, []byte("null")) {
		return nil
	}
	var f float64
	if err := json.Unmarshal(trimmed, &f); err != nil {
		return nil
	}
	*r = NewRatio(f)
	return nil
}

// MarshalJSON encodes the ratio as a JSON number, or null when missing.
func (r Ratio) MarshalJSON() ([]byte, error) {
	if !r.valid {
		return []byte("null"), nil
	}
	return []byte(strconv.FormatFloat(r.value, 'f', -1, 64)), nil
}

// IDKind is the JSON type a record identity was written with.
type IDKind uint8

const (
	// IDMissing marks an absent or null identity. It never equals another id.
	IDMissing IDKind = iota
	// IDString is an identity written as a JSON string.
	IDString
	// IDNumber is an identity written as a JSON number.
	IDNumber
)

// String returns the kind name stored next to persisted ids.
func (k IDKind) String() string {
	switch k {
	case IDString:
		return "string"
	case IDNumber:
		return "number"
	default:
		return ""
	}
}

// RecordID is the identity of a source record. Two ids are equal only when
// both their kind and value match: the string "42" is not the number 42.
// Numbers compare by value, so 42 and 42.0 are the same id.
type RecordID struct {
	value string
	kind  IDKind
}

// StringID creates an identity written as a string. The empty string is a
// valid identity, distinct from a missing one.
func StringID(s string) RecordID {
	return RecordID{value: s, kind: IDString}
}

// NumberID creates an identity written as a number.
func NumberID(d decimal.Decimal) RecordID {
	return RecordID{value: d.String(), kind: IDNumber}
}

// RecordIDOf rebuilds an identity from its persisted kind and value.
// A number that no longer parses is missing.
func RecordIDOf(kind string, value string) RecordID {
	switch kind {
	case IDNumber.String():
		d, err := decimal.NewFromString(value)
		if err != nil {
			return RecordID{}
		}
		return NumberID(d)
	default:
		return StringID(value)
	}
}

// Present reports whether the record carried an identity at all.
func (id RecordID) Present() bool {
	return id.kind != IDMissing
}

// Kind returns the JSON type the identity was written with.
func (id RecordID) Kind() IDKind {
	return id.kind
}

// String returns the raw identity.
func (id RecordID) String() string {
	return id.value
}

// UnmarshalJSON keeps strings and numbers apart. Null and any other JSON
// type decode to a missing identity.
func (id *RecordID) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	switch {
	case len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")):
		*id = RecordID{}
	case trimmed[0] == '"':
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return err
		}
		*id = StringID(s)
	default:
		d, err := decimal.NewFromString(string(trimmed))
		if err != nil {
			*id = RecordID{}
			return nil
		}
		*id = NumberID(d)
	}
	return nil
}

// MarshalJSON writes the identity back with its original JSON type.
func (id RecordID) MarshalJSON() ([]byte, error) {
	switch id.kind {
	case IDString:
		return json.Marshal(id.value)
	case IDNumber:
		return []byte(id.value), nil
	default:
		return []byte("null"), nil
	}
}

// parseLenientDecimal parses a JSON number or numeric string.
func parseLenientDecimal(data []byte) (decimal.Decimal, bool) {
	raw, ok := lenientScalar(data)
	if !ok {
		return decimal.Zero, false
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

// lenientScalar extracts the textual form of a JSON number or string.
func lenientScalar(data []byte) (string, bool) {
	raw := strings.TrimSpace(string(data))
	if raw == "" || raw == "null" {
		return "", false
	}
	if strings.HasPrefix(raw, "\"") {
		var s string
		if err := json.Unmarshal([]byte(raw), &s); err != nil {
			return "", false
		}
		raw = strings.TrimSpace(s)
	}
	if raw == "" {
		return "", false
	}
	return raw, true
}
