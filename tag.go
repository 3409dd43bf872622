package jsonlines

import (
	"fmt"
	"strings"

	"github.com/goccy/go-json"
)

// Tag names the kind a decoded line is expected to have.
type Tag int

const (
	ObjectTag Tag = iota
	ArrayTag
	StringTag
	IntTag
	FloatTag
	NumberTag
	BoolTag
)

func (t Tag) String() string {
	s, ok := map[Tag]string{
		ObjectTag: "Object",
		ArrayTag:  "Array",
		StringTag: "String",
		IntTag:    "Int",
		FloatTag:  "Float",
		NumberTag: "Number",
		BoolTag:   "Bool",
	}[t]
	if ok {
		return s
	}
	return "<unknown tag>"
}

func (t Tag) MarshalText() ([]byte, error) {
	if !t.valid() {
		return nil, fmt.Errorf("%w: %d", ErrBadTag, int(t))
	}
	return []byte(t.String()), nil
}

func (t *Tag) UnmarshalText(d []byte) error {
	tt, ok := map[string]Tag{
		"Object": ObjectTag,
		"Array":  ArrayTag,
		"String": StringTag,
		"Int":    IntTag,
		"Float":  FloatTag,
		"Number": NumberTag,
		"Bool":   BoolTag,
	}[string(d)]
	if !ok {
		return fmt.Errorf("%w: %q", ErrBadTag, d)
	}
	*t = tt
	return nil
}

func Tags() []Tag {
	return []Tag{
		ObjectTag,
		ArrayTag,
		StringTag,
		IntTag,
		FloatTag,
		NumberTag,
		BoolTag,
	}
}

// Matches reports whether a decoded value conforms to the tag. IntTag
// matches only number literals without a fractional or exponent part;
// FloatTag and NumberTag match any JSON number. Booleans decode to bool and
// so never satisfy the numeric tags.
func (t Tag) Matches(v any) bool {
	switch t {
	case ObjectTag:
		_, ok := v.(map[string]any)
		return ok
	case ArrayTag:
		_, ok := v.([]any)
		return ok
	case StringTag:
		_, ok := v.(string)
		return ok
	case BoolTag:
		_, ok := v.(bool)
		return ok
	case IntTag:
		n, ok := v.(json.Number)
		return ok && isIntLiteral(n)
	case FloatTag, NumberTag:
		_, ok := v.(json.Number)
		return ok
	}
	return false
}

func (t Tag) valid() bool {
	return t >= ObjectTag && t <= BoolTag
}

// isIntLiteral inspects the literal rather than parsing into int64 so that
// integers beyond the int64 range still count as integers.
func isIntLiteral(n json.Number) bool {
	return !strings.ContainsAny(n.String(), ".eE")
}
