package toml

import (
	"fmt"
	"math"
	"strconv"
)

// Emission of the JSON-shaped type-tagged serialization used by TOML
// conformance harnesses, grounded on the teacher's cmd/decoder
// (documentToTaggedJSON, valueToTagged, tagged, numberToTagged,
// datetimeToTagged), restated against this package's own *Value/*Key tree
// instead of a CST so no text re-scanning is needed.

// Tagged renders the document as nested map[string]any / []any values using
// the {"type": ..., "value": ...} leaf convention. The result is suitable
// for direct json.Marshal.
func (d *Document) Tagged() map[string]any {
	return tableToTagged(d.Root)
}

func tableToTagged(k *Key) map[string]any {
	out := make(map[string]any)
	for _, child := range k.OrderedChildren() {
		out[child.ID] = keyToTagged(child)
	}
	return out
}

func keyToTagged(k *Key) any {
	switch k.Kind {
	case KeyLeaf, TableLeaf:
		if k.Value != nil {
			return valueToTagged(k.Value)
		}
		return tableToTagged(k)
	case TableBranch, KeyBranch:
		return tableToTagged(k)
	case ArrayTable:
		elems := make([]any, 0)
		if k.Value != nil {
			for _, v := range k.Value.Array {
				elems = append(elems, valueToTagged(v))
			}
		}
		return elems
	}
	return tableToTagged(k)
}

func valueToTagged(v *Value) any {
	switch v.Kind {
	case KindString:
		return tagged("string", v.String)
	case KindInteger:
		return tagged("integer", strconv.FormatInt(v.Integer, 10))
	case KindFloat:
		return tagged("float", formatTaggedFloat(v))
	case KindBoolean:
		return tagged("bool", strconv.FormatBool(v.Boolean))
	case KindOffsetDateTime:
		return tagged("datetime", formatDateTime(v.DateTime, true, true))
	case KindLocalDateTime:
		return tagged("datetime-local", formatDateTime(v.DateTime, true, false))
	case KindLocalDate:
		return tagged("date-local", formatDateTime(v.DateTime, false, false))
	case KindLocalTime:
		return tagged("time-local", formatTimeOnly(v.DateTime))
	case KindArray:
		out := make([]any, 0, len(v.Array))
		for _, e := range v.Array {
			out = append(out, valueToTagged(e))
		}
		return out
	case KindInlineTable:
		return tableToTagged(v.InlineTable)
	}
	return tagged("string", "")
}

func tagged(typ, val string) map[string]any {
	return map[string]any{"type": typ, "value": val}
}

func formatTaggedFloat(v *Value) string {
	switch {
	case math.IsNaN(v.Float):
		return "nan"
	case math.IsInf(v.Float, 1):
		return "+inf"
	case math.IsInf(v.Float, -1):
		return "-inf"
	default:
		return strconv.FormatFloat(v.Float, 'g', -1, 64)
	}
}

func formatDateTime(dt DateTime, withTime, withOffset bool) string {
	s := fmt.Sprintf("%04d-%02d-%02d", dt.Year, dt.Month, dt.Day)
	if withTime {
		s += "T" + formatTimeOnly(dt)
	}
	if withOffset {
		if dt.HasOffset {
			if dt.OffsetMinutes == 0 {
				s += "Z"
			} else {
				sign := "+"
				om := dt.OffsetMinutes
				if om < 0 {
					sign = "-"
					om = -om
				}
				s += fmt.Sprintf("%s%02d:%02d", sign, om/60, om%60)
			}
		}
	}
	return s
}

func formatTimeOnly(dt DateTime) string {
	s := fmt.Sprintf("%02d:%02d:%02d", dt.Hour, dt.Minute, dt.Second)
	if dt.SubSecondDigits > 0 {
		frac := fmt.Sprintf("%09d", dt.NanoSecond)
		digits := dt.SubSecondDigits
		if digits < 3 {
			digits = 3
		}
		if digits > 9 {
			digits = 9
		}
		s += "." + frac[:digits]
	}
	return s
}
