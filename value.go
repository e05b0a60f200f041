package toml

// ValueKind discriminates the ten variants of Value.
type ValueKind int

const (
	KindInteger ValueKind = iota
	KindFloat
	KindBoolean
	KindString
	KindOffsetDateTime
	KindLocalDateTime
	KindLocalDate
	KindLocalTime
	KindArray
	KindInlineTable
)

func (k ValueKind) String() string {
	switch k {
	case KindInteger:
		return "integer"
	case KindFloat:
		return "float"
	case KindBoolean:
		return "bool"
	case KindString:
		return "string"
	case KindOffsetDateTime:
		return "datetime"
	case KindLocalDateTime:
		return "datetime-local"
	case KindLocalDate:
		return "date-local"
	case KindLocalTime:
		return "time-local"
	case KindArray:
		return "array"
	case KindInlineTable:
		return "inline-table"
	default:
		return "unknown"
	}
}

// DateTime is the broken-down payload shared by all four datetime/date/time
// variants. Which fields are meaningful depends on the owning Value's Kind:
// LocalDate ignores the time fields, LocalTime ignores the date fields, and
// only OffsetDateTime uses HasOffset/OffsetMinutes.
type DateTime struct {
	Year, Month, Day       int
	Hour, Minute, Second   int
	NanoSecond             int // sub-second, nanosecond resolution
	SubSecondDigits        int // number of fractional digits as written (0 if none); emission pads to >= 3
	HasOffset              bool
	OffsetMinutes          int // signed, UTC offset; only meaningful when HasOffset
}

// Value is a tagged union over the ten TOML value variants. Only the
// field(s) matching Kind are meaningful; the zero value of the others is
// never inspected by the rest of the package.
type Value struct {
	Kind ValueKind

	Integer int64

	Float      float64
	Precision  int  // count of significant mantissa digits as written
	Scientific bool // true if the source token used e/E notation

	Boolean bool

	String string

	DateTime DateTime

	Array []*Value

	// InlineTable is an owning reference to a Key subtree (kind TableBranch)
	// holding the inline table's members. Also used, unchanged, as the
	// per-element namespace root for ArrayTable elements stored in Array.
	InlineTable *Key
}
