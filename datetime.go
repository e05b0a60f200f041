package toml

// Datetime scanning, grounded on validate.go's dtReOffsetDT/dtReLocalDT/
// dtReLocalDate/dtReLocalTime regex cascade and its validateDateParts/
// validateTimeParts leap-year-aware checks, restated as an explicit
// positional state machine per the Design Notes (no regexp dependency).

var daysInMonth = [...]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

func isLeapYear(y int) bool {
	return y%4 == 0 && (y%100 != 0 || y%400 == 0)
}

// scanDateTimeToken consumes the raw text of a datetime/date/time literal
// starting at the cursor, stopping at the first byte that cannot belong to
// any of the five shapes.
func scanDateTimeToken(s *Scanner) string {
	start := s.pos
	for s.HasMore() {
		c := s.Current()
		if isDigit(c) || c == '-' || c == ':' || c == '.' || c == 'T' || c == 't' || c == ' ' ||
			c == 'Z' || c == 'z' || c == '+' {
			// A bare space only belongs to the token if flanked by digits on
			// both sides (the RFC 3339 date/time separator); otherwise stop.
			if c == ' ' {
				if !(isDigit(s.Previous()) && isDigit(peekAt(s, 1))) {
					break
				}
			}
			s.Advance()
			continue
		}
		break
	}
	return string(s.buf[start:s.pos])
}

// parseDateTimeValue classifies tok into one of the four datetime/date/time
// kinds and decodes its fields.
func parseDateTimeValue(tok string, line, col int, source string) (*Value, error) {
	hasDate := len(tok) >= 10 && tok[4] == '-' && tok[7] == '-'
	hasTimeSep := false
	sepIdx := -1
	if hasDate && len(tok) > 10 {
		sep := tok[10]
		if sep == 'T' || sep == 't' || sep == ' ' {
			hasTimeSep = true
			sepIdx = 10
		}
	}

	switch {
	case hasDate && !hasTimeSep:
		return decodeLocalDate(tok, line, col, source)
	case hasDate && hasTimeSep:
		timePart := tok[sepIdx+1:]
		dt, offset, hasOffset, err := decodeTimeOfDay(timePart, line, col, source)
		if err != nil {
			return nil, err
		}
		y, mo, d, err := decodeDateParts(tok[:10], line, col, source)
		if err != nil {
			return nil, err
		}
		dt.Year, dt.Month, dt.Day = y, mo, d
		if hasOffset {
			dt.HasOffset = true
			dt.OffsetMinutes = offset
			return &Value{Kind: KindOffsetDateTime, DateTime: dt}, nil
		}
		return &Value{Kind: KindLocalDateTime, DateTime: dt}, nil
	default:
		// Local time only: HH:MM:SS[.fraction]
		dt, _, _, err := decodeTimeOfDay(tok, line, col, source)
		if err != nil {
			return nil, err
		}
		return &Value{Kind: KindLocalTime, DateTime: dt}, nil
	}
}

func decodeDateParts(tok string, line, col int, source string) (y, m, d int, err error) {
	if len(tok) != 10 || tok[4] != '-' || tok[7] != '-' {
		return 0, 0, 0, newParseErr(ErrDecode, line, col, source, "malformed date %q", tok)
	}
	y = atoiN(tok[0:4])
	m = atoiN(tok[5:7])
	d = atoiN(tok[8:10])
	if m < 1 || m > 12 {
		return 0, 0, 0, newParseErr(ErrDecode, line, col, source, "month out of range in %q", tok)
	}
	maxDay := daysInMonth[m-1]
	if m == 2 && isLeapYear(y) {
		maxDay = 29
	}
	if d < 1 || d > maxDay {
		return 0, 0, 0, newParseErr(ErrDecode, line, col, source, "day out of range in %q", tok)
	}
	return y, m, d, nil
}

func decodeLocalDate(tok string, line, col int, source string) (*Value, error) {
	y, m, d, err := decodeDateParts(tok, line, col, source)
	if err != nil {
		return nil, err
	}
	return &Value{Kind: KindLocalDate, DateTime: DateTime{Year: y, Month: m, Day: d}}, nil
}

// decodeTimeOfDay parses "HH:MM:SS[.fraction][offset]" and reports whether
// an offset was present.
func decodeTimeOfDay(tok string, line, col int, source string) (DateTime, int, bool, error) {
	if len(tok) < 8 || tok[2] != ':' || tok[5] != ':' {
		return DateTime{}, 0, false, newParseErr(ErrDecode, line, col, source, "malformed time %q", tok)
	}
	hh := atoiN(tok[0:2])
	mm := atoiN(tok[3:5])
	ss := atoiN(tok[6:8])
	if hh > 23 || mm > 59 || ss > 60 {
		return DateTime{}, 0, false, newParseErr(ErrDecode, line, col, source, "time out of range %q", tok)
	}

	rest := tok[8:]
	dt := DateTime{Hour: hh, Minute: mm, Second: ss}

	if len(rest) > 0 && rest[0] == '.' {
		i := 1
		for i < len(rest) && isDigit(rest[i]) {
			i++
		}
		fracDigits := rest[1:i]
		dt.SubSecondDigits = len(fracDigits)
		dt.NanoSecond = fracToNanos(fracDigits)
		rest = rest[i:]
	}

	if rest == "" {
		return dt, 0, false, nil
	}
	if rest == "Z" || rest == "z" {
		return dt, 0, true, nil
	}
	if (rest[0] == '+' || rest[0] == '-') && len(rest) == 6 && rest[3] == ':' {
		sign := 1
		if rest[0] == '-' {
			sign = -1
		}
		oh := atoiN(rest[1:3])
		om := atoiN(rest[4:6])
		return dt, sign * (oh*60 + om), true, nil
	}
	return DateTime{}, 0, false, newParseErr(ErrDecode, line, col, source, "malformed offset %q", rest)
}

func atoiN(s string) int {
	n := 0
	for i := 0; i < len(s); i++ {
		n = n*10 + int(s[i]-'0')
	}
	return n
}

func fracToNanos(digits string) int {
	const width = 9
	n := 0
	for i := 0; i < width; i++ {
		n *= 10
		if i < len(digits) {
			n += int(digits[i] - '0')
		}
	}
	return n
}
