package logging

import (
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/golang/geo/r3"
)

// attrString renders a value without quoting. Used for the component label.
func attrString(v slog.Value) string {
	v = v.Resolve()
	if v.Kind() == slog.KindString {
		return v.String()
	}
	return plainValue(v)
}

// formatValue renders a value for a "key: value" console line, quoting
// anything that would otherwise be ambiguous.
func formatValue(v slog.Value) string {
	v = v.Resolve()
	switch v.Kind() {
	case slog.KindString:
		return quoteIfNeeded(v.String())
	case slog.KindAny:
		if vec, ok := vectorOf(v.Any()); ok {
			return formatVector(vec)
		}
		return quoteIfNeeded(plainValue(v))
	default:
		return plainValue(v)
	}
}

func plainValue(v slog.Value) string {
	switch v.Kind() {
	case slog.KindBool:
		return strconv.FormatBool(v.Bool())
	case slog.KindInt64:
		return strconv.FormatInt(v.Int64(), 10)
	case slog.KindUint64:
		return strconv.FormatUint(v.Uint64(), 10)
	case slog.KindFloat64:
		return formatFloat(v.Float64())
	case slog.KindDuration:
		return v.Duration().Round(time.Microsecond).String()
	case slog.KindTime:
		return formatTimestamp(v.Time())
	case slog.KindAny:
		switch x := v.Any().(type) {
		case error:
			return x.Error()
		case r3.Vector:
			return formatVector(x)
		case *r3.Vector:
			if x != nil {
				return formatVector(*x)
			}
		}
		return fmt.Sprint(v.Any())
	default:
		return v.String()
	}
}

func vectorOf(a any) (r3.Vector, bool) {
	switch x := a.(type) {
	case r3.Vector:
		return x, true
	case *r3.Vector:
		if x != nil {
			return *x, true
		}
	}
	return r3.Vector{}, false
}

// formatVector prints the shortest exact form of each component, unlike
// r3.Vector.String which pads to 24 decimals.
func formatVector(v r3.Vector) string {
	return "(" + formatFloat(v.X) + ", " + formatFloat(v.Y) + ", " + formatFloat(v.Z) + ")"
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func quoteIfNeeded(s string) string {
	if s == "" {
		return `""`
	}
	for _, r := range s {
		if r <= ' ' || r == '=' || r == '"' {
			return strconv.Quote(s)
		}
	}
	return s
}
