package dbx

import "fmt"

// AsString coerces a scanned database value to its string form. Drivers
// return identifiers as string, []byte, or integer types depending on the
// column; the core keys everything by string identifiers.
func AsString(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case []byte:
		return string(val)
	default:
		return fmt.Sprint(val)
	}
}
