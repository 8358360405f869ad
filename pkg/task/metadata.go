package task

import (
	"encoding/json"
	"fmt"
)

// EncodeMetadata serializes a metadata value to the JSON string sent on the
// wire. A nil value encodes to "". Values json cannot represent fall back to
// their fmt rendering.
func EncodeMetadata(m any) string {
	if m == nil {
		return ""
	}
	b, err := json.Marshal(m)
	if err != nil {
		return fmt.Sprint(m)
	}
	return string(b)
}

// DecodeMetadata parses a metadata string received from the server. An empty
// string decodes to nil; a string that is not valid JSON is returned as is.
func DecodeMetadata(s string) any {
	if s == "" {
		return nil
	}
	var v any
	if err := json.Unmarshal([]byte(s), &v); err != nil {
		return s
	}
	return v
}
