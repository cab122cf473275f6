package radiobrowser

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// RawStation is a station record as returned by the radio-browser directory.
// Decoding is tolerant: malformed optional fields decode as absent instead of failing the batch.
type RawStation struct {
	StationUUID string      `json:"stationuuid,omitempty"`
	CheckUUID   string      `json:"checkuuid,omitempty"`
	ClickUUID   string      `json:"clickuuid,omitempty"`
	Name        string      `json:"name,omitempty"`
	CountryCode string      `json:"countrycode,omitempty"`
	Language    string      `json:"language,omitempty"`
	Tags        TagSet      `json:"tags"`
	URLResolved string      `json:"url_resolved,omitempty"`
	URL         string      `json:"url,omitempty"`
	Bitrate     OptionalInt `json:"bitrate"`
	ClickCount  OptionalInt `json:"clickcount"`
	Favicon     string      `json:"favicon,omitempty"`
}

// StreamURL returns the resolved stream URL, falling back to the raw URL
func (s RawStation) StreamURL() string {
	if s.URLResolved != "" {
		return s.URLResolved
	}
	return s.URL
}

// UnmarshalJSON decodes a station, ignoring fields whose type doesn't match
func (s *RawStation) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}

	*s = RawStation{
		StationUUID: decodeString(fields["stationuuid"]),
		CheckUUID:   decodeString(fields["checkuuid"]),
		ClickUUID:   decodeString(fields["clickuuid"]),
		Name:        decodeString(fields["name"]),
		CountryCode: decodeString(fields["countrycode"]),
		Language:    decodeString(fields["language"]),
		URLResolved: decodeString(fields["url_resolved"]),
		URL:         decodeString(fields["url"]),
		Favicon:     decodeString(fields["favicon"]),
	}
	_ = s.Tags.UnmarshalJSON(fields["tags"])
	_ = s.Bitrate.UnmarshalJSON(fields["bitrate"])
	_ = s.ClickCount.UnmarshalJSON(fields["clickcount"])

	return nil
}

func decodeString(raw json.RawMessage) string {
	var v string
	if len(raw) == 0 || json.Unmarshal(raw, &v) != nil {
		return ""
	}
	return v
}

// TagSet holds station tags. The directory sends a comma separated string,
// some mirrors and fixtures send a JSON array.
type TagSet struct {
	Values []string
}

// Primary returns the first tag with non-blank content
func (t TagSet) Primary() (string, bool) {
	for _, v := range t.Values {
		if v = strings.TrimSpace(v); v != "" {
			return v, true
		}
	}
	return "", false
}

// UnmarshalJSON accepts a string or an array of strings; anything else leaves the set empty
func (t *TagSet) UnmarshalJSON(data []byte) error {
	*t = TagSet{}
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}

	var list []json.RawMessage
	if err := json.Unmarshal(data, &list); err == nil {
		for _, item := range list {
			var s string
			if json.Unmarshal(item, &s) == nil {
				t.Values = append(t.Values, s)
			}
		}
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return nil
	}
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			t.Values = append(t.Values, part)
		}
	}
	return nil
}

// OptionalInt is an integer that may be missing or unparseable in the source document
type OptionalInt struct {
	Value int
	Valid bool
}

// Int returns a valid OptionalInt
func Int(v int) OptionalInt {
	return OptionalInt{Value: v, Valid: true}
}

// Or returns the value when present and non-zero, otherwise def
func (o OptionalInt) Or(def int) int {
	if !o.Valid || o.Value == 0 {
		return def
	}
	return o.Value
}

// UnmarshalJSON accepts a JSON number (truncated) or a string starting with
// an integer ("128kbps" is 128)
func (o *OptionalInt) UnmarshalJSON(data []byte) error {
	*o = OptionalInt{}
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err == nil {
			if i, ok := LeadingInt(s); ok {
				*o = Int(i)
			}
		}
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return nil
	}
	if i, err := n.Int64(); err == nil && i >= math.MinInt && i <= math.MaxInt {
		*o = Int(int(i))
	} else if f, err := n.Float64(); err == nil && math.Abs(f) < math.MaxInt32 {
		*o = Int(int(f))
	}
	return nil
}

// LeadingInt parses an optional sign and the digits that follow, ignoring
// surrounding blanks and trailing text ("25abc" is 25). Values that overflow
// saturate at the int range.
func LeadingInt(raw string) (int, bool) {
	s := strings.TrimSpace(raw)
	end := 0
	if end < len(s) && (s[end] == '-' || s[end] == '+') {
		end++
	}
	start := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == start {
		return 0, false
	}

	n, err := strconv.Atoi(s[:end])
	if err != nil {
		if s[0] == '-' {
			return math.MinInt, true
		}
		return math.MaxInt, true
	}
	return n, true
}
