package radiobrowser

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRawStation_UnmarshalTolerant(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		wantBitrate OptionalInt
		wantClicks  OptionalInt
		wantTags    []string
		wantName    string
	}{
		{
			name:        "numbers and comma tags",
			input:       `{"name":"A","bitrate":192,"clickcount":42,"tags":"rock, indie ,,pop"}`,
			wantBitrate: Int(192),
			wantClicks:  Int(42),
			wantTags:    []string{"rock", "indie", "pop"},
			wantName:    "A",
		},
		{
			name:        "numeric strings and tag array",
			input:       `{"name":"B","bitrate":"320","clickcount":"7","tags":[" ","jazz"]}`,
			wantBitrate: Int(320),
			wantClicks:  Int(7),
			wantTags:    []string{" ", "jazz"},
			wantName:    "B",
		},
		{
			name:  "garbage fields decode as absent",
			input: `{"name":12,"bitrate":"fast","clickcount":{"x":1},"tags":7}`,
		},
		{
			name:        "float bitrate is truncated",
			input:       `{"bitrate":127.9}`,
			wantBitrate: Int(127),
		},
		{
			name:        "bitrate string with a unit",
			input:       `{"bitrate":"128kbps","clickcount":" 12 clicks"}`,
			wantBitrate: Int(128),
			wantClicks:  Int(12),
		},
		{
			name:        "decimal string keeps the integer part",
			input:       `{"bitrate":"96.5"}`,
			wantBitrate: Int(96),
		},
		{
			name:        "exponent string stops at the letter",
			input:       `{"bitrate":"1e3"}`,
			wantBitrate: Int(1),
		},
		{
			name:  "nulls",
			input: `{"bitrate":null,"clickcount":null,"tags":null,"stationuuid":null}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var s RawStation
			require.NoError(t, json.Unmarshal([]byte(tt.input), &s))
			assert.Equal(t, tt.wantBitrate, s.Bitrate)
			assert.Equal(t, tt.wantClicks, s.ClickCount)
			assert.Equal(t, tt.wantTags, s.Tags.Values)
			assert.Equal(t, tt.wantName, s.Name)
		})
	}
}

func TestRawStation_UnmarshalBatch(t *testing.T) {
	var stations []RawStation
	err := json.Unmarshal([]byte(`[{"stationuuid":"x","bitrate":"n/a"},{"stationuuid":"y","bitrate":64}]`), &stations)
	require.NoError(t, err)
	require.Len(t, stations, 2)
	assert.False(t, stations[0].Bitrate.Valid)
	assert.Equal(t, 64, stations[1].Bitrate.Value)

	assert.Error(t, json.Unmarshal([]byte(`{"not":"a list"}`), &stations))
}

func TestTagSet_Primary(t *testing.T) {
	tests := []struct {
		name string
		tags TagSet
		want string
		ok   bool
	}{
		{"empty", TagSet{}, "", false},
		{"blank entries", TagSet{Values: []string{" ", ""}}, "", false},
		{"first non blank is trimmed", TagSet{Values: []string{"  ", " lofi "}}, "lofi", true},
		{"string form", TagSet{Values: []string{"news", "talk"}}, "news", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.tags.Primary()
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.ok, ok)
		})
	}
}

func TestOptionalInt_Or(t *testing.T) {
	assert.Equal(t, 128, OptionalInt{}.Or(128))
	assert.Equal(t, 128, Int(0).Or(128))
	assert.Equal(t, 64, Int(64).Or(128))
}

func TestLeadingInt(t *testing.T) {
	tests := []struct {
		raw  string
		want int
		ok   bool
	}{
		{"", 0, false},
		{"abc", 0, false},
		{"-", 0, false},
		{"128", 128, true},
		{" 128kbps", 128, true},
		{"+7", 7, true},
		{"-12.9", -12, true},
		{"99999999999999999999999", math.MaxInt, true},
		{"-99999999999999999999999", math.MinInt, true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, ok := LeadingInt(tt.raw)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
