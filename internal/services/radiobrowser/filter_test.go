package radiobrowser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilter_PathAndQuery(t *testing.T) {
	tests := []struct {
		name      string
		filter    Filter
		wantPath  string
		wantQuery string
	}{
		{
			name:      "no mode lists stations",
			filter:    Filter{Limit: 20, HideBroken: true},
			wantPath:  "/json/stations",
			wantQuery: "hidebroken=true&limit=20",
		},
		{
			name:      "ordering mode",
			filter:    Filter{By: ByTopVote, Limit: 40, HideBroken: true},
			wantPath:  "/json/stations/topvote",
			wantQuery: "hidebroken=true&limit=40",
		},
		{
			name:     "ordering mode ignores search term and language",
			filter:   Filter{By: "TopClick", SearchTerm: "x", Language: "en"},
			wantPath: "/json/stations/topclick",
		},
		{
			name:      "search by tag with offset",
			filter:    Filter{By: ByTag, SearchTerm: "drum and bass", Limit: 6, Offset: 42},
			wantPath:  "/json/stations/bytag/drum%20and%20bass",
			wantQuery: "limit=6&offset=42",
		},
		{
			name:     "search term with reserved characters",
			filter:   Filter{By: ByTag, SearchTerm: "r&b/soul"},
			wantPath: "/json/stations/bytag/r&b%2Fsoul",
		},
		{
			name:      "search with language uses advanced search",
			filter:    Filter{By: ByTag, SearchTerm: "salsa", Language: "es", Limit: 22, HideBroken: true},
			wantPath:  "/json/stations/search",
			wantQuery: "hidebroken=true&language=es&limit=22&tag=salsa",
		},
		{
			name:     "search by name",
			filter:   Filter{By: ByName, SearchTerm: "BBC"},
			wantPath: "/json/stations/byname/BBC",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantPath, tt.filter.Path())
			assert.Equal(t, tt.wantQuery, tt.filter.Query().Encode())
		})
	}
}

func TestFilter_String(t *testing.T) {
	assert.Equal(t, "/json/stations/topvote?limit=5", Filter{By: ByTopVote, Limit: 5}.String())
	assert.Equal(t, "/json/stations", Filter{}.String())
}
