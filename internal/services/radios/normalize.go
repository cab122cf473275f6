package radios

import (
	"fmt"
	"strings"

	"github.com/mauiplayer/radio-api/internal/services/radiobrowser"
)

// Defaults applied when a directory record lacks a field
const (
	DefaultTitle    = "Unknown Station"
	DefaultArtist   = "Online Radio"
	DefaultGenre    = "Mixed"
	DefaultBitrate  = 128
	DefaultCoverURL = "https://via.placeholder.com/300?text=Radio"
	StreamDuration  = "∞"
	StreamFormat    = "stream"
)

// Station id prefixes used when the directory omits a uuid
const (
	PrefixSearch        = "radio"
	PrefixTopVoted      = "radio_topvote"
	PrefixRandom        = "radio_random"
	PrefixVariety       = "radio_variety"
	PrefixComprehensive = "radio_comprehensive"
)

// Radio is the station shape returned to clients
type Radio struct {
	StationUUID     string  `json:"stationuuid"`
	CheckUUID       *string `json:"checkuuid"`
	ClickUUID       *string `json:"clickuuid"`
	Title           string  `json:"title"`
	Artist          string  `json:"artist"`
	CountryCode     *string `json:"countrycode"`
	Genre           string  `json:"genre"`
	URL             string  `json:"url"`
	Duration        string  `json:"duration"`
	DurationSeconds int     `json:"durationSeconds"`
	Bitrate         int     `json:"bitrate"`
	Format          string  `json:"format"`
	CoverURL        string  `json:"coverUrl"`
	IsRadio         bool    `json:"isRadio"`
	ClickCount      int     `json:"clickCount"`
	HasCover        bool    `json:"hasCover"`
}

// Normalizer maps directory records to Radio values
type Normalizer struct {
	FallbackCover string
}

// Normalize maps one record. It never fails; missing fields get their defaults.
func (n Normalizer) Normalize(s radiobrowser.RawStation, prefix string, index int) Radio {
	cover := n.FallbackCover
	if cover == "" {
		cover = DefaultCoverURL
	}

	r := Radio{
		StationUUID:     s.StationUUID,
		CheckUUID:       optional(s.CheckUUID),
		ClickUUID:       optional(s.ClickUUID),
		Title:           s.Name,
		Artist:          strings.ToUpper(s.CountryCode),
		CountryCode:     optional(s.CountryCode),
		Genre:           DefaultGenre,
		URL:             s.StreamURL(),
		Duration:        StreamDuration,
		DurationSeconds: 0,
		Bitrate:         s.Bitrate.Or(DefaultBitrate),
		Format:          StreamFormat,
		CoverURL:        s.Favicon,
		IsRadio:         true,
		ClickCount:      s.ClickCount.Or(0),
		HasCover:        strings.TrimSpace(s.Favicon) != "",
	}

	if r.StationUUID == "" {
		r.StationUUID = fmt.Sprintf("%s_%d", prefix, index)
	}
	if r.Title == "" {
		r.Title = DefaultTitle
	}
	if r.Artist == "" {
		r.Artist = DefaultArtist
	}
	if tag, ok := s.Tags.Primary(); ok {
		r.Genre = tag
	}
	if r.CoverURL == "" {
		r.CoverURL = cover
	}

	return r
}

// NormalizeAll maps a list, numbering synthesized ids by position
func (n Normalizer) NormalizeAll(stations []radiobrowser.RawStation, prefix string) []Radio {
	out := make([]Radio, 0, len(stations))
	for i, s := range stations {
		out = append(out, n.Normalize(s, prefix, i))
	}
	return out
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
