package radios

import (
	"math/rand"

	"github.com/mauiplayer/radio-api/internal/services/radiobrowser"
)

// MaxLimit is the largest number of stations any endpoint returns
const MaxLimit = 1024

// Dedupe drops records without a stream URL and records whose key (uuid, else
// stream URL) was already seen. Survivors keep their order and have both URL
// fields set to the stream URL.
func Dedupe(stations []radiobrowser.RawStation) []radiobrowser.RawStation {
	seen := make(map[string]struct{}, len(stations))
	unique := make([]radiobrowser.RawStation, 0, len(stations))

	for _, s := range stations {
		stream := s.StreamURL()
		if stream == "" {
			continue
		}

		key := s.StationUUID
		if key == "" {
			key = stream
		}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}

		s.URL = stream
		s.URLResolved = stream
		unique = append(unique, s)
	}

	return unique
}

// FilterByBitrate keeps stations at or above threshold. When nothing qualifies
// the threshold is relaxed to 192 and then 128, never raised. The second
// result is the threshold that was applied.
func FilterByBitrate(stations []radiobrowser.RawStation, threshold int) ([]radiobrowser.RawStation, int) {
	filtered := atLeast(stations, threshold)
	if len(filtered) > 0 {
		return filtered, threshold
	}

	for _, stage := range []int{192, 128} {
		if threshold > stage {
			if relaxed := atLeast(stations, stage); len(relaxed) > 0 {
				return relaxed, stage
			}
		}
	}

	return filtered, threshold
}

func atLeast(stations []radiobrowser.RawStation, min int) []radiobrowser.RawStation {
	out := make([]radiobrowser.RawStation, 0, len(stations))
	for _, s := range stations {
		if s.Bitrate.Or(0) >= min {
			out = append(out, s)
		}
	}
	return out
}

// Shuffle permutes stations in place (Fisher-Yates) and returns them
func Shuffle(stations []radiobrowser.RawStation, rnd *rand.Rand) []radiobrowser.RawStation {
	for i := len(stations) - 1; i > 0; i-- {
		j := rnd.Intn(i + 1)
		stations[i], stations[j] = stations[j], stations[i]
	}
	return stations
}

// ClampLimit parses a limit parameter. Missing, non-numeric or non-positive
// values yield def; anything above MaxLimit is capped.
func ClampLimit(raw string, def int) int {
	n, ok := radiobrowser.LeadingInt(raw)
	if !ok || n <= 0 {
		return def
	}
	if n > MaxLimit {
		return MaxLimit
	}
	return n
}

// Truncate returns at most n stations
func Truncate(stations []radiobrowser.RawStation, n int) []radiobrowser.RawStation {
	if n < 0 {
		n = 0
	}
	if len(stations) <= n {
		return stations
	}
	return stations[:n]
}
