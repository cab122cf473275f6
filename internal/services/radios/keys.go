package radios

import (
	"fmt"
	"strings"
)

// Cache key builders. Keys are derived from the operation and its normalized
// parameters so that equivalent requests share an entry.

func searchKey(by, term string, limit int) string {
	return fmt.Sprintf("search:%s:%s:%d", by, term, limit)
}

func topVotedKey(limit int) string {
	return fmt.Sprintf("topvoted:%d", limit)
}

func randomKey(limit int) string {
	return fmt.Sprintf("random:%d", limit)
}

func varietyKey(tags []string, limit int) string {
	return fmt.Sprintf("variety:%s:%d", strings.Join(tags, "|"), limit)
}

func comprehensiveKey(limit int) string {
	return fmt.Sprintf("comprehensive:%d", limit)
}

// termKey identifies one fan-out fetch
func termKey(by, term, language string, limit int) string {
	return fmt.Sprintf("term:%s:%s:%s:%d", by, term, language, limit)
}
