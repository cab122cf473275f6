package radios

// ExtendedGenres is the tag list swept by the comprehensive endpoint
var ExtendedGenres = []string{
	// pop and contemporary
	"pop", "indie pop", "synth-pop", "electropop",
	// rock
	"rock", "alternative rock", "indie rock", "classic rock", "hard rock", "punk",
	// electronic and dance
	"electronic", "house", "techno", "trance", "drum and bass", "dubstep", "edm",
	// hip hop and r&b
	"hip hop", "rap", "trap", "grime", "r&b", "soul",
	// latin and reggae
	"latin", "reggae", "reggaeton", "salsa", "bachata", "cumbia", "merengue",
	// jazz and blues
	"jazz", "blues", "funk", "smooth jazz",
	// classical and acoustic
	"classical", "acoustic", "folk", "singer-songwriter",
	// other
	"ambient", "lofi", "chill", "instrumental", "world music", "experimental",
	"metal", "country", "gospel", "news", "talk", "spoken word",
}

// ComprehensiveLanguages are queried for every genre
var ComprehensiveLanguages = []string{"en", "es"}

// DefaultVarietyTags is used when a variety request names no tags
var DefaultVarietyTags = []string{
	"pop", "rock", "jazz", "electronic", "hip hop",
	"latin", "classical", "lofi", "news", "talk",
}
