package radios

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/mauiplayer/radio-api/internal/logging"
	"github.com/mauiplayer/radio-api/internal/services/radiobrowser"
)

// ErrAllFetchesFailed is returned when every task of a fan-out failed
var ErrAllFetchesFailed = errors.New("all station fetches failed")

// Endpoint names, used for logging and metrics labels
const (
	EndpointSearch        = "search"
	EndpointTopVoted      = "topvoted"
	EndpointRandom        = "random"
	EndpointVariety       = "variety"
	EndpointComprehensive = "comprehensive"
)

// Default limits per endpoint
const (
	DefaultSearchLimit        = 20
	DefaultTopVotedLimit      = 20
	DefaultRandomLimit        = 10
	DefaultVarietyLimit       = 50
	DefaultComprehensiveLimit = MaxLimit
	DefaultSearchTerm         = "jazz"
	DefaultSearchBy           = radiobrowser.ByTag
	DefaultMinBitrate         = 192
	DefaultMaxConcurrency     = 8
	DefaultRequestTimeout     = 45 * time.Second
)

// Directory fetches raw stations for a filter
type Directory interface {
	Fetch(ctx context.Context, f radiobrowser.Filter) ([]radiobrowser.RawStation, error)
}

// Recorder receives service level measurements
type Recorder interface {
	CacheLookup(hit bool)
	PartialFailure(endpoint string)
	StationsServed(endpoint string, n int)
}

// MinBitrate holds the starting bitrate threshold of each endpoint
type MinBitrate struct {
	Search        int
	TopVoted      int
	Random        int
	Variety       int
	Comprehensive int
}

// Config holds configuration for the aggregation service
type Config struct {
	MaxConcurrency int
	RequestTimeout time.Duration // bounds all directory work of one call
	MinBitrate     MinBitrate
	VarietyTags    []string
	FallbackCover  string
	Rand           *rand.Rand
	Recorder       Recorder
}

// SearchParams are the inputs of a single-term search
type SearchParams struct {
	SearchTerm string
	By         string
	Limit      int
}

// VarietyParams are the inputs of a variety mix
type VarietyParams struct {
	Tags  []string
	Limit int
}

// Service aggregates directory results into cleaned station lists
type Service struct {
	directory      Directory
	cache          *Cache
	normalizer     Normalizer
	minBitrate     MinBitrate
	varietyTags    []string
	maxConcurrency int
	requestTimeout time.Duration
	recorder       Recorder
	logger         zerolog.Logger

	rndMu sync.Mutex
	rnd   *rand.Rand
}

// NewService creates a new aggregation service
func NewService(directory Directory, cache *Cache, cfg Config) *Service {
	if cache == nil {
		cache = NewCache(DefaultCacheTTL, nil)
	}
	if cfg.MaxConcurrency <= 0 {
		cfg.MaxConcurrency = DefaultMaxConcurrency
	}
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = DefaultRequestTimeout
	}
	if cfg.Rand == nil {
		cfg.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if cfg.Recorder == nil {
		cfg.Recorder = noopRecorder{}
	}
	tags := cleanTags(cfg.VarietyTags)
	if len(tags) == 0 {
		tags = DefaultVarietyTags
	}

	return &Service{
		directory:      directory,
		cache:          cache,
		normalizer:     Normalizer{FallbackCover: cfg.FallbackCover},
		minBitrate:     withDefaultBitrates(cfg.MinBitrate),
		varietyTags:    tags,
		maxConcurrency: cfg.MaxConcurrency,
		requestTimeout: cfg.RequestTimeout,
		recorder:       cfg.Recorder,
		logger:         logging.Component("radios"),
		rnd:            cfg.Rand,
	}
}

// Search returns stations matching a single term, in directory order
func (s *Service) Search(ctx context.Context, p SearchParams) ([]Radio, error) {
	limit := normalizeLimit(p.Limit, DefaultSearchLimit)
	term := p.SearchTerm
	if term == "" {
		term = DefaultSearchTerm
	}
	by := p.By
	if by == "" {
		by = DefaultSearchBy
	}

	return s.single(ctx, singleRequest{
		endpoint:   EndpointSearch,
		key:        searchKey(by, term, limit),
		filter:     radiobrowser.Filter{SearchTerm: term, By: by, Limit: fetchLimit(limit), HideBroken: true},
		minBitrate: s.minBitrate.Search,
		limit:      limit,
		prefix:     PrefixSearch,
	})
}

// TopVoted returns the directory's most voted stations
func (s *Service) TopVoted(ctx context.Context, limit int) ([]Radio, error) {
	limit = normalizeLimit(limit, DefaultTopVotedLimit)

	return s.single(ctx, singleRequest{
		endpoint:   EndpointTopVoted,
		key:        topVotedKey(limit),
		filter:     radiobrowser.Filter{By: radiobrowser.ByTopVote, Limit: fetchLimit(limit), HideBroken: true},
		minBitrate: s.minBitrate.TopVoted,
		limit:      limit,
		prefix:     PrefixTopVoted,
	})
}

// Random returns an unordered directory page, shuffled
func (s *Service) Random(ctx context.Context, limit int) ([]Radio, error) {
	limit = normalizeLimit(limit, DefaultRandomLimit)

	return s.single(ctx, singleRequest{
		endpoint:   EndpointRandom,
		key:        randomKey(limit),
		filter:     radiobrowser.Filter{Limit: fetchLimit(limit), HideBroken: true},
		minBitrate: s.minBitrate.Random,
		limit:      limit,
		shuffle:    true,
		prefix:     PrefixRandom,
	})
}

// Variety mixes stations from several tags with the top voted list
func (s *Service) Variety(ctx context.Context, p VarietyParams) ([]Radio, error) {
	limit := normalizeLimit(p.Limit, DefaultVarietyLimit)
	tags := cleanTags(p.Tags)
	if len(tags) == 0 {
		tags = s.varietyTags
	}

	key := varietyKey(tags, limit)
	if stations, ok := s.cached(key); ok {
		s.logger.Debug().Str("key", key).Msg("Using cached variety stations")
		return s.respond(EndpointVariety, stations, PrefixVariety), nil
	}

	perTag := max(3, ceilDiv(limit, len(tags)))
	perTagFetch := min(MaxLimit, perTag*2)

	tasks := make([]fetchTask, 0, len(tags)+1)
	for _, tag := range tags {
		tasks = append(tasks, fetchTask{
			filter: radiobrowser.Filter{
				SearchTerm: tag,
				By:         radiobrowser.ByTag,
				Limit:      perTagFetch,
				Offset:     s.intn(100),
				HideBroken: true,
			},
		})
	}
	tasks = append(tasks, fetchTask{
		filter: radiobrowser.Filter{By: radiobrowser.ByTopVote, Limit: min(10, limit), HideBroken: true},
	})

	s.logger.Info().
		Int("limit", limit).
		Strs("tags", tags).
		Int("per_tag", perTag).
		Int("fetch_per_tag", perTagFetch).
		Msg("Fetching variety mix")

	merged, err := s.fanOut(ctx, EndpointVariety, tasks)
	if err != nil {
		return nil, err
	}

	stations := s.finish(EndpointVariety, merged, s.minBitrate.Variety, limit)
	s.cache.Set(key, stations)
	return s.respond(EndpointVariety, stations, PrefixVariety), nil
}

// Comprehensive sweeps every extended genre in every supported language
func (s *Service) Comprehensive(ctx context.Context, limit int) ([]Radio, error) {
	limit = normalizeLimit(limit, DefaultComprehensiveLimit)

	key := comprehensiveKey(limit)
	if stations, ok := s.cached(key); ok {
		s.logger.Debug().Str("key", key).Msg("Using cached comprehensive stations")
		return s.respond(EndpointComprehensive, stations, PrefixComprehensive), nil
	}

	perGenre := max(10, ceilDiv(limit, len(ExtendedGenres)))

	tasks := make([]fetchTask, 0, len(ExtendedGenres)*len(ComprehensiveLanguages))
	for _, genre := range ExtendedGenres {
		for _, lang := range ComprehensiveLanguages {
			tasks = append(tasks, fetchTask{
				filter: radiobrowser.Filter{
					SearchTerm: genre,
					By:         radiobrowser.ByTag,
					Limit:      perGenre,
					Language:   lang,
					HideBroken: true,
				},
			})
		}
	}

	s.logger.Info().
		Int("limit", limit).
		Int("genres", len(ExtendedGenres)).
		Strs("languages", ComprehensiveLanguages).
		Int("per_genre", perGenre).
		Msg("Fetching comprehensive mix")

	merged, err := s.fanOut(ctx, EndpointComprehensive, tasks)
	if err != nil {
		return nil, err
	}

	stations := s.finish(EndpointComprehensive, merged, s.minBitrate.Comprehensive, limit)
	s.cache.Set(key, stations)
	return s.respond(EndpointComprehensive, stations, PrefixComprehensive), nil
}

type singleRequest struct {
	endpoint   string
	key        string
	filter     radiobrowser.Filter
	minBitrate int
	limit      int
	shuffle    bool
	prefix     string
}

func (s *Service) single(ctx context.Context, req singleRequest) ([]Radio, error) {
	if stations, ok := s.cached(req.key); ok {
		s.logger.Debug().Str("key", req.key).Msg("Using cached stations")
		return s.respond(req.endpoint, stations, req.prefix), nil
	}

	s.logger.Info().
		Str("endpoint", req.endpoint).
		Str("query", req.filter.String()).
		Int("limit", req.limit).
		Msg("Fetching stations")

	ctx, cancel := context.WithTimeout(ctx, s.requestTimeout)
	defer cancel()

	fetched, err := s.directory.Fetch(ctx, req.filter)
	if err != nil {
		return nil, fmt.Errorf("fetching %s stations: %w", req.endpoint, err)
	}

	stations := s.filterBitrate(req.endpoint, Dedupe(fetched), req.minBitrate)
	if req.shuffle {
		stations = s.shuffle(stations)
	}
	stations = Truncate(stations, req.limit)

	s.cache.Set(req.key, stations)
	return s.respond(req.endpoint, stations, req.prefix), nil
}

type fetchTask struct {
	filter radiobrowser.Filter
}

func (t fetchTask) key() string {
	f := t.filter
	return termKey(f.By, f.SearchTerm, f.Language, f.Limit)
}

// fanOut runs the tasks with bounded concurrency. A failed task is logged and
// contributes nothing; only a fan-out where every task failed is an error.
// Tasks still pending when the request timeout passes are abandoned and the
// stations fetched so far are returned. Results are concatenated in task order.
func (s *Service) fanOut(ctx context.Context, endpoint string, tasks []fetchTask) ([]radiobrowser.RawStation, error) {
	ctx, cancel := context.WithTimeout(ctx, s.requestTimeout)
	defer cancel()

	results := make([][]radiobrowser.RawStation, len(tasks))

	var (
		mu        sync.Mutex
		failures  int
		abandoned int
		lastErr   error
	)

	var g errgroup.Group
	g.SetLimit(s.maxConcurrency)

	for i, task := range tasks {
		g.Go(func() error {
			stations, err := s.fetchTerm(ctx, task)
			if err != nil {
				mu.Lock()
				failures++
				lastErr = err
				expired := ctx.Err() != nil
				if expired {
					abandoned++
				}
				mu.Unlock()

				s.recorder.PartialFailure(endpoint)
				if expired {
					return nil
				}
				s.logger.Warn().
					Err(err).
					Str("endpoint", endpoint).
					Str("term", task.filter.SearchTerm).
					Str("by", task.filter.By).
					Str("language", task.filter.Language).
					Msg("PartialFetchFailure")
				return nil
			}
			results[i] = stations
			return nil
		})
	}
	_ = g.Wait()

	if abandoned > 0 {
		s.logger.Warn().
			Err(ctx.Err()).
			Str("endpoint", endpoint).
			Int("tasks", len(tasks)).
			Int("abandoned", abandoned).
			Dur("timeout", s.requestTimeout).
			Msg("Fan-out cut short")
	}

	if len(tasks) > 0 && failures == len(tasks) {
		return nil, fmt.Errorf("%w (%d tasks): %w", ErrAllFetchesFailed, failures, lastErr)
	}

	var merged []radiobrowser.RawStation
	for _, r := range results {
		merged = append(merged, r...)
	}

	s.logger.Debug().
		Str("endpoint", endpoint).
		Int("tasks", len(tasks)).
		Int("failed", failures).
		Int("stations", len(merged)).
		Msg("Fan-out complete")

	return merged, nil
}

func (s *Service) fetchTerm(ctx context.Context, task fetchTask) ([]radiobrowser.RawStation, error) {
	key := task.key()
	if stations, ok := s.cached(key); ok {
		return stations, nil
	}

	stations, err := s.directory.Fetch(ctx, task.filter)
	if err != nil {
		return nil, err
	}
	s.cache.Set(key, stations)
	return stations, nil
}

// finish runs the multi-term pipeline: dedupe, filter, shuffle, truncate
func (s *Service) finish(endpoint string, merged []radiobrowser.RawStation, minBitrate, limit int) []radiobrowser.RawStation {
	pool := s.filterBitrate(endpoint, Dedupe(merged), minBitrate)
	return Truncate(s.shuffle(pool), limit)
}

func (s *Service) filterBitrate(endpoint string, stations []radiobrowser.RawStation, minBitrate int) []radiobrowser.RawStation {
	filtered, applied := FilterByBitrate(stations, minBitrate)
	if applied != minBitrate {
		s.logger.Debug().
			Str("endpoint", endpoint).
			Int("min_bitrate", minBitrate).
			Int("applied", applied).
			Int("stations", len(filtered)).
			Msg("Relaxed bitrate filter")
	}
	return filtered
}

func (s *Service) cached(key string) ([]radiobrowser.RawStation, bool) {
	stations, ok := s.cache.Get(key)
	s.recorder.CacheLookup(ok)
	return stations, ok
}

func (s *Service) respond(endpoint string, stations []radiobrowser.RawStation, prefix string) []Radio {
	radios := s.normalizer.NormalizeAll(stations, prefix)
	s.recorder.StationsServed(endpoint, len(radios))
	return radios
}

func (s *Service) shuffle(stations []radiobrowser.RawStation) []radiobrowser.RawStation {
	s.rndMu.Lock()
	defer s.rndMu.Unlock()
	return Shuffle(stations, s.rnd)
}

func (s *Service) intn(n int) int {
	s.rndMu.Lock()
	defer s.rndMu.Unlock()
	return s.rnd.Intn(n)
}

// fetchLimit over-fetches so filtering still leaves enough stations
func fetchLimit(limit int) int {
	return min(MaxLimit, limit*2)
}

func normalizeLimit(limit, def int) int {
	if limit <= 0 {
		return def
	}
	return min(limit, MaxLimit)
}

func ceilDiv(a, b int) int {
	if b <= 0 {
		return a
	}
	return (a + b - 1) / b
}

func cleanTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		if t = strings.TrimSpace(t); t != "" {
			out = append(out, t)
		}
	}
	return out
}

func withDefaultBitrates(m MinBitrate) MinBitrate {
	for _, v := range []*int{&m.Search, &m.TopVoted, &m.Random, &m.Variety, &m.Comprehensive} {
		if *v <= 0 {
			*v = DefaultMinBitrate
		}
	}
	return m
}

type noopRecorder struct{}

func (noopRecorder) CacheLookup(bool)           {}
func (noopRecorder) PartialFailure(string)      {}
func (noopRecorder) StationsServed(string, int) {}
