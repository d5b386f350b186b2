package core

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"maps"
	"slices"
	"sync"
	"time"

	"github.com/talentlens/talentlens/schema"
)

// resultCache memoizes analysis results by input hash for a bounded TTL.
// Entries are evicted lazily on lookup.
type resultCache struct {
	mu      sync.Mutex
	ttl     time.Duration
	entries map[string]cacheEntry
}

type cacheEntry struct {
	result   *schema.AnalysisResult
	storedAt time.Time
}

func newResultCache(ttl time.Duration) *resultCache {
	return &resultCache{
		ttl:     ttl,
		entries: make(map[string]cacheEntry),
	}
}

// cacheKey hashes the normalized feedback and candidate into a hex digest.
// JSON encoding of the two structs is canonical here because their fields
// are fixed-order and contain no maps.
func cacheKey(feedback *schema.FeedbackInput, candidate *schema.CandidateProfile) string {
	h := sha256.New()
	_ = json.NewEncoder(h).Encode(feedback)
	_ = json.NewEncoder(h).Encode(candidate)
	return hex.EncodeToString(h.Sum(nil))
}

// get returns a deep copy of the cached result, so callers can stamp a fresh
// ID and timestamp without corrupting the cached entry.
func (c *resultCache) get(feedback *schema.FeedbackInput, candidate *schema.CandidateProfile) (*schema.AnalysisResult, bool) {
	key := cacheKey(feedback, candidate)

	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	if time.Since(entry.storedAt) > c.ttl {
		delete(c.entries, key)
		return nil, false
	}
	return copyResult(entry.result), true
}

func (c *resultCache) put(feedback *schema.FeedbackInput, candidate *schema.CandidateProfile, result *schema.AnalysisResult) {
	key := cacheKey(feedback, candidate)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = cacheEntry{result: copyResult(result), storedAt: time.Now()}
}

// copyResult clones every mutable container in the result. Leaf values
// inside insight data maps are treated as immutable and shared.
func copyResult(r *schema.AnalysisResult) *schema.AnalysisResult {
	out := *r
	out.Scores = maps.Clone(r.Scores)
	out.Skills = slices.Clone(r.Skills)
	out.RiskFactors = slices.Clone(r.RiskFactors)

	out.Insights = slices.Clone(r.Insights)
	for i := range out.Insights {
		out.Insights[i].Data = maps.Clone(out.Insights[i].Data)
	}

	out.Recommendations = slices.Clone(r.Recommendations)
	for i := range out.Recommendations {
		out.Recommendations[i].ActionItems = slices.Clone(out.Recommendations[i].ActionItems)
	}

	if r.Breakdown != nil {
		out.Breakdown = make(map[schema.Dimension]map[string]float64, len(r.Breakdown))
		for dim, parts := range r.Breakdown {
			out.Breakdown[dim] = maps.Clone(parts)
		}
	}
	return &out
}
