package core

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/talentlens/talentlens/schema"
)

// Rating bounds and the default applied when no rating is provided.
const (
	minRating     = 1
	maxRating     = 10
	defaultRating = 5
)

// Analyzer turns interview feedback into an AnalysisResult. It is safe for
// concurrent use; all scoring is pure and the result cache is locked.
type Analyzer struct {
	weights schema.CapabilityScores
	cache   *resultCache
	explain bool
	now     func() time.Time
}

// Option configures an Analyzer.
type Option func(*Analyzer)

// WithDimensionWeights overrides the default per-dimension weights used for
// the overall impression. Missing dimensions keep their default weight.
func WithDimensionWeights(overrides map[schema.Dimension]float64) Option {
	return func(a *Analyzer) {
		for dim, w := range overrides {
			a.weights[dim] = w
		}
	}
}

// WithCacheTTL sets how long identical inputs are served from cache.
// A zero or negative TTL disables caching.
func WithCacheTTL(ttl time.Duration) Option {
	return func(a *Analyzer) {
		if ttl > 0 {
			a.cache = newResultCache(ttl)
		} else {
			a.cache = nil
		}
	}
}

// WithExplain attaches the per-dimension score breakdown to every result.
func WithExplain() Option {
	return func(a *Analyzer) { a.explain = true }
}

// WithClock overrides the time source. Used by tests.
func WithClock(now func() time.Time) Option {
	return func(a *Analyzer) { a.now = now }
}

// NewAnalyzer builds an Analyzer with default weights and no cache.
func NewAnalyzer(opts ...Option) *Analyzer {
	a := &Analyzer{
		weights: schema.GetDefaultDimensionWeights(),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Analyze runs the full pipeline over one feedback envelope. It never fails
// on content; an error means the envelope itself is unusable (nil feedback)
// or the context is done.
func (a *Analyzer) Analyze(ctx context.Context, env *schema.FeedbackEnvelope) (*schema.AnalysisResult, error) {
	if env == nil {
		return nil, fmt.Errorf("analyze: nil envelope")
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("analyze: %w", err)
	}

	feedback := normalizeFeedback(env.Feedback)

	if a.cache != nil {
		if cached, ok := a.cache.get(&feedback, &env.Candidate); ok {
			cached.ID = uuid.NewString()
			cached.GeneratedAt = a.now()
			return cached, nil
		}
	}

	result := a.analyze(&feedback, env.Candidate)
	result.ID = uuid.NewString()
	result.GeneratedAt = a.now()

	if a.cache != nil {
		a.cache.put(&feedback, &env.Candidate, result)
	}
	return result, nil
}

// ProcessNotes analyzes free-form notes with no rating or vote attached.
// The rating defaults and the vote is recorded as needing review.
func (a *Analyzer) ProcessNotes(ctx context.Context, notes string, candidate schema.CandidateProfile) (*schema.AnalysisResult, error) {
	return a.Analyze(ctx, &schema.FeedbackEnvelope{
		Feedback: schema.FeedbackInput{
			Rating:         defaultRating,
			Notes:          notes,
			Recommendation: schema.VoteReview,
		},
		Candidate: candidate,
	})
}

// analyze is the pure pipeline body. Identical inputs always produce
// identical results apart from ID and GeneratedAt, which Analyze stamps.
func (a *Analyzer) analyze(feedback *schema.FeedbackInput, candidate schema.CandidateProfile) *schema.AnalysisResult {
	text := assembleText(feedback)
	sentiment := scoreSentiment(text)
	skills := detectSkills(text)
	jobCtx := classifyJobContext(candidate.JobTitle)

	scores, breakdown := scoreDimensions(dimensionInputs{
		text:      text,
		rating:    feedback.Rating,
		sentiment: sentiment,
		skills:    skills,
		jobCtx:    jobCtx,
		jobTitle:  candidate.JobTitle,
	}, a.weights)

	in := insightInputs{
		feedback:  feedback,
		candidate: candidate,
		text:      text,
		sentiment: sentiment,
		skills:    skills,
		jobCtx:    jobCtx,
		scores:    scores,
	}

	result := &schema.AnalysisResult{
		CandidateID:      candidate.ID,
		CandidateName:    candidate.Name,
		Scores:           scores,
		Sentiment:        sentiment,
		Skills:           skills,
		Context:          jobCtx,
		Insights:         generateInsights(in),
		Recommendations:  generateRecommendations(in),
		RiskFactors:      detectRiskFactors(in),
		ExecutiveSummary: buildExecutiveSummary(in),
		ConfidenceScore:  scoreConfidence(in),
	}
	if a.explain {
		result.Breakdown = breakdown
	}
	return result
}

// normalizeFeedback applies the rating default and clamp and the vote
// default without touching the caller's copy.
func normalizeFeedback(f schema.FeedbackInput) schema.FeedbackInput {
	if f.Rating == 0 {
		f.Rating = defaultRating
	}
	if f.Rating < minRating {
		f.Rating = minRating
	}
	if f.Rating > maxRating {
		f.Rating = maxRating
	}
	f.Recommendation = schema.NormalizeVote(f.Recommendation)
	return f
}
