// Package schema has configs, models and shared constants for all parts of talentlens.
package schema

// QuestionResponse is a single structured question/answer pair captured
// during an interview.
type QuestionResponse struct {
	Question string `json:"question"`
	Response string `json:"response"`
}

// FeedbackInput is the raw interview feedback supplied by a caller.
// It is treated as immutable for the duration of an analysis.
type FeedbackInput struct {
	Rating            int                `json:"rating"`         // 1-10 scale; 0 means "not provided" and defaults to 5
	Notes             string             `json:"notes"`          // Free-text interview notes
	Strengths         string             `json:"strengths"`      // Free-text strengths summary
	Concerns          string             `json:"concerns"`       // Free-text concerns summary
	Recommendation    RecommendationVote `json:"recommendation"` // Interviewer's own verdict
	QuestionResponses []QuestionResponse `json:"question_responses,omitempty"`
}

// CandidateProfile identifies the candidate under evaluation. It is used for
// text context and labeling only; the analyzer never mutates it.
type CandidateProfile struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	JobTitle string `json:"job_title"`
	Company  string `json:"company"`
}

// FeedbackEnvelope pairs feedback with its candidate. This is the on-disk
// shape consumed by the analyze and batch commands and the HTTP API.
type FeedbackEnvelope struct {
	Feedback  FeedbackInput    `json:"feedback"`
	Candidate CandidateProfile `json:"candidate"`
}
