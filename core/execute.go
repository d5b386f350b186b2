package core

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/talentlens/talentlens/internal/contract"
	"github.com/talentlens/talentlens/internal/outwriter"
	"github.com/talentlens/talentlens/schema"
)

// ExecutorFunc defines the function signature for executing different analysis modes.
type ExecutorFunc func(ctx context.Context, cfg *contract.Config, path string, mgr contract.HistoryManager) error

// LoadFeedbackEnvelope reads a feedback+candidate envelope from a JSON file.
func LoadFeedbackEnvelope(path string) (*schema.FeedbackEnvelope, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read feedback file: %w", err)
	}
	var env schema.FeedbackEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("cannot parse feedback file %s: %w", path, err)
	}
	return &env, nil
}

// NewAnalyzerFromConfig builds an Analyzer honoring the validated configuration.
func NewAnalyzerFromConfig(cfg *contract.Config) *Analyzer {
	opts := []Option{WithCacheTTL(cfg.CacheTTL)}
	if len(cfg.CustomWeights) > 0 {
		opts = append(opts, WithDimensionWeights(cfg.CustomWeights))
	}
	if cfg.Explain {
		opts = append(opts, WithExplain())
	}
	return NewAnalyzer(opts...)
}

// persistResult records one analysis outcome in the history store.
// Persistence failures are logged but never abort the command.
func persistResult(mgr contract.HistoryManager, result *schema.AnalysisResult, env *schema.FeedbackEnvelope) {
	if mgr == nil {
		return
	}
	record := BuildAnalysisRecord(result, env)
	if err := mgr.GetHistoryStore().SaveAnalysis(record); err != nil {
		contract.LogWarn("Failed to record analysis history", err)
	}
}

// ExecuteAnalyzeFeedback scores a single feedback envelope and prints the report.
// It serves as the main entry point for the 'analyze' command.
func ExecuteAnalyzeFeedback(ctx context.Context, cfg *contract.Config, path string, mgr contract.HistoryManager) error {
	start := time.Now()
	env, err := LoadFeedbackEnvelope(path)
	if err != nil {
		return err
	}
	analyzer := NewAnalyzerFromConfig(cfg)
	result, err := analyzer.Analyze(ctx, env)
	if err != nil {
		return err
	}
	persistResult(mgr, result, env)
	duration := time.Since(start)
	return outwriter.NewOutWriter().WriteAnalysis(result, cfg, duration)
}

// ExecuteAnalyzeNotes scores a plain-text notes file without structured feedback.
// It serves as the main entry point for the 'notes' command.
func ExecuteAnalyzeNotes(ctx context.Context, cfg *contract.Config, path string, mgr contract.HistoryManager) error {
	start := time.Now()
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("cannot read notes file: %w", err)
	}
	notes := strings.TrimSpace(string(data))
	if notes == "" {
		return fmt.Errorf("notes file %s is empty", path)
	}
	analyzer := NewAnalyzerFromConfig(cfg)
	result, err := analyzer.ProcessNotes(ctx, notes, schema.CandidateProfile{})
	if err != nil {
		return err
	}
	persistResult(mgr, result, nil)
	duration := time.Since(start)
	return outwriter.NewOutWriter().WriteAnalysis(result, cfg, duration)
}

// ExecuteBatchAnalysis scores every *.json envelope in a directory and prints
// a ranked comparison table. It serves as the main entry point for the
// 'batch' command.
func ExecuteBatchAnalysis(ctx context.Context, cfg *contract.Config, dir string, mgr contract.HistoryManager) error {
	start := time.Now()
	matches, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return fmt.Errorf("cannot scan feedback directory: %w", err)
	}
	if len(matches) == 0 {
		return fmt.Errorf("no feedback files found in %s", dir)
	}
	analyzer := NewAnalyzerFromConfig(cfg)
	results := make([]*schema.AnalysisResult, 0, len(matches))
	for _, path := range matches {
		env, err := LoadFeedbackEnvelope(path)
		if err != nil {
			return err
		}
		result, err := analyzer.Analyze(ctx, env)
		if err != nil {
			return err
		}
		persistResult(mgr, result, env)
		results = append(results, result)
	}
	ranked := RankResults(results, cfg.ResultLimit)
	duration := time.Since(start)
	return outwriter.NewOutWriter().WriteBatch(ranked, cfg, duration)
}

// ExecuteDimensionMetrics prints the capability dimension definitions
// with the active weights after config overrides.
func ExecuteDimensionMetrics(_ context.Context, cfg *contract.Config) error {
	weights := schema.GetDefaultDimensionWeights()
	for dim, w := range cfg.CustomWeights {
		weights[dim] = w
	}
	return outwriter.NewOutWriter().WriteDimensions(weights, cfg)
}

// ExecuteHistoryRecent prints the most recent stored analyses.
func ExecuteHistoryRecent(cfg *contract.Config, mgr contract.HistoryManager) error {
	records, err := mgr.GetHistoryStore().RecentAnalyses(cfg.ResultLimit)
	if err != nil {
		return fmt.Errorf("cannot load analysis history: %w", err)
	}
	return outwriter.NewOutWriter().WriteHistory(records, cfg)
}
