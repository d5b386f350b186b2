package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/talentlens/talentlens/internal/contract"
	"github.com/talentlens/talentlens/schema"
)

// WriteAnalysisResult outputs a single analysis, dispatching based on the output format configured.
func WriteAnalysisResult(result *schema.AnalysisResult, cfg *contract.Config, duration time.Duration) error {
	fmtFloat, _ := createFormatters(cfg.Precision)

	// Dispatcher: Handle different output formats
	switch cfg.Output {
	case schema.JSONOut:
		if err := writeAnalysisJSON(result, cfg); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeAnalysisCSV(result, cfg, fmtFloat); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	default:
		// Default to the human-readable report
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeAnalysisReport(result, cfg, fmtFloat, duration, w)
		}, "Wrote report")
	}
	return nil
}

// writeAnalysisJSON handles opening the file and encoding the full result.
func writeAnalysisJSON(result *schema.AnalysisResult, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		type JSONAnalysisResult struct {
			Label string `json:"label"`
			*schema.AnalysisResult
		}
		return writeJSON(w, JSONAnalysisResult{
			Label:          contract.GetPlainLabel(result.Overall()),
			AnalysisResult: result,
		})
	}, "Wrote JSON")
}

// writeAnalysisCSV writes one flattened row per analysis.
func writeAnalysisCSV(result *schema.AnalysisResult, cfg *contract.Config, fmtFloat func(float64) string) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeCSVWithHeader(w, analysisCSVHeader(), func(cw *csv.Writer) error {
			return cw.Write(analysisCSVRow(result, fmtFloat))
		})
	}, "Wrote CSV")
}

// analysisCSVHeader returns the flattened column list shared with batch output.
func analysisCSVHeader() []string {
	header := []string{
		"candidate_id",
		"candidate_name",
		"overall",
		"label",
		"sentiment",
		"confidence",
		"primary_rec",
	}
	for _, d := range schema.ScoredDimensions {
		header = append(header, string(d))
	}
	header = append(header, "skills", "insight_count", "risk_count", "generated_at")
	return header
}

// analysisCSVRow flattens one result into the analysisCSVHeader column order.
func analysisCSVRow(result *schema.AnalysisResult, fmtFloat func(float64) string) []string {
	primaryRec := ""
	if primary := result.Primary(); primary != nil {
		primaryRec = string(primary.Type)
	}
	row := []string{
		result.CandidateID,
		result.CandidateName,
		fmtFloat(result.Overall()),
		contract.GetPlainLabel(result.Overall()),
		fmtFloat(result.Sentiment),
		fmtFloat(result.ConfidenceScore),
		primaryRec,
	}
	for _, d := range schema.ScoredDimensions {
		row = append(row, fmtFloat(result.Scores[d]))
	}
	row = append(row,
		strings.ReplaceAll(schema.FormatSkills(result.Skills, len(result.Skills)), ", ", "|"),
		fmt.Sprintf("%d", len(result.Insights)),
		fmt.Sprintf("%d", len(result.RiskFactors)),
		result.GeneratedAt.Format(contract.DateTimeFormat),
	)
	return row
}

// writeAnalysisReport generates and writes the human-readable report.
func writeAnalysisReport(result *schema.AnalysisResult, cfg *contract.Config, fmtFloat func(float64) string, duration time.Duration, writer io.Writer) error {
	name := result.CandidateName
	if name == "" {
		name = "Candidate"
	}

	header := headerWithEmoji("🎯", fmt.Sprintf("Feedback Analysis: %s", name), cfg)
	if _, err := fmt.Fprintf(writer, "%s\n%s\n\n", header, strings.Repeat("=", len([]rune(header)))); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(writer, "Overall: %s (%s)  Sentiment: %+.2f  Confidence: %s\n\n",
		fmtFloat(result.Overall()), labelFor(result.Overall(), cfg),
		result.Sentiment, fmtFloat(result.ConfidenceScore)); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(writer, "%s\n\n", result.ExecutiveSummary); err != nil {
		return err
	}

	if err := writeCapabilityTable(result, cfg, fmtFloat, writer); err != nil {
		return err
	}

	if cfg.Detail && len(result.Skills) > 0 {
		parts := make([]string, 0, len(result.Skills))
		for _, s := range result.Skills {
			parts = append(parts, fmt.Sprintf("%s (%s)", s.Skill, fmtFloat(s.Confidence)))
		}
		if _, err := fmt.Fprintf(writer, "\n%s %s\n",
			headerWithEmoji("🛠️", "Skills:", cfg), strings.Join(parts, ", ")); err != nil {
			return err
		}
	}

	if err := writeInsightsSection(result.Insights, cfg, writer); err != nil {
		return err
	}
	if err := writeRecommendationsSection(result.Recommendations, cfg, writer); err != nil {
		return err
	}
	if err := writeRiskSection(result.RiskFactors, cfg, writer); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(writer, "\nAnalysis completed in %v. History backend: %s\n", duration, cfg.HistoryBackend); err != nil {
		return err
	}
	return nil
}

// writeCapabilityTable renders the per-dimension score table.
func writeCapabilityTable(result *schema.AnalysisResult, cfg *contract.Config, fmtFloat func(float64) string, writer io.Writer) error {
	table := tablewriter.NewWriter(writer)

	headers := []string{"Dimension", "Score", "Label"}
	if cfg.Explain && result.Breakdown != nil {
		headers = append(headers, "Breakdown")
	}
	table.Header(headers)

	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	dims := append([]schema.Dimension{}, schema.ScoredDimensions...)
	dims = append(dims, schema.DimensionOverall)
	for _, d := range dims {
		score := result.Scores[d]
		row := []string{
			schema.FormatDimension(d),
			fmtFloat(score),
			labelFor(score, cfg),
		}
		if cfg.Explain && result.Breakdown != nil {
			row = append(row, formatScoreBreakdown(result.Breakdown[d], fmtFloat))
		}
		data = append(data, row)
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}

// formatScoreBreakdown renders score components as "base:0.50 +skills:0.20",
// with the base component always first.
func formatScoreBreakdown(parts map[string]float64, fmtFloat func(float64) string) string {
	if len(parts) == 0 {
		return ""
	}
	out := make([]string, 0, len(parts))
	if base, ok := parts["base"]; ok {
		out = append(out, "base:"+fmtFloat(base))
	}
	for _, key := range sortedKeys(parts) {
		if key == "base" {
			continue
		}
		out = append(out, fmt.Sprintf("%s:%s", key, fmtFloat(parts[key])))
	}
	return strings.Join(out, " ")
}

func writeInsightsSection(insights []schema.Insight, cfg *contract.Config, writer io.Writer) error {
	if len(insights) == 0 {
		return nil
	}
	if _, err := fmt.Fprintf(writer, "\n%s\n", headerWithEmoji("💡", "Insights", cfg)); err != nil {
		return err
	}
	for _, in := range insights {
		marker := " "
		if in.Actionable {
			marker = "!"
		}
		if _, err := fmt.Fprintf(writer, "%s [%s/%s] %s\n", marker, in.Importance, in.Category, in.Insight); err != nil {
			return err
		}
	}
	return nil
}

func writeRecommendationsSection(recs []schema.Recommendation, cfg *contract.Config, writer io.Writer) error {
	if len(recs) == 0 {
		return nil
	}
	if _, err := fmt.Fprintf(writer, "\n%s\n", headerWithEmoji("📋", "Recommendations", cfg)); err != nil {
		return err
	}
	for i, rec := range recs {
		if _, err := fmt.Fprintf(writer, "%d. %s (priority: %s, confidence: %s)\n", i+1, rec.Text, rec.Priority, rec.Confidence); err != nil {
			return err
		}
		if cfg.Detail {
			if _, err := fmt.Fprintf(writer, "   Reasoning: %s\n", rec.Reasoning); err != nil {
				return err
			}
			for _, item := range rec.ActionItems {
				if _, err := fmt.Fprintf(writer, "   - %s\n", item); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

func writeRiskSection(risks []schema.RiskFactor, cfg *contract.Config, writer io.Writer) error {
	if len(risks) == 0 {
		return nil
	}
	if _, err := fmt.Fprintf(writer, "\n%s\n", headerWithEmoji("⚠️", "Risk Factors", cfg)); err != nil {
		return err
	}
	for _, risk := range risks {
		if _, err := fmt.Fprintf(writer, "[%s] %s: %s\n", strings.ToUpper(string(risk.Level)), risk.Category, risk.Description); err != nil {
			return err
		}
		if cfg.Detail {
			if _, err := fmt.Fprintf(writer, "   Impact: %s\n   Action: %s\n", risk.Impact, risk.ActionRequired); err != nil {
				return err
			}
		}
	}
	return nil
}
