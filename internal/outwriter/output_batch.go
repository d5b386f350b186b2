package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/talentlens/talentlens/internal/contract"
	"github.com/talentlens/talentlens/schema"
)

// WriteBatchResults outputs ranked batch results, dispatching based on the output format configured.
func WriteBatchResults(results []*schema.AnalysisResult, cfg *contract.Config, duration time.Duration) error {
	fmtFloat, _ := createFormatters(cfg.Precision)

	// Dispatcher: Handle different output formats
	switch cfg.Output {
	case schema.JSONOut:
		if err := writeBatchJSONResults(results, cfg); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeBatchCSVResults(results, cfg, fmtFloat); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	default:
		// Default to human-readable table
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeBatchTable(results, cfg, fmtFloat, duration, w)
		}, "Wrote table")
	}
	return nil
}

// writeBatchJSONResults handles opening the file and calling the JSON writer.
func writeBatchJSONResults(results []*schema.AnalysisResult, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeJSONResultsForBatch(w, results)
	}, "Wrote JSON")
}

// writeBatchCSVResults handles opening the file and calling the CSV writer.
func writeBatchCSVResults(results []*schema.AnalysisResult, cfg *contract.Config, fmtFloat func(float64) string) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		csvWriter := csv.NewWriter(w)
		defer csvWriter.Flush()
		return writeCSVResultsForBatch(csvWriter, results, fmtFloat)
	}, "Wrote CSV")
}

// writeBatchTable generates and writes the human-readable ranking table.
func writeBatchTable(results []*schema.AnalysisResult, cfg *contract.Config, fmtFloat func(float64) string, duration time.Duration, writer io.Writer) error {
	table := tablewriter.NewWriter(writer)

	// 1. Define Headers
	headers := []string{"Rank", "Candidate", "Overall", "Conf", "Label", "Recommendation"}
	if cfg.Detail {
		headers = append(headers, "Sentiment", "Skills", "Risks")
	}
	table.Header(headers)

	// 2. Configure Separators/Borders to match a minimal look
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	// 3. Populate Rows
	var data [][]string
	nameWidth := getMaxTableNameWidth(cfg)
	for i, r := range results {
		primaryRec := ""
		if primary := r.Primary(); primary != nil {
			primaryRec = string(primary.Type)
		}
		row := []string{
			strconv.Itoa(i + 1), // Rank
			contract.TruncateText(displayName(r), nameWidth), // Candidate
			fmtFloat(r.Overall()),        // Overall
			fmtFloat(r.ConfidenceScore),  // Conf
			labelFor(r.Overall(), cfg),   // Label
			primaryRec,                   // Recommendation
		}
		if cfg.Detail {
			row = append(
				row,
				fmt.Sprintf("%+.2f", r.Sentiment),             // Sentiment
				schema.FormatSkills(r.Skills, 3),              // Top 3 skills
				fmt.Sprintf("%d", len(r.RiskFactors)),         // Risks
			)
		}
		data = append(data, row)
	}

	// 4. Render the table
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	// Compute summary stats
	totalRisks := 0
	advancing := 0
	for _, r := range results {
		totalRisks += len(r.RiskFactors)
		if primary := r.Primary(); primary != nil {
			if primary.Type == schema.RecStrongAdvance || primary.Type == schema.RecAdvance {
				advancing++
			}
		}
	}
	if _, err := fmt.Fprintf(writer, "Showing %d candidates (%d advancing, %d total risks)\n", len(results), advancing, totalRisks); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "Analysis completed in %v. History backend: %s\n", duration, cfg.HistoryBackend); err != nil {
		return err
	}
	return nil
}

// displayName returns the candidate name with an ID fallback.
func displayName(r *schema.AnalysisResult) string {
	if r.CandidateName != "" {
		return r.CandidateName
	}
	return r.CandidateID
}

// writeCSVResultsForBatch writes the ranked batch results in CSV format.
func writeCSVResultsForBatch(w *csv.Writer, results []*schema.AnalysisResult, fmtFloat func(float64) string) error {
	header := append([]string{"rank"}, analysisCSVHeader()...)
	if err := w.Write(header); err != nil {
		return err
	}
	for i, r := range results {
		rec := append([]string{strconv.Itoa(i + 1)}, analysisCSVRow(r, fmtFloat)...)
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	return nil
}

// writeJSONResultsForBatch writes the ranked batch results in JSON format.
func writeJSONResultsForBatch(w io.Writer, results []*schema.AnalysisResult) error {
	// 1. Prepare the data structure for JSON with rank and label added
	type JSONBatchResult struct {
		Rank  int    `json:"rank"`
		Label string `json:"label"`
		*schema.AnalysisResult
	}

	output := make([]JSONBatchResult, len(results))
	for i, r := range results {
		output[i] = JSONBatchResult{
			Rank:           i + 1,
			Label:          contract.GetPlainLabel(r.Overall()),
			AnalysisResult: r,
		}
	}

	// 2. Use the generic JSON writer
	return writeJSON(w, output)
}
