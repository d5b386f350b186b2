package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/talentlens/talentlens/internal/contract"
	"github.com/talentlens/talentlens/schema"
)

// WriteHistoryRecords outputs stored analysis records, dispatching based on the output format configured.
func WriteHistoryRecords(records []schema.AnalysisRecord, cfg *contract.Config) error {
	fmtFloat, _ := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSONResultsForHistory(w, records)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			csvWriter := csv.NewWriter(w)
			defer csvWriter.Flush()
			return writeCSVResultsForHistory(csvWriter, records, fmtFloat)
		}, "Wrote CSV")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeHistoryTable(records, cfg, fmtFloat, w)
		}, "Wrote table")
	}
}

// writeHistoryTable generates and writes the human-readable history table.
func writeHistoryTable(records []schema.AnalysisRecord, cfg *contract.Config, fmtFloat func(float64) string, writer io.Writer) error {
	table := tablewriter.NewWriter(writer)

	headers := []string{"Candidate", "Role", "Rating", "Overall", "Label", "Recommendation", "Risks", "Generated"}
	table.Header(headers)

	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	nameWidth := getMaxTableNameWidth(cfg)
	for _, rec := range records {
		name := rec.CandidateName
		if name == "" {
			name = rec.CandidateID
		}
		risks := strconv.Itoa(rec.RiskCount)
		if rec.HighestRisk != "" {
			risks = fmt.Sprintf("%d (%s)", rec.RiskCount, rec.HighestRisk)
		}
		data = append(data, []string{
			contract.TruncateText(name, nameWidth),
			contract.TruncateText(rec.JobTitle, nameWidth),
			strconv.Itoa(rec.Rating),
			fmtFloat(rec.Overall),
			labelFor(rec.Overall, cfg),
			string(rec.Primary),
			risks,
			rec.GeneratedAt.Format("2006-01-02 15:04"),
		})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "Showing %d stored analyses. History backend: %s\n", len(records), cfg.HistoryBackend); err != nil {
		return err
	}
	return nil
}

// writeCSVResultsForHistory writes stored analysis records in CSV format.
func writeCSVResultsForHistory(w *csv.Writer, records []schema.AnalysisRecord, fmtFloat func(float64) string) error {
	header := []string{
		"analysis_id",
		"candidate_id",
		"candidate_name",
		"job_title",
		"rating",
		"overall",
		"label",
		"sentiment",
		"confidence",
		"primary_rec",
		"risk_count",
		"highest_risk",
		"generated_at",
	}
	if err := w.Write(header); err != nil {
		return err
	}
	for _, rec := range records {
		row := []string{
			rec.AnalysisID,
			rec.CandidateID,
			rec.CandidateName,
			rec.JobTitle,
			strconv.Itoa(rec.Rating),
			fmtFloat(rec.Overall),
			contract.GetPlainLabel(rec.Overall),
			fmtFloat(rec.Sentiment),
			fmtFloat(rec.Confidence),
			string(rec.Primary),
			strconv.Itoa(rec.RiskCount),
			rec.HighestRisk,
			rec.GeneratedAt.Format(contract.DateTimeFormat),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}

// writeJSONResultsForHistory writes stored analysis records in JSON format.
func writeJSONResultsForHistory(w io.Writer, records []schema.AnalysisRecord) error {
	type JSONHistoryRecord struct {
		Label string `json:"label"`
		schema.AnalysisRecord
	}

	output := make([]JSONHistoryRecord, len(records))
	for i, rec := range records {
		output[i] = JSONHistoryRecord{
			Label:          contract.GetPlainLabel(rec.Overall),
			AnalysisRecord: rec,
		}
	}
	return writeJSON(w, output)
}
