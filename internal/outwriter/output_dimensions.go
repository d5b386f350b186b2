package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/talentlens/talentlens/internal/contract"
	"github.com/talentlens/talentlens/schema"
)

// WriteDimensionDefinitions displays the formal definitions of all evaluation
// dimensions together with the weights in effect. This is a static display
// that does not require any feedback analysis.
func WriteDimensionDefinitions(activeWeights map[schema.Dimension]float64, cfg *contract.Config) error {
	renderModel := buildDimensionRenderModel(activeWeights)

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, renderModel)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			writer := csv.NewWriter(w)
			defer writer.Flush()
			return writeCSVDimensions(writer, renderModel)
		}, "Wrote CSV")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeDimensionsText(w, renderModel, cfg)
		}, "Wrote text")
	}
}

// writeDimensionsText displays dimension definitions in human-readable text format.
func writeDimensionsText(w io.Writer, renderModel *schema.DimensionRenderModel, cfg *contract.Config) error {
	title := headerWithEmoji("🎯", renderModel.Title, cfg)
	if _, err := fmt.Fprintf(w, "%s\n%s\n\n", title, strings.Repeat("=", len([]rune(title)))); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "%s\n\n", renderModel.Description); err != nil {
		return err
	}

	for _, dim := range renderModel.Dimensions {
		if _, err := fmt.Fprintf(w, "%s (weight %.2f): %s\n", schema.FormatDimension(dim.Dimension), dim.Weight, dim.Purpose); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "   Signals: %s\n\n", strings.Join(dim.Signals, ", ")); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintf(w, "Formula: %s\n", renderModel.Formula); err != nil {
		return err
	}
	return nil
}

// writeCSVDimensions displays dimension definitions in CSV format.
func writeCSVDimensions(w *csv.Writer, renderModel *schema.DimensionRenderModel) error {
	header := []string{"dimension", "weight", "purpose", "signals"}
	if err := w.Write(header); err != nil {
		return err
	}
	for _, dim := range renderModel.Dimensions {
		row := []string{
			string(dim.Dimension),
			fmt.Sprintf("%.2f", dim.Weight),
			dim.Purpose,
			strings.Join(dim.Signals, "|"),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}

// buildDimensionRenderModel constructs the complete render model with all processed data.
func buildDimensionRenderModel(activeWeights map[schema.Dimension]float64) *schema.DimensionRenderModel {
	infos := []schema.DimensionInfo{
		{
			Dimension: schema.DimensionTechnical,
			Purpose:   "Depth and breadth of technical ability shown in the interview",
			Signals:   []string{"Rating", "Skill mentions", "Seniority fit"},
		},
		{
			Dimension: schema.DimensionCommunication,
			Purpose:   "Clarity and structure of how the candidate presents ideas",
			Signals:   []string{"Rating", "Sentence structure", "Tone", "Communication keywords"},
		},
		{
			Dimension: schema.DimensionProblem,
			Purpose:   "Analytical approach to working through problems",
			Signals:   []string{"Rating", "Problem-solving keywords"},
		},
		{
			Dimension: schema.DimensionCulture,
			Purpose:   "Alignment with team values and collaboration style",
			Signals:   []string{"Rating", "Collaboration keywords", "Sentiment"},
		},
		{
			Dimension: schema.DimensionLeadership,
			Purpose:   "Evidence of ownership, mentoring and influence",
			Signals:   []string{"Rating", "Leadership keywords", "Role title"},
		},
		{
			Dimension: schema.DimensionGrowth,
			Purpose:   "Curiosity and capacity to grow into the role",
			Signals:   []string{"Rating", "Learning keywords"},
		},
	}

	weights := getDisplayWeights(activeWeights)
	dimensions := make([]schema.DimensionInfoWithData, len(infos))
	var formulaParts []string
	for i, info := range infos {
		dimensions[i] = schema.DimensionInfoWithData{
			DimensionInfo: info,
			Weight:        weights[info.Dimension],
		}
		shortName := strings.SplitN(string(info.Dimension), "_", 2)[0]
		formulaParts = append(formulaParts, fmt.Sprintf("%.2f*%s", weights[info.Dimension], shortName))
	}

	return &schema.DimensionRenderModel{
		Title:       "Evaluation Dimensions",
		Description: "Each dimension starts from the interviewer rating and is adjusted by text signals",
		Dimensions:  dimensions,
		Formula:     fmt.Sprintf("Overall = 0.70*(%s) + 0.30*base + 0.10*sentiment, clamped to [0, 1]", strings.Join(formulaParts, "+")),
	}
}

// getDisplayWeights returns the weights to display, overlaying custom weights
// on the defaults.
func getDisplayWeights(activeWeights map[schema.Dimension]float64) map[schema.Dimension]float64 {
	weights := schema.GetDefaultDimensionWeights()
	for k, v := range activeWeights {
		weights[k] = v
	}
	return weights
}
