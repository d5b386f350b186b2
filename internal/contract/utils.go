package contract

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
)

// Overall-impression label constants.
const (
	StrongValue     = "Strong"     // Strong value
	PromisingValue  = "Promising"  // Promising value
	MixedValue      = "Mixed"      // Mixed value
	ConcerningValue = "Concerning" // Concerning value
)

// Color variables for console output.
var (
	StrongColor     = color.New(color.FgGreen, color.Bold) // strongColor represents a clear hire signal.
	PromisingColor  = color.New(color.FgCyan)              // promisingColor represents a positive signal.
	MixedColor      = color.New(color.FgYellow)            // mixedColor represents an undecided signal.
	ConcerningColor = color.New(color.FgRed, color.Bold)   // concerningColor represents a negative signal.
)

// GetPlainLabel returns a plain text label for an overall impression score.
// This is the core logic used for CSV, JSON, and table printing.
func GetPlainLabel(score float64) string {
	switch {
	case score >= 0.8:
		return StrongValue
	case score >= 0.65:
		return PromisingValue
	case score >= 0.45:
		return MixedValue
	default:
		return ConcerningValue
	}
}

// GetColorLabel returns a colored text label for console output (table).
// It uses GetPlainLabel to determine the string, and then applies the appropriate color.
func GetColorLabel(score float64) string {
	text := GetPlainLabel(score)

	switch text {
	case StrongValue:
		return StrongColor.Sprint(text)
	case PromisingValue:
		return PromisingColor.Sprint(text)
	case MixedValue:
		return MixedColor.Sprint(text)
	default: // "Concerning"
		return ConcerningColor.Sprint(text)
	}
}

// SelectOutputFile returns the appropriate file handle for output, based on
// the provided file path. It returns os.Stdout for an empty path.
func SelectOutputFile(filePath string) (*os.File, error) {
	if filePath == "" {
		return os.Stdout, nil
	}
	return os.Create(filePath)
}

// LogFatal logs an error and exits the program.
func LogFatal(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Fatal %s: %v\n", msg, err)
	os.Exit(1)
}

// LogWarn logs a warning message to stderr.
func LogWarn(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Warn %s: %v\n", msg, err)
}

// GetHistoryDBFilePath returns the path to the SQLite DB file for history storage.
func GetHistoryDBFilePath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".talentlens_history.db"
	}
	return filepath.Join(homeDir, ".talentlens_history.db")
}

// TruncateText truncates text to a maximum width with an ellipsis suffix.
// Requires maxWidth > 3 to ensure there's space for both the "..." suffix and
// at least one character of content.
func TruncateText(text string, maxWidth int) string {
	runes := []rune(text)
	if len(runes) > maxWidth && maxWidth > 3 {
		return string(runes[:maxWidth-3]) + "..."
	}
	return text
}

// ParseBoolString parses a string value into a boolean.
// Accepts "yes", "no", "true", "false", "1", "0" (case-insensitive).
// Returns an error for invalid values.
func ParseBoolString(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "yes", "true", "1":
		return true, nil
	case "no", "false", "0":
		return false, nil
	default:
		return false, fmt.Errorf("invalid boolean string: %s (expected yes/no/true/false/1/0)", s)
	}
}
