package report

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"textreports/radix"
	"textreports/stats"
	"textreports/wordfreq"
)

// Fixed output file names, written to the working directory.
const (
	StatisticsFile = "StatisticsResults.txt"
	ConversionFile = "ConversionResults.txt"
	WordCountFile  = "WordCountResults.txt"
)

func rule(ch string, width int) string {
	return strings.Repeat(ch, width)
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// Statistics renders the descriptive statistics report.
func Statistics(summary stats.Summary, elapsed time.Duration) string {
	var b strings.Builder
	line := rule("=", 60)

	fmt.Fprintln(&b, line)
	fmt.Fprintln(&b, "DESCRIPTIVE STATISTICS RESULTS")
	fmt.Fprintln(&b, line)
	fmt.Fprintf(&b, "Count:               %d\n", summary.Count)
	fmt.Fprintf(&b, "Mean:                %s\n", formatFloat(summary.Mean))
	fmt.Fprintf(&b, "Median:              %s\n", formatFloat(summary.Median))
	fmt.Fprintf(&b, "Mode:                %s\n", formatFloat(summary.Mode))
	fmt.Fprintf(&b, "Standard Deviation:  %s\n", formatFloat(summary.StdDev))
	fmt.Fprintf(&b, "Variance:            %s\n", formatFloat(summary.Variance))
	fmt.Fprintln(&b, line)
	fmt.Fprintf(&b, "Execution Time:      %.6f seconds\n", elapsed.Seconds())
	fmt.Fprint(&b, line)

	return b.String()
}

// Conversions renders the base conversion report, one row per input number.
func Conversions(conversions []radix.Conversion, elapsed time.Duration) string {
	var b strings.Builder
	line := rule("=", 70)

	fmt.Fprintln(&b, line)
	fmt.Fprintln(&b, "NUMBER BASE CONVERSION RESULTS")
	fmt.Fprintln(&b, line)
	fmt.Fprintf(&b, "%-15s %-30s %-15s\n", "NUMBER", "BINARY", "HEXADECIMAL")
	fmt.Fprintln(&b, rule("-", 70))
	for _, c := range conversions {
		fmt.Fprintf(&b, "%-15d %-30s %-15s\n", c.Number, c.Binary, c.Hexadecimal)
	}
	fmt.Fprintln(&b, line)
	fmt.Fprintf(&b, "Total conversions: %d\n", len(conversions))
	fmt.Fprintf(&b, "Execution Time:    %.6f seconds\n", elapsed.Seconds())
	fmt.Fprint(&b, line)

	return b.String()
}

// WordCounts renders the frequency report with alphabetically ordered rows.
func WordCounts(entries []wordfreq.Entry, totalWords int, elapsed time.Duration) string {
	var b strings.Builder
	line := rule("=", 60)

	fmt.Fprintln(&b, line)
	fmt.Fprintln(&b, "WORD FREQUENCY COUNT RESULTS")
	fmt.Fprintln(&b, line)
	fmt.Fprintf(&b, "%-30s %-15s\n", "WORD", "FREQUENCY")
	fmt.Fprintln(&b, rule("-", 60))
	for _, e := range entries {
		fmt.Fprintf(&b, "%-30s %-15d\n", e.Word, e.Count)
	}
	fmt.Fprintln(&b, line)
	fmt.Fprintf(&b, "Total distinct words: %d\n", len(entries))
	fmt.Fprintf(&b, "Total words:          %d\n", totalWords)
	fmt.Fprintf(&b, "Execution Time:       %.6f seconds\n", elapsed.Seconds())
	fmt.Fprint(&b, line)

	return b.String()
}

// Save echoes the report to stdout and overwrites the output file.
func Save(text, outputFile string) error {
	fmt.Println(text)

	if err := os.WriteFile(outputFile, []byte(text), 0644); err != nil {
		return fmt.Errorf("error saving results: %w", err)
	}

	fmt.Printf("\nResults saved to: %s\n", outputFile)
	return nil
}
