package loader

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"golang.org/x/net/html"

	"textreports/util"
	"textreports/wordfreq"
)

// warn reports a recoverable per-line problem without aborting the load.
func warn(format string, args ...interface{}) {
	fmt.Printf(util.TerminalYellow+format+util.TerminalReset+"\n", args...)
}

func openInput(path string) (*os.File, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("file '%s' not found", path)
		}
		return nil, fmt.Errorf("error reading file: %w", err)
	}
	return file, nil
}

// Numbers loads one float per line, in file order. Blank lines are skipped
// silently, lines that fail to parse are reported and excluded. The returned
// count is how many lines were skipped.
func Numbers(path string) ([]float64, int, error) {
	file, err := openInput(path)
	if err != nil {
		return nil, 0, err
	}
	defer file.Close()

	var numbers []float64
	invalid := 0
	lineNum := 0

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		lineNum += 1
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		number, err := strconv.ParseFloat(line, 64)
		if err != nil {
			warn("Warning: Invalid data on line %d: '%s' (skipped)", lineNum, line)
			invalid += 1
			continue
		}
		numbers = append(numbers, number)
	}
	if err := scanner.Err(); err != nil {
		return nil, invalid, fmt.Errorf("error reading file: %w", err)
	}

	if invalid > 0 {
		fmt.Printf("\nTotal invalid entries skipped: %d\n\n", invalid)
	}

	return numbers, invalid, nil
}

// Integers loads one non-negative integer per line. Negative and non-numeric
// lines are reported and excluded.
func Integers(path string) ([]int64, int, error) {
	file, err := openInput(path)
	if err != nil {
		return nil, 0, err
	}
	defer file.Close()

	var numbers []int64
	invalid := 0
	lineNum := 0

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		lineNum += 1
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		number, err := strconv.ParseInt(line, 10, 64)
		if err != nil {
			warn("Warning: Invalid data on line %d: '%s' (skipped)", lineNum, line)
			invalid += 1
			continue
		}
		if number < 0 {
			warn("Warning: Negative number on line %d: %d (skipped)", lineNum, number)
			invalid += 1
			continue
		}
		numbers = append(numbers, number)
	}
	if err := scanner.Err(); err != nil {
		return nil, invalid, fmt.Errorf("error reading file: %w", err)
	}

	if invalid > 0 {
		fmt.Printf("\nTotal invalid entries skipped: %d\n\n", invalid)
	}

	return numbers, invalid, nil
}

// Words loads lowercase whitespace-delimited tokens in file order. HTML
// inputs are reduced to their text content before splitting.
func Words(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("file '%s' not found", path)
		}
		return nil, fmt.Errorf("error reading file: %w", err)
	}

	content := string(data)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm":
		content = TextContent(content)
	}

	var words []string
	for _, token := range strings.Fields(content) {
		words = append(words, wordfreq.Fold(token))
	}

	return words, nil
}

// TextContent strips markup from an html document, keeping only text nodes.
func TextContent(htmlContent string) string {
	var content string

	d := html.NewTokenizer(strings.NewReader(htmlContent))
	for {
		tt := d.Next()
		switch tt {
		case html.ErrorToken:
			return content
		case html.TextToken:
			content += string(d.Text())
		}
	}
}
