package wordfreq

import (
	"fmt"
	"sort"

	"github.com/tebeka/snowball"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Entry is one row of the frequency report.
type Entry struct {
	Word  string
	Count int
}

var lower = cases.Lower(language.Und)

// Fold normalizes a raw token to the lowercase form it is counted under.
func Fold(token string) string {
	return lower.String(token)
}

// Count builds the frequency table over already-folded words.
func Count(words []string) map[string]int {
	frequency := make(map[string]int)
	for _, word := range words {
		frequency[word] += 1
	}
	return frequency
}

// SortedByWord flattens the table into alphabetically ordered entries.
func SortedByWord(frequency map[string]int) []Entry {
	entries := make([]Entry, 0, len(frequency))
	for word, count := range frequency {
		entries = append(entries, Entry{Word: word, Count: count})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Word < entries[j].Word })

	return entries
}

// StemAll runs every word through the English snowball stemmer.
func StemAll(words []string) ([]string, error) {
	stemmer, err := snowball.New("english")
	if err != nil {
		return nil, fmt.Errorf("error creating stemmer: %w", err)
	}
	defer stemmer.Close()

	stemmed := make([]string, 0, len(words))
	for _, word := range words {
		stemmed = append(stemmed, stemmer.Stem(word))
	}
	return stemmed, nil
}
