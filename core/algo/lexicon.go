package algo

import (
	"bufio"
	_ "embed"
	"fmt"
	"strconv"
	"strings"
	"sync"
)

// afinnTable is the AFINN-165 word list, one "word<TAB>weight" pair per line.
//
//go:embed afinn165.tsv
var afinnTable string

// emojiTable scores single-emoji tokens on the same scale. Weights follow the
// Emoji Sentiment Ranking: floor(5 * (positive - negative) / occurrences).
//
//go:embed emoji_sentiment.tsv
var emojiTable string

// loadLexicon merges the word and emoji tables once. Both are compiled into
// the binary, so a parse failure is a build defect and panics.
var loadLexicon = sync.OnceValue(func() map[string]int {
	lex := make(map[string]int, 3400)
	tables := []struct{ name, data string }{
		{"afinn165.tsv", afinnTable},
		{"emoji_sentiment.tsv", emojiTable},
	}
	for _, table := range tables {
		if err := parseLexicon(table.data, lex); err != nil {
			panic(fmt.Sprintf("%s: %v", table.name, err))
		}
	}
	return lex
})

// parseLexicon reads tab-separated word weights into lex. Blank lines are skipped.
func parseLexicon(data string, lex map[string]int) error {
	scanner := bufio.NewScanner(strings.NewReader(data))
	line := 0
	for scanner.Scan() {
		line++
		text := scanner.Text()
		if text == "" {
			continue
		}
		word, weight, ok := strings.Cut(text, "\t")
		if !ok || word == "" {
			return fmt.Errorf("line %d: expected word<TAB>weight, got %q", line, text)
		}
		n, err := strconv.Atoi(weight)
		if err != nil {
			return fmt.Errorf("line %d: %w", line, err)
		}
		lex[word] = n
	}
	return scanner.Err()
}
