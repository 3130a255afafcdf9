package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	"stemdex.dev/search/stemmer"
)

func main() {
	var verify bool
	var vocabularyPath, stemsPath string
	flag.BoolVar(&verify, "verify", false, "run over vocabulary and compare with expected stems")
	flag.StringVar(&vocabularyPath, "vocabulary", "vocabulary.txt", "input words, one per line")
	flag.StringVar(&stemsPath, "stems", "stems.txt", "expected stems, one per line")
	flag.Parse()

	if err := run(verify, vocabularyPath, stemsPath, flag.Args()); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run(verify bool, vocabularyPath, stemsPath string, args []string) error {
	if !verify {
		if len(args) != 1 {
			return fmt.Errorf("expected exactly one word, got %d arguments", len(args))
		}
		fmt.Println(stemmer.Stem(strings.ToLower(args[0])))
		return nil
	}

	words, err := readLines(vocabularyPath)
	if err != nil {
		return fmt.Errorf("cannot read vocabulary: %w", err)
	}
	expected, err := readLines(stemsPath)
	if err != nil {
		return fmt.Errorf("cannot read stems: %w", err)
	}
	if len(words) != len(expected) {
		return fmt.Errorf("vocabulary has %d lines, stems has %d", len(words), len(expected))
	}

	matched, failed := 0, 0
	for i, w := range words {
		got := stemmer.Stem(w)
		if got == expected[i] {
			matched++
			continue
		}
		failed++
		fmt.Printf("line %d: input %q, got %q, expected %q\n", i+1, w, got, expected[i])
	}

	fmt.Printf("%d matched, %d failed of %d\n", matched, failed, len(words))
	if failed > 0 {
		return fmt.Errorf("%d words stemmed incorrectly", failed)
	}
	return nil
}

func readLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	var lines []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	return lines, sc.Err()
}
