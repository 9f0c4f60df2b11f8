package moderation

import (
	"bufio"
	"bytes"
	"cooksync/errors"
	"embed"
	"io/fs"
	"strings"
)

//go:embed words/*
var wordsFolder embed.FS

// CensoredData carries the result of the loading process including
// metadata for logging.
type CensoredData struct {
	Words     []string
	Languages []string
}

// LoadEmbedded reads the word lists shipped with the binary.
func LoadEmbedded() (*CensoredData, error) {
	return loadAll(wordsFolder, "words")
}

// loadAll scans the given directory in the embedded FS, identifying .txt
// files as language dictionaries and parsing their contents into a unique
// list of words.
func loadAll(folder embed.FS, path string) (*CensoredData, error) {
	entries, err := fs.ReadDir(folder, path)
	if err != nil {
		return nil, err
	}

	var languages []string
	uniqueWords := make(map[string]struct{})

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		// Track the language based on the filename (e.g. "fr.txt" -> "fr")
		languages = append(languages, strings.TrimSuffix(entry.Name(), ".txt"))

		content, err := fs.ReadFile(folder, path+"/"+entry.Name())
		if err != nil {
			return nil, err
		}

		scanner := bufio.NewScanner(bytes.NewReader(content))
		for scanner.Scan() {
			word := strings.TrimSpace(scanner.Text())
			if word == "" || strings.HasPrefix(word, "#") {
				continue
			}
			uniqueWords[strings.ToLower(word)] = struct{}{}
		}
		if err := scanner.Err(); err != nil {
			return nil, err
		}
	}

	if len(uniqueWords) == 0 {
		return nil, errors.ErrEmptyWords
	}

	data := &CensoredData{Languages: languages}
	for word := range uniqueWords {
		data.Words = append(data.Words, word)
	}
	return data, nil
}
