package cli

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/khalid-nowaf/contamers/pkg/strtrie"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
	"gopkg.in/yaml.v3"
)

// bomReader drops a leading UTF-8/UTF-16 byte order mark and decodes UTF-16 input to UTF-8.
func bomReader(r io.Reader) io.Reader {
	return transform.NewReader(r, unicode.BOMOverride(encoding.Nop.NewDecoder()))
}

// parsePeople reads a YAML (.yaml, .yml) or JSON (.json) array of people.
func parsePeople(filePath string) ([]Person, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	data, err := io.ReadAll(bomReader(file))
	if err != nil {
		return nil, err
	}

	var people []Person
	switch ext := strings.ToLower(filepath.Ext(filePath)); ext {
	case ".json":
		err = json.Unmarshal(data, &people)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &people)
	default:
		return nil, fmt.Errorf("unsupported people file extension %q, use .json, .yaml or .yml", ext)
	}
	if err != nil {
		return nil, err
	}
	return people, nil
}

// parseDictionary inserts every non-blank line of the file into a new trie.
// It returns the trie and the number of lines inserted.
func parseDictionary(filePath string) (*strtrie.Trie, int, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, 0, err
	}
	defer file.Close()

	trie := strtrie.New()
	lines := 0
	scanner := bufio.NewScanner(bomReader(file))
	for scanner.Scan() {
		word := strings.TrimSpace(scanner.Text())
		if word == "" {
			continue
		}
		trie.Insert(word)
		lines++
	}
	if err := scanner.Err(); err != nil {
		return nil, 0, err
	}
	return trie, lines, nil
}
