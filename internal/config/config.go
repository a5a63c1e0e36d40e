package config

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Credential holds the two values needed to query the Notion database:
// the full query endpoint URL and the integration API key.
type Credential struct {
	DBURL  string
	APIKey string
}

// Load opens the secrets file at path and parses it. A file that cannot
// be opened is reported as a path-not-found error carrying the path.
func Load(path string) (Credential, error) {
	f, err := os.Open(path)
	if err != nil {
		return Credential{}, &PathError{Path: path}
	}
	defer f.Close()

	return Parse(f, path)
}

// Parse reads KEY=VALUE lines from r and returns the credential pair.
//
// Each non-empty line must contain a delimiter; the first '=' splits key
// from value and any further '=' characters belong to the value. The only
// recognized keys are DB_URL and API_KEY. Values are trimmed and must be
// non-empty after trimming. Parsing stops at the first bad line, but
// missing keys are only detected after the whole stream has been read,
// DB_URL first. If a key repeats, the last occurrence wins.
func Parse(r io.Reader, sourceName string) (Credential, error) {
	var dbURL, apiKey *string

	scanner := bufio.NewScanner(r)
	for n := 1; scanner.Scan(); n++ {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}

		key, value, found := strings.Cut(line, "=")
		if !found {
			return Credential{}, &LineError{Kind: KindMalformedLine, Source: sourceName, Line: n}
		}

		value = strings.TrimSpace(value)

		switch strings.TrimSpace(key) {
		case "DB_URL":
			if value == "" {
				return Credential{}, &LineError{Kind: KindEmptyValue, Source: sourceName, Line: n}
			}
			dbURL = &value
		case "API_KEY":
			if value == "" {
				return Credential{}, &LineError{Kind: KindEmptyValue, Source: sourceName, Line: n}
			}
			apiKey = &value
		default:
			return Credential{}, &LineError{
				Kind:   KindUnexpectedKey,
				Source: sourceName,
				Line:   n,
				Key:    strings.TrimSpace(key),
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return Credential{}, fmt.Errorf("failed to read %s: %w", sourceName, err)
	}

	// Missing keys are checked at end of stream, DB_URL before API_KEY.
	if dbURL == nil {
		return Credential{}, &MissingKeyError{Key: "DB_URL", Source: sourceName}
	}
	if apiKey == nil {
		return Credential{}, &MissingKeyError{Key: "API_KEY", Source: sourceName}
	}

	return Credential{DBURL: *dbURL, APIKey: *apiKey}, nil
}
