// Where: internal/infra/envfile/source.go
// What: Key/value sources for component creation.
// Why: Read the process environment and existing dotenv files in a stable order.
package envfile

import (
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/joho/godotenv"

	"github.com/Newmi1988/environmental/internal/domain/component"
	"github.com/Newmi1988/environmental/internal/domain/failure"
)

// ProcessEnvironment reads variables from the running process.
type ProcessEnvironment struct {
	Environ func() []string
}

// Read returns KEY=VALUE pairs sorted by key. Entries with an empty key are skipped.
// A non-empty filter keeps keys that start with it, ignoring case.
func (p ProcessEnvironment) Read(filter string) []component.Pair {
	environ := p.Environ
	if environ == nil {
		environ = os.Environ
	}
	upperFilter := strings.ToUpper(filter)
	var pairs []component.Pair
	for _, item := range environ() {
		key, value, ok := strings.Cut(item, "=")
		if !ok || key == "" {
			continue
		}
		if upperFilter != "" && !strings.HasPrefix(strings.ToUpper(key), upperFilter) {
			continue
		}
		pairs = append(pairs, component.Pair{Key: key, Value: value})
	}
	sortPairs(pairs)
	return pairs
}

// ReadDotenv parses a dotenv file and returns its pairs sorted by key.
func ReadDotenv(path string) ([]component.Pair, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("%w: read %s: %w", failure.ErrIO, path, err)
	}
	values, err := godotenv.Read(path)
	if err != nil {
		return nil, fmt.Errorf("%w: dotenv %s: %w", failure.ErrParse, path, err)
	}
	pairs := make([]component.Pair, 0, len(values))
	for key, value := range values {
		pairs = append(pairs, component.Pair{Key: key, Value: value})
	}
	sortPairs(pairs)
	return pairs, nil
}

// LoadIntoProcess loads a dotenv file into the process environment
// without overriding variables that are already set.
func LoadIntoProcess(path string) error {
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("%w: load env file %s: %w", failure.ErrIO, path, err)
	}
	return nil
}

func sortPairs(pairs []component.Pair) {
	slices.SortFunc(pairs, func(a, b component.Pair) int {
		return strings.Compare(a.Key, b.Key)
	})
}
