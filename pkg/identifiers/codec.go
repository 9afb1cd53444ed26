package identifiers

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"unicode"

	"github.com/agentstation/bookstore/pkg/constants"
	"github.com/agentstation/bookstore/pkg/errors"
)

// ValidatePrefix reports whether prefix can be stored in the counter file.
// A prefix must be non-empty and free of the counter separator and whitespace.
func ValidatePrefix(prefix string) error {
	if prefix == "" {
		return &errors.ValidationError{
			Field:   "prefix",
			Message: "cannot be empty",
		}
	}
	if strings.Contains(prefix, constants.CounterSeparator) {
		return errors.NewValidationError("prefix", prefix, "cannot contain "+strconv.Quote(constants.CounterSeparator))
	}
	if strings.IndexFunc(prefix, unicode.IsSpace) >= 0 {
		return errors.NewValidationError("prefix", prefix, "cannot contain whitespace")
	}
	return nil
}

// FormatID renders an identifier as "{prefix}-{counter}".
func FormatID(prefix string, counter int) string {
	return prefix + constants.IdentifierSeparator + strconv.Itoa(counter)
}

// ParseID splits an identifier into its prefix and counter.
// The counter is taken after the last separator so prefixes may contain dashes.
func ParseID(id string) (prefix string, counter int, ok bool) {
	i := strings.LastIndex(id, constants.IdentifierSeparator)
	if i <= 0 || i == len(id)-1 {
		return "", 0, false
	}
	n, err := strconv.Atoi(id[i+1:])
	if err != nil || n <= 0 {
		return "", 0, false
	}
	return id[:i], n, true
}

// ParseCounters reads "prefix:counter" lines of any length. A line is
// skipped unless it has exactly one separator and a valid prefix. Its counter
// must parse as an integer and must not be negative ("PB:-1" is skipped).
// When a prefix repeats the highest counter wins.
func ParseCounters(r io.Reader) (map[string]int, error) {
	counters := make(map[string]int)

	br := bufio.NewReader(r)
	for {
		line, err := br.ReadString('\n')
		if line != "" {
			if prefix, counter, ok := parseLine(line); ok {
				if existing, seen := counters[prefix]; !seen || counter > existing {
					counters[prefix] = counter
				}
			}
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read counters: %w", err)
		}
	}

	return counters, nil
}

func parseLine(line string) (string, int, bool) {
	parts := strings.Split(strings.TrimSpace(line), constants.CounterSeparator)
	if len(parts) != 2 {
		return "", 0, false
	}

	prefix := strings.TrimSpace(parts[0])
	if ValidatePrefix(prefix) != nil {
		return "", 0, false
	}

	counter, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil || counter < 0 {
		return "", 0, false
	}

	return prefix, counter, true
}

// EncodeCounters writes one "prefix:counter" line per prefix, sorted by prefix.
func EncodeCounters(w io.Writer, counters map[string]int) error {
	prefixes := make([]string, 0, len(counters))
	for prefix := range counters {
		prefixes = append(prefixes, prefix)
	}
	sort.Strings(prefixes)

	bw := bufio.NewWriter(w)
	for _, prefix := range prefixes {
		if _, err := fmt.Fprintf(bw, "%s%s%d\n", prefix, constants.CounterSeparator, counters[prefix]); err != nil {
			return err
		}
	}
	return bw.Flush()
}
