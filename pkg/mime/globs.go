package mime

import (
	"bufio"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"
)

// GlobsFile Weighted file name pattern table loaded from the shared
// database "globs2" sources
//
// The table keeps every rule in load order plus a literal index for
// globs containing no wildcard characters. A later literal rule for the
// same exact string overwrites the index pointer, so the most recently
// loaded literal wins regardless of weight.
type GlobsFile struct {
	rules    []GlobRule
	literals map[string]int
}

// NewGlobsFile Create an empty glob table
func NewGlobsFile() *GlobsFile {
	return &GlobsFile{
		rules:    make([]GlobRule, 0),
		literals: make(map[string]int),
	}
}

// Parse Ingest one source's worth of globs2 lines
//
// Lines have the form `weight:type:glob:flags`; fields after flags are
// ignored and lines starting with '#' are comments. A line missing any
// of the three mandatory fields, or carrying an unparseable weight or
// glob, fails the load of this source.
func (g *GlobsFile) Parse(r io.Reader) (err error) {
	var (
		scanner *bufio.Scanner = bufio.NewScanner(r)
		lineno  int
	)
	for scanner.Scan() {
		lineno++
		var line string = scanner.Text()
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.SplitN(line, ":", 5)
		if len(fields) < 3 {
			return fmt.Errorf("globs: line %d: expected 'weight:type:glob', got %q", lineno, line)
		}

		var rule GlobRule
		if rule.Weight, err = parseWeight(fields[0]); err != nil {
			return fmt.Errorf("globs: line %d: %w", lineno, err)
		}

		rule.Type, rule.Pattern = fields[1], fields[2]
		if rule.Type == "" || rule.Pattern == "" {
			return fmt.Errorf("globs: line %d: empty type or glob in %q", lineno, line)
		}
		if _, err = filepath.Match(rule.Pattern, ""); err != nil {
			return fmt.Errorf("globs: line %d: bad glob %q: %w", lineno, rule.Pattern, err)
		}

		if len(fields) > 3 {
			for _, flag := range strings.Split(fields[3], ",") {
				if flag == "cs" {
					rule.CaseSensitive = true
				}
			}
		}
		rule.lower = strings.ToLower(rule.Pattern)

		g.rules = append(g.rules, rule)
		if !strings.ContainsAny(rule.Pattern, "*?[") {
			g.literals[rule.Pattern] = len(g.rules) - 1
		}
	}
	err = scanner.Err()
	return
}

func parseWeight(field string) (int, error) {
	if field == "" {
		return DefaultGlobWeight, nil
	}
	weight, err := strconv.Atoi(field)
	if err != nil {
		return 0, fmt.Errorf("bad weight %q", field)
	}
	return weight, nil
}

// Match Resolve a file name to a type name
//
// A literal rule for the exact name is returned immediately, bypassing
// the weighted comparison. Otherwise every rule is scanned: a rule
// matches case sensitively, or against the lowercased name and pattern
// when not flagged `cs`. Of the matching rules the highest weight wins,
// then the longest pattern, then the first encountered in scan order.
//
// The name must be a file base name: glob wildcards do not cross a
// path separator, so a name containing '/' will not match suffix
// patterns. Callers resolving paths should strip the directory first.
func (g *GlobsFile) Match(name string) (string, bool) {
	if i, ok := g.literals[name]; ok {
		return g.rules[i].Type, true
	}

	var (
		best  *GlobRule
		lower string = strings.ToLower(name)
	)
	for i := range g.rules {
		rule := &g.rules[i]
		matched, _ := filepath.Match(rule.Pattern, name)
		if !matched && !rule.CaseSensitive {
			matched, _ = filepath.Match(rule.lower, lower)
		}
		if !matched {
			continue
		}
		if best == nil || rule.Weight > best.Weight ||
			(rule.Weight == best.Weight && len(rule.Pattern) > len(best.Pattern)) {
			best = rule
		}
	}

	if best == nil {
		return "", false
	}
	return best.Type, true
}

// Rules The loaded rule sequence in load order
func (g *GlobsFile) Rules() []GlobRule {
	return g.rules
}
