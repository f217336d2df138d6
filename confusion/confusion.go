// Package confusion implements the symmetric substitution-cost table used by
// the weighted edit distance: a sparse map of confusable token pairs to a
// cost strictly below 1, so that e.g. "北" substituting for "背" is cheaper
// than an arbitrary substitution.
package confusion

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/tassa-yoniso-manasi-karoto/hanzimatch/matcherr"
)

// DefaultCost is the substitution cost used when no entry exists for a pair,
// and matches the cost of an ordinary Levenshtein substitution.
const DefaultCost = 1.0

// Table is a symmetric sparse mapping of token pairs to substitution costs
// in (0,1]. It is immutable after construction: Lookup never allocates.
type Table struct {
	costs map[pairKey]float64
}

type pairKey struct {
	a, b string
}

func newPairKey(a, b string) pairKey {
	if a <= b {
		return pairKey{a, b}
	}
	return pairKey{b, a}
}

// New builds a Table from a nested {a: {b: cost}} map, as parsed from the
// confusion-matrix JSON file format. The table is made symmetric by storing
// min(entry(a,b), entry(b,a)) under the unordered pair, per the data model's
// invariant that Lookup never reports a cost greater than 1 and resolves
// asymmetric files deterministically rather than trusting whichever
// direction happened to be listed.
func New(raw map[string]map[string]float64) *Table {
	t := &Table{costs: make(map[pairKey]float64)}
	for a, inner := range raw {
		for b, cost := range inner {
			if a == b {
				continue // cost(a,a)=0 is implicit, never stored
			}
			key := newPairKey(a, b)
			if existing, ok := t.costs[key]; ok {
				if cost < existing {
					t.costs[key] = cost
				}
			} else {
				t.costs[key] = cost
			}
		}
	}
	return t
}

// Empty returns a Table with no entries: every substitution costs 1, the
// default used when a matcher is configured without a confusion file.
func Empty() *Table {
	return &Table{costs: map[pairKey]float64{}}
}

// Lookup returns the substitution cost for (a,b). Identical tokens always
// cost 0; an absent pair defaults to DefaultCost; present pairs are read
// symmetrically regardless of which order New's loader saw them in.
func (t *Table) Lookup(a, b string) float64 {
	if a == b {
		return 0
	}
	if t == nil {
		return DefaultCost
	}
	if cost, ok := t.costs[newPairKey(a, b)]; ok {
		return cost
	}
	return DefaultCost
}

// Len returns the number of distinct unordered pairs held by the table.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.costs)
}

// schemaDoc is the fixed JSON Schema for the confusion-matrix file format:
// a nested object of objects, every leaf a number in (0,1].
const schemaDoc = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "additionalProperties": {
    "type": "object",
    "additionalProperties": {
      "type": "number",
      "exclusiveMinimum": 0,
      "maximum": 1
    }
  }
}`

var compiledSchema *jsonschema.Schema

func schema() (*jsonschema.Schema, error) {
	if compiledSchema != nil {
		return compiledSchema, nil
	}
	compiler := jsonschema.NewCompiler()
	const resourceURL = "mem://confusion-matrix-schema.json"
	if err := compiler.AddResource(resourceURL, strings.NewReader(schemaDoc)); err != nil {
		return nil, fmt.Errorf("confusion: failed to register schema: %w", err)
	}
	compiled, err := compiler.Compile(resourceURL)
	if err != nil {
		return nil, fmt.Errorf("confusion: failed to compile schema: %w", err)
	}
	compiledSchema = compiled
	return compiledSchema, nil
}

// LoadFile reads and parses a confusion-matrix JSON file. A missing path
// (empty string) yields an empty table and no error: the file is optional,
// absence just means every substitution costs 1. Any other failure to read,
// validate, or unmarshal the file is reported as an IO_FAILURE-class error,
// fatal at matcher construction.
func LoadFile(path string) (*Table, error) {
	if path == "" {
		return Empty(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("confusion: %w: reading %q: %v", matcherr.ErrIOFailure, path, err)
	}

	var payload interface{}
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("confusion: %w: %q is not valid JSON: %v", matcherr.ErrIOFailure, path, err)
	}

	s, err := schema()
	if err != nil {
		return nil, fmt.Errorf("confusion: %w: %v", matcherr.ErrIOFailure, err)
	}
	if err := s.Validate(payload); err != nil {
		return nil, fmt.Errorf("confusion: %w: %q does not match the confusion-matrix schema: %v", matcherr.ErrIOFailure, path, err)
	}

	var raw map[string]map[string]float64
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("confusion: %w: %q: %v", matcherr.ErrIOFailure, path, err)
	}
	return New(raw), nil
}
