package rules

import (
	"encoding/json"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// maxNeighbors is the size of a full Moore neighborhood.
const maxNeighbors = 8

// ErrInvalidRule is returned for rule files that cannot describe a life-like rule.
var ErrInvalidRule = errors.New("invalid rule")

// RuleSet is a life-like rule expressed as birth and survival neighbor counts
type RuleSet struct {
	birth   [maxNeighbors + 1]bool
	survive [maxNeighbors + 1]bool
}

// ruleFile is the on-disk JSON shape of a custom ruleset
type ruleFile struct {
	Rule    string `json:"rule"`
	Birth   []int  `json:"birth"`
	Survive []int  `json:"survive"`
}

// NewRuleSet builds a RuleSet from birth and survival neighbor counts
func NewRuleSet(birth, survive []int) (*RuleSet, error) {
	rs := &RuleSet{}
	for _, n := range birth {
		if n < 0 || n > maxNeighbors {
			return nil, errors.Wrapf(ErrInvalidRule, "[NewRuleSet] birth count out of range: %d", n)
		}
		rs.birth[n] = true
	}
	for _, n := range survive {
		if n < 0 || n > maxNeighbors {
			return nil, errors.Wrapf(ErrInvalidRule, "[NewRuleSet] survival count out of range: %d", n)
		}
		rs.survive[n] = true
	}
	return rs, nil
}

// ConwayRuleSet returns B3/S23 as a RuleSet
func ConwayRuleSet() *RuleSet {
	rs, _ := NewRuleSet([]int{3}, []int{2, 3})
	return rs
}

// ParseNotation parses rules written as "B3/S23". Either half may list no counts, e.g. "B3/S".
func ParseNotation(notation string) (*RuleSet, error) {
	parts := strings.Split(strings.ToUpper(strings.TrimSpace(notation)), "/")
	if len(parts) != 2 {
		return nil, errors.Wrapf(ErrInvalidRule, "[ParseNotation] expected B../S.. form: %q", notation)
	}

	var (
		birth, survive         []int
		seenBirth, seenSurvive bool
	)
	for _, part := range parts {
		if part == "" {
			return nil, errors.Wrapf(ErrInvalidRule, "[ParseNotation] empty rule half: %q", notation)
		}
		counts := make([]int, 0, len(part)-1)
		for _, r := range part[1:] {
			n, err := strconv.Atoi(string(r))
			if err != nil {
				return nil, errors.Wrapf(ErrInvalidRule, "[ParseNotation] bad neighbor count %q in %q", r, notation)
			}
			counts = append(counts, n)
		}
		switch part[0] {
		case 'B':
			if seenBirth {
				return nil, errors.Wrapf(ErrInvalidRule, "[ParseNotation] repeated birth half in %q", notation)
			}
			birth, seenBirth = counts, true
		case 'S':
			if seenSurvive {
				return nil, errors.Wrapf(ErrInvalidRule, "[ParseNotation] repeated survival half in %q", notation)
			}
			survive, seenSurvive = counts, true
		default:
			return nil, errors.Wrapf(ErrInvalidRule, "[ParseNotation] unknown rule half %q", part)
		}
	}
	return NewRuleSet(birth, survive)
}

// LoadRuleSet loads a custom ruleset from a JSON file.
//
// The file either names the rule in notation form, {"rule": "B36/S23"}, or
// lists the counts, {"birth": [3], "survive": [2, 3]}.
func LoadRuleSet(filename string) (*RuleSet, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, errors.Wrapf(err, "[LoadRuleSet] failed to read file: %+v", filename)
	}

	var rf ruleFile
	if err = json.Unmarshal(data, &rf); err != nil {
		return nil, errors.Wrapf(err, "[LoadRuleSet] failed to unmarshal data from file: %+v", filename)
	}

	switch {
	case rf.Rule != "":
		return ParseNotation(rf.Rule)
	case rf.Birth == nil && rf.Survive == nil:
		return nil, errors.Wrapf(ErrInvalidRule, "[LoadRuleSet] no rule in file: %+v", filename)
	}
	return NewRuleSet(rf.Birth, rf.Survive)
}

// Rule exposes the set as an injectable Rule
func (rs *RuleSet) Rule() Rule {
	return func(alive bool, neighbors int) bool {
		if neighbors < 0 || neighbors > maxNeighbors {
			return false
		}
		if alive {
			return rs.survive[neighbors]
		}
		return rs.birth[neighbors]
	}
}

// String renders the set in B/S notation
func (rs *RuleSet) String() string {
	var sb strings.Builder
	sb.WriteByte('B')
	for n, ok := range rs.birth {
		if ok {
			sb.WriteString(strconv.Itoa(n))
		}
	}
	sb.WriteString("/S")
	for n, ok := range rs.survive {
		if ok {
			sb.WriteString(strconv.Itoa(n))
		}
	}
	return sb.String()
}
