package parser

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Prefix marks the start of a field value in a command line, e.g. "r/"
type Prefix string

const (
	PrefixName    Prefix = "n/"
	PrefixPhone   Prefix = "p/"
	PrefixEmail   Prefix = "e/"
	PrefixAddress Prefix = "a/"
	PrefixTag     Prefix = "t/"
	PrefixRemark  Prefix = "r/"
)

// ArgMultimap holds the preamble and every value given for each prefix, in order
type ArgMultimap struct {
	Preamble string
	values   map[Prefix][]string
}

// Value returns the last value given for p
func (m ArgMultimap) Value(p Prefix) (string, bool) {
	vs := m.values[p]
	if len(vs) == 0 {
		return "", false
	}
	return vs[len(vs)-1], true
}

// ValuePtr returns the last value given for p, or nil if p is absent
func (m ArgMultimap) ValuePtr(p Prefix) *string {
	v, ok := m.Value(p)
	if !ok {
		return nil
	}
	return &v
}

// All returns every value given for p
func (m ArgMultimap) All(p Prefix) []string {
	return m.values[p]
}

// Has reports whether p appeared at all
func (m ArgMultimap) Has(p Prefix) bool {
	return len(m.values[p]) > 0
}

type prefixPosition struct {
	prefix Prefix
	start  int // index of the first character of the prefix
}

// Tokenize splits args at each prefix. A prefix only counts at the start of args
// or right after whitespace (tabs included), so "a/b" inside a value such as "Blk 1/2" is kept.
func Tokenize(args string, prefixes ...Prefix) ArgMultimap {
	padded := " " + args
	var positions []prefixPosition
	for _, p := range prefixes {
		from := 1
		for {
			i := strings.Index(padded[from:], string(p))
			if i < 0 {
				break
			}
			start := from + i
			if r, _ := utf8.DecodeLastRuneInString(padded[:start]); unicode.IsSpace(r) {
				positions = append(positions, prefixPosition{prefix: p, start: start})
			}
			from = start + 1
		}
	}
	sort.Slice(positions, func(i, j int) bool { return positions[i].start < positions[j].start })

	result := ArgMultimap{values: make(map[Prefix][]string)}
	end := len(padded)
	if len(positions) > 0 {
		end = positions[0].start
	}
	result.Preamble = strings.TrimSpace(padded[:end])

	for i, pos := range positions {
		valueEnd := len(padded)
		if i+1 < len(positions) {
			valueEnd = positions[i+1].start
		}
		value := strings.TrimSpace(padded[pos.start+len(pos.prefix) : valueEnd])
		result.values[pos.prefix] = append(result.values[pos.prefix], value)
	}

	return result
}
