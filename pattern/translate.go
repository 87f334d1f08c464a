// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package pattern

import (
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"
)

// maxClassSize bounds the expansion of a negated class that mixes ranges
// and single characters.
const maxClassSize = 4096

// globSpecial are the runes glob treats as syntax outside a class.
const globSpecial = `\*?[]{},`

// classItem is one member of a bracket class: a single rune when lo == hi.
type classItem struct {
	lo, hi rune
}

// translate rewrites a shell glob into glob syntax. Only "*", "?" and
// "[...]" are operators; braces and backslashes are literal, and a "[" with
// no closing "]" is literal too.
func translate(pat string) (string, error) {
	src := []rune(pat)
	var b strings.Builder

	for i := 0; i < len(src); i++ {
		r := src[i]
		switch r {
		case '*', '?':
			b.WriteRune(r)
		case '[':
			end := classEnd(src, i)
			if end < 0 {
				writeLiteral(&b, r)
				continue
			}
			if err := writeClass(&b, src[i+1:end]); err != nil {
				return "", err
			}
			i = end
		default:
			writeLiteral(&b, r)
		}
	}
	return b.String(), nil
}

// classEnd returns the index of the "]" closing the class opened at src[open],
// or -1. A "]" right after "[" or "[!" is a member, not the end.
func classEnd(src []rune, open int) int {
	j := open + 1
	if j < len(src) && src[j] == '!' {
		j++
	}
	if j < len(src) && src[j] == ']' {
		j++
	}
	for ; j < len(src); j++ {
		if src[j] == ']' {
			return j
		}
	}
	return -1
}

func writeLiteral(b *strings.Builder, r rune) {
	if strings.ContainsRune(globSpecial, r) {
		b.WriteByte('\\')
	}
	b.WriteRune(r)
}

func parseClass(body []rune) (items []classItem, negated bool) {
	if len(body) > 0 && body[0] == '!' {
		negated = true
		body = body[1:]
	}
	for k := 0; k < len(body); {
		if k+2 < len(body) && body[k+1] == '-' {
			if body[k] <= body[k+2] {
				items = append(items, classItem{body[k], body[k+2]})
			}
			k += 3
			continue
		}
		items = append(items, classItem{body[k], body[k]})
		k++
	}
	return items, negated
}

// writeClass emits the class body (without brackets) in a form glob parses
// the same way fnmatch does.
func writeClass(b *strings.Builder, body []rune) error {
	items, negated := parseClass(body)

	switch {
	case len(items) == 0 && negated:
		// Nothing excluded: any single character.
		b.WriteByte('?')
		return nil
	case len(items) == 0:
		// Nothing included: a class that cannot match.
		fmt.Fprintf(b, "[!%c-%c]", rune(0), utf8.MaxRune)
		return nil
	case negated && len(items) == 1:
		fmt.Fprintf(b, "[!%c-%c]", items[0].lo, items[0].hi)
		return nil
	case negated:
		return writeNegatedList(b, items)
	}

	alts := make([]string, 0, len(items))
	for _, it := range items {
		alts = append(alts, itemAlternatives(it)...)
	}
	if len(alts) == 1 {
		b.WriteString(alts[0])
		return nil
	}
	b.WriteByte('{')
	b.WriteString(strings.Join(alts, ","))
	b.WriteByte('}')
	return nil
}

// itemAlternatives renders one member of a positive class. A range starting
// at "!" would read as a negation, so "!" is split off as a literal.
func itemAlternatives(it classItem) []string {
	var out []string
	if it.lo == '!' {
		var lit strings.Builder
		writeLiteral(&lit, '!')
		out = append(out, lit.String())
		it.lo++
		if it.lo > it.hi {
			return out
		}
	}
	if it.lo == it.hi {
		var lit strings.Builder
		writeLiteral(&lit, it.lo)
		return append(out, lit.String())
	}
	return append(out, fmt.Sprintf("[%c-%c]", it.lo, it.hi))
}

// writeNegatedList expands the members into an escaped character list. "-"
// goes last so the list is never read as a range.
func writeNegatedList(b *strings.Builder, items []classItem) error {
	set := map[rune]struct{}{}
	for _, it := range items {
		if int(it.hi-it.lo) >= maxClassSize || len(set) >= maxClassSize {
			return fmt.Errorf("%w: class spans more than %d characters", ErrInvalidPattern, maxClassSize)
		}
		for r := it.lo; r <= it.hi; r++ {
			set[r] = struct{}{}
		}
	}
	if len(set) > maxClassSize {
		return fmt.Errorf("%w: class spans more than %d characters", ErrInvalidPattern, maxClassSize)
	}

	runes := make([]rune, 0, len(set))
	for r := range set {
		runes = append(runes, r)
	}
	sort.Slice(runes, func(i, j int) bool {
		if runes[i] == '-' || runes[j] == '-' {
			return runes[j] == '-' && runes[i] != '-'
		}
		return runes[i] < runes[j]
	})

	b.WriteString("[!")
	for _, r := range runes {
		b.WriteByte('\\')
		b.WriteRune(r)
	}
	b.WriteByte(']')
	return nil
}
