package printcolor

import (
	"regexp"
	"sort"
	"strings"
)

const minFuzzyScore = 0.5

var shorthandRegExp *regexp.Regexp

func init() {
	regExp, err := regexp.Compile(`^(?:pantone\s*)?(\S+?)([cum])$`)
	if err != nil {
		panic(err)
	}
	shorthandRegExp = regExp
}

// Long finish words and the letter code Pantone names use for them.
var suffixWords = []struct {
	word, letter string
}{
	{"coated", "C"},
	{"uncoated", "U"},
	{"matte", "M"},
}

var finishSuffixes = []string{"c", "u", "m", " coated", " uncoated", " matte"}

var noiseTokens = map[string]struct{}{
	"pantone": {},
	"c":       {},
	"u":       {},
	"m":       {},
}

// normalizeKey lowercases and collapses whitespace.
func normalizeKey(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), " ")
}

// expandQuery lists lookup keys for a user query, most likely first.
// "485C", "485 coated", "pantone 485" and "warm red" all end up producing
// the key of the canonical "Pantone ... C" name somewhere in the list.
// The list may contain duplicates.
func expandQuery(raw string) []string {
	q := strings.TrimSpace(raw)
	ql := strings.ToLower(q)
	prefixed := strings.HasPrefix(ql, "pantone")

	candidates := []string{normalizeKey(q)}
	if !prefixed {
		candidates = append(candidates, normalizeKey("pantone "+q))
	}

	for _, s := range suffixWords {
		if !strings.Contains(ql, s.word) {
			continue
		}
		replaced := strings.ReplaceAll(ql, s.word, s.letter)
		candidates = append(candidates, normalizeKey(replaced))
		if !strings.HasPrefix(replaced, "pantone") {
			candidates = append(candidates, normalizeKey("pantone "+replaced))
		}
	}

	if m := shorthandRegExp.FindStringSubmatch(ql); m != nil {
		candidates = append(candidates, normalizeKey("pantone "+m[1]+" "+strings.ToUpper(m[2])))
	}

	if !hasFinishSuffix(ql) {
		for _, s := range []string{"c", "u", "m"} {
			candidates = append(candidates, normalizeKey(ql+" "+s))
			if !prefixed {
				candidates = append(candidates, normalizeKey("pantone "+ql+" "+s))
			}
		}
	}
	return candidates
}

func hasFinishSuffix(ql string) bool {
	for _, s := range finishSuffixes {
		if strings.HasSuffix(ql, s) {
			return true
		}
	}
	return false
}

type tokenSet map[string]struct{}

func tokenize(s string) tokenSet {
	set := make(tokenSet)
	for _, t := range strings.Fields(strings.ToLower(s)) {
		set[t] = struct{}{}
	}
	return set
}

func (s tokenSet) without(noise tokenSet) tokenSet {
	out := make(tokenSet, len(s))
	for t := range s {
		if _, ok := noise[t]; !ok {
			out[t] = struct{}{}
		}
	}
	return out
}

func (s tokenSet) overlap(other tokenSet) int {
	n := 0
	for t := range s {
		if _, ok := other[t]; ok {
			n++
		}
	}
	return n
}

func (s tokenSet) joined() string {
	tokens := make([]string, 0, len(s))
	for t := range s {
		tokens = append(tokens, t)
	}
	sort.Strings(tokens)
	return strings.Join(tokens, " ")
}

// fuzzyScore rates in [0, 1] how well query matches a display name, using
// token overlap with a flat bonus when the distinguishing words line up.
func fuzzyScore(query, name string) float64 {
	q := tokenize(query)
	c := tokenize(name)
	if len(q) == 0 {
		return 0
	}

	qm := q.without(noiseTokens)
	cm := c.without(noiseTokens)
	if len(qm) == 0 {
		// only noise words, e.g. "Pantone C"
		return float64(q.overlap(c)) / float64(max(len(q), len(c)))
	}

	score := float64(qm.overlap(cm)) / float64(max(len(qm), len(cm)))
	qCore, cCore := qm.joined(), cm.joined()
	if strings.Contains(cCore, qCore) || strings.Contains(qCore, cCore) {
		score += 0.3
	}
	return min(score, 1.0)
}
