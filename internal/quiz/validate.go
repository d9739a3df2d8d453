package quiz

import "strings"

// Validate compares a learner submission against the canonical answer.
//
// Rules:
//   - Unanswered and timed-out submissions are always incorrect.
//   - Set vs set: correct iff both contain exactly the same values,
//     order-independent.
//   - Set vs single: correct iff the set contains the single value, in
//     either direction.
//   - Single vs single: whitespace-trimmed, case-insensitive equality.
//
// Pure function; no state is touched.
func Validate(submitted, correct Answer) bool {
	if submitted.IsUnanswered() || submitted.IsTimeout() {
		return false
	}
	if correct.IsUnanswered() || correct.IsTimeout() {
		return false
	}

	switch {
	case submitted.IsMulti() && correct.IsMulti():
		return sameSet(submitted.values, correct.values)
	case submitted.IsMulti():
		return containsFold(submitted.values, correct.Value())
	case correct.IsMulti():
		return containsFold(correct.values, submitted.Value())
	default:
		return equalFold(submitted.Value(), correct.Value())
	}
}

func equalFold(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}

func containsFold(set []string, value string) bool {
	for _, v := range set {
		if equalFold(v, value) {
			return true
		}
	}
	return false
}

// sameSet reports whether two value lists hold the same normalized set.
// Duplicates collapse: {"a","a"} and {"a"} compare equal.
func sameSet(a, b []string) bool {
	norm := func(vs []string) map[string]bool {
		m := make(map[string]bool, len(vs))
		for _, v := range vs {
			m[strings.ToLower(strings.TrimSpace(v))] = true
		}
		return m
	}
	ma, mb := norm(a), norm(b)
	if len(ma) != len(mb) {
		return false
	}
	for v := range ma {
		if !mb[v] {
			return false
		}
	}
	return true
}
