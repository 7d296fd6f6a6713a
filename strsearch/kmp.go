// SPDX-License-Identifier: MIT

package strsearch

// PrefixFunction returns pi where pi[i] is the length of the longest proper
// prefix of pattern[:i+1] that is also its suffix.
func PrefixFunction(pattern string) []int {
	pi := make([]int, len(pattern))
	k := 0
	for i := 1; i < len(pattern); i++ {
		for k > 0 && pattern[i] != pattern[k] {
			k = pi[k-1]
		}
		if pattern[i] == pattern[k] {
			k++
		}
		pi[i] = k
	}

	return pi
}

// KMP scans text once, falling back through the prefix function on a
// mismatch instead of re-reading text. O(n+m).
func KMP(text, pattern string) []int {
	n, m := len(text), len(pattern)
	matches := make([]int, 0)
	if m == 0 || m > n {
		return matches
	}

	pi := PrefixFunction(pattern)
	q := 0 // bytes of pattern matched so far
	for i := 0; i < n; i++ {
		for q > 0 && text[i] != pattern[q] {
			q = pi[q-1]
		}
		if text[i] == pattern[q] {
			q++
		}
		if q == m {
			matches = append(matches, i-m+1)
			q = pi[q-1]
		}
	}

	return matches
}
