// SPDX-License-Identifier: MIT

package strsearch

// badCharTable maps each byte to the distance from its last occurrence in
// pattern[:m-1] to the pattern end. Bytes absent from that prefix map to m,
// so every entry is at least 1.
func badCharTable(pattern string) [256]int {
	m := len(pattern)
	var table [256]int
	for i := range table {
		table[i] = m
	}
	for i := 0; i < m-1; i++ {
		table[pattern[i]] = m - 1 - i
	}

	return table
}

// BoyerMoore compares each window right to left and then slides it by the
// bad-character distance of the window's last byte. That shift never skips
// an occurrence, so overlapping matches are found too. Sublinear on typical
// text; O(n·m) worst case.
func BoyerMoore(text, pattern string) []int {
	n, m := len(text), len(pattern)
	matches := make([]int, 0)
	if m == 0 || m > n {
		return matches
	}

	table := badCharTable(pattern)
	for s := 0; s <= n-m; s += table[text[s+m-1]] {
		j := m - 1
		for j >= 0 && pattern[j] == text[s+j] {
			j--
		}
		if j < 0 {
			matches = append(matches, s)
		}
	}

	return matches
}
