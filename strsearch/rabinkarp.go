// SPDX-License-Identifier: MIT

package strsearch

// Rolling hash parameters: one digit per byte, reduced modulo a small prime.
const (
	rkBase = 256
	rkMod  = 107
)

// RabinKarp compares rolling polynomial hashes of each text window with the
// pattern hash and confirms every hash hit literally, so collisions never
// produce false matches. Expected O(n+m); O(n·m) when hashes collide often.
func RabinKarp(text, pattern string) []int {
	n, m := len(text), len(pattern)
	matches := make([]int, 0)
	if m == 0 || m > n {
		return matches
	}

	// lead = base^(m-1) mod q, the weight of a window's first byte.
	lead := 1
	for i := 1; i < m; i++ {
		lead = lead * rkBase % rkMod
	}

	var hp, ht int
	for i := 0; i < m; i++ {
		hp = (hp*rkBase + int(pattern[i])) % rkMod
		ht = (ht*rkBase + int(text[i])) % rkMod
	}

	for s := 0; ; s++ {
		if hp == ht && text[s:s+m] == pattern {
			matches = append(matches, s)
		}
		if s+m == n {
			break
		}
		// Drop text[s], shift, add text[s+m]. Adding rkMod keeps it non-negative.
		ht = (ht + rkMod - int(text[s])*lead%rkMod) % rkMod
		ht = (ht*rkBase + int(text[s+m])) % rkMod
	}

	return matches
}
