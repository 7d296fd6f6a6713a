// SPDX-License-Identifier: MIT

// Package strsearch finds every occurrence of a pattern in a text with three
// classic exact-matching algorithms: Rabin–Karp, Knuth–Morris–Pratt and
// Boyer–Moore (bad-character rule, Horspool shift).
//
// All three share the Func signature and the same contract:
//
//   - matching is byte-wise, so offsets are byte offsets into text and a
//     multi-byte UTF-8 rune matches only as its exact byte sequence;
//   - overlapping occurrences are all reported, in ascending order;
//   - an empty pattern, or one longer than text, yields an empty non-nil slice.
//
// The functions are pure and safe for concurrent use.
package strsearch

// Func reports the start offsets of every occurrence of pattern in text.
type Func func(text, pattern string) []int
