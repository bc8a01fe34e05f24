// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package grappe

import (
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Cluster is a single extended grapheme cluster (per Unicode UAX #29)
// together with its advisory display width. Width is never used by
// PageBuilder for any decision; it is computed on demand for consumers.
type Cluster struct {
	Text  string
	Width int // display cells, 0..=255
}

// ClusterAt returns the byte offset of the grapheme cluster containing
// index i within s (clamped to the nearest codepoint boundary), and that
// cluster's text and display width. If i is at or beyond len(s), it
// returns (len(s), nil).
func ClusterAt(s string, i int) (start int, cluster *Cluster) {
	if i >= len(s) {
		return len(s), nil
	}
	if i < 0 {
		i = 0
	}
	i = clampToRuneBoundary(s, i)

	start = previousClusterBoundary(s, i)
	end := nextClusterBoundary(s, start)

	text := s[start:end]
	return start, &Cluster{Text: text, Width: clusterWidth(text)}
}

// clampToRuneBoundary rounds i down to the start of the codepoint it falls
// within.
func clampToRuneBoundary(s string, i int) int {
	for i > 0 && isUTF8Continuation(s[i]) {
		i--
	}
	return i
}

// previousClusterBoundary finds the grapheme-cluster boundary at or before
// byte offset i by walking cluster boundaries forward from the start of s
// until passing i. uniseg has no backward cursor, so this is the idiomatic
// forward-scan approach for random access by byte offset.
func previousClusterBoundary(s string, i int) int {
	pos := 0
	remainder := s
	for len(remainder) > 0 {
		cluster, rest, _, _ := uniseg.FirstGraphemeClusterInString(remainder, -1)
		next := pos + len(cluster)
		if next > i {
			return pos
		}
		pos = next
		remainder = rest
	}
	return pos
}

// nextClusterBoundary returns the end of the single grapheme cluster that
// starts at byte offset start.
func nextClusterBoundary(s string, start int) int {
	cluster, _, _, _ := uniseg.FirstGraphemeClusterInString(s[start:], -1)
	return start + len(cluster)
}

// clusterWidth sums the East-Asian-aware display width of each rune in a
// cluster, capped at 255 (a single cluster's advisory width never needs to
// exceed one byte's worth of cells).
func clusterWidth(cluster string) int {
	w := 0
	for _, r := range cluster {
		w += runewidth.RuneWidth(r)
	}
	if w > 255 {
		w = 255
	}
	return w
}

// Clusters returns every grapheme cluster in s in order. It is a
// convenience wrapper over uniseg's segmentation for callers that want to
// walk a whole line rather than locate a single index.
func Clusters(s string) []Cluster {
	var out []Cluster
	gr := uniseg.NewGraphemes(s)
	for gr.Next() {
		text := gr.Str()
		out = append(out, Cluster{Text: text, Width: clusterWidth(text)})
	}
	return out
}
