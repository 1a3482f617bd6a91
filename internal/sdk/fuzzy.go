package sdk

import (
	"sort"
	"strings"
)

// suggestion limits: candidates below the similarity threshold are
// discarded, and only the best few survive
const (
	similarityThreshold = 0.5
	maxSuggestions      = 5
)

// Suggestion is one ranked alternative offered when validation fails
type Suggestion struct {
	Vendor        Vendor  `json:"vendor"`
	Module        string  `json:"module"`
	Kind          Kind    `json:"kind"`
	QualifiedName string  `json:"qualifiedName,omitempty"`
	Similarity    float64 `json:"similarity"`
	SuggestedPath string  `json:"suggestedPath"`
}

// Ratio computes the normalized matching-blocks similarity of two strings:
// 2*M / (len(a)+len(b)), where M is the total length of the matching
// blocks found by recursively extracting the longest common contiguous
// block. 1.0 means the strings are equal; the ordering this produces is
// part of the external suggestion contract, so no other distance metric
// may be substituted.
func Ratio(a, b string) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 1.0
	}
	if len(a) == 0 || len(b) == 0 {
		return 0.0
	}
	m := matchedLength(a, b)
	return 2.0 * float64(m) / float64(len(a)+len(b))
}

// matchedLength sums the sizes of the non-overlapping, order-preserving
// matching blocks: the longest common contiguous block is fixed first,
// then the regions to its left and right are matched recursively.
func matchedLength(a, b string) int {
	ai, bi, size := longestCommonBlock(a, b)
	if size == 0 {
		return 0
	}
	total := size
	total += matchedLength(a[:ai], b[:bi])
	total += matchedLength(a[ai+size:], b[bi+size:])
	return total
}

// longestCommonBlock finds the longest common contiguous block of a and b.
// Of all maximal blocks it returns the one starting earliest in a, ties
// broken by earliest start in b, so block extraction is deterministic.
func longestCommonBlock(a, b string) (ai, bi, size int) {
	// run[j] is the length of the common suffix ending at a[i], b[j]
	// for the row of a currently being processed.
	run := make([]int, len(b)+1)
	for i := 0; i < len(a); i++ {
		prev := 0
		for j := 0; j < len(b); j++ {
			cur := run[j+1]
			if a[i] == b[j] {
				run[j+1] = prev + 1
				if run[j+1] > size {
					size = run[j+1]
					ai = i - size + 1
					bi = j - size + 1
				}
			} else {
				run[j+1] = 0
			}
			prev = cur
		}
	}
	return ai, bi, size
}

// fuzzyCandidate pairs a candidate's comparison text with the declaration
// it reconstructs to
type fuzzyCandidate struct {
	vendor Vendor
	decl   Declaration
}

// Suggest scores the failed path against every module name and declaration
// qualified name in the given indexes. Similarity is computed over the full
// dotted path bodies (vendor token included), lowercased; exact ordering is
// similarity descending with ties broken by candidate path ascending.
func Suggest(path *ApiPath, indexes map[Vendor]*Index) []Suggestion {
	needle := strings.ToLower(path.Body())

	var suggestions []Suggestion
	for _, vendor := range AllVendors {
		ix, ok := indexes[vendor]
		if !ok {
			continue
		}
		for _, decl := range ix.Flat() {
			candidatePath := decl.FullPath(vendor)
			similarity := Ratio(needle, strings.ToLower(candidatePath[1:]))
			if similarity < similarityThreshold {
				continue
			}
			suggestions = append(suggestions, Suggestion{
				Vendor:        vendor,
				Module:        decl.Module,
				Kind:          decl.Kind,
				QualifiedName: decl.QualifiedName,
				Similarity:    similarity,
				SuggestedPath: candidatePath,
			})
		}
	}

	sort.Slice(suggestions, func(i, j int) bool {
		if suggestions[i].Similarity != suggestions[j].Similarity {
			return suggestions[i].Similarity > suggestions[j].Similarity
		}
		return suggestions[i].SuggestedPath < suggestions[j].SuggestedPath
	})

	if len(suggestions) > maxSuggestions {
		suggestions = suggestions[:maxSuggestions]
	}
	return suggestions
}
