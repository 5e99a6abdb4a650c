package services

import (
	"os"
	"strings"

	"hiredai/utils"
)

const fuzzyMatchCutoff = 0.55

// FindDatasetForCourse maps a free-text course identifier to a dataset
// filename. The directory is re-listed on every call so the result is
// always consistent with the current files. Matching is layered,
// strictest first: exact candidate filenames, token containment,
// approximate string distance, then a lenient single-token check.
func FindDatasetForCourse(courseName string) (string, bool) {
	files := listCSVFiles(DatasetDir())
	if len(files) == 0 {
		return "", false
	}

	norm := utils.NormalizeSlug(courseName)

	if f, ok := matchCandidate(courseName, norm, files); ok {
		return f, true
	}

	tokens := strings.Fields(norm)

	if f, ok := matchAllTokens(tokens, files); ok {
		return f, true
	}
	if f, ok := matchApproximate(norm, files); ok {
		return f, true
	}
	return matchAnyToken(tokens, files)
}

// listCSVFiles returns the .csv entries of dir in sorted order.
func listCSVFiles(dir string) []string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}
	var files []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if strings.HasSuffix(strings.ToLower(e.Name()), ".csv") {
			files = append(files, e.Name())
		}
	}
	return files
}

// matchCandidate builds the expected filenames for the identifier and
// compares them case-insensitively against the listing.
func matchCandidate(courseName, norm string, files []string) (string, bool) {
	candidates := []string{courseName + "_learning.csv"}
	for _, sep := range []string{"_", "-", ""} {
		joined := strings.ReplaceAll(norm, " ", sep)
		candidates = append(candidates, joined+"_learning.csv", joined+".csv")
	}

	for _, cand := range candidates {
		lc := strings.ToLower(cand)
		for _, f := range files {
			if strings.ToLower(f) == lc {
				return f, true
			}
		}
	}
	return "", false
}

// matchAllTokens selects the first file whose normalized basename
// contains every input token.
func matchAllTokens(tokens []string, files []string) (string, bool) {
	if len(tokens) == 0 {
		return "", false
	}
	for _, f := range files {
		base := utils.NormalizeSlug(trimCSVExt(f))
		all := true
		for _, tok := range tokens {
			if !strings.Contains(base, tok) {
				all = false
				break
			}
		}
		if all {
			return f, true
		}
	}
	return "", false
}

// matchApproximate picks the basename closest to the normalized input
// by Levenshtein similarity, if close enough.
func matchApproximate(norm string, files []string) (string, bool) {
	bestFile := ""
	bestScore := 0.0
	for _, f := range files {
		score := similarityRatio(norm, utils.NormalizeSlug(trimCSVExt(f)))
		if score > bestScore {
			bestScore = score
			bestFile = f
		}
	}
	if bestScore >= fuzzyMatchCutoff {
		return bestFile, true
	}
	return "", false
}

// matchAnyToken is the last, most lenient layer: one shared token wins.
func matchAnyToken(tokens []string, files []string) (string, bool) {
	for _, f := range files {
		base := strings.ToLower(trimCSVExt(f))
		for _, tok := range tokens {
			if strings.Contains(base, tok) {
				return f, true
			}
		}
	}
	return "", false
}

func trimCSVExt(name string) string {
	if idx := strings.LastIndex(name, "."); idx >= 0 {
		return name[:idx]
	}
	return name
}

// similarityRatio is 1 - levenshtein(a, b) / max(len(a), len(b)),
// computed over runes.
func similarityRatio(a, b string) float64 {
	if a == b {
		return 1
	}
	la, lb := len([]rune(a)), len([]rune(b))
	longest := la
	if lb > longest {
		longest = lb
	}
	if longest == 0 {
		return 1
	}
	return 1 - float64(levenshtein(a, b))/float64(longest)
}

// levenshtein computes edit distance (insertion, deletion, substitution
// cost 1).
func levenshtein(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	if len(ra) == 0 {
		return len(rb)
	}
	if len(rb) == 0 {
		return len(ra)
	}

	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for j := 0; j <= len(rb); j++ {
		prev[j] = j
	}
	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[j] = minInt(curr[j-1]+1, prev[j]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(rb)]
}

func minInt(vals ...int) int {
	m := vals[0]
	for _, v := range vals[1:] {
		if v < m {
			m = v
		}
	}
	return m
}
