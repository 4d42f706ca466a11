package release

import (
	"strconv"
	"strings"
)

// parseIndexSelection parses a comma-separated list of 1-based indices and
// inclusive start-end ranges against a list of max entries. Malformed or
// out-of-range tokens produce a warning and are skipped; they never fail the
// selection. Duplicate indices collapse to their first occurrence.
func parseIndexSelection(input string, max int) (indices []int, warnings []string) {
	seen := make(map[int]bool)

	add := func(i int) {
		if !seen[i] {
			seen[i] = true
			indices = append(indices, i)
		}
	}

	for _, token := range strings.Split(input, ",") {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}

		if start, end, ok := strings.Cut(token, "-"); ok {
			lo, errLo := strconv.Atoi(strings.TrimSpace(start))
			hi, errHi := strconv.Atoi(strings.TrimSpace(end))
			if errLo != nil || errHi != nil || lo > hi {
				warnings = append(warnings, "ignoring invalid range "+strconv.Quote(token))
				continue
			}
			for i := lo; i <= hi; i++ {
				if i < 1 || i > max {
					warnings = append(warnings, "ignoring out-of-range index "+strconv.Itoa(i))
					continue
				}
				add(i)
			}
			continue
		}

		i, err := strconv.Atoi(token)
		if err != nil {
			warnings = append(warnings, "ignoring invalid token "+strconv.Quote(token))
			continue
		}
		if i < 1 || i > max {
			warnings = append(warnings, "ignoring out-of-range index "+strconv.Itoa(i))
			continue
		}
		add(i)
	}

	return indices, warnings
}

// pickByIndices maps 1-based indices onto their paths
func pickByIndices(paths []string, indices []int) []string {
	selected := make([]string, 0, len(indices))
	for _, i := range indices {
		selected = append(selected, paths[i-1])
	}
	return selected
}
