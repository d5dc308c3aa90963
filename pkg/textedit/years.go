package textedit

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// ParseYearSpan parses a year list of the form "2014, 2016-2017" into the
// sorted set of years it covers.
func ParseYearSpan(s string) ([]int, error) {
	seen := make(map[int]bool)
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		lo, hi, isRange := strings.Cut(part, "-")
		start, err := strconv.Atoi(strings.TrimSpace(lo))
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrBadYearSpan, s)
		}
		end := start
		if isRange {
			end, err = strconv.Atoi(strings.TrimSpace(hi))
			if err != nil || end < start {
				return nil, fmt.Errorf("%w: %q", ErrBadYearSpan, s)
			}
		}
		for y := start; y <= end; y++ {
			seen[y] = true
		}
	}

	years := make([]int, 0, len(seen))
	for y := range seen {
		years = append(years, y)
	}
	sort.Ints(years)
	return years, nil
}

// FormatYearSpan renders years as "2014, 2016-2017", collapsing consecutive
// runs into ranges.
func FormatYearSpan(years []int) string {
	sorted := make([]int, 0, len(years))
	seen := make(map[int]bool)
	for _, y := range years {
		if !seen[y] {
			seen[y] = true
			sorted = append(sorted, y)
		}
	}
	sort.Ints(sorted)

	var parts []string
	for i := 0; i < len(sorted); {
		j := i
		for j+1 < len(sorted) && sorted[j+1] == sorted[j]+1 {
			j++
		}
		if i == j {
			parts = append(parts, strconv.Itoa(sorted[i]))
		} else {
			parts = append(parts, fmt.Sprintf("%d-%d", sorted[i], sorted[j]))
		}
		i = j + 1
	}
	return strings.Join(parts, ", ")
}

// UpdateYearSpan merges years into the span string and re-renders it.
func UpdateYearSpan(s string, years []int) (string, error) {
	parsed, err := ParseYearSpan(s)
	if err != nil {
		return "", err
	}
	return FormatYearSpan(append(parsed, years...)), nil
}
