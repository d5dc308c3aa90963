package git

import (
	"fmt"
	"os/exec"
	"sort"
	"strconv"
	"strings"
)

// GetCommitYears returns the sorted set of years with at least one commit.
func (g *realGit) GetCommitYears(repoPath string) ([]int, error) {
	cmd := exec.Command("git", "log", "--format=%ad", "--date=format:%Y")
	cmd.Dir = repoPath
	output, err := cmd.CombinedOutput()
	if err != nil {
		return nil, fmt.Errorf("git log failed: %w (command: git log --format=%%ad --date=format:%%Y, output: %s)",
			err, string(output))
	}

	seen := make(map[int]bool)
	for _, line := range strings.Split(string(output), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		year, err := strconv.Atoi(line)
		if err != nil {
			return nil, fmt.Errorf("unexpected git log output %q: %w", line, err)
		}
		seen[year] = true
	}

	years := make([]int, 0, len(seen))
	for year := range seen {
		years = append(years, year)
	}
	sort.Ints(years)
	return years, nil
}
