// Package version parses Python-style package version tokens and computes
// development-cycle successors.
package version

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// versionRegexp matches tokens of the form [N!]N(.N)*[{a|b|rc}N][.postN][.devN].
var versionRegexp = regexp.MustCompile(
	`^(?:([0-9]+)!)?([0-9]+(?:\.[0-9]+)*)(?:(a|b|rc)([0-9]+))?(?:\.post([0-9]+))?(?:\.dev([0-9]+))?$`,
)

// Version is a parsed version token.
type Version struct {
	Epoch   int
	Release []int
	PreKind string // "a", "b" or "rc"; empty when no prerelease segment
	PreNum  int
	Post    int // -1 when no post segment
	Dev     int // -1 when no dev segment
}

// Parse parses a version token.
func Parse(s string) (Version, error) {
	m := versionRegexp.FindStringSubmatch(s)
	if m == nil {
		return Version{}, fmt.Errorf("%w: %q", ErrInvalidVersion, s)
	}

	v := Version{Post: -1, Dev: -1}

	parts := []struct {
		raw string
		dst *int
	}{
		{m[1], &v.Epoch},
		{m[4], &v.PreNum},
		{m[5], &v.Post},
		{m[6], &v.Dev},
	}
	for _, p := range parts {
		if p.raw == "" {
			continue
		}
		n, err := strconv.Atoi(p.raw)
		if err != nil {
			return Version{}, fmt.Errorf("%w: %q", ErrInvalidVersion, s)
		}
		*p.dst = n
	}
	v.PreKind = m[3]

	for _, c := range strings.Split(m[2], ".") {
		n, err := strconv.Atoi(c)
		if err != nil {
			return Version{}, fmt.Errorf("%w: %q", ErrInvalidVersion, s)
		}
		v.Release = append(v.Release, n)
	}

	return v, nil
}

// Validate reports whether s is a well-formed version token.
func Validate(s string) error {
	_, err := Parse(s)
	return err
}

// IsPrerelease reports whether the version carries a prerelease or dev segment.
func (v Version) IsPrerelease() bool {
	return v.PreKind != "" || v.Dev >= 0
}

// Base returns the epoch and release segments only.
func (v Version) Base() string {
	if v.Epoch != 0 {
		return fmt.Sprintf("%d!%s", v.Epoch, v.releaseString())
	}
	return v.releaseString()
}

// String reconstructs the full version token.
func (v Version) String() string {
	var b strings.Builder
	b.WriteString(v.Base())
	if v.PreKind != "" {
		fmt.Fprintf(&b, "%s%d", v.PreKind, v.PreNum)
	}
	if v.Post >= 0 {
		fmt.Fprintf(&b, ".post%d", v.Post)
	}
	if v.Dev >= 0 {
		fmt.Fprintf(&b, ".dev%d", v.Dev)
	}
	return b.String()
}

func (v Version) releaseString() string {
	comps := make([]string, len(v.Release))
	for i, n := range v.Release {
		comps[i] = strconv.Itoa(n)
	}
	return strings.Join(comps, ".")
}

// Next computes the version that opens the next development cycle.
//
// Prerelease and dev versions advance to their base version. Final versions
// get their minor component incremented with every later component zeroed;
// the epoch is preserved and any post segment is dropped.
func Next(s string) (string, error) {
	v, err := Parse(s)
	if err != nil {
		return "", err
	}
	if v.IsPrerelease() {
		return v.Base(), nil
	}

	release := make([]int, len(v.Release))
	copy(release, v.Release)
	for len(release) < 2 {
		release = append(release, 0)
	}
	release[1]++
	for i := 2; i < len(release); i++ {
		release[i] = 0
	}

	next := Version{Epoch: v.Epoch, Release: release, Post: -1, Dev: -1}
	return next.Base(), nil
}

// Finalize strips the prerelease and dev segments from a version token,
// keeping epoch, release and post segments intact.
func Finalize(s string) (string, error) {
	v, err := Parse(s)
	if err != nil {
		return "", err
	}
	v.PreKind = ""
	v.PreNum = 0
	v.Dev = -1
	return v.String(), nil
}
