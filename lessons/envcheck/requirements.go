package envcheck

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"regexp"
	"strings"

	"golang.org/x/mod/semver"

	"github.com/robbyt/go-pyprimer/lessons/errkind"
)

// Op is a version constraint operator.
type Op string

const (
	OpAny     Op = ""
	OpEqual   Op = "=="
	OpAtLeast Op = ">="
	// OpPrefix is the conda single "=" form: 1.24 matches 1.24 and 1.24.x.
	OpPrefix Op = "="
)

var namePattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._/\-]*$`)

// Requirement is one line of a requirements list.
type Requirement struct {
	Name    string
	Op      Op
	Version string
}

func (r Requirement) String() string {
	return r.Name + string(r.Op) + r.Version
}

// SatisfiedBy reports whether an installed version meets the requirement. Versions
// are compared as semantic versions, with or without a leading "v".
func (r Requirement) SatisfiedBy(version string) bool {
	if version == "" || version == StatusNotInstalled {
		return false
	}
	switch r.Op {
	case OpAny:
		return true
	case OpPrefix:
		v := strings.TrimPrefix(version, "v")
		want := strings.TrimPrefix(r.Version, "v")
		return v == want || strings.HasPrefix(v, want+".")
	}

	have, want := canonical(version), canonical(r.Version)
	if !semver.IsValid(have) || !semver.IsValid(want) {
		return r.Op == OpEqual && version == r.Version
	}
	c := semver.Compare(have, want)
	if r.Op == OpEqual {
		return c == 0
	}
	return c >= 0
}

func canonical(v string) string {
	if !strings.HasPrefix(v, "v") {
		v = "v" + v
	}
	return v
}

// ParseRequirements reads "name==version", "name>=version" and bare "name" lines.
// Blank lines and # comments are skipped. Every malformed line is reported, each
// wrapping errkind.ErrValue with its line number.
func ParseRequirements(r io.Reader) ([]Requirement, error) {
	var (
		reqs []Requirement
		errz []error
	)

	sc := bufio.NewScanner(r)
	sc.Buffer(nil, math.MaxInt)
	for n := 1; sc.Scan(); n++ {
		line := sc.Text()
		if i := strings.Index(line, "#"); i >= 0 {
			line = line[:i]
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		req, err := parseRequirement(line, OpEqual, OpAtLeast)
		if err != nil {
			errz = append(errz, fmt.Errorf("line %d: %w", n, err))
			continue
		}
		reqs = append(reqs, req)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading requirements: %w", err)
	}
	if len(errz) > 0 {
		return nil, errors.Join(errz...)
	}
	return reqs, nil
}

// parseRequirement splits line on the first of ops it contains.
func parseRequirement(line string, ops ...Op) (Requirement, error) {
	req := Requirement{Name: line}
	for _, op := range ops {
		if name, version, ok := strings.Cut(line, string(op)); ok {
			req = Requirement{
				Name:    strings.TrimSpace(name),
				Op:      op,
				Version: strings.TrimSpace(version),
			}
			if req.Version == "" {
				return req, fmt.Errorf("%w: %q has no version after %s", errkind.ErrValue, line, op)
			}
			break
		}
	}
	if !namePattern.MatchString(req.Name) {
		return req, fmt.Errorf("%w: invalid package name in %q", errkind.ErrValue, line)
	}
	if strings.ContainsAny(req.Version, " =<>") {
		return req, fmt.Errorf("%w: invalid version in %q", errkind.ErrValue, line)
	}
	return req, nil
}
