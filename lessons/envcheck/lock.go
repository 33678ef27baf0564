package envcheck

import (
	"cmp"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/robbyt/go-pyprimer/lessons/errkind"
)

// Freeze lists the installed, versioned packages of a report as sorted
// "name==version" lines. Standard library packages are left out.
func Freeze(r Report) []string {
	var out []string
	for _, p := range r.Packages {
		if !p.Installed || p.Version == StatusBuiltin {
			continue
		}
		out = append(out, Requirement{Name: p.Name, Op: OpEqual, Version: p.Version}.String())
	}
	slices.Sort(out)
	return slices.Compact(out)
}

// Lock is a resolved set of pinned packages.
type Lock struct {
	Name     string
	Packages []Requirement
}

type lockDisk struct {
	Name     string        `yaml:"name"`
	Packages []lockPackage `yaml:"packages"`
}

type lockPackage struct {
	Name    string `yaml:"name"`
	Version string `yaml:"version"`
}

// WriteLock writes reqs as a YAML lockfile sorted by name. Every requirement must be
// pinned with ==.
func WriteLock(w io.Writer, name string, reqs []Requirement) error {
	disk := lockDisk{Name: strings.TrimSpace(name), Packages: make([]lockPackage, 0, len(reqs))}
	for _, r := range reqs {
		if r.Op != OpEqual {
			return fmt.Errorf("%w: lockfile entry %q is not pinned", errkind.ErrValue, r.String())
		}
		disk.Packages = append(disk.Packages, lockPackage{Name: r.Name, Version: r.Version})
	}
	slices.SortStableFunc(disk.Packages, func(a, b lockPackage) int {
		return cmp.Compare(a.Name, b.Name)
	})

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(disk); err != nil {
		return fmt.Errorf("lockfile: marshal: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("lockfile: encoder close: %w", err)
	}
	return nil
}

// ReadLock parses a lockfile written by WriteLock. Every entry needs a valid name
// and a version; each bad entry is reported wrapping errkind.ErrValue.
func ReadLock(r io.Reader) (*Lock, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var disk lockDisk
	if err := dec.Decode(&disk); err != nil {
		return nil, fmt.Errorf("%w: lockfile: %w", errkind.ErrValue, err)
	}

	lock := &Lock{Name: disk.Name, Packages: make([]Requirement, 0, len(disk.Packages))}
	var errz []error
	for n, p := range disk.Packages {
		name, version := strings.TrimSpace(p.Name), strings.TrimSpace(p.Version)
		switch {
		case !namePattern.MatchString(name):
			errz = append(errz, fmt.Errorf("%w: lockfile package %d: invalid name %q", errkind.ErrValue, n, p.Name))
		case version == "":
			errz = append(errz, fmt.Errorf("%w: lockfile package %q has no version", errkind.ErrValue, name))
		default:
			lock.Packages = append(lock.Packages, Requirement{Name: name, Op: OpEqual, Version: version})
		}
	}
	if len(errz) > 0 {
		return nil, errors.Join(errz...)
	}
	return lock, nil
}
