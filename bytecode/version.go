package bytecode

import (
	"fmt"
	"strconv"
	"strings"
)

import (
	"github.com/timtadh/data-structures/errors"
)

// Class file major versions.
const (
	Major8  = 52
	Major11 = 55
	Major12 = 56
	Major13 = 57
	Major14 = 58
	Major17 = 61
	Major21 = 65
)

// PreviewMinor marks a class file compiled with preview features enabled.
const PreviewMinor = 0xffff

type Version struct {
	Major int
	Minor int
}

var Latest = Version{Major: Major21}

// HasSwitchExpressions reports whether the class file format can contain
// switch expressions: final in Java 14, preview in 12 and 13.
func (v Version) HasSwitchExpressions() bool {
	if v.Major >= Major14 {
		return true
	}
	return (v.Major == Major12 || v.Major == Major13) && v.Minor == PreviewMinor
}

func (v Version) String() string {
	return fmt.Sprintf("%d.%d", v.Major, v.Minor)
}

// ParseVersion reads "major" or "major.minor".
func ParseVersion(s string) (Version, error) {
	major, minor, hasMinor := strings.Cut(strings.TrimSpace(s), ".")
	var v Version
	var err error
	if v.Major, err = strconv.Atoi(major); err != nil {
		return Version{}, errors.Errorf("bad class file version %q: %v", s, err)
	}
	if hasMinor {
		if v.Minor, err = strconv.Atoi(minor); err != nil {
			return Version{}, errors.Errorf("bad class file version %q: %v", s, err)
		}
	}
	if v.Major < 45 {
		return Version{}, errors.Errorf("bad class file version %q: major below 45", s)
	}
	return v, nil
}
