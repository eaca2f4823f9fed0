package utils

import (
	"github.com/Masterminds/semver"
	"github.com/pkg/errors"
)

// CheckVersionGte returns an error unless the Compose file format version is
// at least minVersion. Both are "major[.minor]" versions, as found in the
// top-level version of a Compose file.
func CheckVersionGte(version, minVersion string) error {
	v, err := semver.NewVersion(version)
	if err != nil {
		return errors.Errorf("%q is not a Compose file format version", version)
	}
	minimum, err := semver.NewVersion(minVersion)
	if err != nil {
		return errors.Wrapf(err, "invalid minimum Compose file format version %q", minVersion)
	}
	if v.LessThan(minimum) {
		return errors.Errorf("Compose file format %s is older than %s", version, minVersion)
	}
	return nil
}
