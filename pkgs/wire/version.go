package wire

import (
	"fmt"

	"github.com/hashicorp/go-version"
)

// MinimumVersion is the oldest envelope version this build decodes
const MinimumVersion = "v0.1.0"

func CheckVersion(v []byte) error {
	got, err := version.NewVersion(string(v))
	if err != nil {
		return fmt.Errorf("invalid envelope version %q: %w", v, err)
	}
	vMin, err := version.NewVersion(MinimumVersion)
	if err != nil {
		return err
	}
	if got.LessThan(vMin) {
		return fmt.Errorf("envelope version %s is older than the minimum supported %s", got, vMin)
	}
	return nil
}
