package validate

import (
	"github.com/ShiraazMoollatjie/goluhn"
)

// IsLuna reports whether s is a non-empty string that passes the Luhn
// checksum. goluhn treats the empty string as valid, so it is rejected
// here explicitly.
func IsLuna(s string) bool {
	if s == "" {
		return false
	}
	return goluhn.Validate(s) == nil
}
