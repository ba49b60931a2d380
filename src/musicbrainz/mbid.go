package musicbrainz

import (
	"strings"

	"github.com/pborman/uuid"
)

const mbidLength = 36

// mbidGroups are the lengths of the hyphen separated groups of an MBID.
var mbidGroups = []int{8, 4, 4, 4, 12}

// IsMBID returns true when `s` is a well formed MusicBrainz identifier. That is a
// UUID in its canonical textual form, 8-4-4-4-12 hexadecimal digits. Case does not
// matter.
func IsMBID(s string) bool {
	if !LooksLikeMBID(s) {
		return false
	}

	return uuid.Parse(s) != nil
}

// LooksLikeMBID returns true when `s` has the shape of an MBID: five groups of
// letters and digits with lengths 8, 4, 4, 4 and 12 separated by hyphens. Such
// strings are not names of anything, so when they are not valid MBIDs they are
// most probably mistyped ones.
func LooksLikeMBID(s string) bool {
	if len(s) != mbidLength {
		return false
	}

	groups := strings.Split(s, "-")
	if len(groups) != len(mbidGroups) {
		return false
	}

	for i, group := range groups {
		if len(group) != mbidGroups[i] {
			return false
		}
		for _, r := range group {
			if !isAlnum(r) {
				return false
			}
		}
	}

	return true
}

func isAlnum(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

// checkMBID returns an ErrInvalidQuery error when `mbid` is not a valid MBID.
func checkMBID(kind Kind, mbid string) error {
	if !IsMBID(mbid) {
		return invalidQuery("%q is not a valid %s MBID", mbid, kind)
	}
	return nil
}
