package text

import (
	"github.com/go-text/typesetting/di"
	"golang.org/x/text/unicode/bidi"
)

// detectDirection returns the dominant direction of the text, decided
// by its first strong bidi character. Text with no strong character
// defaults to left-to-right.
func detectDirection(s string) di.Direction {
	for i := 0; i < len(s); {
		props, sz := bidi.LookupString(s[i:])
		switch props.Class() {
		case bidi.L:
			return di.DirectionLTR
		case bidi.R, bidi.AL:
			return di.DirectionRTL
		}
		if sz == 0 {
			break
		}
		i += sz
	}
	return di.DirectionLTR
}
