// Package country resolves ISO 3166-1 alpha-2 country codes to display
// metadata: an English short name, an emoji flag, and the alpha-3 code used by
// the map rendering layer.
package country

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidCountryCode is returned by Resolve when a code has no entry in the
// ISO 3166 name table.
var ErrInvalidCountryCode = errors.New("invalid country code")

// Info is the display metadata for one country.
type Info struct {
	Code string `json:"code"`
	Name string `json:"name"`
	Flag string `json:"flag"`
}

// Regional indicator symbol for 'A'. 'B' is base+1, and so on.
const regionalIndicatorBase = 0x1F1E6

// Flag derives the emoji flag for a two-letter code by mapping each letter to
// its Unicode regional indicator symbol. The mapping is a closed-form
// bijection over all 26x26 letter pairs; codes that are not assigned
// countries still yield a (meaningless) flag sequence. Anything that is not
// exactly two ASCII letters yields "".
func Flag(code string) string {
	if len(code) != 2 {
		return ""
	}
	var b strings.Builder
	for _, c := range strings.ToUpper(code) {
		if c < 'A' || c > 'Z' {
			return ""
		}
		b.WriteRune(regionalIndicatorBase + (c - 'A'))
	}
	return b.String()
}

// Resolve looks up the display metadata for an alpha-2 code. Input is
// case-insensitive. Codes absent from the name table fail with
// ErrInvalidCountryCode.
func Resolve(code string) (Info, error) {
	upper := strings.ToUpper(code)
	entry, ok := names[upper]
	if !ok {
		return Info{}, fmt.Errorf("%w: %q", ErrInvalidCountryCode, code)
	}
	flag := Flag(upper)
	if flag == "" {
		return Info{}, fmt.Errorf("%w: %q", ErrInvalidCountryCode, code)
	}
	return Info{Code: upper, Name: entry.Name, Flag: flag}, nil
}

// Alpha3 converts an alpha-2 code to its alpha-3 form, or "" when the code is
// not in the table.
func Alpha3(code string) string {
	return names[strings.ToUpper(code)].Alpha3
}
