package country

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlagKnownCountries(t *testing.T) {
	assert.Equal(t, "\U0001F1FA\U0001F1F8", Flag("US"))
	assert.Equal(t, "\U0001F1EB\U0001F1F7", Flag("FR"))
	assert.Equal(t, "\U0001F1EF\U0001F1F5", Flag("JP"))
}

func TestFlagCaseInsensitive(t *testing.T) {
	assert.Equal(t, Flag("FR"), Flag("fr"))
	assert.Equal(t, Flag("US"), Flag("us"))
}

func TestFlagIsTotalOverLetterPairs(t *testing.T) {
	// The derivation is a closed-form bijection: every two-letter pair maps
	// to a distinct pair of regional indicator symbols, assigned or not.
	seen := make(map[string]string)
	for a := 'A'; a <= 'Z'; a++ {
		for b := 'A'; b <= 'Z'; b++ {
			code := string(a) + string(b)
			flag := Flag(code)
			require.NotEmpty(t, flag, "code %s", code)
			prev, dup := seen[flag]
			require.False(t, dup, "flag collision between %s and %s", prev, code)
			seen[flag] = code
		}
	}
}

func TestFlagRejectsMalformedInput(t *testing.T) {
	assert.Empty(t, Flag(""))
	assert.Empty(t, Flag("U"))
	assert.Empty(t, Flag("USA"))
	assert.Empty(t, Flag("U1"))
	assert.Empty(t, Flag("1A"))
}

func TestResolve(t *testing.T) {
	info, err := Resolve("US")
	require.NoError(t, err)
	assert.Equal(t, "US", info.Code)
	assert.Equal(t, "United States", info.Name)
	assert.Equal(t, "\U0001F1FA\U0001F1F8", info.Flag)
}

func TestResolveNormalizesCase(t *testing.T) {
	lower, err := Resolve("de")
	require.NoError(t, err)
	upper, err := Resolve("DE")
	require.NoError(t, err)
	assert.Equal(t, upper, lower)
}

func TestResolveUnassignedCode(t *testing.T) {
	_, err := Resolve("ZZ")
	require.ErrorIs(t, err, ErrInvalidCountryCode)
}

func TestAlpha3(t *testing.T) {
	assert.Equal(t, "USA", Alpha3("US"))
	assert.Equal(t, "DEU", Alpha3("de"))
	assert.Empty(t, Alpha3("ZZ"))
}
