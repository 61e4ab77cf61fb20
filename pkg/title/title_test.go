package title

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClean(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"The Matrix", "matrix"},
		{"A Beautiful Mind", "beautiful mind"},
		{"Fast & Furious", "fast and furious"},
		{"Léon: The Professional", "leon professional"},
		{"Spider-Man: No Way Home", "spider man no way home"},
		{"Rocky IV", "rocky 4"},
		{"Doctor Who (2005)", "doctor who"},
		{"  Extra   Spaces  ", "extra spaces"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, Clean(tt.input))
		})
	}
}

func TestStripYear(t *testing.T) {
	assert.Equal(t, "Doctor Who", StripYear("Doctor Who (2005)"))
	assert.Equal(t, "Blade Runner 2049", StripYear("Blade Runner 2049"))
}

func TestStripCollectionSuffix(t *testing.T) {
	assert.Equal(t, "Example", StripCollectionSuffix("Example Collection"))
	assert.Equal(t, "Example", StripCollectionSuffix("Example collection "))
	assert.Equal(t, "Collection", StripCollectionSuffix("Collection"))
	assert.Equal(t, "Recollection", StripCollectionSuffix("Recollection"))
}

func TestCompare(t *testing.T) {
	_, conf := Compare("The Matrix", "Matrix")
	assert.Equal(t, ConfidenceExact, conf)

	score, conf := Compare("Spider-Man", "Spiderman")
	assert.Equal(t, ConfidenceHigh, conf)
	assert.Greater(t, score, 0.95)

	_, conf = Compare("Heat", "Alien")
	assert.Equal(t, ConfidenceNone, conf)
	assert.Equal(t, "none", conf.String())
}

func TestMatches(t *testing.T) {
	assert.True(t, Matches("Example Show", 2020, "Example Show", 2020))
	assert.True(t, Matches("Example Show", 0, "Example Show", 2020), "unknown year matches any")
	assert.True(t, Matches("Leon", 1994, "Léon", 1994))
	assert.False(t, Matches("Example Show", 2020, "Example Show", 2021))
	assert.False(t, Matches("Heat", 1995, "Alien", 1995))
}
