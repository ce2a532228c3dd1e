package printer

import (
	"bytes"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func capture(t *testing.T) (*bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	prevOut, prevErr, prevNoColor := Out, ErrOut, color.NoColor
	var out, errOut bytes.Buffer
	Out, ErrOut = &out, &errOut
	color.NoColor = true
	t.Cleanup(func() {
		Out, ErrOut, color.NoColor = prevOut, prevErr, prevNoColor
	})
	return &out, &errOut
}

func TestSuccess(t *testing.T) {
	out, _ := capture(t)
	Success("scheduled %d meetings\n", 4)
	Success("✓ done\n")
	assert.Equal(t, "✓ scheduled 4 meetings\n✓ done\n", out.String())
}

func TestWarning(t *testing.T) {
	out, errOut := capture(t)
	Warning("unknown supplier %q\n", "Ghost")
	assert.Empty(t, out.String())
	assert.Equal(t, "⚠️  unknown supplier \"Ghost\"\n", errOut.String())
}

func TestError(t *testing.T) {
	tests := map[string]struct {
		suggestions []string
		contains    []string
	}{
		"NoSuggestions": {
			contains: []string{"Bad input\n\nexplained\n"},
		},
		"OneSuggestion": {
			suggestions: []string{"Fix the file"},
			contains:    []string{"\nFix the file\n"},
		},
		"ManySuggestions": {
			suggestions: []string{"First", "Second"},
			contains:    []string{"Either:\n", "  1. First\n", "  2. Second\n"},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			_, errOut := capture(t)
			err := Error("Bad input", "explained", tt.suggestions)
			require.Error(t, err)
			assert.Equal(t, "Bad input", err.Error())
			for _, s := range tt.contains {
				assert.Contains(t, errOut.String(), s)
			}
		})
	}
}
