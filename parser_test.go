// FILE: lixenwraith/commander/parser_test.go
package commander

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// matchedLongs returns the long names of the matched arguments in order
func matchedLongs(c *Commander) []string {
	longs := make([]string, 0)
	for arg := range c.Arguments() {
		longs = append(longs, arg.Option().Long())
	}
	return longs
}

// TestParseScenario tests the canonical mixed-flag command line
func TestParseScenario(t *testing.T) {
	cmd, err := NewBuilder().
		WithArgs([]string{"prog", "-v", "-if", "data.txt", "ignored"}).
		AddOption("v", "version", "Show the version", NoValue).
		AddOption("if", "input", "File to use as input", String).
		Init()
	require.NoError(t, err)

	if diff := cmp.Diff([]string{"version", "input"}, matchedLongs(cmd)); diff != "" {
		t.Errorf("matched options mismatch (-want +got):\n%s", diff)
	}

	input, ok := cmd.StringOption("input")
	assert.True(t, ok)
	assert.Equal(t, "data.txt", input)
	assert.True(t, cmd.HasOption("v"))
	assert.Equal(t, 5, cmd.ArgCount())
}

// TestParseMatching tests prefix handling and token consumption
func TestParseMatching(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		matched []string
	}{
		{"NoArgs", nil, []string{}},
		{"ShortPrefix", []string{"-v"}, []string{"version"}},
		{"LongPrefix", []string{"--version"}, []string{"version"}},
		{"ShortNameWithLongPrefix", []string{"--v"}, []string{"version"}},
		{"LongNameWithShortPrefix", []string{"-version"}, []string{"version"}},
		{"BareTokensIgnored", []string{"version", "v", "input"}, []string{}},
		{"UnregisteredIgnored", []string{"-x", "--unknown", "-v"}, []string{"version"}},
		{"LoneDashesIgnored", []string{"-", "--", "-h"}, []string{"help"}},
		{"EncounterOrder", []string{"-b", "1.5", "-h", "-c", "2", "-v"}, []string{"balance", "help", "count", "version"}},
		{"ValueLooksLikeOption", []string{"-if", "-v"}, []string{"input"}},
		{"RepeatedOption", []string{"-c", "1", "--count", "2"}, []string{"count", "count"}},
		{"EqualsTokensIgnored", []string{"--input=a.txt", "-c=4", "--version=yes", "-v"}, []string{"version"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, err := demoBuilder(tt.args...).Init()
			require.NoError(t, err)

			if diff := cmp.Diff(tt.matched, matchedLongs(cmd)); diff != "" {
				t.Errorf("matched options mismatch (-want +got):\n%s", diff)
			}
			assert.Equal(t, len(tt.args)+1, cmd.ArgCount())
		})
	}
}

// TestParseValues tests value coercion for each value type
func TestParseValues(t *testing.T) {
	t.Run("String", func(t *testing.T) {
		cmd, err := demoBuilder("--input", "some file.txt").Init()
		require.NoError(t, err)
		v, ok := cmd.StringOption("if")
		assert.True(t, ok)
		assert.Equal(t, "some file.txt", v)
	})

	t.Run("EmptyString", func(t *testing.T) {
		cmd, err := demoBuilder("-if", "").Init()
		require.NoError(t, err)
		v, ok := cmd.StringOption("input")
		assert.True(t, ok)
		assert.Equal(t, "", v)
	})

	t.Run("Number", func(t *testing.T) {
		cmd, err := demoBuilder("-c", "42").Init()
		require.NoError(t, err)
		v, ok := cmd.NumberOption("c")
		assert.True(t, ok)
		assert.Equal(t, int64(42), v)
	})

	t.Run("NegativeNumber", func(t *testing.T) {
		cmd, err := demoBuilder("-c", "-5").Init()
		require.NoError(t, err)
		v, _ := cmd.NumberOption("count")
		assert.Equal(t, int64(-5), v)
	})

	t.Run("Float", func(t *testing.T) {
		cmd, err := demoBuilder("--balance", "1234.56").Init()
		require.NoError(t, err)
		v, ok := cmd.FloatOption("b")
		assert.True(t, ok)
		assert.InDelta(t, 1234.56, v, 1e-9)
	})

	t.Run("FloatAcceptsInteger", func(t *testing.T) {
		cmd, err := demoBuilder("-b", "7").Init()
		require.NoError(t, err)
		v, _ := cmd.FloatOption("balance")
		assert.Equal(t, 7.0, v)
	})

	t.Run("LastOccurrenceWins", func(t *testing.T) {
		cmd, err := demoBuilder("-c", "1", "-c", "2").Init()
		require.NoError(t, err)
		v, _ := cmd.NumberOption("count")
		assert.Equal(t, int64(2), v)
	})
}

// TestParseErrors tests parse failures
func TestParseErrors(t *testing.T) {
	tests := []struct {
		name      string
		args      []string
		sentinel  error
		option    string
		value     string
		errorText []string
	}{
		{"MissingValue", []string{"-c"}, ErrMissingValue, "c", "", []string{`"c"`}},
		{"MissingValueLong", []string{"-v", "--input"}, ErrMissingValue, "input", "", []string{`"input"`}},
		{"InvalidNumber", []string{"-c", "abc"}, ErrInvalidValue, "c", "abc", []string{`"c"`, `"abc"`}},
		{"FloatForNumber", []string{"-c", "1.5"}, ErrInvalidValue, "c", "1.5", []string{`"1.5"`}},
		{"InvalidFloat", []string{"--balance", "lots"}, ErrInvalidValue, "balance", "lots", []string{`"balance"`, `"lots"`}},
		{"EmptyNumber", []string{"-c", ""}, ErrInvalidValue, "c", "", []string{`invalid value "" for option "c"`}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, err := demoBuilder(tt.args...).Init()
			require.Error(t, err)
			assert.Nil(t, cmd)
			assert.ErrorIs(t, err, tt.sentinel)

			var optErr *OptionError
			require.True(t, errors.As(err, &optErr))
			assert.Equal(t, tt.option, optErr.Option)
			assert.Equal(t, tt.value, optErr.Value)
			for _, text := range tt.errorText {
				assert.Contains(t, err.Error(), text)
			}
		})
	}
}

// TestParseEqualsTokens tests that name=value tokens match no option and are skipped
func TestParseEqualsTokens(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"StringOption", []string{"--input=a.txt"}},
		{"EmptyValue", []string{"--input="}},
		{"NestedEquals", []string{"--input=a=b"}},
		{"NumberOption", []string{"--count=x"}},
		{"ShortPrefix", []string{"-c=4"}},
		{"FlagOption", []string{"--version=yes"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, err := demoBuilder(tt.args...).Init()
			require.NoError(t, err)

			assert.Empty(t, matchedLongs(cmd))
			assert.False(t, cmd.HasOption("input"))
			assert.False(t, cmd.HasOption("count"))
			assert.False(t, cmd.HasOption("version"))
			assert.Equal(t, len(tt.args)+1, cmd.ArgCount())
		})
	}
}

// TestParsePure tests that parsing depends only on the registry and the arguments
func TestParsePure(t *testing.T) {
	b := demoBuilder()
	args := []string{"prog", "-c", "9", "--input", "x"}

	first, err := parse(b.reg, args, b.logger)
	require.NoError(t, err)
	second, err := parse(b.reg, args, b.logger)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, []string{"prog", "-c", "9", "--input", "x"}, args)
}

// TestSplitPrefix tests option prefix stripping
func TestSplitPrefix(t *testing.T) {
	tests := []struct {
		arg  string
		name string
		long bool
		ok   bool
	}{
		{"-v", "v", false, true},
		{"--version", "version", true, true},
		{"---x", "-x", true, true},
		{"-", "", false, false},
		{"--", "", false, false},
		{"plain", "", false, false},
		{"", "", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.arg, func(t *testing.T) {
			name, long, ok := splitPrefix(tt.arg)
			assert.Equal(t, tt.name, name)
			assert.Equal(t, tt.long, long)
			assert.Equal(t, tt.ok, ok)
		})
	}
}
