package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	root := newRootCommand()
	output := new(bytes.Buffer)
	root.SetOut(output)
	root.SetErr(new(bytes.Buffer))
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)
	err := root.Execute()
	return output.String(), err
}

func TestRootCommandHasSubcommands(t *testing.T) {
	root := newRootCommand()
	names := make([]string, 0, len(root.Commands()))
	for _, cmd := range root.Commands() {
		names = append(names, cmd.Name())
	}
	for _, name := range []string{"parse", "format", "batch"} {
		assert.Contains(t, names, name, "missing subcommand: %s", name)
	}
	assert.Equal(t, "dev", root.Version)
}

func TestRootCommandFlags(t *testing.T) {
	root := newRootCommand()
	for _, name := range []string{"config", "log-level", "zone-conversion", "zone", "format"} {
		assert.NotNil(t, root.PersistentFlags().Lookup(name), "missing flag: %s", name)
	}
}

func TestParseCommand(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected string
		code     errbuilder.ErrCode
	}{
		{
			name:     "date",
			args:     []string{"parse", "2020-01-15"},
			expected: "2020-01-15T00:00:00\n",
		},
		{
			name:     "instant with zone conversion",
			args:     []string{"--zone-conversion", "--zone", "Etc/GMT-2", "parse", "2020-01-15T10:30:00Z"},
			expected: "2020-01-15T12:30:00\n",
		},
		{
			name:     "custom format",
			args:     []string{"--format", "dd.MM.yyyy HH:mm", "parse", "15.01.2020 10:30"},
			expected: "2020-01-15T10:30:00\n",
		},
		{
			name:     "no match",
			args:     []string{"parse", "2020-01-15", "not-a-date"},
			expected: "2020-01-15T00:00:00\n",
			code:     errbuilder.CodeInvalidArgument,
		},
		{
			name: "invalid zone",
			args: []string{"--zone", "Mars/Olympus", "parse", "2020-01-15"},
			code: errbuilder.CodeInvalidArgument,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output, err := execute(t, "", tt.args...)
			var noCode errbuilder.ErrCode
			if tt.code != noCode {
				require.Error(t, err)
				assert.Equal(t, tt.code, errbuilder.CodeOf(err))
				assert.Equal(t, 2, exitCodeForError(err))
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.expected, output)
		})
	}
}

func TestFormatCommand(t *testing.T) {
	output, err := execute(t, "", "--zone-conversion", "--zone", "Etc/GMT-2", "format", "2020-01-15T10:30:00", "2020-01-15T10:30:00.5")
	require.NoError(t, err)
	assert.Equal(t, "2020-01-15T08:30:00Z\n2020-01-15T08:30:00.500Z\n", output)

	_, err = execute(t, "", "format", "2020-01-15")
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err))
}

func TestBatchCommand(t *testing.T) {
	output, err := execute(t, `["2020-01-15T10:30:00Z", "nope"]`, "batch")
	require.NoError(t, err)
	assert.JSONEq(t, `[
		{"input":"2020-01-15T10:30:00Z","matched":true,"local":"2020-01-15T10:30:00","instant":"2020-01-15T10:30:00Z"},
		{"input":"nope","matched":false}
	]`, output)

	_, err = execute(t, `["unterminated`, "batch")
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err))
}

func TestConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "datetime.yaml")
	require.NoError(t, os.WriteFile(path, []byte("zoneConversion: true\nzone: Etc/GMT-2\nformats: [\"yyyy/MM/dd HH:mm\"]\n"), 0o644))

	output, err := execute(t, "", "--config", path, "parse", "2020/01/15 10:30")
	require.NoError(t, err)
	assert.Equal(t, "2020-01-15T12:30:00\n", output)

	output, err = execute(t, "", "--config", path, "--zone-conversion=false", "parse", "2020/01/15 10:30")
	require.NoError(t, err)
	assert.Equal(t, "2020-01-15T10:30:00\n", output)

	_, err = execute(t, "", "--config", filepath.Join(t.TempDir(), "missing.yaml"), "parse", "2020-01-15")
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err))
}

func TestEnvOverride(t *testing.T) {
	t.Setenv("DATETIME_ZONE_CONVERSION", "true")
	t.Setenv("DATETIME_ZONE", "Etc/GMT-2")
	output, err := execute(t, "", "parse", "2020-01-15T10:30:00Z")
	require.NoError(t, err)
	assert.Equal(t, "2020-01-15T12:30:00\n", output)
}
