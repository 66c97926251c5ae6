package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    *Config
		wantErr error
	}{
		{
			name: "empty document",
			in:   "",
			want: &Config{LogLevel: "info", Format: FormatText},
		},
		{
			name: "blank lines",
			in:   "\n\n",
			want: &Config{LogLevel: "info", Format: FormatText},
		},
		{
			name: "comments only",
			in:   "# only a comment\n",
			want: &Config{LogLevel: "info", Format: FormatText},
		},
		{
			name: "explicit zero limit",
			in:   "# keep everything\nlimit: 0\n",
			want: &Config{LogLevel: "info", Format: FormatText},
		},
		{
			name: "every setting",
			in:   "log_level: debug\nformat: yaml\nlimit: 3\n",
			want: &Config{LogLevel: "debug", Format: FormatYAML, Limit: 3},
		},
		{
			name: "partial",
			in:   "format: tree\n",
			want: &Config{LogLevel: "info", Format: FormatTree},
		},
		{
			name:    "bad level",
			in:      "log_level: loud\n",
			wantErr: ErrInvalidLevel,
		},
		{
			name:    "bad format",
			in:      "format: json\n",
			wantErr: ErrInvalidFormat,
		},
		{
			name:    "negative limit",
			in:      "limit: -1\n",
			wantErr: ErrNegativeLimit,
		},
		{
			name:    "unknown field",
			in:      "colour: blue\n",
			wantErr: ErrConfig,
		},
		{
			name:    "wrong type",
			in:      "limit: many\n",
			wantErr: ErrConfig,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := Parse(strings.NewReader(tt.in))
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLoad(t *testing.T) {
	c, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), c)

	path := filepath.Join(t.TempDir(), "minidom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log_level: warn\nlimit: 2\n"), 0o600))
	c, err = Load(path)
	require.NoError(t, err)
	assert.Equal(t, logrus.WarnLevel, c.Level())
	assert.Equal(t, 2, c.Limit)

	empty := filepath.Join(t.TempDir(), "empty.yaml")
	require.NoError(t, os.WriteFile(empty, nil, 0o600))
	c, err = Load(empty)
	require.NoError(t, err)
	assert.Equal(t, Default(), c)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.True(t, os.IsNotExist(errors.Cause(err)))

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("format: html\n"), 0o600))
	_, err = Load(bad)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidFormat))
	assert.Contains(t, err.Error(), bad)
}

func TestSet(t *testing.T) {
	c := Default()
	require.NoError(t, c.Set("format", "yaml"))
	require.NoError(t, c.Set("limit", "5"))
	require.NoError(t, c.Set("log_level", "debug"))
	assert.Equal(t, &Config{LogLevel: "debug", Format: FormatYAML, Limit: 5}, c)
	assert.Equal(t, logrus.DebugLevel, c.Level())

	assert.True(t, errors.Is(c.Set("limit", "x"), ErrConfig))
	assert.True(t, errors.Is(c.Set("limit", "-2"), ErrNegativeLimit))
	assert.True(t, errors.Is(c.Set("colour", "red"), ErrUnknownSetting))
}
