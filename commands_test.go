package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFields(t *testing.T) {
	tests := []struct {
		name    string
		pairs   []string
		want    map[string]string
		wantErr string
	}{
		{
			name:  "titled note",
			pairs: []string{"title=Algebra", "content=Quadratics"},
			want:  map[string]string{"title": "Algebra", "content": "Quadratics"},
		},
		{
			name:  "value keeps equals signs",
			pairs: []string{"content=a=b+c"},
			want:  map[string]string{"content": "a=b+c"},
		},
		{
			name:  "empty value",
			pairs: []string{"note="},
			want:  map[string]string{"note": ""},
		},
		{
			name:  "no fields",
			pairs: nil,
			want:  map[string]string{},
		},
		{
			name:    "missing separator",
			pairs:   []string{"title"},
			wantErr: "must be key=value",
		},
		{
			name:    "empty key",
			pairs:   []string{"=x"},
			wantErr: "must be key=value",
		},
		{
			name:    "duplicate key",
			pairs:   []string{"title=a", "title=b"},
			wantErr: "given twice",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseFields(tt.pairs)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseID(t *testing.T) {
	id, err := parseID("42")
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)

	for _, bad := range []string{"0", "-3", "abc", ""} {
		_, err := parseID(bad)
		assert.Error(t, err, bad)
	}
}

func TestGetLogLevel(t *testing.T) {
	assert.Equal(t, "DEBUG", getLogLevel("debug").String())
	assert.Equal(t, "WARN", getLogLevel("warn").String())
	assert.Equal(t, "ERROR", getLogLevel("error").String())
	assert.Equal(t, "INFO", getLogLevel("verbose").String())
}
