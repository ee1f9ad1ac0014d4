package ux

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

type sampleRows [][]string

func (s sampleRows) TableHeader() []string { return []string{"ID", "Name"} }
func (s sampleRows) TableRows() [][]string { return s }

func TestNewFormatter(t *testing.T) {
	tests := []struct {
		format  string
		want    Formatter
		wantErr bool
	}{
		{format: "json", want: &JSONFormatter{}},
		{format: "yaml", want: &YAMLFormatter{}},
		{format: "table", want: &TableFormatter{}},
		{format: "", want: &TableFormatter{}},
		{format: "csv", wantErr: true},
	}

	for _, tt := range tests {
		t.Run("format "+tt.format, func(t *testing.T) {
			f, err := NewFormatter(tt.format, nil)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.IsType(t, tt.want, f)
		})
	}
}

func TestJSONFormatter(t *testing.T) {
	var buf bytes.Buffer
	f, err := NewFormatter("json", &FormatterOptions{Writer: &buf})
	require.NoError(t, err)

	require.NoError(t, f.Format(map[string]string{"name": "Ada"}))

	var decoded map[string]string
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "Ada", decoded["name"])
}

func TestYAMLFormatter(t *testing.T) {
	var buf bytes.Buffer
	f, err := NewFormatter("yaml", &FormatterOptions{Writer: &buf})
	require.NoError(t, err)

	require.NoError(t, f.Format(map[string]string{"name": "Ada"}))

	var decoded map[string]string
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "Ada", decoded["name"])
}

func TestTableFormatter(t *testing.T) {
	var buf bytes.Buffer
	f, err := NewFormatter("table", &FormatterOptions{Writer: &buf, NoColor: true})
	require.NoError(t, err)

	rows := sampleRows{{"1", "Acme Corp"}, {"2", "Globex"}}
	require.NoError(t, f.Format(rows))

	out := buf.String()
	assert.Contains(t, out, "ID")
	assert.Contains(t, out, "Acme Corp")
	assert.Contains(t, out, "Globex")
}

func TestTableFormatter_NonTabularFallback(t *testing.T) {
	var buf bytes.Buffer
	f, err := NewFormatter("table", &FormatterOptions{Writer: &buf})
	require.NoError(t, err)

	require.NoError(t, f.Format("plain string"))
	assert.Contains(t, buf.String(), "plain string")
}
