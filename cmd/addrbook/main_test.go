package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const page = `<html><body>
<table><tr><td>a</td></tr></table>
<table><tr><td>b</td></tr></table>
<table><tr><td>c</td></tr></table>
<table>
<tr><td></td><td>John Smith</td><td>Bob Lee</td></tr>
<tr><td></td><td>jOHN@X.COM</td><td></td></tr>
</table>
</body></html>`

func TestRootCmd(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "export.html")
	require.NoError(t, os.WriteFile(in, []byte(page), 0644))
	out := filepath.Join(dir, "out.xlsx")
	js := filepath.Join(dir, "out.json")

	cmd := newRootCmd()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs([]string{in, "-o", out, "--json", js, "--lowercase-emails", "--log-level", "info", "--log-json"})

	require.NoError(t, cmd.Execute())

	assert.FileExists(t, out)
	assert.Contains(t, stdout.String(), "Bob Lee")
	assert.Contains(t, stdout.String(), "Number of contacts found: 1")
	assert.Contains(t, stderr.String(), `"msg":"contact list saved"`)

	data, err := os.ReadFile(js)
	require.NoError(t, err)
	var decoded struct {
		Records []struct {
			Email string `json:"email"`
		} `json:"records"`
	}
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Len(t, decoded.Records, 1)
	assert.Equal(t, "john@x.com", decoded.Records[0].Email)
}

func TestRootCmdBadSchema(t *testing.T) {
	dir := t.TempDir()
	schema := filepath.Join(dir, "schema.yaml")
	require.NoError(t, os.WriteFile(schema, []byte("sheet_name: \"\"\n"), 0644))

	cmd := newRootCmd()
	cmd.SetArgs([]string{filepath.Join(dir, "export.html"), "--schema", schema})

	err := cmd.Execute()
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "invalid schema"))
}
