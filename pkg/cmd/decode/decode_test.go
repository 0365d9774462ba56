package decode

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/ohler55/ojg/jp"
	"github.com/ohler55/ojg/oj"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mpapenbr/f1gp-track-go/testsupport/trackdata"
)

func writeTrack(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0o600))
	return path
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	trackName, outputFormat = "", "text"
	cmd := NewDecodeCmd()
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestDecodeText(t *testing.T) {
	path := writeTrack(t, "F1CT01.DAT", trackdata.Standard())
	out, err := run(t, path)
	require.NoError(t, err)
	assert.Contains(t, out, "F1CT01 (")
	assert.Contains(t, out, "sections:      15")
	assert.Contains(t, out, "length:        3.65")
	assert.Contains(t, out, "skip:          25 (section list at 0x1049)")
	assert.NotContains(t, out, "computed")
}

func TestDecodeJSON(t *testing.T) {
	path := writeTrack(t, "F1CT01.DAT", trackdata.Standard())
	out, err := run(t, "--format", "json", "--name", "Monza", path)
	require.NoError(t, err)
	obj, err := oj.ParseString(out)
	require.NoError(t, err)
	assert.Equal(t, "Monza", jp.MustParseString("$.name").First(obj))
	assert.Equal(t, int64(15), jp.MustParseString("$.sectionCount").First(obj))
}

func TestDecodeChecksumMismatch(t *testing.T) {
	data := trackdata.NewBuilder().WithPlainSections(15, 50).WithChecksum(1).Bytes()
	out, err := run(t, writeTrack(t, "X.DAT", data))
	require.NoError(t, err)
	assert.Contains(t, out, "0x00000001 (computed 0x")
}

func TestDecodeNameWithMultipleFiles(t *testing.T) {
	path := writeTrack(t, "F1CT01.DAT", trackdata.Standard())
	_, err := run(t, "--name", "x", path, path)
	assert.Error(t, err)
}
