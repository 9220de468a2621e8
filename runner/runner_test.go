package runner

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestTokenizeEndToEnd(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "id.tt"), "- 0 1 1\n+ 1 1 1\n")
	writeFile(t, filepath.Join(dir, "scanner.def"), "ab\nid.tt ID\n")
	writeFile(t, filepath.Join(dir, "input.txt"), "ab")

	outPath := filepath.Join(dir, "output.txt")
	err := Tokenize(TokenizeOptions{
		ScannerDefPath: filepath.Join(dir, "scanner.def"),
		InputPath:      filepath.Join(dir, "input.txt"),
		OutputPath:     outPath,
	})
	require.NoError(t, err)

	got, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Equal(t, "ID ab 1 1\n", string(got))
}

func TestTokenizeLexErrorLeavesNoOutputFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "id.tt"), "- 0 1 1\n+ 1 1 1\n")
	writeFile(t, filepath.Join(dir, "scanner.def"), "ab\nid.tt ID\n")
	writeFile(t, filepath.Join(dir, "input.txt"), "abc")

	outPath := filepath.Join(dir, "output.txt")
	err := Tokenize(TokenizeOptions{
		ScannerDefPath: filepath.Join(dir, "scanner.def"),
		InputPath:      filepath.Join(dir, "input.txt"),
		OutputPath:     outPath,
	})
	require.Error(t, err, "expected a lex error on the unrecognized byte 'c'")

	_, statErr := os.Stat(outPath)
	assert.Error(t, statErr, "output file should not exist after a failed run")
}

func TestMinimizeEndToEnd(t *testing.T) {
	dir := t.TempDir()
	// q0 -a-> q1, q0 -b-> q2, q1 -a-> q3(+), q2 -a-> q3(+); q1 and q2 merge.
	writeFile(t, filepath.Join(dir, "in.tt"), strings.Join([]string{
		"- 0 1 2",
		"- 1 3 E",
		"- 2 3 E",
		"+ 3 E E",
		"",
	}, "\n"))

	outPath := filepath.Join(dir, "out.tt")
	err := Minimize(MinimizeOptions{
		InputPath:  filepath.Join(dir, "in.tt"),
		OutputPath: outPath,
	})
	require.NoError(t, err)

	got, err := os.ReadFile(outPath)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimRight(string(got), "\n"), "\n")
	assert.Len(t, lines, 3, "q1 and q2 should have merged into one state")
}

func TestCodecEncodeDecodeRoundTrip(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "raw.bin"), "a b:c")

	encodedPath := filepath.Join(dir, "encoded.txt")
	require.NoError(t, CodecEncode(filepath.Join(dir, "raw.bin"), encodedPath))

	encoded, err := os.ReadFile(encodedPath)
	require.NoError(t, err)
	require.Equal(t, "ax20bx3ac", string(encoded))

	decodedPath := filepath.Join(dir, "decoded.bin")
	require.NoError(t, CodecDecode(string(encoded), decodedPath))

	decoded, err := os.ReadFile(decodedPath)
	require.NoError(t, err)
	assert.Equal(t, "a b:c", string(decoded))
}

func TestMinimizeRejectsEmptyFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "empty.tt"), "")

	err := Minimize(MinimizeOptions{
		InputPath:  filepath.Join(dir, "empty.tt"),
		OutputPath: filepath.Join(dir, "out.tt"),
	})
	assert.Error(t, err, "expected an error minimizing an empty transition table")
}
