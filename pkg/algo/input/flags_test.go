package input

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/trigg3rX/algo-cli/pkg/errors"
	fs "github.com/trigg3rX/algo-cli/pkg/filesystem"
)

func TestFlagGroup_Scan_ExtractsSelectionsAndKeepsOrder(t *testing.T) {
	g := NewInputFlagGroup()

	result, err := g.Scan([]string{"--silence", "-d", "hello", "demo/Hello", "-o", "out.txt"})
	require.NoError(t, err)

	require.Len(t, result.Selections, 1)
	assert.Equal(t, "-d", result.Selections[0].Flag)
	assert.Equal(t, "hello", result.Selections[0].Value)
	assert.Equal(t, DataAuto, result.Selections[0].Option.Type)
	assert.Equal(t, []string{"--silence", "demo/Hello", "-o", "out.txt"}, result.Rest)
}

func TestFlagGroup_Scan_AllSpellings(t *testing.T) {
	g := NewInputFlagGroup()

	for _, opt := range InputOptions {
		for _, args := range [][]string{
			{"-" + opt.Short, "v"},
			{"--" + opt.Long, "v"},
			{"--" + opt.Long + "=v"},
		} {
			t.Run(strings.Join(args, " "), func(t *testing.T) {
				result, err := g.Scan(args)
				require.NoError(t, err)
				sel, err := result.One()
				require.NoError(t, err)
				assert.Equal(t, opt, sel.Option)
				assert.Equal(t, "v", sel.Value)
				assert.Empty(t, result.Rest)
			})
		}
	}
}

func TestFlagGroup_Scan_ValueMayLookLikeFlag(t *testing.T) {
	result, err := NewInputFlagGroup().Scan([]string{"-t", "--meta", "algo"})
	require.NoError(t, err)

	assert.Equal(t, "--meta", result.Selections[0].Value)
	assert.Equal(t, []string{"algo"}, result.Rest)
}

func TestFlagGroup_Scan_MissingValue_ReturnsUsageError(t *testing.T) {
	_, err := NewInputFlagGroup().Scan([]string{"demo/Hello", "--json-file"})

	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindUsage))
	assert.Equal(t, "missing value for input data option --json-file", err.Error())
}

func TestFlagGroup_Scan_ScansPastTerminator(t *testing.T) {
	result, err := NewInputFlagGroup().Scan([]string{"demo/Hello", "--", "-t", "y"})
	require.NoError(t, err)

	require.Len(t, result.Selections, 1)
	assert.Equal(t, "-t", result.Selections[0].Flag)
	assert.Equal(t, "y", result.Selections[0].Value)
	assert.Equal(t, []string{"demo/Hello", "--"}, result.Rest)
}

func TestScanResult_One(t *testing.T) {
	tests := []struct {
		name        string
		args        []string
		expectedErr string
	}{
		{"no input flag", []string{"demo/Hello"}, "must specify an input source"},
		{"two input flags", []string{"--text", "a", "--json", "b", "demo/Hello"}, "multiple input sources not supported"},
		{"same flag twice", []string{"-d", "a", "-d", "b"}, "multiple input sources not supported"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := NewInputFlagGroup().Scan(tt.args)
			require.NoError(t, err)

			_, err = result.One()
			assert.True(t, apperrors.IsKind(err, apperrors.KindUsage))
			assert.EqualError(t, err, tt.expectedErr)
		})
	}
}

func TestResolve_LiteralJSONRoundTrip(t *testing.T) {
	result, err := NewInputFlagGroup().Scan([]string{"--json", `{"a":1}`})
	require.NoError(t, err)
	sel, err := result.One()
	require.NoError(t, err)

	payload, err := Resolve(sel, NewReader(fs.NewMockFileSystem(), nil))
	require.NoError(t, err)
	assert.Equal(t, JSON(`{"a":1}`), payload)
	assert.Equal(t, []byte(`{"a":1}`), payload.Bytes())
}

func TestResolve_FileAndStdin(t *testing.T) {
	mockFS := fs.NewMockFileSystem()
	mockFS.AddFile("image.png", []byte{0x89, 'P', 'N', 'G', 0xFF})

	tests := []struct {
		name     string
		args     []string
		stdin    string
		expected Payload
	}{
		{"binary file", []string{"-B", "image.png"}, "", Binary{0x89, 'P', 'N', 'G', 0xFF}},
		{"auto file detects binary", []string{"-D", "image.png"}, "", Binary{0x89, 'P', 'N', 'G', 0xFF}},
		{"text from stdin", []string{"-T", "-"}, "line\n", Text("line\n")},
		{"auto from stdin detects json", []string{"--data-file=-"}, `[1,2]`, JSON(`[1,2]`)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := NewInputFlagGroup().Scan(tt.args)
			require.NoError(t, err)
			sel, err := result.One()
			require.NoError(t, err)

			payload, err := Resolve(sel, NewReader(mockFS, strings.NewReader(tt.stdin)))
			require.NoError(t, err)
			assert.Equal(t, tt.expected, payload)
		})
	}
}

func TestResolve_TextFileWithBinaryContent_ReturnsIOError(t *testing.T) {
	mockFS := fs.NewMockFileSystem()
	mockFS.AddFile("blob", []byte{0xFF, 0xFE, 0x00})

	_, err := Resolve(Selection{Flag: "-T", Option: InputOptions[5], Value: "blob"}, NewReader(mockFS, nil))
	assert.True(t, apperrors.IsKind(err, apperrors.KindIO))
}

func TestFlagGroup_Scan_MixedArguments(t *testing.T) {
	result, err := NewInputFlagGroup().Scan([]string{"-m", "--text-file=notes.txt", "demo/Hello", "--binary", "raw", "-o", "out"})
	require.NoError(t, err)

	want := &ScanResult{
		Selections: []Selection{
			{Flag: "--text-file", Option: InputOptions[5], Value: "notes.txt"},
			{Flag: "--binary", Option: InputOptions[6], Value: "raw"},
		},
		Rest: []string{"-m", "demo/Hello", "-o", "out"},
	}
	if diff := cmp.Diff(want, result); diff != "" {
		t.Errorf("Scan() mismatch (-want +got):\n%s", diff)
	}
}
