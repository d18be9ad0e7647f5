package netio_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/boolnet/pkg/domain"
	"github.com/aretw0/boolnet/pkg/netio"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDetectKind(t *testing.T) {
	cases := []struct {
		name    string
		content string
		want    netio.Kind
	}{
		{"Transitions", "transitions:\n  \"00\": [\"01\"]\n", netio.KindTransitions},
		{"Functions", "functions:\n  x1: \"x2\"\n", netio.KindFunctions},
		{"Truth Table", "truth_table:\n  \"0\":\n    x1: \"1\"\n", netio.KindTruthTable},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := writeFile(t, "doc.yaml", tc.content)
			kind, err := netio.DetectKind(path)
			require.NoError(t, err)
			assert.Equal(t, tc.want, kind)
		})
	}

	t.Run("Unknown Binding", func(t *testing.T) {
		path := writeFile(t, "doc.yaml", "states:\n  - \"00\"\n")
		_, err := netio.DetectKind(path)
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrMalformedInput)
	})

	t.Run("Missing File", func(t *testing.T) {
		_, err := netio.DetectKind(filepath.Join(t.TempDir(), "absent.yaml"))
		assert.Error(t, err)
	})
}

func TestTransitions_RoundTrip(t *testing.T) {
	ts := domain.TransitionSet{
		"00": {"01", "10"},
		"01": {"11"},
		"10": {"00"},
		"11": {"01"},
	}

	path := filepath.Join(t.TempDir(), "net.yaml")
	require.NoError(t, netio.SaveTransitions(path, ts))

	loaded, err := netio.LoadTransitions(path)
	require.NoError(t, err)
	assert.Len(t, loaded, 4)
	assert.ElementsMatch(t, []domain.State{"01", "10"}, loaded["00"])
	assert.Equal(t, []domain.State{"11"}, loaded["01"])
}

func TestTransitions_JSONByExtension(t *testing.T) {
	ts := domain.TransitionSet{"0": {"1"}, "1": {"1"}}

	path := filepath.Join(t.TempDir(), "net.json")
	require.NoError(t, netio.SaveTransitions(path, ts))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "\"transitions\"")

	loaded, err := netio.LoadTransitions(path)
	require.NoError(t, err)
	assert.Equal(t, ts, loaded)
}

func TestLoadTransitions_Malformed(t *testing.T) {
	cases := []struct {
		name    string
		content string
	}{
		{"Multi Bit Flip", "transitions:\n  \"00\": [\"11\"]\n"},
		{"Mixed Widths", "transitions:\n  \"00\": [\"01\"]\n  \"000\": [\"001\"]\n"},
		{"Non Bit State", "transitions:\n  \"0a\": [\"00\"]\n"},
		{"Wrong Binding", "functions:\n  x1: \"x1\"\n"},
		{"Not YAML", "{{{"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := writeFile(t, "bad.yaml", tc.content)
			_, err := netio.LoadTransitions(path)
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrMalformedInput)
		})
	}
}

func TestFunctions_RoundTrip(t *testing.T) {
	path := writeFile(t, "funcs.yaml", `functions:
  x1: "(x1 & ~x2) | x3"
  x2: "~x1"
  x3: "0"
`)

	fs, err := netio.LoadFunctions(path)
	require.NoError(t, err)
	require.Len(t, fs, 3)
	assert.True(t, fs["x1"].Eval("100"))
	assert.True(t, fs["x3"].IsConstFalse())

	out := filepath.Join(t.TempDir(), "funcs.yaml")
	require.NoError(t, netio.SaveFunctions(out, fs))

	back, err := netio.LoadFunctions(out)
	require.NoError(t, err)
	for name := range fs {
		assert.True(t, fs[name].EquivalentTo(back[name], 3), "function %s", name)
	}
}

func TestLoadFunctions_Malformed(t *testing.T) {
	t.Run("Bad Expression", func(t *testing.T) {
		path := writeFile(t, "bad.yaml", "functions:\n  x1: \"x1 &\"\n")
		_, err := netio.LoadFunctions(path)
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrMalformedInput)
	})

	t.Run("Undefined Variable", func(t *testing.T) {
		path := writeFile(t, "bad.yaml", "functions:\n  x1: \"x9\"\n")
		_, err := netio.LoadFunctions(path)
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrMalformedInput)
	})
}

func TestTruthTable_RoundTrip(t *testing.T) {
	tt := domain.TruthTable{
		"00": {"x1": "10", "x2": "01"},
		"01": {"x1": "11", "x2": "00"},
		"10": {"x1": "00", "x2": "11"},
		"11": {"x1": "01", "x2": "10"},
	}

	path := filepath.Join(t.TempDir(), "table.yaml")
	require.NoError(t, netio.SaveTruthTable(path, tt))

	loaded, err := netio.LoadTruthTable(path)
	require.NoError(t, err)
	assert.Equal(t, tt, loaded)
}

func TestLoadTruthTable_Malformed(t *testing.T) {
	// The recorded result may only differ at the entry's own variable.
	path := writeFile(t, "bad.yaml", "truth_table:\n  \"00\":\n    x1: \"01\"\n")
	_, err := netio.LoadTruthTable(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrMalformedInput)
}

func TestSave_CreatesDirectories(t *testing.T) {
	ts := domain.TransitionSet{"0": {"1"}}

	path := filepath.Join(t.TempDir(), "nested", "dir", "net.yaml")
	require.NoError(t, netio.SaveTransitions(path, ts))

	_, err := os.Stat(path)
	assert.NoError(t, err)
}

func TestEncode_IsValidYAML(t *testing.T) {
	ts := domain.TransitionSet{"0": {"1"}, "1": {"0"}}

	data, err := netio.EncodeTransitions(ts)
	require.NoError(t, err)
	assert.Contains(t, string(data), "transitions:")
}
