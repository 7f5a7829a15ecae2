package batch

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/user/map_remapper_go/internal/remap"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

const validRequest = `original_y: "0 10"
original_x: "0 10"
table: |
  0 10
  20 30
new_y: "5"
new_x: "5 20"
`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestOutputPath(t *testing.T) {
	assert.Equal(t, filepath.Join("out", "map1.out.txt"), OutputPath("/in/map1.yaml", "out"))
}

func TestRunMixedOutcomes(t *testing.T) {
	in := t.TempDir()
	out := filepath.Join(t.TempDir(), "results")

	paths := []string{
		writeFile(t, in, "good.yaml", validRequest),
		writeFile(t, in, "two.yml", validRequest+"decimals: 1\n"),
		writeFile(t, in, "bad.yaml", "original_y: \"\"\n"),
		filepath.Join(in, "missing.yaml"),
	}

	outcomes, err := Run(context.Background(), paths, out, remap.DefaultOptions(), 2, nil)
	require.NoError(t, err)
	require.Len(t, outcomes, 4)

	assert.Equal(t, remap.StatusOK, outcomes[0].Status)
	assert.NoError(t, outcomes[0].Err)
	data, err := os.ReadFile(outcomes[0].Output)
	require.NoError(t, err)
	assert.Contains(t, string(data), "# table\n15.000\t0.000\n")

	require.Equal(t, remap.StatusOK, outcomes[1].Status)
	data, err = os.ReadFile(filepath.Join(out, "two.out.txt"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "# new X axis\n5.0\t20.0\n")

	assert.Equal(t, remap.StatusInvalid, outcomes[2].Status)
	assert.ErrorIs(t, outcomes[2].Err, remap.ErrInvalidInput)
	assert.Empty(t, outcomes[2].Output)
	assert.NoFileExists(t, filepath.Join(out, "bad.out.txt"))

	assert.Equal(t, remap.StatusFailed, outcomes[3].Status)
	assert.Error(t, outcomes[3].Err)

	counts := Summary(outcomes)
	assert.Equal(t, 2, counts[remap.StatusOK])
	assert.Equal(t, 1, counts[remap.StatusInvalid])
	assert.Equal(t, 1, counts[remap.StatusFailed])
}

func TestRunCancelled(t *testing.T) {
	in := t.TempDir()
	path := writeFile(t, in, "good.yaml", validRequest)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	outcomes, err := Run(ctx, []string{path, path}, t.TempDir(), remap.DefaultOptions(), 1, nil)
	assert.ErrorIs(t, err, context.Canceled)
	require.Len(t, outcomes, 2)
	for _, o := range outcomes {
		assert.Equal(t, path, o.Path)
		assert.Equal(t, remap.StatusFailed, o.Status)
		assert.ErrorIs(t, o.Err, context.Canceled)
		assert.Empty(t, o.Output)
	}
	assert.Equal(t, 2, Summary(outcomes)[remap.StatusFailed])
}

func TestRunSameBaseNames(t *testing.T) {
	in := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(in, "a"), 0755))
	require.NoError(t, os.MkdirAll(filepath.Join(in, "b"), 0755))
	out := t.TempDir()

	paths := []string{
		writeFile(t, in, filepath.Join("a", "map.yaml"), validRequest),
		writeFile(t, in, filepath.Join("b", "map.yaml"), validRequest+"decimals: 1\n"),
		writeFile(t, in, "map.yml", validRequest+"decimals: 2\n"),
	}

	outcomes, err := Run(context.Background(), paths, out, remap.DefaultOptions(), 3, nil)
	require.NoError(t, err)

	want := []string{
		filepath.Join(out, "map.out.txt"),
		filepath.Join(out, "map_2.out.txt"),
		filepath.Join(out, "map_3.out.txt"),
	}
	tables := []string{"15.000\t0.000", "15.0\t0.0", "15.00\t0.00"}
	for i, o := range outcomes {
		require.NoError(t, o.Err, o.Path)
		assert.Equal(t, want[i], o.Output)
		data, err := os.ReadFile(o.Output)
		require.NoError(t, err)
		assert.Contains(t, string(data), "# table\n"+tables[i]+"\n")
	}
}

func TestOutputPathsUnique(t *testing.T) {
	got := outputPaths([]string{"x/map.yaml", "y/map.yaml", "map_2.yaml", "other.yaml"}, "out")
	assert.Equal(t, []string{
		filepath.Join("out", "map.out.txt"),
		filepath.Join("out", "map_2.out.txt"),
		filepath.Join("out", "map_2_2.out.txt"),
		filepath.Join("out", "other.out.txt"),
	}, got)
}
