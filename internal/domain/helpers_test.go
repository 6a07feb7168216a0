package domain

import (
	"bytes"
	"os"
	"path"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"

	"regren.dev/pkg/regren/internal/adapter"
	"regren.dev/pkg/regren/internal/controller"
)

const workDir = "/work"

// newMemDir creates workDir on an in-memory filesystem holding the given
// files and folders.
func newMemDir(t *testing.T, files []string, folders []string) (afero.Fs, *adapter.AferoDirFSAdapter) {
	t.Helper()

	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll(workDir, 0o755))

	for _, name := range files {
		require.NoError(t, afero.WriteFile(fs, path.Join(workDir, name), []byte(name), 0o644))
	}

	for _, name := range folders {
		require.NoError(t, fs.MkdirAll(path.Join(workDir, name), 0o755))
	}

	return fs, adapter.NewAferoDirFSAdapter(fs)
}

// newBufferUI returns a SimpleUI that highlights with brackets.
func newBufferUI() (*controller.SimpleUI, *bytes.Buffer) {
	var buf bytes.Buffer

	cmd := &cobra.Command{}
	cmd.SetOut(&buf)

	ui := controller.NewSimpleUI(cmd)
	ui.UsePalette(controller.Palette{Match: "[", Substitution: "<", Reset: "]"})

	return ui, &buf
}

func exists(t *testing.T, fs afero.Fs, name string) bool {
	t.Helper()

	ok, err := afero.Exists(fs, path.Join(workDir, name))
	require.NoError(t, err)

	return ok
}

type fakeInfo struct {
	name string
	dir  bool
	link bool
}

func (f fakeInfo) Name() string { return f.name }
func (f fakeInfo) Size() int64  { return 0 }
func (f fakeInfo) Mode() os.FileMode {
	switch {
	case f.link:
		return os.ModeSymlink
	case f.dir:
		return os.ModeDir | 0o755
	}

	return 0o644
}
func (f fakeInfo) ModTime() time.Time { return time.Time{} }
func (f fakeInfo) IsDir() bool        { return f.dir }
func (f fakeInfo) Sys() interface{}   { return nil }
