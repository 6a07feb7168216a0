package adapter

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "regren.dev/pkg/regren/internal/model"
)

func TestLocalDirFSAdapter_ReadDir(t *testing.T) {
	adapter := NewLocalDirFSAdapter()

	root := t.TempDir()
	writeTestFile(t, filepath.Join(root, "b.txt"), "b")
	writeTestFile(t, filepath.Join(root, "a.txt"), "a")
	mustMkdir(t, filepath.Join(root, "notes"))
	writeTestFile(t, filepath.Join(root, "notes", "nested.txt"), "nested")

	infos, err := adapter.ReadDir(m.Path(root))
	require.NoError(t, err)

	names := make([]string, 0, len(infos))
	for _, info := range infos {
		names = append(names, info.Name())
	}

	assert.ElementsMatch(t, []string{"a.txt", "b.txt", "notes"}, names)
}

func TestLocalDirFSAdapter_ReadDir_Missing(t *testing.T) {
	adapter := NewLocalDirFSAdapter()

	_, err := adapter.ReadDir(m.Path(filepath.Join(t.TempDir(), "missing")))
	require.Error(t, err)
	assert.True(t, os.IsNotExist(err))
}

func TestLocalDirFSAdapter_FileInfoFollowsSymlinks(t *testing.T) {
	adapter := NewLocalDirFSAdapter()

	root := t.TempDir()
	target := filepath.Join(root, "target")
	mustMkdir(t, target)

	link := filepath.Join(root, "link")
	if err := os.Symlink(target, link); err != nil {
		t.Skipf("symlinks unavailable: %v", err)
	}

	info, err := adapter.FileInfo(m.Path(link))
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestLocalDirFSAdapter_Rename(t *testing.T) {
	adapter := NewLocalDirFSAdapter()

	root := t.TempDir()
	oldPath := filepath.Join(root, "foo.txt")
	newPath := filepath.Join(root, "f00.txt")
	writeTestFile(t, oldPath, "content")

	require.NoError(t, adapter.Rename(m.Path(oldPath), m.Path(newPath)))

	_, err := os.Stat(oldPath)
	assert.True(t, os.IsNotExist(err))

	data, err := os.ReadFile(newPath)
	require.NoError(t, err)
	assert.Equal(t, "content", string(data))
}

func TestAferoDirFSAdapter_MemMapFs(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("/work/folder", 0o755))
	require.NoError(t, afero.WriteFile(fs, "/work/foo.txt", []byte("x"), 0o644))

	adapter := NewAferoDirFSAdapter(fs)

	infos, err := adapter.ReadDir("/work")
	require.NoError(t, err)
	require.Len(t, infos, 2)

	require.NoError(t, adapter.Rename("/work/foo.txt", "/work/bar.txt"))

	exists, err := afero.Exists(fs, "/work/bar.txt")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestAferoDirFSAdapter_PathHelpers(t *testing.T) {
	adapter := NewLocalDirFSAdapter()

	assert.Equal(t, m.Path(filepath.Join("a", "b", "c")), adapter.JoinPath("a", "b", "c"))

	abs, err := adapter.AbsPath("some/dir/../file")
	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(string(abs)))
	assert.Equal(t, "file", filepath.Base(string(abs)))
	assert.Equal(t, "some", filepath.Base(filepath.Dir(string(abs))))
}

func writeTestFile(t *testing.T, path, content string) {
	t.Helper()

	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func mustMkdir(t *testing.T, path string) {
	t.Helper()

	if err := os.MkdirAll(path, 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", path, err)
	}
}
