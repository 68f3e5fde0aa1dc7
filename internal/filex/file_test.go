package filex

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"
)

func chdir(t *testing.T, dir string) func() {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	return func() { _ = os.Chdir(old) }
}

func TestEnsureSubdDir_CreatesDirectoryInCWD(t *testing.T) {
	tmp := t.TempDir()
	defer chdir(t, tmp)()

	got, err := EnsureSubdDir("download")
	require.NoError(t, err)

	want := filepath.Join(tmp, "download")
	require.Equal(t, want, got)

	fi, err := os.Stat(want)
	require.NoError(t, err)
	require.True(t, fi.IsDir(), "should create a directory")

	if runtime.GOOS != "windows" {
		perm := fi.Mode().Perm()
		require.Equal(t, os.FileMode(0o700), perm&0o700)
	}
}

func TestEnsureSubdDir_AbsolutePathAndIdempotent(t *testing.T) {
	abs := filepath.Join(t.TempDir(), "nested", "dl")

	first, err := EnsureSubdDir(abs)
	require.NoError(t, err)
	require.Equal(t, abs, first)

	second, err := EnsureSubdDir(abs)
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestEnsureSubdDir_FailsIfFileWithSameNameExists(t *testing.T) {
	tmp := t.TempDir()
	defer chdir(t, tmp)()

	require.NoError(t, os.WriteFile("download", []byte("x"), 0o660))

	_, err := EnsureSubdDir("download")
	require.Error(t, err, "should fail when a file exists with the same name")
}

func TestCreateUnique_DoesNotClobber(t *testing.T) {
	dir := t.TempDir()

	var names []string
	for i := 0; i < 3; i++ {
		f, err := CreateUnique(dir, "report.txt")
		require.NoError(t, err)
		names = append(names, filepath.Base(f.Name()))
		require.NoError(t, f.Close())
	}

	require.Equal(t, []string{"report.txt", "report (1).txt", "report (2).txt"}, names)
}

func TestCreateUnique_StripsDirectories(t *testing.T) {
	dir := t.TempDir()

	f, err := CreateUnique(dir, "../../etc/passwd")
	require.NoError(t, err)
	defer f.Close()

	require.Equal(t, filepath.Join(dir, "passwd"), f.Name())
}

func TestCreateUnique_EmptyName(t *testing.T) {
	dir := t.TempDir()

	f, err := CreateUnique(dir, "")
	require.NoError(t, err)
	defer f.Close()

	require.Equal(t, filepath.Join(dir, "download"), f.Name())
}
