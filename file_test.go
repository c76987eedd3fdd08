package filecopy

import (
	"errors"
	"github.com/matryer/is"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestFileClosed(t *testing.T) {
	var is = is.New(t)
	var tmpDir = t.TempDir()
	var f, err = CreateFile(filepath.Join(tmpDir, "test"))
	is.NoErr(err)
	is.NoErr(f.Close())

	err = f.Close()
	is.True(err != nil)
	is.True(strings.Contains(err.Error(), "is closed"))
	_, err = f.Write([]byte{1})
	is.True(err != nil)
	_, err = f.Read(make([]byte, 1))
	is.True(err != nil)
	_, err = f.Stat()
	is.True(err != nil)
	is.True(f.AdviseSequential() != nil)
}

func TestFileReadFrom(t *testing.T) {
	var is = is.New(t)
	var tmpDir = t.TempDir()
	var srcPath = filepath.Join(tmpDir, "src")
	is.NoErr(os.WriteFile(srcPath, []byte{0, 1, 2, 3, 4, 5, 6, 7}, 0644))

	var src, err = OpenFile(srcPath)
	is.NoErr(err)
	defer src.Close()
	is.NoErr(src.AdviseSequential())
	var dst *File
	dst, err = CreateFile(filepath.Join(tmpDir, "dst"))
	is.NoErr(err)

	var n int64
	n, err = dst.ReadFrom(src)
	is.NoErr(err)
	is.Equal(n, int64(8))
	is.NoErr(dst.Close())

	var content []byte
	content, err = os.ReadFile(dst.Path())
	is.NoErr(err)
	is.Equal(content, []byte{0, 1, 2, 3, 4, 5, 6, 7})
}

func TestFileCreateTruncates(t *testing.T) {
	var is = is.New(t)
	var path = filepath.Join(t.TempDir(), "test")
	is.NoErr(os.WriteFile(path, []byte("previous"), 0644))

	var f, err = CreateFile(path)
	is.NoErr(err)
	_, err = f.Write([]byte("new"))
	is.NoErr(err)
	is.NoErr(f.Close())

	var content []byte
	content, err = os.ReadFile(path)
	is.NoErr(err)
	is.Equal(string(content), "new")
}

func TestFileMode(t *testing.T) {
	var is = is.New(t)
	var path = filepath.Join(t.TempDir(), "test")
	is.NoErr(os.WriteFile(path, nil, 0600))
	is.NoErr(os.Chmod(path, 0751))

	var f, err = OpenFile(path)
	is.NoErr(err)
	defer f.Close()
	var mode os.FileMode
	mode, err = f.Mode()
	is.NoErr(err)
	is.Equal(mode, os.FileMode(0751))
}

func TestFileCloseError(t *testing.T) {
	var is = is.New(t)
	var path = filepath.Join(t.TempDir(), "test")
	var f, err = CreateFile(path)
	is.NoErr(err)
	is.NoErr(f.file.Close()) // fail the close of the handle below

	err = f.Close()
	is.True(err != nil)
	var stepErr = &StepError{Step: StepCopyData, Err: err}
	is.True(errors.Is(stepErr, os.ErrClosed))
	is.Equal(stepErr.Error(), "Error copying data to dest: close "+path+": file already closed")
	is.True(f.Close() != nil) // handle is released even when the close failed
}

func TestPermissionBits(t *testing.T) {
	var is = is.New(t)
	is.Equal(PermissionBits(os.ModeDir|0755), os.FileMode(0755))
	is.Equal(PermissionBits(os.ModeSetuid|os.ModeSticky|0644), os.ModeSetuid|os.ModeSticky|0644)
}
