package filecopy

import (
	"github.com/infobaleen/errors"
	"io"
	"os"
	"sync"
)

// File is a handle bound to a single path. It owns the underlying os.File until Close is called.
type File struct {
	mutex    sync.Mutex
	filepath string
	file     *os.File
}

// OpenFile opens path for reading.
func OpenFile(path string) (*File, error) {
	var file, err = os.Open(path)
	if err != nil {
		return nil, errors.WithTrace(err)
	}
	return &File{filepath: path, file: file}, nil
}

// CreateFile creates path for writing, truncating it if it already exists.
// New files get mode 0666 before umask.
func CreateFile(path string) (*File, error) {
	var file, err = os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0666)
	if err != nil {
		return nil, errors.WithTrace(err)
	}
	return &File{filepath: path, file: file}, nil
}

func (f *File) ifClosedError() error {
	if f.file == nil {
		return errors.Fmt("file %q is closed", f.filepath)
	}
	return nil
}

func (f *File) Read(b []byte) (int, error) {
	f.mutex.Lock()
	defer f.mutex.Unlock()
	if err := f.ifClosedError(); err != nil {
		return 0, err
	}
	return f.file.Read(b)
}

func (f *File) Write(b []byte) (int, error) {
	f.mutex.Lock()
	defer f.mutex.Unlock()
	if err := f.ifClosedError(); err != nil {
		return 0, err
	}
	return f.file.Write(b)
}

// ReadFrom copies r into the file until EOF. When r is backed by an os.File the copy is handed to
// (*os.File).ReadFrom, which lets the kernel move the bytes (copy_file_range or sendfile) where supported.
func (f *File) ReadFrom(r io.Reader) (int64, error) {
	f.mutex.Lock()
	defer f.mutex.Unlock()
	if err := f.ifClosedError(); err != nil {
		return 0, err
	}
	if src, ok := r.(*File); ok {
		src.mutex.Lock()
		defer src.mutex.Unlock()
		if err := src.ifClosedError(); err != nil {
			return 0, err
		}
		r = src.file
	}
	return f.file.ReadFrom(r)
}

// Stat returns the file info of the open handle.
func (f *File) Stat() (os.FileInfo, error) {
	f.mutex.Lock()
	defer f.mutex.Unlock()
	if err := f.ifClosedError(); err != nil {
		return nil, err
	}
	var info, err = f.file.Stat()
	return info, errors.WithTrace(err)
}

// Mode returns the permission bits of the open handle, including setuid, setgid and sticky.
func (f *File) Mode() (os.FileMode, error) {
	var info, err = f.Stat()
	if err != nil {
		return 0, err
	}
	return PermissionBits(info.Mode()), nil
}

func (f *File) Path() string {
	f.mutex.Lock()
	defer f.mutex.Unlock()
	return f.filepath
}

// Close releases the handle. The returned error wraps the OS error of the close. Closing a closed File
// returns an error.
func (f *File) Close() error {
	f.mutex.Lock()
	defer f.mutex.Unlock()
	if err := f.ifClosedError(); err != nil {
		return err
	}
	var err = errors.WithTrace(f.file.Close())
	f.file = nil
	return err
}

// PermissionBits reduces mode to the bits chmod applies.
func PermissionBits(mode os.FileMode) os.FileMode {
	return mode & (os.ModePerm | os.ModeSetuid | os.ModeSetgid | os.ModeSticky)
}
