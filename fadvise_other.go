//go:build !linux

package filecopy

// AdviseSequential is a no-op on platforms without posix_fadvise.
func (f *File) AdviseSequential() error {
	f.mutex.Lock()
	defer f.mutex.Unlock()
	return f.ifClosedError()
}
