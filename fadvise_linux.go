//go:build linux

package filecopy

import (
	"github.com/infobaleen/errors"
	"golang.org/x/sys/unix"
)

// AdviseSequential tells the kernel the whole file will be read once from start to end,
// so it can read ahead aggressively.
func (f *File) AdviseSequential() error {
	f.mutex.Lock()
	defer f.mutex.Unlock()
	if err := f.ifClosedError(); err != nil {
		return err
	}
	var err = unix.Fadvise(int(f.file.Fd()), 0, 0, unix.FADV_SEQUENTIAL)
	if err != nil {
		return errors.Wrap(err, "fadvise failed")
	}
	return nil
}
