package filecopy

import (
	"github.com/infobaleen/errors"
	"go.uber.org/zap"
	"io"
	"os"
)

// Result describes a completed copy.
type Result struct {
	Written int64
	Mode    os.FileMode
}

// Copier copies a single file and replicates its permission bits onto the destination.
type Copier struct {
	logger *zap.Logger
}

// NewCopier returns a Copier that reports each step to logger at debug level. A nil logger discards.
func NewCopier(logger *zap.Logger) *Copier {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Copier{logger: logger}
}

// Copy copies oldPath to newPath with a Copier that does not log.
func Copy(oldPath, newPath string) (Result, error) {
	return NewCopier(nil).Copy(oldPath, newPath)
}

// Copy streams the content of srcPath into dstPath, creating or truncating it, and then sets the permission
// bits of dstPath to those of srcPath. Steps run strictly in order; the first failure is returned as a
// *StepError and no later step runs. A failure while copying data may leave a partially written destination.
func (c *Copier) Copy(srcPath, dstPath string) (Result, error) {
	var result Result

	var src, err = c.openSource(srcPath)
	if err != nil {
		return result, err
	}
	defer src.Close()

	var dst *File
	dst, err = c.createDestination(dstPath)
	if err != nil {
		return result, err
	}
	// Closed by copyData once the data is written; this only releases it on failure.
	defer dst.Close()

	result.Written, err = c.copyData(dst, src)
	if err != nil {
		return result, err
	}

	result.Mode, err = c.sourceMode(src)
	if err != nil {
		return result, err
	}
	return result, c.setPermissions(dstPath, result.Mode)
}

func (c *Copier) openSource(path string) (*File, error) {
	var src, err = OpenFile(path)
	if err != nil {
		return nil, &StepError{Step: StepOpenSource, Path: path, Err: err}
	}
	c.logger.Debug("opened source", zap.String("path", path))
	if err = src.AdviseSequential(); err != nil {
		c.logger.Debug("read-ahead hint rejected", zap.String("path", path), zap.Error(errors.Cause(err)))
	}
	return src, nil
}

func (c *Copier) createDestination(path string) (*File, error) {
	var dst, err = CreateFile(path)
	if err != nil {
		return nil, &StepError{Step: StepOpenDestination, Path: path, Err: err}
	}
	c.logger.Debug("opened destination", zap.String("path", path))
	return dst, nil
}

// copyData streams src into dst and closes dst, so write errors reported at close count as copy failures.
func (c *Copier) copyData(dst, src *File) (int64, error) {
	var written, err = io.Copy(dst, src)
	err = errors.WithTrace(err)
	if err == nil {
		err = dst.Close()
	}
	if err != nil {
		return written, &StepError{Step: StepCopyData, Err: err}
	}
	c.logger.Debug("copied data", zap.Int64("bytes", written))
	return written, nil
}

func (c *Copier) sourceMode(src *File) (os.FileMode, error) {
	var mode, err = src.Mode()
	if err != nil {
		return 0, &StepError{Step: StepSourceMetadata, Err: err}
	}
	return mode, nil
}

func (c *Copier) setPermissions(path string, mode os.FileMode) error {
	var err = errors.WithTrace(os.Chmod(path, mode))
	if err != nil {
		return &StepError{Step: StepSetPermissions, Err: err}
	}
	c.logger.Debug("set permissions", zap.String("path", path), zap.Stringer("mode", mode))
	return nil
}
