package workflow

import (
	"os"

	"go.trai.ch/osw/internal/core/domain"
	"go.trai.ch/zerr"
)

// enterDir makes dir the process working directory. The returned func
// restores the previous one and must be called on every exit path.
func enterDir(dir string) (func(), error) {
	prev, err := os.Getwd()
	if err != nil {
		return nil, zerr.Wrap(domain.ErrWorkDirFailed, err.Error())
	}
	if err := os.Chdir(dir); err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrWorkDirFailed, err.Error()), "path", dir)
	}
	return func() {
		_ = os.Chdir(prev)
	}, nil
}
