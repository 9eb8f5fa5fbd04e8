package iofs

import (
	"fmt"
	"runtime"

	"github.com/Paula-Iglesias-Rivas/EModelDB/pkg/errcode"
	"github.com/gnames/gn"
)

func CreateDirError(dir string, err error) error {
	msg := `Cannot create the <em>%s</em> directory

Check that your home directory is writable.`
	vars := []any{dir}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.CreateDirError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: cannot create directory %s: %w",
			fn, dir, err),
	}
}

func CopyFileError(file string, err error) error {
	msg := `Cannot install the default configuration at <em>%s</em>

EModelDB writes its starter config.yaml there on first run.`
	vars := []any{file}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.CopyFileError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: cannot write %s: %w",
			fn, file, err),
	}
}

func ReadFileError(path string, err error) error {
	msg := `Cannot read the configuration at <em>%s</em>

Fix or delete the file; a fresh one is generated on the next run.`
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.ReadFileError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: cannot read %s: %w", fn, path, err),
	}
}
