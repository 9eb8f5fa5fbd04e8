package iologger

import (
	"fmt"
	"runtime"

	"github.com/Paula-Iglesias-Rivas/EModelDB/pkg/errcode"
	"github.com/gnames/gn"
)

func CreateLogFileError(path string, err error) error {
	msg := `Cannot open the log file <em>%s</em>

Set <em>log.destination</em> to stderr in config.yaml to log without a
file.`
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.CreateLogFileError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: cannot open log file %s: %w",
			fn, path, err),
	}
}
