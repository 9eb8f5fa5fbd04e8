package ioweb

import (
	"fmt"
	"strings"

	"github.com/Paula-Iglesias-Rivas/EModelDB/pkg/errcode"
	"github.com/gnames/gn"
)

// ServerStartError is returned when the web server cannot start or
// crashes while serving.
func ServerStartError(addr string, err error) error {
	msg := `Cannot serve the web interface

<em>Address:</em> %s

<em>Possible causes:</em>
  - The port is already in use
  - The address cannot be bound by this user`

	vars := []any{addr}

	return &gn.Error{
		Code: errcode.ServerStartError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("cannot serve on %s: %w", addr, err),
	}
}

// markupStripper removes the terminal markup gn uses in user messages;
// web pages render the plain text.
var markupStripper = strings.NewReplacer(
	"<em>", "", "</em>", "",
	"<err>", "", "</err>", "",
	"<warn>", "", "</warn>", "",
	"<title>", "", "</title>", "",
)

// userMessage extracts the user-facing text of an error.
func userMessage(err error) string {
	if gnErr, ok := err.(*gn.Error); ok {
		msg := gnErr.Msg
		if len(gnErr.Vars) > 0 {
			msg = fmt.Sprintf(msg, gnErr.Vars...)
		}
		return markupStripper.Replace(msg)
	}
	return err.Error()
}
