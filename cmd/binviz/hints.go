package main

import (
	"context"
	"errors"

	binviz "github.com/alnah/go-binviz"
	"github.com/alnah/go-binviz/internal/assets"
	"github.com/alnah/go-binviz/internal/config"
	"github.com/alnah/go-binviz/internal/hints"
)

// hintFor returns an actionable hint for err, or "".
// vars is the process environment, consulted for browser hints.
func hintFor(err error, vars map[string]string) string {
	switch {
	case errors.Is(err, binviz.ErrBrowserConnect):
		return hints.ForBrowserConnect(vars)
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, binviz.ErrPageLoad):
		return hints.ForTimeout()
	case errors.Is(err, config.ErrConfigNotFound):
		return hints.ForConfigNotFound(config.SearchPaths("binviz"))
	case errors.Is(err, binviz.ErrStyleNotFound):
		return hints.ForStyleNotFound(assets.BuiltinStyles())
	case errors.Is(err, binviz.ErrInvalidBinary):
		return hints.ForInvalidBinary()
	case errors.Is(err, ErrWriteOutput):
		return hints.ForOutputDirectory()
	}
	return ""
}
