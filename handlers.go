package docsite

import (
	"errors"
	"mime"
	"net/http"
	"path"

	"github.com/labstack/echo/v4"
)

func (a *App) handleFile(c echo.Context) error {
	p, ok := outputPath(a.Builder.cfg.BaseURL, c.Request().URL.Path)
	if !ok {
		return echo.ErrNotFound
	}
	data, err := a.Cache.Get(c.Request().Context(), p)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return echo.ErrNotFound
		}
		return err
	}
	ctype := mime.TypeByExtension(path.Ext(p))
	if ctype == "" {
		ctype = http.DetectContentType(data)
	}
	return c.Blob(http.StatusOK, ctype, data)
}

func (a *App) handleRootRedirect(c echo.Context) error {
	return c.Redirect(http.StatusFound, JoinRoute(a.Builder.cfg.BaseURL))
}

func (a *App) httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	var he *echo.HTTPError
	ok := errors.As(err, &he)
	if ok && he.Code == http.StatusNotFound {
		page, perr := a.Cache.Get(c.Request().Context(), "404.html")
		if perr == nil {
			_ = c.HTMLBlob(http.StatusNotFound, page)
			return
		}
	}
	code := http.StatusInternalServerError
	if ok {
		code = he.Code
	}
	if code >= 500 {
		c.Logger().Errorf("server error: %v", err)
		if views := a.Builder.views; views.ServerError != nil {
			_ = RenderStatus(c, code, views.ServerError(err))
			return
		}
	}
	a.Echo.DefaultHTTPErrorHandler(err, c)
}
