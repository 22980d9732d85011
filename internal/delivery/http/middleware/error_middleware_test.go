package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	domainerrors "pasar/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func newErrorTestContext() (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/product", nil)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func testMiddlewareLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestErrorMiddleware_AppError(t *testing.T) {
	t.Parallel()

	m := NewErrorMiddleware(testMiddlewareLogger())
	c, rec := newErrorTestContext()

	m.HandleHTTPError(domainerrors.ErrSellerNotFound, c)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), `"msg":"Seller not found"`)
}

func TestErrorMiddleware_WrappedAppError(t *testing.T) {
	t.Parallel()

	m := NewErrorMiddleware(testMiddlewareLogger())
	c, rec := newErrorTestContext()

	m.HandleHTTPError(errors.WithStack(domainerrors.ErrNotProductOwner), c)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), `"msg":"Unauthorized action, not your product"`)
}

func TestErrorMiddleware_EchoHTTPError(t *testing.T) {
	t.Parallel()

	m := NewErrorMiddleware(testMiddlewareLogger())
	c, rec := newErrorTestContext()

	m.HandleHTTPError(echo.NewHTTPError(http.StatusMethodNotAllowed, "Method Not Allowed"), c)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Contains(t, rec.Body.String(), `"msg":"Method Not Allowed"`)
}

func TestErrorMiddleware_UnclassifiedError(t *testing.T) {
	t.Parallel()

	m := NewErrorMiddleware(testMiddlewareLogger())
	c, rec := newErrorTestContext()

	m.HandleHTTPError(errors.New("database connection refused"), c)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), `"msg":"Server error"`)
}

func TestErrorMiddleware_CommittedResponse(t *testing.T) {
	t.Parallel()

	m := NewErrorMiddleware(testMiddlewareLogger())
	c, rec := newErrorTestContext()

	assert.NoError(t, c.NoContent(http.StatusOK))
	m.HandleHTTPError(domainerrors.ErrSellerNotFound, c)

	assert.Equal(t, http.StatusOK, rec.Code)
}
