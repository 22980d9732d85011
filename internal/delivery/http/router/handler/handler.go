// Package handler contains the HTTP handlers for the application.
package handler

import (
	"io"
	"net/http"

	"pasar/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// HealthCheck is the liveness endpoint.
func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// currentUserID reads the user id the auth middleware stored on the context.
func currentUserID(c echo.Context) (uuid.UUID, bool) {
	userID, ok := c.Get("userID").(uuid.UUID)

	return userID, ok
}

// invalidTokenData is the response for a context missing its user id. The
// message is part of the wire contract.
func invalidTokenData(c echo.Context) error {
	return c.JSON(http.StatusUnauthorized, map[string]string{"msg": "Invalid token data"})
}

// formFile reads an optional multipart file field. A missing field yields a
// nil upload and no error; presence checks belong to the usecases. The
// returned closer is non-nil whenever the upload is.
func formFile(c echo.Context, field string) (*usecase.FileUpload, io.Closer, error) {
	fileHeader, err := c.FormFile(field)
	if err != nil {
		return nil, nil, nil
	}

	src, err := fileHeader.Open()
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to open uploaded file")
	}

	upload := &usecase.FileUpload{
		Content:     src,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Filename:    fileHeader.Filename,
	}

	return upload, src, nil
}
