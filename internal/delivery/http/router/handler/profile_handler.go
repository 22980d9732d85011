package handler

import (
	"log/slog"
	"net/http"

	"pasar/internal/delivery/http/response"
	domainerrors "pasar/internal/domain/errors"
	"pasar/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ProfileHandler holds dependencies for contact-card handlers. The picture
// travels as multipart field "profilePicture".
type ProfileHandler struct {
	uc     usecase.ProfileUsecase
	logger *slog.Logger
}

// NewProfileHandler is the constructor for ProfileHandler, injected by Fx.
func NewProfileHandler(uc usecase.ProfileUsecase, logger *slog.Logger) *ProfileHandler {
	return &ProfileHandler{uc: uc, logger: logger}
}

// GetProfile returns the caller's contact card, empty-string fields when the
// record does not exist yet.
func (h *ProfileHandler) GetProfile(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return invalidTokenData(c)
	}

	profile, err := h.uc.GetProfile(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.MsgWith(c, http.StatusOK, "Profile retrieved successfully", map[string]any{
		"userProfile": profile,
	})
}

type updateProfileRequest struct {
	FullName    string `json:"fullName"`
	PhoneNumber string `json:"phoneNumber"`
	Address     string `json:"address"`
}

// UpdateProfile upserts the contact-card fields.
func (h *ProfileHandler) UpdateProfile(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return invalidTokenData(c)
	}

	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrValidationFailed
	}

	profile, err := h.uc.UpdateProfile(c.Request().Context(), userID, &usecase.UpdateProfileInput{
		FullName:    req.FullName,
		PhoneNumber: req.PhoneNumber,
		Address:     req.Address,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.MsgWith(c, http.StatusOK, "Profile updated successfully", map[string]any{
		"userProfile": profile,
	})
}

// UploadProfilePicture stores a new picture and upserts its URL.
func (h *ProfileHandler) UploadProfilePicture(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return invalidTokenData(c)
	}

	upload, closer, err := formFile(c, "profilePicture")
	if err != nil {
		return errors.WithStack(err)
	}
	if upload == nil {
		return domainerrors.ErrNoFileUploaded
	}
	defer closer.Close()

	profile, err := h.uc.UploadProfilePicture(c.Request().Context(), userID, upload)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.MsgWith(c, http.StatusOK, "Profile picture uploaded successfully", map[string]any{
		"userProfile": map[string]string{"profilePicture": profile.ProfilePicture},
	})
}

// DeleteProfilePicture removes the stored blob and blanks the URL.
func (h *ProfileHandler) DeleteProfilePicture(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return invalidTokenData(c)
	}

	profile, err := h.uc.DeleteProfilePicture(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.MsgWith(c, http.StatusOK, "Profile picture deleted successfully", map[string]any{
		"userProfile": map[string]string{"profilePicture": profile.ProfilePicture},
	})
}
