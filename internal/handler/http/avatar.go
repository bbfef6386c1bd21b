package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-accounts/internal/utils"
	"github.com/MKhiriev/go-accounts/models"
)

const (
	avatarFormField = "avatar"

	// maxAvatarSize is the upper bound of the whole multipart body.
	maxAvatarSize = 5 << 20
	// avatarMemoryLimit is the part of the upload kept in memory; the rest
	// spills to temporary files.
	avatarMemoryLimit = 1 << 20
)

func (h *Handler) updateAvatar(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		writeError(w, r, errNoUserInContext)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxAvatarSize)
	if err := r.ParseMultipartForm(avatarMemoryLimit); err != nil {
		writeError(w, r, errors.Join(errMissingAvatar, err))
		return
	}
	defer r.MultipartForm.RemoveAll()

	file, header, err := r.FormFile(avatarFormField)
	if err != nil {
		writeError(w, r, errors.Join(errMissingAvatar, err))
		return
	}
	defer file.Close()

	avatarURL, err := h.services.AuthService.UpdateAvatar(r.Context(), userID, header.Filename, file)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.AvatarResponse{AvatarURL: avatarURL}, http.StatusOK)
}
