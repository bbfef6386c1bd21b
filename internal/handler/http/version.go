package http

import (
	"net/http"
)

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	serverVersion := h.services.AppInfoService.GetAppVersion(ctx)
	buildInfo := h.services.AppInfoService.GetBuildInfo(ctx)

	if commit := buildInfo.BuildCommit(); commit != "" {
		w.Header().Set("X-Build-Commit", commit)
	}
	w.Header().Set("Content-Type", "text/plain")
	w.Write([]byte(serverVersion))
}
