package httpapi

import (
	"net/http"

	"github.com/fanconnect/portal/internal/store"
)

func (h *Handler) InitializeData(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.InitializeData")
	defer span.End()

	seeded, err := h.adminService.Initialize(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "initialize data failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]bool{"seeded": seeded})
}

func (h *Handler) GetStatistics(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetStatistics")
	defer span.End()

	stats, err := h.adminService.Statistics(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "get statistics failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, stats)
}

func (h *Handler) ExportData(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ExportData")
	defer span.End()

	snap, err := h.adminService.Export(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "export data failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, snap)
}

func (h *Handler) ImportData(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ImportData")
	defer span.End()

	var snap store.Snapshot
	if err := h.decodeRequest(ctx, r, &snap); err != nil {
		writeError(ctx, w, err)
		return
	}

	if err := h.adminService.Import(ctx, snap); err != nil {
		h.logger.ErrorContext(ctx, "import data failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "imported"})
}

func (h *Handler) ClearData(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ClearData")
	defer span.End()

	if err := h.adminService.ClearAll(ctx); err != nil {
		h.logger.ErrorContext(ctx, "clear data failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "cleared"})
}
