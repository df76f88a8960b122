package handler

import (
	"errors"
	"net/http"
	"net/url"
	"time"

	"github.com/gin-gonic/gin"

	"foodbridge/backend/internal/service"
	"foodbridge/backend/pkg/response"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportHandler admin report downloads.
type ExportHandler struct {
	exportSvc service.ExportService
}

// NewExportHandler creates the ExportHandler.
func NewExportHandler(exportSvc service.ExportService) *ExportHandler {
	return &ExportHandler{exportSvc: exportSvc}
}

// ExportHoursReport streams the verified-hours spreadsheet (admin).
// GET /api/v1/admin/reports/hours?from=2026-07-01&to=2026-07-31
func (h *ExportHandler) ExportHoursReport(c *gin.Context) {
	from, err := time.Parse("2006-01-02", c.Query("from"))
	if err != nil {
		response.BadRequest(c, 10001, "from must be a YYYY-MM-DD date")
		return
	}
	to, err := time.Parse("2006-01-02", c.Query("to"))
	if err != nil {
		response.BadRequest(c, 10001, "to must be a YYYY-MM-DD date")
		return
	}
	if to.Before(from) {
		response.BadRequest(c, 10001, "to must not precede from")
		return
	}

	buf, filename, err := h.exportSvc.ExportHoursReport(c.Request.Context(), from, to)
	if err != nil {
		if errors.Is(err, service.ErrExportNoLogs) {
			response.NotFound(c, 16001, "no verified hours in the requested period")
			return
		}
		response.InternalError(c)
		return
	}

	encodedFilename := url.QueryEscape(filename)
	c.Header("Content-Description", "File Transfer")
	c.Header("Content-Disposition", "attachment; filename*=UTF-8''"+encodedFilename)
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}
