package reporting

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/lims/lims/internal/platform/auth"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	g := api.Group("", auth.RequireRole(auth.RoleManager, auth.RoleAccountant))
	g.GET("/reports/financial", h.Financial)
	g.GET("/reports/financial/export", h.ExportFinancial)
	g.GET("/reports/operational", h.Operational)
	g.GET("/reports/operational/export", h.ExportOperational)
}

func parseRange(c echo.Context) (DateRange, error) {
	var r DateRange
	start := c.QueryParam("start")
	end := c.QueryParam("end")
	if start == "" || end == "" {
		return r, ErrRangeRequired
	}
	var err error
	if r.Start, err = time.Parse("2006-01-02", start); err != nil {
		return r, ErrRangeRequired
	}
	if r.End, err = time.Parse("2006-01-02", end); err != nil {
		return r, ErrRangeRequired
	}
	return r, nil
}

func (h *Handler) Financial(c echo.Context) error {
	r, err := parseRange(c)
	if err != nil {
		return mapReportError(err)
	}
	report, err := h.svc.Financial(c.Request().Context(), r)
	if err != nil {
		return mapReportError(err)
	}
	return c.JSON(http.StatusOK, report)
}

func (h *Handler) Operational(c echo.Context) error {
	r, err := parseRange(c)
	if err != nil {
		return mapReportError(err)
	}
	report, err := h.svc.Operational(c.Request().Context(), r)
	if err != nil {
		return mapReportError(err)
	}
	return c.JSON(http.StatusOK, report)
}

func (h *Handler) ExportFinancial(c echo.Context) error {
	if f := c.QueryParam("format"); f != "" && f != "csv" {
		return mapReportError(ErrUnsupportedFormat)
	}
	r, err := parseRange(c)
	if err != nil {
		return mapReportError(err)
	}
	report, err := h.svc.Financial(c.Request().Context(), r)
	if err != nil {
		return mapReportError(err)
	}

	res := c.Response()
	res.Header().Set(echo.HeaderContentType, "text/csv; charset=utf-8")
	res.Header().Set(echo.HeaderContentDisposition, `attachment; filename="financial_report.csv"`)
	res.WriteHeader(http.StatusOK)
	return WriteFinancialCSV(res, report)
}

func (h *Handler) ExportOperational(c echo.Context) error {
	if f := c.QueryParam("format"); f != "" && f != "csv" {
		return mapReportError(ErrUnsupportedFormat)
	}
	r, err := parseRange(c)
	if err != nil {
		return mapReportError(err)
	}
	report, err := h.svc.Operational(c.Request().Context(), r)
	if err != nil {
		return mapReportError(err)
	}

	res := c.Response()
	res.Header().Set(echo.HeaderContentType, "text/csv; charset=utf-8")
	res.Header().Set(echo.HeaderContentDisposition, `attachment; filename="operational_report.csv"`)
	res.WriteHeader(http.StatusOK)
	return WriteOperationalCSV(res, report)
}

func mapReportError(err error) error {
	switch {
	case errors.Is(err, ErrRangeRequired),
		errors.Is(err, ErrInvalidRange),
		errors.Is(err, ErrUnsupportedFormat):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}
}
