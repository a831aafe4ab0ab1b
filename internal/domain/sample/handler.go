package sample

import (
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/lims/lims/internal/platform/auth"
	"github.com/lims/lims/pkg/pagination"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	registerGroup := api.Group("", auth.RequireRole(auth.RoleManager, auth.RoleReceptionist))
	registerGroup.POST("/samples", h.Register)

	resultGroup := api.Group("", auth.RequireRole(auth.RoleManager, auth.RoleLabTech))
	resultGroup.PUT("/samples/:id/result", h.EnterResult)
	resultGroup.PATCH("/samples/:id/cancel", h.Cancel)
	resultGroup.GET("/samples/pending", h.ListPending)
	resultGroup.GET("/samples/pending/count", h.CountPending)

	api.GET("/samples/search", h.Search)
	api.GET("/samples/count", h.CountByDate)
	api.GET("/samples/:id", h.Get)
}

type registerRequest struct {
	PatientName    string    `json:"patient_name"`
	NationalID     *string   `json:"national_id"`
	TestTypeID     uuid.UUID `json:"test_type_id"`
	CollectionDate time.Time `json:"collection_date"`
}

func (h *Handler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	userID := auth.UserIDFromContext(c.Request().Context())

	sm, err := h.svc.Register(c.Request().Context(), RegisterInput{
		PatientName:    req.PatientName,
		NationalID:     req.NationalID,
		TestTypeID:     req.TestTypeID,
		CollectionDate: req.CollectionDate,
		RegisteredBy:   userID,
	})
	if err != nil {
		return mapSampleError(err)
	}
	return c.JSON(http.StatusCreated, sm)
}

func (h *Handler) Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	sm, err := h.svc.Get(c.Request().Context(), id)
	if err != nil {
		return mapSampleError(err)
	}
	return c.JSON(http.StatusOK, sm)
}

type resultRequest struct {
	ResultData map[string]string `json:"result_data"`
	Notes      string            `json:"notes"`
}

func (h *Handler) EnterResult(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	var req resultRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.Notes != "" {
		if req.ResultData == nil {
			req.ResultData = map[string]string{}
		}
		req.ResultData[NotesField] = req.Notes
	}
	userID := auth.UserIDFromContext(c.Request().Context())

	if err := h.svc.EnterResult(c.Request().Context(), id, req.ResultData, userID); err != nil {
		return mapSampleError(err)
	}
	return c.JSON(http.StatusOK, map[string]bool{"success": true})
}

func (h *Handler) Cancel(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	userID := auth.UserIDFromContext(c.Request().Context())

	if err := h.svc.Cancel(c.Request().Context(), id, userID); err != nil {
		return mapSampleError(err)
	}
	return c.JSON(http.StatusOK, map[string]bool{"success": true})
}

func (h *Handler) ListPending(c echo.Context) error {
	items, err := h.svc.ListPending(c.Request().Context())
	if err != nil {
		return mapSampleError(err)
	}
	if items == nil {
		items = []*PendingSample{}
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) Search(c echo.Context) error {
	f := SearchFilter{
		PatientName: c.QueryParam("patient_name"),
		NationalID:  c.QueryParam("national_id"),
	}
	if v := c.QueryParam("sample_id"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid sample_id")
		}
		f.SampleID = &id
	}
	if v := c.QueryParam("start_date"); v != "" {
		ts, err := time.Parse("2006-01-02", v)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid start_date, expected YYYY-MM-DD")
		}
		f.StartDate = &ts
	}
	if v := c.QueryParam("end_date"); v != "" {
		ts, err := time.Parse("2006-01-02", v)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid end_date, expected YYYY-MM-DD")
		}
		f.EndDate = &ts
	}

	pg := pagination.FromContext(c)
	items, total, err := h.svc.Search(c.Request().Context(), f, pg.Limit, pg.Offset)
	if err != nil {
		return mapSampleError(err)
	}
	return c.JSON(http.StatusOK, pagination.NewResponse(items, total, pg.Limit, pg.Offset))
}

func (h *Handler) CountByDate(c echo.Context) error {
	var date *time.Time
	if v := c.QueryParam("date"); v != "" {
		ts, err := time.Parse("2006-01-02", v)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid date, expected YYYY-MM-DD")
		}
		date = &ts
	}
	n, err := h.svc.CountByDate(c.Request().Context(), date)
	if err != nil {
		return mapSampleError(err)
	}
	return c.JSON(http.StatusOK, map[string]int{"count": n})
}

func (h *Handler) CountPending(c echo.Context) error {
	n, err := h.svc.CountPending(c.Request().Context())
	if err != nil {
		return mapSampleError(err)
	}
	return c.JSON(http.StatusOK, map[string]int{"count": n})
}

func mapSampleError(err error) error {
	switch {
	case errors.Is(err, ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, ErrInvalidState):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	case errors.Is(err, ErrPatientNameRequired),
		errors.Is(err, ErrCollectionDateRequired),
		errors.Is(err, ErrTestTypeRequired),
		errors.Is(err, ErrUnknownTestType),
		errors.Is(err, ErrResultDataRequired),
		errors.Is(err, ErrEmptySearch):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}
}
