package scene

import (
	"errors"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/eleven-am/streetscene/internal/dto"
	"github.com/eleven-am/streetscene/internal/shared"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

var errOutsideRoot = errors.New("path escapes data root")

type Handler struct {
	service    *Service
	store      *Store
	dataRoot   string
	outputRoot string
	logger     *slog.Logger
}

// NewHandler serves scenes whose input files live under dataRoot. Request
// paths are resolved against it and anything escaping it is rejected.
func NewHandler(service *Service, store *Store, dataRoot, outputRoot string, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	if abs, err := filepath.Abs(dataRoot); err == nil {
		dataRoot = abs
	}
	return &Handler{
		service:    service,
		store:      store,
		dataRoot:   filepath.Clean(dataRoot),
		outputRoot: outputRoot,
		logger:     logger.With("component", "scene_handler"),
	}
}

func (h *Handler) RegisterRoutes(g *echo.Group) {
	g.GET("", h.List)
	g.POST("", h.Create)
	g.GET("/:id", h.Get)
	g.DELETE("/:id", h.Delete)
}

// resolvePath maps a request path onto the data root. Relative paths are
// joined to the root; absolute ones must already sit beneath it.
func resolvePath(root, p string) (string, error) {
	if p == "" {
		return "", nil
	}
	full := p
	if !filepath.IsAbs(full) {
		full = filepath.Join(root, full)
	}
	full = filepath.Clean(full)
	rel, err := filepath.Rel(root, full)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", errOutsideRoot
	}
	return full, nil
}

func recordToResponse(rec *Record) dto.SceneResponse {
	return dto.SceneResponse{
		ID:            rec.ID,
		VehicleID:     rec.VehicleID,
		TimeStart:     rec.TimeStart,
		CameraSetting: rec.CameraSetting,
		Found:         rec.Found,
		Lon:           rec.Lon,
		Lat:           rec.Lat,
		Heading:       rec.Heading,
		TimeOfDay:     rec.TimeOfDay,
		Combined:      rec.Combined,
		FailedViews:   rec.FailedViews,
		CreatedAt:     rec.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

func viewsToResponse(views []ViewResult) []dto.SceneViewResponse {
	out := make([]dto.SceneViewResponse, len(views))
	for i, v := range views {
		out[i] = dto.SceneViewResponse{
			Name:    v.Name,
			Heading: v.Heading,
			FOV:     v.FOV,
			Text:    v.Text,
		}
		if v.Err != nil {
			out[i].Error = v.Err.Error()
		}
	}
	return out
}

func validationDetails(err error) []dto.ValidationError {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}
	out := make([]dto.ValidationError, len(verrs))
	for i, fe := range verrs {
		out[i] = dto.ValidationError{
			Field:   fe.Field(),
			Message: "failed on the '" + fe.Tag() + "' rule",
		}
	}
	return out
}

// Create godoc
// @Summary      Describe a scene
// @Description  Samples the camera preset around a vehicle at a time step, captions each view and stores the result
// @Tags         scenes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body      dto.CreateSceneRequest  true  "Scene request"
// @Success      201      {object}  dto.SceneResponse
// @Failure      400      {object}  shared.APIError
// @Failure      401      {object}  shared.APIError
// @Failure      422      {object}  shared.APIError
// @Failure      500      {object}  shared.APIError
// @Router       /scenes [post]
func (h *Handler) Create(c echo.Context) error {
	var req dto.CreateSceneRequest
	if err := c.Bind(&req); err != nil {
		return shared.BadRequest("invalid_request", "invalid request body")
	}

	fcdPath, err := resolvePath(h.dataRoot, req.FCDPath)
	if err != nil {
		return shared.BadRequest("invalid_path", "fcd_path must be inside the data root")
	}
	netPath, err := resolvePath(h.dataRoot, req.NetPath)
	if err != nil {
		return shared.BadRequest("invalid_path", "net_path must be inside the data root")
	}

	id := shared.NewID("scn_")
	retrieve := true
	if req.StreetView != nil {
		retrieve = *req.StreetView
	}

	ctx := c.Request().Context()
	report, err := h.service.Describe(ctx, Request{
		OutputDir:         filepath.Join(h.outputRoot, id),
		FCDPath:           fcdPath,
		NetPath:           netPath,
		VehicleID:         req.VehicleID,
		TimeStart:         req.TimeStart,
		TimeEnd:           req.TimeEnd,
		CameraSetting:     req.CameraSetting,
		AgentClipDistance: req.AgentClipDistance,
		MapClipDistance:   req.MapClipDistance,
		Retrieve:          retrieve,
	})
	if err != nil {
		switch {
		case errors.Is(err, shared.ErrInvalidInput):
			return shared.NewAPIError("validation_failed", err.Error()).
				WithDetails(validationDetails(err)).
				ToHTTP(http.StatusBadRequest)
		case errors.Is(err, ErrRetrievalDisabled):
			return shared.UnprocessableEntity("retrieval_disabled", "image retrieval is not configured")
		case errors.Is(err, ErrOutput):
			h.logger.Error("failed to write scene output", "error", err, "id", id)
			return shared.InternalError("output_failed", "failed to write scene output")
		default:
			h.logger.Warn("failed to describe scene", "error", err, "vehicle_id", req.VehicleID)
			return shared.UnprocessableEntity("describe_failed", "scene inputs could not be loaded")
		}
	}

	rec := NewRecord(report)
	rec.ID = id
	if err := h.store.Create(ctx, rec); err != nil {
		h.logger.Error("failed to store scene", "error", err, "id", id)
		return shared.InternalError("create_failed", "failed to store scene")
	}

	resp := recordToResponse(rec)
	resp.Views = viewsToResponse(report.Views)
	return c.JSON(http.StatusCreated, resp)
}

// Get godoc
// @Summary      Get a scene
// @Description  Returns a stored scene description by ID
// @Tags         scenes
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Scene ID"
// @Success      200  {object}  dto.SceneResponse
// @Failure      401  {object}  shared.APIError
// @Failure      404  {object}  shared.APIError
// @Failure      500  {object}  shared.APIError
// @Router       /scenes/{id} [get]
func (h *Handler) Get(c echo.Context) error {
	rec, err := h.store.GetByID(c.Request().Context(), c.Param("id"))
	if errors.Is(err, shared.ErrNotFound) {
		return shared.NotFound("scene_not_found", "scene not found")
	}
	if err != nil {
		h.logger.Error("failed to get scene", "error", err)
		return shared.InternalError("get_failed", "failed to get scene")
	}
	return c.JSON(http.StatusOK, recordToResponse(rec))
}

// List godoc
// @Summary      List scenes
// @Description  Returns stored scenes, newest first
// @Tags         scenes
// @Produce      json
// @Security     BearerAuth
// @Param        vehicle_id  query     string  false  "Filter by vehicle ID"
// @Param        limit       query     int     false  "Maximum number of scenes"
// @Success      200         {object}  dto.SceneListResponse
// @Failure      400         {object}  shared.APIError
// @Failure      401         {object}  shared.APIError
// @Failure      500         {object}  shared.APIError
// @Router       /scenes [get]
func (h *Handler) List(c echo.Context) error {
	limit := 0
	if raw := c.QueryParam("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			return shared.BadRequest("invalid_limit", "limit must be a non-negative integer")
		}
		limit = n
	}

	recs, err := h.store.List(c.Request().Context(), c.QueryParam("vehicle_id"), limit)
	if err != nil {
		h.logger.Error("failed to list scenes", "error", err)
		return shared.InternalError("list_failed", "failed to list scenes")
	}

	response := make([]dto.SceneResponse, len(recs))
	for i, rec := range recs {
		response[i] = recordToResponse(rec)
	}
	return c.JSON(http.StatusOK, dto.SceneListResponse{Scenes: response})
}

// Delete godoc
// @Summary      Delete a scene
// @Description  Removes a stored scene description and its output directory
// @Tags         scenes
// @Security     BearerAuth
// @Param        id   path  string  true  "Scene ID"
// @Success      204  "No Content"
// @Failure      401  {object}  shared.APIError
// @Failure      404  {object}  shared.APIError
// @Failure      500  {object}  shared.APIError
// @Router       /scenes/{id} [delete]
func (h *Handler) Delete(c echo.Context) error {
	id := c.Param("id")
	err := h.store.Delete(c.Request().Context(), id)
	if errors.Is(err, shared.ErrNotFound) {
		return shared.NotFound("scene_not_found", "scene not found")
	}
	if err != nil {
		h.logger.Error("failed to delete scene", "error", err, "id", id)
		return shared.InternalError("delete_failed", "failed to delete scene")
	}

	if dir, err := resolvePath(h.outputRoot, id); err == nil && dir != filepath.Clean(h.outputRoot) {
		if err := os.RemoveAll(dir); err != nil {
			h.logger.Warn("failed to remove scene output", "error", err, "id", id)
		}
	}
	return c.NoContent(http.StatusNoContent)
}
