package handler

//go:generate mockgen -source=handler.go -destination=mocks/mocks.go -package=mocks Service

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"picnic/internal/picnic/models"
	"picnic/pkg/platform/httputil"
	"picnic/pkg/requestcontext"
)

// Service defines the picnic workflows exposed over HTTP.
type Service interface {
	CreateCity(ctx context.Context, name string) (*models.CityWithWeather, error)
	ListCities(ctx context.Context, name string) ([]models.CityWithWeather, error)
	GetCityWithWeather(ctx context.Context, id int64) (*models.CityWithWeather, error)
	RegisterUser(ctx context.Context, name, surname string, age *int) (*models.User, error)
	ListUsers(ctx context.Context, order models.UserOrder) ([]*models.User, error)
	SchedulePicnic(ctx context.Context, cityID int64, at time.Time) (*models.PicnicDetails, error)
	ListPicnics(ctx context.Context, at *time.Time, includePast bool) ([]models.PicnicDetails, error)
	RegisterForPicnic(ctx context.Context, userID, picnicID int64) (*models.RegistrationConfirmation, error)
}

// Handler wires picnic endpoints to the picnic service.
type Handler struct {
	service Service
	logger  *slog.Logger
}

// New constructs a picnic handler with its dependencies.
func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Register mounts picnic endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/create-city/", h.HandleCreateCity)
	r.Get("/get-cities/", h.HandleListCities)
	r.Get("/cities/{id}", h.HandleGetCity)
	r.Post("/register-user/", h.HandleRegisterUser)
	r.Get("/users-list/", h.HandleListUsers)
	r.Post("/picnic-add/", h.HandleSchedulePicnic)
	r.Get("/all-picnics/", h.HandleListPicnics)
	r.Post("/picnic-register/", h.HandleRegisterForPicnic)
}

// HandleCreateCity handles POST /create-city/.
func (h *Handler) HandleCreateCity(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[CreateCityRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	city, err := h.service.CreateCity(ctx, req.Name)
	if err != nil {
		h.fail(ctx, w, "create city failed", err, "city", req.Name)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, toCityResponse(*city))
}

// HandleListCities handles GET /get-cities/?q=.
func (h *Handler) HandleListCities(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	cities, err := h.service.ListCities(ctx, r.URL.Query().Get("q"))
	if err != nil {
		h.fail(ctx, w, "list cities failed", err)
		return
	}
	resp := make([]CityResponse, 0, len(cities))
	for _, c := range cities {
		resp = append(resp, toCityResponse(c))
	}
	httputil.WriteJSON(w, http.StatusOK, resp)
}

// HandleGetCity handles GET /cities/{id}.
func (h *Handler) HandleGetCity(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := parseID("id", chi.URLParam(r, "id"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	city, err := h.service.GetCityWithWeather(ctx, id)
	if err != nil {
		h.fail(ctx, w, "get city failed", err, "city_id", id)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, toCityResponse(*city))
}

// HandleRegisterUser handles POST /register-user/.
func (h *Handler) HandleRegisterUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[RegisterUserRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	user, err := h.service.RegisterUser(ctx, req.Name, req.Surname, req.Age)
	if err != nil {
		h.fail(ctx, w, "register user failed", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, toUserResponse(*user))
}

// HandleListUsers handles GET /users-list/?q=min|max.
func (h *Handler) HandleListUsers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	users, err := h.service.ListUsers(ctx, models.ParseUserOrder(r.URL.Query().Get("q")))
	if err != nil {
		h.fail(ctx, w, "list users failed", err)
		return
	}
	resp := make([]UserResponse, 0, len(users))
	for _, u := range users {
		resp = append(resp, toUserResponse(*u))
	}
	httputil.WriteJSON(w, http.StatusOK, resp)
}

// HandleSchedulePicnic handles POST /picnic-add/.
func (h *Handler) HandleSchedulePicnic(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[SchedulePicnicRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	picnic, err := h.service.SchedulePicnic(ctx, req.CityID, req.ParsedTime())
	if err != nil {
		h.fail(ctx, w, "schedule picnic failed", err, "city_id", req.CityID)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, ScheduledPicnicResponse{
		ID:   picnic.ID,
		City: picnic.CityName,
		Time: picnic.Time.UTC(),
	})
}

// HandleListPicnics handles GET /all-picnics/?datetime=&past=. An offset may be
// sent as %2B or as a bare "+", which query decoding turns into a space.
func (h *Handler) HandleListPicnics(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	query := r.URL.Query()

	var at *time.Time
	if raw := query.Get("datetime"); raw != "" {
		t, err := parseQueryTimestamp("datetime", raw)
		if err != nil {
			httputil.WriteError(w, err)
			return
		}
		at = &t
	}
	includePast, err := parseBool("past", query.Get("past"), true)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	picnics, err := h.service.ListPicnics(ctx, at, includePast)
	if err != nil {
		h.fail(ctx, w, "list picnics failed", err)
		return
	}
	resp := make([]PicnicResponse, 0, len(picnics))
	for _, p := range picnics {
		resp = append(resp, toPicnicResponse(p))
	}
	httputil.WriteJSON(w, http.StatusOK, resp)
}

// HandleRegisterForPicnic handles POST /picnic-register/.
func (h *Handler) HandleRegisterForPicnic(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[RegisterForPicnicRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	confirmation, err := h.service.RegisterForPicnic(ctx, req.UserID, req.PicnicID)
	if err != nil {
		h.fail(ctx, w, "picnic registration failed", err,
			"user_id", req.UserID,
			"picnic_id", req.PicnicID,
		)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, toRegistrationResponse(confirmation))
}

func (h *Handler) fail(ctx context.Context, w http.ResponseWriter, msg string, err error, attributes ...any) {
	if h.logger != nil {
		attributes = append(attributes,
			"request_id", requestcontext.RequestID(ctx),
			"error", err,
		)
		h.logger.ErrorContext(ctx, msg, attributes...)
	}
	httputil.WriteError(w, err)
}
