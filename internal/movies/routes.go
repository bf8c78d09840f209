package movies

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
)

// ActivityRecorder records catalog mutations for the activity log.
// A nil recorder disables logging.
type ActivityRecorder interface {
	Record(ctx context.Context, action string, movieID int64, title, detail string) error
}

// Notifier is called after each successful mutation so live clients can
// re-fetch. A nil notifier disables events.
type Notifier func(action string, movieID int64)

// Options holds paging bounds for the list endpoints.
type Options struct {
	PageSizeDefault int
	PageSizeMax     int
}

// DefaultOptions matches the documented API defaults.
func DefaultOptions() Options {
	return Options{PageSizeDefault: 10, PageSizeMax: 50}
}

// RegisterRoutes mounts the movie catalog endpoints on the given router.
func RegisterRoutes(r chi.Router, store *Store, rec ActivityRecorder, notify Notifier, opts Options) {
	if opts.PageSizeDefault == 0 {
		opts = DefaultOptions()
	}
	h := &handlers{store: store, rec: rec, notify: notify, opts: opts}

	r.Get("/api/movies", h.list)
	r.Post("/api/movies", h.create)
	r.Get("/api/movies/{id}", h.get)
	r.Put("/api/movies/{id}", h.update)
	r.Delete("/api/movies/{id}", h.delete)
	r.Get("/api/stats", h.stats)
}

type handlers struct {
	store  *Store
	rec    ActivityRecorder
	notify Notifier
	opts   Options
}

func (h *handlers) list(w http.ResponseWriter, r *http.Request) {
	page, err := intParam(r, "page", 1, 1, 0)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	pageSize, err := intParam(r, "pageSize", h.opts.PageSizeDefault, 1, h.opts.PageSizeMax)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	dir := strings.ToLower(strings.TrimSpace(r.URL.Query().Get("dir")))
	if dir != "asc" {
		dir = "desc"
	}

	result, err := h.store.List(r.Context(), ListParams{
		Page:     page,
		PageSize: pageSize,
		Query:    strings.TrimSpace(r.URL.Query().Get("q")),
		Genre:    strings.TrimSpace(r.URL.Query().Get("genre")),
		Sort:     strings.TrimSpace(r.URL.Query().Get("sort")),
		Dir:      dir,
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *handlers) get(w http.ResponseWriter, r *http.Request) {
	id, ok := movieID(r)
	if !ok {
		writeError(w, http.StatusNotFound, "Movie not found")
		return
	}
	m, err := h.store.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			writeError(w, http.StatusNotFound, "Movie not found")
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, m)
}

func (h *handlers) create(w http.ResponseWriter, r *http.Request) {
	data := decodePayload(r)
	if errs := ValidatePayload(data, false); len(errs) > 0 {
		writeValidationError(w, errs)
		return
	}

	rating, _ := payloadRating(data["rating"])
	m := &Movie{
		Title:    strings.TrimSpace(payloadString(data["title"])),
		Genre:    strings.TrimSpace(payloadString(data["genre"])),
		Rating:   rating,
		ImageURL: strings.TrimSpace(payloadString(data["imageUrl"])),
	}
	if err := h.store.Create(r.Context(), m); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.record(r.Context(), "create", m.ID, m.Title, fmt.Sprintf("Added %q", m.Title))
	writeJSON(w, http.StatusCreated, m)
}

func (h *handlers) update(w http.ResponseWriter, r *http.Request) {
	id, ok := movieID(r)
	if !ok {
		writeError(w, http.StatusNotFound, "Movie not found")
		return
	}
	m, err := h.store.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			writeError(w, http.StatusNotFound, "Movie not found")
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	data := decodePayload(r)
	if errs := ValidatePayload(data, true); len(errs) > 0 {
		writeValidationError(w, errs)
		return
	}

	// Only keys present in the body are applied.
	if v, ok := data["title"]; ok {
		m.Title = strings.TrimSpace(payloadString(v))
	}
	if v, ok := data["genre"]; ok {
		m.Genre = strings.TrimSpace(payloadString(v))
	}
	if v, ok := data["rating"]; ok {
		m.Rating, _ = payloadRating(v)
	}
	if v, ok := data["imageUrl"]; ok {
		m.ImageURL = strings.TrimSpace(payloadString(v))
	}

	if err := h.store.Update(r.Context(), m); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			writeError(w, http.StatusNotFound, "Movie not found")
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.record(r.Context(), "update", m.ID, m.Title, fmt.Sprintf("Updated %q", m.Title))
	writeJSON(w, http.StatusOK, m)
}

func (h *handlers) delete(w http.ResponseWriter, r *http.Request) {
	id, ok := movieID(r)
	if !ok {
		writeError(w, http.StatusNotFound, "Movie not found")
		return
	}
	m, err := h.store.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			writeError(w, http.StatusNotFound, "Movie not found")
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	if err := h.store.Delete(r.Context(), id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			writeError(w, http.StatusNotFound, "Movie not found")
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.record(r.Context(), "delete", id, m.Title, fmt.Sprintf("Removed %q", m.Title))
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func (h *handlers) stats(w http.ResponseWriter, r *http.Request) {
	st, err := h.store.Stats(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	// A malformed pageSize here falls back to the default rather than
	// failing the whole stats request.
	pageSize, err := intParam(r, "pageSize", h.opts.PageSizeDefault, 1, h.opts.PageSizeMax)
	if err != nil {
		pageSize = h.opts.PageSizeDefault
	}
	st.CurrentPageSize = pageSize

	writeJSON(w, http.StatusOK, st)
}

// record logs the mutation and fires the live-update notifier.
func (h *handlers) record(ctx context.Context, action string, id int64, title, detail string) {
	if h.rec != nil {
		// Activity logging is best-effort; a failed entry never fails
		// the mutation that already committed.
		_ = h.rec.Record(ctx, action, id, title, detail)
	}
	if h.notify != nil {
		h.notify(action, id)
	}
}

// movieID parses the {id} URL parameter.
func movieID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	return id, err == nil
}

// decodePayload decodes the request body into a generic map. A missing or
// malformed body yields an empty map, which validation then rejects.
func decodePayload(r *http.Request) map[string]any {
	data := map[string]any{}
	if err := json.NewDecoder(r.Body).Decode(&data); err != nil {
		return map[string]any{}
	}
	return data
}

// intParam reads an integer query parameter, applying a default and
// clamping to [min, max] (max 0 means unbounded).
func intParam(r *http.Request, name string, def, min, max int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, nil
	}
	val, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer", name)
	}
	if val < min {
		val = min
	}
	if max > 0 && val > max {
		val = max
	}
	return val, nil
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

func writeValidationError(w http.ResponseWriter, details map[string]string) {
	writeJSON(w, http.StatusBadRequest, map[string]any{
		"error":   "Validation failed",
		"details": details,
	})
}
