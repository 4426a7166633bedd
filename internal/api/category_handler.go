package api

import (
	"log/slog"
	"net/http"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/rkshop/admin-api/internal/api/shared"
	"github.com/rkshop/admin-api/internal/api/validation"
	"github.com/rkshop/admin-api/internal/domain"
	"github.com/rkshop/admin-api/internal/platform/logger"
	"github.com/rkshop/admin-api/internal/store"
)

// CategoryHandler handles category requests.
type CategoryHandler struct {
	categoryStore store.CategoryStore
	validator     *validation.Validator
	logger        *slog.Logger
}

// NewCategoryHandler creates a new CategoryHandler.
func NewCategoryHandler(categoryStore store.CategoryStore, log *slog.Logger) *CategoryHandler {
	if log == nil {
		log = slog.Default()
	}
	return &CategoryHandler{
		categoryStore: categoryStore,
		validator:     validation.New(),
		logger:        log.With(slog.String("component", "category_handler")),
	}
}

// Create handles POST /category. The validation-error list uses the legacy
// "error" key on this endpoint.
func (h *CategoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req CategoryRequest
	if !decodeJSON(w, r, &req, true) {
		return
	}

	if fieldErrors := h.validator.Check(req); fieldErrors != nil {
		shared.RespondWithFieldErrors(w, r,
			http.StatusBadRequest, MsgValidationFailed, fieldErrors, true)
		return
	}

	var parentID *primitive.ObjectID
	if req.CategoryParentID != "" {
		id, err := primitive.ObjectIDFromHex(req.CategoryParentID)
		if err != nil {
			shared.RespondWithError(w, r, http.StatusBadRequest, MsgValidationFailed)
			return
		}
		parentID = &id
	}

	now := time.Now().UTC()
	category := &domain.Category{
		ID:          primitive.NewObjectID(),
		ParentID:    parentID,
		Name:        req.CategoryName,
		URL:         req.CategoryURL,
		Description: req.CategoryDescription,
		Status:      *req.CategoryStatus,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := h.categoryStore.Create(r.Context(), category); err != nil {
		log.Error("failed to create category", "error", err)
		shared.RespondWithError(w, r, http.StatusInternalServerError, MsgInternalError)
		return
	}

	shared.RespondWithSuccess(w, r, http.StatusCreated, MsgCategoryAdded, nil)
}

// List handles GET /category. Only top-level categories are returned; each
// carries its direct children under subCategories.
func (h *CategoryHandler) List(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	categories, err := h.categoryStore.ListTopLevel(r.Context())
	if err != nil {
		log.Error("failed to list categories", "error", err)
		shared.RespondWithError(w, r, http.StatusInternalServerError, MsgInternalError)
		return
	}

	shared.RespondWithSuccess(w, r, http.StatusOK, MsgProductsFound, categories)
}
