package api

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/rkshop/admin-api/internal/api/shared"
	"github.com/rkshop/admin-api/internal/api/validation"
	"github.com/rkshop/admin-api/internal/domain"
	"github.com/rkshop/admin-api/internal/platform/logger"
	"github.com/rkshop/admin-api/internal/store"
)

// ProductHandler handles product CRUD requests.
type ProductHandler struct {
	productStore store.ProductStore
	validator    *validation.Validator
	logger       *slog.Logger
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(productStore store.ProductStore, log *slog.Logger) *ProductHandler {
	if log == nil {
		log = slog.Default()
	}
	return &ProductHandler{
		productStore: productStore,
		validator:    validation.New(),
		logger:       log.With(slog.String("component", "product_handler")),
	}
}

// Create handles POST /product. The validation-error list uses the legacy
// "error" key on this endpoint.
func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req ProductRequest
	if !decodeJSON(w, r, &req, true) {
		return
	}

	if fieldErrors := h.validator.Check(req); fieldErrors != nil {
		shared.RespondWithFieldErrors(w, r,
			http.StatusBadRequest, MsgValidationFailed, fieldErrors, true)
		return
	}

	product := productFromRequest(&req)
	product.ID = primitive.NewObjectID()
	now := time.Now().UTC()
	product.CreatedAt = now
	product.UpdatedAt = now

	if err := h.productStore.Create(r.Context(), product); err != nil {
		log.Error("failed to create product", "error", err)
		shared.RespondWithError(w, r, http.StatusInternalServerError, MsgInternalError)
		return
	}

	shared.RespondWithSuccess(w, r, http.StatusCreated, MsgProductAdded, nil)
}

// List handles GET /product. Page and limit are required positive integers;
// the page read and the total count run concurrently in the store.
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	query, fieldErrors := parseListQuery(r)
	if fieldErrors != nil {
		shared.RespondWithFieldErrors(w, r,
			http.StatusBadRequest, MsgValidationFailed, fieldErrors, false)
		return
	}
	if fieldErrors := h.validator.Check(query); fieldErrors != nil {
		shared.RespondWithFieldErrors(w, r,
			http.StatusBadRequest, MsgValidationFailed, fieldErrors, false)
		return
	}

	result, err := h.productStore.List(r.Context(), query.Page, query.Limit)
	if err != nil {
		log.Error("failed to list products", "error", err)
		shared.RespondWithError(w, r, http.StatusInternalServerError, MsgInternalError)
		return
	}

	shared.RespondWithPage(w, r, MsgProductsFound,
		result.Items, result.TotalCount, query.Page, query.Limit)
}

// View handles GET /product/{productId}.
func (h *ProductHandler) View(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, ok := h.pathProductID(w, r)
	if !ok {
		return
	}

	product, err := h.productStore.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrProductNotFound) {
			shared.RespondWithError(w, r, http.StatusBadRequest, MsgProductNotFound)
			return
		}
		log.Error("failed to get product", "error", err, "product_id", id.Hex())
		shared.RespondWithError(w, r, http.StatusInternalServerError, MsgInternalError)
		return
	}

	shared.RespondWithSuccess(w, r, http.StatusOK, MsgProductFound, product)
}

// Edit handles PUT /product/{productId}. The body rules are the same as
// create; the path identifier is validated with the body so one response
// carries every violation.
func (h *ProductHandler) Edit(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req ProductRequest
	if !decodeJSON(w, r, &req, false) {
		return
	}

	fieldErrors := h.validator.Check(ProductIDParam{ProductID: chi.URLParam(r, "productId")})
	fieldErrors = append(fieldErrors, h.validator.Check(req)...)
	if len(fieldErrors) > 0 {
		shared.RespondWithFieldErrors(w, r,
			http.StatusBadRequest, MsgValidationFailed, fieldErrors, false)
		return
	}

	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "productId"))
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, MsgValidationFailed)
		return
	}

	product := productFromRequest(&req)
	product.ID = id

	if err := h.productStore.Update(r.Context(), product); err != nil {
		if errors.Is(err, store.ErrProductNotFound) {
			shared.RespondWithError(w, r, http.StatusBadRequest, MsgProductNotFound)
			return
		}
		log.Error("failed to update product", "error", err, "product_id", id.Hex())
		shared.RespondWithError(w, r, http.StatusInternalServerError, MsgInternalError)
		return
	}

	shared.RespondWithSuccess(w, r, http.StatusOK, MsgProductUpdated, nil)
}

// Delete handles DELETE /product/{productId}.
func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, ok := h.pathProductID(w, r)
	if !ok {
		return
	}

	if err := h.productStore.Delete(r.Context(), id); err != nil {
		if errors.Is(err, store.ErrProductNotFound) {
			shared.RespondWithError(w, r, http.StatusBadRequest, MsgProductNotFound)
			return
		}
		log.Error("failed to delete product", "error", err, "product_id", id.Hex())
		shared.RespondWithError(w, r, http.StatusInternalServerError, MsgInternalError)
		return
	}

	shared.RespondWithSuccess(w, r, http.StatusOK, MsgProductDeleted, nil)
}

// pathProductID validates the productId path parameter as a 24-hex
// identifier and writes the validation envelope itself on failure.
func (h *ProductHandler) pathProductID(w http.ResponseWriter, r *http.Request) (primitive.ObjectID, bool) {
	raw := chi.URLParam(r, "productId")

	if fieldErrors := h.validator.Check(ProductIDParam{ProductID: raw}); fieldErrors != nil {
		shared.RespondWithFieldErrors(w, r,
			http.StatusBadRequest, MsgValidationFailed, fieldErrors, false)
		return primitive.NilObjectID, false
	}

	id, err := primitive.ObjectIDFromHex(raw)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, MsgValidationFailed)
		return primitive.NilObjectID, false
	}
	return id, true
}

// parseListQuery reads page and limit from the query string. A value that
// is not an integer is reported as a field error, matching how the body
// rules report type mismatches.
func parseListQuery(r *http.Request) (ProductListQuery, []shared.FieldError) {
	var (
		query       ProductListQuery
		fieldErrors []shared.FieldError
	)

	for _, param := range []struct {
		name string
		dst  *int64
	}{
		{"page", &query.Page},
		{"limit", &query.Limit},
	} {
		raw := r.URL.Query().Get(param.name)
		if raw == "" {
			continue // the rule set reports missing values as required
		}
		value, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			fieldErrors = append(fieldErrors, shared.FieldError{
				Field:   param.name,
				Message: param.name + " must be a number",
			})
			continue
		}
		*param.dst = value
	}

	return query, fieldErrors
}

func productFromRequest(req *ProductRequest) *domain.Product {
	categoryID, _ := primitive.ObjectIDFromHex(req.CategoryID)

	var price int64
	if req.ProductPrice != nil {
		price = *req.ProductPrice
	}

	return &domain.Product{
		Name:        req.ProductName,
		Code:        req.ProductCode,
		Color:       req.ProductColor,
		Description: req.ProductDescription,
		Price:       price,
		Image: domain.ProductImage{
			PublicID:  req.ProductImage.PublicID,
			SecureURL: req.ProductImage.SecureURL,
		},
		CategoryID: categoryID,
	}
}
