package api

import (
	"encoding/json"
	"net/http"

	"github.com/rkshop/admin-api/internal/api/shared"
	"github.com/rkshop/admin-api/internal/api/validation"
)

// decodeJSON decodes the request body into the given struct. A type
// mismatch on a known field is reported through the validation envelope so
// the client sees a field error, not an opaque parse failure.
func decodeJSON(w http.ResponseWriter, r *http.Request, v interface{}, legacyKey bool) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		if fieldErrors := validation.FieldErrorsFromDecode(err); fieldErrors != nil {
			shared.RespondWithFieldErrors(w, r,
				http.StatusBadRequest, MsgValidationFailed, fieldErrors, legacyKey)
		} else {
			shared.RespondWithError(w, r, http.StatusBadRequest, MsgInvalidRequest)
		}
		return false
	}
	return true
}
