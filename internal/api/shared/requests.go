package shared

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"
)

// validate is the single validator instance behind ValidateRequest. The
// validator caches struct metadata, so sharing one instance across all
// handlers is both safe and cheaper than per-handler instances.
var validate = validator.New()

// DecodeJSON decodes the request body into the given payload struct.
func DecodeJSON(r *http.Request, v interface{}) error {
	return json.NewDecoder(r.Body).Decode(v)
}

// ValidateRequest checks a decoded request payload. A payload carrying
// its own Validate method is validated through it; everything else is
// checked against its validate struct tags.
func ValidateRequest(v interface{}) error {
	if val, ok := v.(interface{ Validate() error }); ok {
		return val.Validate()
	}
	return validate.Struct(v)
}
