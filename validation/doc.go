// Package validation validates API request payloads.
//
// Struct tag validation (via the validator library) covers the common
// cases:
//
//	type ttsRequest struct {
//	    Text  string  `json:"text" validate:"required"`
//	    Speed float64 `json:"speed" validate:"omitempty,gte=0.5,lte=2"`
//	}
//	err := validation.Validate(req)
//
// The programmatic Validator collects field errors for checks tags can't
// express.
package validation
