package api

import (
	"encoding/json"
	"fmt"
	"strings"
)

// APIError is a non-success HTTP response with a message extracted from the
// server's "detail" body. Status-class sentinels (401/403/404) are mapped to
// common.* errors before an APIError is ever constructed.
type APIError struct {
	Status int
	Detail string
}

func (e *APIError) Error() string {
	return e.Detail
}

// validationError is one element of FastAPI-style list details:
// {"detail": [{"loc": ["body","title"], "msg": "field required"}, ...]}.
type validationError struct {
	Loc []json.RawMessage `json:"loc"`
	Msg string            `json:"msg"`
}

// extractDetail pulls a human-readable message out of an error response
// body. The "detail" field is either a plain string, used verbatim, or a
// list of field-level validation errors, joined into one message. Returns
// "" when the body has no usable detail; callers then fall back to a
// per-operation message.
func extractDetail(body []byte) string {
	var envelope struct {
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil || len(envelope.Detail) == 0 {
		return ""
	}

	var s string
	if err := json.Unmarshal(envelope.Detail, &s); err == nil {
		return s
	}

	var list []validationError
	if err := json.Unmarshal(envelope.Detail, &list); err == nil && len(list) > 0 {
		parts := make([]string, 0, len(list))
		for _, ve := range list {
			parts = append(parts, fmt.Sprintf("%s: %s", joinLoc(ve.Loc), ve.Msg))
		}
		return strings.Join(parts, ", ")
	}

	// Unknown detail shape: show it raw rather than losing it.
	return string(envelope.Detail)
}

// joinLoc renders a validation-error location list like ["body","title"] or
// ["body", 0, "price"] as "body.title" / "body.0.price".
func joinLoc(loc []json.RawMessage) string {
	parts := make([]string, 0, len(loc))
	for _, raw := range loc {
		var s string
		if err := json.Unmarshal(raw, &s); err == nil {
			parts = append(parts, s)
			continue
		}
		parts = append(parts, strings.TrimSpace(string(raw)))
	}
	return strings.Join(parts, ".")
}
