package helpers

import (
	"encoding/json"
	"net/http"
)

type messageResponse struct {
	Msg string `json:"msg"`
}

type errorsResponse struct {
	Errors []FieldError `json:"errors"`
}

func RespondJSON(w http.ResponseWriter, code int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(payload)
}

// RespondMessage writes a `{msg}` body, used for not-found and delete
// confirmations.
func RespondMessage(w http.ResponseWriter, code int, msg string) {
	RespondJSON(w, code, messageResponse{Msg: msg})
}

// RespondFieldErrors writes the `{errors:[...]}` body of a validation
// failure.
func RespondFieldErrors(w http.ResponseWriter, errs []FieldError) {
	RespondJSON(w, http.StatusBadRequest, errorsResponse{Errors: errs})
}
