// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// MaskedValue replaces sensitive values in logged payloads.
const MaskedValue = "***"

// WriteJSON serializes data to JSON and writes it with statusCode and an
// "application/json" Content-Type.
//
// If marshaling fails, it responds with 500 Internal Server Error
// and returns a wrapped error.
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}

// MaskJSONFields returns body with the top-level values of keys replaced by
// [MaskedValue]. A body that is not a JSON object is returned as a
// placeholder so raw secrets never reach the log.
func MaskJSONFields(body []byte, keys ...string) string {
	var payload map[string]json.RawMessage
	if err := json.Unmarshal(body, &payload); err != nil {
		return fmt.Sprintf("<unparsable body, %d bytes>", len(body))
	}

	masked, _ := json.Marshal(MaskedValue)
	for _, key := range keys {
		if _, ok := payload[key]; ok {
			payload[key] = masked
		}
	}

	out, err := json.Marshal(payload)
	if err != nil {
		return fmt.Sprintf("<unparsable body, %d bytes>", len(body))
	}

	return string(out)
}
