package server

import (
	"encoding/json"
	"fmt"
	"mime"
	"net/http"
	"strconv"
	"strings"

	"africlimate/internal/views"
)

// sessionCookieName is the cookie carrying the login session token.
const sessionCookieName = "session_token"

// writeJSON writes v as a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// decodeRequest fills a request struct from a JSON body or, for browser
// form posts, via the fromForm callback.
func decodeRequest(r *http.Request, v interface{}, fromForm func()) error {
	if isFormPost(r) {
		if err := r.ParseForm(); err != nil {
			return fmt.Errorf("parse form: %w", err)
		}
		fromForm()
		return nil
	}
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return fmt.Errorf("decode json: %w", err)
	}
	return nil
}

// isFormPost reports whether the request is a browser form submission
// rather than an API call.
func isFormPost(r *http.Request) bool {
	ct := r.Header.Get("Content-Type")
	if ct == "" {
		return false
	}
	mediaType, _, err := mime.ParseMediaType(ct)
	if err != nil {
		return false
	}
	return mediaType == "application/x-www-form-urlencoded" || mediaType == "multipart/form-data"
}

// sessionToken extracts the session token from the cookie or, for API
// clients, from a bearer Authorization header.
func sessionToken(r *http.Request) string {
	if cookie, err := r.Cookie(sessionCookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}
	authz := r.Header.Get("Authorization")
	if token, ok := strings.CutPrefix(authz, "Bearer "); ok {
		return token
	}
	return ""
}

// parseFilter reads the region and year filter query parameters. Absent
// or malformed values mean "no filter".
func parseFilter(r *http.Request) views.Filter {
	filter := views.Filter{Region: r.URL.Query().Get("region")}
	if yearStr := r.URL.Query().Get("year"); yearStr != "" {
		if year, err := strconv.Atoi(yearStr); err == nil {
			filter.Year = year
		}
	}
	return filter
}

// parseLimit reads a limit query parameter with a default and a cap.
func parseLimit(r *http.Request, def, ceiling int) int {
	limit := def
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		if parsed, err := strconv.Atoi(limitStr); err == nil && parsed > 0 {
			limit = parsed
		}
	}
	if limit > ceiling {
		limit = ceiling
	}
	return limit
}
