package storage

import (
	"strings"
	"time"
)

// SnapshotFolderPath generates a consistent folder name for one exported
// dashboard snapshot. Lexicographic order equals chronological order, which
// ListSnapshots relies on.
func SnapshotFolderPath(timestamp time.Time) string {
	return "snapshots/" + timestamp.UTC().Format("2006-01-02_15-04-05")
}

// GetContentType determines the MIME content type based on file extension
func GetContentType(filename string) string {
	switch {
	case strings.HasSuffix(filename, ".json"):
		return "application/json"
	case strings.HasSuffix(filename, ".txt"):
		return "text/plain"
	case strings.HasSuffix(filename, ".html"):
		return "text/html"
	case strings.HasSuffix(filename, ".css"):
		return "text/css"
	case strings.HasSuffix(filename, ".csv"):
		return "text/csv"
	case strings.HasSuffix(filename, ".png"):
		return "image/png"
	case strings.HasSuffix(filename, ".jpg"), strings.HasSuffix(filename, ".jpeg"):
		return "image/jpeg"
	default:
		return "application/octet-stream"
	}
}
