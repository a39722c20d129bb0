package storage

import (
	"context"
	"testing"
	"time"
)

func TestLocalClientRoundTrip(t *testing.T) {
	ctx := context.Background()
	client, err := NewLocalClient(t.TempDir())
	if err != nil {
		t.Fatalf("NewLocalClient failed: %v", err)
	}
	defer client.Close()

	path := "snapshots/2026-01-02_03-04-05/index.html"
	content := []byte("<html>snapshot</html>")

	if err := client.StoreFile(ctx, path, content); err != nil {
		t.Fatalf("StoreFile failed: %v", err)
	}

	got, err := client.GetFile(ctx, path)
	if err != nil {
		t.Fatalf("GetFile failed: %v", err)
	}
	if string(got) != string(content) {
		t.Errorf("Round trip mismatch: %q", got)
	}

	if _, err := client.GetFile(ctx, "snapshots/missing/index.html"); err == nil {
		t.Error("Expected an error for a missing file")
	}
}

func TestLocalClientListSnapshots(t *testing.T) {
	ctx := context.Background()
	client, err := NewLocalClient(t.TempDir())
	if err != nil {
		t.Fatalf("NewLocalClient failed: %v", err)
	}
	defer client.Close()

	timestamps := []time.Time{
		time.Date(2026, 1, 1, 10, 0, 0, 0, time.UTC),
		time.Date(2026, 1, 3, 10, 0, 0, 0, time.UTC),
		time.Date(2026, 1, 2, 10, 0, 0, 0, time.UTC),
	}
	for _, ts := range timestamps {
		folder := SnapshotFolderPath(ts)
		if err := client.StoreFile(ctx, folder+"/index.html", []byte("page")); err != nil {
			t.Fatalf("StoreFile failed: %v", err)
		}
		// A PNG alongside the page must not produce an extra listing entry.
		if err := client.StoreFile(ctx, folder+"/chart.png", []byte{0x89}); err != nil {
			t.Fatalf("StoreFile failed: %v", err)
		}
	}

	folders, err := client.ListSnapshots(ctx, 10)
	if err != nil {
		t.Fatalf("ListSnapshots failed: %v", err)
	}
	if len(folders) != 3 {
		t.Fatalf("Expected 3 snapshots, got %v", folders)
	}
	if folders[0] != SnapshotFolderPath(timestamps[1]) {
		t.Errorf("Expected newest snapshot first, got %v", folders)
	}
	if folders[2] != SnapshotFolderPath(timestamps[0]) {
		t.Errorf("Expected oldest snapshot last, got %v", folders)
	}

	limited, err := client.ListSnapshots(ctx, 1)
	if err != nil {
		t.Fatalf("ListSnapshots failed: %v", err)
	}
	if len(limited) != 1 || limited[0] != SnapshotFolderPath(timestamps[1]) {
		t.Errorf("Limit must keep only the newest snapshot, got %v", limited)
	}
}

func TestSnapshotFolderPath(t *testing.T) {
	ts := time.Date(2026, 8, 30, 12, 34, 56, 0, time.UTC)
	if got := SnapshotFolderPath(ts); got != "snapshots/2026-08-30_12-34-56" {
		t.Errorf("Unexpected folder path: %s", got)
	}
}

func TestGetContentType(t *testing.T) {
	tests := []struct {
		file string
		want string
	}{
		{"index.html", "text/html"},
		{"chart.png", "image/png"},
		{"data.csv", "text/csv"},
		{"payload.json", "application/json"},
		{"mystery.bin", "application/octet-stream"},
	}
	for _, tt := range tests {
		if got := GetContentType(tt.file); got != tt.want {
			t.Errorf("GetContentType(%s): expected %s, got %s", tt.file, tt.want, got)
		}
	}
}
