package images

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestUpload(t *testing.T) {
	var gotPreset, gotFilename, gotContent string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Fatalf("parse multipart: %v", err)
		}
		gotPreset = r.FormValue("upload_preset")

		file, header, err := r.FormFile("file")
		if err != nil {
			t.Fatalf("form file: %v", err)
		}
		defer func() { _ = file.Close() }()
		gotFilename = header.Filename
		raw, _ := io.ReadAll(file)
		gotContent = string(raw)

		_ = json.NewEncoder(w).Encode(map[string]string{
			"secure_url": "https://res.example.com/jardin/hero.jpg",
		})
	}))
	defer srv.Close()

	c := NewCloudinaryClient(srv.Client(), "jardin", "unsigned", WithBaseURL(srv.URL))
	url, err := c.Upload(context.Background(), "hero.jpg", strings.NewReader("fake-image-bytes"))
	if err != nil {
		t.Fatalf("upload: %v", err)
	}

	if url != "https://res.example.com/jardin/hero.jpg" {
		t.Errorf("unexpected url %q", url)
	}
	if gotPreset != "unsigned" {
		t.Errorf("expected unsigned preset, got %q", gotPreset)
	}
	if gotFilename != "hero.jpg" || gotContent != "fake-image-bytes" {
		t.Errorf("file not forwarded: %q %q", gotFilename, gotContent)
	}
}

func TestUploadRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer srv.Close()

	c := NewCloudinaryClient(srv.Client(), "jardin", "unsigned", WithBaseURL(srv.URL))
	_, err := c.Upload(context.Background(), "hero.jpg", strings.NewReader("x"))
	if !errors.Is(err, ErrUploadFailed) {
		t.Fatalf("expected ErrUploadFailed, got %v", err)
	}
}

func TestUploadMissingSecureURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]string{})
	}))
	defer srv.Close()

	c := NewCloudinaryClient(srv.Client(), "jardin", "unsigned", WithBaseURL(srv.URL))
	_, err := c.Upload(context.Background(), "hero.jpg", strings.NewReader("x"))
	if !errors.Is(err, ErrUploadFailed) {
		t.Fatalf("expected ErrUploadFailed, got %v", err)
	}
}
