package maxapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
)

func TestUpdatesMarkerHandling(t *testing.T) {
	var gotMarker, gotTimeout string
	var markerPresent bool

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/updates" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if r.Header.Get("Authorization") != "test-token" {
			t.Errorf("missing auth header")
		}
		gotTimeout = r.URL.Query().Get("timeout")
		gotMarker = r.URL.Query().Get("marker")
		markerPresent = r.URL.Query().Has("marker")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"updates": []map[string]interface{}{
				{"update_type": "message_created", "message": map[string]interface{}{
					"sender": map[string]interface{}{"user_id": 42},
					"body":   map[string]interface{}{"text": "привет"},
				}},
			},
			"marker": 17,
		})
	}))
	defer server.Close()

	client := NewClient("test-token", server.URL)

	// Zero marker must be omitted from the query.
	updates, marker, err := client.Updates(context.Background(), 0, 60)
	if err != nil {
		t.Fatalf("updates: %v", err)
	}
	if markerPresent {
		t.Errorf("zero marker should be omitted, got %q", gotMarker)
	}
	if gotTimeout != "60" {
		t.Errorf("timeout = %q", gotTimeout)
	}
	if marker != 17 {
		t.Errorf("next marker = %d, want 17", marker)
	}
	if len(updates) != 1 || updates[0].Message == nil || updates[0].Message.Body.Text != "привет" {
		t.Errorf("decoded updates wrong: %+v", updates)
	}

	if _, _, err := client.Updates(context.Background(), 17, 60); err != nil {
		t.Fatalf("updates with marker: %v", err)
	}
	if gotMarker != "17" {
		t.Errorf("marker param = %q, want 17", gotMarker)
	}
}

func TestSendMessage(t *testing.T) {
	var gotUserID string
	var gotBody sendMessageRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/messages" || r.Method != http.MethodPost {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		gotUserID = r.URL.Query().Get("user_id")
		json.NewDecoder(r.Body).Decode(&gotBody)
		w.Write([]byte("{}"))
	}))
	defer server.Close()

	client := NewClient("test-token", server.URL)
	if err := client.SendMessage(context.Background(), 42, "привет"); err != nil {
		t.Fatalf("send: %v", err)
	}
	if gotUserID != "42" {
		t.Errorf("user_id = %q", gotUserID)
	}
	if gotBody.Text != "привет" || !gotBody.Notify {
		t.Errorf("body = %+v", gotBody)
	}
}

func TestSendMessageErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad token", http.StatusUnauthorized)
	}))
	defer server.Close()

	client := NewClient("bad", server.URL)
	if err := client.SendMessage(context.Background(), 42, "x"); err == nil {
		t.Error("expected an error for non-200 status")
	}
}

func TestSendMessageWithImageFallsBackToText(t *testing.T) {
	var messages []sendMessageRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/uploads":
			// Upload URL request fails: the send must degrade to text.
			http.Error(w, "upload unavailable", http.StatusInternalServerError)
		case "/messages":
			var msg sendMessageRequest
			json.NewDecoder(r.Body).Decode(&msg)
			messages = append(messages, msg)
			w.Write([]byte("{}"))
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	}))
	defer server.Close()

	imagePath := filepath.Join(t.TempDir(), "morning.jpg")
	if err := os.WriteFile(imagePath, []byte("jpeg-bytes"), 0o644); err != nil {
		t.Fatal(err)
	}

	client := NewClient("test-token", server.URL)
	if err := client.SendMessageWithImage(context.Background(), 42, "текст", imagePath); err != nil {
		t.Fatalf("send with image: %v", err)
	}

	if len(messages) != 1 {
		t.Fatalf("expected one text-only send, got %d", len(messages))
	}
	if len(messages[0].Attachments) != 0 {
		t.Errorf("fallback send must carry no attachments: %+v", messages[0])
	}
}

func TestSendMessageWithImageMissingFile(t *testing.T) {
	var sends int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/messages" {
			sends++
			w.Write([]byte("{}"))
			return
		}
		t.Errorf("no upload should be attempted for a missing file, got %s", r.URL.Path)
	}))
	defer server.Close()

	client := NewClient("test-token", server.URL)
	if err := client.SendMessageWithImage(context.Background(), 42, "текст", "/no/such/file.jpg"); err != nil {
		t.Fatalf("send: %v", err)
	}
	if sends != 1 {
		t.Errorf("expected one text-only send, got %d", sends)
	}
}

func TestUploadImage(t *testing.T) {
	photos := json.RawMessage(`{"photo_1":{"token":"abc"}}`)

	var server *httptest.Server
	server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/uploads":
			json.NewEncoder(w).Encode(map[string]string{"url": server.URL + "/upload-target"})
		case "/upload-target":
			if r.Header.Get("Authorization") != "" {
				t.Error("upload host must not receive the bot token")
			}
			if err := r.ParseMultipartForm(1 << 20); err != nil {
				t.Errorf("parse multipart: %v", err)
			}
			if _, _, err := r.FormFile("data"); err != nil {
				t.Errorf("missing form file %q: %v", "data", err)
			}
			w.Write([]byte(`{"photos":{"photo_1":{"token":"abc"}}}`))
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	}))
	defer server.Close()

	imagePath := filepath.Join(t.TempDir(), "evening.jpg")
	if err := os.WriteFile(imagePath, []byte("jpeg-bytes"), 0o644); err != nil {
		t.Fatal(err)
	}

	client := NewClient("test-token", server.URL)
	got, err := client.UploadImage(context.Background(), imagePath)
	if err != nil {
		t.Fatalf("upload: %v", err)
	}
	if string(got) != string(photos) {
		t.Errorf("photos = %s, want %s", got, photos)
	}
}

func TestIsTimeout(t *testing.T) {
	if !IsTimeout(context.DeadlineExceeded) {
		t.Error("deadline exceeded must count as a timeout")
	}
	if IsTimeout(nil) || IsTimeout(context.Canceled) {
		t.Error("nil and cancellation are not timeouts")
	}
}
