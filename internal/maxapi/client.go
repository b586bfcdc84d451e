package maxapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

const DefaultBaseURL = "https://botapi.max.ru"

// Client talks to the MAX Bot API.
type Client struct {
	token      string
	baseURL    string
	httpClient *http.Client
}

func NewClient(token, baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		token:   token,
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 90 * time.Second,
		},
	}
}

// IsTimeout reports whether err is a transport timeout. The poll loop
// treats those as a normal empty long-poll round, not a failure.
func IsTimeout(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

// Updates performs one long-poll round: GET /updates with the given
// marker (omitted when zero) and timeout in seconds. Returns the batch
// and the next marker to poll from.
func (c *Client) Updates(ctx context.Context, marker int64, timeoutSec int) ([]Update, int64, error) {
	q := url.Values{}
	q.Set("timeout", strconv.Itoa(timeoutSec))
	if marker > 0 {
		q.Set("marker", strconv.FormatInt(marker, 10))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/updates?"+q.Encode(), nil)
	if err != nil {
		return nil, marker, fmt.Errorf("build updates request: %w", err)
	}
	c.authorize(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, marker, fmt.Errorf("fetch updates: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, marker, fmt.Errorf("fetch updates: status %d: %s", resp.StatusCode, body)
	}

	var parsed updatesResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, marker, fmt.Errorf("decode updates: %w", err)
	}

	next := parsed.Marker
	if next == 0 {
		next = marker
	}
	return parsed.Updates, next, nil
}

// SendMessage sends a plain text message to the user.
func (c *Client) SendMessage(ctx context.Context, userID int64, text string) error {
	return c.sendMessage(ctx, userID, sendMessageRequest{Text: text, Notify: true})
}

// SendMessageWithImage sends text with an image attachment. Every failure
// along the upload path degrades to a text-only send so the user still
// gets the message.
func (c *Client) SendMessageWithImage(ctx context.Context, userID int64, text, imagePath string) error {
	if _, err := os.Stat(imagePath); err != nil {
		log.Printf("[warn] ritual image %s unavailable: %v", imagePath, err)
		return c.SendMessage(ctx, userID, text)
	}

	photos, err := c.UploadImage(ctx, imagePath)
	if err != nil {
		log.Printf("[warn] upload image %s: %v", imagePath, err)
		return c.SendMessage(ctx, userID, text)
	}

	msg := sendMessageRequest{
		Text:   text,
		Notify: true,
		Attachments: []Attachment{
			{Type: "image", Payload: AttachmentPayload{Photos: photos}},
		},
	}
	if err := c.sendMessage(ctx, userID, msg); err != nil {
		log.Printf("[warn] send with image to %d: %v", userID, err)
		return c.SendMessage(ctx, userID, text)
	}
	return nil
}

func (c *Client) sendMessage(ctx context.Context, userID int64, msg sendMessageRequest) error {
	payload, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("encode message: %w", err)
	}

	q := url.Values{}
	q.Set("user_id", strconv.FormatInt(userID, 10))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/messages?"+q.Encode(), bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("build message request: %w", err)
	}
	c.authorize(req)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("send message: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("send message: status %d: %s", resp.StatusCode, body)
	}
	return nil
}

// UploadImage pushes an image through the two-step MAX upload flow:
// request an upload URL, then POST the file bytes to it. Returns the
// photos structure to embed in an attachment payload.
func (c *Client) UploadImage(ctx context.Context, path string) (json.RawMessage, error) {
	uploadURL, err := c.requestUploadURL(ctx)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("data", filepath.Base(path))
	if err != nil {
		return nil, fmt.Errorf("build upload form: %w", err)
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open image: %w", err)
	}
	defer file.Close()
	if _, err := io.Copy(part, file); err != nil {
		return nil, fmt.Errorf("read image: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("finish upload form: %w", err)
	}

	// The upload host expects no Authorization header.
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, uploadURL, &buf)
	if err != nil {
		return nil, fmt.Errorf("build upload request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("upload image: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, fmt.Errorf("upload image: status %d: %s", resp.StatusCode, body)
	}

	var result uploadResultResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decode upload result: %w", err)
	}

	if len(result.Photos) > 0 {
		return result.Photos, nil
	}
	if result.Token != "" {
		photos, _ := json.Marshal(map[string]string{"token": result.Token})
		return photos, nil
	}
	return nil, fmt.Errorf("upload result has neither photos nor token")
}

func (c *Client) requestUploadURL(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/uploads?type=image", nil)
	if err != nil {
		return "", fmt.Errorf("build upload url request: %w", err)
	}
	c.authorize(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("request upload url: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return "", fmt.Errorf("request upload url: status %d: %s", resp.StatusCode, body)
	}

	var parsed uploadURLResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("decode upload url: %w", err)
	}
	if parsed.URL == "" {
		return "", fmt.Errorf("upload url missing in response")
	}
	return parsed.URL, nil
}

func (c *Client) authorize(req *http.Request) {
	req.Header.Set("Authorization", c.token)
}
