package services

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"time"
)

type SpoonacularService struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

func NewSpoonacularService() *SpoonacularService {
	return &SpoonacularService{
		apiKey:  os.Getenv("SPOONACULAR_API_KEY"),
		baseURL: "https://api.spoonacular.com",
		client:  &http.Client{Timeout: 15 * time.Second},
	}
}

func (s *SpoonacularService) Configured() bool { return s.apiKey != "" }

// Analyze streams the image at path to the Spoonacular image-analysis
// endpoint and returns the raw JSON body. The response shape varies, so
// interpretation is left to the caller. Any failure comes back as a
// *RecognitionError; a non-2xx upstream status is carried on it.
func (s *SpoonacularService) Analyze(ctx context.Context, path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &RecognitionError{Err: fmt.Errorf("failed to open image: %w", err)}
	}
	defer f.Close()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", filepath.Base(path))
	if err != nil {
		return nil, &RecognitionError{Err: err}
	}
	if _, err := io.Copy(part, f); err != nil {
		return nil, &RecognitionError{Err: fmt.Errorf("failed to read image: %w", err)}
	}
	if err := mw.Close(); err != nil {
		return nil, &RecognitionError{Err: err}
	}

	u := fmt.Sprintf("%s/food/images/analyze?apiKey=%s", s.baseURL, url.QueryEscape(s.apiKey))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, &buf)
	if err != nil {
		return nil, &RecognitionError{Err: err}
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, &RecognitionError{Err: fmt.Errorf("failed to call Spoonacular: %w", err)}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &RecognitionError{StatusCode: resp.StatusCode, Err: fmt.Errorf("failed to read Spoonacular response: %w", err)}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &RecognitionError{StatusCode: resp.StatusCode, Err: fmt.Errorf("spoonacular API error %d: %s", resp.StatusCode, string(body))}
	}
	return body, nil
}
