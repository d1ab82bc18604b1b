// internals/features/streaming/service/backend_client.go
package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/bytedance/sonic"
)

// ErrFetchFailed: backend menolak atau gagal dihubungi saat resolve metadata.
var ErrFetchFailed = errors.New("lesson metadata fetch failed")

// BackendClient me-resolve lokasi media lesson dari backend API memakai
// token cookie sebagai bearer credential.
type BackendClient struct {
	BaseURL string
	HTTP    *http.Client
}

func NewBackendClient(baseURL string) *BackendClient {
	return &BackendClient{
		BaseURL: strings.TrimRight(baseURL, "/"),
		HTTP:    &http.Client{},
	}
}

type lessonEnvelope struct {
	Data struct {
		VideoURL string `json:"video_url"`
	} `json:"data"`
	VideoURL string `json:"video_url"`
}

// ResolveLessonMediaURL mengembalikan URL media lesson; string kosong berarti
// lesson ada tapi tidak punya media.
func (b *BackendClient) ResolveLessonMediaURL(ctx context.Context, token, lessonID string) (string, error) {
	url := fmt.Sprintf("%s/api/lessons/%s", b.BaseURL, lessonID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", ErrFetchFailed
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")

	resp, err := b.HTTP.Do(req)
	if err != nil {
		return "", ErrFetchFailed
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", ErrFetchFailed
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", ErrFetchFailed
	}

	var env lessonEnvelope
	if err := sonic.Unmarshal(raw, &env); err != nil {
		return "", ErrFetchFailed
	}
	if env.Data.VideoURL != "" {
		return env.Data.VideoURL, nil
	}
	return env.VideoURL, nil
}
