package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/ghdehrl12345/foodLens/models"
	"github.com/ghdehrl12345/foodLens/storage"
	"go.uber.org/zap"
)

// Build-time endpoint configuration: productionModelURL is injected with
// -ldflags "-X .../services.productionModelURL=https://...". The local
// default keeps development working against a model server on this host.
var (
	productionModelURL string
	localDevModelURL   = "http://localhost:8000"
)

// RemoteAnalyzer submits the image to the model server's /analyze endpoint
// as a multipart upload and expects a JSON array of food items back.
type RemoteAnalyzer struct {
	store    storage.Store
	client   *http.Client
	log      *zap.Logger
	override string
}

func NewRemoteAnalyzer(override string, store storage.Store, log *zap.Logger) *RemoteAnalyzer {
	return &RemoteAnalyzer{
		store:    store,
		client:   &http.Client{Timeout: 30 * time.Second},
		log:      log,
		override: override,
	}
}

// UseBaseURL records an endpoint chosen at call time (e.g. from a query
// parameter) so later sessions keep using it.
func (a *RemoteAnalyzer) UseBaseURL(base string) error {
	a.override = base
	return a.store.Set(storage.KeyModelBaseURL, []byte(base))
}

// resolveBaseURL picks the model endpoint: explicit override, then the
// persisted choice, then the build-time production endpoint, then the
// local development default.
func (a *RemoteAnalyzer) resolveBaseURL() (string, error) {
	if a.override != "" {
		// Persist the explicit choice; failing to do so only costs the
		// override on the next start, so log and continue.
		if err := a.store.Set(storage.KeyModelBaseURL, []byte(a.override)); err != nil {
			a.log.Warn("could not persist model endpoint", zap.Error(err))
		}
		return a.override, nil
	}
	if buf, err := a.store.Get(storage.KeyModelBaseURL); err == nil && len(buf) > 0 {
		return string(buf), nil
	}
	if productionModelURL != "" {
		return productionModelURL, nil
	}
	if localDevModelURL != "" {
		return localDevModelURL, nil
	}
	return "", ErrProviderNotConfigured
}

func (a *RemoteAnalyzer) Analyze(ctx context.Context, image []byte) ([]models.FoodItem, error) {
	base, err := a.resolveBaseURL()
	if err != nil {
		return nil, err
	}

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	fw, err := w.CreateFormFile("file", "meal.jpg")
	if err != nil {
		return nil, fmt.Errorf("build multipart body: %w", err)
	}
	if _, err := fw.Write(image); err != nil {
		return nil, fmt.Errorf("build multipart body: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("build multipart body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, base+"/analyze", &body)
	if err != nil {
		return nil, fmt.Errorf("build analyze request: %w", err)
	}
	req.Header.Set("Content-Type", w.FormDataContentType())

	resp, err := a.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("call model server: %w", err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read model response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &ProviderError{Status: resp.StatusCode}
	}

	var items []models.FoodItem
	if err := json.Unmarshal(payload, &items); err != nil {
		return nil, &ProviderError{Malformed: true}
	}
	return items, nil
}

// IsProviderError reports whether err is a remote analysis failure.
func IsProviderError(err error) bool {
	var pe *ProviderError
	return errors.As(err, &pe)
}
