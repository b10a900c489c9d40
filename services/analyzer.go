package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/ghdehrl12345/foodLens/models"
	"github.com/ghdehrl12345/foodLens/storage"
	"go.uber.org/zap"
)

// Analyzer turns a meal photo into a list of estimated food items. The
// capture flow only ever sees this interface; which backend answers is
// decided once at startup.
type Analyzer interface {
	Analyze(ctx context.Context, image []byte) ([]models.FoodItem, error)
}

const (
	AnalyzerModeMock        = "mock"
	AnalyzerModeRemote      = "remote"
	AnalyzerModeRekognition = "rekognition"
)

// ErrProviderNotConfigured means no model endpoint could be resolved; no
// network call was attempted.
var ErrProviderNotConfigured = errors.New("no model endpoint configured")

// ProviderError reports a failed remote analysis: either a non-2xx status
// or a response body that is not a food item array.
type ProviderError struct {
	Status    int
	Malformed bool
}

func (e *ProviderError) Error() string {
	if e.Malformed {
		return "model response is not a food item array"
	}
	return fmt.Sprintf("model server returned status %d", e.Status)
}

// AnalyzerConfig selects the analysis backend. BaseURL is an explicit
// override of the remote model endpoint; once used it is persisted.
type AnalyzerConfig struct {
	Mode    string
	BaseURL string
}

// NewAnalyzer builds the configured analyzer variant. Unknown modes fall
// back to the mock so a fresh checkout works without any backend.
func NewAnalyzer(ctx context.Context, cfg AnalyzerConfig, awsRegion string, store storage.Store, log *zap.Logger) (Analyzer, error) {
	switch cfg.Mode {
	case AnalyzerModeRemote:
		return NewRemoteAnalyzer(cfg.BaseURL, store, log), nil
	case AnalyzerModeRekognition:
		return NewRekognitionAnalyzer(ctx, awsRegion)
	case AnalyzerModeMock, "":
		return NewMockAnalyzer(nil), nil
	default:
		log.Warn("unknown analyzer mode, using mock", zap.String("mode", cfg.Mode))
		return NewMockAnalyzer(nil), nil
	}
}
