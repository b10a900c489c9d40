package controllers

import (
	"errors"
	"io"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/ghdehrl12345/foodLens/services"
)

// AnalyzeController drives the photo analysis step of the capture flow.
// Analysis never touches the ledger; saving is a separate, explicit call.
type AnalyzeController struct {
	analyzer services.Analyzer
	log      *zap.Logger

	// One analysis in flight at a time; this is an admission gate, not a
	// queue. A second submission is rejected outright.
	gate sync.Mutex
}

func NewAnalyzeController(analyzer services.Analyzer, log *zap.Logger) *AnalyzeController {
	return &AnalyzeController{analyzer: analyzer, log: log}
}

func (ct *AnalyzeController) Analyze(c *gin.Context) {
	if !ct.gate.TryLock() {
		c.JSON(http.StatusConflict, gin.H{"error": "an analysis is already in progress"})
		return
	}
	defer ct.gate.Unlock()

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing image file"})
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unreadable image file"})
		return
	}
	defer file.Close()
	image, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unreadable image file"})
		return
	}

	// A ?model= query parameter switches the remote endpoint and sticks
	// for future sessions.
	if base := c.Query("model"); base != "" {
		if ra, ok := ct.analyzer.(*services.RemoteAnalyzer); ok {
			if err := ra.UseBaseURL(base); err != nil {
				ct.log.Warn("could not persist model endpoint", zap.Error(err))
			}
		}
	}

	items, err := ct.analyzer.Analyze(c.Request.Context(), image)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrProviderNotConfigured):
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
		case services.IsProviderError(err):
			c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		default:
			ct.log.Error("analysis failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "analysis failed"})
		}
		return
	}

	c.JSON(http.StatusOK, items)
}
