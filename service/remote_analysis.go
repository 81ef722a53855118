package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/tieubaoca/docsense-be/types"
)

// RemoteAnalysisService calls an analysis service deployed as its own
// process. One request carries the extracted text; the response carries
// the full AnalysisResult shape.
type RemoteAnalysisService struct {
	baseURL string
	client  *http.Client
}

func NewRemoteAnalysisService(baseURL string) *RemoteAnalysisService {
	return &RemoteAnalysisService{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		client:  &http.Client{Timeout: 60 * time.Second},
	}
}

type remoteAnalyzeRequest struct {
	Text string `json:"text"`
}

func (s *RemoteAnalysisService) Analyze(ctx context.Context, text string) (*types.AnalysisResult, error) {
	body, err := json.Marshal(remoteAnalyzeRequest{Text: text})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/analyze", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("analysis service returned status %d", resp.StatusCode)
	}

	var result types.AnalysisResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Live probes the analysis service's health route. Advisory only: a
// service can still fail after passing this check.
func (s *RemoteAnalysisService) Live(ctx context.Context) bool {
	probeCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(probeCtx, http.MethodGet, s.baseURL+"/", nil)
	if err != nil {
		return false
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()
	return resp.StatusCode == http.StatusOK
}
