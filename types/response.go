package types

type DataResponse struct {
	Status  string      `json:"status"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// AnalyzeResponse is the success payload of one pipeline run.
type AnalyzeResponse struct {
	ID       string          `json:"id"`
	Title    string          `json:"title"`
	Content  string          `json:"content"`
	FileType FormatKind      `json:"fileType"`
	Analysis *AnalysisResult `json:"analysis"`
}

// PipelineErrorResponse is the failure payload of one pipeline run.
type PipelineErrorResponse struct {
	Stage     Stage     `json:"stage"`
	ErrorKind ErrorKind `json:"errorKind"`
	Message   string    `json:"message"`
}

type PaginatedDocumentsResponse struct {
	Documents      []*DocumentRecord `json:"documents"`
	CurrentPage    int64             `json:"currentPage"`
	TotalPages     int64             `json:"totalPages"`
	TotalDocuments int64             `json:"totalDocuments"`
}

type SearchResponse struct {
	Documents []SearchHit `json:"documents"`
}

// SearchHit is one keyword-search match from the search index.
type SearchHit struct {
	ID       string     `json:"id"`
	Title    string     `json:"title"`
	Content  string     `json:"content"`
	FileType FormatKind `json:"fileType"`
	Topics   []string   `json:"topics,omitempty"`
	Score    float64    `json:"score,omitempty"`
}
