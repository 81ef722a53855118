package types

// FormatKind is the closed classification of supported document inputs.
type FormatKind string

const (
	FormatImage       FormatKind = "image"
	FormatPdf         FormatKind = "pdf"
	FormatDocx        FormatKind = "docx"
	FormatPlainText   FormatKind = "text"
	FormatUnsupported FormatKind = "unsupported"
)

// Entity category labels. Extraction always reports all four, even when empty.
const (
	CategoryPerson       = "Person"
	CategoryOrganization = "Organization"
	CategoryPlace        = "Place"
	CategoryDate         = "Date"
)

// EntityCategories lists the fixed categories in reporting order.
var EntityCategories = []string{CategoryPerson, CategoryOrganization, CategoryPlace, CategoryDate}

// DocumentBlob is the raw upload handed over by the transport layer.
// It lives only for the duration of one pipeline invocation.
type DocumentBlob struct {
	Data     []byte
	MimeType string
	FileName string
}

// ExtractedText is the normalized plain-text form of a blob. Content is
// never empty; extraction fails instead of producing an empty string.
type ExtractedText struct {
	Content string     `json:"content"`
	Format  FormatKind `json:"format"`
}

const (
	SentimentPositive = "Positive"
	SentimentNegative = "Negative"
	SentimentNeutral  = "Neutral"
)

// SentimentScores carries the raw magnitudes behind a sentiment label.
type SentimentScores struct {
	Positive float64 `json:"positive" bson:"positive"`
	Negative float64 `json:"negative" bson:"negative"`
	Neutral  float64 `json:"neutral" bson:"neutral"`
	Compound float64 `json:"compound" bson:"compound"`
}

type Sentiment struct {
	Label  string           `json:"label" bson:"label"`
	Scores *SentimentScores `json:"scores,omitempty" bson:"scores,omitempty"`
}

// AnalysisResult merges the three engine outputs over one ExtractedText.
// A nil field means that engine's result is absent (timed out or skipped).
type AnalysisResult struct {
	Sentiment *Sentiment          `json:"sentiment" bson:"sentiment"`
	Entities  map[string][]string `json:"entities" bson:"entities"`
	Topics    []string            `json:"topics" bson:"topics"`
}

// DocumentRecord is the persisted entity. Immutable after save except for
// deletion; the identifier is assigned by the storage layer.
type DocumentRecord struct {
	ID         string          `json:"id" bson:"_id,omitempty"`
	Title      string          `json:"title" bson:"title"`
	Content    string          `json:"content" bson:"content"`
	FileType   FormatKind      `json:"fileType" bson:"file_type"`
	Analysis   *AnalysisResult `json:"analysis" bson:"analysis,omitempty"`
	UploadDate int64           `json:"uploadDate" bson:"upload_date"`
}

// BackendHealth is the transient admission status, recomputed per request.
type BackendHealth struct {
	StorageAvailable  bool `json:"storageAvailable"`
	AnalysisAvailable bool `json:"analysisAvailable"`
}

func (h BackendHealth) OK() bool {
	return h.StorageAvailable && h.AnalysisAvailable
}
