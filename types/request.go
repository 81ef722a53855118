package types

type ListDocumentsRequest struct {
	Page     int64      `form:"page"`
	Limit    int64      `form:"limit"`
	FileType FormatKind `form:"fileType"`
}

type SearchRequest struct {
	Query string `form:"q"`
	Limit int    `form:"limit"`
}
