package types

type DataResponse struct {
	Status  bool        `json:"status"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

type IngestResponse struct {
	Chunks int `json:"chunks"`
}

type PaginateResponse struct {
	Total    int64       `json:"total"`
	Elements interface{} `json:"elements"`
	Page     int64       `json:"page"`
	Limit    int64       `json:"limit"`
}
