package dto

// APIResponse is the standard response envelope for successful operations
type APIResponse struct {
	Data interface{} `json:"data,omitempty"`
}

// NewAPIResponse wraps data in the standard response envelope
func NewAPIResponse(data interface{}) APIResponse {
	return APIResponse{Data: data}
}

// PaginationInfo contains paging metadata for list responses
type PaginationInfo struct {
	CurrentPage int   `json:"currentPage" example:"1"`
	TotalPages  int   `json:"totalPages" example:"5"`
	PageSize    int   `json:"pageSize" example:"10"`
	TotalItems  int64 `json:"totalItems" example:"42"`
}
