package response

// ListResponse is the shared paginated envelope. Total is the full
// matching count regardless of limit/offset, so clients can compute
// page counts.
type ListResponse[T any] struct {
	Items  []T   `json:"items"`
	Total  int64 `json:"total"`
	Limit  int   `json:"limit"`
	Offset int   `json:"offset"`
}
