package dto

// UploadResponse is returned after a file has been stored.
type UploadResponse struct {
	URL string `json:"url"`
}
