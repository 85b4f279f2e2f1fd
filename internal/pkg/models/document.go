package models

// Base64UploadRequest represents a document upload with base64-encoded content.
// Base64Data may carry a data-URI prefix ("data:image/png;base64,...") which
// is stripped before decoding.
type Base64UploadRequest struct {
	DocumentType string `json:"documentType"`
	FileName     string `json:"fileName,omitempty"`
	Base64Data   string `json:"base64Data"`
	MimeType     string `json:"mimeType,omitempty"`
}

// DocumentUpload is the decoded payload forwarded to the KYC service
type DocumentUpload struct {
	DocumentType string
	FileName     string
	Content      []byte
}

// ProxyResponse carries a downstream response back to the caller unchanged
type ProxyResponse struct {
	StatusCode  int
	ContentType string
	Headers     map[string]string
	Body        []byte
}
