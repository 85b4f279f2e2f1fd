package documents

import (
	"context"

	"github.com/bankedge/gateway/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_documents.go -package=mocks github.com/bankedge/gateway/services/documents DocumentUC,DocumentGW

// DocumentUC defines the interface for the document proxy business logic
type DocumentUC interface {
	// UploadMultipart forwards a binary document upload downstream
	UploadMultipart(ctx context.Context, authHeader, documentType, fileName string, content []byte) (*models.ProxyResponse, error)
	// UploadBase64 decodes a base64 payload and forwards it downstream
	UploadBase64(ctx context.Context, authHeader string, req *models.Base64UploadRequest) (*models.ProxyResponse, error)
	// ListDocuments fetches the caller's document listing downstream
	ListDocuments(ctx context.Context, authHeader string) (*models.ProxyResponse, error)
	// DownloadDocument streams a stored document back from downstream
	DownloadDocument(ctx context.Context, authHeader string, documentID int64) (*models.ProxyResponse, error)
	// DeleteDocument removes a stored document downstream
	DeleteDocument(ctx context.Context, authHeader string, documentID int64) (*models.ProxyResponse, error)
}

// DocumentGW defines the downstream KYC service gateway interface. The
// caller's bearer credential is forwarded unchanged; the KYC service
// validates it independently.
type DocumentGW interface {
	UploadDocument(ctx context.Context, authHeader string, upload *models.DocumentUpload) (*models.ProxyResponse, error)
	ListDocuments(ctx context.Context, authHeader string) (*models.ProxyResponse, error)
	DownloadDocument(ctx context.Context, authHeader string, documentID int64) (*models.ProxyResponse, error)
	DeleteDocument(ctx context.Context, authHeader string, documentID int64) (*models.ProxyResponse, error)
}
