package usecase

import (
	"context"
	"encoding/base64"
	"strings"

	"github.com/bankedge/gateway/internal/pkg/apperr"
	"github.com/bankedge/gateway/internal/pkg/logger"
	"github.com/bankedge/gateway/internal/pkg/models"
)

// documentTypeSynonyms maps caller-facing document type spellings to the
// vocabulary the KYC service expects. Unknown types are forwarded
// uppercased, not rejected.
var documentTypeSynonyms = map[string]string{
	"aadhaar": "AADHAR",
	"aadhar":  "AADHAR",
	"pan":     "PAN",
	"photo":   "PHOTO",
}

// UploadMultipart forwards a binary document upload to the KYC service
func (u *DocumentUC) UploadMultipart(ctx context.Context, authHeader, documentType, fileName string, content []byte) (*models.ProxyResponse, error) {
	if err := requireBearer(authHeader); err != nil {
		return nil, err
	}
	if documentType == "" {
		return nil, apperr.Validation("documentType is required")
	}
	if len(content) == 0 {
		return nil, apperr.Validation("file is required")
	}

	mapped := MapDocumentType(documentType)
	logger.Info("Forwarding document upload",
		logger.String("document_type", mapped),
		logger.Int("size_bytes", len(content)))

	return u.documentGW.UploadDocument(ctx, authHeader, &models.DocumentUpload{
		DocumentType: mapped,
		FileName:     fileName,
		Content:      content,
	})
}

// UploadBase64 decodes a base64 document payload and forwards it. An
// optional data-URI prefix ("data:image/png;base64,") is stripped first.
func (u *DocumentUC) UploadBase64(ctx context.Context, authHeader string, req *models.Base64UploadRequest) (*models.ProxyResponse, error) {
	if err := requireBearer(authHeader); err != nil {
		return nil, err
	}
	if req.DocumentType == "" || req.Base64Data == "" {
		return nil, apperr.Validation("documentType and base64Data are required")
	}

	data := req.Base64Data
	if idx := strings.Index(data, ","); idx >= 0 {
		data = data[idx+1:]
	}

	content, err := base64.StdEncoding.DecodeString(data)
	if err != nil {
		return nil, apperr.Validation("base64Data is not valid base64")
	}

	mapped := MapDocumentType(req.DocumentType)

	fileName := req.FileName
	if fileName == "" {
		fileName = mapped + FileExtension(req.MimeType)
	}

	logger.Info("Forwarding base64 document upload",
		logger.String("document_type", mapped),
		logger.Int("size_bytes", len(content)))

	return u.documentGW.UploadDocument(ctx, authHeader, &models.DocumentUpload{
		DocumentType: mapped,
		FileName:     fileName,
		Content:      content,
	})
}

// ListDocuments fetches the caller's document listing from the KYC service
func (u *DocumentUC) ListDocuments(ctx context.Context, authHeader string) (*models.ProxyResponse, error) {
	if err := requireBearer(authHeader); err != nil {
		return nil, err
	}
	return u.documentGW.ListDocuments(ctx, authHeader)
}

// DownloadDocument streams a stored document back from the KYC service
func (u *DocumentUC) DownloadDocument(ctx context.Context, authHeader string, documentID int64) (*models.ProxyResponse, error) {
	if err := requireBearer(authHeader); err != nil {
		return nil, err
	}
	return u.documentGW.DownloadDocument(ctx, authHeader, documentID)
}

// DeleteDocument removes a stored document via the KYC service
func (u *DocumentUC) DeleteDocument(ctx context.Context, authHeader string, documentID int64) (*models.ProxyResponse, error) {
	if err := requireBearer(authHeader); err != nil {
		return nil, err
	}
	return u.documentGW.DeleteDocument(ctx, authHeader, documentID)
}

// requireBearer rejects the call before any downstream contact when the
// credential header is missing or malformed.
func requireBearer(authHeader string) error {
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") || len(authHeader) <= len("Bearer ") {
		return apperr.Authentication("Authorization token required")
	}
	return nil
}

// MapDocumentType canonicalizes a caller-facing document type
func MapDocumentType(documentType string) string {
	if mapped, ok := documentTypeSynonyms[strings.ToLower(documentType)]; ok {
		return mapped
	}
	return strings.ToUpper(documentType)
}

// FileExtension picks a filename extension for a mime type
func FileExtension(mimeType string) string {
	switch strings.ToLower(mimeType) {
	case "image/jpeg", "image/jpg":
		return ".jpg"
	case "image/png":
		return ".png"
	case "application/pdf":
		return ".pdf"
	default:
		return ".bin"
	}
}
