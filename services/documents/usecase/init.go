package usecase

import (
	"github.com/bankedge/gateway/internal/pkg/models"
	"github.com/bankedge/gateway/services/documents"
)

// DocumentUC implements the document proxy business logic
type DocumentUC struct {
	documentGW documents.DocumentGW
	cfg        *models.Config
}

// NewDocumentUC creates a new document usecase instance
func NewDocumentUC(documentGW documents.DocumentGW, cfg *models.Config) *DocumentUC {
	return &DocumentUC{
		documentGW: documentGW,
		cfg:        cfg,
	}
}
