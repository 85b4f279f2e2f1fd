package http

import (
	"io"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/bankedge/gateway/internal/pkg/logger"
	"github.com/bankedge/gateway/internal/pkg/models"
	"github.com/bankedge/gateway/internal/utils"
	"github.com/bankedge/gateway/services/documents"
)

// DocumentHandler handles HTTP requests for the document proxy
type DocumentHandler struct {
	documentUC documents.DocumentUC
}

// NewDocumentHandler creates a new document handler
func NewDocumentHandler(documentUC documents.DocumentUC) *DocumentHandler {
	return &DocumentHandler{
		documentUC: documentUC,
	}
}

// RegisterRoutes registers the document proxy routes
func (h *DocumentHandler) RegisterRoutes(e *echo.Echo) {
	group := e.Group("/documents")
	group.POST("/upload", h.Upload)
	group.POST("/upload-base64", h.UploadBase64)
	group.GET("/my-documents", h.ListDocuments)
	group.GET("/:id/download", h.Download)
	group.DELETE("/:id", h.Delete)
}

// Upload handles multipart document uploads
func (h *DocumentHandler) Upload(c echo.Context) error {
	documentType := c.FormValue("documentType")

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return utils.BadRequestResponse(c, "file is required")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return utils.BadRequestResponse(c, "failed to read uploaded file")
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		return utils.BadRequestResponse(c, "failed to read uploaded file")
	}

	resp, err := h.documentUC.UploadMultipart(
		c.Request().Context(),
		c.Request().Header.Get("Authorization"),
		documentType,
		fileHeader.Filename,
		content,
	)
	if err != nil {
		logger.Warn("Document upload failed", logger.Err(err))
		return utils.AppErrorResponse(c, err)
	}

	return passthrough(c, resp)
}

// UploadBase64 handles base64-encoded document uploads
func (h *DocumentHandler) UploadBase64(c echo.Context) error {
	var request models.Base64UploadRequest
	if err := c.Bind(&request); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	resp, err := h.documentUC.UploadBase64(
		c.Request().Context(),
		c.Request().Header.Get("Authorization"),
		&request,
	)
	if err != nil {
		logger.Warn("Base64 document upload failed", logger.Err(err))
		return utils.AppErrorResponse(c, err)
	}

	return passthrough(c, resp)
}

// ListDocuments returns the caller's documents from the KYC service
func (h *DocumentHandler) ListDocuments(c echo.Context) error {
	resp, err := h.documentUC.ListDocuments(
		c.Request().Context(),
		c.Request().Header.Get("Authorization"),
	)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return passthrough(c, resp)
}

// Download streams a stored document back to the caller
func (h *DocumentHandler) Download(c echo.Context) error {
	documentID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid document ID")
	}

	resp, err := h.documentUC.DownloadDocument(
		c.Request().Context(),
		c.Request().Header.Get("Authorization"),
		documentID,
	)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	for name, value := range resp.Headers {
		c.Response().Header().Set(name, value)
	}
	return c.Blob(http.StatusOK, resp.ContentType, resp.Body)
}

// Delete removes a stored document
func (h *DocumentHandler) Delete(c echo.Context) error {
	documentID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid document ID")
	}

	_, err = h.documentUC.DeleteDocument(
		c.Request().Context(),
		c.Request().Header.Get("Authorization"),
		documentID,
	)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Document deleted successfully", nil)
}

// passthrough relays a downstream response body to the caller unchanged
func passthrough(c echo.Context, resp *models.ProxyResponse) error {
	contentType := resp.ContentType
	if contentType == "" {
		contentType = echo.MIMEApplicationJSON
	}
	return c.Blob(http.StatusOK, contentType, resp.Body)
}
