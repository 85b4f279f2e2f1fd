package usecase

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bankedge/gateway/internal/pkg/apperr"
	"github.com/bankedge/gateway/internal/pkg/models"
	"github.com/bankedge/gateway/services/documents/mocks"
)

const testBearer = "Bearer caller-token"

func newDocumentUC(t *testing.T) (*DocumentUC, *mocks.MockDocumentGW, *gomock.Controller) {
	ctrl := gomock.NewController(t)
	mockGW := mocks.NewMockDocumentGW(ctrl)
	uc := NewDocumentUC(mockGW, &models.Config{})
	return uc, mockGW, ctrl
}

func TestUploadMultipart(t *testing.T) {
	uc, mockGW, ctrl := newDocumentUC(t)
	defer ctrl.Finish()

	mockGW.EXPECT().
		UploadDocument(gomock.Any(), testBearer, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, upload *models.DocumentUpload) (*models.ProxyResponse, error) {
			assert.Equal(t, "AADHAR", upload.DocumentType)
			assert.Equal(t, "scan.png", upload.FileName)
			assert.Equal(t, []byte("image bytes"), upload.Content)
			return &models.ProxyResponse{StatusCode: 200}, nil
		})

	resp, err := uc.UploadMultipart(context.Background(), testBearer, "aadhaar", "scan.png", []byte("image bytes"))

	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
}

func TestUploadMultipart_MissingCredential(t *testing.T) {
	uc, _, ctrl := newDocumentUC(t)
	defer ctrl.Finish()

	// The downstream service is never contacted without a credential
	testCases := []string{"", "Basic dXNlcg==", "Bearer "}
	for _, header := range testCases {
		_, err := uc.UploadMultipart(context.Background(), header, "pan", "pan.png", []byte("x"))
		assert.Equal(t, apperr.KindAuthentication, apperr.KindOf(err), "header %q", header)
	}
}

func TestUploadMultipart_Validation(t *testing.T) {
	uc, _, ctrl := newDocumentUC(t)
	defer ctrl.Finish()

	_, err := uc.UploadMultipart(context.Background(), testBearer, "", "scan.png", []byte("x"))
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))

	_, err = uc.UploadMultipart(context.Background(), testBearer, "pan", "scan.png", nil)
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
}

func TestUploadBase64_DataURIPrefix(t *testing.T) {
	uc, mockGW, ctrl := newDocumentUC(t)
	defer ctrl.Finish()

	mockGW.EXPECT().
		UploadDocument(gomock.Any(), testBearer, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, upload *models.DocumentUpload) (*models.ProxyResponse, error) {
			// "QUJD" decodes to "ABC"; the data-URI prefix is stripped first
			assert.Equal(t, []byte("ABC"), upload.Content)
			assert.Equal(t, "PHOTO", upload.DocumentType)
			assert.Equal(t, "PHOTO.png", upload.FileName)
			return &models.ProxyResponse{StatusCode: 200}, nil
		})

	_, err := uc.UploadBase64(context.Background(), testBearer, &models.Base64UploadRequest{
		DocumentType: "photo",
		Base64Data:   "data:image/png;base64,QUJD",
		MimeType:     "image/png",
	})

	assert.NoError(t, err)
}

func TestUploadBase64_PlainPayloadKeepsFileName(t *testing.T) {
	uc, mockGW, ctrl := newDocumentUC(t)
	defer ctrl.Finish()

	mockGW.EXPECT().
		UploadDocument(gomock.Any(), testBearer, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, upload *models.DocumentUpload) (*models.ProxyResponse, error) {
			assert.Equal(t, []byte("ABC"), upload.Content)
			assert.Equal(t, "my-pan.pdf", upload.FileName)
			return &models.ProxyResponse{StatusCode: 200}, nil
		})

	_, err := uc.UploadBase64(context.Background(), testBearer, &models.Base64UploadRequest{
		DocumentType: "pan",
		FileName:     "my-pan.pdf",
		Base64Data:   "QUJD",
	})

	assert.NoError(t, err)
}

func TestUploadBase64_InvalidPayload(t *testing.T) {
	uc, _, ctrl := newDocumentUC(t)
	defer ctrl.Finish()

	_, err := uc.UploadBase64(context.Background(), testBearer, &models.Base64UploadRequest{
		DocumentType: "pan",
		Base64Data:   "this is !!! not base64",
	})

	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
}

func TestListDocuments_RequiresCredential(t *testing.T) {
	uc, _, ctrl := newDocumentUC(t)
	defer ctrl.Finish()

	_, err := uc.ListDocuments(context.Background(), "")

	assert.Equal(t, apperr.KindAuthentication, apperr.KindOf(err))
}

func TestDownloadDocument_Forwards(t *testing.T) {
	uc, mockGW, ctrl := newDocumentUC(t)
	defer ctrl.Finish()

	mockGW.EXPECT().
		DownloadDocument(gomock.Any(), testBearer, int64(7)).
		Return(&models.ProxyResponse{StatusCode: 200, ContentType: "image/png"}, nil)

	resp, err := uc.DownloadDocument(context.Background(), testBearer, 7)

	require.NoError(t, err)
	assert.Equal(t, "image/png", resp.ContentType)
}

func TestMapDocumentType(t *testing.T) {
	testCases := []struct {
		input    string
		expected string
	}{
		{"aadhaar", "AADHAR"},
		{"AADHAAR", "AADHAR"},
		{"aadhar", "AADHAR"},
		{"pan", "PAN"},
		{"Pan", "PAN"},
		{"photo", "PHOTO"},
		{"passport", "PASSPORT"},
		{"voter-id", "VOTER-ID"},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.expected, MapDocumentType(tc.input), "input %s", tc.input)
	}
}

func TestFileExtension(t *testing.T) {
	assert.Equal(t, ".jpg", FileExtension("image/jpeg"))
	assert.Equal(t, ".jpg", FileExtension("image/jpg"))
	assert.Equal(t, ".png", FileExtension("image/png"))
	assert.Equal(t, ".pdf", FileExtension("application/pdf"))
	assert.Equal(t, ".bin", FileExtension("application/octet-stream"))
	assert.Equal(t, ".bin", FileExtension(""))
}
