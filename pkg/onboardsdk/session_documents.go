package onboardsdk

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
)

// UploadDocument uploads a file against an onboarding task as a multipart
// form, matching the server's upload contract: a "file" part plus an
// "uploadedBy" field.
func (s *Session) UploadDocument(
	ctx context.Context,
	taskID int64,
	fileName string,
	content io.Reader,
	uploadedBy int64,
) (*Document, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile("file", fileName)
	if err != nil {
		return nil, fmt.Errorf("failed to create form file: %w", err)
	}
	if _, err := io.Copy(part, content); err != nil {
		return nil, fmt.Errorf("failed to write form file: %w", err)
	}
	if err := writer.WriteField("uploadedBy", strconv.FormatInt(uploadedBy, 10)); err != nil {
		return nil, fmt.Errorf("failed to write form field: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize form: %w", err)
	}

	path := fmt.Sprintf("/Documents/upload/%d", taskID)
	resp, err := s.doAuthRequest(ctx, http.MethodPost, path, &buf, writer.FormDataContentType())
	if err != nil {
		return nil, err
	}

	var doc Document
	if err := decodeData(resp, &doc); err != nil {
		return nil, err
	}

	return &doc, nil
}

// ListDocumentsForTask retrieves the documents uploaded against a task.
func (s *Session) ListDocumentsForTask(ctx context.Context, taskID int64) ([]Document, error) {
	path := fmt.Sprintf("/Documents/task/%d", taskID)
	resp, err := s.doAuthRequest(ctx, http.MethodGet, path, nil, "")
	if err != nil {
		return nil, err
	}

	var docs []Document
	if err := decodeData(resp, &docs); err != nil {
		return nil, err
	}

	return docs, nil
}

// GetDocument retrieves a single document record.
func (s *Session) GetDocument(ctx context.Context, id int64) (*Document, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, fmt.Sprintf("/Documents/%d", id), nil, "")
	if err != nil {
		return nil, err
	}

	var doc Document
	if err := decodeData(resp, &doc); err != nil {
		return nil, err
	}

	return &doc, nil
}

// ReviewDocument records an approval or rejection against a document.
func (s *Session) ReviewDocument(ctx context.Context, id int64, review ReviewDocumentRequest) (*Document, error) {
	path := fmt.Sprintf("/Documents/%d/review", id)
	resp, err := s.doAuthJSON(ctx, http.MethodPut, path, review)
	if err != nil {
		return nil, err
	}

	var doc Document
	if err := decodeData(resp, &doc); err != nil {
		return nil, err
	}

	return &doc, nil
}

// DownloadDocument retrieves the raw bytes of a stored document.
func (s *Session) DownloadDocument(ctx context.Context, id int64) ([]byte, error) {
	path := fmt.Sprintf("/Documents/%d/download", id)
	resp, err := s.doAuthRequest(ctx, http.MethodGet, path, nil, "")
	if err != nil {
		return nil, err
	}

	return readBytes(resp)
}
