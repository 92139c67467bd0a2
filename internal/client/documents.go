package client

import (
	"context"
	"net/http"
)

// AddVerificationDocument uploads an identity document for an applicant.
//
// The request is multipart/form-data with a "metadata" JSON part and a
// "content" file part. Multipart bodies are not covered by the request
// signature: only the method, path and timestamp are authenticated for this
// call, so the file contents rely on TLS for integrity.
func (c *Client) AddVerificationDocument(ctx context.Context, applicantID string, metadata DocumentMetadata, file FilePart) error {
	meta, err := EncodeJSON(metadata)
	if err != nil {
		return err
	}
	if file.FieldName == "" {
		file.FieldName = "content"
	}
	body, err := multipartBody([]formField{{name: "metadata", value: string(meta)}}, file)
	if err != nil {
		return err
	}
	return c.doEmpty(ctx, http.MethodPost, applicantPath(applicantID)+"/docsets/-", body)
}

// GetVerificationPDFReport downloads the PDF summary of an applicant's
// required documents.
func (c *Client) GetVerificationPDFReport(ctx context.Context, applicantID string) ([]byte, error) {
	return c.doBytes(ctx, http.MethodGet, applicantPath(applicantID)+"/requiredIdDocsStatus.pdf", nil)
}

// GetDocumentImage downloads a single document image.
func (c *Client) GetDocumentImage(ctx context.Context, inspectionID, imageID string) ([]byte, error) {
	path := "/resources/inspections/" + pathSegment(inspectionID) + "/resources/" + pathSegment(imageID)
	return c.doBytes(ctx, http.MethodGet, path, nil)
}
