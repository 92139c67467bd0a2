package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime"
	"mime/multipart"
	"net/textproto"
	"strings"
)

// Content types sent by the client.
const (
	ContentTypeJSON   = "application/json"
	ContentTypeNDJSON = "application/x-ndjson"
)

// requestBody is a payload serialized once and reused for both signing and
// transmission.
type requestBody struct {
	data        []byte
	contentType string
	signed      bool
}

// EncodeJSON serializes v into the exact bytes that are signed and sent.
func EncodeJSON(v any) ([]byte, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncoding, err)
	}
	return b, nil
}

// EncodeNDJSON serializes each record to a single JSON line and joins the
// lines with "\n", without a trailing newline.
func EncodeNDJSON[T any](records []T) ([]byte, error) {
	if len(records) == 0 {
		return nil, ErrEmptyBatch
	}
	var buf bytes.Buffer
	for i, r := range records {
		line, err := json.Marshal(r)
		if err != nil {
			return nil, fmt.Errorf("%w: record %d: %w", ErrEncoding, i, err)
		}
		if i > 0 {
			buf.WriteByte('\n')
		}
		buf.Write(line)
	}
	return buf.Bytes(), nil
}

func jsonBody(v any) (*requestBody, error) {
	b, err := EncodeJSON(v)
	if err != nil {
		return nil, err
	}
	return &requestBody{data: b, contentType: ContentTypeJSON, signed: true}, nil
}

func ndjsonBody[T any](records []T) (*requestBody, error) {
	b, err := EncodeNDJSON(records)
	if err != nil {
		return nil, err
	}
	return &requestBody{data: b, contentType: ContentTypeNDJSON, signed: true}, nil
}

// FilePart is a file attached to a multipart upload.
type FilePart struct {
	FieldName string
	FileName  string
	MimeType  string
	Content   []byte
}

type formField struct {
	name  string
	value string
}

// multipartBody builds a multipart/form-data payload. The result is never
// signed: only method, path and timestamp protect multipart requests.
func multipartBody(fields []formField, files ...FilePart) (*requestBody, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	for _, f := range fields {
		if err := mw.WriteField(f.name, f.value); err != nil {
			return nil, fmt.Errorf("%w: field %s: %w", ErrEncoding, f.name, err)
		}
	}
	for _, f := range files {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, f.FieldName, f.FileName))
		if f.MimeType != "" {
			mediaType, _, err := mime.ParseMediaType(f.MimeType)
			if err != nil {
				return nil, fmt.Errorf("%w: file %s: mime type %q: %w", ErrEncoding, f.FileName, f.MimeType, err)
			}
			if !strings.Contains(mediaType, "/") {
				return nil, fmt.Errorf("%w: file %s: mime type %q has no subtype", ErrEncoding, f.FileName, f.MimeType)
			}
			h.Set("Content-Type", f.MimeType)
		} else {
			h.Set("Content-Type", "application/octet-stream")
		}
		part, err := mw.CreatePart(h)
		if err != nil {
			return nil, fmt.Errorf("%w: file %s: %w", ErrEncoding, f.FileName, err)
		}
		if _, err := part.Write(f.Content); err != nil {
			return nil, fmt.Errorf("%w: file %s: %w", ErrEncoding, f.FileName, err)
		}
	}
	if err := mw.Close(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncoding, err)
	}
	return &requestBody{data: buf.Bytes(), contentType: mw.FormDataContentType(), signed: false}, nil
}
