package client

import (
	"context"
	"net/http"
	"net/url"

	"github.com/google/uuid"
)

// NewExternalUserID returns a random identifier suitable for
// CreateApplicantRequest.ExternalUserID.
func NewExternalUserID() string {
	return uuid.NewString()
}

func pathSegment(s string) string {
	return url.PathEscape(s)
}

func applicantPath(applicantID string) string {
	return "/resources/applicants/" + pathSegment(applicantID)
}

// CreateApplicant creates an applicant at the given verification level.
func (c *Client) CreateApplicant(ctx context.Context, req CreateApplicantRequest, levelName string) (*Applicant, error) {
	body, err := jsonBody(req)
	if err != nil {
		return nil, err
	}
	q := url.Values{"levelName": {levelName}}

	var out Applicant
	if err := c.doJSON(ctx, http.MethodPost, "/resources/applicants?"+q.Encode(), body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetApplicant fetches an applicant by its service-side id.
func (c *Client) GetApplicant(ctx context.Context, applicantID string) (*Applicant, error) {
	var out Applicant
	if err := c.doJSON(ctx, http.MethodGet, applicantPath(applicantID)+"/one", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetApplicantByExternalUserID fetches an applicant by the id assigned on
// creation.
func (c *Client) GetApplicantByExternalUserID(ctx context.Context, externalUserID string) (*Applicant, error) {
	var out Applicant
	path := "/resources/applicants/-;externalUserId=" + pathSegment(externalUserID) + "/one"
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetApplicantStatus returns the review status of an applicant.
func (c *Client) GetApplicantStatus(ctx context.Context, applicantID string) (*ApplicantStatus, error) {
	var out ApplicantStatus
	if err := c.doJSON(ctx, http.MethodGet, applicantPath(applicantID)+"/status", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateFixedInfo replaces the fixed info of an applicant.
func (c *Client) UpdateFixedInfo(ctx context.Context, applicantID string, info FixedInfo) (*Applicant, error) {
	body, err := jsonBody(info)
	if err != nil {
		return nil, err
	}
	var out Applicant
	if err := c.doJSON(ctx, http.MethodPatch, applicantPath(applicantID)+"/fixedInfo", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// MoveApplicantToLevel moves an applicant to another verification level.
func (c *Client) MoveApplicantToLevel(ctx context.Context, applicantID, levelName string) error {
	q := url.Values{"levelName": {levelName}}
	return c.doEmpty(ctx, http.MethodPost, applicantPath(applicantID)+"/moveToLevel?"+q.Encode(), nil)
}

// RequestApplicantCheck sends the applicant to review.
func (c *Client) RequestApplicantCheck(ctx context.Context, applicantID string) error {
	return c.doEmpty(ctx, http.MethodPost, applicantPath(applicantID)+"/status/pending", nil)
}

// ResetApplicant resets all verification steps of an applicant.
func (c *Client) ResetApplicant(ctx context.Context, applicantID string) error {
	return c.doEmpty(ctx, http.MethodPost, applicantPath(applicantID)+"/reset", nil)
}
