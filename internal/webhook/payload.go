package webhook

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Event type constants
const (
	EventApplicantReviewed = "applicantReviewed"
	EventApplicantPending  = "applicantPending"
	EventApplicantCreated  = "applicantCreated"
	EventApplicantOnHold   = "applicantOnHold"
	EventApplicantReset    = "applicantReset"
)

// ErrMissingType is returned by Parse when the payload has no "type" field.
var ErrMissingType = errors.New("webhook: payload has no type")

// Event is a decoded notification. Fields not present for a given type are
// left empty; Raw always holds the verified body.
type Event struct {
	Type           string  `json:"type"`
	ApplicantID    string  `json:"applicantId"`
	InspectionID   string  `json:"inspectionId"`
	CorrelationID  string  `json:"correlationId"`
	LevelName      string  `json:"levelName"`
	ExternalUserID string  `json:"externalUserId,omitempty"`
	ApplicantType  string  `json:"applicantType,omitempty"`
	ReviewStatus   string  `json:"reviewStatus,omitempty"`
	CreatedAt      string  `json:"createdAtMs,omitempty"`
	Sandbox        bool    `json:"sandboxMode,omitempty"`
	ReviewResult   *Result `json:"reviewResult,omitempty"`
	Review         *Review `json:"review,omitempty"`

	Raw json.RawMessage `json:"-"`
}

// Review is the nested review object some deliveries carry instead of the
// top-level reviewStatus and reviewResult fields.
type Review struct {
	ReviewID     string  `json:"reviewId"`
	ReviewStatus string  `json:"reviewStatus"`
	ReviewResult *Result `json:"reviewResult,omitempty"`
}

// Result is the review outcome attached to applicantReviewed events.
type Result struct {
	ReviewAnswer      string   `json:"reviewAnswer"`
	RejectLabels      []string `json:"rejectLabels,omitempty"`
	ReviewRejectType  string   `json:"reviewRejectType,omitempty"`
	ModerationComment string   `json:"moderationComment,omitempty"`
	ClientComment     string   `json:"clientComment,omitempty"`
	RRejectType       string   `json:"rRejectType,omitempty"`
}

// Approved reports whether the review answer is GREEN.
func (r *Result) Approved() bool {
	return r != nil && r.ReviewAnswer == "GREEN"
}

// Parse decodes a verified payload. Call it only after Verify succeeded on
// the same bytes.
func Parse(raw []byte) (*Event, error) {
	var ev Event
	if err := json.Unmarshal(raw, &ev); err != nil {
		return nil, fmt.Errorf("failed to parse webhook payload: %w", err)
	}
	if ev.Type == "" {
		return nil, ErrMissingType
	}
	ev.normalize(raw)
	ev.Raw = append(json.RawMessage(nil), raw...)
	return &ev, nil
}

// normalize lifts nested review fields and the createdAt spelling into the
// top-level fields, so callers read one shape regardless of payload layout.
func (ev *Event) normalize(raw []byte) {
	if ev.Review != nil {
		if ev.ReviewStatus == "" {
			ev.ReviewStatus = ev.Review.ReviewStatus
		}
		if ev.ReviewResult == nil {
			ev.ReviewResult = ev.Review.ReviewResult
		}
	}
	if ev.ReviewResult != nil && ev.ReviewResult.ReviewRejectType == "" {
		ev.ReviewResult.ReviewRejectType = ev.ReviewResult.RRejectType
	}
	if ev.CreatedAt == "" {
		var alt struct {
			CreatedAt string `json:"createdAt"`
		}
		if json.Unmarshal(raw, &alt) == nil {
			ev.CreatedAt = alt.CreatedAt
		}
	}
}
