package domain

import (
	"fmt"
	"strings"
)

// ProjectStatus is the delivery state of a construction project.
type ProjectStatus string

const (
	ProjectPlanned   ProjectStatus = "PLANNED"
	ProjectOngoing   ProjectStatus = "ONGOING"
	ProjectCompleted ProjectStatus = "COMPLETED"
	ProjectOnHold    ProjectStatus = "ON_HOLD"
)

// ParseProjectStatus parses a status value received at a boundary.
func ParseProjectStatus(s string) (ProjectStatus, error) {
	switch ProjectStatus(strings.ToUpper(s)) {
	case ProjectPlanned, ProjectOngoing, ProjectCompleted, ProjectOnHold:
		return ProjectStatus(strings.ToUpper(s)), nil
	}
	return "", fmt.Errorf("%w: unknown project status %q", ErrValidation, s)
}

func (s ProjectStatus) String() string { return string(s) }

// MediaType distinguishes gallery entries.
type MediaType string

const (
	MediaImage MediaType = "IMAGE"
	MediaVideo MediaType = "VIDEO"
)

// ParseMediaType parses a media type received at a boundary.
func ParseMediaType(s string) (MediaType, error) {
	switch MediaType(strings.ToUpper(s)) {
	case MediaImage, MediaVideo:
		return MediaType(strings.ToUpper(s)), nil
	}
	return "", fmt.Errorf("%w: unknown media type %q", ErrValidation, s)
}

func (t MediaType) String() string { return string(t) }

// InquiryStatus tracks the triage state of a customer inquiry.
type InquiryStatus string

const (
	InquiryNew      InquiryStatus = "NEW"
	InquiryInReview InquiryStatus = "IN_REVIEW"
	InquiryQuoted   InquiryStatus = "QUOTED"
	InquiryClosed   InquiryStatus = "CLOSED"
)

// ParseInquiryStatus parses a status value received at a boundary.
func ParseInquiryStatus(s string) (InquiryStatus, error) {
	switch InquiryStatus(strings.ToUpper(s)) {
	case InquiryNew, InquiryInReview, InquiryQuoted, InquiryClosed:
		return InquiryStatus(strings.ToUpper(s)), nil
	}
	return "", fmt.Errorf("%w: unknown inquiry status %q", ErrValidation, s)
}

func (s InquiryStatus) String() string { return string(s) }
