// internal/transport/dto/assignment_dto.go
package dto

// ListAssignmentsQuery optionally narrows assignments to one application.
type ListAssignmentsQuery struct {
	ApplicationID string `form:"applicationId" validate:"omitempty,uuid"`
}
