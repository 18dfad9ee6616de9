// internal/api/handlers/interfaces.go
package handlers

import "github.com/gin-gonic/gin"

// JobHandlerInterface defines the methods needed by the job routes.
type JobHandlerInterface interface {
	CreateJob(c *gin.Context)
	GetJobByID(c *gin.Context)
	ListJobs(c *gin.Context)
	UpdateJob(c *gin.Context)
	ReplaceJob(c *gin.Context)
	ReorderJob(c *gin.Context)
}

// CandidateHandlerInterface defines the methods needed by the candidate routes.
type CandidateHandlerInterface interface {
	ListCandidates(c *gin.Context)
	GetCandidateByID(c *gin.Context)
	UpdateCandidate(c *gin.Context)
}

// ApplicationHandlerInterface defines the methods needed by the application routes.
type ApplicationHandlerInterface interface {
	ListApplications(c *gin.Context)
	UpdateApplication(c *gin.Context)
}

// AssessmentHandlerInterface defines the methods needed by the assessment routes.
type AssessmentHandlerInterface interface {
	ListAssessments(c *gin.Context)
	GetAssessmentByJob(c *gin.Context)
	UpsertAssessment(c *gin.Context)
	SubmitAssessment(c *gin.Context)
}

// AssignmentHandlerInterface defines the methods needed by the assignment routes.
type AssignmentHandlerInterface interface {
	ListAssignments(c *gin.Context)
}

// StatsHandlerInterface defines the methods needed by the stats route.
type StatsHandlerInterface interface {
	GetStats(c *gin.Context)
}

// Ensure handlers implement the interfaces (compile-time check)
var _ JobHandlerInterface = (*JobHandler)(nil)
var _ CandidateHandlerInterface = (*CandidateHandler)(nil)
var _ ApplicationHandlerInterface = (*ApplicationHandler)(nil)
var _ AssessmentHandlerInterface = (*AssessmentHandler)(nil)
var _ AssignmentHandlerInterface = (*AssignmentHandler)(nil)
var _ StatsHandlerInterface = (*StatsHandler)(nil)
