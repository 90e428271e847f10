package constants

// JobStatus is the canonical status for rows in reconcile_jobs.
type JobStatus string

// Stable values (store these exact strings in DB).
const (
	JobStatusQueued      JobStatus = "QUEUED"      // queued for processing
	JobStatusRunning     JobStatus = "RUNNING"     // in progress
	JobStatusExtracted   JobStatus = "EXTRACTED"   // LLM output stored, not yet reconciled
	JobStatusProcessed   JobStatus = "PROCESSED"   // reconciled, gate passed
	JobStatusUnprocessed JobStatus = "UNPROCESSED" // reconciled, gate failed; needs review
	JobStatusFailed      JobStatus = "FAILED"      // terminal failure
)

var JobStatuses = []string{
	string(JobStatusQueued),
	string(JobStatusRunning),
	string(JobStatusExtracted),
	string(JobStatusProcessed),
	string(JobStatusUnprocessed),
	string(JobStatusFailed),
}

// Terminal reports whether no further processing will happen for the status.
func (s JobStatus) Terminal() bool {
	switch s {
	case JobStatusProcessed, JobStatusUnprocessed, JobStatusFailed:
		return true
	}
	return false
}

// RouteStatus maps the validation gate result to the job status.
func RouteStatus(passed bool) JobStatus {
	if passed {
		return JobStatusProcessed
	}
	return JobStatusUnprocessed
}
