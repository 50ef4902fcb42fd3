package models

// RootResponse is returned by GET / and greets the caller with the service title.
type RootResponse struct {
	Message string `json:"message"`
}

// HealthResponse is returned by GET /health while the service is able to
// accept requests.
type HealthResponse struct {
	Status string `json:"status"`
}

// SpeechAnalysis is the outcome of a speech analysis request.
type SpeechAnalysis struct {
	// Result is a human-readable summary of the analysis.
	Result string `json:"result"`
}

// VersionResponse describes the running build of the service.
type VersionResponse struct {
	Title       string `json:"title"`
	Version     string `json:"version"`
	BuildDate   string `json:"build_date"`
	BuildCommit string `json:"build_commit"`
}

// ErrorResponse is the body written for requests the router or a handler
// refuses. Detail carries a short human-readable explanation.
type ErrorResponse struct {
	Detail string `json:"detail"`
}
