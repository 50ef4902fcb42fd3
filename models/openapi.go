package models

// OpenAPIVersion is the OpenAPI revision of the served document.
const OpenAPIVersion = "3.1.0"

// OpenAPIDocument is the subset of an OpenAPI 3.1 document needed to
// describe this API.
type OpenAPIDocument struct {
	OpenAPI string                     `json:"openapi"`
	Info    OpenAPIInfo                `json:"info"`
	Paths   map[string]OpenAPIPathItem `json:"paths"`
}

type OpenAPIInfo struct {
	Title   string `json:"title"`
	Version string `json:"version"`
}

// OpenAPIPathItem maps a lower-case HTTP method to its operation.
type OpenAPIPathItem map[string]OpenAPIOperation

type OpenAPIOperation struct {
	Summary     string                     `json:"summary"`
	OperationID string                     `json:"operationId"`
	RequestBody *OpenAPIRequestBody        `json:"requestBody,omitempty"`
	Responses   map[string]OpenAPIResponse `json:"responses"`
}

type OpenAPIRequestBody struct {
	Required bool                        `json:"required"`
	Content  map[string]OpenAPIMediaType `json:"content"`
}

type OpenAPIResponse struct {
	Description string                      `json:"description"`
	Content     map[string]OpenAPIMediaType `json:"content,omitempty"`
}

type OpenAPIMediaType struct {
	Schema OpenAPISchema `json:"schema"`
}

type OpenAPISchema struct {
	Type                 string                   `json:"type,omitempty"`
	Title                string                   `json:"title,omitempty"`
	Properties           map[string]OpenAPISchema `json:"properties,omitempty"`
	Required             []string                 `json:"required,omitempty"`
	AdditionalProperties bool                     `json:"additionalProperties,omitempty"`
}
