package http

import (
	"net/http"

	"github.com/teller-rehab/teller-api/internal/logger"
	"github.com/teller-rehab/teller-api/internal/utils"
	"github.com/teller-rehab/teller-api/models"
)

const jsonContentType = "application/json"

func (h *Handler) openAPI(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	appInfo := h.services.AppInfoService

	doc := newOpenAPIDocument(appInfo.GetAppTitle(ctx), appInfo.GetAppVersion(ctx))

	if _, err := utils.WriteJSON(w, doc, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing OpenAPI document")
	}
}

// newOpenAPIDocument describes every public route of the router built by Init.
func newOpenAPIDocument(title, version string) models.OpenAPIDocument {
	return models.OpenAPIDocument{
		OpenAPI: models.OpenAPIVersion,
		Info:    models.OpenAPIInfo{Title: title, Version: version},
		Paths: map[string]models.OpenAPIPathItem{
			rootPath: {
				"get": getOperation("Root", "root__get", objectSchema("RootResponse", "message")),
			},
			healthPath: {
				"get": getOperation("Health Check", "health_check_health_get", objectSchema("HealthResponse", "status")),
			},
			analyzeSpeechPath: {
				"post": analyzeSpeechOperation(),
			},
			versionPath: {
				"get": getOperation("Version", "version_api_version_get",
					objectSchema("VersionResponse", "title", "version", "build_date", "build_commit")),
			},
		},
	}
}

func getOperation(summary, operationID string, schema models.OpenAPISchema) models.OpenAPIOperation {
	return models.OpenAPIOperation{
		Summary:     summary,
		OperationID: operationID,
		Responses: map[string]models.OpenAPIResponse{
			"200": jsonResponse("Successful Response", schema),
		},
	}
}

func analyzeSpeechOperation() models.OpenAPIOperation {
	return models.OpenAPIOperation{
		Summary:     "Analyze Speech",
		OperationID: "analyze_speech_api_analyze_speech_post",
		RequestBody: &models.OpenAPIRequestBody{
			Required: true,
			Content: map[string]models.OpenAPIMediaType{
				jsonContentType: {Schema: models.OpenAPISchema{
					Type:                 "object",
					Title:                "Audio Data",
					AdditionalProperties: true,
				}},
			},
		},
		Responses: map[string]models.OpenAPIResponse{
			"200": jsonResponse("Successful Response", objectSchema("SpeechAnalysis", "result")),
			"413": jsonResponse("Request Entity Too Large", objectSchema("ErrorResponse", "detail")),
			"422": jsonResponse("Validation Error", objectSchema("ErrorResponse", "detail")),
		},
	}
}

func jsonResponse(description string, schema models.OpenAPISchema) models.OpenAPIResponse {
	return models.OpenAPIResponse{
		Description: description,
		Content:     map[string]models.OpenAPIMediaType{jsonContentType: {Schema: schema}},
	}
}

// objectSchema describes an object whose listed properties are all required
// strings.
func objectSchema(title string, properties ...string) models.OpenAPISchema {
	schema := models.OpenAPISchema{
		Type:       "object",
		Title:      title,
		Properties: make(map[string]models.OpenAPISchema, len(properties)),
		Required:   properties,
	}
	for _, p := range properties {
		schema.Properties[p] = models.OpenAPISchema{Type: "string"}
	}
	return schema
}
