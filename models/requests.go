package models

// SpeechPayload is the body accepted by POST /api/analyze-speech.
//
// The payload is an arbitrary JSON object. It is decoded so that malformed
// bodies are rejected, but its keys and values are never inspected.
type SpeechPayload map[string]any
