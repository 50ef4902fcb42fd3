package service

import "errors"

var (
	ErrVersionIsNotSpecified   = errors.New("app version is not specified")
	ErrNoSpeechPayloadProvided = errors.New("no speech payload provided")
)
