// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// StatusCode is a SyncML response status code. The numeric ranges follow the
// protocol's status classes (1xx..5xx), analogous to HTTP.
type StatusCode int

// Status codes produced and interpreted by the command core.
const (
	InProgress StatusCode = 101

	Success               StatusCode = 200
	ItemAdded             StatusCode = 201
	ResolvedClientWinning StatusCode = 208
	ResolvedWithDuplicate StatusCode = 209
	ItemNotDeleted        StatusCode = 211
	ChunkedItemAccepted   StatusCode = 213

	MultipleChoices StatusCode = 300

	BadRequest                  StatusCode = 400
	NotFound                    StatusCode = 404
	CommandNotAllowed           StatusCode = 405
	OptionalFeatureNotSupported StatusCode = 406
	SizeRequired                StatusCode = 411
	RequestSizeTooBig           StatusCode = 413
	UnsupportedFormat           StatusCode = 415
	AlreadyExists               StatusCode = 418
	ResolvedWithServerData      StatusCode = 419
	DeviceFull                  StatusCode = 420

	CommandFailed   StatusCode = 500
	NotImplemented  StatusCode = 501
	RefreshRequired StatusCode = 508

	// NotSupported is returned for items of a command kind the core does not handle.
	NotSupported = OptionalFeatureNotSupported
)

// StatusClass is the range-based classification of a StatusCode.
type StatusClass int

const (
	Unknown StatusClass = iota
	Informational
	Successful
	Redirection
	OriginatorException
	RecipientException
)

var statusClassNames = map[StatusClass]string{
	Unknown:             "unknown",
	Informational:       "informational",
	Successful:          "successful",
	Redirection:         "redirection",
	OriginatorException: "originator_exception",
	RecipientException:  "recipient_exception",
}

func (c StatusClass) String() string {
	if name, ok := statusClassNames[c]; ok {
		return name
	}
	return statusClassNames[Unknown]
}

// Class classifies the code by numeric range:
//
//	[100,200) Informational
//	[200,300) Successful
//	[300,400) Redirection
//	[400,500) OriginatorException
//	[500,600) RecipientException
//
// Everything else is Unknown.
func (s StatusCode) Class() StatusClass {
	switch {
	case s >= 100 && s < 200:
		return Informational
	case s >= 200 && s < 300:
		return Successful
	case s >= 300 && s < 400:
		return Redirection
	case s >= 400 && s < 500:
		return OriginatorException
	case s >= 500 && s < 600:
		return RecipientException
	default:
		return Unknown
	}
}
