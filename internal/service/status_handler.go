// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-syncml/internal/logger"
	"github.com/MKhiriev/go-syncml/models"
)

type statusHandler struct {
	logger *logger.Logger
}

// NewStatusHandler constructs a [StatusHandler].
func NewStatusHandler(logger *logger.Logger) StatusHandler {
	return &statusHandler{logger: logger}
}

// HandleStatus returns the session events a peer status calls for. It does
// no I/O besides logging; the caller delivers the events with
// [DispatchEvents].
func (h *statusHandler) HandleStatus(status models.StatusParams) []models.SessionEvent {
	var events []models.SessionEvent
	code := status.Data

	switch code.Class() {
	case models.Informational, models.Successful:

	case models.Redirection:
		h.HandleRedirection(code)

	case models.OriginatorException:
		if code != models.AlreadyExists {
			events = append(events, models.SessionEvent{Kind: models.EventAbortSync, Code: code})
		}

	case models.RecipientException:
		if code == models.RefreshRequired {
			h.logger.Warn().Str("func", "*statusHandler.HandleStatus").
				Int("cmd_ref", status.CmdRef).
				Msg("peer requested refresh, ignoring")
		} else {
			events = append(events, models.SessionEvent{Kind: models.EventAbortSync, Code: code})
		}

	default:
		h.logger.Debug().Str("func", "*statusHandler.HandleStatus").
			Int("code", int(code)).
			Msg("unknown status code")
	}

	switch status.Cmd {
	case models.CommandAdd, models.CommandReplace, models.CommandDelete:
		events = append(events, models.SessionEvent{
			Kind:      models.EventItemAcknowledged,
			MsgRef:    status.MsgRef,
			CmdRef:    status.CmdRef,
			SourceRef: status.SourceRef,
		})
	case models.CommandMap:
		events = append(events, models.SessionEvent{
			Kind:   models.EventMappingAcknowledged,
			MsgRef: status.MsgRef,
			CmdRef: status.CmdRef,
		})
	}

	return events
}

// HandleRedirection is a placeholder: redirections are not followed.
func (h *statusHandler) HandleRedirection(code models.StatusCode) models.StatusCode {
	h.logger.Debug().Str("func", "*statusHandler.HandleRedirection").
		Int("code", int(code)).
		Msg("redirection not implemented")
	return models.NotImplemented
}

// DispatchEvents delivers events to sink in order.
func DispatchEvents(events []models.SessionEvent, sink SessionEvents) {
	for _, e := range events {
		switch e.Kind {
		case models.EventItemAcknowledged:
			sink.ItemAcknowledged(e.MsgRef, e.CmdRef, e.SourceRef)
		case models.EventMappingAcknowledged:
			sink.MappingAcknowledged(e.MsgRef, e.CmdRef)
		case models.EventAbortSync:
			sink.AbortSync(e.Code)
		}
	}
}
