// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package response accumulates the status elements and alert packages of the
// outgoing SyncML message while commands are processed.
package response

import (
	"github.com/MKhiriev/go-syncml/models"
)

// Generator is an in-memory response accumulator. It is not safe for
// concurrent use.
type Generator struct {
	statuses []models.StatusElement
	packages []models.AlertPackage
}

func NewGenerator() *Generator {
	return &Generator{}
}

// AddStatus appends a status element as is.
func (g *Generator) AddStatus(status models.StatusElement) {
	g.statuses = append(g.statuses, status)
}

// AddPackageStatus answers the Sync command itself.
func (g *Generator) AddPackageStatus(params models.SyncParams, code models.StatusCode) {
	g.AddStatus(models.StatusElement{
		CmdRef: params.CmdID,
		Cmd:    models.CommandSync,
		Code:   code,
	})
}

// AddActionStatus answers a whole action.
func (g *Generator) AddActionStatus(action models.SyncActionData, code models.StatusCode) {
	g.AddStatus(models.StatusElement{
		CmdRef: action.CmdID,
		Cmd:    action.Action,
		Code:   code,
	})
}

// AddItemStatus answers one item of action, echoing its source and target.
func (g *Generator) AddItemStatus(action models.SyncActionData, item models.ItemParams, code models.StatusCode) {
	g.AddStatus(models.StatusElement{
		CmdRef:    action.CmdID,
		Cmd:       action.Action,
		SourceRef: item.Source,
		TargetRef: item.Target,
		Code:      code,
	})
}

func (g *Generator) AddPackage(alert models.AlertPackage) {
	g.packages = append(g.packages, alert)
}

// Statuses returns the collected status elements in insertion order.
func (g *Generator) Statuses() []models.StatusElement {
	return g.statuses
}

// Packages returns the collected alert packages in insertion order.
func (g *Generator) Packages() []models.AlertPackage {
	return g.packages
}

// Reset drops everything collected so far.
func (g *Generator) Reset() {
	g.statuses = nil
	g.packages = nil
}
