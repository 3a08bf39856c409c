package usecase

import (
	"context"
	"fmt"
	"log"

	"github.com/gmfernandes/leadflow/internal/entity"
)

// UpdateLeadUseCase applies a partial patch to a lead. The schema only
// restricts status to the five tokens; transition legality lives here.
type UpdateLeadUseCase struct {
	Leads  LeadRepository
	Alerts *QueueAlertUseCase
}

func NewUpdateLeadUseCase(leads LeadRepository, alerts *QueueAlertUseCase) *UpdateLeadUseCase {
	return &UpdateLeadUseCase{Leads: leads, Alerts: alerts}
}

func (uc *UpdateLeadUseCase) Execute(ctx context.Context, id int64, input UpdateLeadInput) (*entity.Lead, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	lead, err := uc.Leads.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	converted := false
	if input.Status.HasValue() {
		wasConverted := lead.Status == entity.LeadStatusConverted
		if err := lead.TransitionTo(input.Status.Val); err != nil {
			return nil, fmt.Errorf("lead %d: %s -> %s: %w", id, lead.Status, input.Status.Val, err)
		}
		converted = !wasConverted && lead.Status == entity.LeadStatusConverted
	}

	if input.ConversionValue.Set {
		lead.ConversionValue = input.ConversionValue.Ptr()
	}

	lead.Touch()
	if err := uc.Leads.Update(ctx, lead); err != nil {
		return nil, err
	}

	if converted && uc.Alerts != nil {
		subject := fmt.Sprintf("Lead converted: %s", lead.Title)
		content := fmt.Sprintf("<p>Lead <strong>%s</strong> (%s) was marked converted.</p>",
			lead.CustomerName, lead.Title)
		if _, err := uc.Alerts.Execute(ctx, lead.BusinessID, AlertLeadConverted, subject, content); err != nil {
			log.Printf("WARN: conversion alert for lead %d not queued: %v", lead.ID, err)
		}
	}

	return lead, nil
}
