package usecase

import (
	"context"

	"github.com/gmfernandes/leadflow/internal/entity"
)

// PostMessageUseCase appends one entry to a lead conversation. Messages are
// immutable afterwards except for the read flag.
type PostMessageUseCase struct {
	Messages MessageRepository
}

func NewPostMessageUseCase(messages MessageRepository) *PostMessageUseCase {
	return &PostMessageUseCase{Messages: messages}
}

// Execute stores the message. userID is non-nil only when a platform user
// authored it; customer and platform messages carry nil.
func (uc *PostMessageUseCase) Execute(ctx context.Context, userID *int64, input CreateMessageInput) (*entity.Message, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	msg := entity.NewMessage(input.LeadID, userID, input.SenderName, input.SenderEmail,
		input.Content, input.IsFromBusiness, input.Attachments)

	if err := uc.Messages.Create(ctx, msg); err != nil {
		return nil, err
	}

	return msg, nil
}

type MarkMessageReadUseCase struct {
	Messages MessageRepository
}

func NewMarkMessageReadUseCase(messages MessageRepository) *MarkMessageReadUseCase {
	return &MarkMessageReadUseCase{Messages: messages}
}

func (uc *MarkMessageReadUseCase) Execute(ctx context.Context, id int64) error {
	return uc.Messages.MarkRead(ctx, id)
}
