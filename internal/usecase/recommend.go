package usecase

import (
	"context"

	"github.com/gmfernandes/leadflow/internal/entity"
)

type CreateRecommendationUseCase struct {
	Recommendations RecommendationRepository
}

func NewCreateRecommendationUseCase(recommendations RecommendationRepository) *CreateRecommendationUseCase {
	return &CreateRecommendationUseCase{Recommendations: recommendations}
}

func (uc *CreateRecommendationUseCase) Execute(ctx context.Context, input CreateRecommendationInput) (*entity.Recommendation, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	rec := entity.NewRecommendation(input.BusinessID, input.Type, input.Title,
		input.Description, input.Priority, input.ImpactScore, input.Data)

	if err := uc.Recommendations.Create(ctx, rec); err != nil {
		return nil, err
	}

	return rec, nil
}

type DismissRecommendationUseCase struct {
	Recommendations RecommendationRepository
}

func NewDismissRecommendationUseCase(recommendations RecommendationRepository) *DismissRecommendationUseCase {
	return &DismissRecommendationUseCase{Recommendations: recommendations}
}

// Execute dismisses a recommendation. Idempotent: dismissing an already
// dismissed record returns it unchanged, keeping the original DismissedAt.
func (uc *DismissRecommendationUseCase) Execute(ctx context.Context, id int64) (*entity.Recommendation, error) {
	rec, err := uc.Recommendations.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if rec.IsDismissed {
		return rec, nil
	}

	rec.Dismiss()
	if err := uc.Recommendations.Update(ctx, rec); err != nil {
		return nil, err
	}

	return rec, nil
}
