package services

import (
	"context"
	"log"

	"github.com/aplamondon/go-restomenu/app/metrics"
	"github.com/aplamondon/go-restomenu/app/models"
	"github.com/aplamondon/go-restomenu/app/repositories"
)

type OptionInput struct {
	NameEN        string
	NameFR        string
	DescriptionEN string
	DescriptionFR string
	Thumbnail     string
	CategoryID    uint
}

type CategoryInput struct {
	NameEN string
	NameFR string
}

// LookupService implements the create-or-merge behavior of the lookups
// screen: option and category names are user-typed in two languages, so a
// submit that matches an existing row in either language updates that row
// instead of creating a near-duplicate.
type LookupService struct {
	optionRepo          repositories.OptionRepositoryImpl
	categoryRepo        repositories.CategoryRepositoryImpl
	categoryOptionRepo  repositories.CategoryOptionRepositoryImpl
	productOptionRepo   repositories.ProductOptionRepositoryImpl
	productCategoryRepo repositories.ProductCategoryRepositoryImpl
}

func NewLookupService(
	optionRepo repositories.OptionRepositoryImpl,
	categoryRepo repositories.CategoryRepositoryImpl,
	categoryOptionRepo repositories.CategoryOptionRepositoryImpl,
	productOptionRepo repositories.ProductOptionRepositoryImpl,
	productCategoryRepo repositories.ProductCategoryRepositoryImpl,
) *LookupService {
	return &LookupService{
		optionRepo:          optionRepo,
		categoryRepo:        categoryRepo,
		categoryOptionRepo:  categoryOptionRepo,
		productOptionRepo:   productOptionRepo,
		productCategoryRepo: productCategoryRepo,
	}
}

// UpsertOption creates or updates an option keyed by a case-insensitive
// match on either name, then attaches it to the given category. A lost
// insert race against the unique name constraint surfaces as ErrDuplicate;
// it is not retried.
func (s *LookupService) UpsertOption(ctx context.Context, input OptionInput) (*models.Option, bool, error) {
	existing, err := s.optionRepo.FindByEitherName(ctx, input.NameEN, input.NameFR)
	if err != nil {
		return nil, false, err
	}

	if existing != nil {
		// Only fields the caller filled in are overwritten: the lookups
		// form submits every field, but the product flows submit names
		// only and must not blank the rest.
		existing.NameEN = input.NameEN
		if input.NameFR != "" {
			existing.NameFR = input.NameFR
		}
		if input.DescriptionEN != "" {
			existing.DescriptionEN = input.DescriptionEN
		}
		if input.DescriptionFR != "" {
			existing.DescriptionFR = input.DescriptionFR
		}
		if input.Thumbnail != "" {
			existing.Thumbnail = input.Thumbnail
		}
		if err := s.optionRepo.Update(ctx, existing); err != nil {
			return nil, false, err
		}
		if input.CategoryID != 0 {
			if err := s.categoryOptionRepo.Attach(ctx, input.CategoryID, existing.ID); err != nil {
				return nil, false, err
			}
		}
		metrics.OptionUpserts.Inc()
		return existing, false, nil
	}

	option := &models.Option{
		NameEN:        input.NameEN,
		NameFR:        input.NameFR,
		DescriptionEN: input.DescriptionEN,
		DescriptionFR: input.DescriptionFR,
		Thumbnail:     input.Thumbnail,
	}
	if err := s.optionRepo.Create(ctx, option); err != nil {
		if models.IsDuplicateEntry(err) {
			log.Printf("UpsertOption: insert race on %q/%q: %v", input.NameEN, input.NameFR, err)
			return nil, false, models.ErrDuplicate
		}
		return nil, false, err
	}
	if input.CategoryID != 0 {
		if err := s.categoryOptionRepo.Attach(ctx, input.CategoryID, option.ID); err != nil {
			return nil, false, err
		}
	}
	metrics.OptionUpserts.Inc()
	return option, true, nil
}

func (s *LookupService) UpsertCategory(ctx context.Context, input CategoryInput) (*models.Category, bool, error) {
	existing, err := s.categoryRepo.FindByEitherName(ctx, input.NameEN, input.NameFR)
	if err != nil {
		return nil, false, err
	}

	if existing != nil {
		existing.NameEN = input.NameEN
		if input.NameFR != "" {
			existing.NameFR = input.NameFR
		}
		if err := s.categoryRepo.Update(ctx, existing); err != nil {
			return nil, false, err
		}
		metrics.CategoryUpserts.Inc()
		return existing, false, nil
	}

	category := &models.Category{NameEN: input.NameEN, NameFR: input.NameFR}
	if err := s.categoryRepo.Create(ctx, category); err != nil {
		if models.IsDuplicateEntry(err) {
			log.Printf("UpsertCategory: insert race on %q/%q: %v", input.NameEN, input.NameFR, err)
			return nil, false, models.ErrDuplicate
		}
		return nil, false, err
	}
	metrics.CategoryUpserts.Inc()
	return category, true, nil
}

// DeleteOption detaches every link pointing at the option before removing
// the row, so no association ever references a missing parent.
func (s *LookupService) DeleteOption(ctx context.Context, id uint) error {
	option, err := s.optionRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if option == nil {
		return models.ErrNotFound
	}

	if err := s.categoryOptionRepo.DetachAllForOption(ctx, id); err != nil {
		return err
	}
	if err := s.productOptionRepo.DetachAllForOption(ctx, id); err != nil {
		return err
	}
	return s.optionRepo.Delete(ctx, id)
}

func (s *LookupService) DeleteCategory(ctx context.Context, id uint) error {
	category, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if category == nil {
		return models.ErrNotFound
	}

	if err := s.categoryOptionRepo.DetachAllForCategory(ctx, id); err != nil {
		return err
	}
	if err := s.productCategoryRepo.DetachAllForCategory(ctx, id); err != nil {
		return err
	}
	return s.categoryRepo.Delete(ctx, id)
}

// DetachOptionFromCategory removes one Category-Option link and nothing
// else; the option stays usable under its other categories.
func (s *LookupService) DetachOptionFromCategory(ctx context.Context, categoryID, optionID uint) error {
	category, err := s.categoryRepo.GetByID(ctx, categoryID)
	if err != nil {
		return err
	}
	if category == nil {
		return models.ErrNotFound
	}
	return s.categoryOptionRepo.Detach(ctx, categoryID, optionID)
}
