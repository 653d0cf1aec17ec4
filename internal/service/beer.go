package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tuanvumaihuynh/brewery/internal/apperr"
	"github.com/tuanvumaihuynh/brewery/internal/model"
	"github.com/tuanvumaihuynh/brewery/internal/repository"
	"github.com/tuanvumaihuynh/brewery/pkg/optional"
	"github.com/tuanvumaihuynh/brewery/pkg/ptr"
)

// BeerDTO is the external representation of a beer. Price and
// QuantityOnHand are pointers so that "missing" can be told apart from zero.
type BeerDTO struct {
	ID               string           `json:"id"`
	BeerName         string           `json:"beerName" validate:"required,notblank"`
	BeerStyle        string           `json:"beerStyle" validate:"required,notblank"`
	Upc              string           `json:"upc" validate:"required,notblank"`
	Price            *decimal.Decimal `json:"price" validate:"required,gte=0"`
	QuantityOnHand   *int             `json:"quantityOnHand" validate:"omitempty,gte=0"`
	CreatedDate      time.Time        `json:"createdDate"`
	LastModifiedDate time.Time        `json:"lastModifiedDate"`
}

// BeerPatch carries the fields of a partial update. String fields apply
// only when set and non-blank; numeric fields apply when set.
type BeerPatch struct {
	BeerName       optional.Value[string]          `json:"beerName"`
	BeerStyle      optional.Value[string]          `json:"beerStyle"`
	Upc            optional.Value[string]          `json:"upc"`
	Price          optional.Value[decimal.Decimal] `json:"price"`
	QuantityOnHand optional.Value[int]             `json:"quantityOnHand"`
}

// numbers exposes the numeric patch fields to the validator.
func (p BeerPatch) numbers() any {
	return struct {
		Price          *decimal.Decimal `json:"price" validate:"omitempty,gte=0"`
		QuantityOnHand *int             `json:"quantityOnHand" validate:"omitempty,gte=0"`
	}{
		Price:          p.Price.Ptr(),
		QuantityOnHand: p.QuantityOnHand.Ptr(),
	}
}

type BeerService interface {
	ListBeers(ctx context.Context) ([]BeerDTO, error)
	GetBeerByID(ctx context.Context, id string) (BeerDTO, error)
	CreateBeer(ctx context.Context, dto BeerDTO) (BeerDTO, error)
	UpdateBeer(ctx context.Context, id string, dto BeerDTO) (BeerDTO, error)
	PatchBeer(ctx context.Context, id string, patch BeerPatch) (BeerDTO, error)
	DeleteBeer(ctx context.Context, id string) error
}

type beerService struct {
	opts options
	repo repository.Repository[model.Beer]
}

func NewBeerService(repo repository.Repository[model.Beer], opts ...Option) BeerService {
	return &beerService{
		opts: newOptions(opts),
		repo: repo,
	}
}

func (s *beerService) ListBeers(ctx context.Context) ([]BeerDTO, error) {
	beers, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("beer repository find all: %w", err)
	}

	dtos := make([]BeerDTO, 0, len(beers))
	for _, b := range beers {
		dtos = append(dtos, beerToDTO(b))
	}
	return dtos, nil
}

func (s *beerService) GetBeerByID(ctx context.Context, id string) (BeerDTO, error) {
	beer, err := s.findBeer(ctx, id)
	if err != nil {
		return BeerDTO{}, err
	}
	return beerToDTO(beer), nil
}

func (s *beerService) CreateBeer(ctx context.Context, dto BeerDTO) (BeerDTO, error) {
	if err := s.opts.validate(dto); err != nil {
		return BeerDTO{}, fmt.Errorf("validate beer: %w", err)
	}

	created, lastModified := s.opts.creationDates(dto.CreatedDate, dto.LastModifiedDate)
	beer := model.Beer{
		CreatedDate:      created,
		LastModifiedDate: lastModified,
	}
	applyBeerDTO(&beer, dto)

	saved, err := s.repo.Save(ctx, beer)
	if err != nil {
		return BeerDTO{}, fmt.Errorf("beer repository save: %w", err)
	}
	return beerToDTO(saved), nil
}

func (s *beerService) UpdateBeer(ctx context.Context, id string, dto BeerDTO) (BeerDTO, error) {
	beer, err := s.findBeer(ctx, id)
	if err != nil {
		return BeerDTO{}, err
	}

	if err := s.opts.validate(dto); err != nil {
		return BeerDTO{}, fmt.Errorf("validate beer: %w", err)
	}

	applyBeerDTO(&beer, dto)
	beer.LastModifiedDate = s.opts.touch(beer.CreatedDate)

	saved, err := s.repo.Save(ctx, beer)
	if err != nil {
		return BeerDTO{}, fmt.Errorf("beer repository save: %w", err)
	}
	return beerToDTO(saved), nil
}

func (s *beerService) PatchBeer(ctx context.Context, id string, patch BeerPatch) (BeerDTO, error) {
	beer, err := s.findBeer(ctx, id)
	if err != nil {
		return BeerDTO{}, err
	}

	if err := s.opts.validate(patch.numbers()); err != nil {
		return BeerDTO{}, fmt.Errorf("validate beer patch: %w", err)
	}

	if v, ok := patch.BeerName.Get(); hasText(v, ok) {
		beer.BeerName = v
	}
	if v, ok := patch.BeerStyle.Get(); hasText(v, ok) {
		beer.BeerStyle = v
	}
	if v, ok := patch.Upc.Get(); hasText(v, ok) {
		beer.Upc = v
	}
	if v, ok := patch.Price.Get(); ok {
		beer.Price = v
	}
	if v, ok := patch.QuantityOnHand.Get(); ok {
		beer.QuantityOnHand = v
	}
	beer.LastModifiedDate = s.opts.touch(beer.CreatedDate)

	saved, err := s.repo.Save(ctx, beer)
	if err != nil {
		return BeerDTO{}, fmt.Errorf("beer repository save: %w", err)
	}
	return beerToDTO(saved), nil
}

func (s *beerService) DeleteBeer(ctx context.Context, id string) error {
	if _, err := s.findBeer(ctx, id); err != nil {
		return err
	}

	if err := s.repo.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("beer repository delete: %w", err)
	}
	return nil
}

func (s *beerService) findBeer(ctx context.Context, id string) (model.Beer, error) {
	if err := requireID(id); err != nil {
		return model.Beer{}, err
	}

	beer, err := s.repo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return model.Beer{}, apperr.BeerNotFoundErr.WithMsg(fmt.Sprintf("beer %s not found", id))
	}
	if err != nil {
		return model.Beer{}, fmt.Errorf("beer repository find by id: %w", err)
	}
	return beer, nil
}

// applyBeerDTO overwrites every mutable field of b with a validated dto.
func applyBeerDTO(b *model.Beer, dto BeerDTO) {
	b.BeerName = dto.BeerName
	b.BeerStyle = dto.BeerStyle
	b.Upc = dto.Upc
	b.Price = *dto.Price
	b.QuantityOnHand = ptr.ValueOr(dto.QuantityOnHand, 0)
}

func beerToDTO(b model.Beer) BeerDTO {
	return BeerDTO{
		ID:               b.ID,
		BeerName:         b.BeerName,
		BeerStyle:        b.BeerStyle,
		Upc:              b.Upc,
		Price:            ptr.New(b.Price),
		QuantityOnHand:   ptr.New(b.QuantityOnHand),
		CreatedDate:      b.CreatedDate,
		LastModifiedDate: b.LastModifiedDate,
	}
}
