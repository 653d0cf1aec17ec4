package http

import (
	"fmt"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"github.com/tuanvumaihuynh/brewery/internal/service"
)

const (
	beerPath    = apiPrefix + "/beer"
	beerIDParam = "beerId"
)

type beerHandler struct {
	responder
	beerSvc service.BeerService
}

func newBeerHandler(rs responder, beerSvc service.BeerService) *beerHandler {
	return &beerHandler{
		responder:   rs,
		beerSvc: beerSvc,
	}
}

func (h *beerHandler) routes(handle func(handlerFunc) http.HandlerFunc) func(r chi.Router) {
	return func(r chi.Router) {
		r.Get("/", handle(h.ListBeers))
		r.Post("/", handle(h.CreateBeer))
		r.Get("/{"+beerIDParam+"}", handle(h.GetBeer))
		r.Put("/{"+beerIDParam+"}", handle(h.UpdateBeer))
		r.Patch("/{"+beerIDParam+"}", handle(h.PatchBeer))
		r.Delete("/{"+beerIDParam+"}", handle(h.DeleteBeer))
	}
}

func (h *beerHandler) ListBeers(w http.ResponseWriter, r *http.Request) error {
	beers, err := h.beerSvc.ListBeers(r.Context())
	if err != nil {
		return fmt.Errorf("beer service list beers: %w", err)
	}

	h.json(w, r, http.StatusOK, beers)
	return nil
}

func (h *beerHandler) GetBeer(w http.ResponseWriter, r *http.Request) error {
	id, err := pathID(r, beerIDParam)
	if err != nil {
		return err
	}

	beer, err := h.beerSvc.GetBeerByID(r.Context(), id)
	if err != nil {
		return fmt.Errorf("beer service get beer by id: %w", err)
	}

	h.json(w, r, http.StatusOK, beer)
	return nil
}

func (h *beerHandler) CreateBeer(w http.ResponseWriter, r *http.Request) error {
	var body service.BeerDTO
	if err := decodeJSON(w, r, &body); err != nil {
		return err
	}

	beer, err := h.beerSvc.CreateBeer(r.Context(), body)
	if err != nil {
		return fmt.Errorf("beer service create beer: %w", err)
	}

	w.Header().Set("Location", beerPath+"/"+url.PathEscape(beer.ID))
	h.json(w, r, http.StatusCreated, beer)
	return nil
}

func (h *beerHandler) UpdateBeer(w http.ResponseWriter, r *http.Request) error {
	id, err := pathID(r, beerIDParam)
	if err != nil {
		return err
	}

	var body service.BeerDTO
	if err := decodeJSON(w, r, &body); err != nil {
		return err
	}

	if _, err := h.beerSvc.UpdateBeer(r.Context(), id, body); err != nil {
		return fmt.Errorf("beer service update beer: %w", err)
	}

	w.WriteHeader(http.StatusNoContent)
	return nil
}

func (h *beerHandler) PatchBeer(w http.ResponseWriter, r *http.Request) error {
	id, err := pathID(r, beerIDParam)
	if err != nil {
		return err
	}

	var body service.BeerPatch
	if err := decodeJSON(w, r, &body); err != nil {
		return err
	}

	if _, err := h.beerSvc.PatchBeer(r.Context(), id, body); err != nil {
		return fmt.Errorf("beer service patch beer: %w", err)
	}

	w.WriteHeader(http.StatusNoContent)
	return nil
}

func (h *beerHandler) DeleteBeer(w http.ResponseWriter, r *http.Request) error {
	id, err := pathID(r, beerIDParam)
	if err != nil {
		return err
	}

	if err := h.beerSvc.DeleteBeer(r.Context(), id); err != nil {
		return fmt.Errorf("beer service delete beer: %w", err)
	}

	w.WriteHeader(http.StatusNoContent)
	return nil
}
