package http

import (
	"fmt"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"github.com/tuanvumaihuynh/brewery/internal/service"
)

const (
	customerPath    = apiPrefix + "/customer"
	customerIDParam = "customerId"
)

type customerHandler struct {
	responder
	customerSvc service.CustomerService
}

func newCustomerHandler(rs responder, customerSvc service.CustomerService) *customerHandler {
	return &customerHandler{
		responder:   rs,
		customerSvc: customerSvc,
	}
}

func (h *customerHandler) routes(handle func(handlerFunc) http.HandlerFunc) func(r chi.Router) {
	return func(r chi.Router) {
		r.Get("/", handle(h.ListCustomers))
		r.Post("/", handle(h.CreateCustomer))
		r.Get("/{"+customerIDParam+"}", handle(h.GetCustomer))
		r.Put("/{"+customerIDParam+"}", handle(h.UpdateCustomer))
		r.Patch("/{"+customerIDParam+"}", handle(h.PatchCustomer))
		r.Delete("/{"+customerIDParam+"}", handle(h.DeleteCustomer))
	}
}

func (h *customerHandler) ListCustomers(w http.ResponseWriter, r *http.Request) error {
	customers, err := h.customerSvc.ListCustomers(r.Context())
	if err != nil {
		return fmt.Errorf("customer service list customers: %w", err)
	}

	h.json(w, r, http.StatusOK, customers)
	return nil
}

func (h *customerHandler) GetCustomer(w http.ResponseWriter, r *http.Request) error {
	id, err := pathID(r, customerIDParam)
	if err != nil {
		return err
	}

	customer, err := h.customerSvc.GetCustomerByID(r.Context(), id)
	if err != nil {
		return fmt.Errorf("customer service get customer by id: %w", err)
	}

	h.json(w, r, http.StatusOK, customer)
	return nil
}

func (h *customerHandler) CreateCustomer(w http.ResponseWriter, r *http.Request) error {
	var body service.CustomerDTO
	if err := decodeJSON(w, r, &body); err != nil {
		return err
	}

	customer, err := h.customerSvc.CreateCustomer(r.Context(), body)
	if err != nil {
		return fmt.Errorf("customer service create customer: %w", err)
	}

	w.Header().Set("Location", customerPath+"/"+url.PathEscape(customer.ID))
	h.json(w, r, http.StatusCreated, customer)
	return nil
}

func (h *customerHandler) UpdateCustomer(w http.ResponseWriter, r *http.Request) error {
	id, err := pathID(r, customerIDParam)
	if err != nil {
		return err
	}

	var body service.CustomerDTO
	if err := decodeJSON(w, r, &body); err != nil {
		return err
	}

	if _, err := h.customerSvc.UpdateCustomer(r.Context(), id, body); err != nil {
		return fmt.Errorf("customer service update customer: %w", err)
	}

	w.WriteHeader(http.StatusNoContent)
	return nil
}

func (h *customerHandler) PatchCustomer(w http.ResponseWriter, r *http.Request) error {
	id, err := pathID(r, customerIDParam)
	if err != nil {
		return err
	}

	var body service.CustomerPatch
	if err := decodeJSON(w, r, &body); err != nil {
		return err
	}

	if _, err := h.customerSvc.PatchCustomer(r.Context(), id, body); err != nil {
		return fmt.Errorf("customer service patch customer: %w", err)
	}

	w.WriteHeader(http.StatusNoContent)
	return nil
}

func (h *customerHandler) DeleteCustomer(w http.ResponseWriter, r *http.Request) error {
	id, err := pathID(r, customerIDParam)
	if err != nil {
		return err
	}

	if err := h.customerSvc.DeleteCustomer(r.Context(), id); err != nil {
		return fmt.Errorf("customer service delete customer: %w", err)
	}

	w.WriteHeader(http.StatusNoContent)
	return nil
}
