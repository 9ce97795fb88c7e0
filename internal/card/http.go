// Copyright (c) 2026 Cardex. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package card provides the HTTP interface of the catalogue.

# Access Control

All three endpoints are public and read-only; there is no authenticated
surface in this service.
*/
package card

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/taibuivan/cardex/internal/platform/respond"
)

// Handler implements the HTTP layer for the card catalogue.
// It translates web requests into domain service calls.
type Handler struct {
	service *Service
}

// NewHandler constructs a new catalogue [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] configured with the catalogue endpoints.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/hint-and-criteria", handler.hintAndCriteria)
	router.Get("/search-card", handler.searchCard)
	router.Get("/screen-card", handler.screenCard)

	return router
}

/*
GET /hint-and-criteria.

Description: Returns every reference domain plus the searchable and sortable
field lists, verbatim. There is nothing to validate.

Response:
  - 200: Hint: Full criteria payload
*/
func (handler *Handler) hintAndCriteria(writer http.ResponseWriter, request *http.Request) {
	respond.OK(writer, handler.service.Hint())
}

/*
GET /search-card?<field>=<value>.

Description: Single-field permissive search. Exactly one searchable field
must be supplied with a single value; per-field semantics include fuzzy
monster-name resolution.

Request:
  - one of: monster | type | grade | year | card

Response:
  - 200: {data, total}: Matching card projections
  - 400: "Invalid search parameter": Zero or multiple fields, unsearchable
    field, or failed per-field validation
  - 500: Store failure (generic message, detail logged)
*/
func (handler *Handler) searchCard(writer http.ResponseWriter, request *http.Request) {

	data, total, err := handler.service.Search(request.Context(), request.URL.Query())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Results(writer, data, total)
}

/*
GET /screen-card?<field>=<comma-values>&start=<int>&count=<int>&sort=<field>,<1|-1>.

Description: Strict multi-field screening. Every value must belong to its
enumerated domain; start, count, and sort are mandatory directives.

Response:
  - 200: {data, total}: One result window plus the unwindowed match count
  - 400: "Invalid screen criteria": Any structural or value validation failure
  - 500: Store failure (generic message, detail logged)
*/
func (handler *Handler) screenCard(writer http.ResponseWriter, request *http.Request) {

	data, total, err := handler.service.Screen(request.Context(), request.URL.Query())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Results(writer, data, total)
}
