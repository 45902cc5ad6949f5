// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
)

// checkedMethods are probed when building the Allow header.
var checkedMethods = []string{
	http.MethodGet,
	http.MethodPost,
	http.MethodPut,
	http.MethodPatch,
	http.MethodDelete,
}

// CheckHTTPMethod returns an [http.HandlerFunc] that is intended to be
// registered as the router's MethodNotAllowed handler via
// [chi.Mux.MethodNotAllowed].
//
// It answers 405 Method Not Allowed with an Allow header listing the methods
// that the matched path does accept. The registered routes are walked once
// into a flat router, because [chi.Mux.Match] on the original router reports
// a match for every method on the stub paths chi adds around mounted
// subrouters (e.g. /api/notes/). Routes must be registered before the call.
//
// Usage:
//
//	router := chi.NewRouter()
//	// ... register routes ...
//	router.MethodNotAllowed(CheckHTTPMethod(router))
func CheckHTTPMethod(router *chi.Mux) func(w http.ResponseWriter, r *http.Request) {
	routes := flattenRoutes(router)

	return func(w http.ResponseWriter, r *http.Request) {
		allowed := make([]string, 0, len(checkedMethods))
		for _, method := range checkedMethods {
			if routes.Match(chi.NewRouteContext(), method, r.URL.Path) {
				allowed = append(allowed, method)
			}
		}

		if len(allowed) == 0 {
			http.NotFound(w, r)
			return
		}

		w.Header().Set("Allow", strings.Join(allowed, ", "))
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
	}
}

// flattenRoutes copies every method/pattern pair of router into a router
// without subrouters.
func flattenRoutes(router chi.Routes) *chi.Mux {
	flat := chi.NewRouter()
	noop := func(http.ResponseWriter, *http.Request) {}

	_ = chi.Walk(router, func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		flat.MethodFunc(method, route, noop)
		return nil
	})

	return flat
}
