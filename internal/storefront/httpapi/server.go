package httpapi

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	catalogapp "github.com/dwikikusuma/food-storefront/internal/catalog/app"
	"github.com/dwikikusuma/food-storefront/internal/storefront"
	"github.com/dwikikusuma/food-storefront/pkg/money"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const maxBodyBytes = 1 << 16

type Server struct {
	dispatcher *storefront.Dispatcher
	catalog    *catalogapp.Service
	log        *slog.Logger
	timeout    time.Duration
}

func NewServer(dispatcher *storefront.Dispatcher, catalog *catalogapp.Service, log *slog.Logger, timeout time.Duration) *Server {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Server{dispatcher: dispatcher, catalog: catalog, log: log, timeout: timeout}
}

type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

type changeQuantityRequest struct {
	Delta int `json:"delta"`
}

type checkoutRequest struct {
	Name string `json:"name"`
}

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.requestLogger)
	r.Use(middleware.Timeout(s.timeout))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/products", s.listProducts)
		r.Get("/products/{id}", s.getProduct)

		r.Route("/cart", func(r chi.Router) {
			r.Get("/", s.viewCart)
			r.Delete("/", s.clearCart)
			r.Post("/items/{id}", s.addItem)
			r.Patch("/items/{id}", s.changeQuantity)
			r.Delete("/items/{id}", s.removeItem)
		})

		r.Post("/checkout", s.checkout)
	})

	return r
}

func (s *Server) listProducts(w http.ResponseWriter, r *http.Request) {
	ev := storefront.Event{Kind: storefront.EventList}
	if q := r.URL.Query().Get("q"); q != "" {
		ev = storefront.Event{Kind: storefront.EventSearch, Query: q}
	}
	s.dispatch(w, r, ev, http.StatusOK)
}

func (s *Server) getProduct(w http.ResponseWriter, r *http.Request) {
	p, err := s.catalog.GetProduct(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.respondErr(w, err)
		return
	}
	respondJSON(w, http.StatusOK, storefront.ProductCard{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       money.Format(p.Price),
		ImageRef:    p.ImageRef,
	})
}

func (s *Server) viewCart(w http.ResponseWriter, r *http.Request) {
	s.dispatch(w, r, storefront.Event{Kind: storefront.EventViewCart}, http.StatusOK)
}

func (s *Server) clearCart(w http.ResponseWriter, r *http.Request) {
	s.dispatch(w, r, storefront.Event{Kind: storefront.EventClear, Confirmed: true}, http.StatusOK)
}

func (s *Server) addItem(w http.ResponseWriter, r *http.Request) {
	s.dispatch(w, r, storefront.Event{Kind: storefront.EventAdd, ProductID: chi.URLParam(r, "id")}, http.StatusCreated)
}

func (s *Server) changeQuantity(w http.ResponseWriter, r *http.Request) {
	var req changeQuantityRequest
	if err := decodeJSON(r, &req); err != nil {
		s.respondErr(w, catalogapp.ErrInvalidInput)
		return
	}
	s.dispatch(w, r, storefront.Event{Kind: storefront.EventChange, ProductID: chi.URLParam(r, "id"), Delta: req.Delta}, http.StatusOK)
}

func (s *Server) removeItem(w http.ResponseWriter, r *http.Request) {
	s.dispatch(w, r, storefront.Event{Kind: storefront.EventRemove, ProductID: chi.URLParam(r, "id")}, http.StatusOK)
}

func (s *Server) checkout(w http.ResponseWriter, r *http.Request) {
	var req checkoutRequest
	if err := decodeJSON(r, &req); err != nil && !errors.Is(err, io.EOF) {
		s.respondErr(w, catalogapp.ErrInvalidInput)
		return
	}

	view, err := s.dispatcher.Dispatch(r.Context(), storefront.Event{Kind: storefront.EventCheckout, Name: req.Name})
	if err != nil {
		s.respondErr(w, err)
		return
	}
	code := http.StatusOK
	if view.Receipt != nil {
		code = http.StatusCreated
	}
	respondJSON(w, code, view)
}

func (s *Server) dispatch(w http.ResponseWriter, r *http.Request, ev storefront.Event, okStatus int) {
	view, err := s.dispatcher.Dispatch(r.Context(), ev)
	if err != nil {
		s.respondErr(w, err)
		return
	}
	respondJSON(w, okStatus, view)
}

func (s *Server) respondErr(w http.ResponseWriter, err error) {
	httpStatus, code, msg := httpStatusFromGRPC(mapErr(err))
	if httpStatus >= http.StatusInternalServerError {
		s.log.Error("request failed", slog.Any("err", err))
	}
	respondJSON(w, httpStatus, errorResponse{Error: msg, Code: code})
}

func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		s.log.LogAttrs(r.Context(), slog.LevelInfo, "http request",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Int("status", ww.Status()),
			slog.Duration("elapsed", time.Since(start)),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)
	})
}

func decodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}

func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Default().Error("failed to encode response", slog.Any("err", err))
	}
}
