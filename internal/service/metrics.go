package service

import (
	"errors"

	"carrybid/internal/entities"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var transitionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "carrybid",
	Subsystem: "lifecycle",
	Name:      "transitions_total",
	Help:      "Lifecycle transitions by operation and outcome.",
}, []string{"op", "outcome"})

func observeTransition(op string, err error) {
	outcome := "applied"
	switch {
	case err == nil:
	case errors.Is(err, entities.ErrValidation),
		errors.Is(err, entities.ErrForbidden),
		errors.Is(err, entities.ErrConflict),
		errors.Is(err, entities.ErrInvalidTransition),
		errors.Is(err, entities.ErrOrderNotFound),
		errors.Is(err, entities.ErrQuoteNotFound):
		outcome = "rejected"
	default:
		outcome = "error"
	}
	transitionsTotal.WithLabelValues(op, outcome).Inc()
}
