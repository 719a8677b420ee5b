// Package metrics holds the domain counters exported on /metrics.
package metrics

import "github.com/prometheus/client_golang/prometheus"

// Public page outcomes.
const (
	OutcomeServed   = "served"
	OutcomeCached   = "cached"
	OutcomeNotFound = "not_found"
	OutcomeError    = "error"
)

// Collector is safe to use as a nil pointer; every method is then a no-op.
type Collector struct {
	publicPages    *prometheus.CounterVec
	slugCollisions prometheus.Counter
	uploads        *prometheus.CounterVec
}

// New registers the domain counters on reg.
func New(reg prometheus.Registerer) (*Collector, error) {
	c := &Collector{
		publicPages: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "landing_public_page_requests_total",
				Help: "Public landing page requests by outcome.",
			},
			[]string{"outcome"},
		),
		slugCollisions: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "landing_slug_collisions_total",
			Help: "Saves whose requested slug was already taken.",
		}),
		uploads: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "landing_image_uploads_total",
				Help: "Image uploads by result.",
			},
			[]string{"result"},
		),
	}
	for _, col := range []prometheus.Collector{c.publicPages, c.slugCollisions, c.uploads} {
		if err := reg.Register(col); err != nil {
			return nil, err
		}
	}
	return c, nil
}

func (c *Collector) PublicPage(outcome string) {
	if c == nil {
		return
	}
	c.publicPages.WithLabelValues(outcome).Inc()
}

func (c *Collector) SlugCollision() {
	if c == nil {
		return
	}
	c.slugCollisions.Inc()
}

func (c *Collector) Upload(ok bool) {
	if c == nil {
		return
	}
	result := "ok"
	if !ok {
		result = "rejected"
	}
	c.uploads.WithLabelValues(result).Inc()
}
