// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package metrics exports network activity as Prometheus metrics.
//
package metrics

import (
	"net/http"

	"github.com/db47h/pulsesim"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector is a pulsesim.Observer updating Prometheus metrics. It is safe
// for concurrent use and can observe several networks.
//
type Collector struct {
	pulses     *prometheus.CounterVec
	waves      *prometheus.CounterVec
	wavePulses prometheus.Histogram
}

// New creates a Collector and registers its metrics with r.
//
func New(r prometheus.Registerer) (*Collector, error) {
	c := &Collector{
		pulses: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "pulsesim_pulses_total",
				Help: "Total number of pulses processed, by level.",
			},
			[]string{"level"},
		),
		waves: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "pulsesim_waves_total",
				Help: "Total number of button presses, by entry node.",
			},
			[]string{"entry"},
		),
		wavePulses: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "pulsesim_wave_pulses",
				Help:    "Number of pulses processed per wave.",
				Buckets: prometheus.ExponentialBuckets(1, 4, 10),
			},
		),
	}
	for _, m := range []prometheus.Collector{c.pulses, c.waves, c.wavePulses} {
		if err := r.Register(m); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// Pulse implements pulsesim.Observer.
//
func (c *Collector) Pulse(p pulsesim.Pulse) {
	c.pulses.WithLabelValues(p.Level.String()).Inc()
}

// Wave implements pulsesim.Observer.
//
func (c *Collector) Wave(entry string, s pulsesim.WaveStats) {
	c.waves.WithLabelValues(entry).Inc()
	c.wavePulses.Observe(float64(s.Total()))
}

// Handler returns an HTTP handler serving the metrics gathered by g.
//
func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}
