// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package meterlist

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/ava-labs/linear/utils/wrappers"
)

func newCounterMetric(namespace, name string) prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      name,
		Help:      fmt.Sprintf("# of times a %s occurred", name),
	})
}

type metrics struct {
	push,
	pop,
	splice,
	clear prometheus.Counter

	size prometheus.Gauge
}

func (m *metrics) Initialize(
	namespace string,
	registerer prometheus.Registerer,
) error {
	m.push = newCounterMetric(namespace, "push")
	m.pop = newCounterMetric(namespace, "pop")
	m.splice = newCounterMetric(namespace, "splice")
	m.clear = newCounterMetric(namespace, "clear")
	m.size = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "size",
		Help:      "current number of elements in the list",
	})

	errs := wrappers.Errs{}
	errs.Add(
		registerer.Register(m.push),
		registerer.Register(m.pop),
		registerer.Register(m.splice),
		registerer.Register(m.clear),
		registerer.Register(m.size),
	)
	return errs.Err
}
