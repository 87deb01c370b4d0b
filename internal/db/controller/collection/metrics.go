package collection

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// mutations counts committed and failed mutations per collection.
var mutations = promauto.NewCounterVec( //nolint:gochecknoglobals
	prometheus.CounterOpts{
		Name: "collection_mutations_total",
		Help: "Number of collection mutations, differentiated by collection, kind and result.",
	},
	[]string{"collection", "kind", "result"},
)

func observe(collection, kind string, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}

	mutations.WithLabelValues(collection, kind, result).Inc()
}
