// Package observability provides application metrics and tracing.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RedisErrorRate counts Redis errors by operation type.
	RedisErrorRate = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "bloglist_redis_error_rate_total",
		Help: "Total number of Redis errors by operation type",
	}, []string{"operation"})

	// AuthFailuresTotal counts rejected authentication attempts by reason.
	// Reasons are coarse ("credentials", "token") so the metric cannot be
	// used to distinguish unknown users from wrong passwords.
	AuthFailuresTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "bloglist_auth_failures_total",
		Help: "Total number of rejected authentication attempts by reason",
	}, []string{"reason"})

	// BlogsCreatedTotal counts successfully created blogs.
	BlogsCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "bloglist_blogs_created_total",
		Help: "Total number of blogs created",
	})

	// BlogsDeletedTotal counts successfully deleted blogs.
	BlogsDeletedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "bloglist_blogs_deleted_total",
		Help: "Total number of blogs deleted",
	})

	// OwnershipDenialsTotal counts blog mutations rejected by the ownership check.
	OwnershipDenialsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "bloglist_ownership_denials_total",
		Help: "Total number of blog mutations rejected because the caller is not the owner",
	})
)
