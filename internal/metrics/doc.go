// Stylist - Wardrobe Outfit Compatibility and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stylist

/*
Package metrics provides Prometheus metrics for the stylist service.

All collectors are registered on the default registry through promauto and
are exposed at /metrics by the API router.

# Available Metrics

API:
  - api_requests_total{method, endpoint, status_code}
  - api_request_duration_seconds{method, endpoint}
  - api_active_requests
  - api_rate_limit_hits_total{endpoint}

Recommendations:
  - recommendation_requests_total{occasion, outcome}
    outcome is success, empty_wardrobe, cache_hit, error or timeout
  - recommendation_duration_seconds
  - recommendation_candidates_evaluated
  - pairing_score{level}

Database:
  - duckdb_query_duration_seconds{operation, table}
  - duckdb_query_errors_total{operation, table, error_type}

Cache:
  - cache_hits_total{cache_type}, cache_misses_total{cache_type}
  - cache_entries{cache_type}
  - cache_evictions_total{cache_type, reason}

Circuit breaker (wardrobe store):
  - circuit_breaker_state{name} (0=closed, 1=half-open, 2=open)
  - circuit_breaker_requests_total{name, result}
  - circuit_breaker_consecutive_failures{name}
  - circuit_breaker_state_transitions_total{name, from_state, to_state}

Ingestion:
  - ingest_messages_total{topic, outcome}
  - ingest_processing_duration_seconds{topic}

System:
  - app_info{version, go_version}
  - app_uptime_seconds

# Usage

	start := time.Now()
	res, err := engine.Recommend(ctx, req)
	metrics.RecordRecommendation(string(req.Occasion), outcome, time.Since(start), res.Metadata.CandidatesEvaluated)

# Cardinality

Endpoint labels use chi route patterns, never raw paths, so user IDs do not
become label values.
*/
package metrics
