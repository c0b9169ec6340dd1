package rules

// AlertRules returns a PrometheusRule CR containing alert rules for
// emag-catalog operational monitoring.
func AlertRules() PrometheusRule {
	return PrometheusRule{
		APIVersion: "monitoring.coreos.com/v1",
		Kind:       "PrometheusRule",
		Metadata: PrometheusRuleMetadata{
			Name: "emag-catalog-alerts",
			Labels: map[string]string{
				"prometheus": "system-rules-prometheus",
			},
		},
		Spec: PrometheusRuleSpec{
			Groups: []RuleGroup{
				{
					Name: "emag-catalog-alerts",
					Rules: []Rule{
						{
							Alert: "EmagCatalogDown",
							Expr:  `absent(up{job="emag-catalog"})`,
							For:   "2m",
							Labels: map[string]string{
								"severity": "critical",
							},
							Annotations: map[string]string{
								"summary":     "eMAG Catalog is down",
								"description": "The emag-catalog job has been absent for more than 2 minutes.",
							},
						},
						{
							Alert: "EmagCatalogNotReady",
							Expr:  `emag_readyz_up == 0`,
							For:   "5m",
							Labels: map[string]string{
								"severity": "critical",
							},
							Annotations: map[string]string{
								"summary":     "eMAG session credential unavailable",
								"description": "The readiness probe could not obtain an eMAG session credential for more than 5 minutes.",
							},
						},
						{
							Alert: "EmagCatalogHighErrorRate",
							Expr:  `emag:http_errors:rate5m / emag:http_requests:rate5m > 0.05`,
							For:   "5m",
							Labels: map[string]string{
								"severity": "warning",
							},
							Annotations: map[string]string{
								"summary":     "High HTTP error rate on eMAG Catalog",
								"description": "More than 5% of HTTP requests are returning 5xx errors over the last 5 minutes.",
							},
						},
						{
							Alert: "EmagUpstreamFailures",
							Expr:  `emag:upstream_failures:rate5m / emag:upstream_requests:rate5m > 0.2`,
							For:   "10m",
							Labels: map[string]string{
								"severity": "warning",
							},
							Annotations: map[string]string{
								"summary":     "eMAG API requests are failing",
								"description": "More than 20% of eMAG API requests failed over the last 10 minutes.",
							},
						},
						{
							Alert: "EmagAuthFailures",
							Expr:  `increase(emag_upstream_requests_total{outcome="auth"}[5m]) > 0`,
							For:   "1m",
							Labels: map[string]string{
								"severity": "warning",
							},
							Annotations: map[string]string{
								"summary":     "eMAG rejected the session credential",
								"description": "eMAG answered 401 or 403. The credential is not refreshed and the process needs a restart.",
							},
						},
					},
				},
			},
		},
	}
}
