package rules

// RecordingRules returns a PrometheusRule CR containing pre-computed rate
// expressions used by dashboards and alert rules.
func RecordingRules() PrometheusRule {
	return PrometheusRule{
		APIVersion: "monitoring.coreos.com/v1",
		Kind:       "PrometheusRule",
		Metadata: PrometheusRuleMetadata{
			Name: "emag-catalog-recording-rules",
			Labels: map[string]string{
				"prometheus": "system-rules-prometheus",
			},
		},
		Spec: PrometheusRuleSpec{
			Groups: []RuleGroup{
				{
					Name: "emag-catalog-recording",
					Rules: []Rule{
						{
							Record: "emag:http_requests:rate5m",
							Expr:   `sum(rate(emag_http_requests_total[5m]))`,
						},
						{
							Record: "emag:http_errors:rate5m",
							Expr:   `sum(rate(emag_http_requests_total{status=~"5.."}[5m]))`,
						},
						{
							Record: "emag:tool_calls:rate5m",
							Expr:   `sum(rate(emag_tool_calls_total[5m]))`,
						},
						{
							Record: "emag:tool_errors:rate5m",
							Expr:   `sum(rate(emag_tool_calls_total{status="error"}[5m]))`,
						},
						{
							Record: "emag:upstream_requests:rate5m",
							Expr:   `sum(rate(emag_upstream_requests_total[5m]))`,
						},
						{
							Record: "emag:upstream_failures:rate5m",
							Expr:   `sum(rate(emag_upstream_requests_total{outcome!="ok"}[5m]))`,
						},
					},
				},
			},
		},
	}
}
