package panels

import (
	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// UpstreamOutcomes returns a timeseries panel showing eMAG API requests per
// second stacked by outcome.
func UpstreamOutcomes() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("eMAG Requests").
		Description("eMAG API requests per second by outcome").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(8).
		WithTarget(PromQuery(
			`sum by (outcome) (rate(emag_upstream_requests_total{`+Job+`}[5m]))`,
			"{{outcome}}", "A",
		)).
		Unit("reqps").
		FillOpacity(30).
		LineWidth(1).
		Legend(TableLegend("mean", "max")).
		Tooltip(MultiTooltip()).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}

// UpstreamLatency returns a timeseries panel showing p50 and p95 eMAG API
// latency.
func UpstreamLatency() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("eMAG Latency").
		Description("eMAG API request duration percentiles").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(8).
		WithTarget(PromQuery(
			`histogram_quantile(0.50, sum by (le) (rate(emag_upstream_request_duration_seconds_bucket{`+Job+`}[5m])))`,
			"p50", "A",
		)).
		WithTarget(PromQuery(
			`histogram_quantile(0.95, sum by (le) (rate(emag_upstream_request_duration_seconds_bucket{`+Job+`}[5m])))`,
			"p95", "B",
		)).
		Unit("s").
		FillOpacity(10).
		LineWidth(2).
		Legend(TableLegend("mean", "max")).
		Tooltip(MultiTooltip()).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}

// TokenProbes returns a timeseries panel showing session credential probes
// by outcome.
func TokenProbes() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Credential Probes").
		Description("Session credential probes per second by outcome (ok, missing, error)").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(8).
		WithTarget(PromQuery(
			`sum by (outcome) (rate(emag_token_probes_total{`+Job+`}[5m]))`,
			"{{outcome}}", "A",
		)).
		FillOpacity(10).
		LineWidth(2).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}
