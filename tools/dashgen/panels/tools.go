package panels

import (
	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// ToolCallRate returns a timeseries panel showing catalog operations per
// second, split by tool.
func ToolCallRate() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Tool Calls").
		Description("Catalog operations per second by tool").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(8).
		WithTarget(PromQuery(
			`sum by (tool) (rate(emag_tool_calls_total{`+Job+`}[5m]))`,
			"{{tool}}", "A",
		)).
		Unit("reqps").
		FillOpacity(10).
		LineWidth(2).
		Legend(TableLegend("mean", "max")).
		Tooltip(MultiTooltip()).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}

// ToolLatency returns a timeseries panel showing the p95 duration of each
// catalog operation.
func ToolLatency() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Tool Latency (p95)").
		Description("95th percentile catalog operation duration by tool").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(8).
		WithTarget(PromQuery(
			`histogram_quantile(0.95, sum by (le, tool) (rate(emag_tool_call_duration_seconds_bucket{`+Job+`}[5m])))`,
			"{{tool}}", "A",
		)).
		Unit("s").
		FillOpacity(10).
		LineWidth(2).
		Tooltip(MultiTooltip()).
		Thresholds(ThresholdsGreenYellowRed(2, 5)).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}

// ToolErrorRate returns a timeseries panel showing failed catalog
// operations as a percentage. Rejected input is not counted as a failure.
func ToolErrorRate() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Tool Error Rate %").
		Description("Catalog operations that failed upstream as percentage of all calls").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(8).
		WithTarget(PromQuery(`emag:tool_errors:rate5m / emag:tool_calls:rate5m * 100`, "error %", "A")).
		Unit("percent").
		FillOpacity(10).
		LineWidth(2).
		Thresholds(ThresholdsGreenYellowRed(1, 5)).
		ColorScheme(ColorSchemeThresholds()).
		DrawStyle(common.GraphDrawStyleLine)
}
