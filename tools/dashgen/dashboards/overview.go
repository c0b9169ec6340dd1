// Package dashboards assembles Grafana dashboard definitions from panel builders.
package dashboards

import (
	"github.com/grafana/grafana-foundation-sdk/go/dashboard"

	"github.com/donaldgifford/emag-catalog/tools/dashgen/panels"
)

// OverviewUID is the stable dashboard UID.
const OverviewUID = "emag-catalog-overview"

// BuildOverview constructs the eMAG Catalog dashboard with all metric rows.
func BuildOverview() *dashboard.DashboardBuilder {
	b := dashboard.NewDashboardBuilder("eMAG Catalog").
		Uid(OverviewUID).
		Tags([]string{"emag", "emag-catalog", "mcp"}).
		Refresh("30s").
		Time("now-6h", "now").
		Timezone("browser").
		Editable().
		Tooltip(dashboard.DashboardCursorSyncCrosshair).
		WithVariable(datasourceVar())

	// Row 1: Overview.
	b.WithRow(dashboard.NewRowBuilder("Overview").
		WithPanel(panels.HealthzStat()).
		WithPanel(panels.ReadyzStat()).
		WithPanel(panels.RedirectsStat()).
		WithPanel(panels.UptimeStat()))

	// Row 2: Tools.
	b.WithRow(dashboard.NewRowBuilder("Tools").
		WithPanel(panels.ToolCallRate()).
		WithPanel(panels.ToolLatency()).
		WithPanel(panels.ToolErrorRate()))

	// Row 3: eMAG API.
	b.WithRow(dashboard.NewRowBuilder("eMAG API").
		WithPanel(panels.UpstreamOutcomes()).
		WithPanel(panels.UpstreamLatency()).
		WithPanel(panels.TokenProbes()))

	// Row 4: HTTP.
	b.WithRow(dashboard.NewRowBuilder("HTTP").
		WithPanel(panels.RequestRate()).
		WithPanel(panels.LatencyPercentiles()).
		WithPanel(panels.ErrorRate()))

	return b
}

func datasourceVar() *dashboard.DatasourceVariableBuilder {
	return dashboard.NewDatasourceVariableBuilder("datasource").
		Label("Datasource").
		Type("prometheus")
}
