// Package validate checks generated dashboards and rules against the set of
// metrics the service exports.
package validate

import (
	"encoding/json"
	"fmt"

	"github.com/grafana/grafana-foundation-sdk/go/dashboard"
	"github.com/prometheus/prometheus/promql/parser"

	"github.com/donaldgifford/emag-catalog/tools/dashgen/rules"
)

// Result collects validation findings. Errors fail generation; warnings
// do not.
type Result struct {
	Errors   []string
	Warnings []string
}

// Ok reports whether no errors were found.
func (r *Result) Ok() bool {
	return len(r.Errors) == 0
}

func (r *Result) errorf(format string, args ...any) {
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
}

func (r *Result) warnf(format string, args ...any) {
	r.Warnings = append(r.Warnings, fmt.Sprintf(format, args...))
}

// Dashboard parses every panel query and checks that it references only
// known metrics.
func Dashboard(dash dashboard.Dashboard, known map[string]bool) *Result {
	res := &Result{}

	data, err := json.Marshal(dash)
	if err != nil {
		res.errorf("marshaling dashboard: %v", err)
		return res
	}
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		res.errorf("decoding dashboard: %v", err)
		return res
	}

	exprs := collectExprs(doc, nil)
	if len(exprs) == 0 {
		res.warnf("dashboard has no queries")
	}
	for _, expr := range exprs {
		checkExpr(res, "dashboard", expr, known)
	}
	return res
}

// Rules parses every rule expression. Metrics recorded by the rules
// themselves count as known.
func Rules(cr rules.PrometheusRule, known map[string]bool) *Result {
	res := &Result{}

	all := make(map[string]bool, len(known))
	for name := range known {
		all[name] = true
	}
	for _, g := range cr.Spec.Groups {
		for _, rule := range g.Rules {
			if rule.Record != "" {
				all[rule.Record] = true
			}
		}
	}

	for _, g := range cr.Spec.Groups {
		if len(g.Rules) == 0 {
			res.warnf("group %s has no rules", g.Name)
		}
		for _, rule := range g.Rules {
			name := rule.Record
			if name == "" {
				name = rule.Alert
			}
			if name == "" {
				res.errorf("group %s: rule has neither record nor alert", g.Name)
				continue
			}
			checkExpr(res, name, rule.Expr, all)
		}
	}
	return res
}

func checkExpr(res *Result, where, expr string, known map[string]bool) {
	node, err := parser.ParseExpr(expr)
	if err != nil {
		res.errorf("%s: invalid PromQL %q: %v", where, expr, err)
		return
	}

	parser.Inspect(node, func(n parser.Node, _ []parser.Node) error {
		vs, ok := n.(*parser.VectorSelector)
		if !ok || vs.Name == "" {
			return nil
		}
		if !known[vs.Name] {
			res.errorf("%s: unknown metric %s", where, vs.Name)
		}
		return nil
	})
}

// collectExprs walks a decoded dashboard and returns the expr of every
// query target.
func collectExprs(v any, out []string) []string {
	switch node := v.(type) {
	case map[string]any:
		if targets, ok := node["targets"].([]any); ok {
			for _, t := range targets {
				if q, ok := t.(map[string]any); ok {
					if expr, ok := q["expr"].(string); ok && expr != "" {
						out = append(out, expr)
					}
				}
			}
		}
		for key, child := range node {
			if key == "targets" {
				continue
			}
			out = collectExprs(child, out)
		}
	case []any:
		for _, child := range node {
			out = collectExprs(child, out)
		}
	}
	return out
}
