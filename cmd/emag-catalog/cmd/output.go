package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	domain "github.com/donaldgifford/emag-catalog/pkg/types"
)

// tabWriter wraps tabwriter with error tracking.
type tabWriter struct {
	*tabwriter.Writer
	err error
}

func newTabWriter(w io.Writer) *tabWriter {
	return &tabWriter{Writer: tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)}
}

func (tw *tabWriter) writef(format string, args ...any) {
	if tw.err != nil {
		return
	}
	_, tw.err = fmt.Fprintf(tw.Writer, format, args...)
}

func (tw *tabWriter) finish() error {
	if tw.err != nil {
		return tw.err
	}
	return tw.Flush()
}

func printCategoriesTable(w io.Writer, categories []domain.Category) error {
	tw := newTabWriter(w)
	tw.writef("ID\tNAME\tURL\n")
	for i := range categories {
		tw.writef("%s\t%s\t%s\n",
			dash(categories[i].ID),
			categories[i].Name,
			categories[i].URL,
		)
	}
	return tw.finish()
}

func printSearchResult(w io.Writer, res domain.SearchResult) error {
	if res.IsRedirect() {
		_, err := fmt.Fprintln(w, res.Message)
		return err
	}

	tw := newTabWriter(w)
	tw.writef("PRODUCT ID\tTITLE\tPRICE\tRATING\tAVAILABILITY\n")
	for i := range res.Items {
		item := &res.Items[i]
		tw.writef("%s\t%s\t%s\t%s\t%s\n",
			item.ProductID,
			truncate(item.Title, 60),
			dash(item.Price),
			rating(item.Rating, item.RatingCount),
			dash(item.Availability),
		)
	}
	tw.writef("\nNext page offset:\t%d\n", res.NextPageOffset)

	for i := range res.Filters {
		f := &res.Filters[i]
		opts := make([]string, 0, len(f.Options))
		for _, o := range f.Options {
			opts = append(opts, o.ID+"="+o.Name)
		}
		tw.writef("Filter %s (%s):\t%s\n", f.ID, f.Name, truncate(strings.Join(opts, ", "), 80))
	}
	return tw.finish()
}

func printProductDetail(w io.Writer, p *domain.ProductDetail) error {
	tw := newTabWriter(w)
	tw.writef("Product ID:\t%s\n", p.ProductID)
	tw.writef("Title:\t%s\n", p.Title)
	tw.writef("Rating:\t%s\n", rating(p.Rating, p.RatingCount))
	for _, v := range p.OtherOptions {
		marker := ""
		if v.IsSelected {
			marker = " (selected)"
		}
		tw.writef("%s:\t%s %s%s\n", v.Title, v.Label, dash(v.Price), marker)
	}
	if err := tw.finish(); err != nil {
		return err
	}

	for _, spec := range p.Specifications {
		if _, err := fmt.Fprintf(w, "\n%s\n", spec); err != nil {
			return err
		}
	}
	return nil
}

func printReviewsTable(w io.Writer, reviews []domain.Review) error {
	tw := newTabWriter(w)
	tw.writef("RATING\tVOTES\tBOUGHT\tTITLE\tCONTENT\n")
	for i := range reviews {
		r := &reviews[i]
		tw.writef("%s\t%s\t%s\t%s\t%s\n",
			optional(r.Rating, "%.0f"),
			optional(r.Votes, "%d"),
			optional(r.ActuallyBought, "%t"),
			dash(truncate(r.Title, 30)),
			truncate(strings.ReplaceAll(r.Content, "\n", " "), 60),
		)
	}
	return tw.finish()
}

func outputJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func rating(r *float64, count *int) string {
	if r == nil {
		return "-"
	}
	if count == nil {
		return fmt.Sprintf("%.1f", *r)
	}
	return fmt.Sprintf("%.1f (%d)", *r, *count)
}

func optional[T any](v *T, format string) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf(format, *v)
}

func dash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

// truncate shortens s to maxLen runes.
func truncate(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	return string(r[:maxLen-3]) + "..."
}
