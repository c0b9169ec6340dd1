package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/donaldgifford/emag-catalog/internal/tools"
)

type searchFlags struct {
	category int
	filters  []string
	offset   int
	minPrice float64
	maxPrice float64
}

func searchCommand() *cobra.Command {
	var f searchFlags

	cmd := &cobra.Command{
		Use:   "search [query]",
		Short: "Search the catalog",
		Long: "Runs a faceted search. Facet ids and option ids come from the filters\n" +
			"of a previous result. When eMAG maps the query onto a category the\n" +
			"command prints the category to search in instead.",
		Example: `  emag-catalog search laptop
  emag-catalog search --category 2172 --filter 7885=31004,31005
  emag-catalog search macbook --min-price 3000 --max-price 6000 --offset 60`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := f.input(cmd, args)
			if err != nil {
				return err
			}

			backend, err := newBackend()
			if err != nil {
				return err
			}
			res, err := backend.Search(cmd.Context(), in)
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), res)
			}
			return printSearchResult(cmd.OutOrStdout(), res)
		},
	}

	cmd.Flags().IntVar(&f.category, "category", 0, "category id to search within")
	cmd.Flags().StringArrayVar(&f.filters, "filter", nil, "facet filter as <facet>=<option>[,<option>...] (repeatable)")
	cmd.Flags().IntVar(&f.offset, "offset", 0, "count of items to skip")
	cmd.Flags().Float64Var(&f.minPrice, "min-price", 0, "minimum price in RON (requires --max-price)")
	cmd.Flags().Float64Var(&f.maxPrice, "max-price", 0, "maximum price in RON (requires --min-price)")

	return cmd
}

// input builds the request from the flags that were actually set.
func (f *searchFlags) input(cmd *cobra.Command, args []string) (tools.SearchInput, error) {
	var in tools.SearchInput
	if len(args) == 1 {
		in.Query = args[0]
	}

	flags := cmd.Flags()
	if flags.Changed("category") {
		in.Category = &f.category
	}
	if flags.Changed("offset") {
		in.PageOffset = &f.offset
	}
	if flags.Changed("min-price") {
		in.MinPrice = &f.minPrice
	}
	if flags.Changed("max-price") {
		in.MaxPrice = &f.maxPrice
	}

	filters, err := parseFilters(f.filters)
	if err != nil {
		return tools.SearchInput{}, err
	}
	in.Filters = filters

	return in, nil
}

// parseFilters turns "7885=31004,31005" entries into the facet map.
// Repeating a facet appends to its options.
func parseFilters(raw []string) (map[string][]int, error) {
	if len(raw) == 0 {
		return nil, nil
	}

	out := make(map[string][]int, len(raw))
	for _, entry := range raw {
		facet, options, ok := strings.Cut(entry, "=")
		facet = strings.TrimSpace(facet)
		if !ok || facet == "" || options == "" {
			return nil, fmt.Errorf("invalid filter %q: want <facet>=<option>[,<option>...]", entry)
		}
		for _, opt := range strings.Split(options, ",") {
			id, err := strconv.Atoi(strings.TrimSpace(opt))
			if err != nil {
				return nil, fmt.Errorf("invalid option %q in filter %q: %w", opt, entry, err)
			}
			out[facet] = append(out[facet], id)
		}
	}
	return out, nil
}
