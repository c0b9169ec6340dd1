package cmd

import (
	"github.com/spf13/cobra"

	"github.com/donaldgifford/emag-catalog/internal/tools"
	domain "github.com/donaldgifford/emag-catalog/pkg/types"
)

func categoriesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List the top-level categories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			backend, err := newBackend()
			if err != nil {
				return err
			}
			list, err := backend.Categories(cmd.Context())
			if err != nil {
				return err
			}
			return printCategoryList(cmd, list)
		},
	}
}

func categoryCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "category <url>",
		Short:   "List the children of a category",
		Example: `  emag-catalog category /nav/it-mobile`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			backend, err := newBackend()
			if err != nil {
				return err
			}
			list, err := backend.Category(cmd.Context(), tools.CategoryInput{URL: args[0]})
			if err != nil {
				return err
			}
			return printCategoryList(cmd, list)
		},
	}
}

func printCategoryList(cmd *cobra.Command, list domain.CategoryList) error {
	if jsonOutput() {
		return outputJSON(cmd.OutOrStdout(), list)
	}
	return printCategoriesTable(cmd.OutOrStdout(), list.Categories)
}
