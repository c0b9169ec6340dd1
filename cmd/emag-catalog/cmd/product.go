package cmd

import (
	"github.com/spf13/cobra"

	"github.com/donaldgifford/emag-catalog/internal/tools"
)

func productCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "product <product-id>",
		Short:   "Show a product page",
		Example: `  emag-catalog product D5Q2XYBBM`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			backend, err := newBackend()
			if err != nil {
				return err
			}
			p, err := backend.Product(cmd.Context(), tools.ProductInput{ProductID: args[0]})
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), p)
			}
			return printProductDetail(cmd.OutOrStdout(), &p)
		},
	}
}

func reviewsCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "reviews <product-id>",
		Short:   "Show the reviews of a product",
		Example: `  emag-catalog reviews D5Q2XYBBM --output json`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			backend, err := newBackend()
			if err != nil {
				return err
			}
			list, err := backend.Reviews(cmd.Context(), tools.ProductInput{ProductID: args[0]})
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), list)
			}
			return printReviewsTable(cmd.OutOrStdout(), list.Reviews)
		},
	}
}
