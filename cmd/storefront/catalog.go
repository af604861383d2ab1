package main

import (
	"github.com/spf13/cobra"

	"github.com/commercekit/storefront/internal/client"
)

func (a *app) productsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "products",
		Short: "Browse the product catalog",
	}

	var params client.ProductListParams
	var inStock bool

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List products",
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("in-stock") {
				params.InStock = &inStock
			}
			products, err := a.client.ListProducts(cmd.Context(), params)
			if err != nil {
				return err
			}
			return printJSON(products)
		},
	}
	listCmd.Flags().IntVar(&params.Skip, "skip", 0, "number of products to skip")
	listCmd.Flags().IntVar(&params.Limit, "limit", 0, "maximum number of products to return")
	listCmd.Flags().StringVar(&params.CategoryID, "category", "", "filter by category id")
	listCmd.Flags().StringVar(&params.Search, "search", "", "search product names and descriptions")
	listCmd.Flags().BoolVar(&inStock, "in-stock", false, "only list products in stock")

	showCmd := &cobra.Command{
		Use:   "show <product-id>",
		Short: "Show one product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			product, err := a.client.GetProduct(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printJSON(product)
		},
	}

	cmd.AddCommand(listCmd, showCmd)
	return cmd
}

func (a *app) categoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List product categories",
		RunE: func(cmd *cobra.Command, args []string) error {
			categories, err := a.client.ListCategories(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(categories)
		},
	}
}

func (a *app) stockCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stock <product-id>",
		Short: "Show the stock level for a product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			stock, err := a.client.GetStock(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printJSON(stock)
		},
	}
}
