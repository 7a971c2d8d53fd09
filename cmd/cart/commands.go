package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/dwikikusuma/food-storefront/internal/storefront"
	"github.com/spf13/cobra"
)

func newRootCmd(c *cli) *cobra.Command {
	root := &cobra.Command{
		Use:           "cart",
		Short:         "Browse the food store and manage your cart",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetIn(c.in)
	root.SetOut(c.out)

	root.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List every product",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return c.run(cmd, storefront.Event{Kind: storefront.EventList})
			},
		},
		&cobra.Command{
			Use:   "search QUERY",
			Short: "Filter products by name or description",
			Args:  cobra.ArbitraryArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return c.run(cmd, storefront.Event{Kind: storefront.EventSearch, Query: strings.Join(args, " ")})
			},
		},
		productCmd(c, "add", "Add one unit of a product to the cart", storefront.EventAdd),
		productCmd(c, "inc", "Increase a cart line by one", storefront.EventIncrease),
		productCmd(c, "dec", "Decrease a cart line by one", storefront.EventDecrease),
		productCmd(c, "remove", "Remove a product from the cart", storefront.EventRemove),
		&cobra.Command{
			Use:   "show",
			Short: "Show the cart and its total",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return c.run(cmd, storefront.Event{Kind: storefront.EventViewCart})
			},
		},
		clearCmd(c),
		checkoutCmd(c),
	)
	return root
}

func productCmd(c *cli, use, short string, kind storefront.EventKind) *cobra.Command {
	return &cobra.Command{
		Use:   use + " PRODUCT_ID",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.run(cmd, storefront.Event{Kind: kind, ProductID: args[0]})
		},
	}
}

func clearCmd(c *cli) *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Empty the cart",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			confirmed := yes
			if !confirmed {
				fmt.Fprint(cmd.OutOrStdout(), "Clear cart? [y/N] ")
				answer, _ := readLine(cmd.InOrStdin())
				confirmed = strings.EqualFold(answer, "y") || strings.EqualFold(answer, "yes")
			}
			return c.run(cmd, storefront.Event{Kind: storefront.EventClear, Confirmed: confirmed})
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip the confirmation prompt")
	return cmd
}

func checkoutCmd(c *cli) *cobra.Command {
	var name string
	cmd := &cobra.Command{
		Use:   "checkout",
		Short: "Place a demo order and empty the cart",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ev := storefront.Event{Kind: storefront.EventCheckout, Name: name}
			if !cmd.Flags().Changed("name") {
				ev.Prompter = linePrompter{in: cmd.InOrStdin(), out: cmd.OutOrStdout()}
			}
			return c.run(cmd, ev)
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "name for the order (prompted when omitted)")
	return cmd
}

func (c *cli) run(cmd *cobra.Command, ev storefront.Event) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	a, err := c.open(ctx)
	if err != nil {
		return err
	}
	defer a.Close()

	view, err := a.Dispatcher.Dispatch(ctx, ev)
	if err != nil {
		return err
	}
	render(cmd.OutOrStdout(), ev.Kind, view)
	return nil
}

// linePrompter reads the order name from a single input line, keeping
// everything but the line ending. End of input with nothing typed counts as
// cancelling the prompt.
type linePrompter struct {
	in  io.Reader
	out io.Writer
}

func (p linePrompter) PromptName(_ context.Context, message string) (string, bool) {
	fmt.Fprint(p.out, message+" ")
	line, err := bufio.NewReader(p.in).ReadString('\n')
	line = strings.TrimRight(line, "\r\n")
	if err != nil && line == "" {
		return "", false
	}
	return line, true
}

func readLine(r io.Reader) (string, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	return strings.TrimSpace(line), err
}
