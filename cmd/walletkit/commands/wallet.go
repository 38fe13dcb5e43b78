package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func balanceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "balance",
		Short: "Show the wallet balance",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := wire.Wallet.Balance(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), money(b))
			return nil
		},
	}
}

func rechargeCmd() *cobra.Command {
	var card int64
	cmd := &cobra.Command{
		Use:   "recharge <amount>",
		Short: "Top up the wallet from a card",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := parseAmount(args[0])
			if err != nil {
				return err
			}
			b, err := wire.Wallet.Recharge(cmd.Context(), amount, card)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Balance: %s\n", money(b))
			return nil
		},
	}
	cmd.Flags().Int64Var(&card, "card", 0, "card id to charge")
	_ = cmd.MarkFlagRequired("card")
	return cmd
}

func investmentCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "investment",
		Short: "Show the invested total",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			inv, err := wire.Wallet.Investment(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), money(inv))
			return nil
		},
	}
}

func investCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "invest <amount>",
		Short: "Move funds from the balance into the investment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := parseAmount(args[0])
			if err != nil {
				return err
			}
			inv, err := wire.Wallet.Invest(cmd.Context(), amount)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Investment: %s\n", money(inv))
			return nil
		},
	}
}

func divestCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "divest <amount>",
		Short: "Move funds from the investment back to the balance",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := parseAmount(args[0])
			if err != nil {
				return err
			}
			inv, err := wire.Wallet.Divest(cmd.Context(), amount)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Investment: %s\n", money(inv))
			return nil
		},
	}
}

func returnsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "returns",
		Short: "Show daily investment returns",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			series, err := wire.Wallet.DailyReturns(cmd.Context())
			if err != nil {
				return err
			}
			printSeries(cmd.OutOrStdout(), series)
			return nil
		},
	}
}

func interestCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "interest",
		Short: "Show daily balance interest",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			series, err := wire.Wallet.DailyInterest(cmd.Context())
			if err != nil {
				return err
			}
			printSeries(cmd.OutOrStdout(), series)
			return nil
		},
	}
}

func detailsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "details",
		Short: "Show balance, investment and cards together",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := wire.Wallet.Details(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Balance:    %s\n", money(d.Balance))
			fmt.Fprintf(out, "Investment: %s\n", money(d.Investment))
			fmt.Fprintln(out)
			printCards(out, d.Cards)
			return nil
		},
	}
}
