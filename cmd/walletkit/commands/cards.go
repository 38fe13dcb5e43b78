package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"walletkit/internal/domain"
)

func cardsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cards",
		Short: "Manage payment cards",
	}
	cmd.AddCommand(cardsListCmd(), cardsAddCmd(), cardsDeleteCmd())
	return cmd
}

func cardsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List your cards",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cards, err := wire.Wallet.Cards(cmd.Context())
			if err != nil {
				return err
			}
			printCards(cmd.OutOrStdout(), cards)
			return nil
		},
	}
}

func cardsAddCmd() *cobra.Command {
	var (
		card     domain.Card
		cardType string
		cvv      string
	)
	cmd := &cobra.Command{
		Use:   "add <number>",
		Short: "Add a card",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			card.Number = args[0]
			card.Type = domain.CardType(cardType)
			if cvv != "" {
				card.CVV = &cvv
			}
			added, err := wire.Wallet.AddCard(cmd.Context(), card)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added card %s (id %s)\n", added.Masked(), idOf(added.ID))
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVar(&cardType, "type", string(domain.CardCredit), "card type: credit or debit")
	f.StringVar(&card.FullName, "holder", "", "name printed on the card")
	f.StringVar(&card.ExpirationDate, "expires", "", "expiration date, MM/YY")
	f.StringVar(&cvv, "cvv", "", "security code")
	return cmd
}

func cardsDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Remove a card",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cardID, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err := wire.Wallet.DeleteCard(cmd.Context(), cardID); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Card removed")
			return nil
		},
	}
}
