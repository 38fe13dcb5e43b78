package commands

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"walletkit/internal/domain"
)

func payCmd() *cobra.Command {
	var (
		to          int64
		link        string
		card        int64
		description string
	)
	cmd := &cobra.Command{
		Use:   "pay <amount>",
		Short: "Pay another user or a payment link",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := parseAmount(args[0])
			if err != nil {
				return err
			}
			req := domain.PaymentRequest{Amount: amount, Description: description}
			flags := cmd.Flags()
			if flags.Changed("to") {
				req.ReceiverID = &to
			}
			if flags.Changed("link") {
				u, err := uuid.Parse(link)
				if err != nil {
					return fmt.Errorf("invalid link %q", link)
				}
				req.LinkUUID = &u
			}
			if flags.Changed("card") {
				req.CardID = &card
			}
			p, err := wire.Payments.MakePayment(cmd.Context(), req)
			if err != nil {
				return err
			}
			printPayment(cmd.OutOrStdout(), p)
			return nil
		},
	}
	f := cmd.Flags()
	f.Int64Var(&to, "to", 0, "receiver user id")
	f.StringVar(&link, "link", "", "payment link uuid")
	f.Int64Var(&card, "card", 0, "charge this card instead of the balance")
	f.StringVar(&description, "description", "", "payment description")
	cmd.MarkFlagsMutuallyExclusive("to", "link")
	cmd.MarkFlagsOneRequired("to", "link")
	return cmd
}

func paymentsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "payments",
		Short: "List payment history",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			history, err := wire.Payments.History(cmd.Context())
			if err != nil {
				return err
			}
			printPayments(cmd.OutOrStdout(), history)
			return nil
		},
	}
}

func paymentCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "payment",
		Short: "Look up payments and manage payment links",
	}
	cmd.AddCommand(paymentGetCmd(), paymentLinkCmd())
	return cmd
}

func paymentGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show one payment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			paymentID, err := parseID(args[0])
			if err != nil {
				return err
			}
			p, err := wire.Payments.GetPayment(cmd.Context(), paymentID)
			if err != nil {
				return err
			}
			printPayment(cmd.OutOrStdout(), p)
			return nil
		},
	}
}

func paymentLinkCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "link",
		Short: "Create or inspect payment links",
	}
	cmd.AddCommand(paymentLinkCreateCmd(), paymentLinkShowCmd())
	return cmd
}

func paymentLinkCreateCmd() *cobra.Command {
	var description string
	cmd := &cobra.Command{
		Use:   "create <amount>",
		Short: "Create a link others can pay",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := parseAmount(args[0])
			if err != nil {
				return err
			}
			l, err := wire.Payments.GenerateLink(cmd.Context(), amount, description)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Link: %s\n", l.UUID)
			if l.URL != "" {
				fmt.Fprintf(out, "URL:  %s\n", l.URL)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&description, "description", "", "what the payment is for")
	return cmd
}

func paymentLinkShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <uuid>",
		Short: "Show the payment behind a link",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			u, err := uuid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("invalid link %q", args[0])
			}
			p, err := wire.Payments.GetPaymentByLink(cmd.Context(), u)
			if err != nil {
				return err
			}
			printPayment(cmd.OutOrStdout(), p)
			return nil
		},
	}
}
