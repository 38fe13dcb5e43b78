package commands

import (
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/shopspring/decimal"

	"walletkit/internal/domain"
)

func parseAmount(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("invalid amount %q", s)
	}
	return d, nil
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q", s)
	}
	return id, nil
}

func money(d decimal.Decimal) string { return d.StringFixed(2) }

func idOf(p *int64) string {
	if p == nil {
		return "-"
	}
	return strconv.FormatInt(*p, 10)
}

func date(t *time.Time) string {
	if t == nil {
		return "-"
	}
	return t.Local().Format(time.DateTime)
}

func printCards(w io.Writer, cards []domain.Card) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNUMBER\tTYPE\tHOLDER\tEXPIRES")
	for _, c := range cards {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", idOf(c.ID), c.Masked(), c.Type, c.FullName, c.ExpirationDate)
	}
	_ = tw.Flush()
}

func printSeries(w io.Writer, series []domain.DailyValue) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "DATE\tVALUE")
	for _, v := range series {
		fmt.Fprintf(tw, "%s\t%s\n", v.Date, money(v.Value))
	}
	_ = tw.Flush()
}

func printPayment(w io.Writer, p domain.PaymentInfo) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "id:\t%s\n", idOf(p.ID))
	if p.LinkUUID != nil {
		fmt.Fprintf(tw, "link:\t%s\n", p.LinkUUID)
	}
	fmt.Fprintf(tw, "amount:\t%s\n", money(p.Amount))
	fmt.Fprintf(tw, "status:\t%s\n", p.Status)
	fmt.Fprintf(tw, "from:\t%s\n", p.PayerName)
	fmt.Fprintf(tw, "to:\t%s\n", p.ReceiverName)
	fmt.Fprintf(tw, "description:\t%s\n", p.Description)
	fmt.Fprintf(tw, "created:\t%s\n", date(p.CreatedAt))
	_ = tw.Flush()
}

func printPayments(w io.Writer, payments []domain.PaymentInfo) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tAMOUNT\tSTATUS\tFROM\tTO\tDESCRIPTION")
	for _, p := range payments {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
			idOf(p.ID), money(p.Amount), p.Status, p.PayerName, p.ReceiverName, p.Description)
	}
	_ = tw.Flush()
}
