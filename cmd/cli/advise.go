package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/urfave/cli/v2"

	"inventory-release/internal/advisor"
	"inventory-release/internal/model"
)

func cmdAdvise(c *cli.Context) error {
	sess, err := advisor.NewSession(model.PolicyParams{
		Q:           c.Float64("q"),
		MinPrice:    c.Float64("min"),
		MaxPrice:    c.Float64("max"),
		A:           c.Float64("a"),
		B:           c.Float64("b"),
		Delta:       c.Float64("delta"),
		HoldingCost: c.Float64("h"),
	})
	if err != nil {
		return err
	}
	return runAdvise(sess, c.App.Reader, c.App.Writer)
}

// runAdvise prompts for one price per day until the last day or a stock-out.
// EOF on input ends the session early.
func runAdvise(sess *advisor.Session, in io.Reader, out io.Writer) error {
	sc := bufio.NewScanner(in)
	prompt := func(msg string) (string, bool) {
		fmt.Fprint(out, msg)
		if !sc.Scan() {
			return "", false
		}
		return strings.TrimSpace(sc.Text()), true
	}

	fmt.Fprintf(out, "Starting with %.0f units\n", sess.Remaining())
	for !sess.Closed() {
		fmt.Fprintf(out, "\nDay %d | on hand: %.1f\n", sess.Day(), sess.Remaining())

		line, ok := prompt("Price today: ")
		if !ok {
			return sc.Err()
		}
		price, err := strconv.ParseFloat(line, 64)
		if err != nil {
			fmt.Fprintln(out, "Please enter a number.")
			continue
		}
		if sess.Warn(price) {
			line, ok = prompt(fmt.Sprintf("Price %.2f looks low. Enter to continue, 'n' to re-enter: ", price))
			if !ok {
				return sc.Err()
			}
			if strings.EqualFold(line, "n") {
				continue
			}
		}

		line, ok = prompt("Last day? (y/n): ")
		if !ok {
			return sc.Err()
		}
		isLast := strings.EqualFold(line, "y")

		adv, err := sess.Advise(price, isLast)
		if err != nil {
			fmt.Fprintf(out, "Error: %v\n", err)
			continue
		}
		fmt.Fprintf(out, "Sell %.1f units (%s), expected revenue %.2f, %.1f left\n",
			adv.Quantity, adv.Stage, adv.ExpectedRevenue, adv.RemainingAfter)
	}

	if sess.Remaining() <= 0 {
		fmt.Fprintln(out, "\nSold out.")
	} else {
		fmt.Fprintln(out, "\nSeason closed.")
	}
	return nil
}
