// Package cli implements the interactive console for the banking ledger:
// the top-level menu loop, line tokenization, and text rendering of the
// core's structured outputs. All errors from the core are rendered as a
// single diagnostic line and return the user to the menu.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"

	"bank-ledger/model"
	"bank-ledger/statement"
	"bank-ledger/storage"
)

// CLI drives the menu loop against the core stores and the statement engine.
// Input and output are injected so tests can drive the loop with buffers.
type CLI struct {
	in     *bufio.Scanner
	out    io.Writer
	ledger storage.LedgerStore
	rules  storage.RuleStore
	engine *statement.Engine
}

// New creates a CLI reading commands from in and writing to out.
func New(in io.Reader, out io.Writer, ledger storage.LedgerStore, rules storage.RuleStore, engine *statement.Engine) *CLI {
	return &CLI{
		in:     bufio.NewScanner(in),
		out:    out,
		ledger: ledger,
		rules:  rules,
		engine: engine,
	}
}

// Run executes the menu loop until the user quits or input is exhausted.
func (c *CLI) Run() {
	first := true
	for {
		if first {
			fmt.Fprintln(c.out, "\nWelcome to AwesomeGIC Bank! What would you like to do?")
			first = false
		} else {
			fmt.Fprintln(c.out, "\nIs there anything else you'd like to do?")
		}
		c.printMenu()

		line, ok := c.readLine()
		if !ok {
			break
		}
		choice := strings.ToUpper(strings.TrimSpace(line))
		if choice == "" || choice[0] == 'Q' {
			break
		}
		switch choice[0] {
		case 'T':
			c.inputTransaction()
		case 'I':
			c.defineInterestRule()
		case 'P':
			c.printStatement()
		default:
			fmt.Fprintln(c.out, "Invalid option. Please try again.")
		}
	}
	fmt.Fprintln(c.out, "\nThank you for banking with AwesomeGIC Bank.")
	fmt.Fprintln(c.out, "Have a nice day!")
}

func (c *CLI) printMenu() {
	fmt.Fprintln(c.out, "[T] Input Transactions")
	fmt.Fprintln(c.out, "[I] Define Interest Rules")
	fmt.Fprintln(c.out, "[P] Print Statement")
	fmt.Fprintln(c.out, "[Q] Quit")
	fmt.Fprint(c.out, "> ")
}

func (c *CLI) readLine() (string, bool) {
	if !c.in.Scan() {
		return "", false
	}
	return c.in.Text(), true
}

// prompt prints the sub-menu prompt and returns the trimmed input line, or
// false if the user entered a blank line (back to menu) or input ended.
func (c *CLI) prompt(lines ...string) (string, bool) {
	for _, l := range lines {
		fmt.Fprintln(c.out, l)
	}
	fmt.Fprint(c.out, "> ")
	line, ok := c.readLine()
	line = strings.TrimSpace(line)
	if !ok || line == "" {
		return "", false
	}
	return line, true
}

func (c *CLI) inputTransaction() {
	line, ok := c.prompt(
		"\nPlease enter transaction details in <Date> <Account> <Type> <Amount> format",
		"(or enter blank to go back to main menu):")
	if !ok {
		return
	}

	parts := strings.Fields(line)
	if len(parts) != 4 {
		fmt.Fprintln(c.out, "Invalid format. Please try again.")
		return
	}

	date, err := model.ParseDate(parts[0])
	if err != nil {
		fmt.Fprintln(c.out, err)
		return
	}
	accountID := parts[1]
	typ, err := model.ParseTransactionType(parts[2])
	if err != nil {
		fmt.Fprintln(c.out, err)
		return
	}
	amount, err := decimal.NewFromString(parts[3])
	if err != nil {
		fmt.Fprintln(c.out, storage.ErrInvalidAmount)
		return
	}

	if _, err := c.ledger.Record(date, accountID, typ, amount); err != nil {
		fmt.Fprintln(c.out, err)
		return
	}
	fmt.Fprint(c.out, renderTransactions(accountID, c.ledger.Transactions(accountID)))
}

func (c *CLI) defineInterestRule() {
	line, ok := c.prompt(
		"\nPlease enter interest rules details in <Date> <RuleId> <Rate in %> format",
		"(or enter blank to go back to main menu):")
	if !ok {
		return
	}

	parts := strings.Fields(line)
	if len(parts) != 3 {
		fmt.Fprintln(c.out, "Invalid format. Please try again.")
		return
	}

	date, err := model.ParseDate(parts[0])
	if err != nil {
		fmt.Fprintln(c.out, err)
		return
	}
	rate, err := decimal.NewFromString(parts[2])
	if err != nil {
		fmt.Fprintln(c.out, storage.ErrInvalidRate)
		return
	}

	rules, err := c.rules.Upsert(date, parts[1], rate)
	if err != nil {
		fmt.Fprintln(c.out, err)
		return
	}
	fmt.Fprint(c.out, renderRules(rules))
}

func (c *CLI) printStatement() {
	line, ok := c.prompt(
		"\nPlease enter account and month to generate the statement <Account> <Year><Month>",
		"(or enter blank to go back to main menu):")
	if !ok {
		return
	}

	parts := strings.Fields(line)
	if len(parts) != 2 {
		fmt.Fprintln(c.out, "Invalid format. Please try again.")
		return
	}

	year, month, err := model.ParseYearMonth(parts[1])
	if err != nil {
		fmt.Fprintln(c.out, err)
		return
	}
	st, err := c.engine.Generate(parts[0], year, month)
	if err != nil {
		fmt.Fprintln(c.out, err)
		return
	}
	fmt.Fprint(c.out, renderStatement(st))
}
