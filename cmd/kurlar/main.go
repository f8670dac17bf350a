package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/robotomize/kurlar"
	"github.com/robotomize/kurlar/internal/config"
	"github.com/robotomize/kurlar/internal/logging"
	"github.com/robotomize/kurlar/internal/strutil"
	"github.com/robotomize/kurlar/rate"
	"github.com/sirupsen/logrus"
)

const noValue = "-"

type options struct {
	configPath string
	date       string
	codes      string
	class      string
	amount     float64
	from       string
	to         string
}

func parseFlags(args []string, output io.Writer) (options, error) {
	var opts options

	fs := flag.NewFlagSet("kurlar", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.StringVar(&opts.configPath, "config", "", "path to a yaml config file")
	fs.StringVar(&opts.date, "date", "", "table date as day-month-year, latest table when empty")
	fs.StringVar(&opts.codes, "codes", "", "comma separated currency codes to print, all when empty")
	fs.StringVar(&opts.class, "class", "", "rate class: forex or banknote")
	fs.Float64Var(&opts.amount, "amount", 1, "amount to convert")
	fs.StringVar(&opts.from, "from", "", "currency to convert from")
	fs.StringVar(&opts.to, "to", "", "currency to convert to")

	if err := fs.Parse(args); err != nil {
		return opts, fmt.Errorf("flag parse: %w", err)
	}

	if (opts.from == "") != (opts.to == "") {
		return opts, errors.New("use -from <code> and -to <code> together")
	}

	return opts, nil
}

func main() {
	if err := realMain(context.Background(), os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "kurlar: %v\n", err)
		os.Exit(1)
	}
}

func realMain(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	logger := logging.NewLogger(stderr, logging.ParseLevel(cfg.LogLevel))
	ctx = logging.WithLogger(ctx, logrus.NewEntry(logger).WithField("component", "kurlar"))

	class := cfg.RateClass
	if opts.class != "" {
		class = opts.class
	}

	c := rate.ParseClass(class)
	if !c.Valid() {
		return fmt.Errorf("%w: %s", rate.ErrClassNotValid, class)
	}

	r := kurlar.New(
		ctx,
		opts.date,
		kurlar.WithBaseURL(cfg.BaseURL),
		kurlar.WithUserAgent(cfg.UserAgent),
		kurlar.WithRequestTimeout(cfg.RequestTimeout),
		kurlar.WithRetryNum(cfg.RetryNum),
		kurlar.WithRetryDuration(cfg.RetryDuration),
	)
	if r.HasError() {
		return r.Err()
	}

	if opts.from != "" {
		conv, err := r.Conversion(opts.amount, opts.from, opts.to, c)
		if err != nil {
			return fmt.Errorf("convert: %w", err)
		}

		_, err = fmt.Fprintf(
			stdout,
			"%s %s = %s %s (%s, %s)\n",
			formatFloat(conv.Amount), conv.From, formatFloat(conv.Result), conv.To, conv.Class, conv.Path,
		)

		return err
	}

	entries := r.AllCurrencies()
	if codes := strutil.SplitList(opts.codes); len(codes) > 0 {
		entries = r.SelectedCurrencies(codes...)
	}

	date, _ := r.Date()

	return printTable(stdout, date, entries)
}

func printTable(out io.Writer, date string, entries []rate.Entry) error {
	if _, err := fmt.Fprintf(out, "Date: %s\n", date); err != nil {
		return err
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "CODE\tUNIT\tNAME\tFOREX BUYING\tFOREX SELLING\tBANKNOTE BUYING\tBANKNOTE SELLING")

	for _, e := range entries {
		fmt.Fprintf(
			w,
			"%s\t%d\t%s\t%s\t%s\t%s\t%s\n",
			e.Code,
			e.Unit,
			e.Name,
			formatValue(e.ForexBuying),
			formatValue(e.ForexSelling),
			formatValue(e.BanknoteBuying),
			formatValue(e.BanknoteSelling),
		)
	}

	return w.Flush()
}

func formatValue(v rate.Value) string {
	if v.IsAbsent() {
		return noValue
	}

	return v.String()
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
