package display

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/kjannette/trahn-ticker/internal/config"
	"github.com/kjannette/trahn-ticker/internal/models"
)

const (
	timeLayout   = "2006-01-02 15:04:05"
	notAvailable = "N/A"
)

var (
	separator = strings.Repeat("=", config.SeparatorWidth)
	printer   = message.NewPrinter(language.English)
)

type Renderer struct {
	out io.Writer
	now func() time.Time
	loc *time.Location
}

type Option func(*Renderer)

// WithClock overrides the clock used for the header timestamp.
func WithClock(now func() time.Time) Option {
	return func(r *Renderer) {
		r.now = now
	}
}

// WithLocation sets the zone timestamps are shown in. Defaults to time.Local.
func WithLocation(loc *time.Location) Option {
	return func(r *Renderer) {
		r.loc = loc
	}
}

func NewRenderer(out io.Writer, opts ...Option) *Renderer {
	r := &Renderer{
		out: out,
		now: time.Now,
		loc: time.Local,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Render writes one price block. A nil or empty snapshot prints the
// no-data line instead.
func (r *Renderer) Render(snap *models.Snapshot) {
	if snap.Len() == 0 {
		fmt.Fprintln(r.out, "No data to display")
		return
	}

	var b strings.Builder
	fmt.Fprintf(&b, "\n%s\n", separator)
	fmt.Fprintf(&b, "CRYPTOCURRENCY PRICES - %s\n", r.now().In(r.loc).Format(timeLayout))
	fmt.Fprintln(&b, separator)

	for _, a := range snap.Assets {
		q := a.Quote
		fmt.Fprintf(&b, "\n%s:\n", strings.ToUpper(string(a.ID)))
		fmt.Fprintf(&b, "  USD: %s\n", money("$", q.USD))
		fmt.Fprintf(&b, "  EUR: %s\n", money("€", q.EUR))
		fmt.Fprintf(&b, "  24h Change (USD): %s\n", change(q.USD24hChange))
		fmt.Fprintf(&b, "  Market Cap (USD): %s\n", money("$", q.USDMarketCap))
		fmt.Fprintf(&b, "  24h Volume (USD): %s\n", money("$", q.USD24hVol))
		fmt.Fprintf(&b, "  Last Updated: %s\n", r.timestamp(q.LastUpdatedAt))
	}

	fmt.Fprintf(&b, "\n%s\n", separator)
	io.WriteString(r.out, b.String())
}

func (r *Renderer) timestamp(ts *int64) string {
	if ts == nil {
		return notAvailable
	}
	return FormatTimestamp(*ts, r.loc)
}

func money(symbol string, v decimal.NullDecimal) string {
	if !v.Valid {
		return notAvailable
	}
	return symbol + FormatMoney(v.Decimal)
}

func change(v decimal.NullDecimal) string {
	if !v.Valid {
		return notAvailable
	}
	return FormatChange(v.Decimal) + "%"
}

// FormatMoney renders d with two decimals and comma thousands separators,
// e.g. 1234567.891 -> "1,234,567.89".
func FormatMoney(d decimal.Decimal) string {
	return printer.Sprintf("%.2f", d.Round(2).InexactFloat64())
}

// FormatChange renders d with two decimals and an explicit sign. The sign
// follows d, so -0.001 gives "-0.00".
func FormatChange(d decimal.Decimal) string {
	r := d.Round(2).Abs()
	if d.Sign() < 0 {
		return "-" + r.StringFixed(2)
	}
	return "+" + r.StringFixed(2)
}

func FormatTimestamp(epoch int64, loc *time.Location) string {
	if loc == nil {
		loc = time.Local
	}
	return time.Unix(epoch, 0).In(loc).Format(timeLayout)
}
