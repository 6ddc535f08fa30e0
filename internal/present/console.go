package present

import (
	"fmt"
	"io"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/shopspring/decimal"

	"github.com/misbahyunus/python-gems/internal/api/bom"
	"github.com/misbahyunus/python-gems/internal/api/fixer"
)

const (
	TimestampLayout = "02/01/2006 03:04:05 PM"

	bannerText  = " Weather Details "
	bannerWidth = 35
	labelWidth  = 15
)

// Console writes report lines to out. now supplies the timestamps.
type Console struct {
	out io.Writer
	now func() time.Time
}

func NewConsole(out io.Writer, now func() time.Time) *Console {
	if now == nil {
		now = time.Now
	}

	return &Console{out: out, now: now}
}

func (c *Console) Println(line string) {
	fmt.Fprintln(c.out, line)
}

// Stampf writes one line prefixed with the current time in brackets.
func (c *Console) Stampf(format string, args ...any) {
	fmt.Fprintf(c.out, "[%s] %s\n", c.now().Format(TimestampLayout), fmt.Sprintf(format, args...))
}

func (c *Console) Rates(rates []fixer.Rate) {
	for _, rate := range rates {
		c.Stampf("1 %s = %s %s", fixer.BaseCurrency, FormatRate(rate.Value), rate.Code)
	}
}

func (c *Console) Weather(reading bom.Reading) {
	c.Println(Center(bannerText, bannerWidth, '*'))
	c.Println(RightJustify("Location :", labelWidth) + " " + reading.LocationName)
	c.Println(RightJustify("Current temp :", labelWidth) + " " + reading.CurrentTemp + "C")
	c.Println(RightJustify("Feels like :", labelWidth) + " " + reading.FeelsLike)
	c.Println("[Observed at : " + reading.ObservedAt + "]")
}

// FormatRate prints a rounded rate with at least one fractional digit.
func FormatRate(value decimal.Decimal) string {
	s := value.String()
	if !strings.Contains(s, ".") {
		s += ".0"
	}

	return s
}

func RightJustify(s string, width int) string {
	n := utf8.RuneCountInString(s)
	if n >= width {
		return s
	}

	return strings.Repeat(" ", width-n) + s
}

// Center pads s with fill on both sides up to width. When the padding is
// odd the extra fill goes to the left only if width is odd as well.
func Center(s string, width int, fill rune) string {
	n := utf8.RuneCountInString(s)
	if n >= width {
		return s
	}

	pad := width - n
	left := pad/2 + (pad & width & 1)
	f := string(fill)

	return strings.Repeat(f, left) + s + strings.Repeat(f, pad-left)
}
