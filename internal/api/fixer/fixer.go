package fixer

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"github.com/misbahyunus/python-gems/internal/fetch"
)

const (
	// value substituted for the second placeholder of the url template
	apiFormat = "1"

	BaseCurrency = "AUD"
)

var (
	ErrRequestFailed = errors.New("request failed")
	ErrZeroBaseRate  = errors.New("base currency rate is zero")
)

type ErrorInfo struct {
	Code int    `json:"code"`
	Type string `json:"type"`
	Info string `json:"info"`
}

// RemoteError is a business-level failure reported inside a 200 response.
type RemoteError struct {
	Info string
}

func (e *RemoteError) Error() string {
	return e.Info
}

type LatestResponseBody struct {
	Success   *bool                      `json:"success"`
	Error     *ErrorInfo                 `json:"error"`
	Timestamp int64                      `json:"timestamp"`
	Base      string                     `json:"base"`
	Date      string                     `json:"date"`
	Rates     map[string]decimal.Decimal `json:"rates"`
}

type Rate struct {
	Code  string
	Value decimal.Decimal
}

// RelativeTo divides every rate by the rate of base and rounds to two
// decimal places. When base is not present the divisor is 1.
func (b *LatestResponseBody) RelativeTo(base string) ([]Rate, error) {
	divisor, ok := b.Rates[base]
	if !ok {
		divisor = decimal.NewFromInt(1)
	}
	if divisor.IsZero() {
		return nil, fmt.Errorf("%w: %s", ErrZeroBaseRate, base)
	}

	codes := lo.Keys(b.Rates)
	slices.Sort(codes)

	return lo.Map(codes, func(code string, _ int) Rate {
		return Rate{
			Code:  code,
			Value: b.Rates[code].Div(divisor).Round(2),
		}
	}), nil
}

func latestExtractor(resp *fetch.RawResponse) (LatestResponseBody, error) {
	body, err := fetch.JSONExtractor[LatestResponseBody]{}.Extract(resp)
	if err != nil {
		return body, err
	}

	if body.Success == nil {
		return body, fetch.NewUnexpectedShapeError(resp, `missing "success" field`, nil)
	}
	if !*body.Success && body.Error == nil {
		return body, fetch.NewUnexpectedShapeError(resp, `missing "error" field on unsuccessful response`, nil)
	}

	return body, nil
}

type Client struct {
	fetcher     fetch.Fetcher
	urlTemplate string
	accessKey   string
}

func NewClient(fetcher fetch.Fetcher, urlTemplate string, accessKey string) *Client {
	return &Client{
		fetcher:     fetcher,
		urlTemplate: urlTemplate,
		accessKey:   accessKey,
	}
}

func (c *Client) URL() string {
	return FormatURL(c.urlTemplate, c.accessKey, apiFormat)
}

// Latest fetches the latest rates. Any transport or status failure is
// reported as ErrRequestFailed; an unsuccessful document as *RemoteError.
func (c *Client) Latest(ctx context.Context) (*LatestResponseBody, error) {
	req := fetch.NewRequest(c.URL()).WithJSONContentType()

	body, err := fetch.FetchAndExtract[LatestResponseBody](ctx, c.fetcher, req, fetch.ExtractorFunc[LatestResponseBody](latestExtractor))
	if err != nil {
		var shapeErr *fetch.UnexpectedShapeError
		if errors.As(err, &shapeErr) {
			return nil, err
		}

		return nil, fmt.Errorf("%w: %w", ErrRequestFailed, err)
	}

	if !*body.Success {
		return nil, &RemoteError{Info: body.Error.Info}
	}

	return &body, nil
}

// FormatURL fills "{}" / "{N}" placeholders with args in order, and falls
// back to fmt verbs when the template uses "%s".
func FormatURL(template string, args ...string) string {
	if !strings.Contains(template, "{") && strings.Contains(template, "%s") {
		verbs := strings.Count(template, "%s")
		values := make([]any, 0, verbs)
		for i := 0; i < verbs && i < len(args); i++ {
			values = append(values, args[i])
		}
		return fmt.Sprintf(template, values...)
	}

	var sb strings.Builder
	next := 0
	for i := 0; i < len(template); i++ {
		if template[i] != '{' {
			sb.WriteByte(template[i])
			continue
		}

		end := strings.IndexByte(template[i:], '}')
		if end < 0 {
			sb.WriteString(template[i:])
			break
		}

		field := template[i+1 : i+end]
		index := next
		if field != "" {
			n, err := strconv.Atoi(field)
			if err != nil || n < 0 || n >= len(args) {
				sb.WriteString(template[i : i+end+1])
				i += end
				continue
			}
			index = n
		} else {
			next++
		}

		if index < len(args) {
			sb.WriteString(args[index])
		}
		i += end
	}

	return sb.String()
}
