package consolida

import (
	"flag"
	"fmt"
	"net/http"
	"net/url"
	"os"

	"github.com/PaesslerAG/jsonpath"
)

const brapiTokenEnv = "BRAPI_TOKEN"

var brapiTokenFlag = flag.String("brapi-token", "", "brapi.dev API token for fetching B3 quotes.\n If missing it will read the environment variable \""+brapiTokenEnv+"\". You can get one at https://brapi.dev/")

func brapiToken() string {
	if *brapiTokenFlag == "" {
		*brapiTokenFlag = os.Getenv(brapiTokenEnv)
	}
	return *brapiTokenFlag
}

// BrapiQuoter fetches current B3 prices from the brapi.dev quote API.
// Responses are cached on disk for the day, so repeated reports within a
// session do not hammer the service.
type BrapiQuoter struct {
	client *http.Client
	base   string
}

// NewBrapiQuoter returns a quoter with a daily-expiring cache.
func NewBrapiQuoter() *BrapiQuoter {
	return &BrapiQuoter{client: daily(), base: "https://brapi.dev/api/quote/"}
}

// Quote implements Quoter. It returns the regular market price of the ticker
// in BRL.
func (b *BrapiQuoter) Quote(ticker string) (Money, error) {
	addr := b.base + url.PathEscape(ticker)
	if token := brapiToken(); token != "" {
		addr += "?token=" + url.QueryEscape(token)
	}

	var jobj any
	if err := jwget(b.client, addr, &jobj); err != nil {
		return Money{}, fmt.Errorf("error in wget %q: %w", ticker, err)
	}

	path := "$.results[0].regularMarketPrice"
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return Money{}, fmt.Errorf("error parsing quote for %q: %q %w", ticker, path, err)
	}
	// jsonpath is never clear about whether it returns a list of 1 answer or
	// a single answer: keep the first one if any.
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}
	val, ok := jval.(float64)
	if !ok {
		return Money{}, fmt.Errorf("error parsing quote for %q: %q not a float: %v", ticker, path, jval)
	}
	return BRL(val), nil
}
