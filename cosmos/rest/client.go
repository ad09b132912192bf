package rest

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	retry "github.com/avast/retry-go/v4"

	"github.com/cosmos/cosmos-sdk/codec"
	sdk "github.com/cosmos/cosmos-sdk/types"
	banktypes "github.com/cosmos/cosmos-sdk/x/bank/types"

	"github.com/tessellated-io/nolus-wallet/log"
)

const pageSize = 100

// Client reads balances from a node's REST (LCD) endpoint.
type Client struct {
	apiUrl     string
	cdc        *codec.ProtoCodec
	httpClient *http.Client

	attempts retry.Option
	delay    retry.Option

	log *log.Logger
}

func NewClient(apiUrl string, cdc *codec.ProtoCodec, log *log.Logger) *Client {
	return &Client{
		apiUrl:     strings.TrimSuffix(apiUrl, "/"),
		cdc:        cdc,
		httpClient: &http.Client{Timeout: 30 * time.Second},

		attempts: retry.Attempts(3),
		delay:    retry.Delay(1 * time.Second),

		log: log,
	}
}

// WithRetries overrides how many times, and how often, failed requests are retried.
func (c *Client) WithRetries(attempts uint, delay time.Duration) *Client {
	c.attempts = retry.Attempts(attempts)
	c.delay = retry.Delay(delay)
	return c
}

// AllBalances returns every balance of the address, following pagination.
func (c *Client) AllBalances(ctx context.Context, address string) (sdk.Coins, error) {
	balances := sdk.Coins{}

	var nextKey []byte
	for {
		page, err := c.balancesPage(ctx, address, nextKey)
		if err != nil {
			return nil, err
		}
		balances = append(balances, page.Balances...)

		if page.Pagination == nil || len(page.Pagination.NextKey) == 0 {
			break
		}
		nextKey = page.Pagination.NextKey
	}
	c.log.Debug("retrieved balances over rest", "address", address, "num_balances", len(balances))

	return balances, nil
}

func (c *Client) balancesPage(ctx context.Context, address string, pageKey []byte) (*banktypes.QueryAllBalancesResponse, error) {
	query := url.Values{}
	query.Set("pagination.limit", fmt.Sprintf("%d", pageSize))
	if len(pageKey) > 0 {
		query.Set("pagination.key", base64.StdEncoding.EncodeToString(pageKey))
	}
	requestUrl := fmt.Sprintf("%s/cosmos/bank/v1beta1/balances/%s?%s", c.apiUrl, url.PathEscape(address), query.Encode())

	var bytes []byte
	var err error
	err = retry.Do(func() error {
		bytes, err = c.makeRequest(ctx, requestUrl)
		return err
	}, c.delay, c.attempts, retry.Context(ctx))
	if err != nil {
		// If err is an error from a context, unwrapping will write out nil
		if unwrappedErr := errors.Unwrap(err); unwrappedErr != nil {
			return nil, unwrappedErr
		}
		return nil, err
	}

	response := &banktypes.QueryAllBalancesResponse{}
	if err := c.cdc.UnmarshalJSON(bytes, response); err != nil {
		return nil, err
	}
	return response, nil
}

// Private helpers

func (c *Client) makeRequest(ctx context.Context, url string) ([]byte, error) {
	c.log.Debug("making GET request to url", "url", url)

	request, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	request.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(request)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		c.log.Debug("received bad response from rest endpoint", "response", string(data), "status_code", resp.StatusCode)
		return nil, fmt.Errorf("received non-OK HTTP status: %d", resp.StatusCode)
	}

	return data, nil
}
