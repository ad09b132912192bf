package registry

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/tessellated-io/nolus-wallet/log"
)

// ChainRegistryClient reads chain metadata from a chain registry mirror.
type ChainRegistryClient interface {
	AllChainNames(ctx context.Context) ([]string, error)
	ChainInfo(ctx context.Context, chainName string) (*ChainInfo, error)
}

// DefaultChainRegistryBaseUrl serves the cosmos chain registry as JSON.
const DefaultChainRegistryBaseUrl = "https://planetarium.tessellated.io/v1/chains"

// Default implementation
type chainRegistryClient struct {
	// Base url of an API service
	chainRegistryBaseUrl string

	log *log.Logger
}

// Type assertion
var _ ChainRegistryClient = (*chainRegistryClient)(nil)

// NewChainRegistryClient makes a new default registry client.
func NewChainRegistryClient(log *log.Logger, chainRegistryBaseUrl string) ChainRegistryClient {
	return &chainRegistryClient{
		chainRegistryBaseUrl: chainRegistryBaseUrl,

		log: log,
	}
}

// ChainRegistryClient interface

func (rc *chainRegistryClient) ChainInfo(ctx context.Context, chainName string) (*ChainInfo, error) {
	url := fmt.Sprintf("%s/%s/chain.json", rc.chainRegistryBaseUrl, chainName)

	bytes, err := rc.makeRequest(ctx, url)
	if err != nil {
		return nil, err
	}

	return parseChainResponse(bytes)
}

func (rc *chainRegistryClient) AllChainNames(ctx context.Context) ([]string, error) {
	url := fmt.Sprintf("%s/all", rc.chainRegistryBaseUrl)
	bytes, err := rc.makeRequest(ctx, url)
	if err != nil {
		return nil, err
	}

	return parseAllChainsResponse(bytes)
}

// Private helpers

func (rc *chainRegistryClient) makeRequest(ctx context.Context, url string) ([]byte, error) {
	rc.log.Debug("making GET request to url", "url", url)

	request, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return nil, err
	}
	request.Header.Set("Content-Type", "application/json")

	client := &http.Client{}
	resp, err := client.Do(request)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusOK {
		data, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, err
		}
		rc.log.Debug("received http 200 response from chain registry")

		return data, nil
	}

	data, err := io.ReadAll(resp.Body)
	if err == nil {
		rc.log.Debug("received bad response from chain registry", "response", string(data), "status_code", resp.StatusCode)
	}

	return nil, fmt.Errorf("received non-OK HTTP status: %d", resp.StatusCode)
}
