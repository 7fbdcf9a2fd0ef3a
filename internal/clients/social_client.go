package clients

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"sync"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
)

var (
	socialClientInstance *SocialClient
	socialClientOnce     sync.Once
	socialRateLimitMutex sync.Mutex
)

// SocialClient talks to the social platform search API using the
// client-credentials flow. Auth and API endpoints come from the
// environment so the same client works against the sandbox.
type SocialClient struct {
	Config *clientcredentials.Config
	Client *http.Client
	apiURL string
	mu     *sync.Mutex
}

func GetSocialClient() *SocialClient {
	socialClientOnce.Do(func() {
		oauthConf := &clientcredentials.Config{
			ClientID:     os.Getenv("SOCIAL_CLIENT_ID"),
			ClientSecret: os.Getenv("SOCIAL_CLIENT_SECRET"),
			TokenURL:     os.Getenv("SOCIAL_AUTH_URL"),
			AuthStyle:    oauth2.AuthStyleInHeader,
		}

		socialClientInstance = &SocialClient{
			Config: oauthConf,
			Client: oauthConf.Client(context.Background()),
			apiURL: os.Getenv("SOCIAL_API_URL"),
			mu:     &sync.Mutex{},
		}
	})

	return socialClientInstance
}

func (sc *SocialClient) RefreshClient() {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	sc.Client = sc.Config.Client(context.Background())
}

// SearchRecentPosts runs a recent-post search for one query string and
// returns the raw response body.
func (sc *SocialClient) SearchRecentPosts(query string) ([]byte, error) {
	parsedUrl, err := url.Parse(fmt.Sprintf("%s/tweets/search/recent", sc.apiURL))
	if err != nil {
		return nil, fmt.Errorf("[SocialClient] Failed to parse URL: %w", err)
	}
	queryParams := parsedUrl.Query()
	queryParams.Add("query", query)
	queryParams.Add("max_results", "100")
	queryParams.Add("tweet.fields", "author_id,created_at,lang")
	parsedUrl.RawQuery = queryParams.Encode()

	socialRateLimitMutex.Lock()
	time.Sleep(INITIAL_BACKOFF)
	socialRateLimitMutex.Unlock()

	req, err := http.NewRequest("GET", parsedUrl.String(), nil)
	if err != nil {
		return nil, err
	}

	req.Header.Set("User-Agent", USER_AGENT)

	resp, err := sc.Client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusUnauthorized:
		slog.Warn("[SocialClient] Token expired - Refreshing and Retrying...")
		sc.RefreshClient()
		return sc.SearchRecentPosts(query)
	case http.StatusTooManyRequests:
		slog.Warn("[SocialClient] 429 Too Many Requests - Retrying with backoff")
		return sc.retryWithBackoff(query)
	case http.StatusOK:
		bytes, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, err
		}
		return bytes, nil
	}
	return nil, fmt.Errorf("[SocialClient] Unexpected status %d", resp.StatusCode)
}

func (sc *SocialClient) retryWithBackoff(query string) ([]byte, error) {
	backoff := INITIAL_BACKOFF
	for i := 1; i < MAX_RETRIES; i++ {
		slog.Warn("[SocialClient] Retrying request",
			slog.Int("attempt", i), slog.Duration("backoff", backoff))

		time.Sleep(backoff)

		backoff *= 2
		if backoff > MAX_BACKOFF {
			backoff = MAX_BACKOFF
		}

		data, err := sc.SearchRecentPosts(query)
		if err == nil {
			return data, nil
		}
	}
	return nil, fmt.Errorf("[SocialClient] Max retries reached request failed")
}
