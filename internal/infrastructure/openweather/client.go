package openweather

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"fleetcommander/internal/domain/entity"
	"fleetcommander/internal/utils"
)

var ErrNoAPIKey = errors.New("openweather: api key not configured")

type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

func NewClient(apiKey string) *Client {
	return &Client{
		baseURL:    "https://api.openweathermap.org/data/2.5/weather",
		apiKey:     apiKey,
		httpClient: &http.Client{},
	}
}

// CurrentAt fetches the current conditions at the given coordinates and maps
// them onto a weather report row for the port.
func (c *Client) CurrentAt(ctx context.Context, portID int64, lat, lon float64) (*entity.WeatherReport, error) {
	if c.apiKey == "" {
		return nil, ErrNoAPIKey
	}

	query := url.Values{}
	query.Set("lat", strconv.FormatFloat(lat, 'f', 6, 64))
	query.Set("lon", strconv.FormatFloat(lon, 'f', 6, 64))
	query.Set("appid", c.apiKey)
	query.Set("units", "metric")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+query.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("openweather failed with status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var weather weatherResponse
	err = json.Unmarshal(body, &weather)
	if err != nil {
		return nil, err
	}
	return weather.ToDomain(portID, utils.FormatTime(utils.NowUTC())), nil
}
