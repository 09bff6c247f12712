// Package quran serves bilingual surahs from an offline object store, filling
// it from the alquran.cloud API on first read.
package quran

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/alfarizi/ramadhan-companion/internal/model"
)

const (
	defaultBaseURL     = "https://api.alquran.cloud/v1"
	translationEdition = "id.indonesian"
)

// Client fetches surah text from the alquran.cloud API.
type Client struct {
	httpClient *http.Client
	BaseURL    string
}

func NewClient() *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 15 * time.Second},
		BaseURL:    defaultBaseURL,
	}
}

type surahResponse struct {
	Code int `json:"code"`
	Data struct {
		Number      int    `json:"number"`
		Name        string `json:"name"`
		EnglishName string `json:"englishName"`
		Ayahs       []struct {
			NumberInSurah int    `json:"numberInSurah"`
			Text          string `json:"text"`
		} `json:"ayahs"`
	} `json:"data"`
}

// FetchSurah retrieves the Arabic text and the Indonesian translation of one
// surah with two concurrent requests and zips them verse-by-verse. When the
// two lists disagree in length the translation defaults to an empty string;
// if either request fails the whole fetch fails.
func (c *Client) FetchSurah(ctx context.Context, number int) (*model.Surah, error) {
	var arabic, translated surahResponse

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return c.getSurah(gctx, fmt.Sprintf("%s/surah/%d", c.BaseURL, number), &arabic)
	})
	g.Go(func() error {
		return c.getSurah(gctx, fmt.Sprintf("%s/surah/%d/%s", c.BaseURL, number, translationEdition), &translated)
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to retrieve surah %d: %w", number, err)
	}

	ayahs := make([]model.Ayah, 0, len(arabic.Data.Ayahs))
	for i, a := range arabic.Data.Ayahs {
		translation := ""
		if i < len(translated.Data.Ayahs) {
			translation = translated.Data.Ayahs[i].Text
		}
		ayahs = append(ayahs, model.Ayah{
			Number:      a.NumberInSurah,
			Arabic:      a.Text,
			Translation: translation,
		})
	}

	return &model.Surah{
		Number:      arabic.Data.Number,
		Name:        arabic.Data.Name,
		EnglishName: arabic.Data.EnglishName,
		Ayahs:       ayahs,
	}, nil
}

func (c *Client) getSurah(ctx context.Context, endpoint string, dest *surahResponse) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return err
	}
	if dest.Code != http.StatusOK {
		return fmt.Errorf("api code %d", dest.Code)
	}
	return nil
}
