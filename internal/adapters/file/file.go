package file

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"slowpoke/internal/core/domain"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

// MaxDownloadSize caps the bytes read from a single attachment.
const MaxDownloadSize = 25 << 20

type Downloader struct {
	client  *http.Client
	maxSize int64
}

// NewDownloader returns a Downloader using the given client, or a client with a sane timeout when nil.
func NewDownloader(client *http.Client) *Downloader {
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}

	return &Downloader{client: client, maxSize: MaxDownloadSize}
}

// Download fetches the file at url and reports its media type from the Content-Type header.
func (d *Downloader) Download(ctx context.Context, url string) (domain.Image, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		err = fmt.Errorf("error creating request %w", err)
		log.Error().Err(err).Str("url", url).Send()
		return domain.Image{}, err
	}

	res, err := d.client.Do(req)
	if err != nil {
		err = fmt.Errorf("error executing request %w", err)
		log.Error().Err(err).Str("url", url).Send()
		return domain.Image{}, err
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		err = fmt.Errorf("unexpected status code on download: %d", res.StatusCode)
		log.Error().Err(err).Str("url", url).Send()
		return domain.Image{}, err
	}

	buf, err := io.ReadAll(io.LimitReader(res.Body, d.maxSize+1))
	if err != nil {
		err = fmt.Errorf("error reading response %w", err)
		log.Error().Err(err).Str("url", url).Send()
		return domain.Image{}, err
	}

	if int64(len(buf)) > d.maxSize {
		err = fmt.Errorf("download exceeds %d bytes", d.maxSize)
		log.Error().Err(err).Str("url", url).Send()
		return domain.Image{}, err
	}

	log.Debug().Int("bytes", len(buf)).Str("url", url).Msg("downloaded file")

	return domain.Image{MIMEType: mediaType(res.Header.Get("Content-Type")), Data: buf}, nil
}

func mediaType(contentType string) string {
	mime, _, _ := strings.Cut(contentType, ";")
	return strings.TrimSpace(strings.ToLower(mime))
}
