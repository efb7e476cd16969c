package locale

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"contra/internal/i18n"
)

const persistEndpoint = "/api/user/language"

// HTTPPersister posts language switches to the server write path. The
// caller decides what to do with failures; Session logs and moves on.
type HTTPPersister struct {
	BaseURL string
	Client  *http.Client
}

func (p *HTTPPersister) PersistLanguage(ctx context.Context, lang i18n.Language) error {
	body, err := json.Marshal(map[string]string{"language": string(lang)})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.BaseURL+persistEndpoint, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	client := p.Client
	if client == nil {
		client = http.DefaultClient
	}

	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("persist language: unexpected status %d", resp.StatusCode)
	}
	return nil
}
