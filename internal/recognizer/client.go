package recognizer

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/wildlog/wildlog_api/internal/config"
	"github.com/wildlog/wildlog_api/internal/errlocal"
	"github.com/wildlog/wildlog_api/internal/logging"
)

const (
	recognizeEndpoint              = "/recognize"
	recognizerClientRequestTimeout = time.Second * 10
	tokenKey                       = "token"
)

type recognizerClient struct {
	logger *logging.Logger
	c      *http.Client
	host   string
	token  string
}

func newRecognizerClient(cfg config.RecognizerConfig, log *logging.Logger) *recognizerClient {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = recognizerClientRequestTimeout
	}

	return &recognizerClient{
		c:      &http.Client{Timeout: timeout},
		host:   cfg.Address,
		token:  cfg.Token,
		logger: log.WithRecognizerClientTag(),
	}
}

// recognizeResponse is the best guess of the recognition service. Species
// may be a catalog id, a common name or a scientific name.
type recognizeResponse struct {
	ID         uuid.UUID          `json:"identification_id"`
	Species    string             `json:"species"`
	Confidence float64            `json:"confidence"`
	Candidates map[string]float64 `json:"candidates,omitempty"`
}

type errorResponse struct {
	Detail string `json:"detail"`
}

type recognizeRequestBody struct {
	PhotoURL         string `json:"photo_url"`
	IdentificationID string `json:"identification_id"`
}

//nolint:errchkjson // do not check errors
func (b *recognizeRequestBody) Reader() io.Reader {
	jsonStr, _ := json.Marshal(b)

	return bytes.NewReader(jsonStr)
}

func (c *recognizerClient) Recognize(
	ctx context.Context,
	photoURL string,
	identificationID uuid.UUID,
	optHeaders ...http.Header,
) (*recognizeResponse, error) {
	reqBody := recognizeRequestBody{
		PhotoURL:         photoURL,
		IdentificationID: identificationID.String(),
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.host+recognizeEndpoint, reqBody.Reader())
	if err != nil {
		return nil, err
	}

	for _, h := range optHeaders {
		for k, v := range h {
			req.Header[k] = v
		}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Add(tokenKey, c.token)

	resp, err := c.c.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	decoder := json.NewDecoder(resp.Body)
	if resp.StatusCode != http.StatusOK {
		c.logger.WithContext(ctx).Debugf("recognition of %s answered %d", identificationID, resp.StatusCode)
		return nil, parseErrorResponse(decoder, resp.StatusCode)
	}

	body := new(recognizeResponse)

	return body, decoder.Decode(body)
}

func parseErrorResponse(decoder *json.Decoder, code int) error {
	var errResp errorResponse
	_ = decoder.Decode(&errResp)
	msg := "error while requesting recognition"

	switch code {
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return errlocal.NewErrBadRequest(msg, errResp.Detail, nil)
	case http.StatusUnauthorized, http.StatusForbidden:
		return errlocal.NewErrForbidden(msg, errResp.Detail, nil)
	case http.StatusNotFound:
		return errlocal.NewErrNotFound(msg, errResp.Detail, nil)
	case http.StatusTooManyRequests:
		return errlocal.NewErrTooManyRequests(msg, errResp.Detail)
	default:
	}

	return errlocal.NewErrInternal(msg, errResp.Detail, nil)
}
