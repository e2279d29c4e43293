// Package walletrpc implements the wallet backend ports over its JSON
// remote-command interface.
package walletrpc

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/thanhpk/randstr"

	"github.com/sproutwallet/sproutd/internal/core/application"
	"github.com/sproutwallet/sproutd/pkg/httputil"
)

type service struct {
	endpoint string
}

// NewService returns a wallet backend client for the given command endpoint.
func NewService(endpoint string) application.WalletService {
	return &service{endpoint: endpoint}
}

type commandEnvelope struct {
	Id     string      `json:"id"`
	Method string      `json:"method"`
	Params interface{} `json:"params,omitempty"`
}

type responseEnvelope struct {
	Result json.RawMessage `json:"result"`
	Error  *commandError   `json:"error"`
}

type commandError struct {
	Kind   string `json:"kind"`
	Reason string `json:"reason"`
}

func (s *service) call(
	ctx context.Context, method string, params, result interface{},
) error {
	payload, err := json.Marshal(commandEnvelope{
		Id:     randstr.Hex(8),
		Method: method,
		Params: params,
	})
	if err != nil {
		return err
	}

	status, body, err := httputil.NewHTTPRequest(
		ctx, http.MethodPost, s.endpoint, string(payload),
		map[string]string{"Content-Type": "application/json"},
	)
	if err != nil {
		return fmt.Errorf("%s: %w", method, err)
	}
	if status != http.StatusOK {
		return &application.BackendError{
			Kind:   fmt.Sprintf("http_%d", status),
			Reason: body,
		}
	}

	envelope := responseEnvelope{}
	if err := json.Unmarshal([]byte(body), &envelope); err != nil {
		return fmt.Errorf("%s: malformed response: %w", method, err)
	}
	if envelope.Error != nil {
		return &application.BackendError{
			Kind:   envelope.Error.Kind,
			Reason: envelope.Error.Reason,
		}
	}

	if result == nil {
		return nil
	}
	if err := json.Unmarshal(envelope.Result, result); err != nil {
		return fmt.Errorf("%s: malformed result: %w", method, err)
	}
	return nil
}
