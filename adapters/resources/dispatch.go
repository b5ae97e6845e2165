package resources

import (
	"errors"
	"net/http"
	"strings"

	"github.com/bytedance/sonic"

	"github.com/jsamuelsen/go-asaas/domain"
	"github.com/jsamuelsen/go-asaas/ports"
)

// errorPayload is the body Asaas sends with a 4xx.
type errorPayload struct {
	Errors []struct {
		Code        string `json:"code"`
		Description string `json:"description"`
	} `json:"errors"`
}

// Dispatch converts an adapter error into the domain error taxonomy.
//
//   - nil stays nil
//   - errors already in the taxonomy pass through unchanged
//   - *ports.StatusError with 404 becomes *domain.NotFoundError
//   - any other *ports.StatusError becomes *domain.APIError
//   - everything else becomes *domain.TransportError
//
// It never drops the cause and never retries.
func Dispatch(err error, resource, operation, id string) error {
	if err == nil {
		return nil
	}

	if isClassified(err) {
		return err
	}

	var statusErr *ports.StatusError
	if !errors.As(err, &statusErr) {
		return domain.NewTransportError(resource, operation, err)
	}

	apiErr := &domain.APIError{
		Resource:   resource,
		Operation:  operation,
		StatusCode: statusErr.StatusCode,
		Errors:     decodeErrorDetails(statusErr.Body),
	}
	if len(apiErr.Errors) == 0 {
		apiErr.Body = strings.TrimSpace(string(statusErr.Body))
	}

	if statusErr.StatusCode == http.StatusNotFound {
		return domain.NewNotFoundError(resource, id, apiErr)
	}

	return apiErr
}

func isClassified(err error) bool {
	return errors.Is(err, domain.ErrTransport) ||
		errors.Is(err, domain.ErrAPI) ||
		errors.Is(err, domain.ErrNotFound) ||
		errors.Is(err, domain.ErrDecode) ||
		errors.Is(err, domain.ErrInvalidArgument)
}

// decodeErrorDetails extracts the Asaas "errors" array. Bodies that are not
// in that shape yield nil.
func decodeErrorDetails(body []byte) []domain.ErrorDetail {
	if len(body) == 0 {
		return nil
	}

	var payload errorPayload
	if err := sonic.ConfigStd.Unmarshal(body, &payload); err != nil {
		return nil
	}

	if len(payload.Errors) == 0 {
		return nil
	}

	details := make([]domain.ErrorDetail, 0, len(payload.Errors))
	for _, e := range payload.Errors {
		details = append(details, domain.ErrorDetail{Code: e.Code, Description: e.Description})
	}

	return details
}
