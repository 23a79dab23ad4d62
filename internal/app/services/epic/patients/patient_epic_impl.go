package patients

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"epic-connect-service/internal/app/services/epic/auth"
	"epic-connect-service/internal/pkg/constvars"
	"epic-connect-service/internal/pkg/exceptions"
	"epic-connect-service/internal/pkg/fhir_dto"
	"epic-connect-service/internal/pkg/utils"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type patientEpicClient struct {
	BaseUrl    string
	AuthClient auth.EpicAuthClient
	Log        *zap.Logger
}

func NewPatientEpicClient(baseUrl string, authClient auth.EpicAuthClient, logger *zap.Logger) PatientEpicClient {
	return &patientEpicClient{
		BaseUrl:    fmt.Sprintf("%s/%s", baseUrl, constvars.ResourcePatient),
		AuthClient: authClient,
		Log:        logger,
	}
}

func (c *patientEpicClient) SearchPatient(ctx context.Context, params url.Values) (map[string]interface{}, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("patientEpicClient.SearchPatient called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	endpoint := fmt.Sprintf("%s?%s", c.BaseUrl, params.Encode())
	return c.getAndParse(ctx, requestID, endpoint)
}

func (c *patientEpicClient) FindPatientByID(ctx context.Context, patientID string) (map[string]interface{}, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("patientEpicClient.FindPatientByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)

	endpoint := fmt.Sprintf("%s/%s", c.BaseUrl, patientID)
	return c.getAndParse(ctx, requestID, endpoint)
}

func (c *patientEpicClient) CreatePatient(ctx context.Context, patient *fhir_dto.Patient) (string, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("patientEpicClient.CreatePatient called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	bearerToken, err := c.AuthClient.AuthorizeApplication(ctx)
	if err != nil {
		return "", err
	}

	requestJSON, err := json.Marshal(patient)
	if err != nil {
		c.Log.Error("patientEpicClient.CreatePatient error marshaling JSON",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return "", exceptions.ErrCannotMarshalJSON(err)
	}

	req, err := http.NewRequestWithContext(ctx, constvars.MethodPost, c.BaseUrl, bytes.NewBuffer(requestJSON))
	if err != nil {
		c.Log.Error("patientEpicClient.CreatePatient error creating HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return "", exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	req.Header.Set(constvars.HeaderAuthorization, fmt.Sprintf("Bearer %s", bearerToken))

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		c.Log.Error("patientEpicClient.CreatePatient error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return "", exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != constvars.StatusCreated {
		bodyBytes, _ := io.ReadAll(resp.Body)
		c.Log.Error("patientEpicClient.CreatePatient unexpected status",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
			zap.ByteString("response_body", bodyBytes),
		)
		return "", exceptions.ErrEpicUnexpectedStatus(nil, resp.StatusCode)
	}

	locationRef := resp.Header.Get(constvars.HeaderLocation)
	if locationRef == "" {
		c.Log.Error("patientEpicClient.CreatePatient missing Location header",
			zap.String(constvars.LoggingRequestIDKey, requestID),
		)
		return "", exceptions.ErrEpicMissingLocation(nil)
	}

	c.Log.Info("patientEpicClient.CreatePatient succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, utils.ExtractResourceID(locationRef)),
	)
	return locationRef, nil
}

// getAndParse performs an authorized GET and maps the response: 200 with a
// non-empty XML body is parsed into a map, 200 empty is a no-content error,
// 404 is not-found, anything else is a generic server error.
func (c *patientEpicClient) getAndParse(ctx context.Context, requestID, endpoint string) (map[string]interface{}, error) {
	bearerToken, err := c.AuthClient.AuthorizeApplication(ctx)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, constvars.MethodGet, endpoint, nil)
	if err != nil {
		c.Log.Error("patientEpicClient error creating HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderAuthorization, fmt.Sprintf("Bearer %s", bearerToken))

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		c.Log.Error("patientEpicClient error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingEpicEndpointKey, endpoint),
			zap.Error(err),
		)
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case constvars.StatusOK:
		bodyBytes, err := io.ReadAll(resp.Body)
		if err != nil {
			c.Log.Error("patientEpicClient error reading response body",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			return nil, exceptions.ErrReadResponseBody(err)
		}
		if len(bodyBytes) == 0 {
			c.Log.Info("patientEpicClient no content in response",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingEpicEndpointKey, endpoint),
			)
			return nil, exceptions.ErrEpicNoContent(nil)
		}
		parsed, err := utils.ParseXMLToMap(bodyBytes)
		if err != nil {
			c.Log.Error("patientEpicClient error parsing XML response",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			return nil, err
		}
		return parsed, nil
	case constvars.StatusNotFound:
		c.Log.Info("patientEpicClient patient not found",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingEpicEndpointKey, endpoint),
		)
		return nil, exceptions.ErrEpicPatientNotFound(nil)
	default:
		c.Log.Error("patientEpicClient unexpected status",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingEpicEndpointKey, endpoint),
			zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
		)
		return nil, exceptions.ErrEpicUnexpectedStatus(nil, resp.StatusCode)
	}
}
