package patients

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"epic-connect-service/internal/pkg/constvars"
	"epic-connect-service/internal/pkg/exceptions"
	"epic-connect-service/internal/pkg/fhir_dto"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// stubAuthClient satisfies auth.EpicAuthClient without hitting a token
// endpoint.
type stubAuthClient struct {
	token string
	err   error
}

func (s *stubAuthClient) GenerateClientAssertion(ctx context.Context) (string, error) {
	return "stub-assertion", nil
}

func (s *stubAuthClient) GetBearerToken(ctx context.Context, assertion string) (string, error) {
	return s.token, s.err
}

func (s *stubAuthClient) AuthorizeApplication(ctx context.Context) (string, error) {
	return s.token, s.err
}

const searchSetXML = `<Bundle xmlns="http://hl7.org/fhir"><type value="searchset"/><total value="1"/></Bundle>`

func TestPatientEpicClient_SearchPatient(t *testing.T) {
	t.Run("Parses XML Body Into Map", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/Patient", r.URL.Path)
			assert.Equal(t, "Smith", r.URL.Query().Get("family"))
			assert.Equal(t, "Bearer bearer-xyz", r.Header.Get(constvars.HeaderAuthorization))
			w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationFHIRXML)
			w.Write([]byte(searchSetXML))
		}))
		defer server.Close()

		client := NewPatientEpicClient(server.URL, &stubAuthClient{token: "bearer-xyz"}, zap.NewNop())

		params := url.Values{}
		params.Set("family", "Smith")
		result, err := client.SearchPatient(context.Background(), params)

		require.NoError(t, err)
		_, hasBundle := result["Bundle"]
		assert.True(t, hasBundle, "parsed map should mirror the XML root")
	})

	t.Run("Empty Body Maps To No Content", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := NewPatientEpicClient(server.URL, &stubAuthClient{token: "bearer-xyz"}, zap.NewNop())

		result, err := client.SearchPatient(context.Background(), url.Values{})

		assert.Nil(t, result)
		customErr := requireCustomError(t, err)
		assert.Equal(t, constvars.StatusNoContent, customErr.StatusCode)
	})

	t.Run("Remote 500 Maps To Server Error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		client := NewPatientEpicClient(server.URL, &stubAuthClient{token: "bearer-xyz"}, zap.NewNop())

		_, err := client.SearchPatient(context.Background(), url.Values{})

		customErr := requireCustomError(t, err)
		assert.Equal(t, constvars.StatusInternalServerError, customErr.StatusCode)
	})
}

func TestPatientEpicClient_FindPatientByID(t *testing.T) {
	t.Run("Remote 404 Maps To Not Found", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/Patient/doesnotexist", r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
		}))
		defer server.Close()

		client := NewPatientEpicClient(server.URL, &stubAuthClient{token: "bearer-xyz"}, zap.NewNop())

		result, err := client.FindPatientByID(context.Background(), "doesnotexist")

		assert.Nil(t, result)
		customErr := requireCustomError(t, err)
		assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode)
	})

	t.Run("Found Patient Is Parsed", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`<Patient xmlns="http://hl7.org/fhir"><id value="abc123"/></Patient>`))
		}))
		defer server.Close()

		client := NewPatientEpicClient(server.URL, &stubAuthClient{token: "bearer-xyz"}, zap.NewNop())

		result, err := client.FindPatientByID(context.Background(), "abc123")

		require.NoError(t, err)
		_, hasPatient := result["Patient"]
		assert.True(t, hasPatient)
	})
}

func TestPatientEpicClient_CreatePatient(t *testing.T) {
	newPatient := &fhir_dto.Patient{
		ResourceType: constvars.ResourcePatient,
		Active:       true,
		Name: []fhir_dto.HumanName{
			{Use: constvars.FhirNameUseOfficial, Given: []string{"Jane"}, Family: "Doe"},
		},
		Gender:    constvars.FhirGenderFemale,
		BirthDate: "1990-05-01",
	}

	t.Run("Created Returns Location Reference", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, constvars.MethodPost, r.Method)
			assert.Equal(t, constvars.MIMEApplicationJSON, r.Header.Get(constvars.HeaderContentType))

			var posted fhir_dto.Patient
			require.NoError(t, json.NewDecoder(r.Body).Decode(&posted))
			assert.Equal(t, constvars.ResourcePatient, posted.ResourceType)

			w.Header().Set(constvars.HeaderLocation, "Patient/abc123")
			w.WriteHeader(http.StatusCreated)
		}))
		defer server.Close()

		client := NewPatientEpicClient(server.URL, &stubAuthClient{token: "bearer-xyz"}, zap.NewNop())

		locationRef, err := client.CreatePatient(context.Background(), newPatient)

		assert.NoError(t, err)
		assert.Equal(t, "Patient/abc123", locationRef)
	})

	t.Run("Non-201 Is An Error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		client := NewPatientEpicClient(server.URL, &stubAuthClient{token: "bearer-xyz"}, zap.NewNop())

		locationRef, err := client.CreatePatient(context.Background(), newPatient)

		assert.Empty(t, locationRef)
		assert.Error(t, err)
	})

	t.Run("Missing Location Header Is An Error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusCreated)
		}))
		defer server.Close()

		client := NewPatientEpicClient(server.URL, &stubAuthClient{token: "bearer-xyz"}, zap.NewNop())

		_, err := client.CreatePatient(context.Background(), newPatient)

		assert.Error(t, err)
	})
}

func requireCustomError(t *testing.T, err error) *exceptions.CustomError {
	t.Helper()
	require.Error(t, err)
	customErr, ok := err.(*exceptions.CustomError)
	require.True(t, ok, "expected a CustomError")
	return customErr
}
