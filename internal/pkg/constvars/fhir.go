package constvars

const (
	ResourcePatient = "Patient"
)

const (
	FhirDateLayout = "2006-01-02"

	FhirNameUseOfficial     = "official"
	FhirIdentifierUseUsual  = "usual"
	FhirIdentifierSystemSSN = "urn:oid:2.16.840.1.113883.4.1"

	// Epic sandbox does not hand out real identifiers on create; the
	// builder always sends this placeholder value.
	FhirIdentifierPlaceholderValue = "000-00-0000"

	FhirGenderMale    = "male"
	FhirGenderFemale  = "female"
	FhirGenderOther   = "other"
	FhirGenderUnknown = "unknown"
)

const (
	EpicClientAssertionType = "urn:ietf:params:oauth:client-assertion-type:jwt-bearer"
	EpicGrantClientCreds    = "client_credentials"

	// Client assertion lifetime required by Epic's backend OAuth2 flow.
	EpicAssertionExpiryInSeconds = 300
)
