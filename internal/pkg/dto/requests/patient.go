package requests

import "net/url"

// SearchEpicPatientRequest mirrors the Patient search parameters Epic's FHIR
// R4 endpoint accepts. Every field is optional, but at least one must be set
// before any outbound call is made.
type SearchEpicPatientRequest struct {
	Address           string `json:"address,omitempty"`
	AddressCity       string `json:"address_city,omitempty"`
	AddressPostalCode string `json:"address_postalcode,omitempty"`
	AddressState      string `json:"address_state,omitempty"`
	BirthDate         string `json:"birthdate,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Family            string `json:"family,omitempty"`
	Given             string `json:"given,omitempty"`
	Gender            string `json:"gender,omitempty"`
	Identifier        string `json:"identifier,omitempty"`
	Telecom           string `json:"telecom,omitempty"`
	Name              string `json:"name,omitempty"`
	OwnName           string `json:"own_name,omitempty"`
	OwnPrefix         string `json:"own_prefix,omitempty"`
	PartnerName       string `json:"partner_name,omitempty"`
	PartnerPrefix     string `json:"partner_prefix,omitempty"`
	LegalSex          string `json:"legal_sex,omitempty"`
}

// fieldParams maps each request field to its FHIR search parameter name.
func (r *SearchEpicPatientRequest) fieldParams() map[string]string {
	return map[string]string{
		"address":            r.Address,
		"address-city":       r.AddressCity,
		"address-postalcode": r.AddressPostalCode,
		"address-state":      r.AddressState,
		"birthdate":          r.BirthDate,
		"family":             r.Family,
		"given":              r.Given,
		"gender":             r.Gender,
		"identifier":         r.Identifier,
		"telecom":            r.Telecom,
		"name":               r.Name,
		"own-name":           r.OwnName,
		"own-prefix":         r.OwnPrefix,
		"partner-name":       r.PartnerName,
		"partner-prefix":     r.PartnerPrefix,
		"legal-sex":          r.LegalSex,
	}
}

// HasCriteria reports whether at least one search field is non-empty.
func (r *SearchEpicPatientRequest) HasCriteria() bool {
	for _, value := range r.fieldParams() {
		if value != "" {
			return true
		}
	}
	return false
}

// ToURLValues encodes the non-empty fields as FHIR search parameters.
func (r *SearchEpicPatientRequest) ToURLValues() url.Values {
	params := url.Values{}
	for name, value := range r.fieldParams() {
		if value != "" {
			params.Set(name, value)
		}
	}
	return params
}

// CreateEpicPatientRequest is the flat create-patient payload. Name is the
// full name; the resource builder splits it into given/family parts. Email is
// only used to link the Epic identifier to a local user document. Image is
// accepted but not mapped into the resource.
type CreateEpicPatientRequest struct {
	Name     string `json:"name" validate:"required"`
	DOB      string `json:"dob" validate:"required,datetime=2006-01-02"`
	Gender   string `json:"gender,omitempty" validate:"omitempty,oneof=male female other unknown"`
	IsActive *bool  `json:"is_active,omitempty"`
	Email    string `json:"email,omitempty" validate:"omitempty,email"`
	Image    string `json:"image,omitempty"`
}
