package models

// User is the local account document. Only Email and EpicIdentifier matter to
// this service; the rest of the document is owned by the account platform and
// left untouched by the update.
type User struct {
	ID             string `bson:"_id,omitempty" json:"id,omitempty"`
	Email          string `bson:"email" json:"email"`
	FullName       string `bson:"fullName,omitempty" json:"full_name,omitempty"`
	EpicIdentifier string `bson:"epic_identifier,omitempty" json:"epic_identifier,omitempty"`
}
