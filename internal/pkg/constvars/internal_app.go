package constvars

const (
	MongoCollectionUsers = "users"

	MongoFieldEmail          = "email"
	MongoFieldEpicIdentifier = "epic_identifier"
)

const (
	URLParamPatientID = "patientID"
)
