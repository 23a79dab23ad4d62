package utils

import (
	"epic-connect-service/internal/pkg/exceptions"

	"github.com/clbanning/mxj/v2"
)

// ParseXMLToMap decodes an XML document into a generic map so the remote
// response structure can be mirrored as JSON without pinning a schema.
func ParseXMLToMap(body []byte) (map[string]interface{}, error) {
	parsed, err := mxj.NewMapXml(body)
	if err != nil {
		return nil, exceptions.ErrEpicParseXML(err)
	}
	return map[string]interface{}(parsed), nil
}
