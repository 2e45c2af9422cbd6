package server

import (
	_ "embed"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"gopkg.in/yaml.v3"
)

//go:embed openapi.yaml
var openAPIDocument []byte

// loadOpenAPI decodes the embedded document so it can be served as JSON.
func loadOpenAPI() (map[string]interface{}, error) {
	var doc map[string]interface{}
	if err := yaml.Unmarshal(openAPIDocument, &doc); err != nil {
		return nil, fmt.Errorf("yaml.Unmarshal(openapi.yaml) > %w", err)
	}
	return doc, nil
}

func openAPIHandler(doc map[string]interface{}) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, doc)
	}
}
