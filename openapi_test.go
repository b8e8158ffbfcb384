package main_test

import (
	"context"

	"github.com/getkin/kin-openapi/openapi3"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

// The served OpenAPI document must stay structurally valid, and the routes
// the router registers must keep their documented entries.
var _ = Describe("OpenAPI document", func() {
	var doc *openapi3.T

	BeforeEach(func() {
		loader := openapi3.NewLoader()
		var err error
		doc, err = loader.LoadFromFile("api/openapi.yml")
		Expect(err).NotTo(HaveOccurred())
	})

	It("should validate against the OpenAPI 3 schema", func() {
		Expect(doc.Validate(context.Background())).To(Succeed())
	})

	It("should document every API surface", func() {
		for _, path := range []string{
			"/auth/login",
			"/auth/refresh",
			"/users",
			"/users/{id}",
			"/memberships",
			"/user-memberships",
			"/user-memberships/{id}",
			"/employees",
			"/employees/{id}",
			"/trainers",
			"/receptionists",
			"/check-ins",
			"/payments",
			"/classes",
			"/classes/{id}",
			"/equipment",
			"/equipment/{id}",
			"/equipment/{id}/maintenance",
			"/stats",
		} {
			Expect(doc.Paths.Find(path)).NotTo(BeNil(), "missing path %s", path)
		}
	})

	It("should declare bearer authentication", func() {
		Expect(doc.Components.SecuritySchemes).To(HaveKey("bearerAuth"))
	})
})
