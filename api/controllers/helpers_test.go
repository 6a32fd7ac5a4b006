package controllers

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/mannyautos/storefront-backend/internal/catalog"
	"github.com/mannyautos/storefront-backend/pkg/enums"
	"github.com/mannyautos/storefront-backend/pkg/logger"
)

func testLogger() *logger.Logger {
	return logger.New(logger.Options{ServiceName: "test", Output: io.Discard})
}

func testRepo(t *testing.T) *catalog.Repository {
	t.Helper()
	repo, err := catalog.NewRepository(&catalog.Catalog{
		Version: "test-1",
		Parts: []catalog.PartRecord{
			{
				ID: 1, Name: "Brake Disc", Category: "Chassis Accessories", Image: "/images/brake.jpg",
				Keywords: []string{"brake disc", "rotor"},
				Tags:     []string{"brakes"},
				Compatibilities: []catalog.Compatibility{
					{Brand: "Toyota", Model: "Corolla", Years: "2008–2013"},
				},
				Variants: []catalog.Variant{
					{Brand: "Toyota", Model: "Corolla", Year: 2010, Price: 18500, Availability: enums.AvailabilityInStock},
					{Brand: "Toyota", Model: "Corolla", Year: 2012, Price: 19500, Availability: enums.AvailabilityInStock},
				},
			},
			{
				ID: 2, Name: "Oil Filter", Category: "Engine Components",
				Keywords: []string{"oil filter"},
				Compatibilities: []catalog.Compatibility{
					{Brand: "Honda", Model: "Civic", Years: "2006–2011"},
				},
				Variants: []catalog.Variant{
					{Brand: "Honda", Model: "Civic", Year: 2009, Price: 4200, Availability: enums.AvailabilityInStock},
				},
			},
			{
				ID: 3, Name: "Decal Sheet", Category: "Exterior Accessories",
			},
		},
	})
	if err != nil {
		t.Fatalf("building repo: %v", err)
	}
	return repo
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder, data any) {
	t.Helper()
	var envelope struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decoding envelope: %v", err)
	}
	if err := json.Unmarshal(envelope.Data, data); err != nil {
		t.Fatalf("decoding payload: %v", err)
	}
}

func decodeErrorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var envelope struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decoding error envelope: %v", err)
	}
	return envelope.Error.Code
}
