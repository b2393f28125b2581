package controllers

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func putJSON(t *testing.T, app *fiber.App, path, body string) *http.Response {
	t.Helper()
	req := httptest.NewRequest("PUT", path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	assert.NoError(t, err)
	return resp
}

func TestUpdateEmployeeValidation(t *testing.T) {
	app := fiber.New()
	app.Put("/employees/:id", UpdateEmployee)

	validID := "64b7f3a2e4b0c1d2e3f4a5b6"

	t.Run("RejectsUnknownRole", func(t *testing.T) {
		// role ต้องเป็น employee หรือ manager เท่านั้น ห้ามหลุดไปถึง store
		resp := putJSON(t, app, "/employees/"+validID,
			`{"name":"A","employeeId":"EMP001","department":"HR","role":"superuser"}`)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})

	t.Run("RejectsMissingRequiredFields", func(t *testing.T) {
		resp := putJSON(t, app, "/employees/"+validID, `{"role":"employee"}`)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})

	t.Run("RejectsInvalidObjectID", func(t *testing.T) {
		resp := putJSON(t, app, "/employees/not-an-id",
			`{"name":"A","employeeId":"EMP001","department":"HR","role":"employee"}`)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})

	t.Run("RejectsMalformedBody", func(t *testing.T) {
		resp := putJSON(t, app, "/employees/"+validID, `{not-json`)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})
}
