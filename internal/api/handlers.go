package api

import (
	"encoding/json"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/timeanchor/timeanchor/internal/resolve"
)

// Health is a liveness probe for the dev server.
func (h *Handler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"ok": true})
}

// Convert is the strict endpoint: four required string fields, every failure
// a classified error response. Presence and type checks run before any
// semantic parsing so a malformed request never reaches the resolver.
func (h *Handler) Convert(c *fiber.Ctx) error {
	body, err := parseObject(c)
	if err != nil {
		return badField(c, err)
	}

	humanDate, err := requireString(body, "humanDate")
	if err != nil {
		return badField(c, err)
	}
	humanTime, err := requireString(body, "humanTime")
	if err != nil {
		return badField(c, err)
	}
	timeZone, err := requireString(body, "timeZone")
	if err != nil {
		return badField(c, err)
	}
	clientCurrentTime, err := requireString(body, "clientCurrentTime")
	if err != nil {
		return badField(c, err)
	}

	res, resErr := h.resolver.Resolve(resolve.Request{
		DatePhrase: humanDate,
		TimePhrase: humanTime,
		TimeZone:   timeZone,
		Now:        clientCurrentTime,
	})
	if resErr != nil {
		return resolveFailure(c, resErr)
	}

	return c.JSON(fiber.Map{
		"convertedDate":     res.Converted,
		"timeZone":          res.TimeZone,
		"humanDate":         humanDate,
		"humanTime":         humanTime,
		"clientCurrentTime": clientCurrentTime,
	})
}

// Interpret is the best-effort endpoint: only "text" is required, zone and
// reference degrade softly, and an unresolved phrase answers with the
// reference instant plus an explanatory message instead of an error.
func (h *Handler) Interpret(c *fiber.Ctx) error {
	body, err := parseObject(c)
	if err != nil {
		return badField(c, err)
	}

	text, err := requireString(body, "text")
	if err != nil {
		return badField(c, err)
	}
	timeZone, err := optionalString(body, "timeZone")
	if err != nil {
		return badField(c, err)
	}
	now, err := optionalString(body, "now")
	if err != nil {
		return badField(c, err)
	}

	res, resErr := h.resolver.Interpret(text, timeZone, now)
	if resErr != nil {
		return resolveFailure(c, resErr)
	}

	payload := fiber.Map{
		"convertedDate": res.Converted,
		"timeZone":      res.TimeZone,
		"originalText":  text,
	}
	if res.Note != "" {
		payload["message"] = res.Note
	}
	return c.JSON(payload)
}

// fieldError is a presence/type violation for one named request field.
type fieldError struct {
	field   string
	message string
}

func (e *fieldError) Error() string { return e.message }

func parseObject(c *fiber.Ctx) (map[string]any, *fieldError) {
	var body map[string]any
	if err := json.Unmarshal(c.Body(), &body); err != nil || body == nil {
		return nil, &fieldError{field: "body", message: "request body must be a JSON object"}
	}
	return body, nil
}

func requireString(body map[string]any, field string) (string, *fieldError) {
	raw, present := body[field]
	if !present {
		return "", &fieldError{field: field, message: fmt.Sprintf("missing required field %q", field)}
	}
	s, ok := raw.(string)
	if !ok {
		return "", &fieldError{field: field, message: fmt.Sprintf("field %q must be a string", field)}
	}
	if s == "" {
		return "", &fieldError{field: field, message: fmt.Sprintf("field %q must not be empty", field)}
	}
	return s, nil
}

func optionalString(body map[string]any, field string) (string, *fieldError) {
	raw, present := body[field]
	if !present {
		return "", nil
	}
	s, ok := raw.(string)
	if !ok {
		return "", &fieldError{field: field, message: fmt.Sprintf("field %q must be a string", field)}
	}
	return s, nil
}

func badField(c *fiber.Ctx, err *fieldError) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error":   resolve.KindBadInput,
		"message": err.message,
	})
}

// resolveFailure maps classified resolution errors to status codes.
// Anything unclassified is a generic server error; its message is passed
// through best-effort but no internals beyond that leak out.
func resolveFailure(c *fiber.Ctx, err error) error {
	kind := resolve.KindOf(err)
	status := fiber.StatusBadRequest
	if kind == resolve.KindInternal {
		status = fiber.StatusInternalServerError
	}
	return c.Status(status).JSON(fiber.Map{
		"error":   kind,
		"message": err.Error(),
	})
}
