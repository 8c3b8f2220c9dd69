package http

import (
	"encoding/json"
	"errors"
	"reflect"
	"sort"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/tote-api/internal/application/dto"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Reportar los campos con su nombre JSON, no el del struct.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// bindJSON decodifica el cuerpo en out y valida los campos obligatorios.
// Devuelve nil si el cuerpo es válido; si no, la lista de violaciones para el 422.
func bindJSON(c *fiber.Ctx, out any) []dto.ValidationErrorItem {
	body := c.Body()
	if len(strings.TrimSpace(string(body))) == 0 {
		return []dto.ValidationErrorItem{{Loc: []string{"body"}, Msg: "Field required", Type: "missing"}}
	}

	if err := json.Unmarshal(body, out); err != nil {
		return decodeErrorItems(err)
	}
	if items := shapeErrorItems(body, reflect.TypeOf(out).Elem()); items != nil {
		return items
	}

	if err := validate.Struct(out); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return []dto.ValidationErrorItem{{Loc: []string{"body"}, Msg: err.Error(), Type: "value_error"}}
		}
		items := make([]dto.ValidationErrorItem, 0, len(verrs))
		for _, fe := range verrs {
			items = append(items, dto.ValidationErrorItem{
				Loc:  []string{"body", fe.Field()},
				Msg:  "Field required",
				Type: "missing",
			})
		}
		return items
	}
	return nil
}

// requireQuery exige que el parámetro esté presente en la query (puede ser vacío).
func requireQuery(c *fiber.Ctx, name string) (string, []dto.ValidationErrorItem) {
	if !c.Context().QueryArgs().Has(name) {
		return "", []dto.ValidationErrorItem{{Loc: []string{"query", name}, Msg: "Field required", Type: "missing"}}
	}
	return c.Query(name), nil
}

// shapeErrorItems revisa lo que json.Unmarshal deja pasar: claves con otra
// capitalización y valores null dentro de listas y mapas.
func shapeErrorItems(body []byte, t reflect.Type) []dto.ValidationErrorItem {
	if t.Kind() != reflect.Struct {
		return nil
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		return decodeErrorItems(err)
	}

	var items []dto.ValidationErrorItem
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			continue
		}
		raw, ok := fields[name]
		if !ok || isNull(raw) {
			if strings.Contains(f.Tag.Get("validate"), "required") {
				items = append(items, dto.ValidationErrorItem{Loc: []string{"body", name}, Msg: "Field required", Type: "missing"})
			}
			continue
		}
		items = append(items, nullElementItems([]string{"body", name}, raw, f.Type)...)
	}
	return items
}

func nullElementItems(loc []string, raw json.RawMessage, t reflect.Type) []dto.ValidationErrorItem {
	var items []dto.ValidationErrorItem
	switch t.Kind() {
	case reflect.Slice:
		var elems []json.RawMessage
		if err := json.Unmarshal(raw, &elems); err != nil {
			return nil
		}
		for i, e := range elems {
			items = append(items, childItems(loc, strconv.Itoa(i), e, t.Elem())...)
		}
	case reflect.Map:
		var values map[string]json.RawMessage
		if err := json.Unmarshal(raw, &values); err != nil {
			return nil
		}
		keys := make([]string, 0, len(values))
		for k := range values {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			items = append(items, childItems(loc, k, values[k], t.Elem())...)
		}
	}
	return items
}

func childItems(parent []string, key string, raw json.RawMessage, t reflect.Type) []dto.ValidationErrorItem {
	loc := append(append([]string{}, parent...), key)
	if isNull(raw) {
		msg, kind := typeMessage(t)
		return []dto.ValidationErrorItem{{Loc: loc, Msg: msg, Type: kind}}
	}
	return nullElementItems(loc, raw, t)
}

func isNull(raw json.RawMessage) bool {
	return strings.TrimSpace(string(raw)) == "null"
}

func decodeErrorItems(err error) []dto.ValidationErrorItem {
	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) {
		return []dto.ValidationErrorItem{{
			Loc:  []string{"body", strconv.FormatInt(syntaxErr.Offset, 10)},
			Msg:  "JSON decode error",
			Type: "json_invalid",
		}}
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		loc := []string{"body"}
		if typeErr.Field != "" {
			loc = append(loc, strings.Split(typeErr.Field, ".")...)
		}
		msg, kind := typeMessage(typeErr.Type)
		return []dto.ValidationErrorItem{{Loc: loc, Msg: msg, Type: kind}}
	}

	return []dto.ValidationErrorItem{{Loc: []string{"body"}, Msg: "JSON decode error", Type: "json_invalid"}}
}

func typeMessage(t reflect.Type) (msg, kind string) {
	switch t.Kind() {
	case reflect.Slice, reflect.Array:
		return "Input should be a valid list", "list_type"
	case reflect.Map:
		return "Input should be a valid dictionary", "dict_type"
	case reflect.String:
		return "Input should be a valid string", "string_type"
	case reflect.Struct:
		return "Input should be a valid dictionary or object to extract fields from", "model_attributes_type"
	default:
		return "Input should be a valid " + t.Kind().String(), t.Kind().String() + "_type"
	}
}

func validationError(c *fiber.Ctx, items []dto.ValidationErrorItem) error {
	return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ValidationErrorResponse{Detail: items})
}
