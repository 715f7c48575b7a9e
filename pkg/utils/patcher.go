package utils

import (
	"reflect"
	"strings"

	"github.com/aarondl/null/v8"
	json "github.com/goccy/go-json"
)

var (
	stringPtrType = reflect.TypeOf(new(string))
	uint64PtrType = reflect.TypeOf(new(uint64))
)

// ApplyPatch copies into entity only the DTO fields that appear in the raw request body.
// Fields are matched by Go field name. An explicit JSON null clears pointer fields and
// leaves required (non-pointer) fields untouched.
func ApplyPatch(entity interface{}, patchDTO interface{}, rawRequestBody []byte) error {
	var sentFields map[string]interface{}
	if err := json.Unmarshal(rawRequestBody, &sentFields); err != nil {
		return err
	}

	entityValue := reflect.ValueOf(entity).Elem()
	patchDTOValue := reflect.ValueOf(patchDTO)
	if patchDTOValue.Kind() == reflect.Ptr {
		patchDTOValue = patchDTOValue.Elem()
	}

	for i := 0; i < patchDTOValue.NumField(); i++ {
		patchField := patchDTOValue.Field(i)
		patchFieldType := patchDTOValue.Type().Field(i)
		jsonFieldName := strings.Split(patchFieldType.Tag.Get("json"), ",")[0]

		sent, fieldWasSent := sentFields[jsonFieldName]
		if !fieldWasSent {
			continue
		}

		target := entityValue.FieldByName(patchFieldType.Name)
		if !target.IsValid() || !target.CanSet() {
			continue
		}

		if sent == nil {
			if target.Kind() == reflect.Ptr {
				target.Set(reflect.Zero(target.Type()))
			}
			continue
		}

		switch patchValue := patchField.Interface().(type) {
		case *string:
			if patchValue != nil {
				setString(target, *patchValue)
			}
		case null.String:
			if patchValue.Valid {
				setString(target, patchValue.String)
			}
		case *uint64:
			if patchValue != nil {
				setUint(target, *patchValue)
			}
		case null.Int64:
			if patchValue.Valid && patchValue.Int64 >= 0 {
				setUint(target, uint64(patchValue.Int64))
			}
		case *int64:
			if patchValue != nil && target.Kind() == reflect.Int64 {
				target.SetInt(*patchValue)
			}
		}
	}
	return nil
}

func setString(target reflect.Value, v string) {
	switch {
	case target.Kind() == reflect.String:
		target.SetString(v)
	case target.Type() == stringPtrType:
		target.Set(reflect.ValueOf(&v))
	}
}

func setUint(target reflect.Value, v uint64) {
	switch {
	case target.Kind() == reflect.Uint64:
		target.SetUint(v)
	case target.Type() == uint64PtrType:
		target.Set(reflect.ValueOf(&v))
	}
}
