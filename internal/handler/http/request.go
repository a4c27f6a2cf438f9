package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"reflect"
	"strconv"

	"github.com/fasthr/hr-backend-go/internal/domain/auth"
	"github.com/fasthr/hr-backend-go/internal/handler/http/response"
	"github.com/fasthr/hr-backend-go/internal/pkg/validator"
	"github.com/go-chi/chi/v5"
)

// decodeJSON reads the request body into dst. A value of the wrong JSON type is a 422
// on that field; any other decode failure is a 400.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	err := json.NewDecoder(r.Body).Decode(dst)
	if err == nil {
		return true
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		response.HandleError(w, validator.Field(typeErr.Field, validator.HumanizeField(typeErr.Field)+" "+expectedType(typeErr.Type)))
		return false
	}

	response.BadRequest(w, "Invalid request format.")
	return false
}

func expectedType(t reflect.Type) string {
	if t == nil {
		return "is invalid"
	}
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "must be an integer"
	case reflect.Float32, reflect.Float64:
		return "must be a number"
	case reflect.Bool:
		return "must be true or false"
	case reflect.String:
		return "must be a string"
	case reflect.Slice, reflect.Array:
		return "must be a list"
	case reflect.Map, reflect.Struct:
		return "must be an object"
	default:
		return "is invalid"
	}
}

// idParam parses the {id} URL param, answering 400 when it is not a positive integer.
func idParam(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		response.BadRequest(w, "Invalid ID.")
		return 0, false
	}
	return id, true
}

// principal returns the caller set by middleware.AuthRequired.
func principal(w http.ResponseWriter, r *http.Request) (auth.Principal, bool) {
	p, ok := auth.PrincipalFromContext(r.Context())
	if !ok {
		response.HandleError(w, auth.ErrUnauthenticated)
		return auth.Principal{}, false
	}
	return p, true
}

// queryFilter reads optional typed filters from the query string. Empty values count as absent.
type queryFilter struct {
	values url.Values
	errs   validator.ValidationErrors
}

func newQueryFilter(r *http.Request) *queryFilter {
	return &queryFilter{values: r.URL.Query()}
}

func (q *queryFilter) String(key string) *string {
	v := q.values.Get(key)
	if v == "" {
		return nil
	}
	return &v
}

func (q *queryFilter) Int64(key string) *int64 {
	v := q.values.Get(key)
	if v == "" {
		return nil
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		q.errs.Add(key, validator.HumanizeField(key)+" must be an integer")
		return nil
	}
	return &n
}

func (q *queryFilter) Int(key string) *int {
	n := q.Int64(key)
	if n == nil {
		return nil
	}
	i := int(*n)
	return &i
}

// Bool accepts true/false and 1/0.
func (q *queryFilter) Bool(key string) *bool {
	v := q.values.Get(key)
	if v == "" {
		return nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		q.errs.Add(key, validator.HumanizeField(key)+" must be true or false")
		return nil
	}
	return &b
}

func (q *queryFilter) Err() error {
	return q.errs.OrNil()
}
