package handler

import (
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
	"github.com/oapi-codegen/runtime"
)

// pathParam binds the named chi URL parameter as a simple-style path
// parameter. On failure it writes a 400 and returns false.
//
// chi matches on r.URL.RawPath when the request carries one and on the
// decoded r.URL.Path otherwise. The binder percent-decodes path values, so a
// value taken from the decoded path is escaped again first and every segment
// is decoded exactly once ("100%25" binds as "100%").
func pathParam(w http.ResponseWriter, r *http.Request, name string) (string, bool) {
	raw := chi.URLParam(r, name)
	if r.URL.RawPath == "" {
		raw = url.PathEscape(raw)
	}

	var v string
	err := runtime.BindStyledParameterWithOptions("simple", name, raw, &v,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "invalid "+name+" parameter")
		return "", false
	}
	return v, true
}
