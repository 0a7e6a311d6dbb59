package server

import (
	"encoding/json"
	"net/http"

	"github.com/m-mizutani/octogate/pkg/domain/model"
	"github.com/m-mizutani/octogate/pkg/utils/errutil"
	"github.com/m-mizutani/octogate/pkg/utils/logging"
)

func writeJSON(w http.ResponseWriter, r *http.Request, code int, data any) {
	raw, err := json.Marshal(data)
	if err != nil {
		errutil.HandleError(r.Context(), "fail to marshal response", err)
		w.Header().Set("Content-Type", "application/json")
		safeWrite(w, http.StatusInternalServerError, []byte(`{"error":"InternalServerError","message":"internal server error"}`))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	safeWrite(w, code, raw)
}

// writeError converts err into a status code and a JSON body. Server side
// failures are reported; client side ones are only logged.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	code, resp := model.NewErrorResponse(err)
	if code >= http.StatusInternalServerError {
		errutil.HandleError(r.Context(), "request failed", err)
	} else {
		logging.From(r.Context()).Info("request failed", "status", code, "error", err)
	}

	writeJSON(w, r, code, resp)
}
