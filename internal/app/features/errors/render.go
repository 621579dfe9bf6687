// internal/app/features/errors/render.go
package errors

import (
	"net/http"

	"github.com/dalemusser/matterhub/internal/app/system/viewdata"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"
)

// ErrorLogger pairs zap logging with user-facing error pages so that a
// store failure never surfaces as a blank response. The user message is
// the most specific safe description available; raw error details go to
// the log only.
type ErrorLogger struct {
	log *zap.Logger
}

// NewErrorLogger creates an ErrorLogger backed by the given zap logger.
func NewErrorLogger(logger *zap.Logger) *ErrorLogger {
	return &ErrorLogger{log: logger}
}

// LogServerError logs err at error level and renders a 500 page with
// userMsg and a safe back link.
func (e *ErrorLogger) LogServerError(w http.ResponseWriter, r *http.Request, logMsg string, err error, userMsg, backURL string) {
	e.log.Error(logMsg, zap.Error(err), zap.String("path", r.URL.Path))
	e.render(w, r, http.StatusInternalServerError, userMsg, backURL)
}

// LogBadRequest logs err at warn level and renders a 400 page with
// userMsg and a safe back link.
func (e *ErrorLogger) LogBadRequest(w http.ResponseWriter, r *http.Request, logMsg string, err error, userMsg, backURL string) {
	e.log.Warn(logMsg, zap.Error(err), zap.String("path", r.URL.Path))
	e.render(w, r, http.StatusBadRequest, userMsg, backURL)
}

func (e *ErrorLogger) render(w http.ResponseWriter, r *http.Request, status int, userMsg, backURL string) {
	if userMsg == "" {
		userMsg = "Something went wrong. Please try again."
	}
	data := pageData{
		BaseVM:  viewdata.NewBaseVM(r, "Error", backURL),
		Message: userMsg,
	}
	w.WriteHeader(status)
	templates.Render(w, r, "error_page", data)
}
