package rest

import (
	"context"
	"errors"
	"net/http"
	"time"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/RichardKnop/legalserver"
)

const askTimeout = 30 * time.Second

// Opaque service error returned to callers. The underlying error only goes
// to the server log, never over the wire.
const (
	serviceErrorMessage = "Servicio temporalmente no disponible"
	serviceErrorCode    = "internal_error"
)

type AskRequest struct {
	Question string `json:"question"`
}

func (a *Adapter) askHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), askTimeout)
	defer cancel()

	apiRequest := AskRequest{}
	if err := readRequestJSON(r, &apiRequest); err != nil {
		a.record(ctx, r, http.StatusBadRequest, 0, "", legalserver.ReasonInvalid)
		renderJSONError(w, http.StatusBadRequest, legalserver.ReasonInvalid)
		return
	}

	var (
		question       = legalserver.Question{Content: apiRequest.Question}
		questionLength = utf8.RuneCountInString(apiRequest.Question)
	)

	response, err := a.legalServer.Ask(ctx, question)
	if err != nil {
		var vErr *legalserver.ValidationError
		if errors.As(err, &vErr) {
			a.record(ctx, r, http.StatusBadRequest, questionLength, "", vErr.Reason)
			renderJSONError(w, http.StatusBadRequest, vErr.Reason)
			return
		}

		a.logger.Error("error answering question", zap.Error(err))
		a.record(ctx, r, http.StatusServiceUnavailable, questionLength, "", err.Error())
		renderJSON(w, http.StatusServiceUnavailable, errorResponse{
			Error: serviceErrorMessage,
			Code:  serviceErrorCode,
		})
		return
	}

	a.record(ctx, r, http.StatusOK, questionLength, response.Mode, "")
	renderJSON(w, http.StatusOK, response)
}

// record appends a query log entry, fire-and-forget: the response does not
// wait for the write and write failures are swallowed by the adapter.
func (a *Adapter) record(ctx context.Context, r *http.Request, status, questionLength int, mode legalserver.Mode, errMessage string) {
	if a.queryLog == nil {
		return
	}

	rec := legalserver.LogRecord{
		RequestID:      legalserver.NewRequestID(),
		Time:           a.now(),
		IP:             clientIP(r),
		Status:         status,
		QuestionLength: questionLength,
		Mode:           mode,
		Error:          errMessage,
	}

	go a.queryLog.Record(context.WithoutCancel(ctx), rec)
}
